package errors

import "fmt"

// Code identifies the kind of a ParseError.
type Code string

const (
	// MissingColon is reported for a content line without an unescaped ':'.
	MissingColon Code = "MISSING_COLON"
	// UnmatchedQuote is reported when a quoted key is not closed before the end of the line.
	UnmatchedQuote Code = "UNMATCHED_QUOTE"
	// UnterminatedMultiline is reported when a multiline block reaches EOF and
	// the EOF policy asks for an error.
	UnterminatedMultiline Code = "UNTERMINATED_MULTILINE"
	// BadIndent is reported in strict mode for tabs in indentation or
	// siblings with different indentation.
	BadIndent Code = "BAD_INDENT"
	// MissingValue is reported for a V2 multi-value key without indented content.
	MissingValue Code = "MISSING_VALUE"
)

// Sentinel values usable with errors.Is. Only the Code is compared.
var (
	ErrMissingColon          = &ParseError{Code: MissingColon}
	ErrUnmatchedQuote        = &ParseError{Code: UnmatchedQuote}
	ErrUnterminatedMultiline = &ParseError{Code: UnterminatedMultiline}
	ErrBadIndent             = &ParseError{Code: BadIndent}
	ErrMissingValue          = &ParseError{Code: MissingValue}
)

// ParseError represents the error that aborted a parse.
// Line and Column are 1-based; Column is 0 when unknown.
type ParseError struct {
	Code    Code
	Message string
	Line    int
	Column  int
}

// New returns a ParseError for the given position.
func New(code Code, line, column int, format string, args ...any) *ParseError {
	return &ParseError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Line:    line,
		Column:  column,
	}
}

func (e *ParseError) Error() string {
	if e.Column > 0 {
		return fmt.Sprintf("nyml: %s (%s) at line %d, column %d", e.Message, e.Code, e.Line, e.Column)
	}
	return fmt.Sprintf("nyml: %s (%s) at line %d", e.Message, e.Code, e.Line)
}

// Is reports whether target is a ParseError with the same Code.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}
