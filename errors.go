package nyml

import perrors "github.com/KimNorgaard/go-nyml/errors"

// ParseError is the error returned for malformed input. Use errors.As to
// inspect its Code, Line and Column.
type ParseError = perrors.ParseError

// ErrorCode identifies the kind of a ParseError.
type ErrorCode = perrors.Code

// Sentinels for errors.Is.
var (
	ErrMissingColon          = perrors.ErrMissingColon
	ErrUnmatchedQuote        = perrors.ErrUnmatchedQuote
	ErrUnterminatedMultiline = perrors.ErrUnterminatedMultiline
	ErrBadIndent             = perrors.ErrBadIndent
	ErrMissingValue          = perrors.ErrMissingValue
)
