package token

// Type is the structural role of a line.
type Type string

// Line is one physical line of NYML source.
type Line struct {
	Type   Type
	Num    int    // 1-based line number
	Indent int    // count of leading ASCII spaces
	Body   string // the line without its leading spaces
	Raw    string // the line as written, without the line terminator
}

const (
	EOF Type = "EOF" // End of input

	BLANK   Type = "BLANK"   // only spaces and tabs
	COMMENT Type = "COMMENT" // # a comment
	CONTENT Type = "CONTENT" // key: value, key:, key: |, plain text
)

// IsBlank reports whether the line carries no content.
func (l Line) IsBlank() bool {
	return l.Type == BLANK
}

// IsEOF reports whether the line marks the end of input.
func (l Line) IsEOF() bool {
	return l.Type == EOF
}
