package cli

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"

	"github.com/KimNorgaard/go-nyml"
)

var (
	nameColor = color.New(color.Bold)
	codeColor = color.New(color.FgRed, color.Bold)
	okColor   = color.New(color.FgGreen)
)

// report writes one line describing err. Parse errors are shown as
// name:line:column: CODE message, with the column left out when unknown.
func report(w io.Writer, name string, err error) {
	var pe *nyml.ParseError
	if !errors.As(err, &pe) {
		fmt.Fprintf(w, "%s: %s\n", nameColor.Sprint(name), codeColor.Sprint(err))
		return
	}
	pos := fmt.Sprintf("%s:%d", name, pe.Line)
	if pe.Column > 0 {
		pos += fmt.Sprintf(":%d", pe.Column)
	}
	fmt.Fprintf(w, "%s: %s %s\n", nameColor.Sprint(pos), codeColor.Sprint(pe.Code), pe.Message)
}

func reportOK(w io.Writer, name string) {
	fmt.Fprintf(w, "%s: %s\n", nameColor.Sprint(name), okColor.Sprint("ok"))
}
