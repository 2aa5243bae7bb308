// Command nyml parses, checks, formats and encodes NYML documents.
package main

import (
	"os"

	"github.com/KimNorgaard/go-nyml/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
