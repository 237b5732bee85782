package cmd

import (
	"io"

	"github.com/jessevdk/go-flags"
)

// Run parses args, executes the selected command against the JSON document
// read from the input and writes the result to stdout. Logs go to stderr.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts := NewOptions(stdin, stdout, stderr)
	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "collection"
	_, err := parser.ParseArgs(args)
	return err
}
