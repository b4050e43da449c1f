// Command sollex prints the tokens of a sol source file.
//
//	sollex [-dump] [-invalid] [file]
//
// With no file, sollex reads standard input.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"

	"codeberg.org/rileyq/sol/internal/compile/scanner"
	"codeberg.org/rileyq/sol/internal/compile/token"
)

var errInvalid = errors.New("source contains invalid tokens")

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "sollex:", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet("sollex", flag.ContinueOnError)
	flags.SetOutput(stderr)
	dump := flags.Bool("dump", false, "dump token values instead of a table")
	strict := flags.Bool("invalid", false, "fail if any token is invalid")
	if err := flags.Parse(args); err != nil {
		return err
	}

	var rd io.Reader
	switch flags.NArg() {
	case 0:
		rd = stdin
	case 1:
		f, err := os.Open(flags.Arg(0))
		if err != nil {
			return err
		}
		defer f.Close()
		rd = f
	default:
		return fmt.Errorf("expected at most one file, got %d", flags.NArg())
	}

	scn, err := scanner.NewFromReader(rd)
	if err != nil {
		return err
	}

	toks := scn.Tokens()
	if *dump {
		dumper := spew.ConfigState{Indent: " ", DisableMethods: true}
		dumper.Fdump(stdout, toks)
	} else {
		for _, tok := range toks {
			fmt.Fprintf(stdout, "%d:%d\t%s\t%s\n", tok.Line, tok.Column, tok.Type.Name(), tok.Text)
		}
	}

	if *strict {
		invalid := 0
		for _, tok := range toks {
			if tok.Type == token.Invalid {
				fmt.Fprintf(stderr, "%d:%d: invalid token %q\n", tok.Line, tok.Column, tok.Text)
				invalid++
			}
		}
		if invalid > 0 {
			return fmt.Errorf("%w: %d found", errInvalid, invalid)
		}
	}

	return nil
}
