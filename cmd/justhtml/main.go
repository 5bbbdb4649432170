// Command justhtml validates HTML documents and reports parse errors.
//
// Unlike cmd/htmlquery (which queries a document with CSS selectors), this
// tool surfaces the parser's diagnostics: every recovered parse error, with
// its line and column, so a document can be checked for conformance issues
// without actually caring about its DOM shape.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/html5go/html5"
	htmlerrors "github.com/html5go/html5/errors"
)

var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	tabStopSize := flag.Int("tab-stop-size", 8, "Column width used for tab characters in error positions")
	maxErrors := flag.Int("max-errors", 0, "Maximum number of parse errors to report (0 = unbounded)")
	failFast := flag.Bool("fail-fast", false, "Stop at the first parse error instead of collecting all of them")
	quiet := flag.Bool("quiet", false, "Only print the error count, not each error")
	showVersion := flag.Bool("version", false, "Show version")
	versionShort := flag.Bool("v", false, "Show version (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <file>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Validate an HTML document and report parse errors.\n\n")
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  file    HTML file path or '-' for stdin\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *showVersion || *versionShort {
		fmt.Printf("justhtml version %s\n", version)
		return nil
	}

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		return fmt.Errorf("missing input file")
	}

	inputPath := args[0]

	var input []byte
	var err error
	if inputPath == "-" {
		input, err = io.ReadAll(os.Stdin)
	} else {
		input, err = os.ReadFile(inputPath)
	}
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	opts := []html5.Option{
		html5.WithTabStopSize(*tabStopSize),
		html5.WithCollectErrors(),
	}
	if *maxErrors > 0 {
		opts = append(opts, html5.WithMaxErrors(*maxErrors))
	}
	if *failFast {
		opts = append(opts, html5.WithStrictMode())
	}

	_, parseErr := html5.ParseBytes(input, opts...)

	if parseErr == nil {
		fmt.Println("0 parse errors")
		return nil
	}

	var parseErrs htmlerrors.ParseErrors
	if errors.As(parseErr, &parseErrs) {
		if *quiet {
			fmt.Printf("%d parse errors\n", len(parseErrs))
			return nil
		}
		for _, e := range parseErrs {
			fmt.Printf("%d:%d: %s\n", e.Line, e.Column, e.Code)
		}
		return fmt.Errorf("%d parse errors", len(parseErrs))
	}

	var singleErr *htmlerrors.ParseError
	if errors.As(parseErr, &singleErr) {
		if !*quiet {
			fmt.Printf("%d:%d: %s\n", singleErr.Line, singleErr.Column, singleErr.Code)
		}
		return fmt.Errorf("1 parse error")
	}

	return parseErr
}
