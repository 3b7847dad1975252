package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nof-sh/TAC-translator/tac"
)

var Signature = "PROGRAM to three-address code translator."

const separator = "------------------------------"

//****************************  Main  ********************************//
func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fmt.Fprintln(stderr, Signature)

	flags := flag.NewFlagSet("tacc", flag.ContinueOnError)
	flags.SetOutput(stderr)
	interactive := flags.Bool("i", false, "read programs from standard input")
	resolve := flags.Bool("resolve", false, "replace labels with instruction numbers")
	ext := flags.String("ext", ".tac", "extension of the output files")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	if *interactive {
		return runInteractive(stdin, stdout, stderr)
	}

	if flags.NArg() == 0 {
		fmt.Fprintln(stderr, "USAGE: tacc [-resolve] [-ext .tac] <input-file>...")
		fmt.Fprintln(stderr, "       tacc -i")
		return 2
	}

	status := 0
	for _, infile := range flags.Args() {
		name := strings.TrimSuffix(filepath.Base(infile), filepath.Ext(infile))
		outfile := strings.TrimSuffix(infile, filepath.Ext(infile)) + *ext

		fmt.Fprintln(stdout, name)
		if filepath.Clean(outfile) == filepath.Clean(infile) {
			fmt.Fprintf(stderr, "%s: output file would overwrite the input, choose another -ext\n", infile)
			fmt.Fprintln(stdout, separator)
			status = 1
			continue
		}
		err := translateFile(infile, outfile, *resolve, stderr)
		fmt.Fprintln(stdout, separator)

		if err == nil {
			continue
		}
		reportFailure(stderr, infile, err)
		if !tac.IsGrammarError(err) {
			return 1
		}
		status = 1
	}
	return status
}

// reportFailure prints the single diagnostic line for a failed translation.
func reportFailure(w io.Writer, name string, err error) {
	if tac.IsGrammarError(err) {
		fmt.Fprintf(w, "ParseError: %s: %s\n", name, err)
		return
	}
	fmt.Fprintf(w, "[FATAL] %s: %s\n", name, err)
}

// translateFile translates infile into outfile. The quadruples produced
// before a failure are still written.
func translateFile(infile, outfile string, resolve bool, diagnostics io.Writer) error {
	src, err := os.Open(infile)
	if err != nil {
		return fmt.Errorf("cannot open input file: %w", err)
	}
	defer src.Close()

	var buf bytes.Buffer
	err = translate(src, &buf, diagnostics)

	output := buf.String()
	if err == nil && resolve {
		output = tac.ResolveLabels(output)
	}
	if werr := os.WriteFile(outfile, []byte(output), 0644); werr != nil && err == nil {
		err = fmt.Errorf("cannot write output file: %w", werr)
	}
	return err
}

func translate(src io.Reader, output io.Writer, diagnostics io.Writer) error {
	scanner := tac.NewScanner(src)
	scanner.Diagnostics = diagnostics

	// Failures are reported by the caller, with the file name.
	translator := tac.NewTranslator(tac.NewCursor(scanner), output)
	translator.Diagnostics = io.Discard
	return translator.Analyze()
}
