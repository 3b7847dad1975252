package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// runInteractive collects program lines from in until "exit". A line ending
// with '.' completes a program: it is saved under a name read from the next
// line and its quadruples are printed to out.
func runInteractive(in io.Reader, out, errOut io.Writer) int {
	lines := bufio.NewScanner(in)
	var code bytes.Buffer

	fmt.Fprintln(out, "Write your program:")
	for lines.Scan() {
		line := lines.Text()
		if line == "exit" {
			break
		}

		code.WriteString(line + "\n")
		if !strings.HasSuffix(strings.TrimSpace(line), ".") {
			continue
		}

		fmt.Fprint(out, "Filename to save to: ")
		if !lines.Scan() {
			break
		}
		fmt.Fprintln(out)

		filename := strings.TrimSpace(lines.Text())
		if filepath.Ext(filename) == "" {
			filename += ".txt"
		}

		program := code.Bytes()
		code = bytes.Buffer{}
		if err := os.WriteFile(filename, program, 0644); err != nil {
			fmt.Fprintf(errOut, "Could not create file %s: %s\n", filename, err)
			continue
		}

		if err := translate(bytes.NewReader(program), out, errOut); err != nil {
			reportFailure(errOut, filename, err)
		}
	}

	if err := lines.Err(); err != nil {
		fmt.Fprintf(errOut, "cannot read input: %s\n", err)
		return 1
	}
	return 0
}
