package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProgram(t *testing.T, dir, name, code string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(code), 0644))
	return path
}

func readOutput(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func Test_runBatch(t *testing.T) {
	dir := t.TempDir()
	good := writeProgram(t, dir, "Program1.txt", "PROGRAM\n  X = 1 + 2 * 3 ;\nEND .\n")
	bad := writeProgram(t, dir, "Program2.txt", "PROGRAM\n  X = ;\nEND .\n")
	loop := writeProgram(t, dir, "Program3.txt", "PROGRAM WHILE I < 3 DO I = I + 1 ; END .\n")

	var stdout, stderr bytes.Buffer
	status := run([]string{good, bad, loop}, strings.NewReader(""), &stdout, &stderr)

	assert.Equal(t, 1, status)
	assert.Equal(t, "Program1\n"+separator+"\nProgram2\n"+separator+"\nProgram3\n"+separator+"\n", stdout.String())
	assert.Contains(t, stderr.String(), "ParseError: "+bad+": Expected Open Parenthesis, Identifier, or Constant at line 2")
	assert.NotContains(t, stderr.String(), "[ERROR]")
	assert.Equal(t, 1, strings.Count(stderr.String(), "Expected Open Parenthesis"))

	assert.Equal(t, "MUL, 2, 3, T0\nADD, 1, T0, T1\nMOV, T1, X\n", readOutput(t, filepath.Join(dir, "Program1.tac")))
	assert.Equal(t, "", readOutput(t, filepath.Join(dir, "Program2.tac")))
	assert.Equal(t, "L0\nTST, I, 3, 1, L1\nJMP, L2\nL1\nADD, I, 1, T0\nMOV, T0, I\nJMP, L0\nL2\n",
		readOutput(t, filepath.Join(dir, "Program3.tac")))
}

func Test_runResolve(t *testing.T) {
	dir := t.TempDir()
	src := writeProgram(t, dir, "loop.txt", "PROGRAM WHILE I < 3 DO I = I + 1 ; END .\n")

	var stdout, stderr bytes.Buffer
	status := run([]string{"-resolve", "-ext", ".qud", src}, strings.NewReader(""), &stdout, &stderr)

	require.Equal(t, 0, status, stderr.String())
	assert.Equal(t, "TST, I, 3, 1, 3\nJMP, 6\nADD, I, 1, T0\nMOV, T0, I\nJMP, 1\nHALT\n",
		readOutput(t, filepath.Join(dir, "loop.qud")))
}

func Test_runRefusesToOverwriteInput(t *testing.T) {
	dir := t.TempDir()
	const code = "PROGRAM X = 1 ; END .\n"
	tacFile := writeProgram(t, dir, "prog.tac", code)
	txtFile := writeProgram(t, dir, "other.txt", code)
	good := writeProgram(t, dir, "good.src", code)

	var stdout, stderr bytes.Buffer
	status := run([]string{tacFile, good}, strings.NewReader(""), &stdout, &stderr)

	assert.Equal(t, 1, status)
	assert.Contains(t, stderr.String(), tacFile+": output file would overwrite the input")
	assert.Equal(t, code, readOutput(t, tacFile))
	assert.Equal(t, "MOV, 1, X\n", readOutput(t, filepath.Join(dir, "good.tac")))
	assert.Equal(t, "prog\n"+separator+"\ngood\n"+separator+"\n", stdout.String())

	stderr.Reset()
	status = run([]string{"-ext", ".txt", txtFile}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, 1, status)
	assert.Equal(t, code, readOutput(t, txtFile))
}

func Test_runFatalStopsBatch(t *testing.T) {
	dir := t.TempDir()
	truncated := writeProgram(t, dir, "a.txt", "PROGRAM X = 1 ;\n")
	next := writeProgram(t, dir, "b.txt", "PROGRAM END .\n")

	var stdout, stderr bytes.Buffer
	status := run([]string{truncated, next}, strings.NewReader(""), &stdout, &stderr)

	assert.Equal(t, 1, status)
	assert.Contains(t, stderr.String(), "[FATAL] "+truncated+": ")
	assert.Equal(t, 1, strings.Count(stderr.String(), "[FATAL]"))
	assert.Equal(t, "MOV, 1, X\n", readOutput(t, filepath.Join(dir, "a.tac")))
	assert.NoFileExists(t, filepath.Join(dir, "b.tac"))
}

func Test_runMissingFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	status := run([]string{filepath.Join(t.TempDir(), "nope.txt")}, strings.NewReader(""), &stdout, &stderr)

	assert.Equal(t, 1, status)
	assert.Contains(t, stderr.String(), "cannot open input file")
}

func Test_runUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 2, run(nil, strings.NewReader(""), &stdout, &stderr))
	assert.Contains(t, stderr.String(), "USAGE")

	stderr.Reset()
	assert.Equal(t, 2, run([]string{"-bogus"}, strings.NewReader(""), &stdout, &stderr))
}

func Test_runInteractive(t *testing.T) {
	dir := t.TempDir()
	saved := filepath.Join(dir, "first")
	input := strings.Join([]string{
		"",
		"PROGRAM",
		"  X = 1 ;",
		"END .",
		saved,
		"PROGRAM Y = ; END .",
		filepath.Join(dir, "second.prg"),
		"exit",
		"PROGRAM Z = 3 ; END .",
	}, "\n") + "\n"

	var stdout, stderr bytes.Buffer
	status := run([]string{"-i"}, strings.NewReader(input), &stdout, &stderr)

	require.Equal(t, 0, status)
	assert.Contains(t, stdout.String(), "Write your program:")
	assert.Contains(t, stdout.String(), "Filename to save to: ")
	assert.Contains(t, stdout.String(), "MOV, 1, X\n")
	assert.NotContains(t, stdout.String(), "Z")

	assert.Equal(t, "\nPROGRAM\n  X = 1 ;\nEND .\n", readOutput(t, saved+".txt"))
	assert.Equal(t, "PROGRAM Y = ; END .\n", readOutput(t, filepath.Join(dir, "second.prg")))
	assert.Contains(t, stderr.String(), "ParseError: "+filepath.Join(dir, "second.prg"))
}
