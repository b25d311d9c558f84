package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter asks the user for a value
type Prompter interface {
	Prompt(label string) (string, error)
	PromptSecret(label string) (string, error)
}

// TerminalPrompter reads answers from a terminal or any line-oriented reader
type TerminalPrompter struct {
	in  *bufio.Reader
	out io.Writer
	fd  int // file descriptor of in, or -1 when in is not a file
}

// NewTerminalPrompter prompts on stderr and reads from stdin
func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{
		in:  bufio.NewReader(os.Stdin),
		out: os.Stderr,
		fd:  int(os.Stdin.Fd()),
	}
}

// NewReaderPrompter reads answers line by line from in, echoing labels to out
func NewReaderPrompter(in io.Reader, out io.Writer) *TerminalPrompter {
	return &TerminalPrompter{
		in:  bufio.NewReader(in),
		out: out,
		fd:  -1,
	}
}

// Prompt prints label and reads one line
func (p *TerminalPrompter) Prompt(label string) (string, error) {
	fmt.Fprint(p.out, label)
	line, err := p.in.ReadString('\n')
	if err != nil && !(err == io.EOF && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// PromptSecret prints label and reads one line without echo when in is a terminal
func (p *TerminalPrompter) PromptSecret(label string) (string, error) {
	if p.fd < 0 || !term.IsTerminal(p.fd) {
		return p.Prompt(label)
	}

	fmt.Fprint(p.out, label)
	secret, err := term.ReadPassword(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", err
	}
	return string(secret), nil
}
