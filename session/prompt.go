package session

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/slices"
)

// Prompter asks questions on a terminal and reads the answers line by line.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Ask writes the question and returns the answer, trimmed and lowercased.
// io.EOF is returned once the input is exhausted.
func (p *Prompter) Ask(question string) (string, error) {
	fmt.Fprint(p.out, question)

	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.ToLower(strings.TrimSpace(line)), nil
}

// Choose asks until the answer is one of valid. Invalid answers are ignored
// and the question is asked again.
func (p *Prompter) Choose(question string, valid []string) (string, error) {
	for {
		answer, err := p.Ask(question)
		if err != nil {
			return "", err
		}
		if slices.Contains(valid, answer) {
			return answer, nil
		}
	}
}

// Confirm asks a yes/no question; only "yes" counts as affirmative.
func (p *Prompter) Confirm(question string) (bool, error) {
	answer, err := p.Ask(question)
	if err != nil {
		return false, err
	}
	return answer == "yes", nil
}
