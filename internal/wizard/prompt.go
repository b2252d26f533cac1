package wizard

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// yesToken is the only affirmative answer. Anything else, including
// lower-case "y", is treated as no; there is no fuzzy matching.
const yesToken = "Y"

// Prompter reads line-based answers from an input stream and echoes
// prompts to an output stream. Both are injected so wizard sessions can
// be scripted in tests.
type Prompter struct {
	r   *bufio.Reader
	out io.Writer
}

// NewPrompter returns a Prompter over the given streams.
func NewPrompter(r io.Reader, out io.Writer) *Prompter {
	return &Prompter{r: bufio.NewReader(r), out: out}
}

// Out returns the output stream for callers that print around prompts.
func (p *Prompter) Out() io.Writer {
	return p.out
}

// Line prints the prompt and reads one line, trimmed of the trailing
// newline. An exhausted input stream is an error: the wizard cannot
// continue without a user.
func (p *Prompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	line, err := p.r.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("input closed: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// NonEmptyLine repeats Line until the answer is not empty.
func (p *Prompter) NonEmptyLine(prompt string) (string, error) {
	for {
		line, err := p.Line(prompt)
		if err != nil {
			return "", err
		}
		if line != "" {
			return line, nil
		}
		fmt.Fprintln(p.out, "Please enter a value")
	}
}

// Confirm prints the prompt and reports whether the user answered with
// the literal affirmative token.
func (p *Prompter) Confirm(prompt string) (bool, error) {
	line, err := p.Line(prompt)
	if err != nil {
		return false, err
	}
	return line == yesToken, nil
}

// PositiveInt repeats Line until the answer parses as a positive
// integer. Parse failures and non-positive values re-prompt.
func (p *Prompter) PositiveInt(prompt string) (int, error) {
	for {
		line, err := p.Line(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err != nil || n <= 0 {
			fmt.Fprintln(p.out, "Please enter a positive integer")
			continue
		}
		return n, nil
	}
}
