package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/anipeek/anipeek/color"
	"github.com/anipeek/anipeek/icon"
	"github.com/anipeek/anipeek/style"
)

// ErrInterrupted is returned by an Input when the user pressed Ctrl+C.
var ErrInterrupted = errors.New("interrupted")

// Input yields one line per call and io.EOF when there is no more.
type Input interface {
	ReadLine() (string, error)
}

// LineInput reads newline-separated input, printing a prompt before each line.
type LineInput struct {
	scanner *bufio.Scanner
	prompt  io.Writer
}

// NewLineInput reads from r. A nil prompt writer suppresses the prompt.
func NewLineInput(r io.Reader, prompt io.Writer) *LineInput {
	return &LineInput{scanner: bufio.NewScanner(r), prompt: prompt}
}

func (in *LineInput) ReadLine() (string, error) {
	if in.prompt != nil {
		_, _ = fmt.Fprintf(in.prompt, "%s ", style.Fg(color.Purple)(promptText()))
	}

	if !in.scanner.Scan() {
		if err := in.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return in.scanner.Text(), nil
}

// SurveyInput prompts on an interactive terminal.
type SurveyInput struct{}

func (SurveyInput) ReadLine() (string, error) {
	var answer string
	prompt := &survey.Input{
		Message: "Media id",
		Help:    `A numeric AniList id, e.g. 21. Type "exit" to quit.`,
	}

	err := survey.AskOne(prompt, &answer)
	switch {
	case errors.Is(err, terminal.InterruptErr):
		return "", ErrInterrupted
	case errors.Is(err, io.EOF):
		return "", io.EOF
	case err != nil:
		return "", err
	}
	return answer, nil
}

func promptText() string {
	if i := icon.Get(icon.Prompt); i != "" {
		return i
	}
	return ">"
}
