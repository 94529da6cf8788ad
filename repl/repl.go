// Package repl implements the interactive loop: read an identifier, look it up, repeat.
package repl

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/anipeek/anipeek/anilist"
	"github.com/anipeek/anipeek/log"
	"github.com/anipeek/anipeek/present"
)

// ExitCommand terminates the loop. Matching ignores case and surrounding space.
const ExitCommand = "exit"

// State is the loop state.
type State int

const (
	AwaitingInput State = iota
	Terminated
)

func (s State) String() string {
	switch s {
	case AwaitingInput:
		return "awaiting input"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Runner performs one lookup.
type Runner interface {
	Run(ctx context.Context, id int) error
}

// Loop reads identifiers and hands them to a Runner, one at a time.
type Loop struct {
	runner    Runner
	input     Input
	presenter *present.Presenter
	state     State
}

// New returns a loop in the AwaitingInput state.
func New(runner Runner, input Input, presenter *present.Presenter) *Loop {
	return &Loop{
		runner:    runner,
		input:     input,
		presenter: presenter,
		state:     AwaitingInput,
	}
}

// State returns the current state.
func (l *Loop) State() State {
	return l.state
}

// Run reads lines until the exit command, end of input or an interrupt.
// Lookup failures are reported and the loop carries on.
func (l *Loop) Run(ctx context.Context) error {
	for l.state != Terminated {
		line, err := l.input.ReadLine()
		switch {
		case errors.Is(err, io.EOF), errors.Is(err, ErrInterrupted):
			l.state = Terminated
			return nil
		case err != nil:
			return err
		}

		l.state = l.Step(ctx, line)

		if ctx.Err() != nil {
			l.state = Terminated
		}
	}

	return nil
}

// Step handles a single line of input and returns the next state.
func (l *Loop) Step(ctx context.Context, line string) State {
	input := strings.TrimSpace(line)
	if strings.EqualFold(input, ExitCommand) {
		return Terminated
	}

	id, err := anilist.ParseID(input)
	if err != nil {
		l.presenter.InvalidInput(input)
		return AwaitingInput
	}

	if err := l.runner.Run(ctx, id); err != nil {
		log.WithField("id", id).Error(err)
		switch {
		case anilist.IsTransport(err):
			l.presenter.CantConnect(err)
		case anilist.IsDecode(err):
			l.presenter.Malformed(err)
		default:
			l.presenter.Warn(err.Error())
		}
	}

	l.presenter.Divider()
	return AwaitingInput
}
