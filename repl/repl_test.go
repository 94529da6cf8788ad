package repl

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/anipeek/anipeek/anilist"
	"github.com/anipeek/anipeek/present"
	. "github.com/smartystreets/goconvey/convey"
)

type fakeRunner struct {
	ids  []int
	errs []error
}

func (f *fakeRunner) Run(_ context.Context, id int) error {
	f.ids = append(f.ids, id)
	if len(f.errs) == 0 {
		return nil
	}
	err := f.errs[0]
	f.errs = f.errs[1:]
	return err
}

type scripted struct {
	lines []string
	err   error
}

func (s *scripted) ReadLine() (string, error) {
	if len(s.lines) == 0 {
		return "", s.err
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func TestStep(t *testing.T) {
	ctx := context.Background()

	Convey("Given a loop", t, func() {
		var out bytes.Buffer
		runner := &fakeRunner{}
		loop := New(runner, &scripted{}, present.New(&out, present.Options{}))
		So(loop.State(), ShouldEqual, AwaitingInput)

		Convey("exit terminates in any casing and with surrounding space", func() {
			for _, line := range []string{"exit", "EXIT", "  Exit\t", "\nexit "} {
				So(loop.Step(ctx, line), ShouldEqual, Terminated)
			}
			So(runner.ids, ShouldBeEmpty)
		})

		Convey("Non-numeric input is rejected before any lookup", func() {
			for _, line := range []string{"abc", "", "-1", "1.5", "exit now", "4294967296", "2147483648"} {
				So(loop.Step(ctx, line), ShouldEqual, AwaitingInput)
			}
			So(runner.ids, ShouldBeEmpty)
			So(strings.Count(out.String(), "Invalid input"), ShouldEqual, 7)
		})

		Convey("Numbers are looked up and followed by a divider", func() {
			So(loop.Step(ctx, " 21 "), ShouldEqual, AwaitingInput)
			So(runner.ids, ShouldResemble, []int{21})
			So(out.String(), ShouldContainSubstring, "─")
		})

		Convey("A transport failure is reported and the loop continues", func() {
			runner.errs = []error{&anilist.TransportError{Endpoint: "x", Err: errors.New("refused")}}
			So(loop.Step(ctx, "1"), ShouldEqual, AwaitingInput)
			So(out.String(), ShouldContainSubstring, "Can't connect")
		})

		Convey("A decode failure is reported and the loop continues", func() {
			runner.errs = []error{&anilist.DecodeError{Err: errors.New("bad")}}
			So(loop.Step(ctx, "1"), ShouldEqual, AwaitingInput)
			So(out.String(), ShouldContainSubstring, "couldn't be read")
		})
	})
}

func TestRun(t *testing.T) {
	ctx := context.Background()

	Convey("Run", t, func() {
		var out bytes.Buffer
		runner := &fakeRunner{}
		presenter := present.New(&out, present.Options{})

		Convey("keeps prompting after failures and stops at exit", func() {
			runner.errs = []error{&anilist.TransportError{Endpoint: "x", Err: errors.New("refused")}}
			input := &scripted{lines: []string{"1", "abc", "2", "exit", "3"}}
			loop := New(runner, input, presenter)

			So(loop.Run(ctx), ShouldBeNil)
			So(loop.State(), ShouldEqual, Terminated)
			So(runner.ids, ShouldResemble, []int{1, 2})
			So(input.lines, ShouldResemble, []string{"3"})
		})

		Convey("terminates at end of input", func() {
			loop := New(runner, NewLineInput(strings.NewReader("5\n6\n"), nil), presenter)
			So(loop.Run(ctx), ShouldBeNil)
			So(runner.ids, ShouldResemble, []int{5, 6})
		})

		Convey("terminates on interrupt", func() {
			loop := New(runner, &scripted{err: ErrInterrupted}, presenter)
			So(loop.Run(ctx), ShouldBeNil)
			So(loop.State(), ShouldEqual, Terminated)
		})

		Convey("propagates input errors", func() {
			boom := errors.New("tty gone")
			loop := New(runner, &scripted{err: boom}, presenter)
			So(loop.Run(ctx), ShouldEqual, boom)
		})

		Convey("stops once the context is cancelled", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()
			loop := New(runner, &scripted{lines: []string{"1", "2"}}, presenter)
			So(loop.Run(cancelled), ShouldBeNil)
			So(runner.ids, ShouldResemble, []int{1})
		})
	})
}

func TestLineInput(t *testing.T) {
	Convey("LineInput prints a prompt before each line", t, func() {
		var prompt bytes.Buffer
		in := NewLineInput(strings.NewReader("21\n"), &prompt)

		line, err := in.ReadLine()
		So(err, ShouldBeNil)
		So(line, ShouldEqual, "21")
		So(prompt.String(), ShouldContainSubstring, ">")

		_, err = in.ReadLine()
		So(err, ShouldEqual, io.EOF)
	})
}
