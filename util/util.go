// Package util holds small terminal and filesystem helpers shared by the commands.
package util

import (
	"fmt"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/anipeek/anipeek/filesystem"
	"golang.org/x/term"
)

// Quantify formats count with the singular or plural noun.
func Quantify(count int, singular, plural string) string {
	noun := plural
	if count == 1 {
		noun = singular
	}
	return fmt.Sprintf("%d %s", count, noun)
}

// Capitalize upper-cases the first rune of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// TerminalSize is the size of the terminal attached to stdout, in cells.
func TerminalSize() (width, height int, err error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// PrintErasable prints msg on the current line and returns a function
// that blanks it again.
func PrintErasable(msg string) (eraser func()) {
	_, _ = fmt.Fprintf(os.Stdout, "\r%s", msg)
	return func() {
		_, _ = fmt.Fprintf(os.Stdout, "\r%s\r", strings.Repeat(" ", utf8.RuneCountInString(msg)))
	}
}

// Ignore calls f and drops its error. Meant for deferred Close calls.
func Ignore(f func() error) {
	_ = f()
}

// Delete removes path, recursively when it is a directory. A missing path is an error.
func Delete(path string) error {
	fs := filesystem.API()

	info, err := fs.Stat(path)
	if err != nil {
		return err
	}

	if info.IsDir() {
		return fs.RemoveAll(path)
	}
	return fs.Remove(path)
}
