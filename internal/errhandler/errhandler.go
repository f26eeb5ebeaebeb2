package errhandler

import (
	"errors"
	"fmt"
	"io"
	"unicode"

	"github.com/pterm/pterm"
)

// ErrUsage marks a wrong command line; the caller prints usage instead of the error.
var ErrUsage = errors.New("usage")

// HandleError reports err on w and returns the process exit code.
func HandleError(err error, w io.Writer, usage string) int {
	if err == nil {
		return 0
	}

	if errors.Is(err, ErrUsage) {
		fmt.Fprintln(w, usage)
		return 1
	}

	pterm.Error.WithWriter(w).Println(capitalize(err.Error()))
	return 1
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
