package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/tsweet77/servitorconnect/internal/repeater"
	"golang.org/x/term"
)

// countdown shows the time remaining on a single line, overwriting the
// previous value each time
type countdown struct {
	w     io.Writer
	label string

	maxWidth int
	lastLen  int
	shown    bool
}

// newCountdown returns a countdown writing to w. If w is a terminal the
// line is kept narrower than the terminal so that it never wraps; a
// wrapped line cannot be overwritten.
func newCountdown(w io.Writer, label string) *countdown {
	cd := &countdown{w: w, label: label}

	if f, ok := w.(*os.File); ok {
		fd := int(f.Fd()) //nolint:gosec
		if term.IsTerminal(fd) {
			if width, _, err := term.GetSize(fd); err == nil && width > 1 {
				cd.maxWidth = width - 1
			}
		}
	}

	return cd
}

// line returns the text to show for the remaining time
func (cd *countdown) line(remaining int64) string {
	l := cd.label + repeater.FormatTime(remaining)
	if cd.maxWidth <= 0 || utf8.RuneCountInString(l) <= cd.maxWidth {
		return l
	}

	// keep the time visible, clip the label
	t := repeater.FormatTime(remaining)
	labelRunes := []rune(cd.label)
	keep := max(cd.maxWidth-utf8.RuneCountInString(t), 0)

	return string(labelRunes[:min(keep, len(labelRunes))]) + t
}

// show overwrites the current line with the remaining time
func (cd *countdown) show(remaining int64) {
	l := cd.line(remaining)
	n := utf8.RuneCountInString(l)

	fmt.Fprint(cd.w, "\r"+l+strings.Repeat(" ", max(cd.lastLen-n, 0)))

	cd.lastLen = n
	cd.shown = true
}

// finish ends the countdown line, if one has been shown
func (cd *countdown) finish() {
	if !cd.shown {
		return
	}

	fmt.Fprintln(cd.w)

	cd.lastLen = 0
	cd.shown = false
}
