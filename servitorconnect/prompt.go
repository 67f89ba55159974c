package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nickwells/filecheck.mod/filecheck"
	"github.com/tsweet77/servitorconnect/internal/repeater"
)

const (
	emptyInputMsg   = "Input cannot be empty. Please enter a valid intention or filename."
	notAnIntMsg     = "Invalid input. Please enter a positive integer."
	notPositiveMsg  = "Please enter a positive integer."
	tooLargeMsg     = "Please enter a positive integer no greater than %d.\n"
	intentionPrompt = "Intention (or filename): "
)

var errNoInput = errors.New("the input ended before a value was given")

// prompter reads lines of input in response to prompts
type prompter struct {
	scanner *bufio.Scanner
	w       io.Writer

	isFile func(string) bool
}

// newPrompter returns a prompter reading from r and writing prompts to w
func newPrompter(r io.Reader, w io.Writer) *prompter {
	fileProvisos := filecheck.FileExists()

	return &prompter{
		scanner: bufio.NewScanner(r),
		w:       w,
		isFile: func(name string) bool {
			return fileProvisos.StatusCheck(name) == nil
		},
	}
}

// readLine shows the prompt and returns the next line of input with any
// surrounding white space removed
func (p *prompter) readLine(prompt string) (string, error) {
	fmt.Fprint(p.w, prompt)

	if !p.scanner.Scan() {
		fmt.Fprintln(p.w)

		if err := p.scanner.Err(); err != nil {
			return "", err
		}

		return "", errNoInput
	}

	return strings.TrimSpace(p.scanner.Text()), nil
}

// intentionOrFile prompts until a non-empty line is given. If the line is
// the name of an existing file it is returned as the filename, otherwise
// as the intention.
func (p *prompter) intentionOrFile() (filename, intent string, err error) {
	for {
		s, err := p.readLine(intentionPrompt)
		if err != nil {
			return "", "", fmt.Errorf("couldn't get the intention: %w", err)
		}

		if s == "" {
			fmt.Fprintln(p.w, emptyInputMsg)
			continue
		}

		if p.isFile(s) {
			return s, "", nil
		}

		return "", s, nil
	}
}

// positiveInt prompts until a positive integer no greater than the limit is
// given
func (p *prompter) positiveInt(
	name, prompt string, limit int64,
) (int64, error) {
	for {
		s, err := p.readLine(prompt)
		if err != nil {
			return 0, fmt.Errorf("couldn't get the %s: %w", name, err)
		}

		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			fmt.Fprintln(p.w, notAnIntMsg)
			continue
		}

		if repeater.CheckPositive(v) != nil {
			fmt.Fprintln(p.w, notPositiveMsg)
			continue
		}

		if v > limit {
			fmt.Fprintf(p.w, tooLargeMsg, limit)
			continue
		}

		return v, nil
	}
}
