package repeater

import (
	"os"
	"strings"
	"unicode/utf8"
)

// Kind records where the intention came from
type Kind int

const (
	KindText Kind = iota
	KindFile
)

// String returns a name for the Kind
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindFile:
		return "file"
	}

	return "unknown"
}

// Source holds the intention. Once constructed it does not change; a file
// is read in full when the Source is made and is not read again.
type Source struct {
	kind    Kind
	path    string
	content string
}

// NewTextSource returns a Source holding the literal text
func NewTextSource(text string) Source {
	return Source{kind: KindText, content: text}
}

// NewFileSource reads the named file and returns a Source holding its
// contents. Leading and trailing white space is removed and any invalid
// UTF-8 is replaced with the Unicode replacement character. If the file
// cannot be read a FileUnreadableError is returned.
func NewFileSource(path string) (Source, error) {
	b, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return Source{}, FileUnreadableError{Path: path, Err: err}
	}

	content := string(b)
	if !utf8.ValidString(content) {
		content = strings.ToValidUTF8(content, string(utf8.RuneError))
	}

	return Source{
		kind:    KindFile,
		path:    path,
		content: strings.TrimSpace(content),
	}, nil
}

// Kind returns the kind of the Source
func (s Source) Kind() Kind {
	return s.kind
}

// Path returns the name of the file the intention was read from. It is
// empty for a text Source.
func (s Source) Path() string {
	return s.path
}

// Value returns the intention
func (s Source) Value() string {
	return s.content
}

// Describe returns a short description of the Source suitable for showing
// to the user. The file contents are not shown.
func (s Source) Describe() string {
	if s.kind == KindFile {
		return "File '" + s.path + "'"
	}

	return "Intent '" + s.content + "'"
}
