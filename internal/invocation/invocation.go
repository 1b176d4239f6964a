// Package invocation decides between setting and showing tags from the name the program was started under.
package invocation

import (
	"fmt"
	"strings"
)

// Mode is the operating mode of a run
type Mode int

const (
	// ModeSet writes tags onto the given files
	ModeSet Mode = iota
	// ModeGet prints one tag of each given file
	ModeGet
)

func (m Mode) String() string {
	switch m {
	case ModeSet:
		return "set"
	case ModeGet:
		return "get"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Invocation is the resolved mode plus the tag key requested in get mode
type Invocation struct {
	Mode   Mode
	TagKey string
}

// Resolve maps the program name to a mode.
// Running under the canonical name, or without files, sets tags.
// Any other name of the form prefix-tagname shows tagname, e.g. flac-title.
func Resolve(invokedAs, canonical string, fileCount int) (Invocation, error) {
	if invokedAs == canonical || fileCount == 0 {
		return Invocation{Mode: ModeSet}, nil
	}

	parts := strings.Split(invokedAs, "-")
	if len(parts) < 2 {
		return Invocation{}, fmt.Errorf("cannot derive a tag name from program name %q", invokedAs)
	}

	return Invocation{
		Mode:   ModeGet,
		TagKey: strings.ToLower(parts[1]),
	}, nil
}
