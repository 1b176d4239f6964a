package metaflac

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultPath is the binary looked up in PATH when no path is configured
const DefaultPath = "metaflac"

const (
	PreserveModtime = "--preserve-modtime"
	NoUTF8Convert   = "--no-utf8-convert"
	RemoveAllTags   = "--remove-all-tags"
)

// ShowTag returns the flag that prints all values of the named tag
func ShowTag(name string) string {
	return "--show-tag=" + name
}

// SetTag returns the flag that adds name=value to the Vorbis comment block
func SetTag(name, value string) string {
	return fmt.Sprintf("--set-tag=%s=%s", name, value)
}

// ImportPictureFrom returns the flag that attaches a picture file as cover art
func ImportPictureFrom(path string) string {
	return "--import-picture-from=" + path
}

// Runner runs metaflac with the given arguments and returns its standard output
type Runner interface {
	Run(ctx context.Context, args ...string) (string, error)
}

// ExitError is returned when metaflac exits with a non-zero status
type ExitError struct {
	Args   []string
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("metaflac failed (exit code %d): %s", e.Code, e.Stderr)
	}
	return fmt.Sprintf("metaflac failed with exit code %d", e.Code)
}

// Command runs the metaflac binary as a subprocess
type Command struct {
	Path  string
	Debug bool

	// Stdout and Stderr receive metaflac's output in debug mode.
	// They default to the process streams.
	Stdout io.Writer
	Stderr io.Writer
}

// New creates a Command for the binary at path
func New(path string, debug bool) *Command {
	if path == "" {
		path = DefaultPath
	}
	return &Command{
		Path:   path,
		Debug:  debug,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run executes metaflac and blocks until it exits
func (c *Command) Run(ctx context.Context, args ...string) (string, error) {
	logrus.WithField("args", args).Debugf("running %s", c.Path)

	cmd := exec.CommandContext(ctx, c.Path, args...)
	var stdout, stderr bytes.Buffer
	if c.Debug {
		cmd.Stdout = io.MultiWriter(&stdout, orDiscard(c.Stdout))
		cmd.Stderr = io.MultiWriter(&stderr, orDiscard(c.Stderr))
	} else {
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	}

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return stdout.String(), &ExitError{
				Args:   args,
				Code:   exitError.ExitCode(),
				Stderr: strings.TrimSpace(stderr.String()),
			}
		}
		return stdout.String(), fmt.Errorf("metaflac failed to execute: %w", err)
	}

	return stdout.String(), nil
}

func orDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}
