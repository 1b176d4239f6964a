package tagger

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"flacted/internal/display"
	"flacted/internal/metaflac"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	keyYear  = "year"
	keyTrack = "track"
)

// Candidates returns the tag spellings probed for key, in probe order
func Candidates(key string) []string {
	candidates := []string{
		cases.Title(language.Und).String(key),
		strings.ToUpper(key),
		key,
	}
	// Vorbis comments store the year as DATE
	if key == keyYear {
		candidates = append(candidates, "Date", "DATE", "date")
	}
	return candidates
}

// ParseValue extracts the value from metaflac --show-tag output.
// metaflac echoes the stored field name, which may differ in case from
// the probed spelling, so only its length is used.
func ParseValue(output string, spelling string) string {
	output = strings.TrimSpace(output)
	if len(output) <= len(spelling) {
		return ""
	}

	value := output[len(spelling)+1:]
	if i := strings.IndexAny(value, "\r\n"); i >= 0 {
		value = value[:i]
	}
	return strings.TrimSpace(value)
}

// FormatTrack zero-pads a track number to at least two digits
func FormatTrack(value string) (string, bool) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("%02d", n), true
}

// Reader prints a single tag of each file
type Reader struct {
	runner metaflac.Runner
}

// NewReader creates a Reader backed by runner
func NewReader(runner metaflac.Runner) *Reader {
	return &Reader{runner: runner}
}

// Show prints the tag named key for every file.
// Any metaflac failure aborts the whole run.
func (r *Reader) Show(ctx context.Context, printer *display.Printer, files []string, key string) error {
	candidates := Candidates(key)

	for _, file := range files {
		value, err := r.lookup(ctx, file, candidates)
		if err != nil {
			return err
		}
		if value == "" {
			continue
		}

		if key == keyTrack {
			formatted, ok := FormatTrack(value)
			if !ok {
				logrus.WithFields(logrus.Fields{"file": file, "value": value}).Debug("ignoring non-numeric track")
				continue
			}
			value = formatted
		}

		if err := printer.PrintValue(file, value); err != nil {
			return err
		}
	}

	return nil
}

// lookup returns the first non-empty value among candidates
func (r *Reader) lookup(ctx context.Context, file string, candidates []string) (string, error) {
	for _, spelling := range candidates {
		out, err := r.runner.Run(ctx, metaflac.ShowTag(spelling), file)
		if err != nil {
			return "", fmt.Errorf("failed to read %s from %s: %w", spelling, file, err)
		}
		if value := ParseValue(out, spelling); value != "" {
			return value, nil
		}
	}
	return "", nil
}
