package processor

import (
	"context"
	"fmt"
	"io"

	"flacted/internal/display"
	"flacted/internal/invocation"
	"flacted/internal/metaflac"
	"flacted/internal/scanner"
	"flacted/internal/tagger"
	"flacted/internal/writer"

	"github.com/sirupsen/logrus"
)

// Processor runs one invocation against a list of files
type Processor struct {
	reader *tagger.Reader
	writer *writer.TagWriter
	out    io.Writer
}

// New creates a Processor that calls metaflac through runner and prints to out
func New(runner metaflac.Runner, out io.Writer) *Processor {
	return &Processor{
		reader: tagger.NewReader(runner),
		writer: writer.New(runner),
		out:    out,
	}
}

// Process shows or sets tags depending on the resolved mode.
// data is ignored when showing tags.
func (p *Processor) Process(ctx context.Context, inv invocation.Invocation, files []scanner.AudioFile, data *writer.TagData) error {
	for _, f := range files {
		if !f.IsFLAC() {
			logrus.WithField("file", f.Path).Debug("file does not look like FLAC")
		}
	}
	paths := scanner.Paths(files)

	logrus.WithFields(logrus.Fields{
		"mode":  inv.Mode.String(),
		"files": len(paths),
	}).Debug("processing")

	switch inv.Mode {
	case invocation.ModeGet:
		printer := display.NewPrinter(p.out, len(paths))
		return p.reader.Show(ctx, printer, paths, inv.TagKey)
	case invocation.ModeSet:
		return p.writer.Apply(ctx, data, paths)
	default:
		return fmt.Errorf("unknown mode: %s", inv.Mode)
	}
}
