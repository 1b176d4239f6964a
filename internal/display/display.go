package display

import (
	"fmt"
	"io"
)

// Printer writes one tag value per line
type Printer struct {
	w            io.Writer
	showFilename bool
}

// NewPrinter creates a Printer for a run over fileCount files.
// File names are only printed when there is more than one file.
func NewPrinter(w io.Writer, fileCount int) *Printer {
	return &Printer{
		w:            w,
		showFilename: fileCount > 1,
	}
}

// PrintValue prints the value found in file
func (p *Printer) PrintValue(file string, value string) error {
	var err error
	if p.showFilename {
		_, err = fmt.Fprintf(p.w, "%s: %s\n", file, value)
	} else {
		_, err = fmt.Fprintln(p.w, value)
	}
	return err
}
