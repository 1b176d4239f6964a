package scanner

import (
	"fmt"
	"os"

	"github.com/dhowden/tag"
	"go.uber.org/multierr"
)

type AudioFile struct {
	Path string
	// Type is the container sniffed from the file header, empty when unknown
	Type tag.FileType
}

// IsFLAC reports whether the header identified a FLAC stream
func (f AudioFile) IsFLAC() bool {
	return f.Type == tag.FLAC
}

// Scan checks that every path is an existing regular file.
// All invalid paths are reported together.
func Scan(paths []string) ([]AudioFile, error) {
	files := make([]AudioFile, 0, len(paths))
	var errs error

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("invalid file %q: %w", path, err))
			continue
		}
		if !info.Mode().IsRegular() {
			errs = multierr.Append(errs, fmt.Errorf("invalid file %q: not a regular file", path))
			continue
		}

		files = append(files, AudioFile{
			Path: path,
			Type: identify(path),
		})
	}

	if errs != nil {
		return nil, errs
	}
	return files, nil
}

// Paths returns the paths of files in order
func Paths(files []AudioFile) []string {
	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.Path
	}
	return paths
}

func identify(path string) tag.FileType {
	f, err := os.Open(path)
	if err != nil {
		return tag.UnknownFileType
	}
	defer f.Close()

	_, typ, err := tag.Identify(f)
	if err != nil {
		return tag.UnknownFileType
	}
	return typ
}
