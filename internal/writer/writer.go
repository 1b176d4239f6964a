package writer

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"flacted/internal/encoder"
	"flacted/internal/metaflac"

	"github.com/sirupsen/logrus"
)

// ErrNothingToDo is returned when neither a tag nor a picture was requested
var ErrNothingToDo = errors.New("no tags or picture to set")

// minArgs is the length of the base argument list plus one operation
const minArgs = 3

// Field is a tag that can be set from the command line
type Field int

const (
	Album Field = iota
	Artist
	Genre
	Title
	Track
	Year
)

// Fields lists every settable field in the order the set operations are emitted
var Fields = []Field{Album, Artist, Genre, Title, Track, Year}

// String returns the option name of the field
func (f Field) String() string {
	switch f {
	case Album:
		return "album"
	case Artist:
		return "artist"
	case Genre:
		return "genre"
	case Title:
		return "title"
	case Track:
		return "track"
	case Year:
		return "year"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}

// TagName returns the Vorbis comment name metaflac writes the field as
func (f Field) TagName() string {
	switch f {
	case Album:
		return "Album"
	case Artist:
		return "Artist"
	case Genre:
		return "Genre"
	case Title:
		return "Title"
	case Track:
		return "Tracknumber"
	case Year:
		return "Date"
	default:
		panic(fmt.Sprintf("writer: no tag name for %v", f))
	}
}

// TagData represents the tags to be written
type TagData struct {
	Album   string
	Artist  string
	Genre   string
	Title   string
	Track   int
	Year    int
	Picture string

	DeleteAllBefore bool
}

// Value returns the trimmed value of f and whether it was supplied.
// Empty strings and zero numbers count as not supplied.
func (d *TagData) Value(f Field) (string, bool) {
	var s string
	switch f {
	case Album:
		s = d.Album
	case Artist:
		s = d.Artist
	case Genre:
		s = d.Genre
	case Title:
		s = d.Title
	case Track:
		if d.Track == 0 {
			return "", false
		}
		return strconv.Itoa(d.Track), true
	case Year:
		if d.Year == 0 {
			return "", false
		}
		return strconv.Itoa(d.Year), true
	}
	if s == "" {
		return "", false
	}
	return strings.TrimSpace(s), true
}

// Plan holds the metaflac argument lists for one run.
// CleanUp is nil unless existing tags are removed first.
type Plan struct {
	CleanUp []string
	Main    []string
}

func baseArgs() []string {
	return []string{metaflac.PreserveModtime, metaflac.NoUTF8Convert}
}

// BuildPlan builds the metaflac calls that apply data to files
func BuildPlan(data *TagData, files []string) (*Plan, error) {
	args := baseArgs()
	for _, f := range Fields {
		value, ok := data.Value(f)
		if !ok {
			continue
		}
		args = append(args, metaflac.SetTag(f.TagName(), value))
	}
	if data.Picture != "" {
		args = append(args, metaflac.ImportPictureFrom(data.Picture))
	}
	if len(args) < minArgs {
		return nil, ErrNothingToDo
	}

	plan := &Plan{Main: append(args, files...)}
	if data.DeleteAllBefore {
		cleanUp := append(baseArgs(), metaflac.RemoveAllTags)
		plan.CleanUp = append(cleanUp, files...)
	}
	return plan, nil
}

// TagWriter writes tags through metaflac
type TagWriter struct {
	runner metaflac.Runner
}

// New creates a TagWriter backed by runner
func New(runner metaflac.Runner) *TagWriter {
	return &TagWriter{runner: runner}
}

// Apply writes data to every file with at most two metaflac calls:
// an optional removal of all existing tags, then all set operations at once.
func (w *TagWriter) Apply(ctx context.Context, data *TagData, files []string) error {
	plan, err := BuildPlan(data, files)
	if err != nil {
		return err
	}
	checkEncoding(data)

	if plan.CleanUp != nil {
		if _, err := w.runner.Run(ctx, plan.CleanUp...); err != nil {
			return fmt.Errorf("failed to remove existing tags: %w", err)
		}
	}

	if _, err := w.runner.Run(ctx, plan.Main...); err != nil {
		return fmt.Errorf("failed to set tags: %w", err)
	}

	return nil
}

// checkEncoding notes values metaflac will store without UTF-8 conversion
func checkEncoding(data *TagData) {
	for _, f := range []Field{Album, Artist, Genre, Title} {
		value, ok := data.Value(f)
		if !ok {
			continue
		}
		if charset, valid := encoder.Describe(value); !valid {
			logrus.WithFields(logrus.Fields{
				"field":   f.String(),
				"charset": charset,
			}).Debug("value is not valid UTF-8 and will be stored unconverted")
		}
	}
}
