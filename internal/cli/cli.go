package cli

import (
	"errors"
	"fmt"
	"io"

	"flacted/internal/config"
	"flacted/internal/invocation"
	"flacted/internal/metaflac"
	"flacted/internal/processor"
	"flacted/internal/scanner"
	"flacted/internal/writer"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const usage = `Usage:
  flacted [files...] [options]
  flac-<tag> [files...]

Front-end to metaflac to set common tags. When invoked under another name
such as flac-title, flac-year or flac-track, the named tag of each file is
printed instead and all options are ignored.

Options:
  -A, --album string         Album
  -a, --artist string        Track artist
  -g, --genre string         Genre
  -t, --title string         Track title
  -T, --track int            Track number
  -y, --year int             Year
  -p, --picture string       Cover artwork to attach
  -D, --delete-all-before    Delete all existing tags before processing
  -d, --debug                Enable debug output
  -h, --help                 Show this help

Examples:
  flacted -A "Abbey Road" -a "The Beatles" -y 1969 *.flac
  flacted -D -T 1 -t "Come Together" -p cover.jpg 01.flac
  flac-title *.flac
`

// Options configures the root command
type Options struct {
	// InvokedAs is the base name the program was started under
	InvokedAs string
	// Runner replaces the metaflac binary when set
	Runner metaflac.Runner
}

type tagFlags struct {
	album           string
	artist          string
	genre           string
	title           string
	track           int
	year            int
	picture         string
	deleteAllBefore bool
	debug           bool
}

func (f *tagFlags) tagData() *writer.TagData {
	return &writer.TagData{
		Album:           f.album,
		Artist:          f.artist,
		Genre:           f.genre,
		Title:           f.title,
		Track:           f.track,
		Year:            f.year,
		Picture:         f.picture,
		DeleteAllBefore: f.deleteAllBefore,
	}
}

// NewRootCommand builds the flacted command
func NewRootCommand(opts Options) *cobra.Command {
	flags := &tagFlags{}

	cmd := &cobra.Command{
		Use:           "flacted [files...]",
		Short:         "Front-end to metaflac to set common tags",
		Long:          usage,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, flags, args)
		},
	}

	cmd.SetHelpTemplate(`{{.Long}}`)
	cmd.SetUsageTemplate(`{{.Long}}`)

	f := cmd.Flags()
	f.StringVarP(&flags.album, "album", "A", "", "Album")
	f.StringVarP(&flags.artist, "artist", "a", "", "Track artist")
	f.StringVarP(&flags.genre, "genre", "g", "", "Genre")
	f.StringVarP(&flags.title, "title", "t", "", "Track title")
	f.IntVarP(&flags.track, "track", "T", 0, "Track number")
	f.IntVarP(&flags.year, "year", "y", 0, "Year")
	f.StringVarP(&flags.picture, "picture", "p", "", "Cover artwork to attach")
	f.BoolVarP(&flags.deleteAllBefore, "delete-all-before", "D", false, "Delete all existing tags before processing")
	f.BoolVarP(&flags.debug, "debug", "d", false, "Enable debug output")

	return cmd
}

func run(cmd *cobra.Command, opts Options, flags *tagFlags, args []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}
	setupLogging(cmd.ErrOrStderr(), cfg.Debug)

	files, err := scanner.Scan(args)
	if err != nil {
		return err
	}

	inv, err := invocation.Resolve(opts.InvokedAs, cfg.Program, len(files))
	if err != nil {
		return err
	}

	runner := opts.Runner
	if runner == nil {
		c := metaflac.New(cfg.Metaflac, cfg.Debug)
		c.Stdout = cmd.OutOrStdout()
		c.Stderr = cmd.ErrOrStderr()
		runner = c
	}

	proc := processor.New(runner, cmd.OutOrStdout())
	return proc.Process(cmd.Context(), inv, files, flags.tagData())
}

func setupLogging(w io.Writer, debug bool) {
	logrus.SetOutput(w)
	if debug {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
}

// Run executes cmd and reports a failure on its error stream
func Run(cmd *cobra.Command) error {
	err := cmd.Execute()
	switch {
	case err == nil:
	case errors.Is(err, writer.ErrNothingToDo):
		fmt.Fprintln(cmd.ErrOrStderr(), "Not doing anything.")
	default:
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}

// Execute runs flacted as invoked under the given program name
func Execute(invokedAs string) error {
	return Run(NewRootCommand(Options{InvokedAs: invokedAs}))
}

// ExitCode maps an error returned by Execute to a process exit status.
// metaflac failures keep metaflac's own status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *metaflac.ExitError
	if errors.As(err, &exitErr) && exitErr.Code > 0 {
		return exitErr.Code
	}
	return 1
}
