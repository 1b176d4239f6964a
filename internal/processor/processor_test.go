package processor

import (
	"bytes"
	"context"
	"testing"

	"flacted/internal/invocation"
	"flacted/internal/metaflac/metaflactest"
	"flacted/internal/scanner"
	"flacted/internal/writer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var files = []scanner.AudioFile{{Path: "a.flac"}, {Path: "b.flac"}}

func TestProcess_Get(t *testing.T) {
	rec := &metaflactest.Recorder{Respond: metaflactest.Always("TITLE=Song\n")}
	var out bytes.Buffer

	inv := invocation.Invocation{Mode: invocation.ModeGet, TagKey: "title"}
	err := New(rec, &out).Process(context.Background(), inv, files, &writer.TagData{Album: "ignored"})
	require.NoError(t, err)

	assert.Equal(t, "a.flac: Song\nb.flac: Song\n", out.String())
	for _, call := range rec.Calls() {
		assert.Equal(t, "--show-tag=Title", call[0])
	}
}

func TestProcess_Set(t *testing.T) {
	rec := &metaflactest.Recorder{}
	var out bytes.Buffer

	inv := invocation.Invocation{Mode: invocation.ModeSet}
	err := New(rec, &out).Process(context.Background(), inv, files, &writer.TagData{Album: "A"})
	require.NoError(t, err)

	assert.Empty(t, out.String())
	require.Len(t, rec.Calls(), 1)
	assert.Equal(t, []string{
		"--preserve-modtime",
		"--no-utf8-convert",
		"--set-tag=Album=A",
		"a.flac",
		"b.flac",
	}, rec.Calls()[0])
}

func TestProcess_UnknownMode(t *testing.T) {
	rec := &metaflactest.Recorder{}
	err := New(rec, &bytes.Buffer{}).Process(context.Background(), invocation.Invocation{Mode: invocation.Mode(9)}, files, &writer.TagData{})
	require.Error(t, err)
	assert.Empty(t, rec.Calls())
}
