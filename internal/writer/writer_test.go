package writer

import (
	"context"
	"errors"
	"testing"

	"flacted/internal/metaflac"
	"flacted/internal/metaflac/metaflactest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldTagName(t *testing.T) {
	want := map[Field]string{
		Album:  "Album",
		Artist: "Artist",
		Genre:  "Genre",
		Title:  "Title",
		Track:  "Tracknumber",
		Year:   "Date",
	}
	for _, f := range Fields {
		assert.Equal(t, want[f], f.TagName(), f.String())
	}
	assert.Len(t, Fields, len(want))
}

func TestFieldTagName_Unknown(t *testing.T) {
	assert.Panics(t, func() { _ = Field(42).TagName() })
}

func TestBuildPlan(t *testing.T) {
	data := &TagData{
		Album:  "A",
		Artist: " B ",
		Track:  1,
		Year:   2023,
	}

	plan, err := BuildPlan(data, []string{"a.flac", "b.flac"})
	require.NoError(t, err)

	assert.Nil(t, plan.CleanUp)
	assert.Equal(t, []string{
		"--preserve-modtime",
		"--no-utf8-convert",
		"--set-tag=Album=A",
		"--set-tag=Artist=B",
		"--set-tag=Tracknumber=1",
		"--set-tag=Date=2023",
		"a.flac",
		"b.flac",
	}, plan.Main)
}

func TestBuildPlan_DeleteAllBefore(t *testing.T) {
	data := &TagData{Genre: "Jazz", Picture: "cover.jpg", DeleteAllBefore: true}

	plan, err := BuildPlan(data, []string{"a.flac"})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"--preserve-modtime",
		"--no-utf8-convert",
		"--remove-all-tags",
		"a.flac",
	}, plan.CleanUp)
	assert.Equal(t, []string{
		"--preserve-modtime",
		"--no-utf8-convert",
		"--set-tag=Genre=Jazz",
		"--import-picture-from=cover.jpg",
		"a.flac",
	}, plan.Main)
}

func TestBuildPlan_NothingToDo(t *testing.T) {
	tests := []struct {
		name string
		data *TagData
	}{
		{name: "empty", data: &TagData{}},
		{name: "zero numbers", data: &TagData{Track: 0, Year: 0}},
		{name: "delete only", data: &TagData{DeleteAllBefore: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildPlan(tt.data, []string{"a.flac"})
			assert.ErrorIs(t, err, ErrNothingToDo)
		})
	}
}

func TestBuildPlan_PictureOnly(t *testing.T) {
	plan, err := BuildPlan(&TagData{Picture: "front.png"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"--preserve-modtime",
		"--no-utf8-convert",
		"--import-picture-from=front.png",
	}, plan.Main)
}

func TestBuildPlan_WhitespaceValueIsSupplied(t *testing.T) {
	plan, err := BuildPlan(&TagData{Title: "   "}, []string{"a.flac"})
	require.NoError(t, err)
	assert.Contains(t, plan.Main, "--set-tag=Title=")
}

func TestApply_SingleCall(t *testing.T) {
	rec := &metaflactest.Recorder{}
	w := New(rec)

	err := w.Apply(context.Background(), &TagData{Album: "A", Title: "T"}, []string{"a.flac", "b.flac"})
	require.NoError(t, err)

	calls := rec.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, []string{
		"--preserve-modtime",
		"--no-utf8-convert",
		"--set-tag=Album=A",
		"--set-tag=Title=T",
		"a.flac",
		"b.flac",
	}, calls[0])
}

func TestApply_CleanUpRunsFirst(t *testing.T) {
	rec := &metaflactest.Recorder{}
	w := New(rec)

	err := w.Apply(context.Background(), &TagData{Year: 1999, DeleteAllBefore: true}, []string{"a.flac"})
	require.NoError(t, err)

	calls := rec.Calls()
	require.Len(t, calls, 2)
	assert.Contains(t, calls[0], "--remove-all-tags")
	assert.Contains(t, calls[1], "--set-tag=Date=1999")
}

func TestApply_NothingToDoRunsNothing(t *testing.T) {
	rec := &metaflactest.Recorder{}
	w := New(rec)

	err := w.Apply(context.Background(), &TagData{DeleteAllBefore: true}, []string{"a.flac"})
	assert.ErrorIs(t, err, ErrNothingToDo)
	assert.Empty(t, rec.Calls())
}

func TestApply_CleanUpFailureStopsRun(t *testing.T) {
	rec := &metaflactest.Recorder{Respond: func([]string) (string, error) {
		return "", &metaflac.ExitError{Code: 2}
	}}
	w := New(rec)

	err := w.Apply(context.Background(), &TagData{Album: "A", DeleteAllBefore: true}, []string{"a.flac"})
	require.Error(t, err)
	assert.Len(t, rec.Calls(), 1)

	var exitErr *metaflac.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 2, exitErr.Code)
}

func TestApply_NonUTF8ValueIsPassedThrough(t *testing.T) {
	rec := &metaflactest.Recorder{}
	w := New(rec)

	album := string([]byte("Caf\xe9"))
	err := w.Apply(context.Background(), &TagData{Album: album}, []string{"a.flac"})
	require.NoError(t, err)
	assert.Contains(t, rec.Calls()[0], "--set-tag=Album="+album)
}
