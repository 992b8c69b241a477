package audio

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFFmpeg(t *testing.T) {
	f := NewFFmpeg()
	assert.Equal(t, "ffmpeg", f.binary)

	f = NewFFmpeg(WithBinary("ffmpeg-static"))
	assert.Equal(t, "ffmpeg-static", f.binary)

	f = NewFFmpeg(WithBinary(""))
	assert.Equal(t, "ffmpeg", f.binary)
}

func TestArgs(t *testing.T) {
	f := NewFFmpeg()

	params := TagParams{
		InputPath:  "in.wav",
		OutputPath: "out.m4a",
		Tags: map[string]string{
			"title":  "Track One",
			"artist": "Artist A",
			"album":  "Demo",
			"track":  "1/2",
			"date":   "",
		},
	}

	args := f.args(params)
	assert.Equal(t, []string{
		"-y", "-i", "in.wav",
		"-metadata", "album=Demo",
		"-metadata", "artist=Artist A",
		"-metadata", "title=Track One",
		"-metadata", "track=1/2",
		"-c", "copy",
		"out.m4a",
	}, args)
}

func TestArgsReencode(t *testing.T) {
	f := NewFFmpeg()

	args := f.args(TagParams{InputPath: "in.wav", OutputPath: "out.m4a", Reencode: true})
	assert.Equal(t, []string{"-y", "-i", "in.wav", "-c:a", "alac", "out.m4a"}, args)
}

func TestValidateFile(t *testing.T) {
	f := NewFFmpeg()
	dir := t.TempDir()

	missing := filepath.Join(dir, "missing.wav")
	assert.ErrorIs(t, f.validateFile(missing), ErrFileNotFound)

	empty := filepath.Join(dir, "empty.wav")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	assert.ErrorIs(t, f.validateFile(empty), ErrFileEmpty)

	assert.ErrorIs(t, f.validateFile(dir), ErrInvalidPath)

	ok := filepath.Join(dir, "ok.wav")
	require.NoError(t, os.WriteFile(ok, []byte("RIFF"), 0o644))
	assert.NoError(t, f.validateFile(ok))
}

func TestTranscodeMissingInput(t *testing.T) {
	f := NewFFmpeg()

	err := f.Transcode(context.Background(), TagParams{
		InputPath:  filepath.Join(t.TempDir(), "missing.wav"),
		OutputPath: "out.m4a",
	})
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestTranscodeCommandFailure(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.wav")
	require.NoError(t, os.WriteFile(input, []byte("not really audio"), 0o644))

	// "false" exits non-zero regardless of arguments.
	f := NewFFmpeg(WithBinary("false"))
	err := f.Transcode(context.Background(), TagParams{
		InputPath:  input,
		OutputPath: filepath.Join(dir, "out.m4a"),
	})

	require.Error(t, err)
	var ffErr *ffmpegError
	assert.ErrorAs(t, err, &ffErr)
}
