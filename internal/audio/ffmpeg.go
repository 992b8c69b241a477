// Package audio rewrites audio files and embeds tags by driving
// ffmpeg as an external tool.
package audio

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"sort"
)

var (
	ErrFileNotFound = fmt.Errorf("file not found")
	ErrFileEmpty    = fmt.Errorf("file is empty")
	ErrInvalidPath  = fmt.Errorf("invalid path")
)

// fallbackCodec is used when a plain stream copy fails, e.g. when the
// source codec cannot live in the destination container.
const fallbackCodec = "alac"

var commandContext = exec.CommandContext

// ffmpegError wraps ffmpeg command failures with additional context.
type ffmpegError struct {
	cmd     string
	output  string
	wrapped error
}

func (e *ffmpegError) Error() string {
	return fmt.Sprintf("ffmpeg error: %s\nCommand: %s\nOutput: %s", e.wrapped, e.cmd, e.output)
}

func (e *ffmpegError) Unwrap() error {
	return e.wrapped
}

// newFFmpegError creates an ffmpegError with a truncated command line.
func newFFmpegError(cmd *exec.Cmd, output []byte, err error) error {
	cmdStr := cmd.String()
	if len(cmdStr) > 200 {
		cmdStr = cmdStr[:200] + "..."
	}
	return &ffmpegError{
		cmd:     cmdStr,
		output:  string(output),
		wrapped: err,
	}
}

// TagParams describes one transcode-and-tag invocation.
type TagParams struct {
	InputPath  string
	OutputPath string

	// Tags holds ffmpeg metadata key/value pairs; empty values are
	// dropped.
	Tags map[string]string

	// Reencode forces an audio re-encode instead of a stream copy.
	Reencode bool
}

// Transcoder rewrites one audio file with embedded metadata.
type Transcoder interface {
	Transcode(ctx context.Context, params TagParams) error
}

// Option configures the ffmpeg client.
type Option func(*FFmpeg)

// WithBinary overrides the default binary name.
func WithBinary(binary string) Option {
	return func(f *FFmpeg) {
		if binary != "" {
			f.binary = binary
		}
	}
}

// FFmpeg wraps the ffmpeg command-line tool.
type FFmpeg struct {
	binary string
}

func NewFFmpeg(opts ...Option) *FFmpeg {
	f := &FFmpeg{binary: "ffmpeg"}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *FFmpeg) validateFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return fmt.Errorf("unable to access file: %s: %w", path, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrInvalidPath, path)
	}

	if info.Size() == 0 {
		return fmt.Errorf("%w: %s", ErrFileEmpty, path)
	}

	return nil
}

// Transcode rewrites the input into the output path with the given
// tags, copying the audio stream unless a re-encode was requested.
func (f *FFmpeg) Transcode(ctx context.Context, params TagParams) error {
	slog.Debug("Transcoding track",
		"input", params.InputPath,
		"output", params.OutputPath,
		"reencode", params.Reencode,
	)

	if err := f.validateFile(params.InputPath); err != nil {
		return fmt.Errorf("transcode failed: %w", err)
	}

	cmd := commandContext(ctx, f.binary, f.args(params)...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return newFFmpegError(cmd, output, err)
	}

	return nil
}

func (f *FFmpeg) args(params TagParams) []string {
	args := []string{"-y", "-i", params.InputPath}

	keys := make([]string, 0, len(params.Tags))
	for k := range params.Tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if params.Tags[k] == "" {
			continue
		}
		args = append(args, "-metadata", fmt.Sprintf("%s=%s", k, params.Tags[k]))
	}

	if params.Reencode {
		args = append(args, "-c:a", fallbackCodec)
	} else {
		args = append(args, "-c", "copy")
	}

	return append(args, params.OutputPath)
}

var _ Transcoder = (*FFmpeg)(nil)
