// Package transcode normalizes staged videos into a web-compatible
// form before submission: H.264, yuv420p, audio track removed.
package transcode

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"time"
)

var commandContext = exec.CommandContext

// ErrTimeout is returned when ffmpeg exceeds the wall-clock limit.
var ErrTimeout = errors.New("video processing timed out")

// FailedError carries the captured ffmpeg stderr so an operator can
// see why the encode failed.
type FailedError struct {
	Stderr string
}

func (e *FailedError) Error() string {
	if e.Stderr == "" {
		return "ffmpeg failed: no error output"
	}
	return "ffmpeg failed: " + e.Stderr
}

type Transcoder interface {
	Normalize(ctx context.Context, videoPath string) (string, error)
}

type Option func(*FFmpeg)

func WithBinary(binary string) Option {
	return func(f *FFmpeg) {
		if binary != "" {
			f.binary = binary
		}
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(f *FFmpeg) {
		if timeout > 0 {
			f.timeout = timeout
		}
	}
}

// FFmpeg wraps the ffmpeg command-line encoder.
type FFmpeg struct {
	binary  string
	timeout time.Duration
}

func NewFFmpeg(opts ...Option) *FFmpeg {
	f := &FFmpeg{binary: "ffmpeg", timeout: 5 * time.Minute}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// TempPath is the derivative's location: a temp_-prefixed sibling of
// the source, kept in the same directory so later renames stay on one
// filesystem. The derivative is single-use scratch space and is always
// removed by the caller.
func TempPath(videoPath string) string {
	dir := filepath.Dir(videoPath)
	return filepath.Join(dir, "temp_"+filepath.Base(videoPath))
}

// Normalize re-encodes videoPath and returns the derivative path.
// Outcomes: path on success, ErrTimeout past the deadline, FailedError
// with captured stderr on a non-zero exit.
func (f *FFmpeg) Normalize(ctx context.Context, videoPath string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	outputPath := TempPath(videoPath)

	args := []string{
		"-i", videoPath,
		"-vcodec", "libx264",
		"-pix_fmt", "yuv420p",
		"-preset", "fast",
		"-an",
		"-y",
		outputPath,
	}

	cmd := commandContext(ctx, f.binary, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", ErrTimeout
		}
		return "", &FailedError{Stderr: stderr.String()}
	}

	return outputPath, nil
}

var _ Transcoder = (*FFmpeg)(nil)
