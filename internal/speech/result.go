package speech

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"
)

// Result is one generated audio file on local disk. The caller owns it and
// must call Cleanup once the bytes have been sent.
type Result struct {
	Path           string
	Size           int64
	GenerationTime time.Duration
	ContentType    string
	Model          string
	Voice          string
}

// SizeKB is the file size in kilobytes (1024 bytes).
func (r *Result) SizeKB() float64 {
	return float64(r.Size) / 1024
}

// GenerationTimeHeader formats the provider latency in seconds.
func (r *Result) GenerationTimeHeader() string {
	return strconv.FormatFloat(r.GenerationTime.Seconds(), 'f', -1, 64)
}

// FileSizeHeader formats SizeKB for the X-File-Size header.
func (r *Result) FileSizeHeader() string {
	return strconv.FormatFloat(r.SizeKB(), 'f', -1, 64)
}

// Open opens the audio file for reading.
func (r *Result) Open() (*os.File, error) {
	return os.Open(r.Path)
}

// Cleanup removes the audio file. Removing an already missing file is not an
// error.
func (r *Result) Cleanup() error {
	if err := os.Remove(r.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
