package nx

import (
	"fmt"

	"github.com/pkg/errors"
)

// IoError wraps a failure to open or map the archive file.
type IoError struct {
	Path string
	Err  error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("nx: io error opening %q: %v", e.Path, e.Err)
}

func (e *IoError) Unwrap() error { return e.Err }

func newIoError(path string, err error) error {
	return &IoError{Path: path, Err: errors.Wrapf(err, "mapping %q", path)}
}

// FormatError reports a structural problem with the archive header, found
// when the archive is opened: a file shorter than the header, a bad magic,
// or a table that runs past the end of the file. A child range that
// escapes the node table or an out-of-range string/bitmap/audio index is
// not reported as an error; the accessor that meets it returns a null
// handle or an empty value instead.
type FormatError struct {
	Path   string
	Offset int64
	Reason string
}

func (e *FormatError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("nx: invalid format in %q at offset %d: %s", e.Path, e.Offset, e.Reason)
	}
	return fmt.Sprintf("nx: invalid format at offset %d: %s", e.Offset, e.Reason)
}

func newFormatError(path string, offset int64, reason string) error {
	return &FormatError{Path: path, Offset: offset, Reason: reason}
}

// DecompressError reports a failure to LZ4-decompress a bitmap blob.
type DecompressError struct {
	BlobOffset   uint64
	ExpectedLen  uint32
	ActualLen    int
	Err          error
}

func (e *DecompressError) Error() string {
	return fmt.Sprintf("nx: lz4 decompress failed at blob offset %d (expected %d bytes, got %d): %v",
		e.BlobOffset, e.ExpectedLen, e.ActualLen, e.Err)
}

func (e *DecompressError) Unwrap() error { return e.Err }

func newDecompressError(blobOffset uint64, expected uint32, actual int, err error) error {
	return &DecompressError{
		BlobOffset:  blobOffset,
		ExpectedLen: expected,
		ActualLen:   actual,
		Err:         errors.Wrap(err, "lz4 uncompress block"),
	}
}
