package nx

import (
	"os"

	"github.com/edsrzf/mmap-go"
)

// mappedRegion is a read-only view of a file's bytes, mapped directly into
// the process address space. Node, Bitmap and Audio handles never copy out
// of it; they read through it for as long as the owning Archive is alive.
type mappedRegion struct {
	file *os.File
	m    mmap.MMap
}

// openMappedRegion maps path read-only. The caller must call close to
// release the mapping and the underlying file descriptor.
func openMappedRegion(path string) (*mappedRegion, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newIoError(path, err)
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, newIoError(path, err)
	}

	return &mappedRegion{file: f, m: m}, nil
}

// bytes returns the mapped bytes. The slice is valid exactly as long as the
// region is open.
func (r *mappedRegion) bytes() []byte {
	return r.m
}

func (r *mappedRegion) close() error {
	unmapErr := r.m.Unmap()
	closeErr := r.file.Close()
	if unmapErr != nil {
		return unmapErr
	}
	return closeErr
}
