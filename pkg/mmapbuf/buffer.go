// Package mmapbuf memory-maps a file read-only and exposes it as a byte
// slice bound to the buffer's own lifetime.
package mmapbuf

import (
	"os"

	"github.com/theSprog/FlameCrafter/pkg/flameerr"
)

// Buffer is a read-only view over a memory-mapped file. The slice returned
// by Bytes is only valid until Close is called.
type Buffer struct {
	data []byte
	raw  mapping
}

// Open memory-maps path read-only. It returns a flameerr of Kind
// FileNotFound if the file does not exist, or Kind IO for any other
// open/stat/map failure.
func Open(path string) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, flameerr.Wrap(flameerr.FileNotFound, err, "open input file")
		}
		return nil, flameerr.Wrap(flameerr.IO, err, "open input file")
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, flameerr.Wrap(flameerr.IO, err, "stat input file")
	}
	size := info.Size()
	if size == 0 {
		return &Buffer{data: nil}, nil
	}

	m, err := mmap(f, size)
	if err != nil {
		return nil, flameerr.Wrap(flameerr.IO, err, "mmap input file")
	}
	return &Buffer{data: m.bytes(), raw: m}, nil
}

// Bytes returns the buffer's contents. The returned slice must not be
// retained past Close.
func (b *Buffer) Bytes() []byte { return b.data }

// Close unmaps the buffer. It is safe to call multiple times.
func (b *Buffer) Close() error {
	if b.data == nil {
		return nil
	}
	err := b.raw.unmap()
	b.data = nil
	return err
}
