//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package mmapbuf

import (
	"os"

	"golang.org/x/sys/unix"
)

// mapping is a live mmap region on unix platforms.
type mapping struct {
	data []byte
}

func mmap(f *os.File, size int64) (mapping, error) {
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return mapping{}, err
	}
	_ = unix.Madvise(data, unix.MADV_WILLNEED)
	return mapping{data: data}, nil
}

func (m mapping) bytes() []byte { return m.data }

func (m mapping) unmap() error {
	return unix.Munmap(m.data)
}
