//go:build unix

package mem

import (
	"math"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

type hostMapper struct{}

// HostMapper returns a Mapper backed by anonymous private host mappings.
func HostMapper() Mapper {
	return hostMapper{}
}

// HostPageSize returns the page size of the host.
func HostPageSize() uint64 {
	return uint64(unix.Getpagesize())
}

func (hostMapper) Map(size uint64) ([]byte, error) {
	if size > math.MaxInt {
		return nil, errors.Errorf("mem: %d bytes exceeds the address space", size)
	}

	b, err := unix.Mmap(-1, 0, int(size),
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, errors.Wrapf(err, "mem: mmap %d bytes", size)
	}

	return b, nil
}

func (hostMapper) Unmap(b []byte) error {
	return unix.Munmap(b)
}
