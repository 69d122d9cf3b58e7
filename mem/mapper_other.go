//go:build !unix

package mem

import (
	"math"
	"os"

	"github.com/pkg/errors"
)

type hostMapper struct{}

// HostMapper returns a Mapper backed by the Go heap. Hosts without mmap get
// no lazy zero pages, so large regions are committed up front.
func HostMapper() Mapper {
	return hostMapper{}
}

// HostPageSize returns the page size of the host.
func HostPageSize() uint64 {
	return uint64(os.Getpagesize())
}

func (hostMapper) Map(size uint64) (b []byte, err error) {
	if size > math.MaxInt {
		return nil, errors.Errorf("mem: %d bytes exceeds the address space", size)
	}

	defer func() {
		if recover() != nil {
			b, err = nil, errors.Errorf("mem: cannot allocate %d bytes", size)
		}
	}()

	return make([]byte, size), nil
}

func (hostMapper) Unmap([]byte) error {
	return nil
}
