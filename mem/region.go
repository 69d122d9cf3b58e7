package mem

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrNoMemory is returned when the host cannot map even the smallest
// quantum-aligned region.
var ErrNoMemory = errors.New("mem: cannot allocate target memory")

// A Mapper obtains and releases host memory for the target machine.
type Mapper interface {
	// Map returns size bytes of zero-filled writable memory.
	Map(size uint64) ([]byte, error)

	// Unmap releases memory returned by Map.
	Unmap(b []byte) error
}

// A Region is the backing store of the target machine's physical memory.
type Region struct {
	data      []byte
	requested uint64
	mapper    Mapper
}

// Allocate maps the largest region the host grants, starting from the
// requested number of bytes and shrinking along Plan. A zero request uses
// DefaultSize.
func Allocate(mapper Mapper, requested, quantum uint64) (*Region, error) {
	if requested == 0 {
		requested = DefaultSize()
	}

	wanted := RoundDown(requested, quantum)
	plan := Plan(requested, quantum, DefaultShrinkRatio)

	var lastErr error
	for _, size := range plan {
		data, err := mapper.Map(size)
		if err != nil {
			lastErr = err
			continue
		}

		if size != wanted {
			logrus.Warnf("only got %d bytes of target mem (wanted %d)",
				size, wanted)
		}

		r := &Region{
			data:      data,
			requested: wanted,
			mapper:    mapper,
		}

		return r, nil
	}

	if lastErr == nil {
		return nil, errors.Wrapf(ErrNoMemory,
			"%d bytes is smaller than the %d byte quantum", requested, quantum)
	}

	return nil, errors.Wrapf(ErrNoMemory, "last attempt: %v", lastErr)
}

// Size returns the number of bytes in the region.
func (r *Region) Size() uint64 {
	return uint64(len(r.data))
}

// Requested returns the quantum-aligned size that was asked for.
func (r *Region) Requested() uint64 {
	return r.requested
}

// Degraded tells if the host granted less than was requested.
func (r *Region) Degraded() bool {
	return r.Size() < r.requested
}

// Bytes exposes the raw memory. The slice is invalid after Close.
func (r *Region) Bytes() []byte {
	return r.data
}

// Close returns the memory to the host. Calling Close more than once has no
// effect.
func (r *Region) Close() error {
	if r.data == nil {
		return nil
	}

	data := r.data
	r.data = nil

	return errors.Wrap(r.mapper.Unmap(data), "mem: unmap target memory")
}
