package mem

import (
	"math/bits"
)

// PageSize is the page size of the simulated machine, in bytes.
const PageSize = 4096

// MB is the number of bytes in a megabyte.
const MB = 1 << 20

// ShrinkRatio is the factor applied to a size that the host refused to map.
type ShrinkRatio struct {
	Num uint64
	Den uint64
}

// DefaultShrinkRatio reduces a refused size by roughly 9%.
var DefaultShrinkRatio = ShrinkRatio{Num: 10, Den: 11}

// Apply returns size scaled by the ratio.
func (r ShrinkRatio) Apply(size uint64) uint64 {
	// Num < Den keeps the quotient within 64 bits.
	hi, lo := bits.Mul64(size, r.Num)
	q, _ := bits.Div64(hi, lo, r.Den)
	return q
}

// DefaultSize returns the target memory size used when none is requested.
// 64-bit hosts get 4 GiB; 32-bit hosts get 1 GiB.
func DefaultSize() uint64 {
	if bits.UintSize == 64 {
		return 1 << 32
	}

	return 1 << 30
}

// Quantum returns the allocation granularity for a host with the given page
// size.
func Quantum(hostPageSize uint64) uint64 {
	return max(PageSize, hostPageSize)
}

// RoundDown rounds size down to a multiple of quantum.
func RoundDown(size, quantum uint64) uint64 {
	return size / quantum * quantum
}

// Plan lists the sizes to try mapping, largest first. The first entry is the
// requested size rounded down to the quantum; each next entry shrinks the
// previous one by the ratio and rounds it down again. The plan stops before
// the size reaches zero, so an empty plan means no usable size exists.
func Plan(requested, quantum uint64, ratio ShrinkRatio) []uint64 {
	if quantum == 0 || ratio.Den == 0 || ratio.Num >= ratio.Den {
		panic("mem: invalid sizing parameters")
	}

	var sizes []uint64

	size := RoundDown(requested, quantum)
	for size > 0 {
		sizes = append(sizes, size)
		size = RoundDown(ratio.Apply(size), quantum)
	}

	return sizes
}
