package mem

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// ErrAccessFault is returned for accesses that fall outside the region or are
// made through a released MMU.
var ErrAccessFault = errors.New("mem: access fault")

// An MMU is one view into a Region. Translation is bare: target physical
// addresses are offsets into the region. Every MMU holds its own load
// reservation, while the bytes behind it are shared.
type MMU struct {
	region *Region

	reserved     bool
	reservedAddr uint64
}

// NewMMU binds an MMU to the region.
func NewMMU(r *Region) *MMU {
	return &MMU{region: r}
}

func (m *MMU) translate(addr, n uint64) ([]byte, error) {
	if m.region == nil {
		return nil, errors.Wrap(ErrAccessFault, "mmu released")
	}

	data := m.region.Bytes()
	size := uint64(len(data))
	if addr >= size || n > size-addr {
		return nil, errors.Wrapf(ErrAccessFault,
			"%d bytes at 0x%x beyond 0x%x", n, addr, size)
	}

	return data[addr : addr+n], nil
}

// Read copies len(buf) bytes starting at addr into buf.
func (m *MMU) Read(addr uint64, buf []byte) error {
	src, err := m.translate(addr, uint64(len(buf)))
	if err != nil {
		return err
	}

	copy(buf, src)

	return nil
}

// Write copies data to memory starting at addr.
func (m *MMU) Write(addr uint64, data []byte) error {
	dst, err := m.translate(addr, uint64(len(data)))
	if err != nil {
		return err
	}

	copy(dst, data)

	return nil
}

// Load64 reads a little-endian doubleword.
func (m *MMU) Load64(addr uint64) (uint64, error) {
	b, err := m.translate(addr, 8)
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint64(b), nil
}

// Store64 writes a little-endian doubleword.
func (m *MMU) Store64(addr, value uint64) error {
	b, err := m.translate(addr, 8)
	if err != nil {
		return err
	}

	binary.LittleEndian.PutUint64(b, value)

	return nil
}

// LoadReserved reads a doubleword and reserves its address.
func (m *MMU) LoadReserved(addr uint64) (uint64, error) {
	v, err := m.Load64(addr)
	if err != nil {
		return 0, err
	}

	m.reserved = true
	m.reservedAddr = addr

	return v, nil
}

// StoreConditional writes value only if addr is still reserved by this MMU.
// The reservation is consumed either way.
func (m *MMU) StoreConditional(addr, value uint64) (bool, error) {
	held := m.reserved && m.reservedAddr == addr
	m.reserved = false

	if !held {
		return false, nil
	}

	if err := m.Store64(addr, value); err != nil {
		return false, err
	}

	return true, nil
}

// Reservation returns the reserved address, if any.
func (m *MMU) Reservation() (addr uint64, ok bool) {
	return m.reservedAddr, m.reserved
}

// YieldLoadReservation drops the outstanding reservation. It does nothing if
// none is held.
func (m *MMU) YieldLoadReservation() {
	m.reserved = false
}

// Release unbinds the MMU from its region. Later accesses fault.
func (m *MMU) Release() {
	m.region = nil
	m.reserved = false
}
