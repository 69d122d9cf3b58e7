// Package core provides a reference processor for the simulator.
//
// A Core decodes no instructions. Every step retires one instruction slot,
// which is enough to drive the scheduler, IPIs, and the host-target
// handshake. Cores with a step budget exit through tohost once it is spent.
package core

import (
	"github.com/sirupsen/logrus"

	"github.com/sarchlab/isasim/htif"
	"github.com/sarchlab/isasim/mem"
)

// A Core is a null-ISA processor.
type Core struct {
	ID        int
	Retired   uint64
	IPIsTaken uint64

	mmu    *mem.MMU
	budget uint64

	ipiPending bool
	halted     bool
	tohost     uint64
	fromhost   uint64
}

// New creates a core bound to its own MMU.
func New(id int, mmu *mem.MMU) *Core {
	return &Core{ID: id, mmu: mmu}
}

// WithBudget makes the core exit after retiring n steps. Zero means no limit.
func (c *Core) WithBudget(n uint64) *Core {
	c.budget = n
	return c
}

// Step retires up to n steps. A pending IPI is taken before the first one.
func (c *Core) Step(n uint64, noisy bool) {
	for i := uint64(0); i < n && !c.halted; i++ {
		if c.ipiPending {
			c.ipiPending = false
			c.IPIsTaken++
			logrus.Debugf("core %d: took IPI", c.ID)
		}

		c.Retired++

		if noisy {
			logrus.Infof("core %d: retired %d", c.ID, c.Retired)
		}

		if c.budget > 0 && c.Retired >= c.budget {
			c.exhaust()
		}
	}
}

func (c *Core) exhaust() {
	c.halted = true

	if c.ID == 0 {
		c.tohost = htif.HaltRequest
	}

	logrus.Debugf("core %d: budget of %d steps spent", c.ID, c.budget)
}

// Running tells if the core can make progress.
func (c *Core) Running() bool {
	return !c.halted
}

// Halt stops the core.
func (c *Core) Halt() {
	c.halted = true
}

// DeliverIPI marks an interrupt pending. It is taken on the next step.
func (c *Core) DeliverIPI() {
	c.ipiPending = true
}

// IPIPending tells if an interrupt is waiting to be taken.
func (c *Core) IPIPending() bool {
	return c.ipiPending
}

// MMU returns the core's view of memory.
func (c *Core) MMU() *mem.MMU {
	return c.mmu
}

// ToHost returns the word the core sends to the host.
func (c *Core) ToHost() uint64 {
	return c.tohost
}

// SetToHost overwrites the word the core sends to the host.
func (c *Core) SetToHost(v uint64) {
	c.tohost = v
}

// FromHost returns the last word the host sent.
func (c *Core) FromHost() uint64 {
	return c.fromhost
}

// SetFromHost delivers a word from the host.
func (c *Core) SetFromHost(v uint64) {
	c.fromhost = v
}

// Close releases the core's MMU.
func (c *Core) Close() error {
	c.halted = true
	c.mmu.Release()

	return nil
}
