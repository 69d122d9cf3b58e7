package sim

import (
	"github.com/sarchlab/isasim/mem"
)

// An MMU is the part of a core's memory view the scheduler drives.
type MMU interface {
	// YieldLoadReservation drops any outstanding load reservation. It does
	// nothing if none is held.
	YieldLoadReservation()
}

// A Processor executes target instructions.
type Processor interface {
	// Step executes up to n instructions.
	Step(n uint64, noisy bool)

	// Running tells if the processor can make progress.
	Running() bool

	// DeliverIPI marks an inter-processor interrupt pending.
	DeliverIPI()

	// ToHost returns the word the processor sends to the host.
	ToHost() uint64

	// SetToHost overwrites the word sent to the host.
	SetToHost(v uint64)

	// FromHost returns the last word the host sent.
	FromHost() uint64

	// SetFromHost delivers a word from the host.
	SetFromHost(v uint64)
}

// An HTIF is the host side of the host-target interface.
type HTIF interface {
	// Tick processes one unit of pending host-target work.
	Tick()

	// Done tells if the target has exited and the protocol has finished.
	Done() bool
}

// A Debugger takes over the run loop when the simulator is in debug mode.
type Debugger interface {
	// Interact performs one user-driven interaction cycle.
	Interact(s *Simulator) error
}

// A ProcessorFactory creates the processor with the given index. The MMU is
// bound to the shared target memory and owned by the simulator.
type ProcessorFactory func(id int, mmu *mem.MMU) Processor

// An HTIFFactory creates the HTIF controller once all processors exist.
type HTIFFactory func(s *Simulator, args []string) HTIF
