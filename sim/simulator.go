package sim

import (
	"io"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/sarchlab/isasim/htif"
	"github.com/sarchlab/isasim/mem"
)

// Indexes accepted by GetSCR.
const (
	SCRCoreCount = 0
	SCRMemoryMB  = 1
)

// SCRUnsupported is returned by GetSCR for unknown indexes.
const SCRUnsupported = ^uint64(0)

// A Simulator owns the target memory, the processors, and the HTIF of one
// simulation run.
//
// Run, Step, and Stop drive the machine from a single goroutine. Other
// goroutines may only reach the machine through Inspect, Status, Pause, and
// Continue.
type Simulator struct {
	id string

	memory   *mem.Region
	mmu      *mem.MMU
	procs    []Processor
	coreMMUs []*mem.MMU
	htif     HTIF
	sched    *Scheduler
	console  io.Writer

	debug    bool
	debugger Debugger

	stateLock sync.Mutex

	isPaused     bool
	isPausedLock sync.Mutex
	pauseLock    sync.Mutex

	stopped bool
	closed  bool
}

// ID returns the unique ID of the run.
func (s *Simulator) ID() string {
	return s.id
}

// Run runs the target until the HTIF reports completion. In debug mode every
// iteration hands control to the debugger instead of stepping.
func (s *Simulator) Run() error {
	for !s.done() {
		if s.debug {
			if err := s.debugger.Interact(s); err != nil {
				return errors.Wrap(err, "sim: debugger")
			}

			continue
		}

		s.runQuantum()
	}

	return nil
}

func (s *Simulator) runQuantum() {
	s.pauseLock.Lock()
	defer s.pauseLock.Unlock()

	s.stateLock.Lock()
	defer s.stateLock.Unlock()

	if s.htif.Done() {
		return
	}

	s.sched.Step(Interleave, false)
}

func (s *Simulator) done() bool {
	s.stateLock.Lock()
	defer s.stateLock.Unlock()

	return s.htif.Done()
}

// Step dispatches up to n steps across the cores and returns how many were
// dispatched.
func (s *Simulator) Step(n uint64, noisy bool) uint64 {
	s.stateLock.Lock()
	defer s.stateLock.Unlock()

	return s.sched.Step(n, noisy)
}

// Stop asks the target to halt through core 0's tohost word and pumps the
// HTIF until it acknowledges. Cores are not stepped meanwhile. A paused run
// loop is released so that Run can return.
func (s *Simulator) Stop() {
	s.stateLock.Lock()
	defer s.stateLock.Unlock()

	s.stopped = true
	s.procs[0].SetToHost(htif.HaltRequest)
	for !s.htif.Done() {
		s.htif.Tick()
	}

	s.sched.InvokeHook(HookCtx{Domain: s.sched, Pos: HookPosStop})

	s.Continue()
}

// Stopped tells if the run was ended by Stop rather than by the target.
func (s *Simulator) Stopped() bool {
	s.stateLock.Lock()
	defer s.stateLock.Unlock()

	return s.stopped
}

// Running tells if any core can make progress.
func (s *Simulator) Running() bool {
	return s.sched.Running()
}

// Processor returns the core with the given index.
func (s *Simulator) Processor(i uint64) (Processor, bool) {
	if i >= uint64(len(s.procs)) {
		return nil, false
	}

	return s.procs[i], true
}

// NumProcessors returns the number of cores.
func (s *Simulator) NumProcessors() int {
	return len(s.procs)
}

// SendIPI raises an inter-processor interrupt on the target core. An index
// with no core behind it is dropped, and false is returned.
func (s *Simulator) SendIPI(target uint64) bool {
	p, ok := s.Processor(target)
	if !ok {
		logrus.Debugf("sim: dropped IPI to core %d of %d",
			target, len(s.procs))
		return false
	}

	p.DeliverIPI()

	return true
}

// GetSCR reads a machine configuration value.
func (s *Simulator) GetSCR(which int) uint64 {
	switch which {
	case SCRCoreCount:
		return uint64(len(s.procs))
	case SCRMemoryMB:
		return s.memory.Size() >> 20
	default:
		return SCRUnsupported
	}
}

// MMU returns the memory view for accesses not made by a core.
func (s *Simulator) MMU() *mem.MMU {
	return s.mmu
}

// Memory returns the target memory.
func (s *Simulator) Memory() *mem.Region {
	return s.memory
}

// HTIF returns the host-target interface.
func (s *Simulator) HTIF() HTIF {
	return s.htif
}

// Scheduler returns the scheduler that drives the cores.
func (s *Simulator) Scheduler() *Scheduler {
	return s.sched
}

// AcceptHook registers a hook on the scheduler.
func (s *Simulator) AcceptHook(hook Hook) {
	s.sched.AcceptHook(hook)
}

// Inspect runs f while no quantum is in flight.
func (s *Simulator) Inspect(f func()) {
	s.stateLock.Lock()
	defer s.stateLock.Unlock()

	f()
}

// Pause blocks the batch run loop before its next quantum.
func (s *Simulator) Pause() {
	s.isPausedLock.Lock()
	defer s.isPausedLock.Unlock()

	if s.isPaused {
		return
	}

	s.pauseLock.Lock()
	s.isPaused = true
}

// Continue resumes a paused run loop.
func (s *Simulator) Continue() {
	s.isPausedLock.Lock()
	defer s.isPausedLock.Unlock()

	if !s.isPaused {
		return
	}

	s.pauseLock.Unlock()
	s.isPaused = false
}

// Paused tells if the run loop is paused.
func (s *Simulator) Paused() bool {
	s.isPausedLock.Lock()
	defer s.isPausedLock.Unlock()

	return s.isPaused
}

// Close releases the cores and their MMUs, then the shared MMU, then the
// target memory.
func (s *Simulator) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var firstErr error
	for i, p := range s.procs {
		if c, ok := p.(io.Closer); ok {
			if err := c.Close(); err != nil && firstErr == nil {
				firstErr = errors.Wrapf(err, "sim: close core %d", i)
			}
		}

		s.coreMMUs[i].Release()
	}

	s.mmu.Release()

	if err := s.memory.Close(); err != nil && firstErr == nil {
		firstErr = err
	}

	return firstErr
}
