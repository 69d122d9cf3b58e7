package sim

// Interleave is the number of steps a core runs before the scheduler rotates
// to the next one.
const Interleave uint64 = 5000

// A Scheduler multiplexes processors on the calling goroutine. Each core runs
// a quantum of Interleave steps, then gives up its load reservation and hands
// over to the next core in index order.
type Scheduler struct {
	*HookableBase

	htif  HTIF
	procs []Processor
	mmus  []MMU

	currentStep uint64
	currentProc int

	dispatched []uint64
	quanta     uint64
}

// NewScheduler creates a scheduler over the processors. mmus[i] must be the
// memory view of procs[i].
func NewScheduler(htif HTIF, procs []Processor, mmus []MMU) *Scheduler {
	if len(procs) == 0 {
		panic("scheduler requires at least one processor")
	}

	if len(procs) != len(mmus) {
		panic("scheduler requires one MMU per processor")
	}

	return &Scheduler{
		HookableBase: NewHookableBase(),
		htif:         htif,
		procs:        procs,
		mmus:         mmus,
		dispatched:   make([]uint64, len(procs)),
	}
}

// Step dispatches up to n steps across the processors and returns how many
// were dispatched. It returns early only when no processor is running.
func (s *Scheduler) Step(n uint64, noisy bool) uint64 {
	var done uint64

	for done < n {
		s.htif.Tick()
		if !s.Running() {
			break
		}

		steps := min(n-done, Interleave-s.currentStep)
		s.dispatch(steps, noisy)

		s.currentStep += steps
		done += steps

		if s.currentStep == Interleave {
			s.rotate()
		}
	}

	return done
}

func (s *Scheduler) dispatch(steps uint64, noisy bool) {
	if s.NumHooks() > 0 {
		s.InvokeHook(HookCtx{
			Domain: s,
			Pos:    HookPosBeforeStep,
			Item:   DispatchInfo{Core: s.currentProc, Steps: steps},
		})
	}

	s.procs[s.currentProc].Step(steps, noisy)
	s.dispatched[s.currentProc] += steps
}

func (s *Scheduler) rotate() {
	core := s.currentProc

	s.currentStep = 0
	s.mmus[core].YieldLoadReservation()

	s.currentProc++
	if s.currentProc == len(s.procs) {
		s.currentProc = 0
	}

	if s.NumHooks() > 0 {
		s.InvokeHook(HookCtx{
			Domain: s,
			Pos:    HookPosQuantumEnd,
			Item:   QuantumInfo{Seq: s.quanta, Core: core, Steps: Interleave},
		})
	}

	s.quanta++
}

// Running tells if any processor can make progress.
func (s *Scheduler) Running() bool {
	for _, p := range s.procs {
		if p.Running() {
			return true
		}
	}

	return false
}

// CurrentProc returns the index of the core that owns the current quantum.
func (s *Scheduler) CurrentProc() int {
	return s.currentProc
}

// CurrentStep returns how many steps of the current quantum have been used.
func (s *Scheduler) CurrentStep() uint64 {
	return s.currentStep
}

// Dispatched returns the number of steps handed to the core so far.
func (s *Scheduler) Dispatched(core int) uint64 {
	if core < 0 || core >= len(s.dispatched) {
		return 0
	}

	return s.dispatched[core]
}

// Quanta returns the number of quanta completed.
func (s *Scheduler) Quanta() uint64 {
	return s.quanta
}
