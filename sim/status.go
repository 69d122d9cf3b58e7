package sim

// Status is a snapshot of the machine taken between quanta.
type Status struct {
	ID          string   `json:"id"`
	NumCores    int      `json:"num_cores"`
	MemoryMB    uint64   `json:"memory_mb"`
	CurrentProc int      `json:"current_proc"`
	CurrentStep uint64   `json:"current_step"`
	Quanta      uint64   `json:"quanta"`
	Dispatched  []uint64 `json:"dispatched"`
	Running     bool     `json:"running"`
	Done        bool     `json:"done"`
	Stopped     bool     `json:"stopped"`
	Paused      bool     `json:"paused"`
}

// Status takes a snapshot of the machine.
func (s *Simulator) Status() Status {
	st := Status{Paused: s.Paused()}

	s.Inspect(func() {
		st.ID = s.id
		st.NumCores = len(s.procs)
		st.MemoryMB = s.GetSCR(SCRMemoryMB)
		st.CurrentProc = s.sched.CurrentProc()
		st.CurrentStep = s.sched.CurrentStep()
		st.Quanta = s.sched.Quanta()
		st.Running = s.sched.Running()
		st.Done = s.htif.Done()
		st.Stopped = s.stopped

		st.Dispatched = make([]uint64, len(s.procs))
		for i := range s.procs {
			st.Dispatched[i] = s.sched.Dispatched(i)
		}
	})

	return st
}
