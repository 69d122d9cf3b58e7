package datarecording

import (
	"time"

	"github.com/sarchlab/isasim/sim"
)

// Table names used by the simulator.
const (
	QuantumTable = "quantum"
	RunTable     = "run"
)

// QuantumEntry is one row of the quantum table.
type QuantumEntry struct {
	Seq   uint64
	Core  int
	Steps uint64
}

// QuantumRecorder is a hook that stores every completed quantum.
type QuantumRecorder struct {
	recorder DataRecorder
}

// NewQuantumRecorder creates the quantum table and returns a hook that fills
// it.
func NewQuantumRecorder(r DataRecorder) *QuantumRecorder {
	r.CreateTable(QuantumTable, QuantumEntry{})

	return &QuantumRecorder{recorder: r}
}

// Func records the quantum carried by the hook context.
func (q *QuantumRecorder) Func(ctx sim.HookCtx) {
	if ctx.Pos != sim.HookPosQuantumEnd {
		return
	}

	info, ok := ctx.Item.(sim.QuantumInfo)
	if !ok {
		return
	}

	q.recorder.InsertData(QuantumTable, QuantumEntry{
		Seq:   info.Seq,
		Core:  info.Core,
		Steps: info.Steps,
	})
}

// RunSummary is the row describing a whole run.
type RunSummary struct {
	ID          string
	NumCores    int
	MemoryMB    uint64
	RequestedMB uint64
	Quanta      uint64
	Steps       uint64
	ExitCode    int
	Stopped     bool
	WallSeconds float64
}

type exitCoder interface {
	ExitCode() int
}

// Summarize collects the summary of a finished run.
func Summarize(s *sim.Simulator, wall time.Duration) RunSummary {
	st := s.Status()

	summary := RunSummary{
		ID:          st.ID,
		NumCores:    st.NumCores,
		MemoryMB:    st.MemoryMB,
		RequestedMB: s.Memory().Requested() >> 20,
		Quanta:      st.Quanta,
		Stopped:     st.Stopped,
		WallSeconds: wall.Seconds(),
	}

	for _, n := range st.Dispatched {
		summary.Steps += n
	}

	if e, ok := s.HTIF().(exitCoder); ok {
		summary.ExitCode = e.ExitCode()
	}

	return summary
}

// RecordSummary stores the summary in the run table, creating it on first
// use.
func RecordSummary(r DataRecorder, summary RunSummary) {
	exists := false
	for _, t := range r.ListTables() {
		if t == RunTable {
			exists = true
		}
	}

	if !exists {
		r.CreateTable(RunTable, RunSummary{})
	}

	r.InsertData(RunTable, summary)
}
