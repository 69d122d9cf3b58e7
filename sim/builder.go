package sim

import (
	"io"
	"math"
	"os"
	"slices"

	"github.com/pkg/errors"
	"github.com/rs/xid"
	"github.com/sirupsen/logrus"

	"github.com/sarchlab/isasim/core"
	"github.com/sarchlab/isasim/htif"
	"github.com/sarchlab/isasim/mem"
)

// Builder can be used to build a simulator.
type Builder struct {
	numCores     int
	memoryMB     uint64
	args         []string
	debug        bool
	debugger     Debugger
	mapper       mem.Mapper
	hostPageSize uint64
	coreBudget   uint64
	console      io.Writer
	procFactory  ProcessorFactory
	htifFactory  HTIFFactory
	hooks        []Hook
}

// MakeBuilder creates a builder for a single-core machine with the default
// memory size.
func MakeBuilder() Builder {
	return Builder{
		numCores:     1,
		mapper:       mem.HostMapper(),
		hostPageSize: mem.HostPageSize(),
		console:      os.Stdout,
	}
}

// WithNumCores sets the number of cores. Zero is treated as one.
func (b Builder) WithNumCores(n int) Builder {
	b.numCores = n
	return b
}

// WithMemoryMB sets the target memory size in megabytes. Zero selects the
// default size for the host.
func (b Builder) WithMemoryMB(mb uint64) Builder {
	b.memoryMB = mb
	return b
}

// WithArgs sets the launch arguments handed to the HTIF.
func (b Builder) WithArgs(args []string) Builder {
	b.args = args
	return b
}

// WithDebug selects interactive runs. A debugger must be set as well.
func (b Builder) WithDebug(debug bool) Builder {
	b.debug = debug
	return b
}

// WithDebugger sets the debugger that drives interactive runs.
func (b Builder) WithDebugger(d Debugger) Builder {
	b.debugger = d
	return b
}

// WithMapper sets where target memory comes from.
func (b Builder) WithMapper(m mem.Mapper) Builder {
	b.mapper = m
	return b
}

// WithHostPageSize overrides the host page size used to size target memory.
func (b Builder) WithHostPageSize(n uint64) Builder {
	b.hostPageSize = n
	return b
}

// WithCoreBudget makes the default cores exit after n steps each.
func (b Builder) WithCoreBudget(n uint64) Builder {
	b.coreBudget = n
	return b
}

// WithConsole sets where the default HTIF writes target console output.
func (b Builder) WithConsole(w io.Writer) Builder {
	b.console = w
	return b
}

// WithProcessorFactory replaces the default cores.
func (b Builder) WithProcessorFactory(f ProcessorFactory) Builder {
	b.procFactory = f
	return b
}

// WithHTIFFactory replaces the default HTIF controller.
func (b Builder) WithHTIFFactory(f HTIFFactory) Builder {
	b.htifFactory = f
	return b
}

// WithHook registers a hook on the scheduler.
func (b Builder) WithHook(h Hook) Builder {
	b.hooks = append(slices.Clip(b.hooks), h)
	return b
}

func (b Builder) validate() error {
	if b.numCores < 0 {
		return errors.Errorf("sim: invalid number of cores %d", b.numCores)
	}

	if b.memoryMB > math.MaxUint64/mem.MB {
		return errors.Errorf("sim: memory size %d MB overflows", b.memoryMB)
	}

	if b.mapper == nil {
		return errors.New("sim: no memory mapper")
	}

	if b.debug && b.debugger == nil {
		return errors.New("sim: debug mode needs a debugger")
	}

	return nil
}

// Build allocates the target memory and creates the cores and the HTIF.
func (b Builder) Build() (*Simulator, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}

	numCores := b.numCores
	if numCores == 0 {
		numCores = 1
	}

	quantum := mem.Quantum(b.hostPageSize)
	region, err := mem.Allocate(b.mapper, b.memoryMB*mem.MB, quantum)
	if err != nil {
		return nil, errors.Wrap(err, "sim: allocate target memory")
	}

	s := &Simulator{
		id:       xid.New().String(),
		memory:   region,
		mmu:      mem.NewMMU(region),
		console:  b.console,
		debug:    b.debug,
		debugger: b.debugger,
	}

	procFactory := b.procFactory
	if procFactory == nil {
		procFactory = b.defaultProcessor
	}

	mmus := make([]MMU, numCores)
	for i := 0; i < numCores; i++ {
		m := mem.NewMMU(region)
		s.coreMMUs = append(s.coreMMUs, m)
		s.procs = append(s.procs, procFactory(i, m))
		mmus[i] = m
	}

	htifFactory := b.htifFactory
	if htifFactory == nil {
		htifFactory = defaultHTIF
	}
	s.htif = htifFactory(s, b.args)

	s.sched = NewScheduler(s.htif, s.procs, mmus)
	for _, h := range b.hooks {
		s.sched.AcceptHook(h)
	}

	logrus.Debugf("sim %s: %d cores, %d MB target memory",
		s.id, numCores, region.Size()>>20)

	return s, nil
}

func (b Builder) defaultProcessor(id int, mmu *mem.MMU) Processor {
	return core.New(id, mmu).WithBudget(b.coreBudget)
}

type halter interface {
	Halt()
}

func defaultHTIF(s *Simulator, args []string) HTIF {
	return htif.NewController(s.procs[0], args).
		WithConsole(s.console).
		WithExitHandler(func(int) {
			for _, p := range s.procs {
				if h, ok := p.(halter); ok {
					h.Halt()
				}
			}
		})
}
