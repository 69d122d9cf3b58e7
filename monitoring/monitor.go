// Package monitoring serves a running simulation over HTTP so that it can be
// watched and controlled from a browser or a script.
package monitoring

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"runtime/pprof"
	"strconv"
	"sync"
	"time"

	"github.com/google/pprof/profile"
	"github.com/gorilla/mux"
	"github.com/pkg/browser"
	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/process"
	"github.com/sirupsen/logrus"
	"github.com/syifan/goseth"

	"github.com/sarchlab/isasim/monitoring/web"
	"github.com/sarchlab/isasim/sim"
)

// Machine is the part of the simulator the monitor drives.
type Machine interface {
	Status() sim.Status
	Pause()
	Continue()
	Stop()
	Inspect(f func())
	GetSCR(which int) uint64
	SendIPI(target uint64) bool
	Processor(i uint64) (sim.Processor, bool)
}

// Monitor can turn a simulation into a server and allows external monitoring
// and controlling of the simulation.
type Monitor struct {
	machine     Machine
	portNumber  int
	openBrowser bool

	profileDuration time.Duration

	progressBarsLock sync.Mutex
	progressBars     []*ProgressBar
}

// NewMonitor creates a new Monitor.
func NewMonitor() *Monitor {
	return &Monitor{profileDuration: time.Second}
}

// WithPortNumber sets the port number of the monitor. Ports below 1000 are
// replaced by a random one.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber != 0 && portNumber < 1000 {
		logrus.Warnf("monitor: port %d is not allowed, using a random port",
			portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// WithBrowser makes StartServer open the monitor page in a browser.
func (m *Monitor) WithBrowser(open bool) *Monitor {
	m.openBrowser = open
	return m
}

// WithProfileDuration sets how long /api/profile samples the CPU.
func (m *Monitor) WithProfileDuration(d time.Duration) *Monitor {
	m.profileDuration = d
	return m
}

// RegisterMachine sets the simulator to monitor.
func (m *Monitor) RegisterMachine(machine Machine) {
	m.machine = machine
}

// CreateProgressBar creates a new progress bar.
func (m *Monitor) CreateProgressBar(name string, total uint64) *ProgressBar {
	bar := NewProgressBar(name, total)

	m.progressBarsLock.Lock()
	defer m.progressBarsLock.Unlock()

	m.progressBars = append(m.progressBars, bar)

	return bar
}

// CompleteProgressBar removes a bar from the page.
func (m *Monitor) CompleteProgressBar(pb *ProgressBar) {
	m.progressBarsLock.Lock()
	defer m.progressBarsLock.Unlock()

	newBars := make([]*ProgressBar, 0, len(m.progressBars))
	for _, b := range m.progressBars {
		if b != pb {
			newBars = append(newBars, b)
		}
	}

	m.progressBars = newBars
}

// Router builds the HTTP handler of the monitor.
func (m *Monitor) Router() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/api/pause", m.pause)
	r.HandleFunc("/api/continue", m.resume)
	r.HandleFunc("/api/status", m.status)
	r.HandleFunc("/api/scr/{which}", m.scr)
	r.HandleFunc("/api/ipi/{core}", m.ipi)
	r.HandleFunc("/api/stop", m.stop)
	r.HandleFunc("/api/core/{index}", m.coreDetails)
	r.HandleFunc("/api/progress", m.listProgressBars)
	r.HandleFunc("/api/resource", m.listResources)
	r.HandleFunc("/api/profile", m.collectProfile)
	r.PathPrefix("/").Handler(http.FileServer(web.GetAssets()))

	return r
}

// StartServer starts serving in the background and returns the port it
// listens on.
func (m *Monitor) StartServer() (int, error) {
	listener, err := net.Listen("tcp", ":"+strconv.Itoa(m.portNumber))
	if err != nil {
		return 0, errors.Wrap(err, "monitor: listen")
	}

	port := listener.Addr().(*net.TCPAddr).Port
	url := fmt.Sprintf("http://localhost:%d", port)

	fmt.Fprintf(os.Stderr, "Monitoring simulation with %s\n", url)

	handler := m.Router()
	go func() {
		if err := http.Serve(listener, handler); err != nil {
			logrus.Errorf("monitor: %v", err)
		}
	}()

	if m.openBrowser {
		if err := browser.OpenURL(url); err != nil {
			logrus.Warnf("monitor: cannot open browser: %v", err)
		}
	}

	return port, nil
}

func (m *Monitor) pause(w http.ResponseWriter, _ *http.Request) {
	m.machine.Pause()
	w.WriteHeader(http.StatusOK)
}

func (m *Monitor) resume(w http.ResponseWriter, _ *http.Request) {
	m.machine.Continue()
	w.WriteHeader(http.StatusOK)
}

func (m *Monitor) status(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, m.machine.Status())
}

func (m *Monitor) scr(w http.ResponseWriter, r *http.Request) {
	which, err := strconv.Atoi(mux.Vars(r)["which"])
	if err != nil {
		badRequest(w, err)
		return
	}

	var value uint64
	m.machine.Inspect(func() { value = m.machine.GetSCR(which) })

	writeJSON(w, map[string]uint64{"value": value})
}

func (m *Monitor) ipi(w http.ResponseWriter, r *http.Request) {
	target, err := strconv.ParseUint(mux.Vars(r)["core"], 10, 64)
	if err != nil {
		badRequest(w, err)
		return
	}

	var delivered bool
	m.machine.Inspect(func() { delivered = m.machine.SendIPI(target) })

	writeJSON(w, map[string]bool{"delivered": delivered})
}

func (m *Monitor) stop(w http.ResponseWriter, _ *http.Request) {
	m.machine.Stop()
	w.WriteHeader(http.StatusOK)
}

func (m *Monitor) coreDetails(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.ParseUint(mux.Vars(r)["index"], 10, 64)
	if err != nil {
		badRequest(w, err)
		return
	}

	buf := bytes.NewBuffer(nil)
	found := false
	m.machine.Inspect(func() {
		p, ok := m.machine.Processor(index)
		if !ok {
			return
		}
		found = true

		serializer := goseth.NewSerializer()
		serializer.SetRoot(p)
		serializer.SetMaxDepth(1)
		err = serializer.Serialize(buf)
	})

	if !found {
		w.WriteHeader(http.StatusNotFound)
		_, err = w.Write([]byte("Core not found"))
		dieOnErr(err)
		return
	}
	dieOnErr(err)

	_, err = w.Write(buf.Bytes())
	dieOnErr(err)
}

func (m *Monitor) listProgressBars(w http.ResponseWriter, _ *http.Request) {
	m.progressBarsLock.Lock()
	defer m.progressBarsLock.Unlock()

	writeJSON(w, m.progressBars)
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (m *Monitor) listResources(w http.ResponseWriter, _ *http.Request) {
	pid := os.Getpid()
	process, err := process.NewProcess(int32(pid))
	dieOnErr(err)

	cpuPercent, err := process.CPUPercent()
	dieOnErr(err)

	memorySize, err := process.MemoryInfo()
	dieOnErr(err)

	writeJSON(w, resourceRsp{
		CPUPercent: cpuPercent,
		MemorySize: memorySize.RSS,
	})
}

func (m *Monitor) collectProfile(w http.ResponseWriter, _ *http.Request) {
	buf := bytes.NewBuffer(nil)

	if err := pprof.StartCPUProfile(buf); err != nil {
		w.WriteHeader(http.StatusConflict)
		fmt.Fprintf(w, "Error: %s", err)
		return
	}

	time.Sleep(m.profileDuration)

	pprof.StopCPUProfile()

	prof, err := profile.ParseData(buf.Bytes())
	dieOnErr(err)

	writeJSON(w, prof)
}

func writeJSON(w http.ResponseWriter, v any) {
	bytes, err := json.Marshal(v)
	dieOnErr(err)

	w.Header().Set("Content-Type", "application/json")
	_, err = w.Write(bytes)
	dieOnErr(err)
}

func badRequest(w http.ResponseWriter, err error) {
	w.WriteHeader(http.StatusBadRequest)
	fmt.Fprintf(w, "Error: %s", err)
}

func dieOnErr(err error) {
	if err != nil {
		logrus.Panic(err)
	}
}
