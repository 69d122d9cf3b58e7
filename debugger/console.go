// Package debugger provides a line-oriented console that drives a simulator
// in debug mode.
//
// Each call to Interact reads one command:
//
//	r [n]      step n times, logging every step (default 1)
//	rs [n]     step n times silently
//	ipi <core> send an inter-processor interrupt
//	scr <i>    print a machine configuration value
//	status     print the scheduler position
//	q          stop the target
//
// An empty line repeats the previous command. End of input stops the target.
package debugger

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sarchlab/isasim/sim"
)

// Console reads debugger commands from a reader.
type Console struct {
	in   *bufio.Scanner
	out  io.Writer
	last string
}

// NewConsole creates a console reading from in and writing to out.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:   bufio.NewScanner(in),
		out:  out,
		last: "r 1",
	}
}

// Interact runs one command against the simulator.
func (c *Console) Interact(s *sim.Simulator) error {
	fmt.Fprint(c.out, ": ")

	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return errors.Wrap(err, "debugger: read command")
		}

		fmt.Fprintln(c.out)
		s.Stop()

		return nil
	}

	line := strings.TrimSpace(c.in.Text())
	if line == "" {
		line = c.last
	}
	c.last = line

	fields := strings.Fields(line)
	c.execute(s, fields[0], fields[1:])

	return nil
}

func (c *Console) execute(s *sim.Simulator, cmd string, args []string) {
	switch cmd {
	case "r", "run":
		c.step(s, args, true)
	case "rs":
		c.step(s, args, false)
	case "ipi":
		target, err := argument(args)
		if err != nil {
			fmt.Fprintln(c.out, err)
			return
		}

		if !s.SendIPI(target) {
			fmt.Fprintf(c.out, "no core %d\n", target)
		}
	case "scr":
		i, err := argument(args)
		if err != nil {
			fmt.Fprintln(c.out, err)
			return
		}

		fmt.Fprintf(c.out, "0x%016x\n", s.GetSCR(int(i)))
	case "status":
		st := s.Status()
		fmt.Fprintf(c.out, "core %d step %d quanta %d running %t\n",
			st.CurrentProc, st.CurrentStep, st.Quanta, st.Running)
	case "q", "quit":
		s.Stop()
	default:
		fmt.Fprintf(c.out, "unknown command %q\n", cmd)
	}
}

func (c *Console) step(s *sim.Simulator, args []string, noisy bool) {
	n := uint64(1)
	if len(args) > 0 {
		var err error
		if n, err = strconv.ParseUint(args[0], 0, 64); err != nil {
			fmt.Fprintf(c.out, "bad step count %q\n", args[0])
			return
		}
	}

	done := s.Step(n, noisy)
	if done < n {
		fmt.Fprintf(c.out, "stepped %d of %d\n", done, n)
	}
}

func argument(args []string) (uint64, error) {
	if len(args) != 1 {
		return 0, errors.New("expected one argument")
	}

	v, err := strconv.ParseUint(args[0], 0, 64)
	if err != nil {
		return 0, errors.Errorf("bad argument %q", args[0])
	}

	return v, nil
}
