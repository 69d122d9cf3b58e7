// Package htif implements the host side of the host-target interface.
//
// The target signals the host through the tohost word of core 0. On every
// tick the Controller reads that word, serves the request it encodes, clears
// it, and answers through fromhost.
package htif

import (
	"io"

	"github.com/sirupsen/logrus"
)

// A Target exposes the signaling words of the core the host talks to.
type Target interface {
	ToHost() uint64
	SetToHost(v uint64)
	FromHost() uint64
	SetFromHost(v uint64)
}

// A Controller serves target requests and tracks whether the run is over.
type Controller struct {
	target  Target
	args    []string
	console io.Writer
	onExit  func(code int)

	done     bool
	exitCode int
	ticks    uint64
	served   uint64
}

// NewController creates a Controller that talks to the target. Console
// output is dropped until WithConsole is called.
func NewController(target Target, args []string) *Controller {
	return &Controller{
		target:  target,
		args:    args,
		console: io.Discard,
	}
}

// WithConsole sets where console writes from the target go.
func (c *Controller) WithConsole(w io.Writer) *Controller {
	c.console = w
	return c
}

// WithExitHandler registers a function called once when the target exits.
func (c *Controller) WithExitHandler(f func(code int)) *Controller {
	c.onExit = f
	return c
}

// Tick serves at most one pending request.
func (c *Controller) Tick() {
	c.ticks++

	if c.done {
		return
	}

	word := c.target.ToHost()
	if word == 0 {
		return
	}

	req := Decode(word)
	c.target.SetToHost(0)
	c.served++

	switch {
	case req.IsExit():
		c.exit(req.ExitCode())
	case req.Device == DeviceConsole && req.Command == CommandWrite:
		c.writeConsole(byte(req.Payload))
	default:
		logrus.Debugf("htif: unsupported request device %d command %d "+
			"payload 0x%x", req.Device, req.Command, req.Payload)
	}

	c.target.SetFromHost(req.Ack())
}

func (c *Controller) exit(code int) {
	c.done = true
	c.exitCode = code

	if code != 0 {
		logrus.Warnf("htif: target exited with code %d", code)
	} else {
		logrus.Debug("htif: target exited")
	}

	if c.onExit != nil {
		c.onExit(code)
	}
}

func (c *Controller) writeConsole(b byte) {
	if _, err := c.console.Write([]byte{b}); err != nil {
		logrus.Errorf("htif: console write: %v", err)
	}
}

// Done tells if the target has exited.
func (c *Controller) Done() bool {
	return c.done
}

// ExitCode returns the code the target exited with.
func (c *Controller) ExitCode() int {
	return c.exitCode
}

// Args returns the launch arguments of the target program.
func (c *Controller) Args() []string {
	return c.args
}

// Ticks returns how many times Tick has been called.
func (c *Controller) Ticks() uint64 {
	return c.ticks
}

// Served returns how many requests have been served.
func (c *Controller) Served() uint64 {
	return c.served
}
