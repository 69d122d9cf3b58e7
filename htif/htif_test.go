package htif

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type words struct {
	tohost, fromhost uint64
}

func (w *words) ToHost() uint64       { return w.tohost }
func (w *words) SetToHost(v uint64)   { w.tohost = v }
func (w *words) FromHost() uint64     { return w.fromhost }
func (w *words) SetFromHost(v uint64) { w.fromhost = v }

var _ = Describe("Request", func() {
	It("should round trip through a tohost word", func() {
		req := Request{Device: DeviceConsole, Command: CommandWrite, Payload: 'x'}

		Expect(Decode(req.Encode())).To(Equal(req))
	})

	It("should read the halt request as exit code 0", func() {
		req := Decode(HaltRequest)

		Expect(req.IsExit()).To(BeTrue())
		Expect(req.ExitCode()).To(Equal(0))
	})

	It("should carry the exit code above the low bit", func() {
		req := Decode(3<<1 | 1)

		Expect(req.IsExit()).To(BeTrue())
		Expect(req.ExitCode()).To(Equal(3))
	})

	It("should not treat an even syscall payload as exit", func() {
		Expect(Decode(0x1000).IsExit()).To(BeFalse())
	})
})

var _ = Describe("Controller", func() {
	var (
		target  *words
		console *bytes.Buffer
		c       *Controller
	)

	BeforeEach(func() {
		target = &words{}
		console = new(bytes.Buffer)
		c = NewController(target, []string{"pk", "hello"}).WithConsole(console)
	})

	It("should do nothing while tohost is clear", func() {
		c.Tick()

		Expect(c.Done()).To(BeFalse())
		Expect(c.Served()).To(BeZero())
		Expect(c.Ticks()).To(Equal(uint64(1)))
		Expect(target.fromhost).To(BeZero())
	})

	It("should finish on a halt request", func() {
		exited := -1
		c.WithExitHandler(func(code int) { exited = code })
		target.tohost = HaltRequest

		c.Tick()

		Expect(c.Done()).To(BeTrue())
		Expect(c.ExitCode()).To(Equal(0))
		Expect(exited).To(Equal(0))
		Expect(target.tohost).To(BeZero())
		Expect(target.fromhost).To(Equal(uint64(1)))
	})

	It("should report the exit code", func() {
		target.tohost = 42<<1 | 1

		c.Tick()

		Expect(c.ExitCode()).To(Equal(42))
	})

	It("should write console requests", func() {
		for _, ch := range []byte("hi") {
			target.tohost = Request{
				Device:  DeviceConsole,
				Command: CommandWrite,
				Payload: uint64(ch),
			}.Encode()
			c.Tick()
		}

		Expect(console.String()).To(Equal("hi"))
		Expect(c.Done()).To(BeFalse())
		Expect(Decode(target.fromhost).Device).To(Equal(uint8(DeviceConsole)))
	})

	It("should acknowledge unsupported requests", func() {
		target.tohost = Request{Device: 7, Command: 3, Payload: 9}.Encode()

		c.Tick()

		Expect(target.tohost).To(BeZero())
		Expect(target.fromhost).To(Equal(Request{Device: 7, Command: 3, Payload: 1}.Encode()))
		Expect(c.Done()).To(BeFalse())
	})

	It("should ignore requests after the target exited", func() {
		target.tohost = HaltRequest
		c.Tick()

		target.tohost = Request{Device: DeviceConsole, Command: CommandWrite, Payload: 'x'}.Encode()
		c.Tick()

		Expect(console.Len()).To(BeZero())
		Expect(c.Served()).To(Equal(uint64(1)))
	})

	It("should keep the launch arguments", func() {
		Expect(c.Args()).To(Equal([]string{"pk", "hello"}))
	})
})
