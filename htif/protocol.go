package htif

// Devices addressed by the top byte of a tohost word.
const (
	DeviceSyscall = 0
	DeviceConsole = 1
)

// Commands understood by the devices.
const (
	CommandExit  = 0
	CommandWrite = 1
)

// HaltRequest is the tohost word a target writes to exit with code 0.
const HaltRequest uint64 = 1

const payloadMask = 1<<48 - 1

// A Request is a decoded tohost word.
type Request struct {
	Device  uint8
	Command uint8
	Payload uint64
}

// Decode splits a tohost word into device, command, and payload.
func Decode(word uint64) Request {
	return Request{
		Device:  uint8(word >> 56),
		Command: uint8(word >> 48),
		Payload: word & payloadMask,
	}
}

// Encode packs the request back into a tohost word.
func (r Request) Encode() uint64 {
	return uint64(r.Device)<<56 | uint64(r.Command)<<48 | r.Payload&payloadMask
}

// IsExit tells if the request asks the host to end the simulation.
func (r Request) IsExit() bool {
	return r.Device == DeviceSyscall &&
		r.Command == CommandExit &&
		r.Payload&1 == 1
}

// ExitCode returns the code carried by an exit request.
func (r Request) ExitCode() int {
	return int(r.Payload >> 1)
}

// Ack returns the fromhost word that answers the request.
func (r Request) Ack() uint64 {
	return Request{Device: r.Device, Command: r.Command, Payload: 1}.Encode()
}
