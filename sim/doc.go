// Package sim is the coordination core of the instruction-set simulator.
//
// A Simulator owns the target memory, an ordered set of processors, and the
// host-target interface (HTIF). Its Scheduler multiplexes the processors on a
// single goroutine: each one runs a quantum of Interleave steps, releases its
// load reservation, and hands over to the next in index order. The HTIF is
// ticked before every batch of steps, and Run keeps going until the HTIF
// reports that the target has exited.
//
// Simulators are created with a Builder:
//
//	s, err := sim.MakeBuilder().
//		WithNumCores(2).
//		WithMemoryMB(64).
//		Build()
//	if err != nil {
//		return err
//	}
//	defer s.Close()
//
//	err = s.Run()
package sim
