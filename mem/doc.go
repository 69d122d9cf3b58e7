// Package mem provides the target machine's physical memory.
//
// The memory is a single host mapping (a Region) shared by every MMU in the
// simulator. Sizing is split in two halves. Plan is a pure function that
// lists the quantum-aligned sizes worth trying, largest first. Allocate walks
// that plan against a Mapper until the host grants one of them.
package mem
