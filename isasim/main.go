// Isasim runs a multi-core functional instruction-set simulation.
package main

import "github.com/sarchlab/isasim/isasim/cmd"

func main() {
	cmd.Execute()
}
