// Package cmd provides the command-line interface of isasim.
package cmd

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "isasim",
	Short: "Isasim runs multi-core functional instruction-set simulations.",
	Long: `Isasim runs multi-core functional instruction-set simulations. ` +
		`It interleaves the cores, serves the host-target interface, and ` +
		`can be watched over HTTP or recorded into SQLite.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(newRunCommand())
	rootCmd.AddCommand(newReportCommand())

	// Fatal logs still run the registered exit handlers.
	logrus.StandardLogger().ExitFunc = atexit.Exit
}

// ExitError carries the exit code of the simulated target.
type ExitError struct {
	Code int
}

func (e ExitError) Error() string {
	return "target exited with code " + strconv.Itoa(e.Code)
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()

	var exit ExitError
	switch {
	case errors.As(err, &exit):
		atexit.Exit(exit.Code)
	case err != nil:
		atexit.Exit(1)
	default:
		atexit.Exit(0)
	}
}
