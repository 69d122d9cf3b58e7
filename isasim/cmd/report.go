package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/sarchlab/isasim/datarecording"
)

func newReportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "report <recording.sqlite3>",
		Short: "Summarize a recorded run.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return report(cmd.Context(), args[0], cmd.OutOrStdout())
		},
	}
}

func report(ctx context.Context, filename string, out io.Writer) error {
	reader, err := datarecording.NewReader(filename)
	if err != nil {
		return err
	}
	defer reader.Close()

	reader.MapTable(datarecording.RunTable, datarecording.RunSummary{})
	reader.MapTable(datarecording.QuantumTable, datarecording.QuantumEntry{})

	runs, _, err := reader.Query(ctx, datarecording.RunTable,
		datarecording.QueryParams{})
	if err != nil {
		return err
	}

	for _, r := range runs {
		summary := r.(*datarecording.RunSummary)
		fmt.Fprintf(out, "run %s: %d cores, %d MB (requested %d MB)\n",
			summary.ID, summary.NumCores, summary.MemoryMB, summary.RequestedMB)
		fmt.Fprintf(out, "  %d steps in %d quanta, %.3fs, exit code %d",
			summary.Steps, summary.Quanta, summary.WallSeconds, summary.ExitCode)
		if summary.Stopped {
			fmt.Fprint(out, ", stopped")
		}
		fmt.Fprintln(out)
	}

	_, quanta, err := reader.Query(ctx, datarecording.QuantumTable,
		datarecording.QueryParams{Limit: 1})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%d quanta recorded\n", quanta)

	return nil
}
