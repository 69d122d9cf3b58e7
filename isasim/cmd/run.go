package cmd

import (
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sarchlab/isasim/config"
	"github.com/sarchlab/isasim/datarecording"
	"github.com/sarchlab/isasim/debugger"
	"github.com/sarchlab/isasim/mem"
	"github.com/sarchlab/isasim/monitoring"
	"github.com/sarchlab/isasim/sim"
)

func newRunCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "run [flags] [-- target args...]",
		Short: "Run a simulation.",
		Long: "Run a simulation until the target exits. Settings come from " +
			"the defaults, a YAML file, ISASIM_* environment variables, and " +
			"the flags, in increasing priority.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			code, err := run(cfg, args, cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}

			if code != 0 {
				return ExitError{Code: code}
			}

			return nil
		},
	}

	f := c.Flags()
	f.String("config", "", "YAML file with run settings")
	f.String("env-file", ".env", "file with ISASIM_* variables")
	f.IntP("cores", "p", 1, "number of cores")
	f.Uint64P("mem", "m", 0, "target memory in MB, 0 for the host default")
	f.BoolP("debug", "d", false, "drive the run from the debug console")
	f.Uint64("max-steps", 0, "steps each core retires before exiting, 0 for no limit")
	f.String("log", "info", "log level")
	f.Bool("monitor", false, "serve the HTTP monitor")
	f.Int("monitor-port", 0, "monitor port, 0 for a random one")
	f.Bool("monitor-open", false, "open the monitor in a browser")
	f.Bool("record", false, "record quanta and the run summary into SQLite")
	f.String("record-path", "", "database path without extension")

	return c
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	f := cmd.Flags()

	envFile, _ := f.GetString("env-file")
	if err := config.LoadDotEnv(envFile); err != nil {
		return config.Config{}, err
	}

	cfg := config.Default()
	if path, _ := f.GetString("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return cfg, err
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}

	applyFlags(cmd, &cfg)

	return cfg, cfg.Validate()
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()

	if f.Changed("cores") {
		cfg.Cores, _ = f.GetInt("cores")
	}
	if f.Changed("mem") {
		cfg.MemoryMB, _ = f.GetUint64("mem")
	}
	if f.Changed("debug") {
		cfg.Debug, _ = f.GetBool("debug")
	}
	if f.Changed("max-steps") {
		cfg.MaxSteps, _ = f.GetUint64("max-steps")
	}
	if f.Changed("log") {
		cfg.LogLevel, _ = f.GetString("log")
	}
	if f.Changed("monitor") {
		cfg.Monitor.Enabled, _ = f.GetBool("monitor")
	}
	if f.Changed("monitor-port") {
		cfg.Monitor.Port, _ = f.GetInt("monitor-port")
	}
	if f.Changed("monitor-open") {
		cfg.Monitor.OpenBrowser, _ = f.GetBool("monitor-open")
	}
	if f.Changed("record") {
		cfg.Record.Enabled, _ = f.GetBool("record")
	}
	if f.Changed("record-path") {
		cfg.Record.Path, _ = f.GetString("record-path")
	}
}

// run simulates the configured machine and returns the target's exit code.
func run(
	cfg config.Config,
	args []string,
	in io.Reader,
	out io.Writer,
) (int, error) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return 0, errors.Wrap(err, "isasim")
	}
	logrus.SetLevel(level)

	builder := sim.MakeBuilder().
		WithNumCores(cfg.Cores).
		WithMemoryMB(cfg.MemoryMB).
		WithArgs(args).
		WithCoreBudget(cfg.MaxSteps).
		WithConsole(out).
		WithHook(sim.NewQuantumLogger(nil))

	if cfg.Debug {
		builder = builder.
			WithDebug(true).
			WithDebugger(debugger.NewConsole(in, out))
	}

	var recorder datarecording.DataRecorder
	if cfg.Record.Enabled {
		if recorder, err = datarecording.New(cfg.Record.Path); err != nil {
			return 0, err
		}
		defer recorder.Close()

		builder = builder.WithHook(datarecording.NewQuantumRecorder(recorder))
	}

	var (
		monitor *monitoring.Monitor
		bar     *monitoring.ProgressBar
	)
	if cfg.Monitor.Enabled {
		monitor = monitoring.NewMonitor().
			WithPortNumber(cfg.Monitor.Port).
			WithBrowser(cfg.Monitor.OpenBrowser)

		if cfg.MaxSteps > 0 {
			bar = monitor.CreateProgressBar("steps",
				cfg.MaxSteps*uint64(max(cfg.Cores, 1)))
			builder = builder.WithHook(bar)
		}
	}

	s, err := builder.Build()
	if errors.Is(err, mem.ErrNoMemory) {
		logrus.Fatalf("isasim: %v", err)
	}
	if err != nil {
		return 0, err
	}
	defer s.Close()

	if monitor != nil {
		monitor.RegisterMachine(s)
		if _, err := monitor.StartServer(); err != nil {
			return 0, err
		}
	}

	start := time.Now()
	runErr := s.Run()
	wall := time.Since(start)

	if bar != nil {
		monitor.CompleteProgressBar(bar)
	}

	summary := datarecording.Summarize(s, wall)
	logrus.WithFields(logrus.Fields{
		"id":     summary.ID,
		"steps":  summary.Steps,
		"quanta": summary.Quanta,
		"wall":   wall.Round(time.Millisecond),
	}).Info("simulation finished")

	if recorder != nil {
		datarecording.RecordSummary(recorder, summary)
		if err := recorder.Close(); err != nil {
			return 0, err
		}
	}

	if runErr != nil {
		return 0, runErr
	}

	return summary.ExitCode, nil
}
