// Package cli builds the scheduler command line.
//
//	scheduler run -f processes.yaml [-a fcfs|sjf|rr|priority|all] [-q 2] [-o table|json]
//	scheduler shell
//	scheduler serve [--port 9095]
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"cpu-scheduler/api"
	"cpu-scheduler/config"
	"cpu-scheduler/internal/logging"
	"cpu-scheduler/internal/metrics"
	"cpu-scheduler/internal/report"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
	"cpu-scheduler/internal/shell"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	logLevel   string
	logFormat  string
	seed       string

	cfg    *config.SchedulerConfig
	logger *slog.Logger
}

func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "scheduler",
		Short: "CPU scheduling simulator",
		Long: `Simulates FCFS, SJF, Round Robin and Priority scheduling over a process set
and reports per-process completion, waiting and turnaround times with a gantt chart.`,
		Version:      "1.0.0",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file path (default ./config.yaml if present)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "log format (text, json)")
	root.PersistentFlags().StringVar(&opts.seed, "seed", "", "round robin seed policy (first, arrived)")

	root.AddCommand(
		newRunCmd(opts),
		newShellCmd(opts),
		newServeCmd(opts),
	)
	return root
}

func (o *options) load(cmd *cobra.Command) error {
	cfg, err := config.LoadSchedulerConfig(o.configPath)
	if err != nil {
		return err
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if o.logFormat != "" {
		cfg.LogFormat = o.logFormat
	}
	if o.seed != "" {
		cfg.RoundRobinSeed = o.seed
	}
	if _, err := schedulers.ParseSeedPolicy(cfg.RoundRobinSeed); err != nil {
		return err
	}

	o.cfg = cfg
	o.logger = logging.NewLoggerWithWriter(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat, cmd.ErrOrStderr())
	slog.SetDefault(o.logger)
	return nil
}

func (o *options) seedPolicy() schedulers.SeedPolicy {
	seed, _ := schedulers.ParseSeedPolicy(o.cfg.RoundRobinSeed)
	return seed
}

func newRunCmd(opts *options) *cobra.Command {
	var file, algorithm, output string
	var quantum int

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run scheduling algorithms over a process file",
		Long:  "Load a process set from a JSON, YAML or CSV file and run one algorithm or all of them.",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := requests.LoadFile(file)
			if err != nil {
				return err
			}
			if quantum == 0 {
				quantum = req.QuantumOr(opts.cfg.RoundRobinTimeQuantum)
			}

			var results []schedulers.Result
			if algorithm == "all" {
				results, err = schedulers.RunAll(req.Processes(), quantum, schedulers.WithSeedPolicy(opts.seedPolicy()))
			} else {
				var alg schedulers.Algorithm
				alg, err = schedulers.ParseAlgorithm(algorithm)
				if err != nil {
					return err
				}
				var result schedulers.Result
				result, err = schedulers.Run(alg, req.Processes(), quantum, schedulers.WithSeedPolicy(opts.seedPolicy()))
				results = []schedulers.Result{result}
			}
			if err != nil {
				return fmt.Errorf("schedule %s: %w", file, err)
			}
			opts.logger.Info("simulation finished", "file", file, "algorithm", algorithm, "processes", len(req.Jobs))

			return writeResults(cmd, output, results)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "process set file (.json, .yaml, .csv)")
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "all", "fcfs, sjf, rr, priority or all")
	cmd.Flags().IntVarP(&quantum, "quantum", "q", 0, "round robin time quantum (default from file or config)")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format: table or json")
	cmd.MarkFlagRequired("file")

	return cmd
}

func writeResults(cmd *cobra.Command, output string, results []schedulers.Result) error {
	w := cmd.OutOrStdout()
	switch output {
	case "json":
		out := make([]responses.ScheduleResponse, 0, len(results))
		for _, result := range results {
			out = append(out, responses.NewScheduleResponse(result))
		}
		if len(out) == 1 {
			return report.WriteJSON(w, out[0])
		}
		return report.WriteJSON(w, out)
	case "table":
		for _, result := range results {
			report.WriteResult(w, result)
		}
		if len(results) > 1 {
			report.WriteComparison(w, results)
		}
		return nil
	}
	return fmt.Errorf("unknown output format %q (want table or json)", output)
}

func newShellCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			return shell.New(cmd.InOrStdin(), cmd.OutOrStdout(), opts.seedPolicy(), opts.logger).Run()
		},
	}
}

func newServeCmd(opts *options) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scheduling HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if port == 0 {
				port = opts.cfg.Port
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, opts, port)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (default from config)")
	return cmd
}

func serve(ctx context.Context, opts *options, port int) error {
	var collector *metrics.Collector
	if opts.cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		collector = metrics.NewCollector(reg)
	}

	handler, err := api.NewSchedulerHandlerImpl(opts.cfg, collector, opts.logger)
	if err != nil {
		return err
	}
	app := api.NewApp(handler, collector)

	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", port)
		opts.logger.Info("listening", "addr", addr, "metrics", collector != nil)
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	opts.logger.Info("shutting down")
	if err := app.Shutdown(); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
