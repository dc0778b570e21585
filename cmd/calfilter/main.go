package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/robfig/cron/v3"

	"calfilter/internal/config"
	"calfilter/internal/ics"
	appLog "calfilter/internal/log"
	"calfilter/internal/model"
	"calfilter/internal/pipeline"
)

const version = "0.1.0"

// flagConfig holds CLI flag values.
type flagConfig struct {
	configPath string
	envFile    string
	schedule   string
	once       bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run returns the process exit code: 0 on success, 1 on any failure.
func run(args []string, stderr io.Writer) int {
	flags, err := parseFlags(args, stderr)
	if err != nil {
		return 1
	}

	if err := config.LoadEnvFile(flags.envFile); err != nil {
		appLog.Error("failed to load env file", err, "env_file", flags.envFile)
		return 1
	}

	conf, err := config.Load(flags.configPath)
	if err != nil {
		appLog.Error("failed to load config", err, "config_path", flags.configPath)
		return 1
	}
	appLog.SetLevel(appLog.ParseLevel(conf.LogLevel))

	if flags.schedule != "" {
		conf.Schedule = flags.schedule
	}
	if flags.once {
		conf.Schedule = ""
	}

	if err := conf.Validate(); err != nil {
		appLog.Error("invalid config", err)
		return 1
	}

	appLog.Info("calfilter starting",
		"version", version,
		"keyword", conf.Keyword,
		"output", conf.OutputPath(),
		"schedule", conf.Schedule,
	)

	runner := pipeline.New(conf, ics.NewFetcher(conf.UserAgent))

	if conf.Schedule == "" {
		report, err := runner.Run(context.Background())
		if err != nil {
			appLog.Error("run failed", err)
			return 1
		}
		logReport(report)
		return 0
	}

	if err := runScheduled(conf.Schedule, runner); err != nil {
		appLog.Error("scheduler failed", err, "schedule", conf.Schedule)
		return 1
	}
	return 0
}

// runScheduled runs the pipeline on a cron schedule until SIGINT/SIGTERM.
// Overlapping ticks are skipped, so at most one run is in flight.
func runScheduled(spec string, runner *pipeline.Runner) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	c := cron.New(
		cron.WithLogger(appLog.CronLogger{}),
		cron.WithChain(cron.Recover(appLog.CronLogger{}), cron.SkipIfStillRunning(appLog.CronLogger{})),
	)

	if _, err := c.AddFunc(spec, func() {
		report, err := runner.Run(ctx)
		if err != nil {
			appLog.Error("scheduled run failed", err)
			return
		}
		logReport(report)
	}); err != nil {
		return err
	}

	c.Start()
	appLog.Info("scheduler started", "schedule", spec)

	<-ctx.Done()
	appLog.Info("signal received, shutting down")

	// Wait for a running job to finish.
	<-c.Stop().Done()
	appLog.Info("calfilter exiting")
	return nil
}

func logReport(r model.Report) {
	appLog.Info("run completed",
		"calendar", r.CalendarName,
		"total", r.TotalEvents,
		"filtered", r.FilteredEvents,
		"kept", r.KeptEvents(),
		"invalid_recurrences", len(r.InvalidRecurrences),
		"output", r.OutputPath,
		"bytes", r.BytesOut,
	)
	for _, ev := range r.Filtered {
		appLog.Debug("filtered event", "uid", ev.UID, "summary", ev.Summary)
	}
	if len(r.InvalidRecurrences) > 0 {
		appLog.Warn("kept events with unparseable RRULE", "uids", strings.Join(r.InvalidRecurrences, ","))
	}
}

func parseFlags(args []string, stderr io.Writer) (flagConfig, error) {
	var cfg flagConfig

	fs := flag.NewFlagSet("calfilter", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&cfg.configPath, "config", "", "Path to optional YAML config file")
	fs.StringVar(&cfg.envFile, "env-file", ".env", "Path to optional dotenv file")
	fs.StringVar(&cfg.schedule, "schedule", "", "Cron expression; run repeatedly instead of once (overrides config)")
	fs.BoolVar(&cfg.once, "once", false, "Run a single time even if a schedule is configured")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	return cfg, nil
}
