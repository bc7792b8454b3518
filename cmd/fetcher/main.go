package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ludodefgh/planif-neige-public-api/internal/config"
	"github.com/ludodefgh/planif-neige-public-api/internal/publisher"
	"github.com/ludodefgh/planif-neige-public-api/internal/runner"
	"github.com/ludodefgh/planif-neige-public-api/internal/service"
	"github.com/ludodefgh/planif-neige-public-api/internal/source/geobase"
	"github.com/ludodefgh/planif-neige-public-api/internal/source/planif"
	"github.com/ludodefgh/planif-neige-public-api/internal/storage/jsonfile"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitConfig = 2
)

var errUnknownPipeline = errors.New("unknown pipeline")

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("fetcher", flag.ContinueOnError)
	configPath := fs.String("config", "config.yaml", "path to config file")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: fetcher [-config path] geobase|planif-neige")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitConfig
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return exitConfig
	}
	pipeline := fs.Arg(0)

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		setupLogger("info").Error("failed to load config", "error", err)
		return exitConfig
	}

	// Setup logger
	logger := setupLogger(cfg.LogLevel)

	if err := validate(pipeline, cfg); err != nil {
		logger.Error("invalid configuration", "pipeline", pipeline, "error", err)
		return exitConfig
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// Outcome notifications are optional and never block a run.
	var pub service.Publisher
	if rmq := connectPublisher(cfg.Notifier.RabbitMQ, logger); rmq != nil {
		defer rmq.Close()
		pub = rmq
	}

	job := buildJob(pipeline, cfg, pub, logger)

	r := runner.NewRunner(cfg.Runner.Timeout, logger)
	if _, err := r.RunOnce(ctx, job); err != nil {
		return exitFailed
	}
	return exitOK
}

func validate(pipeline string, cfg *config.Config) error {
	if err := cfg.Notifier.RabbitMQ.Validate(); err != nil {
		return err
	}

	switch pipeline {
	case geobase.SourceID:
		return cfg.Geobase.Validate()
	case planif.SourceID:
		return cfg.PlanifNeige.Validate()
	default:
		return fmt.Errorf("%w %q", errUnknownPipeline, pipeline)
	}
}

func buildJob(pipeline string, cfg *config.Config, pub service.Publisher, logger *slog.Logger) runner.Job {
	if pipeline == geobase.SourceID {
		source := geobase.New(geobase.Config{
			URL:       cfg.Geobase.URL,
			UserAgent: cfg.HTTP.UserAgent,
			Timeout:   cfg.Geobase.Timeout,
		}, logger)
		store := jsonfile.NewStreetSideStore(cfg.Geobase.OutputFile)

		return service.NewGeobaseService(source, store, pub, logger)
	}

	p := cfg.PlanifNeige
	client := planif.New(planif.Config{
		Endpoint:   p.Endpoint,
		Namespace:  p.Namespace,
		SOAPAction: p.SOAPAction,
		UserAgent:  cfg.HTTP.UserAgent,
		Timeout:    p.Timeout,
	}, logger)

	return service.NewPlanifService(
		client,
		jsonfile.NewPlanificationStore(p.OutputFile),
		jsonfile.NewMetadataStore(p.MetadataFile),
		pub,
		logger,
		service.PlanifConfig{
			Token:        p.Token,
			LookbackDays: p.LookbackDays,
			Codes:        statusCodes(p.StatusCodes),
		},
	)
}

func statusCodes(c config.StatusCodes) planif.Codes {
	return planif.Codes{
		OK:            *c.OK,
		AccessDenied:  *c.AccessDenied,
		InvalidAccess: *c.InvalidAccess,
		InvalidDate:   *c.InvalidDate,
		RateLimited:   *c.RateLimited,
		NoData:        *c.NoData,
	}
}

func connectPublisher(cfg config.RabbitMQConfig, logger *slog.Logger) *publisher.RabbitMQ {
	if !cfg.Enabled() {
		return nil
	}

	pub, err := publisher.NewRabbitMQ(publisher.Config{
		URL:        cfg.URL,
		Exchange:   cfg.Exchange,
		RoutingKey: cfg.RoutingKey,
		QueueName:  cfg.QueueName,
	}, logger)
	if err != nil {
		logger.Warn("outcome notifications disabled", "error", err)
		return nil
	}
	return pub
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
