package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"statistics/config"
	"statistics/internal/domain/service"
	logs "statistics/internal/infra/log"
	"statistics/internal/infra/pubsub"
	"statistics/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// replay publishes remark events from a JSON-lines file through the configured publisher,
// e.g. to rebuild statistics after a worker outage.
func main() {
	file := flag.String("file", "", "JSON-lines file with one remark event per line")
	dryRun := flag.Bool("dry-run", false, "Parse and validate events without publishing")
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "Usage: replay -file <events.jsonl> [-dry-run]")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *file, *dryRun); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, path string, dryRun bool) error {
	var (
		publisher service.EventPublisher
		logger    *slog.Logger
	)

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			func() context.Context { return ctx },
		),
		pubsub.Module,
		fx.Populate(&publisher, &logger),
	)
	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start replay")
	}
	defer func() {
		if err := app.Stop(context.Background()); err != nil {
			logger.Error("Failed to stop replay", slog.Any("error", err))
		}
	}()

	f, err := os.Open(path)
	if err != nil {
		return errors.WithStack(err)
	}
	defer f.Close()

	r := &replayer{
		publisher: publisher,
		logger:    logger,
		dryRun:    dryRun,
	}
	start := time.Now()
	source := util.NewChecksumReader(f)
	stats, err := r.Replay(ctx, source)
	logger.Info("Replay finished",
		slog.String("file", path),
		slog.String("sha256", source.Sum()),
		slog.String("size", util.FormatBytes(source.Size())),
		slog.Int("published", stats.Published),
		slog.Int("skipped", stats.Skipped),
		slog.Bool("dry_run", dryRun),
		slog.Duration("elapsed", time.Since(start)),
	)

	return err
}
