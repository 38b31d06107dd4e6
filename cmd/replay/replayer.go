package main

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"

	"statistics/internal/delivery/http/validator"
	"statistics/internal/domain/service"

	"github.com/pkg/errors"
)

// maxEventLineSize bounds a single JSON line
const maxEventLineSize = 1024 * 1024

type replayStats struct {
	Published int
	Skipped   int
}

type replayer struct {
	publisher service.EventPublisher
	logger    *slog.Logger
	dryRun    bool
}

// Replay publishes every valid event read from r in file order.
// Invalid lines are logged and skipped; a publish failure stops the replay.
func (r *replayer) Replay(ctx context.Context, reader io.Reader) (replayStats, error) {
	var stats replayStats
	v := validator.New()

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxEventLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var event service.RemarkEvent
		if err := json.Unmarshal([]byte(line), &event); err != nil {
			r.skip(&stats, lineNo, err)

			continue
		}
		if err := v.Validate(&event); err != nil {
			r.skip(&stats, lineNo, err)

			continue
		}

		if r.dryRun {
			stats.Published++

			continue
		}

		if err := r.publisher.PublishRemarkEvent(ctx, &event); err != nil {
			return stats, errors.Wrapf(err, "failed to publish event on line %d", lineNo)
		}
		stats.Published++
	}
	if err := scanner.Err(); err != nil {
		return stats, errors.WithStack(err)
	}

	return stats, nil
}

func (r *replayer) skip(stats *replayStats, lineNo int, err error) {
	stats.Skipped++
	r.logger.Warn("Skipping invalid event",
		slog.Int("line", lineNo),
		slog.Any("error", err),
	)
}
