package main

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"statistics/internal/domain/service"
	mockSvc "statistics/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const eventsFile = `{"type":"remark_created","remark_id":"6f1c2a4e-8a52-4d1b-9a7e-2f0b7f3f6b10","latitude":52.2,"longitude":21}

{"type":"remark_voted","remark_id":"6f1c2a4e-8a52-4d1b-9a7e-2f0b7f3f6b10","voter_id":"u2","positive":true}
not json
{"type":"remark_archived","remark_id":"6f1c2a4e-8a52-4d1b-9a7e-2f0b7f3f6b10"}
{"type":"remark_deleted","remark_id":"6f1c2a4e-8a52-4d1b-9a7e-2f0b7f3f6b10"}
`

func newTestReplayer(t *testing.T, dryRun bool) (*replayer, *mockSvc.MockEventPublisher) {
	publisher := mockSvc.NewMockEventPublisher(t)

	return &replayer{
		publisher: publisher,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		dryRun:    dryRun,
	}, publisher
}

func TestReplayer_Replay(t *testing.T) {
	r, publisher := newTestReplayer(t, false)
	ctx := context.Background()

	var published []string
	publisher.EXPECT().
		PublishRemarkEvent(ctx, mock.AnythingOfType("*service.RemarkEvent")).
		Run(func(_ context.Context, event *service.RemarkEvent) {
			published = append(published, event.Type)
		}).
		Return(nil).
		Times(3)

	stats, err := r.Replay(ctx, strings.NewReader(eventsFile))

	require.NoError(t, err)
	assert.Equal(t, replayStats{Published: 3, Skipped: 2}, stats)
	assert.Equal(t, []string{service.RemarkEventCreated, service.RemarkEventVoted, service.RemarkEventDeleted}, published)
}

func TestReplayer_DryRunDoesNotPublish(t *testing.T) {
	r, _ := newTestReplayer(t, true)

	stats, err := r.Replay(context.Background(), strings.NewReader(eventsFile))

	require.NoError(t, err)
	assert.Equal(t, replayStats{Published: 3, Skipped: 2}, stats)
}

func TestReplayer_StopsOnPublishFailure(t *testing.T) {
	r, publisher := newTestReplayer(t, false)
	ctx := context.Background()

	publisher.EXPECT().
		PublishRemarkEvent(ctx, mock.AnythingOfType("*service.RemarkEvent")).
		Return(errors.New("topic not found")).
		Once()

	stats, err := r.Replay(ctx, strings.NewReader(eventsFile))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
	assert.Equal(t, 0, stats.Published)
}
