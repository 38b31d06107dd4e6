package pubsub

import (
	"context"
	"testing"

	"statistics/config"
	"statistics/internal/domain/constants"
	"statistics/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name     string
		pubsub   *config.PubSubConfig
		wantType any
		wantErr  string
	}{
		{
			name:     "not configured",
			pubsub:   nil,
			wantType: &noopPublisher{},
		},
		{
			name:     "local provider",
			pubsub:   &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/push"},
			wantType: &localHTTPPublisher{},
		},
		{
			name:    "local provider without endpoint",
			pubsub:  &config.PubSubConfig{Provider: constants.PubSubProviderLocal},
			wantErr: "local endpoint is required for local provider",
		},
		{
			name:    "google provider without topic",
			pubsub:  &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "project"},
			wantErr: "topic ID is required for google provider",
		},
		{
			name:    "unknown provider",
			pubsub:  &config.PubSubConfig{Provider: "kafka"},
			wantErr: "unknown pubsub provider: kafka",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.pubsub},
				Logger: newDiscardLogger(),
			})

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())

				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.wantType, publisher)
		})
	}
}

func TestNoopPublisher(t *testing.T) {
	publisher := &noopPublisher{logger: newDiscardLogger()}

	require.NoError(t, publisher.PublishRemarkEvent(context.Background(), &service.RemarkEvent{Type: service.RemarkEventVoted}))
	assert.NoError(t, publisher.Close())
}
