package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"statistics/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishRemarkEvent(t *testing.T) {
	var received PubSubPushMessage
	var requestIDHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestIDHeader = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	event := &service.RemarkEvent{
		RequestID:  "req-1",
		Type:       service.RemarkEventResolved,
		RemarkID:   "6f1c2a4e-8a52-4d1b-9a7e-2f0b7f3f6b10",
		ResolverID: "u1",
	}

	err := publisher.PublishRemarkEvent(context.Background(), event)
	require.NoError(t, err)

	assert.Equal(t, "req-1", requestIDHeader)
	assert.Equal(t, map[string]string{
		"event_type": service.RemarkEventResolved,
		"remark_id":  event.RemarkID,
		"request_id": "req-1",
	}, received.Message.Attributes)
	assert.NotEmpty(t, received.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.RemarkEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())

	err := publisher.PublishRemarkEvent(context.Background(), &service.RemarkEvent{
		Type:     service.RemarkEventDeleted,
		RemarkID: "6f1c2a4e-8a52-4d1b-9a7e-2f0b7f3f6b10",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}
