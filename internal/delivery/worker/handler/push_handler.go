package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"statistics/config"
	deliverycontext "statistics/internal/delivery/context"
	"statistics/internal/delivery/http/validator"
	"statistics/internal/domain/constants"
	domainerrors "statistics/internal/domain/errors"
	"statistics/internal/domain/service"
	"statistics/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// errInvalidEvent marks events that can never be applied
var errInvalidEvent = errors.New("invalid remark event")

// tokenVerifier validates the Pub/Sub push JWT of a request
type tokenVerifier func(req *http.Request) error

// PushHandler applies remark events pushed by Pub/Sub to the statistics
type PushHandler struct {
	verifyPushAuth bool
	verifyToken    tokenVerifier
	validator      *validator.CustomValidator
	logger         *slog.Logger
	statisticsUC   usecase.StatisticsUsecase
	now            func() time.Time
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config       *config.Config
	Logger       *slog.Logger
	StatisticsUC usecase.StatisticsUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Determine if we need to verify push auth based on config
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		verifyToken:    verifyPubSubToken,
		validator:      validator.New(),
		logger:         params.Logger,
		statisticsUC:   params.StatisticsUC,
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// HandlePush handles incoming Pub/Sub push messages.
// Undecodable messages and events that can never be applied are acknowledged with 200
// so Pub/Sub drops them. Transient failures answer 503 so Pub/Sub redelivers.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := h.verifyToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}

	// Parse remark event
	var event service.RemarkEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse remark event", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}

	// Extract request_id for distributed tracing
	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)

	// Create request-scoped logger with request_id
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	// Update context with request_id and logger
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing remark event",
		slog.String("event_type", event.Type),
		slog.String("remark_id", event.RemarkID),
		slog.String("message_id", pushMsg.Message.MessageID),
	)

	if err := h.processEvent(ctx, &event); err != nil {
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			reqLogger.Error("[Worker] Failed to process remark event",
				slog.String("event_type", event.Type),
				slog.String("remark_id", event.RemarkID),
				slog.Any("error", err),
			)

			return c.NoContent(http.StatusServiceUnavailable)
		}

		reqLogger.Warn("[Worker] Dropping remark event",
			slog.String("event_type", event.Type),
			slog.String("remark_id", event.RemarkID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Remark event processed successfully",
		slog.String("event_type", event.Type),
		slog.String("remark_id", event.RemarkID),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.RemarkEvent) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	// 2. Try event field (from JSON payload)
	if event.RequestID != "" {
		return event.RequestID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	// 4. Generate new UUID as fallback
	return uuid.New().String()
}

// processEvent dispatches the event to the statistics use case
func (h *PushHandler) processEvent(ctx context.Context, event *service.RemarkEvent) error {
	if err := h.validator.Validate(event); err != nil {
		return errors.Wrap(errInvalidEvent, err.Error())
	}

	remarkID, err := uuid.Parse(event.RemarkID)
	if err != nil {
		return errors.Wrap(errInvalidEvent, err.Error())
	}

	switch event.Type {
	case service.RemarkEventCreated:
		if event.CreatedAt == nil || event.Latitude == nil || event.Longitude == nil {
			return errors.Wrap(errInvalidEvent, "created_at, latitude and longitude are required")
		}
		_, err = h.statisticsUC.RecordRemarkCreated(ctx, &usecase.RemarkCreatedInput{
			RemarkID:    remarkID,
			Category:    event.Category,
			AuthorID:    event.AuthorID,
			AuthorName:  event.AuthorName,
			CreatedAt:   *event.CreatedAt,
			Latitude:    *event.Latitude,
			Longitude:   *event.Longitude,
			Address:     event.Address,
			Description: event.Description,
			Tags:        event.Tags,
		})

	case service.RemarkEventResolved:
		_, err = h.statisticsUC.RecordRemarkResolved(ctx, &usecase.RemarkResolvedInput{
			RemarkID:     remarkID,
			ResolverID:   event.ResolverID,
			ResolverName: event.ResolverName,
			ResolvedAt:   h.timeOrNow(event.ResolvedAt),
		})

	case service.RemarkEventDeleted:
		_, err = h.statisticsUC.RecordRemarkDeleted(ctx, &usecase.RemarkDeletedInput{
			RemarkID:  remarkID,
			DeletedAt: event.DeletedAt,
		})

	case service.RemarkEventVoted:
		_, err = h.statisticsUC.RecordVote(ctx, &usecase.RemarkVotedInput{
			RemarkID: remarkID,
			UserID:   event.VoterID,
			Positive: event.Positive,
			VotedAt:  h.timeOrNow(event.VotedAt),
		})
	}

	return classifyError(err)
}

// classifyError marks every failure that is not caused by the event itself as retryable
func classifyError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domainerrors.ErrInvalidArgument) || errors.Is(err, domainerrors.ErrRemarkStatisticsNotFound) {
		return err
	}

	return newRetryableError(err)
}

func (h *PushHandler) timeOrNow(t *time.Time) time.Time {
	if t == nil {
		return h.now()
	}

	return *t
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	// Get the Authorization header
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	// Extract Bearer token
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	// Validate the token using Google's ID token validator
	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// The issuer should be accounts.google.com
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	// Verify email is verified (if email claim exists)
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
