package service

import (
	"context"
	"time"
)

// Remark event types emitted by the remark service.
const (
	RemarkEventCreated  = "remark_created"
	RemarkEventResolved = "remark_resolved"
	RemarkEventDeleted  = "remark_deleted"
	RemarkEventVoted    = "remark_voted"
)

// RemarkEvent is the message consumed by the statistics worker.
// Only the fields relevant to Type are set.
type RemarkEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	Type      string `json:"type" validate:"required,oneof=remark_created remark_resolved remark_deleted remark_voted"`
	RemarkID  string `json:"remark_id" validate:"required,uuid"`

	// remark_created
	Category    string     `json:"category,omitempty"`
	AuthorID    string     `json:"author_id,omitempty"`
	AuthorName  string     `json:"author_name,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	Latitude    *float64   `json:"latitude,omitempty"`
	Longitude   *float64   `json:"longitude,omitempty"`
	Address     string     `json:"address,omitempty"`
	Description string     `json:"description,omitempty"`
	Tags        []string   `json:"tags,omitempty"`

	// remark_resolved
	ResolverID   string     `json:"resolver_id,omitempty"`
	ResolverName string     `json:"resolver_name,omitempty"`
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`

	// remark_deleted
	DeletedAt *time.Time `json:"deleted_at,omitempty"`

	// remark_voted
	VoterID  string     `json:"voter_id,omitempty"`
	Positive bool       `json:"positive,omitempty"`
	VotedAt  *time.Time `json:"voted_at,omitempty"`
}

// EventPublisher defines the interface for publishing remark events to a message queue
type EventPublisher interface {
	// PublishRemarkEvent publishes a remark event for async processing
	PublishRemarkEvent(ctx context.Context, event *RemarkEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
