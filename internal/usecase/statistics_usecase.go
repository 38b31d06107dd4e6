package usecase

import (
	"context"
	"time"

	"statistics/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
)

// RemarkCreatedInput represents a remark_created event from the remark service
type RemarkCreatedInput struct {
	RemarkID    uuid.UUID
	Category    string
	AuthorID    string
	AuthorName  string
	CreatedAt   time.Time
	Latitude    float64
	Longitude   float64
	Address     string
	Description string
	Tags        []string
}

// RemarkResolvedInput represents a remark_resolved event
type RemarkResolvedInput struct {
	RemarkID     uuid.UUID
	ResolverID   string
	ResolverName string
	ResolvedAt   time.Time
}

// RemarkDeletedInput represents a remark_deleted event.
// A nil DeletedAt means the deletion time is taken when the event is recorded.
type RemarkDeletedInput struct {
	RemarkID  uuid.UUID
	DeletedAt *time.Time
}

// RemarkVotedInput represents a remark_voted event
type RemarkVotedInput struct {
	RemarkID uuid.UUID
	UserID   string
	Positive bool
	VotedAt  time.Time
}

// ListRemarkStatesInput filters the remark state listing
type ListRemarkStatesInput struct {
	State    *entity.RemarkState
	Category string
	AuthorID string
	Tag      string
	Limit    int
	Offset   int
}

// StatisticsUsecase defines the interface for remark statistics use cases
type StatisticsUsecase interface {
	// Event recording
	RecordRemarkCreated(ctx context.Context, input *RemarkCreatedInput) (*entity.RemarkStatistics, error)
	RecordRemarkResolved(ctx context.Context, input *RemarkResolvedInput) (*entity.RemarkStatistics, error)
	RecordRemarkDeleted(ctx context.Context, input *RemarkDeletedInput) (*entity.RemarkStatistics, error)
	RecordVote(ctx context.Context, input *RemarkVotedInput) (*entity.RemarkStatistics, error)

	// Reporting
	GetRemarkState(ctx context.Context, remarkID uuid.UUID) (*RemarkStateDTO, error)
	ListRemarkStates(ctx context.Context, input *ListRemarkStatesInput) ([]*RemarkStateDTO, error)
	ListRemarkFeatures(ctx context.Context, input *ListRemarkStatesInput) (*geojson.FeatureCollection, error)
}
