// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"statistics/internal/domain/entity"
	"statistics/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for remark statistics persistence.
var (
	// ErrRemarkStatisticsNotFound is returned when no statistics exist for a remark.
	ErrRemarkStatisticsNotFound = errors.New("remark statistics not found")
	// ErrRemarkStatisticsAlreadyExists is returned when statistics for the remark were already recorded.
	ErrRemarkStatisticsAlreadyExists = errors.New("remark statistics already exist")
)

// RemarkStatisticsFilter narrows a listing. Zero values are ignored.
type RemarkStatisticsFilter struct {
	State    entity.RemarkState
	Category string
	AuthorID string
	Tag      string
	Limit    int
	Offset   int
}

// RemarkStatisticsRepository defines the interface for remark statistics database operations.
type RemarkStatisticsRepository interface {
	// Create persists statistics for a newly created remark.
	// Returns ErrRemarkStatisticsAlreadyExists if the remark was already recorded.
	Create(ctx context.Context, stats *entity.RemarkStatistics) error

	// FindByRemarkID retrieves the statistics of a remark.
	// Returns ErrRemarkStatisticsNotFound if none exist.
	FindByRemarkID(ctx context.Context, remarkID uuid.UUID) (*entity.RemarkStatistics, error)

	// FindByRemarkIDForUpdate is FindByRemarkID with a row lock; only meaningful inside a transaction.
	FindByRemarkIDForUpdate(ctx context.Context, remarkID uuid.UUID) (*entity.RemarkStatistics, error)

	// Update stores the current state of the aggregate.
	Update(ctx context.Context, stats *entity.RemarkStatistics) error

	// List returns statistics matching the filter, newest first.
	List(ctx context.Context, filter RemarkStatisticsFilter) ([]*entity.RemarkStatistics, error)
}
