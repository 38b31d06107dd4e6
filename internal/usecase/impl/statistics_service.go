package impl

import (
	"context"
	"time"

	"statistics/config"
	"statistics/internal/domain/constants"
	"statistics/internal/domain/entity"
	domainerrors "statistics/internal/domain/errors"
	"statistics/internal/domain/repository"
	"statistics/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

type statisticsService struct {
	statsRepo repository.RemarkStatisticsRepository
	txManager repository.TransactionManager
	config    *config.Config
	now       func() time.Time
}

// NewStatisticsService creates a new statistics service instance
func NewStatisticsService(statsRepo repository.RemarkStatisticsRepository, txManager repository.TransactionManager, cfg *config.Config) usecase.StatisticsUsecase {
	// If Statistics is not configured, provide a default configuration
	if cfg.Statistics == nil {
		cfg.Statistics = &config.StatisticsConfig{
			DefaultPageSize: constants.DefaultPageSize,
			MaxPageSize:     constants.MaxPageSize,
		}
	}

	return &statisticsService{
		statsRepo: statsRepo,
		txManager: txManager,
		config:    cfg,
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// RecordRemarkCreated records the statistics of a newly created remark.
// A repeated event for the same remark returns the statistics already stored.
func (s *statisticsService) RecordRemarkCreated(ctx context.Context, input *usecase.RemarkCreatedInput) (*entity.RemarkStatistics, error) {
	stats, err := entity.NewRemarkStatistics(entity.NewRemarkStatisticsParams{
		RemarkID:    input.RemarkID,
		Category:    input.Category,
		AuthorID:    input.AuthorID,
		AuthorName:  input.AuthorName,
		CreatedAt:   input.CreatedAt,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		Address:     input.Address,
		Description: input.Description,
		Tags:        input.Tags,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := s.statsRepo.Create(ctx, stats); err != nil {
		if !errors.Is(err, repository.ErrRemarkStatisticsAlreadyExists) {
			return nil, errors.Wrap(err, "failed to create remark statistics")
		}

		existing, findErr := s.statsRepo.FindByRemarkID(ctx, input.RemarkID)
		if findErr != nil {
			return nil, errors.Wrap(findErr, "failed to load existing remark statistics")
		}

		return existing, nil
	}

	return stats, nil
}

// RecordRemarkResolved marks the remark as resolved
func (s *statisticsService) RecordRemarkResolved(ctx context.Context, input *usecase.RemarkResolvedInput) (*entity.RemarkStatistics, error) {
	return s.mutate(ctx, input.RemarkID, func(stats *entity.RemarkStatistics) {
		stats.SetResolved(input.ResolverID, input.ResolverName, input.ResolvedAt)
	})
}

// RecordRemarkDeleted marks the remark as deleted
func (s *statisticsService) RecordRemarkDeleted(ctx context.Context, input *usecase.RemarkDeletedInput) (*entity.RemarkStatistics, error) {
	deletedAt := s.now()
	if input.DeletedAt != nil {
		deletedAt = *input.DeletedAt
	}

	return s.mutate(ctx, input.RemarkID, func(stats *entity.RemarkStatistics) {
		stats.SetDeleted(deletedAt)
	})
}

// RecordVote appends a vote to the remark statistics
func (s *statisticsService) RecordVote(ctx context.Context, input *usecase.RemarkVotedInput) (*entity.RemarkStatistics, error) {
	return s.mutate(ctx, input.RemarkID, func(stats *entity.RemarkStatistics) {
		stats.AddVote(entity.VoteStatistics{
			UserID:    input.UserID,
			Positive:  input.Positive,
			CreatedAt: input.VotedAt,
		})
	})
}

// mutate loads the aggregate with a row lock, applies fn and stores the result in one transaction
func (s *statisticsService) mutate(ctx context.Context, remarkID uuid.UUID, fn func(stats *entity.RemarkStatistics)) (*entity.RemarkStatistics, error) {
	var result *entity.RemarkStatistics

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		statsRepo := repoFactory.NewRemarkStatisticsRepository()

		stats, err := statsRepo.FindByRemarkIDForUpdate(ctx, remarkID)
		if err != nil {
			if errors.Is(err, repository.ErrRemarkStatisticsNotFound) {
				return domainerrors.ErrRemarkStatisticsNotFound.WithDetails(remarkID.String())
			}

			return errors.Wrap(err, "failed to find remark statistics")
		}

		fn(stats)

		if err := statsRepo.Update(ctx, stats); err != nil {
			return errors.Wrap(err, "failed to update remark statistics")
		}
		result = stats

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// GetRemarkState returns the flat state of a single remark
func (s *statisticsService) GetRemarkState(ctx context.Context, remarkID uuid.UUID) (*usecase.RemarkStateDTO, error) {
	stats, err := s.statsRepo.FindByRemarkID(ctx, remarkID)
	if err != nil {
		if errors.Is(err, repository.ErrRemarkStatisticsNotFound) {
			return nil, domainerrors.ErrRemarkStatisticsNotFound.WithDetails(remarkID.String())
		}

		return nil, errors.Wrap(err, "failed to find remark statistics")
	}

	return usecase.NewRemarkStateDTO(stats), nil
}

// ListRemarkStates returns the flat states of the remarks matching the input
func (s *statisticsService) ListRemarkStates(ctx context.Context, input *usecase.ListRemarkStatesInput) ([]*usecase.RemarkStateDTO, error) {
	statsList, err := s.list(ctx, input)
	if err != nil {
		return nil, err
	}

	states := make([]*usecase.RemarkStateDTO, 0, len(statsList))
	for _, stats := range statsList {
		states = append(states, usecase.NewRemarkStateDTO(stats))
	}

	return states, nil
}

// ListRemarkFeatures returns the remarks matching the input as a GeoJSON feature collection
func (s *statisticsService) ListRemarkFeatures(ctx context.Context, input *usecase.ListRemarkStatesInput) (*geojson.FeatureCollection, error) {
	statsList, err := s.list(ctx, input)
	if err != nil {
		return nil, err
	}

	collection := geojson.NewFeatureCollection()
	for _, stats := range statsList {
		collection.Append(usecase.NewRemarkFeature(stats))
	}

	return collection, nil
}

func (s *statisticsService) list(ctx context.Context, input *usecase.ListRemarkStatesInput) ([]*entity.RemarkStatistics, error) {
	filter := s.buildFilter(input)

	statsList, err := s.statsRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list remark statistics")
	}

	return statsList, nil
}

// buildFilter converts the input into a repository filter and clamps the page size
func (s *statisticsService) buildFilter(input *usecase.ListRemarkStatesInput) repository.RemarkStatisticsFilter {
	filter := repository.RemarkStatisticsFilter{
		Limit: s.config.Statistics.DefaultPageSize,
	}
	if input == nil {
		return filter
	}

	if input.State != nil {
		filter.State = *input.State
	}
	filter.Category = input.Category
	filter.AuthorID = input.AuthorID
	filter.Tag = input.Tag
	if input.Limit > 0 {
		filter.Limit = min(input.Limit, s.config.Statistics.MaxPageSize)
	}
	if input.Offset > 0 {
		filter.Offset = input.Offset
	}

	return filter
}
