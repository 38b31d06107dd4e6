// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"

	"statistics/internal/domain/entity"
	domainerrors "statistics/internal/domain/errors"
	"statistics/internal/domain/repository"
	"statistics/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// remarkStatisticsRepository implements the repository.RemarkStatisticsRepository interface.
type remarkStatisticsRepository struct {
	db *gorm.DB
}

// NewRemarkStatisticsRepository is the constructor for remarkStatisticsRepository.
func NewRemarkStatisticsRepository(db *gorm.DB) repository.RemarkStatisticsRepository {
	return &remarkStatisticsRepository{
		db: db,
	}
}

// Create persists statistics for a newly created remark.
func (repo *remarkStatisticsRepository) Create(ctx context.Context, stats *entity.RemarkStatistics) error {
	statsM := fromRemarkStatisticsDomain(stats)

	if err := repo.db.WithContext(ctx).Create(statsM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrRemarkStatisticsAlreadyExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required remark statistics information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create remark statistics")
	}

	return nil
}

// FindByRemarkID retrieves the statistics of a remark.
func (repo *remarkStatisticsRepository) FindByRemarkID(ctx context.Context, remarkID uuid.UUID) (*entity.RemarkStatistics, error) {
	return repo.findByRemarkID(repo.db.WithContext(ctx), remarkID)
}

// FindByRemarkIDForUpdate retrieves the statistics of a remark and locks the row.
func (repo *remarkStatisticsRepository) FindByRemarkIDForUpdate(ctx context.Context, remarkID uuid.UUID) (*entity.RemarkStatistics, error) {
	return repo.findByRemarkID(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), remarkID)
}

func (repo *remarkStatisticsRepository) findByRemarkID(db *gorm.DB, remarkID uuid.UUID) (*entity.RemarkStatistics, error) {
	var statsM model.RemarkStatisticsModel
	if err := db.Where("remark_id = ?", remarkID).First(&statsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRemarkStatisticsNotFound
		}

		return nil, errors.Wrap(err, "failed to find remark statistics by remark ID")
	}

	return toRemarkStatisticsDomain(&statsM)
}

// Update stores the current state of the aggregate.
func (repo *remarkStatisticsRepository) Update(ctx context.Context, stats *entity.RemarkStatistics) error {
	statsM := fromRemarkStatisticsDomain(stats)

	result := repo.db.WithContext(ctx).
		Model(&model.RemarkStatisticsModel{}).
		Where("id = ?", statsM.ID).
		Select("state", "resolver_id", "resolver_name", "resolved_at", "deleted_at", "votes", "updated_at").
		Updates(statsM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update remark statistics")
	}

	// If no rows were affected, the statistics row does not exist.
	if result.RowsAffected == 0 {
		return repository.ErrRemarkStatisticsNotFound
	}

	return nil
}

// List returns statistics matching the filter, newest first.
func (repo *remarkStatisticsRepository) List(ctx context.Context, filter repository.RemarkStatisticsFilter) ([]*entity.RemarkStatistics, error) {
	query, err := applyRemarkStatisticsFilter(repo.db.WithContext(ctx), filter)
	if err != nil {
		return nil, err
	}

	var statsModels []*model.RemarkStatisticsModel
	if err := query.Order("created_at DESC").Find(&statsModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list remark statistics")
	}

	result := make([]*entity.RemarkStatistics, 0, len(statsModels))
	for _, statsM := range statsModels {
		stats, err := toRemarkStatisticsDomain(statsM)
		if err != nil {
			return nil, err
		}
		result = append(result, stats)
	}

	return result, nil
}

func applyRemarkStatisticsFilter(db *gorm.DB, filter repository.RemarkStatisticsFilter) (*gorm.DB, error) {
	query := db.Model(&model.RemarkStatisticsModel{})

	if filter.State != "" {
		query = query.Where("state = ?", filter.State.String())
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.AuthorID != "" {
		query = query.Where("author_id = ?", filter.AuthorID)
	}
	if filter.Tag != "" {
		tag, err := json.Marshal([]string{filter.Tag})
		if err != nil {
			return nil, errors.WithStack(err)
		}
		query = query.Where("tags @> ?::jsonb", string(tag))
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	return query, nil
}

// --- Mapper Functions ---

// toRemarkStatisticsDomain converts a GORM RemarkStatisticsModel to a domain RemarkStatistics aggregate.
func toRemarkStatisticsDomain(data *model.RemarkStatisticsModel) (*entity.RemarkStatistics, error) {
	if data == nil {
		return nil, nil
	}

	votes := make([]entity.VoteStatistics, 0, len(data.Votes))
	for _, vote := range data.Votes {
		votes = append(votes, entity.VoteStatistics{
			UserID:    vote.UserID,
			Positive:  vote.Positive,
			CreatedAt: vote.CreatedAt,
		})
	}

	stats, err := entity.RestoreRemarkStatistics(entity.RemarkStatisticsSnapshot{
		ID:           data.ID,
		RemarkID:     data.RemarkID,
		Category:     data.Category,
		AuthorID:     data.AuthorID,
		AuthorName:   data.AuthorName,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		Address:      data.Address,
		Description:  data.Description,
		Tags:         data.Tags,
		State:        entity.RemarkState(data.State),
		CreatedAt:    data.CreatedAt,
		ResolvedAt:   data.ResolvedAt,
		DeletedAt:    data.DeletedAt,
		ResolverID:   data.ResolverID,
		ResolverName: data.ResolverName,
		Votes:        votes,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "corrupt remark statistics row %s", data.ID)
	}

	return stats, nil
}

// fromRemarkStatisticsDomain converts a domain RemarkStatistics aggregate to a GORM RemarkStatisticsModel.
func fromRemarkStatisticsDomain(data *entity.RemarkStatistics) *model.RemarkStatisticsModel {
	if data == nil {
		return nil
	}

	snapshot := data.Snapshot()

	votes := make([]model.VoteStatisticsModel, 0, len(snapshot.Votes))
	for _, vote := range snapshot.Votes {
		votes = append(votes, model.VoteStatisticsModel{
			UserID:    vote.UserID,
			Positive:  vote.Positive,
			CreatedAt: vote.CreatedAt,
		})
	}

	return &model.RemarkStatisticsModel{
		ID:           snapshot.ID,
		RemarkID:     snapshot.RemarkID,
		Category:     snapshot.Category,
		AuthorID:     snapshot.AuthorID,
		AuthorName:   snapshot.AuthorName,
		Latitude:     snapshot.Latitude,
		Longitude:    snapshot.Longitude,
		Address:      snapshot.Address,
		Description:  snapshot.Description,
		Tags:         snapshot.Tags,
		State:        snapshot.State.String(),
		ResolverID:   snapshot.ResolverID,
		ResolverName: snapshot.ResolverName,
		Votes:        votes,
		CreatedAt:    snapshot.CreatedAt,
		ResolvedAt:   snapshot.ResolvedAt,
		DeletedAt:    snapshot.DeletedAt,
	}
}
