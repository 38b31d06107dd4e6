package postgres

import (
	"testing"
	"time"

	"statistics/internal/domain/entity"
	"statistics/internal/domain/repository"
	"statistics/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{
		DSN: "host=localhost user=statistics dbname=statistics sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	return db
}

func newTestStatistics(t *testing.T) *entity.RemarkStatistics {
	t.Helper()

	stats, err := entity.NewRemarkStatistics(entity.NewRemarkStatisticsParams{
		RemarkID:    uuid.New(),
		Category:    "pothole",
		AuthorID:    "U1",
		AuthorName:  "Bob",
		CreatedAt:   time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Latitude:    52.2,
		Longitude:   21.0,
		Address:     "Warsaw",
		Description: "deep hole",
		Tags:        []string{"road", "danger"},
	})
	require.NoError(t, err)

	return stats
}

func TestRemarkStatisticsMapper_RoundTrip(t *testing.T) {
	stats := newTestStatistics(t)
	stats.AddVote(entity.VoteStatistics{UserID: "U2", Positive: true, CreatedAt: time.Unix(100, 0).UTC()})
	stats.SetResolved("U3", "Alice", time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC))

	statsM := fromRemarkStatisticsDomain(stats)
	assert.Equal(t, "resolved", statsM.State)
	assert.Equal(t, []string{"danger", "road"}, statsM.Tags)
	require.Len(t, statsM.Votes, 1)
	assert.Equal(t, "U2", statsM.Votes[0].UserID)
	require.NotNil(t, statsM.ResolverID)
	assert.Equal(t, "U3", *statsM.ResolverID)

	restored, err := toRemarkStatisticsDomain(statsM)
	require.NoError(t, err)
	assert.Equal(t, stats.Snapshot(), restored.Snapshot())
}

func TestToRemarkStatisticsDomain_CorruptRow(t *testing.T) {
	statsM := &model.RemarkStatisticsModel{
		ID:        uuid.New(),
		RemarkID:  uuid.New(),
		Latitude:  95,
		Longitude: 10,
		State:     "created",
	}

	stats, err := toRemarkStatisticsDomain(statsM)
	assert.Error(t, err)
	assert.Nil(t, stats)

	nilStats, err := toRemarkStatisticsDomain(nil)
	assert.NoError(t, err)
	assert.Nil(t, nilStats)
}

func TestApplyRemarkStatisticsFilter(t *testing.T) {
	db := newDryRunDB(t)

	tests := []struct {
		name     string
		filter   repository.RemarkStatisticsFilter
		contains []string
		vars     []any
	}{
		{
			name:     "no filter",
			filter:   repository.RemarkStatisticsFilter{},
			contains: []string{`FROM "remark_statistics"`},
		},
		{
			name: "all filters",
			filter: repository.RemarkStatisticsFilter{
				State:    entity.RemarkStateResolved,
				Category: "pothole",
				AuthorID: "U1",
				Tag:      "road",
				Limit:    10,
				Offset:   20,
			},
			contains: []string{"state = $1", "category = $2", "author_id = $3", "tags @> $4::jsonb", "LIMIT 10", "OFFSET 20"},
			vars:     []any{"resolved", "pothole", "U1", `["road"]`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := applyRemarkStatisticsFilter(db, tt.filter)
			require.NoError(t, err)

			var rows []*model.RemarkStatisticsModel
			stmt := query.Find(&rows).Statement
			sql := stmt.SQL.String()

			for _, fragment := range tt.contains {
				assert.Contains(t, sql, fragment)
			}
			if tt.vars != nil {
				assert.Equal(t, tt.vars, stmt.Vars)
			}
		})
	}
}

func TestRemarkStatisticsRepository_FindByRemarkIDLocking(t *testing.T) {
	tests := []struct {
		name     string
		find     func(repo repository.RemarkStatisticsRepository, remarkID uuid.UUID)
		wantLock bool
	}{
		{
			name: "plain read",
			find: func(repo repository.RemarkStatisticsRepository, remarkID uuid.UUID) {
				_, _ = repo.FindByRemarkID(t.Context(), remarkID)
			},
		},
		{
			name: "read for update",
			find: func(repo repository.RemarkStatisticsRepository, remarkID uuid.UUID) {
				_, _ = repo.FindByRemarkIDForUpdate(t.Context(), remarkID)
			},
			wantLock: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newDryRunDB(t)

			var sql string
			err := db.Callback().Query().After("gorm:query").Register("test:capture_sql", func(tx *gorm.DB) {
				sql = tx.Statement.SQL.String()
			})
			require.NoError(t, err)

			tt.find(NewRemarkStatisticsRepository(db), uuid.New())

			assert.Contains(t, sql, "remark_id = $1")
			if tt.wantLock {
				assert.Contains(t, sql, "FOR UPDATE")
			} else {
				assert.NotContains(t, sql, "FOR UPDATE")
			}
		})
	}
}
