package model

import (
	"time"

	"github.com/google/uuid"
)

// RemarkStatisticsModel is the GORM-specific struct for the 'remark_statistics' table.
type RemarkStatisticsModel struct {
	ID           uuid.UUID             `gorm:"type:uuid;primary_key"`
	RemarkID     uuid.UUID             `gorm:"type:uuid;not null;uniqueIndex:idx_remark_statistics_on_remark_id"`
	Category     string                `gorm:"type:varchar(100);not null;index:idx_remark_statistics_on_category"`
	AuthorID     string                `gorm:"type:varchar(255);not null;index:idx_remark_statistics_on_author_id"`
	AuthorName   string                `gorm:"type:varchar(255);not null"`
	Latitude     float64               `gorm:"type:double precision;not null"`
	Longitude    float64               `gorm:"type:double precision;not null"`
	Address      string                `gorm:"type:text;not null;default:''"`
	Description  string                `gorm:"type:text;not null;default:''"`
	Tags         []string              `gorm:"type:jsonb;serializer:json;not null"`
	State        string                `gorm:"type:varchar(20);not null;index:idx_remark_statistics_on_state"`
	ResolverID   *string               `gorm:"type:varchar(255)"`
	ResolverName *string               `gorm:"type:varchar(255)"`
	Votes        []VoteStatisticsModel `gorm:"type:jsonb;serializer:json;not null"`
	CreatedAt    time.Time             `gorm:"not null;index:idx_remark_statistics_on_created_at"`
	ResolvedAt   *time.Time
	DeletedAt    *time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (RemarkStatisticsModel) TableName() string {
	return "remark_statistics"
}

// VoteStatisticsModel is a vote stored inside the votes JSON column.
type VoteStatisticsModel struct {
	UserID    string    `json:"user_id"`
	Positive  bool      `json:"positive"`
	CreatedAt time.Time `json:"created_at"`
}
