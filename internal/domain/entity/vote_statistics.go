package entity

import "time"

// VoteStatistics records a single vote cast on a remark.
type VoteStatistics struct {
	UserID    string    `json:"user_id"`
	Positive  bool      `json:"positive"`
	CreatedAt time.Time `json:"created_at"`
}
