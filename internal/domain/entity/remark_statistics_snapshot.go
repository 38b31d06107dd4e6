package entity

import (
	"slices"
	"time"

	"statistics/internal/errors"

	"github.com/google/uuid"
)

// RemarkStatisticsSnapshot is the flat state of a RemarkStatistics.
// It is used by the persistence layer to store and reload the aggregate.
type RemarkStatisticsSnapshot struct {
	ID           uuid.UUID
	RemarkID     uuid.UUID
	Category     string
	AuthorID     string
	AuthorName   string
	Latitude     float64
	Longitude    float64
	Address      string
	Description  string
	Tags         []string
	State        RemarkState
	CreatedAt    time.Time
	ResolvedAt   *time.Time
	DeletedAt    *time.Time
	ResolverID   *string
	ResolverName *string
	Votes        []VoteStatistics
}

// Snapshot exports the aggregate state.
func (r *RemarkStatistics) Snapshot() RemarkStatisticsSnapshot {
	snapshot := RemarkStatisticsSnapshot{
		ID:          r.id,
		RemarkID:    r.remarkID,
		Category:    r.category,
		AuthorID:    r.author.ID(),
		AuthorName:  r.author.Name(),
		Latitude:    r.location.Latitude(),
		Longitude:   r.location.Longitude(),
		Address:     r.location.Address(),
		Description: r.description,
		Tags:        r.Tags(),
		State:       r.state,
		CreatedAt:   r.createdAt,
		ResolvedAt:  copyTime(r.resolvedAt),
		DeletedAt:   copyTime(r.deletedAt),
		Votes:       r.Votes(),
	}
	if r.resolver != nil {
		id, name := r.resolver.ID(), r.resolver.Name()
		snapshot.ResolverID = &id
		snapshot.ResolverName = &name
	}

	return snapshot
}

// RestoreRemarkStatistics rebuilds an aggregate from a stored snapshot.
// The location and state are validated again so a corrupt row never yields an aggregate.
func RestoreRemarkStatistics(snapshot RemarkStatisticsSnapshot) (*RemarkStatistics, error) {
	location, err := NewRemarkLocation(snapshot.Latitude, snapshot.Longitude, snapshot.Address)
	if err != nil {
		return nil, err
	}
	if !snapshot.State.IsValid() {
		return nil, errors.Wrapf(ErrUnknownRemarkState, "%q", snapshot.State)
	}

	votes := slices.Clone(snapshot.Votes)
	if votes == nil {
		votes = []VoteStatistics{}
	}

	restored := &RemarkStatistics{
		id:          snapshot.ID,
		remarkID:    snapshot.RemarkID,
		category:    snapshot.Category,
		author:      NewRemarkUser(snapshot.AuthorID, snapshot.AuthorName),
		location:    location,
		description: snapshot.Description,
		tags:        newTagSet(snapshot.Tags),
		state:       snapshot.State,
		createdAt:   snapshot.CreatedAt,
		resolvedAt:  copyTime(snapshot.ResolvedAt),
		deletedAt:   copyTime(snapshot.DeletedAt),
		votes:       votes,
	}
	if snapshot.ResolverID != nil {
		var name string
		if snapshot.ResolverName != nil {
			name = *snapshot.ResolverName
		}
		resolver := NewRemarkUser(*snapshot.ResolverID, name)
		restored.resolver = &resolver
	}

	return restored, nil
}
