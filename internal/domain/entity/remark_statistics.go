package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// RemarkStatistics is the statistics shadow of a remark owned by the remark service.
// It is mutated only through SetResolved, SetDeleted and AddVote.
//
// Transitions are not guarded: resolving a deleted remark, or resolving twice,
// overwrites the previous values. Callers serialize concurrent mutations.
type RemarkStatistics struct {
	id          uuid.UUID
	remarkID    uuid.UUID
	category    string
	author      RemarkUser
	location    RemarkLocation
	description string
	tags        map[string]struct{}
	state       RemarkState
	createdAt   time.Time
	resolvedAt  *time.Time
	deletedAt   *time.Time
	resolver    *RemarkUser
	votes       []VoteStatistics
}

// NewRemarkStatisticsParams holds the values of a newly created remark.
// Address, Description and Tags are optional.
type NewRemarkStatisticsParams struct {
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

// NewRemarkStatistics creates the statistics for a new remark in the created state.
// It fails only when the coordinates are out of range.
func NewRemarkStatistics(params NewRemarkStatisticsParams) (*RemarkStatistics, error) {
	location, err := NewRemarkLocation(params.Latitude, params.Longitude, params.Address)
	if err != nil {
		return nil, err
	}

	return &RemarkStatistics{
		id:          uuid.New(),
		remarkID:    params.RemarkID,
		category:    params.Category,
		author:      NewRemarkUser(params.AuthorID, params.AuthorName),
		location:    location,
		description: params.Description,
		tags:        newTagSet(params.Tags),
		state:       RemarkStateCreated,
		createdAt:   params.CreatedAt,
		votes:       []VoteStatistics{},
	}, nil
}

// SetResolved marks the remark as resolved by the given user.
func (r *RemarkStatistics) SetResolved(resolverID, resolverName string, resolvedAt time.Time) {
	resolver := NewRemarkUser(resolverID, resolverName)
	r.resolver = &resolver
	r.resolvedAt = &resolvedAt
	r.state = RemarkStateResolved
}

// SetDeleted marks the remark as deleted at the given time.
func (r *RemarkStatistics) SetDeleted(deletedAt time.Time) {
	r.deletedAt = &deletedAt
	r.state = RemarkStateDeleted
}

// AddVote appends a vote. Duplicates are kept in insertion order.
func (r *RemarkStatistics) AddVote(vote VoteStatistics) {
	r.votes = append(r.votes, vote)
}

// ID returns the identifier of the statistics record.
func (r *RemarkStatistics) ID() uuid.UUID {
	return r.id
}

// RemarkID returns the identifier of the source remark.
func (r *RemarkStatistics) RemarkID() uuid.UUID {
	return r.remarkID
}

// Category returns the remark category.
func (r *RemarkStatistics) Category() string {
	return r.category
}

// Author returns the user who reported the remark.
func (r *RemarkStatistics) Author() RemarkUser {
	return r.author
}

// Location returns where the remark was reported.
func (r *RemarkStatistics) Location() RemarkLocation {
	return r.location
}

// Description returns the optional remark description.
func (r *RemarkStatistics) Description() string {
	return r.description
}

// Tags returns the tag set sorted alphabetically.
func (r *RemarkStatistics) Tags() []string {
	tags := make([]string, 0, len(r.tags))
	for tag := range r.tags {
		tags = append(tags, tag)
	}
	slices.Sort(tags)

	return tags
}

// HasTag reports whether the remark carries the tag.
func (r *RemarkStatistics) HasTag(tag string) bool {
	_, ok := r.tags[tag]

	return ok
}

// State returns the lifecycle state.
func (r *RemarkStatistics) State() RemarkState {
	return r.state
}

// CreatedAt returns when the remark was created.
func (r *RemarkStatistics) CreatedAt() time.Time {
	return r.createdAt
}

// ResolvedAt returns when the remark was resolved, or nil.
func (r *RemarkStatistics) ResolvedAt() *time.Time {
	return copyTime(r.resolvedAt)
}

// DeletedAt returns when the remark was deleted, or nil.
func (r *RemarkStatistics) DeletedAt() *time.Time {
	return copyTime(r.deletedAt)
}

// Resolver returns the user who resolved the remark, or nil.
func (r *RemarkStatistics) Resolver() *RemarkUser {
	if r.resolver == nil {
		return nil
	}
	resolver := *r.resolver

	return &resolver
}

// Votes returns a copy of the votes in insertion order.
func (r *RemarkStatistics) Votes() []VoteStatistics {
	return slices.Clone(r.votes)
}

func newTagSet(tags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		set[tag] = struct{}{}
	}

	return set
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t

	return &c
}
