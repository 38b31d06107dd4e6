// Package entity contains the core business objects of the project.
package entity

import "statistics/internal/errors"

// ErrUnknownRemarkState is returned when parsing a string that is not a remark state.
var ErrUnknownRemarkState = errors.New("unknown remark state")

// RemarkState represents the lifecycle state of a remark.
type RemarkState string

const (
	// RemarkStateCreated is the initial state of every remark.
	RemarkStateCreated RemarkState = "created"
	// RemarkStateResolved indicates the remark was resolved by a user.
	RemarkStateResolved RemarkState = "resolved"
	// RemarkStateDeleted indicates the remark was removed by its owner.
	RemarkStateDeleted RemarkState = "deleted"
)

// String returns the string representation of the RemarkState.
func (s RemarkState) String() string {
	return string(s)
}

// IsValid checks if the RemarkState is a valid value.
func (s RemarkState) IsValid() bool {
	switch s {
	case RemarkStateCreated, RemarkStateResolved, RemarkStateDeleted:
		return true
	default:
		return false
	}
}

// ParseRemarkState converts a string into a RemarkState.
func ParseRemarkState(s string) (RemarkState, error) {
	state := RemarkState(s)
	if !state.IsValid() {
		return "", errors.Wrapf(ErrUnknownRemarkState, "%q", s)
	}

	return state, nil
}
