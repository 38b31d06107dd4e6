package entity

// RemarkUser is the identity pair recorded for a remark's author and resolver.
type RemarkUser struct {
	id   string
	name string
}

// NewRemarkUser creates a RemarkUser. Both values are validated by the owning remark service.
func NewRemarkUser(id, name string) RemarkUser {
	return RemarkUser{id: id, name: name}
}

// ID returns the user's identifier.
func (u RemarkUser) ID() string {
	return u.id
}

// Name returns the user's display name.
func (u RemarkUser) Name() string {
	return u.name
}

// Equals reports whether both pairs carry the same id and name.
func (u RemarkUser) Equals(other RemarkUser) bool {
	return u.id == other.id && u.name == other.name
}
