package models

// Base is embedded by every model. Root sits behind a pointer, so fields
// promoted from it are reached through an embedded pointer.
type Base struct {
	*Root
	OrganizationID string `json:"-" validate:"required,uuid4"`
	revision       int
}

func (b *Base) Revision() int {
	return b.revision
}

func (b *Base) SetRevision(revision int) {
	b.revision = revision
}
