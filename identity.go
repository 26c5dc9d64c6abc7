package domform

import (
	"strings"

	"github.com/google/uuid"
)

// IdentityStrategy generates identifiers for containers that carry neither
// the identity attribute nor an id
type IdentityStrategy interface {
	NewID(c Container) FormID
}

// IdentityFunc adapts a function to the IdentityStrategy interface
type IdentityFunc func(c Container) FormID

// NewID calls f(c)
func (f IdentityFunc) NewID(c Container) FormID { return f(c) }

// UUIDIdentity generates random identifiers of the form <Prefix><uuid>
type UUIDIdentity struct {
	Prefix string
}

// NewID returns a fresh random identifier
func (u UUIDIdentity) NewID(Container) FormID {
	return FormID(u.Prefix + strings.ReplaceAll(uuid.NewString(), "-", ""))
}

// lookupID reads the identity a container already carries, without
// generating one
func (m *Manager) lookupID(c Container) (FormID, bool) {
	if c == nil {
		return "", false
	}
	if id, ok := c.Attr(m.config.IDAttribute); ok && id != "" {
		return FormID(id), true
	}
	if id := c.ID(); id != "" {
		return FormID(id), true
	}
	return "", false
}

// ensureID resolves the container's identity, stamping a generated one
// when needed, and binds the container to its scope
func (m *Manager) ensureID(c Container) FormID {
	id, ok := m.lookupID(c)
	if !ok {
		id = m.identity.NewID(c)
		c.SetAttr(m.config.IDAttribute, string(id))
	}
	s := m.ensureScope(id)
	s.element = c
	return id
}
