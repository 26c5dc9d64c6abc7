package domform

import (
	"fmt"
	"log/slog"

	"github.com/cybergodev/domform/internal"
)

// Manager owns the form scopes of one host document: field registrations,
// captured values, validation errors and the delegated listeners attached
// to each form container.
//
// A Manager is not safe for concurrent use. Like the document it observes,
// it expects to be driven from a single goroutine (event callbacks and
// direct API calls of the host).
type Manager struct {
	config   *Config
	scopes   map[FormID]*scope
	order    []FormID // scope creation order
	attached map[Container]*attachment
	identity IdentityStrategy
	notifier Notifier
	metrics  *Metrics
	logger   *slog.Logger
	closed   bool
}

// scope is the per-form unit of isolation
type scope struct {
	id         FormID
	fields     map[string]*FieldMeta
	fieldOrder []string
	values     Value
	errors     map[string]string // absent = not validated, "" = valid
	element    Container
}

// attachment tracks the listeners installed on one container
type attachment struct {
	id       FormID
	removers []func()
}

// New creates a form manager with the given configuration.
// If no configuration is provided, uses default configuration.
// It panics when the configuration is invalid; use NewWithConfig to get
// the error instead.
func New(config ...*Config) *Manager {
	var cfg *Config
	if len(config) > 0 && config[0] != nil {
		cfg = config[0]
	} else {
		cfg = DefaultConfig()
	}

	m, err := NewWithConfig(cfg)
	if err != nil {
		panic(fmt.Sprintf("invalid configuration: %v", err))
	}
	return m
}

// NewWithConfig creates a form manager, validating a copy of cfg
func NewWithConfig(cfg *Config) (*Manager, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	cfg = cfg.Clone()
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	return &Manager{
		config:   cfg,
		scopes:   make(map[FormID]*scope),
		attached: make(map[Container]*attachment),
		identity: UUIDIdentity{Prefix: cfg.IDPrefix},
		logger:   slog.Default().With("component", loggerComponent),
	}, nil
}

// GetConfig returns a copy of the manager configuration
func (m *Manager) GetConfig() *Config {
	return m.config.Clone()
}

// SetNotifier sets the sink notified after every value or error mutation
func (m *Manager) SetNotifier(n Notifier) {
	m.notifier = n
}

// SetIdentityStrategy replaces the generator used for containers without
// an identity. nil restores the random UUID strategy.
func (m *Manager) SetIdentityStrategy(s IdentityStrategy) {
	if s == nil {
		s = UUIDIdentity{Prefix: m.config.IDPrefix}
	}
	m.identity = s
}

// SetMetrics sets the collectors updated by the manager. nil disables metrics.
func (m *Manager) SetMetrics(metrics *Metrics) {
	m.metrics = metrics
	m.metrics.setAttached(len(m.attached))
}

// Close detaches every container. A closed manager refuses new
// attachments and submit handlers.
func (m *Manager) Close() {
	if m.closed {
		return
	}
	for c := range m.attached {
		m.Detach(c)
	}
	m.closed = true
}

// IsClosed reports whether Close has been called
func (m *Manager) IsClosed() bool {
	return m.closed
}

// Detach removes the delegated listeners from c and forgets that it was
// attached. Scope state is kept. It reports whether c was attached.
func (m *Manager) Detach(c Container) bool {
	if c == nil {
		return false
	}
	a, ok := m.attached[c]
	if !ok {
		return false
	}
	for _, remove := range a.removers {
		if remove != nil {
			remove()
		}
	}
	delete(m.attached, c)
	m.metrics.setAttached(len(m.attached))
	m.logDebug("container detached", a.id)
	return true
}

// IsAttached reports whether delegated listeners are installed on c
func (m *Manager) IsAttached(c Container) bool {
	if c == nil {
		return false
	}
	_, ok := m.attached[c]
	return ok
}

// FormIDs returns the identities of every scope in creation order
func (m *Manager) FormIDs() []FormID {
	out := make([]FormID, len(m.order))
	copy(out, m.order)
	return out
}

// FormID returns the identity of c without generating one
func (m *Manager) FormID(c Container) (FormID, bool) {
	return m.lookupID(c)
}

func (m *Manager) ensureScope(id FormID) *scope {
	if s, ok := m.scopes[id]; ok {
		return s
	}
	s := &scope{
		id:     id,
		fields: make(map[string]*FieldMeta),
		values: internal.NewMap(),
		errors: make(map[string]string),
	}
	m.scopes[id] = s
	m.order = append(m.order, id)
	return s
}

// scopeOf returns the scope of c, if c has an identity and a scope exists
func (m *Manager) scopeOf(c Container) (*scope, bool) {
	id, ok := m.lookupID(c)
	if !ok {
		return nil, false
	}
	s, ok := m.scopes[id]
	return s, ok
}

func (m *Manager) notify(id FormID, field string, kind ChangeKind) {
	if m.notifier == nil {
		return
	}
	m.notifier.Notify(Change{Form: id, Field: field, Kind: kind})
}

// setField records or replaces field metadata
func (s *scope) setField(name string, options *RegisterOptions) {
	if _, exists := s.fields[name]; !exists {
		s.fieldOrder = append(s.fieldOrder, name)
	}
	s.fields[name] = &FieldMeta{Name: name, Options: options}
}

// ensureField records metadata without options unless the field is known
func (s *scope) ensureField(name string) {
	if _, exists := s.fields[name]; !exists {
		s.setField(name, nil)
	}
}

func (s *scope) removeField(name string) bool {
	if _, exists := s.fields[name]; !exists {
		return false
	}
	delete(s.fields, name)
	for i, n := range s.fieldOrder {
		if n == name {
			s.fieldOrder = append(s.fieldOrder[:i], s.fieldOrder[i+1:]...)
			break
		}
	}
	return true
}

func (s *scope) errorsCopy() map[string]string {
	out := make(map[string]string, len(s.errors))
	for k, v := range s.errors {
		out[k] = v
	}
	return out
}

// segments parses a field path under the configured list index bound
func (m *Manager) segments(path string) []PathSegment {
	return internal.ParsePathMax(path, m.config.MaxListIndex)
}

func (m *Manager) get(s *scope, path string) Value {
	return internal.GetSegments(s.values, m.segments(path))
}

func (m *Manager) set(s *scope, path string, value Value) {
	internal.SetSegments(s.values, m.segments(path), value)
}

// nativeTree builds the native serialization of c into a tree
func (m *Manager) nativeTree(c Container) Value {
	return internal.FormDataToTreeMax(c.FormData(), m.config.MaxListIndex)
}
