package domform

import (
	"log/slog"
	"strings"

	"github.com/cybergodev/domform/internal"
)

// RequiredValidator is the built-in required check. It fails for absent and
// null values, whitespace-only strings, and empty lists and file lists.
// The message it returns is replaced by the field's RequiredMessage or the
// configured default when used by a Manager.
func RequiredValidator(value Value, _ Container) string {
	if isMissing(value) {
		return DefaultRequiredMessage
	}
	return ""
}

// Required is a standalone validator for use in RegisterOptions.Validate.
// Unlike the built-in check it treats empty files as missing, and it lets
// absent values and empty lists through.
func Required(value Value, _ Container) string {
	switch value.Kind() {
	case KindNull:
		return ShortRequiredMessage
	case KindScalar:
		if s, ok := value.Str(); ok && strings.TrimSpace(s) == "" {
			return ShortRequiredMessage
		}
	case KindFile:
		if f, _ := value.File(); f == nil || f.Size() == 0 {
			return ShortRequiredMessage
		}
	}
	return ""
}

func isMissing(value Value) bool {
	switch value.Kind() {
	case KindAbsent, KindNull:
		return true
	case KindScalar:
		if s, ok := value.Str(); ok {
			return strings.TrimSpace(s) == ""
		}
	case KindList, KindFileList:
		return value.Len() == 0
	}
	return false
}

// ValidateField validates the field name in the scope of c and returns its
// error message, or "" when the field is valid or unknown
func (m *Manager) ValidateField(name string, c Container) string {
	id, ok := m.lookupID(c)
	if !ok {
		return ""
	}
	return m.validateScoped(id, name)
}

// ValidateForm validates every field of c: the registered fields plus every
// named control currently in c. It reports whether all of them are valid.
// A container without an identity is invalid; one with an identity but no
// scope has nothing to validate and is valid.
func (m *Manager) ValidateForm(c Container) bool {
	return m.validateForm(c)
}

func (m *Manager) validateScoped(id FormID, name string) string {
	s, ok := m.scopes[id]
	if !ok {
		return ""
	}
	meta, ok := s.fields[name]
	if !ok {
		return ""
	}

	value := m.get(s, name)
	if value.IsAbsent() && s.element != nil {
		value = internal.FirstEntry(s.element.FormData(), name)
	}

	message := ""
	opts := meta.Options
	if opts.IsRequired() && RequiredValidator(value, s.element) != "" {
		message = opts.RequiredMessage
		if message == "" {
			message = m.config.RequiredMessage
		}
	}
	if message == "" && opts != nil {
		for _, validate := range opts.Validate {
			if validate == nil {
				continue
			}
			if msg := validate(value, s.element); msg != "" {
				message = msg
				break
			}
		}
	}

	s.errors[name] = message
	m.markControls(s, name, message != "")
	m.metrics.recordValidation(message)
	m.logDebug("field validated", id, fieldAttr(name), slog.Bool("valid", message == ""))
	m.notify(id, name, ChangeError)
	return message
}

// markControls toggles the error class on the controls named name
func (m *Manager) markControls(s *scope, name string, invalid bool) {
	if s.element == nil {
		return
	}
	for _, el := range s.element.ElementsByName(name) {
		if !isInputElement(el) {
			continue
		}
		if invalid {
			el.ClassList().Add(m.config.ErrorClass)
		} else {
			el.ClassList().Remove(m.config.ErrorClass)
		}
	}
}

func (m *Manager) validateForm(c Container) bool {
	id, ok := m.lookupID(c)
	if !ok {
		return false
	}
	s, ok := m.scopes[id]
	if !ok {
		return true
	}

	seen := make(map[string]bool, len(s.fieldOrder))
	names := make([]string, 0, len(s.fieldOrder))
	for _, name := range s.fieldOrder {
		seen[name] = true
		names = append(names, name)
	}
	for _, el := range c.NamedElements() {
		name := el.Name()
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}

	valid := true
	for _, name := range names {
		if m.validateScoped(id, name) != "" {
			valid = false
		}
	}
	return valid
}
