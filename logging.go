package domform

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

const loggerComponent = "domform"

// SetLogger sets a custom structured logger for the manager
func (m *Manager) SetLogger(logger *slog.Logger) {
	if logger != nil {
		m.logger = logger.With("component", loggerComponent)
	} else {
		m.logger = slog.Default().With("component", loggerComponent)
	}
}

// logDebug records a state transition of a form scope
func (m *Manager) logDebug(msg string, form FormID, attrs ...slog.Attr) {
	if m.logger == nil {
		return
	}
	all := make([]slog.Attr, 0, len(attrs)+2)
	all = append(all, slog.String("form", string(form)), slog.String("manager_id", m.managerID()))
	all = append(all, attrs...)
	m.logger.LogAttrs(context.Background(), slog.LevelDebug, msg, all...)
}

// logWarn records API misuse that the manager recovered from
func (m *Manager) logWarn(msg string, attrs ...slog.Attr) {
	if m.logger == nil {
		return
	}
	all := append([]slog.Attr{slog.String("manager_id", m.managerID())}, attrs...)
	m.logger.LogAttrs(context.Background(), slog.LevelWarn, msg, all...)
}

// fieldAttr logs a field path with sensitive names redacted
func fieldAttr(name string) slog.Attr {
	return slog.String("field", sanitizePath(name))
}

// managerID returns a unique identifier for this manager instance
func (m *Manager) managerID() string {
	return fmt.Sprintf("mgr_%p", m)
}

// sanitizePath removes potentially sensitive information from field paths
func sanitizePath(path string) string {
	if len(path) > MaxLoggedPathLength {
		return truncateString(path, MaxLoggedPathLength)
	}
	lowerPath := strings.ToLower(path)
	sensitivePatterns := []string{
		"password", "passwd", "pwd",
		"token", "bearer",
		"apikey", "api_key", "api-key",
		"secret", "credential",
		"ssn", "cvv", "card_number", "cardnumber",
	}
	for _, pattern := range sensitivePatterns {
		if strings.Contains(lowerPath, pattern) {
			return "[REDACTED_PATH]"
		}
	}
	return path
}

// sanitizeError bounds the length of logged error messages
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return truncateString(err.Error(), MaxLoggedErrorLength)
}

// truncateString efficiently truncates a string with ellipsis
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
