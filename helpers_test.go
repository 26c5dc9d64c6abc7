package domform_test

import (
	"bytes"
	"log/slog"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/cybergodev/domform"
	"github.com/cybergodev/domform/memdom"
)

// TestHelper bundles the fixtures shared by the manager tests
type TestHelper struct {
	t       *testing.T
	Manager *domform.Manager
	Changes []domform.Change
	Logs    *bytes.Buffer
}

// NewTestHelper creates a manager with deterministic identities, a change
// recorder and a debug log buffer
func NewTestHelper(t *testing.T, config ...*domform.Config) *TestHelper {
	t.Helper()
	h := &TestHelper{t: t, Logs: &bytes.Buffer{}}
	h.Manager = domform.New(config...)
	h.Manager.SetIdentityStrategy(sequentialIDs("form-"))
	h.Manager.SetNotifier(domform.NotifierFunc(func(c domform.Change) {
		h.Changes = append(h.Changes, c)
	}))
	h.Manager.SetLogger(slog.New(slog.NewTextHandler(h.Logs, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return h
}

// Form parses markup and returns its first form
func (h *TestHelper) Form(markup string) (*memdom.Document, *memdom.Node) {
	h.t.Helper()
	doc, err := memdom.ParseString(markup)
	require.NoError(h.t, err)
	forms := doc.Forms()
	require.NotEmpty(h.t, forms, "markup has no form")
	return doc, forms[0]
}

// ResetChanges forgets the recorded notifications
func (h *TestHelper) ResetChanges() {
	h.Changes = nil
}

// CountChanges returns the recorded notifications of kind for field
func (h *TestHelper) CountChanges(kind domform.ChangeKind, field string) int {
	n := 0
	for _, c := range h.Changes {
		if c.Kind == kind && c.Field == field {
			n++
		}
	}
	return n
}

// AssertValues compares a value tree against its plain Go rendering
func (h *TestHelper) AssertValues(expected any, got domform.Value) {
	h.t.Helper()
	if diff := cmp.Diff(expected, got.Interface()); diff != "" {
		h.t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func sequentialIDs(prefix string) domform.IdentityFunc {
	n := 0
	return func(domform.Container) domform.FormID {
		n++
		return domform.FormID(prefix + strconv.Itoa(n))
	}
}
