package domform_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybergodev/domform"
	"github.com/cybergodev/domform/memdom"
)

// submission records the callbacks of one submit handler
type submission struct {
	valid   []domform.Value
	invalid []map[string]string
}

func (s *submission) onValid(v domform.Value)          { s.valid = append(s.valid, v) }
func (s *submission) onInvalid(errs map[string]string) { s.invalid = append(s.invalid, errs) }
func (s *submission) last() domform.Value              { return s.valid[len(s.valid)-1] }
func (s *submission) lastErrors() map[string]string    { return s.invalid[len(s.invalid)-1] }

func bindSubmit(t *testing.T, h *TestHelper, form *memdom.Node) *submission {
	t.Helper()
	sub := &submission{}
	listener, err := h.Manager.HandleSubmit(form, sub.onValid, sub.onInvalid)
	require.NoError(t, err)
	form.AddEventListener(domform.EventSubmit, listener, false)
	return sub
}

func TestHandleSubmit(t *testing.T) {
	t.Run("nil container", func(t *testing.T) {
		h := NewTestHelper(t)

		listener, err := h.Manager.HandleSubmit(nil, func(domform.Value) {}, nil)

		assert.Nil(t, listener)
		require.Error(t, err)
		assert.ErrorIs(t, err, domform.ErrNilContainer)
		var formErr *domform.FormError
		require.True(t, errors.As(err, &formErr))
		assert.Equal(t, "handle_submit", formErr.Op)
	})

	t.Run("attaches the container", func(t *testing.T) {
		h := NewTestHelper(t)
		_, form := h.Form(`<form id="f"><input name="a" value="1"></form>`)

		bindSubmit(t, h, form)

		assert.True(t, h.Manager.IsAttached(form))
		h.AssertValues(map[string]any{"a": "1"}, h.Manager.GetValues(form))
	})

	t.Run("scope values take precedence over native serialization", func(t *testing.T) {
		h := NewTestHelper(t)
		doc, form := h.Form(`<form id="f"><input name="a" value="1"></form>`)
		sub := bindSubmit(t, h, form)

		h.Manager.SetValue(form, "a", "2")
		doc.Query("input", "a").SetValue("1")

		assert.True(t, form.Submit(), "default submission is prevented")
		require.Len(t, sub.valid, 1)
		h.AssertValues(map[string]any{"a": "2"}, sub.last())
	})

	t.Run("unmanaged controls come from native serialization", func(t *testing.T) {
		h := NewTestHelper(t)
		_, form := h.Form(`<form id="f"><input name="user.name" value="Al"></form>`)
		sub := bindSubmit(t, h, form)
		form.AppendChild(memdom.NewElement("input", "name", "user.email", "value", "al@example.com"))
		form.AppendChild(memdom.NewElement("input", "type", "hidden", "name", "token", "value", "t1"))

		form.Submit()

		require.Len(t, sub.valid, 1)
		h.AssertValues(map[string]any{
			"user":  map[string]any{"name": "Al", "email": "al@example.com"},
			"token": "t1",
		}, sub.last())
	})

	t.Run("lists replace native entries as a whole", func(t *testing.T) {
		h := NewTestHelper(t)
		_, form := h.Form(`<form id="f">
			<input type="checkbox" name="tags" value="a" checked>
			<input type="checkbox" name="tags" value="b" checked>
			<input type="checkbox" name="solo" value="x" checked>
		</form>`)
		sub := bindSubmit(t, h, form)

		form.ControlByValue("tags", "a").Click()
		form.Submit()

		require.Len(t, sub.valid, 1)
		h.AssertValues(map[string]any{
			"tags": []any{"b"},
			"solo": []any{"x"},
		}, sub.last())
	})

	t.Run("file lists from the scope", func(t *testing.T) {
		h := NewTestHelper(t)
		doc, form := h.Form(`<form id="f"><input type="file" name="docs" multiple></form>`)
		sub := bindSubmit(t, h, form)
		doc.Query("input", "docs").ChooseFiles(
			memdom.NewFile("a.pdf", "application/pdf", []byte("a")),
			memdom.NewFile("b.pdf", "application/pdf", []byte("b")),
		)

		form.Submit()

		require.Len(t, sub.valid, 1)
		docs := domform.GetPath(sub.last(), "docs")
		assert.Equal(t, domform.KindFileList, docs.Kind())
		assert.Equal(t, 2, docs.Len())
	})

	t.Run("invalid form", func(t *testing.T) {
		h := NewTestHelper(t)
		doc, form := h.Form(`<form id="f"><input name="email"><input name="nick" value="al"></form>`)
		h.Manager.Register("email", &domform.RegisterOptions{Required: true}).Attach(doc.Query("input", "email"))
		sub := bindSubmit(t, h, form)

		assert.True(t, form.Submit())

		assert.Empty(t, sub.valid)
		require.Len(t, sub.invalid, 1)
		assert.Equal(t, map[string]string{
			"email": domform.DefaultRequiredMessage,
			"nick":  "",
		}, sub.lastErrors())

		doc.Query("input", "email").Input("al@example.com")
		form.Submit()
		require.Len(t, sub.valid, 1)
		h.AssertValues(map[string]any{"email": "al@example.com", "nick": "al"}, sub.last())
	})

	t.Run("payload is detached from the scope", func(t *testing.T) {
		h := NewTestHelper(t)
		_, form := h.Form(`<form id="f"><input type="checkbox" name="tags" value="a" checked></form>`)
		sub := bindSubmit(t, h, form)

		form.Submit()
		require.Len(t, sub.valid, 1)
		domform.GetPath(sub.last(), "tags").Append(domform.String("mutated"))

		h.AssertValues(map[string]any{"tags": []any{"a"}}, h.Manager.GetValues(form))
	})

	t.Run("nil event and nil callbacks", func(t *testing.T) {
		h := NewTestHelper(t)
		_, form := h.Form(`<form id="f"><input name="a" value="1"></form>`)

		listener, err := h.Manager.HandleSubmit(form, nil, nil)
		require.NoError(t, err)

		assert.NotPanics(t, func() { listener(nil) })
	})
}
