package memdom

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybergodev/domform"
)

const fixture = `<!DOCTYPE html>
<html><body>
<form id="profile" class="card">
	<input id="name" name="name" value="Al">
	<input id="secret" name="secret" value="x" disabled>
	<input id="anon" value="no name">
	<input id="news" type="checkbox" name="news">
	<input id="terms" type="checkbox" name="terms" value="yes" checked>
	<input id="r1" type="radio" name="size" value="s" checked>
	<input id="r2" type="radio" name="size" value="m">
	<input id="avatar" type="file" name="avatar">
	<select id="colors" name="colors" multiple>
		<option value="red" selected>Red</option>
		<option selected>Green</option>
		<option value="blue">Blue</option>
	</select>
	<select id="one" name="one"><option value="a">A</option><option value="b">B</option></select>
	<textarea id="bio" name="bio">hello</textarea>
	<input id="go" type="submit" name="go" value="Go">
	<button id="send" name="send">Send</button>
</form>
<input id="outside" name="outside">
</body></html>`

func parseFixture(t *testing.T) *Document {
	t.Helper()
	doc, err := ParseString(fixture)
	require.NoError(t, err)
	return doc
}

func TestParse(t *testing.T) {
	doc := parseFixture(t)

	forms := doc.Forms()
	require.Len(t, forms, 1)
	form := forms[0]
	assert.Equal(t, "profile", form.ID())
	assert.Same(t, form, doc.GetElementByID("profile"))
	assert.Nil(t, doc.GetElementByID("missing"))

	name := doc.GetElementByID("name")
	assert.Equal(t, "input", name.TagName())
	assert.Equal(t, "text", name.Type())
	assert.Equal(t, domform.Container(form), name.Form())
	assert.Nil(t, doc.GetElementByID("outside").Form())
	assert.Nil(t, doc.Root().Children()[0].Parent(), "top-level element has no parent")

	assert.Same(t, name, doc.Query("input", "name"))
	assert.Nil(t, doc.Query("input", "nope"))
}

func TestControlState(t *testing.T) {
	doc := parseFixture(t)

	t.Run("types", func(t *testing.T) {
		assert.Equal(t, "checkbox", doc.GetElementByID("news").Type())
		assert.Equal(t, "select-multiple", doc.GetElementByID("colors").Type())
		assert.Equal(t, "select-one", doc.GetElementByID("one").Type())
		assert.Equal(t, "textarea", doc.GetElementByID("bio").Type())
		assert.Equal(t, "submit", doc.GetElementByID("send").Type())
		assert.Equal(t, "", doc.GetElementByID("profile").Type())
	})

	t.Run("values", func(t *testing.T) {
		assert.Equal(t, "Al", doc.GetElementByID("name").Value())
		assert.Equal(t, "on", doc.GetElementByID("news").Value(), "checkbox without value attribute")
		assert.Equal(t, "hello", doc.GetElementByID("bio").Value())
		assert.Equal(t, "red", doc.GetElementByID("colors").Value())
		assert.Equal(t, "a", doc.GetElementByID("one").Value(), "first option by default")
	})

	t.Run("set value", func(t *testing.T) {
		doc := parseFixture(t)
		name := doc.GetElementByID("name")
		name.SetValue("Bo")
		assert.Equal(t, "Bo", name.Value())
		_, attr := name.Attr("value")
		assert.True(t, attr)

		one := doc.GetElementByID("one")
		one.SetValue("b")
		assert.Equal(t, "b", one.Value())
		one.SetValue("zzz")
		assert.Equal(t, "a", one.Value(), "no match falls back to the first option")
	})

	t.Run("radio groups are exclusive", func(t *testing.T) {
		doc := parseFixture(t)
		r1, r2 := doc.GetElementByID("r1"), doc.GetElementByID("r2")

		r2.SetChecked(true)

		assert.False(t, r1.Checked())
		assert.True(t, r2.Checked())
	})

	t.Run("files", func(t *testing.T) {
		doc := parseFixture(t)
		avatar := doc.GetElementByID("avatar")
		assert.Equal(t, 0, avatar.Files().Len())
		assert.Nil(t, doc.GetElementByID("name").Files())

		avatar.SetFiles(NewFile("me.png", "image/png", []byte("png")))
		files := avatar.Files()
		require.Equal(t, 1, files.Len())
		assert.Equal(t, "me.png", files.Item(0).Name())
		assert.Equal(t, "image/png", files.Item(0).ContentType())
		assert.Nil(t, files.Item(1))
	})
}

func TestFormData(t *testing.T) {
	doc := parseFixture(t)
	form := doc.GetElementByID("profile")
	photo := NewFile("me.png", "image/png", []byte("png"))
	doc.GetElementByID("avatar").SetFiles(photo)

	entries := form.FormData()

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	require.Equal(t, []string{"name", "terms", "size", "avatar", "colors", "colors", "one", "bio"}, names,
		"entries:\n%s", spew.Sdump(entries))

	assert.Equal(t, "yes", entries[1].Value)
	assert.Equal(t, "s", entries[2].Value)
	assert.Same(t, photo, entries[3].File)
	assert.Equal(t, "red", entries[4].Value)
	assert.Equal(t, "Green", entries[5].Value)
	assert.Equal(t, "a", entries[6].Value)
	assert.Equal(t, "hello", entries[7].Value)

	t.Run("empty file control", func(t *testing.T) {
		doc := MustParse(`<form><input type="file" name="f"></form>`)

		entries := doc.Forms()[0].FormData()

		require.Len(t, entries, 1, "entries:\n%s", spew.Sdump(entries))
		require.NotNil(t, entries[0].File)
		assert.Equal(t, "", entries[0].File.Name())
		assert.Equal(t, int64(0), entries[0].File.Size())
	})
}

func TestReset(t *testing.T) {
	doc := parseFixture(t)
	form := doc.GetElementByID("profile")

	doc.GetElementByID("name").SetValue("Bo")
	doc.GetElementByID("terms").SetChecked(false)
	doc.GetElementByID("r2").SetChecked(true)
	doc.GetElementByID("one").SetValue("b")
	doc.GetElementByID("bio").SetValue("changed")
	doc.GetElementByID("avatar").SetFiles(NewFile("a", "", nil))

	form.Reset()

	assert.Equal(t, "Al", doc.GetElementByID("name").Value())
	assert.True(t, doc.GetElementByID("terms").Checked())
	assert.True(t, doc.GetElementByID("r1").Checked())
	assert.False(t, doc.GetElementByID("r2").Checked())
	assert.Equal(t, "a", doc.GetElementByID("one").Value())
	assert.Equal(t, "hello", doc.GetElementByID("bio").Value())
	assert.Equal(t, 0, doc.GetElementByID("avatar").Files().Len())
}

func TestNamedElements(t *testing.T) {
	doc := parseFixture(t)
	form := doc.GetElementByID("profile")

	named := form.NamedElements()
	assert.Len(t, named, 12)
	for _, el := range named {
		_, ok := el.Attr("name")
		assert.True(t, ok)
	}

	assert.Len(t, form.ElementsByName("size"), 2)
	assert.Empty(t, form.ElementsByName("outside"))
	assert.Same(t, doc.GetElementByID("r2"), form.ControlByValue("size", "m"))
	assert.Nil(t, form.ControlByValue("size", "xl"))
}

func TestClassList(t *testing.T) {
	doc := parseFixture(t)
	form := doc.GetElementByID("profile")
	classes := form.ClassList()

	classes.Add("error", "card", "")
	assert.True(t, classes.Contains("error"))
	v, _ := form.Attr("class")
	assert.Equal(t, "card error", v)

	classes.Remove("card")
	v, _ = form.Attr("class")
	assert.Equal(t, "error", v)
	assert.False(t, classes.Contains("card"))

	name := doc.GetElementByID("name")
	name.ClassList().Remove("error")
	_, ok := name.Attr("class")
	assert.False(t, ok, "removing from a missing class attribute does not create it")
}

func TestDispatch(t *testing.T) {
	t.Run("phases", func(t *testing.T) {
		doc := parseFixture(t)
		form := doc.GetElementByID("profile")
		name := doc.GetElementByID("name")

		var order []string
		record := func(label string) domform.EventListener {
			return func(domform.Event) { order = append(order, label) }
		}
		form.AddEventListener("input", record("form bubble"), false)
		form.AddEventListener("input", record("form capture"), true)
		name.AddEventListener("input", record("target bubble"), false)
		name.AddEventListener("input", record("target capture"), true)

		name.Dispatch("input", true)

		assert.Equal(t, []string{"form capture", "target capture", "target bubble", "form bubble"}, order)
	})

	t.Run("non-bubbling events reach capture listeners only", func(t *testing.T) {
		doc := parseFixture(t)
		form := doc.GetElementByID("profile")
		var captured, bubbled int
		form.AddEventListener(domform.EventBlur, func(domform.Event) { captured++ }, true)
		form.AddEventListener(domform.EventBlur, func(domform.Event) { bubbled++ }, false)

		e := doc.GetElementByID("name").Blur()

		assert.Equal(t, 1, captured)
		assert.Equal(t, 0, bubbled)
		assert.Equal(t, domform.EventBlur, e.Type())
		assert.Equal(t, domform.Element(doc.GetElementByID("name")), e.Target())
	})

	t.Run("remove listener", func(t *testing.T) {
		doc := parseFixture(t)
		form := doc.GetElementByID("profile")
		calls := 0
		remove := form.AddEventListener("input", func(domform.Event) { calls++ }, false)
		assert.Equal(t, 1, form.ListenerCount("input"))

		remove()
		remove()
		doc.GetElementByID("name").Input("x")

		assert.Zero(t, calls)
		assert.Zero(t, form.ListenerCount("input"))
	})

	t.Run("click", func(t *testing.T) {
		doc := parseFixture(t)
		form := doc.GetElementByID("profile")
		var events []string
		for _, typ := range []string{"click", "input", "change"} {
			typ := typ
			form.AddEventListener(typ, func(domform.Event) { events = append(events, typ) }, false)
		}

		news := doc.GetElementByID("news")
		news.Click()
		assert.True(t, news.Checked())
		assert.Equal(t, []string{"click", "input", "change"}, events)

		events = nil
		doc.GetElementByID("r1").Click()
		assert.Equal(t, []string{"click"}, events, "checked radio does not change")
	})

	t.Run("submit", func(t *testing.T) {
		doc := parseFixture(t)
		form := doc.GetElementByID("profile")
		assert.False(t, form.Submit())

		form.AddEventListener(domform.EventSubmit, func(e domform.Event) { e.PreventDefault() }, false)
		assert.True(t, form.Submit())

		submitted := 0
		form.AddEventListener(domform.EventSubmit, func(domform.Event) { submitted++ }, false)
		doc.GetElementByID("send").Click()
		assert.Equal(t, 1, submitted)
	})
}

func TestDetachedElements(t *testing.T) {
	form := NewElement("form", "id", "f")
	input := NewElement("input", "name", "a", "type", "checkbox", "checked", "")
	form.AppendChild(input)

	assert.True(t, input.Checked())
	assert.Equal(t, domform.Container(form), input.Form())
	entries := form.FormData()
	assert.Len(t, entries, 1, "entries:\n%s", spew.Sdump(entries))

	input.Remove()
	assert.Empty(t, form.FormData())
	assert.Nil(t, input.Form())
	assert.Nil(t, input.Parent())
}

func TestMustParse(t *testing.T) {
	assert.NotPanics(t, func() { MustParse("<p>") })
}
