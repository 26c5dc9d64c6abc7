package internal

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testFile struct {
	name string
	size int64
}

func (f *testFile) Name() string        { return f.name }
func (f *testFile) Size() int64         { return f.size }
func (f *testFile) ContentType() string { return "text/plain" }

type testFileList []File

func (l testFileList) Len() int        { return len(l) }
func (l testFileList) Item(i int) File { return l[i] }

func TestKind(t *testing.T) {
	tests := []struct {
		value    Value
		expected Kind
		name     string
	}{
		{Absent(), KindAbsent, "absent"},
		{Null(), KindNull, "null"},
		{String("x"), KindScalar, "scalar"},
		{FileValue(&testFile{name: "a.txt"}), KindFile, "file"},
		{FileListValue(testFileList{}), KindFileList, "filelist"},
		{List(), KindList, "list"},
		{NewMap(), KindMap, "map"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.value.Kind())
			assert.Equal(t, tt.name, tt.value.Kind().String())
		})
	}
}

func TestValueOf(t *testing.T) {
	v := ValueOf(map[string]any{
		"b":     []any{"x", 1, nil},
		"a":     map[string]string{"k": "v"},
		"flag":  true,
		"names": []string{"p", "q"},
	})

	require.Equal(t, KindMap, v.Kind())
	assert.Equal(t, []string{"a", "b", "flag", "names"}, v.Keys(), "keys are sorted")
	assert.Equal(t, KindNull, Get(v, "b[2]").Kind())
	assert.Equal(t, map[string]any{
		"b":     []any{"x", 1, nil},
		"a":     map[string]any{"k": "v"},
		"flag":  true,
		"names": []any{"p", "q"},
	}, v.Interface())

	assert.Equal(t, KindNull, ValueOf(nil).Kind())
	assert.True(t, ValueOf(String("s")).Equal(String("s")))
}

func TestValueReferenceSemantics(t *testing.T) {
	tree := NewMap()
	Set(tree, "a.b", String("1"))

	alias := Get(tree, "a")
	alias.SetKey("c", String("2"))
	assert.Equal(t, "2", Get(tree, "a.c").Interface(), "containers are shared")

	clone := tree.Clone()
	Set(clone, "a.b", String("changed"))
	assert.Equal(t, "1", Get(tree, "a.b").Interface(), "clones are independent")
}

func TestListOperations(t *testing.T) {
	l := List(String("a"))
	l.Append(String("b"), String("c"))
	assert.Equal(t, 3, l.Len())
	assert.True(t, l.Contains(String("b")))
	assert.False(t, l.Contains(String("z")))

	l.RemoveWhere(func(v Value) bool { return v.Equal(String("b")) })
	assert.Equal(t, []any{"a", "c"}, l.Interface())

	l.SetIndex(4, String("e"))
	assert.Equal(t, 5, l.Len())
	assert.True(t, l.Index(3).IsAbsent())
	assert.True(t, l.Index(-1).IsAbsent())

	items := l.Items()
	items[0] = String("mutated")
	assert.Equal(t, "a", l.Index(0).Interface(), "Items returns a copy")
}

func TestMapOperations(t *testing.T) {
	m := NewMap()
	m.SetKey("z", String("1"))
	m.SetKey("a", String("2"))
	m.SetKey("z", String("3"))

	assert.Equal(t, []string{"z", "a"}, m.Keys(), "existing keys keep their position")
	v, ok := m.Lookup("z")
	require.True(t, ok)
	assert.Equal(t, "3", v.Interface())

	assert.True(t, m.DeleteKey("z"))
	assert.False(t, m.DeleteKey("z"))
	assert.Equal(t, []string{"a"}, m.Keys())
}

func TestEqual(t *testing.T) {
	f := &testFile{name: "a.txt"}

	assert.True(t, Absent().Equal(Absent()))
	assert.False(t, Absent().Equal(Null()))
	assert.True(t, FileValue(f).Equal(FileValue(f)))
	assert.False(t, FileValue(f).Equal(FileValue(&testFile{name: "a.txt"})), "files compare by identity")
	assert.True(t, List(String("a")).Equal(List(String("a"))))
	assert.False(t, List(String("a")).Equal(List(String("a"), String("b"))))
	assert.True(t, ValueOf(map[string]any{"a": "1"}).Equal(ValueOf(map[string]any{"a": "1"})))
	assert.False(t, ValueOf(map[string]any{"a": "1"}).Equal(ValueOf(map[string]any{"b": "1"})))
}

func TestText(t *testing.T) {
	assert.Equal(t, "", Absent().Text())
	assert.Equal(t, "", Null().Text())
	assert.Equal(t, "abc", String("abc").Text())
	assert.Equal(t, "42", Scalar(42).Text())
	assert.Equal(t, "a,b", List(String("a"), String("b")).Text())
	assert.Equal(t, "", NewMap().Text())
}

func TestMarshalJSON(t *testing.T) {
	tree := NewMap()
	Set(tree, "name", String("Al"))
	Set(tree, "tags[1]", String("b"))
	Set(tree, "upload", FileListValue(testFileList{&testFile{name: "cv.pdf", size: 10}}))
	tree.SetKey("pending", Absent())

	data, err := json.Marshal(tree)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Al","tags":[null,"b"],"upload":["cv.pdf"]}`, string(data))
	assert.Equal(t, string(data), tree.String())
}
