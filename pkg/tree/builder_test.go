package tree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsonzip/jsonzip/pkg/jsondoc"
	"github.com/jsonzip/jsonzip/pkg/models"
)

func mustDecode(t *testing.T, input string) jsondoc.Value {
	t.Helper()
	v, err := jsondoc.Decode([]byte(input))
	require.NoError(t, err)
	return v
}

func TestBuildNestedObject(t *testing.T) {
	root, err := Build(mustDecode(t, `{"src":{"index.js":"console.log(1)"}}`), Options{})
	require.NoError(t, err)

	require.Equal(t, models.KindFolder, root.Kind)
	assert.Equal(t, "", root.Path)
	require.Len(t, root.Children, 1)

	src := root.Children[0]
	assert.Equal(t, models.KindFolder, src.Kind)
	assert.Equal(t, "src", src.Name)
	assert.Equal(t, "src", src.Path)
	require.Len(t, src.Children, 1)

	index := src.Children[0]
	assert.Equal(t, models.KindFile, index.Kind)
	assert.Equal(t, "index.js", index.Name)
	assert.Equal(t, "src/index.js", index.Path)
	assert.Equal(t, "console.log(1)", index.Content)
	assert.Equal(t, len("console.log(1)"), index.Size)
}

func TestBuildTopLevelKeys(t *testing.T) {
	root, err := Build(mustDecode(t, `{"b":1,"a":"x","c":{}}`), Options{})
	require.NoError(t, err)

	require.Len(t, root.Children, 3)
	for i, want := range []string{"b", "a", "c"} {
		assert.Equal(t, want, root.Children[i].Name)
		assert.Equal(t, want, root.Children[i].Path)
	}
}

func TestBuildArrayNaming(t *testing.T) {
	root, err := Build(mustDecode(t, `{"list":[1,2,{"a":3}]}`), Options{})
	require.NoError(t, err)

	require.Len(t, root.Children, 1)
	list := root.Children[0]
	assert.Equal(t, models.KindFolder, list.Kind)
	require.Len(t, list.Children, 3)

	assert.Equal(t, "item_0", list.Children[0].Name)
	assert.Equal(t, "list/item_0", list.Children[0].Path)
	assert.Equal(t, "1", list.Children[0].Content)

	assert.Equal(t, "item_1", list.Children[1].Name)
	assert.Equal(t, "2", list.Children[1].Content)

	item2 := list.Children[2]
	assert.Equal(t, models.KindFolder, item2.Kind)
	assert.Equal(t, "list/item_2", item2.Path)
	require.Len(t, item2.Children, 1)
	assert.Equal(t, "a", item2.Children[0].Name)
	assert.Equal(t, "list/item_2/a", item2.Children[0].Path)
	assert.Equal(t, "3", item2.Children[0].Content)
}

func TestBuildItemPrefixOption(t *testing.T) {
	root, err := Build(mustDecode(t, `[true]`), Options{ItemPrefix: "elem_"})
	require.NoError(t, err)
	require.Len(t, root.Children, 1)
	assert.Equal(t, "elem_0", root.Children[0].Name)
}

func TestBuildScalarTopLevel(t *testing.T) {
	root, err := Build(mustDecode(t, `42`), Options{})
	require.NoError(t, err)

	assert.Equal(t, models.KindFile, root.Kind)
	assert.Equal(t, "value", root.Name)
	assert.Equal(t, "value", root.Path)
	assert.Equal(t, "42", root.Content)
	assert.Empty(t, root.Children)
}

func TestBuildEmptyObject(t *testing.T) {
	root, err := Build(mustDecode(t, `{}`), Options{})
	require.NoError(t, err)
	assert.Equal(t, models.KindFolder, root.Kind)
	assert.Empty(t, root.Children)
	assert.Equal(t, 0, root.Count())
}

func TestBuildNullContent(t *testing.T) {
	root, err := Build(mustDecode(t, `{"a":null}`), Options{})
	require.NoError(t, err)
	require.Len(t, root.Children, 1)
	assert.Equal(t, "null", root.Children[0].Content)
}

func TestBuildDuplicateSiblingsLastWriteWins(t *testing.T) {
	root, err := Build(mustDecode(t, `{"a":"first","b":"middle","a":"second"}`), Options{})
	require.NoError(t, err)

	// The later member replaces the earlier node in place: position of the
	// first occurrence, value of the last.
	require.Len(t, root.Children, 2)
	assert.Equal(t, "a", root.Children[0].Name)
	assert.Equal(t, "second", root.Children[0].Content)
	assert.Equal(t, "b", root.Children[1].Name)
}

func TestBuildFileMarker(t *testing.T) {
	root, err := Build(mustDecode(t, `{"notes":{"type":"file","content":"remember"}}`), Options{})
	require.NoError(t, err)

	require.Len(t, root.Children, 1)
	notes := root.Children[0]
	assert.Equal(t, models.KindFile, notes.Kind)
	assert.Equal(t, "notes", notes.Path)
	assert.Equal(t, "remember", notes.Content)
}

func TestBuildFileMarkerMissingPayload(t *testing.T) {
	_, err := Build(mustDecode(t, `{"bad":{"type":"file"}}`), Options{})
	require.Error(t, err)
	assert.Equal(t, models.ErrStructure, models.KindOf(err))
	assert.Contains(t, err.Error(), "bad")
}

func TestBuildMaxDepth(t *testing.T) {
	input := `{"a":{"b":{"c":{"d":1}}}}`

	_, err := Build(mustDecode(t, input), Options{MaxDepth: 3})
	require.Error(t, err)
	assert.Equal(t, models.ErrStructure, models.KindOf(err))

	_, err = Build(mustDecode(t, input), Options{MaxDepth: 4})
	assert.NoError(t, err)
}

func TestBuildIdempotent(t *testing.T) {
	input := `{"src":{"main.go":"package main"},"list":[1,{"a":null}],"readme":"hi"}`

	first, err := Build(mustDecode(t, input), Options{})
	require.NoError(t, err)
	second, err := Build(mustDecode(t, input), Options{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildDeepNestingWithinDefault(t *testing.T) {
	// A chain just inside the default limit still converts.
	var sb strings.Builder
	depth := DefaultMaxDepth - 1
	for i := 0; i < depth; i++ {
		sb.WriteString(`{"n":`)
	}
	sb.WriteString(`1`)
	for i := 0; i < depth; i++ {
		sb.WriteString(`}`)
	}

	root, err := Build(mustDecode(t, sb.String()), Options{})
	require.NoError(t, err)

	node := root
	for node.IsDir() && len(node.Children) > 0 {
		node = node.Children[0]
	}
	assert.Equal(t, models.KindFile, node.Kind)
	assert.Equal(t, "1", node.Content)
}
