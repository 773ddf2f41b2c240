package sarc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/sarckit/pkg/types"
)

func TestBuildTree(t *testing.T) {
	tree := BuildTree([]Entry{
		{Name: "a/b/c.txt", Data: []byte("c")},
		{Name: "a/d.txt", Data: []byte("d")},
		{Name: "//e.txt", Data: []byte("e")},
		{Name: "a", Data: []byte("file a")},
	})

	root := tree.Children(RootID)
	require.Len(t, root, 3)

	folder, ok := tree.Node(root[0])
	require.True(t, ok)
	require.Equal(t, KindFolder, folder.Kind)
	require.Equal(t, "a", folder.Name)
	require.Len(t, folder.Children, 2)

	id, ok := tree.Lookup("a/b/c.txt")
	require.True(t, ok)
	n, _ := tree.Node(id)
	require.Equal(t, KindFile, n.Kind)
	require.Equal(t, []byte("c"), n.Data)
	require.Equal(t, "a/b/c.txt", tree.Path(id))

	id, ok = tree.Lookup("a")
	require.True(t, ok)
	n, _ = tree.Node(id)
	require.Equal(t, KindFile, n.Kind, "file wins over sibling folder of the same name")

	id, ok = tree.Lookup("e.txt")
	require.True(t, ok)
	require.Equal(t, "e.txt", tree.Path(id))

	_, ok = tree.Lookup("a/missing")
	require.False(t, ok)
	_, ok = tree.Lookup("a/d.txt/x")
	require.False(t, ok)

	id, ok = tree.Lookup("")
	require.True(t, ok)
	require.Equal(t, RootID, id)
}

func TestTreeFlatten(t *testing.T) {
	tree := BuildTree([]Entry{
		{Name: "a/b/c.txt", Data: []byte("c")},
		{Name: "a/d.txt", Data: []byte("d")},
		{Name: "e.txt", Data: []byte("e")},
		{Name: "a/b/f.txt", Data: []byte("f")},
	})

	var names []string
	for _, e := range tree.Flatten() {
		names = append(names, e.Name)
	}
	require.Equal(t, []string{"a/b/c.txt", "a/b/f.txt", "a/d.txt", "e.txt"}, names)
}

func TestTreeWalkDepth(t *testing.T) {
	tree := BuildTree([]Entry{{Name: "x/y/z"}})
	var depths []int
	require.NoError(t, tree.Walk(func(_ NodeID, depth int) error {
		depths = append(depths, depth)
		return nil
	}))
	require.Equal(t, []int{1, 2, 3}, depths)
	require.Equal(t, 4, tree.Len())
}

func TestTreeAdd(t *testing.T) {
	tree := NewTree()
	lyt, err := tree.AddFolder(RootID, "Layout")
	require.NoError(t, err)
	again, err := tree.AddFolder(RootID, "Layout")
	require.NoError(t, err)
	require.Equal(t, lyt, again)

	file, err := tree.AddFile(lyt, "Main.bflyt", []byte("FLYT"))
	require.NoError(t, err)
	require.Equal(t, "Layout/Main.bflyt", tree.Path(file))

	_, err = tree.AddFile(file, "child", nil)
	require.ErrorIs(t, err, types.ErrConfig)
	_, err = tree.AddFolder(lyt, "a/b")
	require.ErrorIs(t, err, types.ErrConfig)
	_, err = tree.AddFile(lyt, "", nil)
	require.ErrorIs(t, err, types.ErrConfig)
	_, err = tree.AddFile(NodeID(99), "x", nil)
	require.ErrorIs(t, err, types.ErrNotFound)
}

func TestArchiveTreeRoundTrip(t *testing.T) {
	src := New()
	require.NoError(t, src.Add("Layout/Main.bflyt", []byte("lyt")))
	require.NoError(t, src.Add("Layout/Sub/Anim.bflan", []byte("anim")))
	require.NoError(t, src.Add("root.bin", []byte("root")))

	dst := New()
	require.NoError(t, dst.AddTree(src.Tree()))
	require.Equal(t, src.Entries(), dst.Entries())
}
