package sarc

import (
	"strings"

	"github.com/joshuapare/sarckit/pkg/types"
)

// NodeKind distinguishes folders from files in a Tree.
type NodeKind uint8

const (
	KindFolder NodeKind = iota
	KindFile
)

// String implements the Stringer interface for NodeKind.
func (k NodeKind) String() string {
	if k == KindFile {
		return "file"
	}
	return "folder"
}

// NodeID indexes a node within its Tree.
type NodeID int32

const (
	// RootID is the unnamed root folder of every Tree.
	RootID NodeID = 0

	// NoParent is the parent of the root.
	NoParent NodeID = -1
)

// TreeNode is a folder or file. Children is only populated for folders and
// must not be modified.
type TreeNode struct {
	Kind     NodeKind
	Name     string
	Parent   NodeID
	Children []NodeID
	Data     []byte
}

// Tree is a folder hierarchy over "/"-separated entry names. Nodes live in
// a single slice and refer to each other by NodeID.
type Tree struct {
	nodes []TreeNode
}

// NewTree returns a tree holding only the root folder.
func NewTree() *Tree {
	return &Tree{nodes: []TreeNode{{Kind: KindFolder, Parent: NoParent}}}
}

// BuildTree projects entries into a tree. Empty path segments are skipped
// and folders with the same name under the same parent are shared. A file
// and a folder of the same name may coexist as siblings.
func BuildTree(entries []Entry) *Tree {
	t := NewTree()
	for _, e := range entries {
		segs := splitPath(e.Name)
		if len(segs) == 0 {
			continue
		}
		parent := RootID
		for _, seg := range segs[:len(segs)-1] {
			parent = t.folder(parent, seg)
		}
		t.add(parent, KindFile, segs[len(segs)-1], e.Data)
	}
	return t
}

func splitPath(name string) []string {
	return strings.FieldsFunc(name, func(r rune) bool { return r == '/' })
}

// Len returns the number of nodes, root included.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Node returns the node with the given id.
func (t *Tree) Node(id NodeID) (TreeNode, bool) {
	if !t.valid(id) {
		return TreeNode{}, false
	}
	return t.nodes[id], true
}

// Children returns the ids of a folder's children in insertion order.
func (t *Tree) Children(id NodeID) []NodeID {
	if !t.valid(id) {
		return nil
	}
	return t.nodes[id].Children
}

// AddFolder returns the folder called name under parent, creating it if
// needed.
func (t *Tree) AddFolder(parent NodeID, name string) (NodeID, error) {
	if err := t.checkInsert(parent, name); err != nil {
		return NoParent, err
	}
	return t.folder(parent, name), nil
}

// AddFile appends a file under parent. Files are never merged; adding the
// same name twice yields two nodes and the later one wins on Flatten.
func (t *Tree) AddFile(parent NodeID, name string, data []byte) (NodeID, error) {
	if err := t.checkInsert(parent, name); err != nil {
		return NoParent, err
	}
	return t.add(parent, KindFile, name, data), nil
}

func (t *Tree) checkInsert(parent NodeID, name string) error {
	if !t.valid(parent) {
		return types.Errorf(types.ErrKindNotFound, "no node %d", parent)
	}
	if t.nodes[parent].Kind != KindFolder {
		return types.Errorf(types.ErrKindConfig, "node %d (%s) is not a folder", parent, t.nodes[parent].Name)
	}
	if name == "" || strings.ContainsAny(name, "/\\") {
		return types.Errorf(types.ErrKindConfig, "invalid node name %q", name)
	}
	return nil
}

func (t *Tree) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}

func (t *Tree) folder(parent NodeID, name string) NodeID {
	for _, c := range t.nodes[parent].Children {
		if n := t.nodes[c]; n.Kind == KindFolder && n.Name == name {
			return c
		}
	}
	return t.add(parent, KindFolder, name, nil)
}

func (t *Tree) add(parent NodeID, kind NodeKind, name string, data []byte) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, TreeNode{Kind: kind, Name: name, Parent: parent, Data: data})
	t.nodes[parent].Children = append(t.nodes[parent].Children, id)
	return id
}

// Lookup resolves a "/"-separated path to a node. The empty path resolves
// to the root. When a file and a folder share a name, the last segment
// prefers the file.
func (t *Tree) Lookup(path string) (NodeID, bool) {
	segs := splitPath(NormalizeName(path))
	cur := RootID
	for i, seg := range segs {
		last := i == len(segs)-1
		next := NoParent
		for _, c := range t.nodes[cur].Children {
			n := t.nodes[c]
			if n.Name != seg || (!last && n.Kind != KindFolder) {
				continue
			}
			next = c
			if n.Kind == KindFile {
				break
			}
		}
		if next == NoParent {
			return NoParent, false
		}
		cur = next
	}
	return cur, true
}

// Path returns the full "/"-separated path of a node. The root's path is
// empty.
func (t *Tree) Path(id NodeID) string {
	if !t.valid(id) {
		return ""
	}
	var segs []string
	for cur := id; cur != RootID; cur = t.nodes[cur].Parent {
		segs = append(segs, t.nodes[cur].Name)
	}
	for i, j := 0, len(segs)-1; i < j; i, j = i+1, j-1 {
		segs[i], segs[j] = segs[j], segs[i]
	}
	return strings.Join(segs, "/")
}

// Walk visits every node below the root depth-first in insertion order.
// Depth is 1 for the root's children. Returning an error stops the walk.
func (t *Tree) Walk(fn func(id NodeID, depth int) error) error {
	return t.walk(RootID, 0, fn)
}

func (t *Tree) walk(id NodeID, depth int, fn func(NodeID, int) error) error {
	for _, c := range t.nodes[id].Children {
		if err := fn(c, depth+1); err != nil {
			return err
		}
		if err := t.walk(c, depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}

// Flatten returns one entry per file node, named by its full path, in walk
// order.
func (t *Tree) Flatten() []Entry {
	var out []Entry
	_ = t.Walk(func(id NodeID, _ int) error {
		if n := t.nodes[id]; n.Kind == KindFile {
			out = append(out, Entry{Name: t.Path(id), Data: n.Data, HasFilename: true})
		}
		return nil
	})
	return out
}
