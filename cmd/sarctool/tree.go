package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/sarckit/sarc"
)

var (
	treeDepth int
	treeSizes bool
)

func init() {
	cmd := newTreeCmd()
	cmd.Flags().IntVar(&treeDepth, "depth", 0, "Maximum depth (0 for unlimited)")
	cmd.Flags().BoolVar(&treeSizes, "sizes", false, "Show file sizes")
	rootCmd.AddCommand(cmd)
}

func newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree <archive>",
		Short: "Display the folder structure of an archive",
		Long: `The tree command shows entry names as a folder hierarchy.

Example:
  sarctool tree Layout.szs
  sarctool tree Layout.szs --depth 2 --sizes`,
		Args:    cobra.ExactArgs(1),
		GroupID: groupInspect,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(args)
		},
	}
	return cmd
}

type treeJSON struct {
	Name     string      `json:"name"`
	Size     *int        `json:"size,omitempty"`
	Children []*treeJSON `json:"children,omitempty"`
}

func runTree(args []string) error {
	a, _, err := openArchive(args[0])
	if err != nil {
		return err
	}
	tree := a.Tree()

	if jsonOut {
		return printJSON(buildTreeJSON(tree, sarc.RootID, 0))
	}

	return tree.Walk(func(id sarc.NodeID, depth int) error {
		if treeDepth > 0 && depth > treeDepth {
			return nil
		}
		n, _ := tree.Node(id)
		indent := strings.Repeat("  ", depth-1)
		name := sarc.DisplayName(n.Name)
		if n.Kind == sarc.KindFolder {
			printInfo("%s%s/\n", indent, name)
			return nil
		}
		if treeSizes {
			printInfo("%s%s (%d bytes)\n", indent, name, len(n.Data))
			return nil
		}
		printInfo("%s%s\n", indent, name)
		return nil
	})
}

func buildTreeJSON(tree *sarc.Tree, id sarc.NodeID, depth int) *treeJSON {
	n, _ := tree.Node(id)
	out := &treeJSON{Name: sarc.DisplayName(n.Name)}
	if n.Kind == sarc.KindFile {
		size := len(n.Data)
		out.Size = &size
		return out
	}
	if treeDepth > 0 && depth >= treeDepth {
		return out
	}
	for _, c := range n.Children {
		out.Children = append(out.Children, buildTreeJSON(tree, c, depth+1))
	}
	return out
}
