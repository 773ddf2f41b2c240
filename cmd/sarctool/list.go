package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/sarckit/pkg/archive"
)

var listDigest bool

func init() {
	cmd := newListCmd()
	cmd.Flags().BoolVar(&listDigest, "digest", false, "Include a sha256 digest of each entry")
	rootCmd.AddCommand(cmd)
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <archive>",
		Short: "List archive entries",
		Long: `The list command prints every entry in serialization order with its
name hash, size, alignment, data offset and detected file type.

Example:
  sarctool list Layout.szs
  sarctool list Layout.szs --digest --json`,
		Aliases: []string{"ls"},
		Args:    cobra.ExactArgs(1),
		GroupID: groupInspect,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(args)
		},
	}
	return cmd
}

func runList(args []string) error {
	a, _, err := openArchive(args[0])
	if err != nil {
		return err
	}

	items, err := archive.List(a, listDigest)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(items)
	}

	for _, it := range items {
		name := it.Name
		if it.Display != "" {
			name = it.Display
		}
		printInfo("%08x  %10d  0x%08x  %-6s  %-6s  %s", it.Hash, it.Size, it.Offset, "@"+hexLabel(it.Alignment), it.Extension, name)
		if listDigest {
			printInfo("  %s", it.Digest)
		}
		printInfo("\n")
	}
	printVerbose("%d entries\n", len(items))
	return nil
}
