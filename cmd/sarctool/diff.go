package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/sarckit/pkg/archive"
)

var diffAll bool

func init() {
	cmd := newDiffCmd()
	cmd.Flags().BoolVar(&diffAll, "all", false, "Also show unchanged entries")
	rootCmd.AddCommand(cmd)
}

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <old> <new>",
		Short: "Compare the entries of two archives",
		Long: `The diff command compares two archives by entry name and content.
Added entries are prefixed with '+', removed with '-', modified with '~'.

Example:
  sarctool diff Layout.orig.szs Layout.szs`,
		Args:    cobra.ExactArgs(2),
		GroupID: groupInspect,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(args)
		},
	}
	return cmd
}

func runDiff(args []string) error {
	older, _, err := openArchive(args[0])
	if err != nil {
		return err
	}
	newer, _, err := openArchive(args[1])
	if err != nil {
		return err
	}

	diffs := archive.Diff(older, newer)
	if !diffAll {
		kept := diffs[:0]
		for _, d := range diffs {
			if d.Status != archive.DiffUnchanged {
				kept = append(kept, d)
			}
		}
		diffs = kept
	}

	if jsonOut {
		return printJSON(diffs)
	}

	marks := map[archive.DiffStatus]string{
		archive.DiffUnchanged: " ",
		archive.DiffAdded:     "+",
		archive.DiffRemoved:   "-",
		archive.DiffModified:  "~",
	}
	for _, d := range diffs {
		printInfo("%s %s\n", marks[d.Status], d.Name)
	}
	printVerbose("%d difference(s)\n", len(diffs))
	return nil
}
