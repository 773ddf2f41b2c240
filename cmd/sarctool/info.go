package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/sarckit/pkg/archive"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <archive>",
		Short: "Validate an archive and report its metadata",
		Long: `The info command parses an archive, verifying every name hash and data
range, and prints its byte order, alignment and size statistics.

Example:
  sarctool info Layout.szs
  sarctool info Layout.szs --json`,
		Args:    cobra.ExactArgs(1),
		GroupID: groupInspect,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

func runInfo(args []string) error {
	path := args[0]
	a, scheme, err := openArchive(path)
	if err != nil {
		return err
	}

	stats, err := archive.Collect(a, scheme)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(stats)
	}

	printInfo("\nArchive Information:\n")
	printInfo("  File: %s\n", path)
	if stat, err := os.Stat(path); err == nil {
		printInfo("  Size: %s\n", formatSize(stat.Size()))
	}
	printInfo("  Compression: %s\n", stats.Compression)
	printInfo("  Byte order: %s-endian\n", stats.ByteOrder)
	printInfo("  Entries: %d\n", stats.Entries)
	printInfo("  Folders: %d\n", stats.Folders)
	printInfo("  Nested archives: %d\n", stats.Nested)
	printInfo("  Hash multiplier: %s\n", hexLabel(stats.HashMultiplier))
	printInfo("  Default alignment: %s\n", hexLabel(stats.DefaultAlignment))
	printInfo("  Data alignment: %s\n", hexLabel(stats.DataAlignment))
	printInfo("  Data offset: %s\n", hexLabel(stats.DataOffset))
	printInfo("  Data size: %s\n", formatSize(stats.DataBytes))
	if stats.Largest != "" {
		printInfo("  Largest entry: %s\n", stats.Largest)
	}

	printInfo("\nValidation:\n")
	printInfo("  ✓ Header and tables valid\n")
	printInfo("  ✓ All name hashes match\n")
	return nil
}
