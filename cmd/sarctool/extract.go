package main

import (
	"context"
	"sync/atomic"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/joshuapare/sarckit/pkg/archive"
)

var (
	extractOut  string
	extractJobs int
)

func init() {
	cmd := newExtractCmd()
	cmd.Flags().StringVarP(&extractOut, "out", "o", ".", "Directory to extract into")
	cmd.Flags().IntVarP(&extractJobs, "jobs", "j", 4, "Archives to extract concurrently")
	rootCmd.AddCommand(cmd)
}

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <archive>...",
		Short: "Extract archives to disk",
		Long: `The extract command writes every entry of each archive to
<out>/<archive name without extension>/<entry name>.

Example:
  sarctool extract Layout.szs
  sarctool extract -o out -j 8 *.szs`,
		Args:    cobra.MinimumNArgs(1),
		GroupID: groupArchive,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd.Context(), args)
		},
	}
	return cmd
}

func runExtract(ctx context.Context, args []string) error {
	var written atomic.Int64
	opts := &archive.ExtractOptions{
		Jobs: extractJobs,
		OnFile: func(path string, size int) {
			written.Add(1)
			printVerbose("  %s (%d bytes)\n", path, size)
		},
	}

	if err := archive.ExtractMany(ctx, afero.NewOsFs(), args, extractOut, opts); err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]any{
			"archives": len(args),
			"files":    written.Load(),
			"out":      extractOut,
		})
	}
	printInfo("Extracted %d file(s) from %d archive(s) into %s\n", written.Load(), len(args), extractOut)
	return nil
}
