package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/sarckit/codec"
	"github.com/joshuapare/sarckit/internal/logger"
	"github.com/joshuapare/sarckit/sarc"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
	logJSON bool
)

var rootCmd = &cobra.Command{
	Use:   "sarctool",
	Short: "Pack, unpack and inspect SARC archives",
	Long: `sarctool creates and inspects SARC archives, the flat name-hashed
containers used for game assets. Archives may be stored raw (.sarc),
Yaz0-compressed (.szs) or zstd-compressed (.zs); compression is detected
automatically when reading.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogger(cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output and debug logging")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Emit logs as JSON")

	rootCmd.AddGroup(
		&cobra.Group{ID: groupArchive, Title: "Archive Operations"},
		&cobra.Group{ID: groupInspect, Title: "Inspection Commands"},
	)
}

const (
	groupArchive = "archive"
	groupInspect = "inspect"
)

// initLogger sends warnings to w, such as entries dropped by a hash
// collision. --verbose adds debug records and --quiet silences logging.
func initLogger(w io.Writer) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger.Init(logger.Options{
		Enabled: !quiet,
		Level:   level,
		Output:  w,
		JSON:    logJSON,
	})
}

// openArchive loads the archive at path, copying entry data so the file
// mapping can be released immediately.
func openArchive(path string) (*sarc.Archive, codec.Scheme, error) {
	printVerbose("Opening archive: %s\n", path)
	a, scheme, err := sarc.Open(path, sarc.ReadOptions{CopyData: true})
	if err != nil {
		return nil, codec.None, fmt.Errorf("failed to open archive: %w", err)
	}
	printVerbose("Compression: %s, entries: %d\n", scheme, a.Len())
	return a, scheme, nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// formatSize renders a byte count the way the info command prints it.
func formatSize(size int64) string {
	switch {
	case size < 1024:
		return fmt.Sprintf("%d bytes", size)
	case size < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(size)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(size)/(1024*1024))
	}
}

func hexLabel(v uint32) string {
	return fmt.Sprintf("0x%x", v)
}
