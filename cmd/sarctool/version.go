package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/sarckit/codec"
	"github.com/joshuapare/sarckit/internal/format"
	"github.com/joshuapare/sarckit/sarc"
)

// Set by -ldflags at release time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type schemeInfo struct {
	Name      string `json:"name"`
	Extension string `json:"extension"`
}

type versionInfo struct {
	Version        string       `json:"version"`
	Commit         string       `json:"commit"`
	Built          string       `json:"built"`
	FormatVersion  uint16       `json:"format_version"`
	MaxEntries     int          `json:"max_entries"`
	HashMultiplier uint32       `json:"default_hash_multiplier"`
	Schemes        []schemeInfo `json:"compression"`
}

func init() {
	rootCmd.Version = version
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version and supported format information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersion()
		},
	})
}

func runVersion() error {
	info := versionInfo{
		Version:        version,
		Commit:         commit,
		Built:          date,
		FormatVersion:  format.Version,
		MaxEntries:     format.MaxNodeCount,
		HashMultiplier: sarc.DefaultHashMultiplier,
	}
	for _, s := range []codec.Scheme{codec.None, codec.Yaz0, codec.Zstd} {
		info.Schemes = append(info.Schemes, schemeInfo{Name: s.String(), Extension: s.Extension()})
	}

	if jsonOut {
		return printJSON(info)
	}
	printInfo("sarctool %s\n", info.Version)
	printInfo("  commit: %s\n", info.Commit)
	printInfo("  built: %s\n", info.Built)
	printInfo("  format version: 0x%04x\n", info.FormatVersion)
	printInfo("  max entries: %d\n", info.MaxEntries)
	printInfo("  default hash multiplier: %s\n", hexLabel(info.HashMultiplier))
	printInfo("  compression:")
	for _, s := range info.Schemes {
		printInfo(" %s (%s)", s.Name, s.Extension)
	}
	printInfo("\n")
	return nil
}
