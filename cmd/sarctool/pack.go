package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/joshuapare/sarckit/codec"
	"github.com/joshuapare/sarckit/internal/logger"
	"github.com/joshuapare/sarckit/pkg/archive"
	"github.com/joshuapare/sarckit/sarc"
)

var (
	packLittle     bool
	packAlign      uint32
	packMultiplier uint32
	packCompress   string
	packLevel      int
	packStrict     bool
	packPrefix     string
)

func init() {
	cmd := newPackCmd()
	cmd.Flags().BoolVar(&packLittle, "little", false, "Write a little-endian archive (Switch)")
	cmd.Flags().Uint32Var(&packAlign, "align", sarc.DefaultConfig().DefaultAlignment, "Minimum data alignment (power of two)")
	cmd.Flags().Uint32Var(&packMultiplier, "multiplier", sarc.DefaultHashMultiplier, "Name hash multiplier")
	cmd.Flags().StringVar(&packCompress, "compress", "", "Compression: none, yaz0, zstd (default: from output extension)")
	cmd.Flags().IntVar(&packLevel, "level", 9, "Compression level 0-9")
	cmd.Flags().StringVar(&packPrefix, "prefix", "", "Folder to place every entry under inside the archive")
	cmd.Flags().BoolVar(&packStrict, "reject-collisions", false, "Fail instead of dropping entries whose name hashes collide")
	rootCmd.AddCommand(cmd)
}

func newPackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pack <dir> <output>",
		Short: "Create an archive from a directory",
		Long: `The pack command adds every file below a directory to a new archive,
named by its path relative to the directory.

Compression is chosen from the output extension unless --compress is given:
.szs selects Yaz0, .zs selects zstd, anything else stays uncompressed.

Example:
  sarctool pack romfs/Layout Layout.szs
  sarctool pack --little --align 0x80 Model Model.sarc`,
		Args:    cobra.ExactArgs(2),
		GroupID: groupArchive,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPack(args)
		},
	}
	return cmd
}

func runPack(args []string) error {
	dir, output := args[0], args[1]

	scheme, err := packScheme(output)
	if err != nil {
		return err
	}

	cfg := sarc.DefaultConfig()
	cfg.LittleEndian = packLittle
	cfg.HashMultiplier = packMultiplier
	cfg.DefaultAlignment = packAlign
	cfg.Logger = logger.L
	if packStrict {
		cfg.Collision = sarc.CollisionReject
	}

	printVerbose("Packing %s\n", dir)
	a, err := archive.PackDir(afero.NewOsFs(), dir, &archive.PackOptions{
		Config: &cfg,
		Prefix: packPrefix,
		OnFile: func(name string, size int) {
			printVerbose("  + %s (%d bytes)\n", name, size)
		},
	})
	if err != nil {
		return fmt.Errorf("failed to pack %s: %w", dir, err)
	}

	l, err := a.SaveFile(output, sarc.SaveOptions{Scheme: scheme, Level: packLevel})
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}
	packed := len(l.Nodes)
	dropped := a.Len() - packed

	if jsonOut {
		return printJSON(map[string]any{
			"output":      output,
			"entries":     packed,
			"dropped":     dropped,
			"compression": scheme.String(),
		})
	}
	printInfo("Packed %d file(s) into %s (%s)\n", packed, output, scheme)
	if dropped > 0 {
		printInfo("Dropped %d file(s) whose name hash collided with another\n", dropped)
	}
	return nil
}

func packScheme(output string) (codec.Scheme, error) {
	if packCompress != "" {
		return codec.ParseScheme(packCompress)
	}
	switch strings.ToLower(filepath.Ext(output)) {
	case codec.Yaz0.Extension():
		return codec.Yaz0, nil
	case codec.Zstd.Extension():
		return codec.Zstd, nil
	default:
		return codec.None, nil
	}
}
