package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pngkit/internal/mmfile"
	"github.com/joshuapare/pngkit/png"
)

var extractDir string

func init() {
	cmd := newExtractCmd()
	cmd.Flags().StringVarP(&extractDir, "output", "o", ".", "Directory to extract files into")
	rootCmd.AddCommand(cmd)
}

func newExtractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract <image.png> <name>...",
		Short: "Extract embedded files from a PNG image",
		Long: `The extract command recovers embedded files by name and writes them into
the output directory. The invocation fails as a whole if any name is absent;
nothing is written in that case.

Example:
  pngctl extract photo.png secrets.txt
  pngctl extract photo.png notes.md config.json -o ./recovered`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(args)
		},
	}
}

func runExtract(args []string) error {
	imagePath := args[0]

	printVerbose("Opening image: %s\n", imagePath)
	data, cleanup, err := mmfile.Map(imagePath)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}
	defer func() { _ = cleanup() }()

	c, err := png.Parse(data, png.ParseOptions{})
	if err != nil {
		return fmt.Errorf("failed to parse image: %w", err)
	}

	// Recover everything first so a missing name aborts before any file is
	// written.
	type extracted struct {
		key  string
		data []byte
	}
	outs := make([]extracted, 0, len(args)-1)
	for _, name := range args[1:] {
		key := filepath.Base(name)
		raw, err := c.Extract(key)
		if err != nil {
			return fmt.Errorf("failed to extract %q: %w", key, err)
		}
		outs = append(outs, extracted{key: key, data: raw})
	}

	for _, e := range outs {
		path := filepath.Join(extractDir, e.key)
		if err := os.WriteFile(path, e.data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		printVerbose("Extracted %q (%d bytes)\n", e.key, len(e.data))
	}
	printInfo("Extracted %d file(s) to %s\n", len(outs), extractDir)
	return nil
}
