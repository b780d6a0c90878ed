package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pngkit/internal/mmfile"
	"github.com/joshuapare/pngkit/internal/writer"
	"github.com/joshuapare/pngkit/png"
)

var embedOutput string

func init() {
	cmd := newEmbedCmd()
	cmd.Flags().
		StringVarP(&embedOutput, "output", "o", "", "Output image path (default: rewrite the input in place)")
	rootCmd.AddCommand(cmd)
}

func newEmbedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "embed <image.png> <file>...",
		Short: "Embed files into a PNG image",
		Long: `The embed command stores each listed file inside the image under its base
name, replacing any file already embedded under the same name.

Example:
  pngctl embed photo.png secrets.txt config.json
  pngctl embed photo.png notes.md -o photo-with-notes.png`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEmbed(args)
		},
	}
}

func runEmbed(args []string) error {
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

	for _, path := range args[1:] {
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		key := filepath.Base(path)
		if err := c.Insert(key, raw, true); err != nil {
			return fmt.Errorf("failed to embed %q: %w", key, err)
		}
		printVerbose("Embedded %q (%d bytes)\n", key, len(raw))
	}

	out := embedOutput
	if out == "" {
		out = imagePath
	}
	w := &writer.FileWriter{Path: out}
	if err := w.WriteImage(c.Serialize()); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}
	printInfo("Embedded %d file(s) into %s\n", len(args)-1, out)
	return nil
}
