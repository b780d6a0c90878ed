package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pngkit/internal/mmfile"
	"github.com/joshuapare/pngkit/internal/writer"
	"github.com/joshuapare/pngkit/png"
)

func init() {
	rootCmd.AddCommand(newRemoveCmd())
}

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <image.png> <name>...",
		Short: "Remove embedded files from a PNG image",
		Long: `The remove command deletes embedded files by name and rewrites the image
in place. Names with no matching embedded file are ignored.

Example:
  pngctl remove photo.png secrets.txt`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(args)
		},
	}
}

func runRemove(args []string) error {
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

	removed := 0
	for _, name := range args[1:] {
		key := filepath.Base(name)
		if c.Remove(key) {
			removed++
			printVerbose("Removed %q\n", key)
		} else {
			printVerbose("No embedded file named %q\n", key)
		}
	}

	// Serialize before cleanup unmaps the backing buffer.
	out := c.Serialize()
	w := &writer.FileWriter{Path: imagePath}
	if err := w.WriteImage(out); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}
	printInfo("Removed %d file(s) from %s\n", removed, imagePath)
	return nil
}
