package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pngkit/internal/mmfile"
	"github.com/joshuapare/pngkit/png"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <image.png>",
		Short: "Show the chunk layout and metadata of a PNG image",
		Long: `The info command lists every chunk in sequence order with its type,
payload length, and checksum, along with embedded file names and any tEXt
metadata entries.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
}

func runInfo(args []string) error {
	data, cleanup, err := mmfile.Map(args[0])
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}
	defer func() { _ = cleanup() }()

	c, err := png.Parse(data, png.ParseOptions{})
	if err != nil {
		return fmt.Errorf("failed to parse image: %w", err)
	}

	chunks := c.Chunks()
	texts := c.TextEntries()

	if jsonOut {
		return printJSON(struct {
			Size   int             `json:"size"`
			Chunks []png.ChunkInfo `json:"chunks"`
			Texts  []png.TextEntry `json:"texts,omitempty"`
		}{Size: len(data), Chunks: chunks, Texts: texts})
	}

	printInfo("%s: %d bytes, %d chunks\n\n", args[0], len(data), len(chunks))
	printInfo("  #  TYPE      LENGTH       CRC  KEY\n")
	for i, ch := range chunks {
		printInfo("%3d  %s  %8d  %08x  %s\n", i, ch.Tag, ch.Length, ch.CRC, ch.Key)
	}
	if len(texts) > 0 {
		printInfo("\ntEXt entries:\n")
		for _, e := range texts {
			printInfo("  %s: %s\n", e.Keyword, e.Text)
		}
	}
	return nil
}
