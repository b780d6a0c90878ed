package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pngkit/internal/mmfile"
	"github.com/joshuapare/pngkit/png"
)

func init() {
	rootCmd.AddCommand(newKeysCmd())
}

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys <image.png>",
		Short: "List the names of files embedded in a PNG image",
		Example: `  pngctl keys photo.png
  pngctl keys photo.png --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeys(args)
		},
	}
}

func runKeys(args []string) error {
	data, cleanup, err := mmfile.Map(args[0])
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}
	defer func() { _ = cleanup() }()

	c, err := png.Parse(data, png.ParseOptions{})
	if err != nil {
		return fmt.Errorf("failed to parse image: %w", err)
	}

	keys := c.Keys()
	if jsonOut {
		return printJSON(keys)
	}
	for _, key := range keys {
		printInfo("%s\n", key)
	}
	return nil
}
