package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-traffic/internal/assets"
)

var spritesCmd = &cobra.Command{
	Use:   "sprites",
	Short: "List the sprite catalog",
	Long:  `Shows every sprite in the manifest with its size and art.`,
	Args:  cobra.NoArgs,
	Run:   runSprites,
}

func runSprites(cmd *cobra.Command, args []string) {
	catalog, err := assets.Load(flagSprites)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	printSprites(os.Stdout, catalog)
}

func printSprites(w io.Writer, catalog *assets.Catalog) {
	sprites := catalog.List()
	if len(sprites) == 0 {
		fmt.Fprintln(w, "No sprites available.")
		return
	}

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, s := range sprites {
		if len(s.Name) > maxNameLen {
			maxNameLen = len(s.Name)
		}
	}

	fmt.Fprintf(w, "  %-*s  %-7s  %s\n", maxNameLen, "Name", "Size", "Art")
	fmt.Fprintf(w, "  %-*s  %-7s  %s\n", maxNameLen, "----", "----", "---")

	for _, s := range sprites {
		size := fmt.Sprintf("%dx%d", s.Width(), s.Height())
		fmt.Fprintf(w, "  %-*s  %-7s  %s\n", maxNameLen, s.Name, size, string(s.Rows[0]))
		for _, row := range s.Rows[1:] {
			fmt.Fprintf(w, "  %-*s  %-7s  %s\n", maxNameLen, "", "", string(row))
		}
	}
}
