package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chessboard/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available setups",
	Long:  `Shows the built-in setups and those defined in the config file.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	mustLoadConfig()
	setups := registry.List()

	if len(setups) == 0 {
		fmt.Println("No setups available.")
		return
	}

	fmt.Println("Available setups:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxTitleLen := 2, 5 // "ID", "Title" headers
	for _, s := range setups {
		maxIDLen = max(maxIDLen, len(s.ID))
		maxTitleLen = max(maxTitleLen, len(s.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Pieces")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "------")

	for _, s := range setups {
		fmt.Printf("  %-*s  %-*s  %d\n", maxIDLen, s.ID, maxTitleLen, s.Title, s.Pieces)
	}

	fmt.Println()
	fmt.Println("Run 'chessboard play <id>' to open a board.")
}
