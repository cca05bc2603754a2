package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chessboard/internal/platform/tui"
	"github.com/vovakirdan/tui-chessboard/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick setups from an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to open a board and Tab for
the session journal. Quitting a board returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Open board
  Tab          - Session journal
  Q            - Quit

Examples:
  chessboard menu
  chessboard menu --fps 30
  chessboard menu --db ./sessions.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()

	logger, closeLog, err := openLogFile("chessboard")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open session journal: %v\n", err)
		store = nil
	}

	runtime := runtimeConfig()
	player := currentUser()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(runtime)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		runtime = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsStats {
			goBack, statsErr := tui.RunStats(store, runtime.ScreenW, runtime.ScreenH)
			if statsErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", statsErr)
			}
			if goBack {
				continue
			}
			break
		}

		if menuResult.SetupID == "" {
			break
		}

		err = tui.Run(tui.BoardOptions{
			SetupID: menuResult.SetupID,
			Config:  cfg,
			Runtime: runtime,
			Store:   store,
			Logger:  logger,
			Player:  player,
		})
		if err != nil {
			logger.Error("board failed", "setup", menuResult.SetupID, "error", err)
			fmt.Fprintf(os.Stderr, "Error running board: %v\n", err)
		}

		// Loop back to menu
	}

	if store != nil {
		store.Close()
	}
}
