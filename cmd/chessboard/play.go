package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-chessboard/internal/core"
	"github.com/vovakirdan/tui-chessboard/internal/platform/tui"
	"github.com/vovakirdan/tui-chessboard/internal/registry"
	"github.com/vovakirdan/tui-chessboard/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [setup]",
	Short: "Open a board",
	Long: `Open an interactive board with the given setup (default: standard).

Controls:
  Mouse click    - Select a piece, then click a tile to move it
  Arrows/hjkl    - Move the keyboard cursor
  Enter/Space    - Click whatever is under the cursor
  M              - Click the tile under the cursor (capture)
  R              - Reset the board
  Ctrl+S         - Save a screenshot
  ?              - Toggle full help
  Q/Ctrl+C       - Quit

Examples:
  chessboard play
  chessboard play capture-demo
  chessboard play rooks-only --seed 42
  chessboard play my-setup --config ./my-board.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()

	setupID := "standard"
	if len(args) > 0 {
		setupID = args[0]
	}
	if !registry.Exists(setupID) {
		unknownSetup(setupID)
	}

	logger, closeLog, err := openLogFile("chessboard")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// Open session journal
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open session journal: %v\n", err)
		// Continue without storage - the board still works
		store = nil
	}

	runErr := tui.Run(tui.BoardOptions{
		SetupID: setupID,
		Config:  cfg,
		Runtime: runtimeConfig(),
		Store:   store,
		Logger:  logger,
		Player:  currentUser(),
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("board failed", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running board: %v\n", runErr)
		os.Exit(1)
	}
}

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

func currentUser() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return ""
}
