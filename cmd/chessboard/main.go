// chessboard is an interactive 8x8 board of pawns and rooks in the terminal.
//
// Usage:
//
//	chessboard list              - List available setups
//	chessboard play [setup]      - Open a board (default: standard)
//	chessboard menu              - Pick setups interactively
//	chessboard serve             - Start SSH server for remote play
//	chessboard stats [setup]     - Show the session journal
//
// Global flags:
//
//	--fps <rate>        - Set animation tick rate (default: 60)
//	--seed <value>      - Set RNG seed for capture effects
//	--db <path>         - Set journal path (default: ~/.chessboard/sessions.db)
//	--config <path>     - Use a custom YAML config
//	--log-file <path>   - Where interactive sessions log (default: ~/.chessboard/chessboard.log)
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chessboard/internal/config"
	"github.com/vovakirdan/tui-chessboard/internal/registry"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chessboard",
	Short: "Chessboard - click pawns and rooks around in your terminal",
	Long: `Chessboard is a terminal board of pawns and rooks. Click a piece to
select it, then click a tile to move it there. Moving onto an enemy
captures it with a burst of sparks.

Available commands:
  list     - Show all available setups
  play     - Open a board directly
  menu     - Interactive setup picker
  serve    - Start SSH server for remote play
  stats    - View the session journal

Examples:
  chessboard list
  chessboard play
  chessboard play capture-demo
  chessboard menu
  chessboard serve --ssh :2222
  chessboard stats standard`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Animation tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed for capture effects (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.chessboard/sessions.db", "Path to session journal")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.chessboard/chessboard.log", "Log file for interactive sessions")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
}

// loadConfig loads the YAML config and registers its setups.
func loadConfig() (config.ChessboardConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := registry.RegisterConfig(cfg); err != nil {
		return cfg, fmt.Errorf("config setups: %w", err)
	}
	return cfg, nil
}

// mustLoadConfig is loadConfig for commands that cannot go on without it.
func mustLoadConfig() config.ChessboardConfig {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// openLogFile creates a logger writing to --log-file, so log lines never
// land on the alternate screen. The returned func closes the file.
func openLogFile(prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	path := expandHome(flagLogFile)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, func() { f.Close() }, nil
}

// unknownSetup reports an unregistered setup ID with a suggestion, and exits.
func unknownSetup(id string) {
	fmt.Fprintf(os.Stderr, "Error: unknown setup %q\n", id)
	if s := registry.Suggest(id); s != "" {
		fmt.Fprintf(os.Stderr, "Did you mean %q?\n", s)
	}
	fmt.Fprintln(os.Stderr, "Run 'chessboard list' to see available setups.")
	os.Exit(1)
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
