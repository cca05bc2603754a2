package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-chessboard/internal/board"
	"github.com/vovakirdan/tui-chessboard/internal/config"
	"github.com/vovakirdan/tui-chessboard/internal/core"
	"github.com/vovakirdan/tui-chessboard/internal/game"
	"github.com/vovakirdan/tui-chessboard/internal/registry"
	"github.com/vovakirdan/tui-chessboard/internal/scene"
	"github.com/vovakirdan/tui-chessboard/internal/storage"
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	statsStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// BoardOptions configures a board screen.
type BoardOptions struct {
	SetupID string
	Config  config.ChessboardConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store // Optional session journal
	Logger  *log.Logger    // Optional; discards output when nil
	Player  string         // Recorded with the session summary

	// Embedded boards run inside a SessionModel: Back returns to the
	// setup menu instead of being ignored.
	Embedded bool
}

// BoardModel is the Bubble Tea model of one interactive board.
// The controller and scene are pointers, so copies of the model share them.
type BoardModel struct {
	opts   BoardOptions
	ctrl   *game.Controller
	scene  *scene.Scene
	screen *core.Screen
	styles styleCache
	keys   KeyMap
	help   help.Model
	logger *log.Logger

	status    string
	sessionID string
	started   time.Time

	quitting   bool
	backToMenu bool
}

// NewBoardModel builds the board for opts.SetupID.
func NewBoardModel(opts BoardOptions) (BoardModel, error) {
	// Use time-based seed if not specified
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := BoardModel{
		opts:   opts,
		styles: make(styleCache),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: logger.With("setup", opts.SetupID),
	}
	m.help.Width = opts.Runtime.ScreenW
	m.screen = core.NewScreen(opts.Runtime.ScreenW, m.boardHeight())

	if err := m.newBoard(); err != nil {
		return BoardModel{}, err
	}
	m.status = "Click a piece to select it"
	return m, nil
}

// newBoard creates a fresh controller and scene and starts a new journal session.
func (m *BoardModel) newBoard() error {
	setup, err := registry.Create(m.opts.SetupID)
	if err != nil {
		return err
	}

	sc := scene.New(scene.OptionsFromConfig(m.opts.Config, m.opts.Runtime.Seed), m.opts.Runtime.ScreenW, m.boardHeight())
	ctrl, err := game.New(setup, sc, game.Options{
		Grid:   m.opts.Config.Grid(),
		Logger: m.logger,
	})
	if err != nil {
		return err
	}

	m.scene = sc
	m.ctrl = ctrl
	m.sessionID = storage.NewSessionID()
	m.started = time.Now()
	return nil
}

// footerHeight is the number of rows below the board: status plus help.
func (m BoardModel) footerHeight() int {
	if m.help.ShowAll {
		rows := 0
		for _, col := range m.keys.FullHelp() {
			rows = max(rows, len(col))
		}
		return 1 + rows
	}
	return 2
}

func (m BoardModel) boardHeight() int {
	return max(m.opts.Runtime.ScreenH-m.footerHeight(), 0)
}

// layout resizes the screen buffer and the scene to the current terminal.
func (m *BoardModel) layout() {
	m.screen.Resize(m.opts.Runtime.ScreenW, m.boardHeight())
	m.scene.Resize(m.opts.Runtime.ScreenW, m.boardHeight())
	m.help.Width = m.opts.Runtime.ScreenW
}

// Init starts the animation ticks.
func (m BoardModel) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.layout()
		return m, nil

	case TickMsg:
		m.scene.Tick()
		return m, tickCmd(m.opts.Runtime.TickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m BoardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Back):
		if m.opts.Embedded {
			m.finish()
			m.backToMenu = true
		}
		return m, nil
	}

	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.finish()
		m.quitting = true
		return m, tea.Quit
	case core.ActionUp:
		m.scene.MoveCursor(-1, 0)
	case core.ActionDown:
		m.scene.MoveCursor(1, 0)
	case core.ActionLeft:
		m.scene.MoveCursor(0, -1)
	case core.ActionRight:
		m.scene.MoveCursor(0, 1)
	case core.ActionClick:
		m.scene.MoveCursor(0, 0)
		m.click(m.scene.ResolveCoord(m.scene.Cursor(), true))
	case core.ActionClickTile:
		m.scene.MoveCursor(0, 0)
		m.click(m.scene.ResolveCoord(m.scene.Cursor(), false))
	case core.ActionRestart:
		m.restart()
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
	}

	return m, nil
}

// handleMouse turns a left-button press into a click on whatever is drawn there.
func (m BoardModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	m.scene.HideCursor()
	hit := m.scene.Resolve(msg.X, msg.Y)
	switch hit.Kind {
	case game.HitTile:
		m.scene.SetCursor(hit.Coord)
	case game.HitPiece:
		if p, ok := m.ctrl.Piece(hit.Handle); ok {
			m.scene.SetCursor(p.Pos)
		}
	}
	m.click(hit)
	return m, nil
}

// click forwards a hit to the controller and updates the status line.
func (m *BoardModel) click(hit game.Hit) {
	mover, _ := m.ctrl.SelectedPiece()
	outcome := m.ctrl.HandleClick(hit)

	switch outcome {
	case game.OutcomeSelected:
		p, _ := m.ctrl.SelectedPiece()
		m.status = fmt.Sprintf("Selected %s on %s", describePiece(p), p.Pos)
	case game.OutcomeSwitched:
		p, _ := m.ctrl.SelectedPiece()
		m.status = fmt.Sprintf("Switched to %s on %s", describePiece(p), p.Pos)
	case game.OutcomeMoved:
		m.status = fmt.Sprintf("%s moved %s -> %s", describePiece(mover), mover.Pos, hit.Coord)
	case game.OutcomeCaptured:
		m.status = fmt.Sprintf("%s captured on %s", describePiece(mover), hit.Coord)
	case game.OutcomeRejected:
		m.status = fmt.Sprintf("Illegal move: %s %s -> %s", describePiece(mover), mover.Pos, hit.Coord)
	}
}

func describePiece(p board.Piece) string {
	return p.Color.String() + " " + p.Type.String()
}

// restart journals the current session and sets the board up again.
func (m *BoardModel) restart() {
	m.finish()
	if err := m.newBoard(); err != nil {
		m.logger.Error("reset failed", "error", err)
		m.status = "Reset failed: " + err.Error()
		return
	}
	m.status = "Board reset"
}

// finish writes the session summary to the journal, once per session.
// Sessions without a single move attempt are not recorded.
func (m *BoardModel) finish() {
	if m.sessionID == "" {
		return
	}
	id := m.sessionID
	m.sessionID = ""

	stats := m.ctrl.Stats()
	if m.opts.Store == nil || stats.Moves+stats.Rejected == 0 {
		return
	}

	_, err := m.opts.Store.SaveSession(storage.Session{
		ID:        id,
		SetupID:   m.opts.SetupID,
		Player:    m.opts.Player,
		Moves:     stats.Moves,
		Captures:  stats.Captures,
		Rejected:  stats.Rejected,
		StartedAt: m.started,
		EndedAt:   time.Now(),
	})
	if err != nil {
		m.logger.Warn("could not save session", "error", err)
		return
	}
	m.logger.Info("session saved", "id", id, "moves", stats.Moves, "captures", stats.Captures)
}

// saveScreenshot saves the current board to a text file.
func (m *BoardModel) saveScreenshot() {
	m.renderBoard()

	home, err := os.UserHomeDir()
	if err != nil {
		m.status = "Screenshot failed: " + err.Error()
		return
	}
	dir := filepath.Join(home, ".chessboard", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.status = "Screenshot failed: " + err.Error()
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.opts.SetupID, timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.status = "Screenshot failed: " + err.Error()
		return
	}
	m.status = "Screenshot saved to " + path
}

// renderBoard draws the title and the scene into the screen buffer.
func (m BoardModel) renderBoard() {
	m.screen.Clear()
	m.scene.Render(m.screen)
	if m.scene.TooSmall() {
		return
	}

	// Title sits above the column labels
	y := m.scene.Projection().OriginY - 2
	if y >= 0 {
		m.screen.DrawTextCentered(y, strings.ToUpper(registry.Title(m.opts.SetupID)), core.ColorBrightWhite)
	}
}

// statusLine renders the last outcome on the left and running stats on the right.
func (m BoardModel) statusLine() string {
	stats := m.ctrl.Stats()
	left := statusStyle.Render(m.status)
	right := statsStyle.Render(fmt.Sprintf("moves %d  captures %d  rejected %d",
		stats.Moves, stats.Captures, stats.Rejected))

	gap := m.opts.Runtime.ScreenW - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// View renders the current state to a string for display.
func (m BoardModel) View() string {
	if m.quitting {
		return ""
	}

	m.renderBoard()

	var b strings.Builder
	b.WriteString(renderScreen(m.screen, m.styles))
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Controller returns the board's state machine.
func (m BoardModel) Controller() *game.Controller {
	return m.ctrl
}

// Scene returns the board's scene.
func (m BoardModel) Scene() *scene.Scene {
	return m.scene
}

// Status returns the current status line text.
func (m BoardModel) Status() string {
	return m.status
}

// IsQuitting returns true if user requested to quit entirely.
func (m BoardModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the setup menu.
func (m BoardModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a Bubble Tea program for a single board.
func Run(opts BoardOptions) error {
	model, err := NewBoardModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse clicks select and move pieces
	)

	_, err = p.Run()
	return err
}
