package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-chessboard/internal/board"
	"github.com/vovakirdan/tui-chessboard/internal/config"
	"github.com/vovakirdan/tui-chessboard/internal/core"
	"github.com/vovakirdan/tui-chessboard/internal/game"
	"github.com/vovakirdan/tui-chessboard/internal/storage"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 40, TickRate: 60, Seed: 1}
}

func newTestBoard(t *testing.T, setupID string, store *storage.Store) BoardModel {
	t.Helper()
	m, err := NewBoardModel(BoardOptions{
		SetupID: setupID,
		Config:  config.DefaultConfig(),
		Runtime: testRuntime(),
		Store:   store,
		Player:  "tester",
	})
	if err != nil {
		t.Fatalf("NewBoardModel() failed: %v", err)
	}
	return m
}

func update(t *testing.T, m BoardModel, msg tea.Msg) BoardModel {
	t.Helper()
	next, _ := m.Update(msg)
	bm, ok := next.(BoardModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected BoardModel", next)
	}
	return bm
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func leftClick(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

// pieceCell returns the screen cell of the glyph of the piece standing on c.
func pieceCell(m BoardModel, c board.Coord) (int, int) {
	grid := m.Controller().Grid()
	return m.Scene().Projection().WorldToCell(grid.ToWorld(c, board.LayerPiece))
}

// tileCorner returns the top-left cell of tile c, which no glyph covers.
func tileCorner(m BoardModel, c board.Coord) (int, int) {
	r := m.Scene().Projection().TileRect(c)
	return r.X, r.Y
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"vim down", keyRunes("j"), core.ActionDown},
		{"vim left", keyRunes("h"), core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionClick},
		{"tile", keyRunes("m"), core.ActionClickTile},
		{"reset", keyRunes("r"), core.ActionRestart},
		{"help", keyRunes("?"), core.ActionHelp},
		{"quit", keyRunes("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", keyRunes("z"), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestBoardMouseMoveFlow(t *testing.T) {
	m := newTestBoard(t, "standard", nil)

	pawn, ok := m.Controller().PieceAt(board.C(1, 3))
	if !ok {
		t.Fatal("expected a white pawn on (1,3)")
	}

	m = update(t, m, leftClick(pieceCell(m, pawn.Pos)))
	if h, ok := m.Controller().Selection(); !ok || h != pawn.Handle {
		t.Fatalf("pawn not selected after clicking its glyph")
	}
	if m.Scene().Highlighted() != pawn.Handle {
		t.Error("scene should highlight the selected pawn")
	}
	if !strings.HasPrefix(m.Status(), "Selected white pawn") {
		t.Errorf("status = %q", m.Status())
	}

	m = update(t, m, leftClick(tileCorner(m, board.C(2, 3))))
	moved, _ := m.Controller().Piece(pawn.Handle)
	if moved.Pos != board.C(2, 3) {
		t.Errorf("pawn at %s, expected (2,3)", moved.Pos)
	}
	if _, ok := m.Controller().Selection(); ok {
		t.Error("selection should be cleared after a move")
	}
	if got := m.Controller().Stats().Moves; got != 1 {
		t.Errorf("Moves = %d, expected 1", got)
	}
}

func TestBoardMouseIgnoresOtherButtons(t *testing.T) {
	m := newTestBoard(t, "standard", nil)
	x, y := pieceCell(m, board.C(1, 0))

	m = update(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	m = update(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	if _, ok := m.Controller().Selection(); ok {
		t.Error("only left presses should click")
	}
}

func TestBoardKeyboardCapture(t *testing.T) {
	m := newTestBoard(t, "capture-demo", nil)

	// Cursor starts on (0,0); walk to the white pawn on (1,3)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	for range 3 {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	}
	if got := m.Scene().Cursor(); got != board.C(1, 3) {
		t.Fatalf("cursor at %s, expected (1,3)", got)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if _, ok := m.Controller().Selection(); !ok {
		t.Fatal("enter on a piece should select it")
	}

	// Down onto the black pawn, then click the tile beneath it
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = update(t, m, keyRunes("m"))

	stats := m.Controller().Stats()
	if stats.Captures != 1 {
		t.Fatalf("Captures = %d, expected 1", stats.Captures)
	}
	if m.Scene().ActiveEffects() != 1 {
		t.Errorf("expected one capture effect, got %d", m.Scene().ActiveEffects())
	}
	if !strings.Contains(m.Status(), "captured on (2,3)") {
		t.Errorf("status = %q", m.Status())
	}

	// Effects run out after enough ticks
	for range config.DefaultConfig().Effect.DurationTicks + 1 {
		m = update(t, m, TickMsg{})
	}
	if m.Scene().ActiveEffects() != 0 {
		t.Error("capture effect should expire")
	}
}

func TestBoardRejectedMoveStatus(t *testing.T) {
	m := newTestBoard(t, "standard", nil)

	m = update(t, m, leftClick(pieceCell(m, board.C(0, 0))))
	m = update(t, m, leftClick(tileCorner(m, board.C(3, 3))))

	if m.Controller().Stats().Rejected != 1 {
		t.Errorf("Rejected = %d, expected 1", m.Controller().Stats().Rejected)
	}
	if !strings.HasPrefix(m.Status(), "Illegal move") {
		t.Errorf("status = %q", m.Status())
	}
}

func TestBoardRestartJournalsSession(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestBoard(t, "standard", store)
	m = update(t, m, leftClick(pieceCell(m, board.C(1, 4))))
	m = update(t, m, leftClick(tileCorner(m, board.C(2, 4))))

	m = update(t, m, keyRunes("r"))
	if m.Controller().Stats() != (game.Stats{}) {
		t.Error("reset should start from fresh stats")
	}
	if p, ok := m.Controller().PieceAt(board.C(1, 4)); !ok || p.Type != board.Pawn {
		t.Error("reset should restore the setup")
	}

	sessions, err := store.RecentSessions("standard", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("expected 1 journaled session, got %d", len(sessions))
	}
	if sessions[0].Moves != 1 || sessions[0].Player != "tester" {
		t.Errorf("unexpected session %+v", sessions[0])
	}

	// An untouched board is not journaled on quit
	next, cmd := m.Update(keyRunes("q"))
	if cmd == nil || !next.(BoardModel).IsQuitting() {
		t.Fatal("q should quit")
	}
	sessions, _ = store.RecentSessions("standard", 10)
	if len(sessions) != 1 {
		t.Errorf("empty session was journaled: %d sessions", len(sessions))
	}
}

func TestBoardResize(t *testing.T) {
	m := newTestBoard(t, "standard", nil)

	m = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 10})
	if !m.Scene().TooSmall() {
		t.Fatal("30x10 should be too small for the board")
	}
	if !strings.Contains(m.View(), "Terminal too small") {
		t.Error("view should explain the terminal is too small")
	}

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 45})
	if m.Scene().TooSmall() {
		t.Fatal("100x45 should fit the board")
	}
	if m.Controller().Stats() != (game.Stats{}) || len(m.Controller().Pieces()) != 20 {
		t.Error("resize must not touch the game")
	}
}

func TestBoardViewShowsTitleAndStats(t *testing.T) {
	m := newTestBoard(t, "standard", nil)
	view := m.View()

	if !strings.Contains(view, "STANDARD") {
		t.Error("view should show the setup title")
	}
	if !strings.Contains(view, "moves 0  captures 0  rejected 0") {
		t.Error("view should show running stats")
	}
}

func TestBackOnlyInSessions(t *testing.T) {
	m := newTestBoard(t, "standard", nil)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Error("standalone boards ignore back")
	}

	s := NewSessionModel(SessionOptions{Runtime: testRuntime(), Board: config.DefaultConfig()})
	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	if s.current != screenBoard {
		t.Fatalf("enter in the menu should open a board, got screen %d", s.current)
	}

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)
	if s.current != screenMenu {
		t.Errorf("esc on a board should return to the menu, got screen %d", s.current)
	}
}

func TestSessionStatsScreen(t *testing.T) {
	s := NewSessionModel(SessionOptions{Runtime: testRuntime(), Board: config.DefaultConfig()})

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyTab})
	s = next.(SessionModel)
	if s.current != screenStats {
		t.Fatalf("tab should open the stats screen, got %d", s.current)
	}
	if !strings.Contains(s.View(), "No sessions recorded yet") {
		t.Error("stats without a journal should be empty")
	}

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)
	if s.current != screenMenu {
		t.Errorf("esc should return to the menu, got %d", s.current)
	}
}

func TestRenderScreenGroupsRuns(t *testing.T) {
	s := core.NewScreen(4, 1)
	s.DrawText(0, 0, "ab", core.ColorDefault)
	s.SetCell(2, 0, core.Cell{Rune: 'c', Fg: core.ColorRed, Bg: core.ColorTan})
	s.SetCell(3, 0, core.Cell{Rune: 'd', Fg: core.ColorRed, Bg: core.ColorTan})

	out := RenderScreen(s)
	if !strings.HasPrefix(out, "ab") {
		t.Errorf("default-colored cells should be written unstyled, got %q", out)
	}
	if !strings.Contains(out, "cd") {
		t.Errorf("cells with equal colors should form one run, got %q", out)
	}
}
