package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-chessboard/internal/board"
)

// Outcome describes what a click did.
type Outcome uint8

const (
	OutcomeNone     Outcome = iota // Nothing changed
	OutcomeSelected                // A piece became selected
	OutcomeSwitched                // The selection moved to another piece
	OutcomeMoved                   // The selected piece moved to an empty tile
	OutcomeCaptured                // The selected piece moved onto an occupied tile
	OutcomeRejected                // The move was illegal; selection cleared
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeSelected:
		return "selected"
	case OutcomeSwitched:
		return "switched"
	case OutcomeMoved:
		return "moved"
	case OutcomeCaptured:
		return "captured"
	case OutcomeRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Stats counts completed move attempts since the controller was created.
type Stats struct {
	Moves    int // Successful moves, captures included
	Captures int
	Rejected int
}

// Options configures a Controller.
type Options struct {
	Grid   board.Grid
	Logger *log.Logger // Optional; discards output when nil
}

// Controller is the selection and move state machine. It exclusively owns
// the piece registry. It must be driven from a single goroutine.
type Controller struct {
	grid     board.Grid
	registry *board.Registry
	renderer Renderer
	logger   *log.Logger

	selected board.Handle // NoHandle when idle
	stats    Stats
}

// New builds a controller, applies the setup and tells the renderer about
// every placed piece. A setup placing two pieces on one square is a
// programming error and is returned as ErrOccupiedCoordinate.
func New(setup board.Setup, renderer Renderer, opts Options) (*Controller, error) {
	if renderer == nil {
		renderer = NopRenderer{}
	}
	if opts.Grid.TileSize <= 0 {
		opts.Grid = board.DefaultGrid()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	c := &Controller{
		grid:     opts.Grid,
		registry: board.NewRegistry(),
		renderer: renderer,
		logger:   logger,
	}

	err := setup.Apply(c.registry, func(p board.Piece) {
		renderer.PlaceNewPiece(p.Handle, p.Type, p.Color, c.grid.ToWorld(p.Pos, board.LayerPiece))
	})
	if err != nil {
		return nil, fmt.Errorf("game: setup failed: %w", err)
	}

	logger.Debug("board ready", "pieces", c.registry.Len())
	return c, nil
}

// Selection returns the selected piece's handle, or false when idle.
func (c *Controller) Selection() (board.Handle, bool) {
	return c.selected, c.selected != board.NoHandle
}

// SelectedPiece returns a snapshot of the selected piece, if any.
func (c *Controller) SelectedPiece() (board.Piece, bool) {
	if c.selected == board.NoHandle {
		return board.Piece{}, false
	}
	return c.registry.Piece(c.selected)
}

// PieceAt returns the piece standing on coord, if any.
func (c *Controller) PieceAt(coord board.Coord) (board.Piece, bool) {
	return c.registry.PieceAt(coord)
}

// Piece returns the piece with handle h, if it is still on the board.
func (c *Controller) Piece(h board.Handle) (board.Piece, bool) {
	return c.registry.Piece(h)
}

// Pieces returns a snapshot of all pieces ordered by handle.
func (c *Controller) Pieces() []board.Piece {
	return c.registry.Pieces()
}

// Grid returns the grid used for world positions.
func (c *Controller) Grid() board.Grid {
	return c.grid
}

// Stats returns the running move counters.
func (c *Controller) Stats() Stats {
	return c.stats
}

// HandleClick advances the state machine by one resolved click.
func (c *Controller) HandleClick(hit Hit) Outcome {
	c.ensureSelectionValid()

	if c.selected == board.NoHandle {
		return c.handleIdle(hit)
	}
	return c.handleSelected(hit)
}

// ensureSelectionValid drops a selection whose piece left the registry.
func (c *Controller) ensureSelectionValid() {
	if c.selected != board.NoHandle && !c.registry.Contains(c.selected) {
		c.logger.Warn("selected piece vanished, clearing selection", "handle", c.selected)
		c.selected = board.NoHandle
	}
}

func (c *Controller) handleIdle(hit Hit) Outcome {
	if hit.Kind != HitPiece || !c.registry.Contains(hit.Handle) {
		return OutcomeNone
	}
	c.selected = hit.Handle
	c.renderer.HighlightSelected(hit.Handle)
	return OutcomeSelected
}

func (c *Controller) handleSelected(hit Hit) Outcome {
	switch hit.Kind {
	case HitPiece:
		if hit.Handle == c.selected || !c.registry.Contains(hit.Handle) {
			return OutcomeNone
		}
		c.renderer.ClearHighlight(c.selected)
		c.selected = hit.Handle
		c.renderer.HighlightSelected(hit.Handle)
		return OutcomeSwitched

	case HitTile:
		return c.resolveMove(hit.Coord)

	default:
		return OutcomeNone
	}
}

// resolveMove validates and commits a move of the selected piece to target.
// The controller is idle afterwards whatever the result.
func (c *Controller) resolveMove(target board.Coord) Outcome {
	mover, _ := c.registry.Piece(c.selected)
	defer func() { c.selected = board.NoHandle }()

	if !IsLegal(mover, target) {
		c.stats.Rejected++
		c.renderer.ClearHighlight(mover.Handle)
		c.logger.Debug("move rejected",
			"piece", mover.Type, "color", mover.Color,
			"from", mover.Pos, "to", target,
		)
		return OutcomeRejected
	}

	outcome := OutcomeMoved
	if occupant, ok := c.registry.PieceAt(target); ok {
		c.renderer.SpawnCaptureEffect(c.grid.ToWorld(target, board.LayerTile))
		if err := c.registry.Remove(occupant.Handle); err != nil {
			c.logger.Error("capture failed", "error", err)
			c.renderer.ClearHighlight(mover.Handle)
			return OutcomeNone
		}
		c.renderer.RemoveFromScene(occupant.Handle)
		c.stats.Captures++
		outcome = OutcomeCaptured
		c.logger.Info("capture",
			"piece", mover.Type, "color", mover.Color,
			"captured", occupant.Type, "captured_color", occupant.Color,
			"at", target,
		)
	}

	if err := c.registry.MoveTo(mover.Handle, target); err != nil {
		c.logger.Error("move failed", "error", err)
		c.renderer.ClearHighlight(mover.Handle)
		return OutcomeNone
	}

	c.stats.Moves++
	c.renderer.ClearHighlight(mover.Handle)
	c.renderer.Reposition(mover.Handle, c.grid.ToWorld(target, board.LayerPiece))
	c.logger.Debug("move",
		"piece", mover.Type, "color", mover.Color,
		"from", mover.Pos, "to", target,
	)
	return outcome
}
