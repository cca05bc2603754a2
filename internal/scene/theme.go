package scene

import (
	"github.com/vovakirdan/tui-chessboard/internal/config"
	"github.com/vovakirdan/tui-chessboard/internal/core"
)

// Theme holds the resolved colors of the scene.
type Theme struct {
	LightTile core.Color
	DarkTile  core.Color
	White     core.Color
	Black     core.Color
	Highlight core.Color
	Cursor    core.Color
	Particle  core.Color
}

// ThemeFromConfig resolves color names. Unknown names fall back to the
// terminal default; config.Validate rejects them earlier.
func ThemeFromConfig(tc config.ThemeConfig) Theme {
	resolve := func(name string) core.Color {
		c, _ := core.ParseColor(name)
		return c
	}
	return Theme{
		LightTile: resolve(tc.LightTile),
		DarkTile:  resolve(tc.DarkTile),
		White:     resolve(tc.White),
		Black:     resolve(tc.Black),
		Highlight: resolve(tc.Highlight),
		Cursor:    resolve(tc.Cursor),
		Particle:  resolve(tc.Particle),
	}
}
