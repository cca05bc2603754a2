package scene

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-chessboard/internal/board"
	"github.com/vovakirdan/tui-chessboard/internal/config"
)

// particle is one spark of a capture burst, moving on the board plane.
type particle struct {
	x, z   float64
	vx, vz float64
}

// effect is a self-contained capture burst. It has a fixed lifetime in
// ticks and never reports back to the game.
type effect struct {
	particles []particle
	age       int
	duration  int
}

func newEffect(at board.Vec3, cfg config.EffectConfig, rng *rand.Rand) *effect {
	duration := cfg.DurationTicks
	if duration < 1 {
		duration = 1
	}
	e := &effect{
		particles: make([]particle, cfg.Particles),
		duration:  duration,
	}

	for i := range e.particles {
		// Spread evenly around the circle with a little jitter
		angle := 2*math.Pi*float64(i)/float64(cfg.Particles) + (rng.Float64()-0.5)*0.4
		speed := cfg.Speed * (0.5 + rng.Float64())
		e.particles[i] = particle{
			x:  at.X,
			z:  at.Z,
			vx: math.Cos(angle) * speed,
			vz: math.Sin(angle) * speed,
		}
	}
	return e
}

// step advances the burst by one tick. Particles slow down as they spread.
func (e *effect) step() {
	e.age++
	for i := range e.particles {
		p := &e.particles[i]
		p.x += p.vx
		p.z += p.vz
		p.vx *= 0.96
		p.vz *= 0.96
	}
}

func (e *effect) done() bool {
	return e.age >= e.duration
}

// progress returns how far through its life the burst is, in [0, 1].
func (e *effect) progress() float64 {
	return math.Min(1, float64(e.age)/float64(e.duration))
}

// glyph picks a spark character that fades with age.
func (e *effect) glyph() rune {
	switch p := e.progress(); {
	case p < 0.35:
		return '*'
	case p < 0.7:
		return '+'
	default:
		return '.'
	}
}
