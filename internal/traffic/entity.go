package traffic

import (
	"math/rand"

	"github.com/vovakirdan/tui-traffic/internal/core"
)

// Status is the round state.
type Status int

const (
	StatusActive Status = iota
	StatusOver
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusOver:
		return "over"
	default:
		return "unknown"
	}
}

// SpriteKind selects one of the enemy car sprites.
type SpriteKind int

const (
	KindA SpriteKind = iota
	KindB
	KindC

	kindCount = 3
)

// Sprite returns the logical resource name of the kind.
func (k SpriteKind) Sprite() string {
	switch k {
	case KindA:
		return "enemy1"
	case KindB:
		return "enemy2"
	case KindC:
		return "enemy3"
	default:
		return ""
	}
}

// String returns the sprite name, for logs and traces.
func (k SpriteKind) String() string {
	return k.Sprite()
}

// Player is the player-controlled car.
type Player struct {
	Body *core.Body
}

// LaneX returns the horizontal position of the car.
func (p *Player) LaneX() float64 {
	return p.Body.X
}

// Enemy is an oncoming car. Its horizontal position is fixed at spawn.
type Enemy struct {
	Body *core.Body
	Kind SpriteKind
}

// Y returns the vertical position of the enemy.
func (e *Enemy) Y() float64 {
	return e.Body.Y
}

// RandomSource is the spawn policy's only source of randomness.
// *rand.Rand satisfies it.
type RandomSource interface {
	// Intn returns a uniform integer in [0, n).
	Intn(n int) int
}

// NewRandomSource returns a deterministic source for the given seed.
func NewRandomSource(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed))
}
