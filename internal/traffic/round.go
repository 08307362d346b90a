// Package traffic implements the round rules of the traffic dodging game:
// the Active/Over state machine, the spawn policy and scoring.
//
// The controller holds no engine state of its own. Physics integration,
// overlap detection, timers and text are supplied by a Surface, and the
// surface's frame, timer and collision callbacks drive the controller.
package traffic

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-traffic/internal/config"
	"github.com/vovakirdan/tui-traffic/internal/core"
)

// ErrRoundActive is returned by Restart while the round is still running.
var ErrRoundActive = errors.New("traffic: round is still active")

// Surface is the engine collaborator the controller consumes.
// Calls are made from the single simulation goroutine.
type Surface interface {
	// AttachPlayer registers the player body for integration, world-bound
	// clamping and overlap checks.
	AttachPlayer(b *core.Body)
	// AttachEnemy adds a body to the enemy collection.
	AttachEnemy(b *core.Body)
	// DetachEnemy removes a body from the enemy collection.
	DetachEnemy(b *core.Body)

	PausePhysics()
	ResumePhysics()

	// UpdateScore refreshes the live score readout.
	UpdateScore(score int)
	// ShowGameOver presents the game-over message and the restart control.
	ShowGameOver(score int)

	// ResetScene discards all entities, timers and physics state.
	ResetScene()
	// RestartSpawnTimer re-arms the recurring spawn timer from zero.
	RestartSpawnTimer()
}

// Round is the state of one play session.
type Round struct {
	Status     Status
	Score      int
	SpawnTicks int     // Spawn ticks handled this round
	Scroll     float64 // Background scroll accumulator
}

// RoundController owns all round-scoped state and applies the game rules.
type RoundController struct {
	surface Surface
	rng     RandomSource
	cfg     config.TrafficConfig
	logger  *log.Logger

	round   Round
	player  *Player
	enemies []*Enemy
}

// NewRoundController creates a controller and starts the first round.
// A nil logger discards log output.
func NewRoundController(surface Surface, rng RandomSource, cfg config.TrafficConfig, logger *log.Logger) *RoundController {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	c := &RoundController{
		surface: surface,
		rng:     rng,
		cfg:     cfg,
		logger:  logger,
	}
	c.startRound()
	return c
}

// startRound resets round state and places the player at its start position.
func (c *RoundController) startRound() {
	c.round = Round{Status: StatusActive}
	c.enemies = nil

	pc := c.cfg.Player
	body := core.NewBody(
		c.cfg.World.Width/2-pc.Width/2,
		c.cfg.World.Height-pc.StartOffset-pc.Height/2,
		pc.Width,
		pc.Height,
	)
	body.ClampToWorld = true
	c.player = &Player{Body: body}

	c.surface.AttachPlayer(body)
	c.surface.UpdateScore(0)
}

// Advance applies one frame of input. It is a no-op once the round is over.
//
// Right overrides left when both directions are held.
func (c *RoundController) Advance(in core.InputFrame) {
	if c.round.Status == StatusOver {
		return
	}

	c.round.Scroll += c.cfg.Road.ScrollRate

	vx := 0.0
	if in.Has(core.ActionLeft) {
		vx = -c.cfg.Player.Speed
	}
	if in.Has(core.ActionRight) {
		vx = c.cfg.Player.Speed
	}
	c.player.Body.VX = vx

	passed := 0
	kept := c.enemies[:0]
	for _, e := range c.enemies {
		if e.Body.Y > c.cfg.World.Height {
			c.surface.DetachEnemy(e.Body)
			passed++
			continue
		}
		kept = append(kept, e)
	}
	for i := len(kept); i < len(c.enemies); i++ {
		c.enemies[i] = nil
	}
	c.enemies = kept

	if passed > 0 {
		c.round.Score += passed * c.cfg.Enemies.Reward
		c.surface.UpdateScore(c.round.Score)
		c.logger.Debug("cars passed", "count", passed, "score", c.round.Score)
	}
}

// OnSpawnTick adds one enemy car above the top edge.
// It is a no-op once the round is over.
func (c *RoundController) OnSpawnTick() {
	if c.round.Status == StatusOver {
		return
	}

	ec := c.cfg.Enemies
	kind := SpriteKind(c.rng.Intn(kindCount))
	x := float64(c.rng.Intn(int(c.cfg.World.Width) + 1))

	body := core.NewBody(x, -ec.Height, ec.Width, ec.Height)
	body.VY = ec.Speed

	c.enemies = append(c.enemies, &Enemy{Body: body, Kind: kind})
	c.round.SpawnTicks++
	c.surface.AttachEnemy(body)

	c.logger.Debug("spawned car", "kind", kind, "x", x, "tick", c.round.SpawnTicks)
}

// OnCollision ends the round. The colliding enemy stays in play and the
// score is kept. Repeated calls after the round is over do nothing.
func (c *RoundController) OnCollision(player, enemy *core.Body) {
	if c.round.Status == StatusOver {
		return
	}

	c.round.Status = StatusOver
	c.surface.PausePhysics()
	c.surface.ShowGameOver(c.round.Score)

	c.logger.Info("game over",
		"score", c.round.Score,
		"enemies", len(c.enemies),
		"player_x", player.X,
		"enemy_x", enemy.X,
	)
}

// Restart begins a new round. It is only valid once the round is over.
func (c *RoundController) Restart() error {
	if c.round.Status != StatusOver {
		return ErrRoundActive
	}

	final := c.round.Score
	c.surface.ResetScene()
	c.startRound()
	c.surface.ResumePhysics()
	c.surface.RestartSpawnTimer()

	c.logger.Info("round restarted", "previous_score", final)
	return nil
}

// Status returns the current round status.
func (c *RoundController) Status() Status {
	return c.round.Status
}

// Score returns the current score.
func (c *RoundController) Score() int {
	return c.round.Score
}

// Round returns a snapshot of the round state.
func (c *RoundController) Round() Round {
	return c.round
}

// Player returns the player car.
func (c *RoundController) Player() *Player {
	return c.player
}

// Enemies returns the live enemy cars. The slice is a copy.
func (c *RoundController) Enemies() []*Enemy {
	out := make([]*Enemy, len(c.enemies))
	copy(out, c.enemies)
	return out
}
