// Package game wires the round rules to the engine surface.
package game

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-traffic/internal/config"
	"github.com/vovakirdan/tui-traffic/internal/core"
	"github.com/vovakirdan/tui-traffic/internal/engine"
	"github.com/vovakirdan/tui-traffic/internal/traffic"
)

// Session is one scene with its round controller bound to it.
type Session struct {
	Scene  *engine.Scene
	Round  *traffic.RoundController
	Config config.TrafficConfig
	Seed   int64
}

// NewSession builds a scene sized to the configured world and starts the
// first round. A zero seed is replaced with a time-based one.
func NewSession(cfg config.TrafficConfig, seed int64, logger *log.Logger) *Session {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	scene := engine.NewScene(
		core.RectF{W: cfg.World.Width, H: cfg.World.Height},
		cfg.Enemies.SpawnPeriod(),
		logger,
	)
	round := traffic.NewRoundController(scene, traffic.NewRandomSource(seed), cfg, logger)
	scene.Bind(round)

	return &Session{
		Scene:  scene,
		Round:  round,
		Config: cfg,
		Seed:   seed,
	}
}

// Frame runs one frame of the scene.
func (s *Session) Frame(dt time.Duration, in core.InputFrame) {
	s.Scene.Frame(dt, in)
}

// Restart activates the restart control. It reports false while the
// round is still running.
func (s *Session) Restart() bool {
	return s.Scene.ActivateRestart()
}

// GameOver reports whether the round has ended.
func (s *Session) GameOver() bool {
	return s.Round.Status() == traffic.StatusOver
}
