package engine

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-traffic/internal/core"
)

// Handler receives the scene's frame, timer and collision callbacks.
// The scene never invokes two callbacks concurrently.
type Handler interface {
	Advance(in core.InputFrame)
	OnSpawnTick()
	OnCollision(player, enemy *core.Body)
	Restart() error
}

// Overlay is the text layer: a live score readout and, after a collision,
// the game-over message with its restart control.
type Overlay struct {
	Score    int
	GameOver bool
}

// Scene owns the world, the spawn timer and the entity collections, and
// feeds a Handler once per frame. It implements the surface the round
// rules consume.
type Scene struct {
	world   *World
	timer   *Timer
	handler Handler
	logger  *log.Logger

	player  *core.Body
	enemies []*core.Body
	overlay Overlay
	frames  uint64
}

// NewScene creates an empty scene. A nil logger discards log output.
func NewScene(bounds core.RectF, spawnPeriod time.Duration, logger *log.Logger) *Scene {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Scene{
		world:  NewWorld(bounds),
		timer:  NewTimer(spawnPeriod),
		logger: logger,
	}
}

// Bind sets the handler driven by Frame and ActivateRestart.
func (s *Scene) Bind(h Handler) {
	s.handler = h
}

// Frame runs one frame: the handler's per-frame update, physics integration,
// spawn timer fires and the overlap check.
func (s *Scene) Frame(dt time.Duration, in core.InputFrame) {
	if s.handler == nil {
		return
	}
	if dt > MaxFrameDelta {
		dt = MaxFrameDelta
	}
	s.frames++

	s.handler.Advance(in)
	s.world.Step(dt)

	for n := s.timer.Advance(dt); n > 0; n-- {
		s.handler.OnSpawnTick()
	}

	s.checkOverlaps()
}

// checkOverlaps reports every enemy touching the player. Overlaps are only
// evaluated while physics runs.
func (s *Scene) checkOverlaps() {
	if s.player == nil || s.world.Paused() {
		return
	}

	pr := s.player.Rect()
	for _, e := range s.enemies {
		if pr.Intersects(e.Rect()) {
			s.handler.OnCollision(s.player, e)
		}
	}
}

// ActivateRestart delivers the restart control's activation. It returns
// false when no restart control is shown.
func (s *Scene) ActivateRestart() bool {
	if !s.overlay.GameOver || s.handler == nil {
		return false
	}
	if err := s.handler.Restart(); err != nil {
		s.logger.Warn("restart rejected", "error", err)
		return false
	}
	return true
}

// AttachPlayer registers the player body.
func (s *Scene) AttachPlayer(b *core.Body) {
	if s.player != nil {
		s.world.Remove(s.player)
	}
	s.player = b
	s.world.Add(b)
}

// AttachEnemy adds a body to the enemy collection.
func (s *Scene) AttachEnemy(b *core.Body) {
	s.enemies = append(s.enemies, b)
	s.world.Add(b)
}

// DetachEnemy removes a body from the enemy collection.
func (s *Scene) DetachEnemy(b *core.Body) {
	for i, e := range s.enemies {
		if e == b {
			s.enemies = append(s.enemies[:i], s.enemies[i+1:]...)
			break
		}
	}
	s.world.Remove(b)
}

// PausePhysics stops integration and overlap checks.
func (s *Scene) PausePhysics() {
	s.world.Pause()
}

// ResumePhysics restarts integration and overlap checks.
func (s *Scene) ResumePhysics() {
	s.world.Resume()
}

// UpdateScore sets the live score readout.
func (s *Scene) UpdateScore(score int) {
	s.overlay.Score = score
}

// ShowGameOver shows the game-over message and the restart control.
func (s *Scene) ShowGameOver(score int) {
	s.overlay.Score = score
	s.overlay.GameOver = true
}

// ResetScene discards every entity, the timer progress, the pause flag and
// the overlay.
func (s *Scene) ResetScene() {
	s.world.Clear()
	s.world.Resume()
	s.timer.Restart()
	s.player = nil
	s.enemies = nil
	s.overlay = Overlay{}
	s.logger.Debug("scene reset", "frames", s.frames)
}

// RestartSpawnTimer re-arms the spawn timer.
func (s *Scene) RestartSpawnTimer() {
	s.timer.Restart()
}

// Bounds returns the world bounds.
func (s *Scene) Bounds() core.RectF {
	return s.world.Bounds()
}

// Paused reports whether physics is stopped.
func (s *Scene) Paused() bool {
	return s.world.Paused()
}

// Overlay returns the text layer state.
func (s *Scene) Overlay() Overlay {
	return s.overlay
}

// Player returns the player body, or nil before one is attached.
func (s *Scene) Player() *core.Body {
	return s.player
}

// Enemies returns the enemy bodies. The slice is a copy.
func (s *Scene) Enemies() []*core.Body {
	out := make([]*core.Body, len(s.enemies))
	copy(out, s.enemies)
	return out
}

// Frames returns the number of frames run.
func (s *Scene) Frames() uint64 {
	return s.frames
}

// Timer exposes the spawn timer.
func (s *Scene) Timer() *Timer {
	return s.timer
}
