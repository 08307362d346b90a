package core

// Body is a velocity-driven rectangle in world units.
// Game logic owns bodies and sets their velocities; the engine integrates
// positions and clamps bodies flagged with ClampToWorld.
type Body struct {
	X, Y   float64 // Top-left corner
	W, H   float64 // Size
	VX, VY float64 // Velocity in world units per second

	// ClampToWorld keeps the body fully inside the world bounds.
	ClampToWorld bool
}

// NewBody creates a body at rest.
func NewBody(x, y, w, h float64) *Body {
	return &Body{X: x, Y: y, W: w, H: h}
}

// Rect returns the body's bounding rectangle.
func (b *Body) Rect() RectF {
	return RectF{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// SetVelocity sets both velocity components.
func (b *Body) SetVelocity(vx, vy float64) {
	b.VX = vx
	b.VY = vy
}
