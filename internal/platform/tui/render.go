package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-traffic/internal/assets"
	"github.com/vovakirdan/tui-traffic/internal/core"
	"github.com/vovakirdan/tui-traffic/internal/game"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

const (
	gameOverText = "Game Over!"
	restartText  = "[ Restart ]"
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Renderer draws a session onto a cell screen, scaling world coordinates
// to the screen's play area.
type Renderer struct {
	catalog *assets.Catalog
}

// NewRenderer creates a renderer that draws sprites from the catalog.
func NewRenderer(catalog *assets.Catalog) *Renderer {
	return &Renderer{catalog: catalog}
}

// restartButtonRect returns the cells covered by the restart control for a
// play area of the given size.
func restartButtonRect(w, h int) core.Rect {
	width := len(restartText)
	return core.NewRect((w-width)/2, h/2+1, width, 1)
}

// Render draws the road, the cars and the overlay.
func (r *Renderer) Render(s *core.Screen, sess *game.Session) {
	s.Clear()
	pw, ph := s.Width(), s.Height()
	if pw <= 0 || ph <= 0 {
		return
	}

	bounds := sess.Scene.Bounds()
	sx := float64(pw) / bounds.W
	sy := float64(ph) / bounds.H

	r.drawRoad(s, pw, ph, sess.Round.Round().Scroll*sy)

	for _, e := range sess.Round.Enemies() {
		r.drawSprite(s, e.Kind.Sprite(), e.Body.Rect().ToCells(sx, sy), ph)
	}
	if p := sess.Round.Player(); p != nil {
		r.drawSprite(s, "player", p.Body.Rect().ToCells(sx, sy), ph)
	}

	overlay := sess.Scene.Overlay()
	s.DrawText(1, 0, fmt.Sprintf("Score: %d", overlay.Score), core.ColorBrightWhite)

	if overlay.GameOver {
		drawGameOver(s, pw, ph)
	}
}

// drawRoad tiles the road sprite down the play area, shifted by the scroll
// offset so the lane markings move toward the player.
func (r *Renderer) drawRoad(s *core.Screen, pw, ph int, offset float64) {
	tile, err := r.catalog.Lookup("road")
	if err != nil || tile.Height() == 0 || tile.Width() == 0 {
		return
	}
	tw, th := tile.Width(), tile.Height()
	shift := int(offset) % th

	for y := range ph {
		row := ((y-shift)%th + th) % th
		for tx := range tw {
			ch := tile.At(tx, row)
			if ch == ' ' {
				continue
			}
			x := 0
			if tw > 1 {
				x = tx * (pw - 1) / (tw - 1)
			}
			s.SetColor(x, y, ch, tile.Color)
		}
	}
}

// drawSprite scales a sprite onto the target cells with nearest-neighbour
// sampling. Space runes are transparent.
func (r *Renderer) drawSprite(s *core.Screen, name string, dst core.Rect, ph int) {
	sp, err := r.catalog.Lookup(name)
	if err != nil || sp.Width() == 0 || dst.W <= 0 || dst.H <= 0 {
		return
	}

	for dy := range dst.H {
		y := dst.Y + dy
		if y < 0 || y >= ph {
			continue
		}
		srcY := dy * sp.Height() / dst.H
		for dx := range dst.W {
			ch := sp.At(dx*sp.Width()/dst.W, srcY)
			if ch == ' ' {
				continue
			}
			s.SetColor(dst.X+dx, y, ch, sp.Color)
		}
	}
}

// drawGameOver draws the boxed game-over message with the restart control.
func drawGameOver(s *core.Screen, pw, ph int) {
	btn := restartButtonRect(pw, ph)
	boxW := core.Max(len(restartText), len(gameOverText)) + 4
	box := core.NewRect((pw-boxW)/2, btn.Y-2, boxW, 4)

	s.DrawRect(box, ' ', core.ColorDefault)
	s.DrawBox(box, core.ColorWhite)
	s.DrawText((pw-len(gameOverText))/2, btn.Y-1, gameOverText, core.ColorRed)
	s.DrawText(btn.X, btn.Y, restartText, core.ColorBrightYellow)
}
