package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetColor(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColor(5, 5, '█', ColorRed)
	cell := s.GetCell(5, 5)
	if cell.Rune != '█' || cell.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red block", cell)
	}

	// Out of bounds writes are dropped
	s.SetColor(-1, 0, 'A', ColorRed)
	s.SetColor(0, 100, 'A', ColorRed)

	if s.GetCell(-1, 0) != blankCell {
		t.Error("Out of bounds GetCell should return a blank cell")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.DrawRect(NewRect(0, 0, 4, 4), '#', ColorGreen)
	s.Clear()

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if s.GetCell(x, y) != blankCell {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, s.GetCell(x, y))
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Score: 10", ColorWhite)

	if row := s.Row(1); !strings.HasPrefix(row, "  Score: 10") {
		t.Errorf("Row(1) = %q", row)
	}

	// Clipped at the right edge
	s.DrawText(18, 0, "Hello", ColorDefault)
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Game Over!", ColorRed)

	x := (20 - 10) / 2
	if s.Get(x, 2) != 'G' || s.GetCell(x, 2).Color != ColorRed {
		t.Errorf("DrawTextCentered: expected red 'G' at x=%d, got %+v", x, s.GetCell(x, 2))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorDefault)

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("corner at %v = %q, expected %q", pos, got, want)
		}
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("box edges not drawn")
	}
}

func TestScreenStringAndResize(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "AAA", ColorDefault)
	s.DrawText(0, 1, "BBB", ColorDefault)

	if got := s.String(); got != "AAA\nBBB" {
		t.Errorf("String() = %q", got)
	}

	s.Resize(5, 4)
	if s.Width() != 5 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 5x4, got %dx%d", s.Width(), s.Height())
	}
	if s.Row(0) != "     " {
		t.Errorf("Resize should clear the buffer, row 0 = %q", s.Row(0))
	}
	if s.Row(-1) != "     " {
		t.Errorf("Out of bounds row should be spaces, got %q", s.Row(-1))
	}
}

func TestInputFrame(t *testing.T) {
	f := HeldFrame(ActionLeft, ActionRight)
	if !f.Has(ActionLeft) || !f.Has(ActionRight) {
		t.Error("HeldFrame should hold both actions")
	}
	if f.Has(ActionRestart) {
		t.Error("HeldFrame should not hold unrelated actions")
	}
	f.Clear()
	if f.Has(ActionLeft) {
		t.Error("Clear should release actions")
	}

	var zero InputFrame
	if zero.Has(ActionLeft) {
		t.Error("zero frame should hold nothing")
	}
	zero.Set(ActionLeft)
	if !zero.Has(ActionLeft) {
		t.Error("Set on zero frame should work")
	}
}
