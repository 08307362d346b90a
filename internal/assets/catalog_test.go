package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-traffic/internal/core"
)

func TestLoadEmbeddedManifest(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	for _, name := range RequiredSprites {
		s, err := c.Lookup(name)
		if err != nil {
			t.Errorf("Lookup(%q) failed: %v", name, err)
			continue
		}
		if s.Width() == 0 || s.Height() == 0 {
			t.Errorf("sprite %q is empty", name)
		}
	}

	player, _ := c.Lookup("player")
	if player.Color != core.ColorBrightCyan {
		t.Errorf("player color = %v", player.Color)
	}

	list := c.List()
	if len(list) != len(RequiredSprites) {
		t.Errorf("List() has %d sprites", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].Name >= list[i].Name {
			t.Error("List() should be sorted by name")
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	c := NewCatalog()
	if _, err := c.Lookup("truck"); !errors.Is(err, ErrUnknownSprite) {
		t.Errorf("Lookup(truck) = %v, expected ErrUnknownSprite", err)
	}
	if err := c.Require("player", "road"); !errors.Is(err, ErrUnknownSprite) {
		t.Errorf("Require() = %v, expected ErrUnknownSprite", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	c := NewCatalog()
	ok := Sprite{Name: "car", Rows: [][]rune{[]rune("ab"), []rune("cd")}}

	if err := c.Register(ok); err != nil {
		t.Fatalf("Register() failed: %v", err)
	}
	if err := c.Register(ok); err == nil {
		t.Error("duplicate Register() should fail")
	}
	if err := c.Register(Sprite{Name: "ragged", Rows: [][]rune{[]rune("ab"), []rune("c")}}); err == nil {
		t.Error("ragged rows should be rejected")
	}
	if err := c.Register(Sprite{Name: "blank"}); err == nil {
		t.Error("sprite without rows should be rejected")
	}
	if err := c.Register(Sprite{Rows: [][]rune{[]rune("x")}}); err == nil {
		t.Error("sprite without name should be rejected")
	}
}

func TestSpriteAt(t *testing.T) {
	s := Sprite{Name: "car", Rows: [][]rune{[]rune("▗▄▖"), []rune("█▄█")}}
	if s.At(1, 0) != '▄' || s.At(2, 1) != '█' {
		t.Error("At() returned wrong runes")
	}
	if s.At(3, 0) != ' ' || s.At(0, -1) != ' ' {
		t.Error("At() outside the art should be space")
	}
}

func TestLoadCustomManifest(t *testing.T) {
	dir := t.TempDir()

	partial := filepath.Join(dir, "partial.yaml")
	data := "sprites:\n  player:\n    color: red\n    rows: [\"A\"]\n"
	if err := os.WriteFile(partial, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(partial); !errors.Is(err, ErrUnknownSprite) {
		t.Errorf("Load(partial) = %v, expected missing sprites", err)
	}

	badColor := filepath.Join(dir, "color.yaml")
	data = "sprites:\n  player:\n    color: plaid\n    rows: [\"A\"]\n"
	if err := os.WriteFile(badColor, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(badColor); err == nil {
		t.Error("unknown color should be rejected")
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing manifest should fail")
	}
}
