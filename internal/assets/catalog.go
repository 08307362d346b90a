// Package assets resolves the game's sprite resources by logical name.
// Sprites are plain rune art described in a YAML manifest; the default
// manifest is embedded in the binary.
package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-traffic/internal/core"
)

//go:embed sprites.yaml
var defaultManifest []byte

// ErrUnknownSprite is returned when a sprite name is not in the catalog.
var ErrUnknownSprite = errors.New("assets: unknown sprite")

// RequiredSprites are the resources a round needs: the player car, three
// enemy cars and the road background.
var RequiredSprites = []string{"player", "enemy1", "enemy2", "enemy3", "road"}

// Sprite is a block of colored rune art.
type Sprite struct {
	Name  string
	Color core.Color
	Rows  [][]rune
}

// Width returns the sprite width in runes.
func (s Sprite) Width() int {
	if len(s.Rows) == 0 {
		return 0
	}
	return len(s.Rows[0])
}

// Height returns the sprite height in rows.
func (s Sprite) Height() int {
	return len(s.Rows)
}

// At returns the rune at (x, y), or space outside the art.
func (s Sprite) At(x, y int) rune {
	if y < 0 || y >= len(s.Rows) || x < 0 || x >= len(s.Rows[y]) {
		return ' '
	}
	return s.Rows[y][x]
}

// Catalog holds sprites by name.
type Catalog struct {
	sprites map[string]Sprite
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{sprites: make(map[string]Sprite)}
}

// Register adds a sprite. Names must be unique and rows must share a width.
func (c *Catalog) Register(s Sprite) error {
	if s.Name == "" {
		return errors.New("assets: sprite name is empty")
	}
	if _, exists := c.sprites[s.Name]; exists {
		return fmt.Errorf("assets: sprite %q already registered", s.Name)
	}
	if len(s.Rows) == 0 {
		return fmt.Errorf("assets: sprite %q has no rows", s.Name)
	}
	w := len(s.Rows[0])
	for i, row := range s.Rows {
		if len(row) != w || w == 0 {
			return fmt.Errorf("assets: sprite %q row %d is %d wide, expected %d", s.Name, i, len(row), w)
		}
	}

	c.sprites[s.Name] = s
	return nil
}

// Lookup returns the sprite with the given name.
func (c *Catalog) Lookup(name string) (Sprite, error) {
	s, ok := c.sprites[name]
	if !ok {
		return Sprite{}, fmt.Errorf("%w: %q", ErrUnknownSprite, name)
	}
	return s, nil
}

// Exists checks if a sprite with the given name is registered.
func (c *Catalog) Exists(name string) bool {
	_, ok := c.sprites[name]
	return ok
}

// Require checks that every named sprite is present.
func (c *Catalog) Require(names ...string) error {
	var missing []error
	for _, name := range names {
		if !c.Exists(name) {
			missing = append(missing, fmt.Errorf("%w: %q", ErrUnknownSprite, name))
		}
	}
	return errors.Join(missing...)
}

// List returns all sprites sorted by name.
func (c *Catalog) List() []Sprite {
	result := make([]Sprite, 0, len(c.sprites))
	for _, s := range c.sprites {
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

type manifest struct {
	Sprites map[string]spriteSpec `yaml:"sprites"`
}

type spriteSpec struct {
	Color string   `yaml:"color"`
	Rows  []string `yaml:"rows"`
}

// Parse builds a catalog from manifest YAML.
func Parse(data []byte) (*Catalog, error) {
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("assets: cannot parse manifest: %w", err)
	}

	c := NewCatalog()
	for name, spec := range m.Sprites {
		color := core.ColorDefault
		if spec.Color != "" {
			var ok bool
			if color, ok = core.ParseColor(spec.Color); !ok {
				return nil, fmt.Errorf("assets: sprite %q has unknown color %q", name, spec.Color)
			}
		}

		rows := make([][]rune, 0, len(spec.Rows))
		for _, row := range spec.Rows {
			if !utf8.ValidString(row) {
				return nil, fmt.Errorf("assets: sprite %q has invalid UTF-8", name)
			}
			rows = append(rows, []rune(row))
		}

		if err := c.Register(Sprite{Name: name, Color: color, Rows: rows}); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Load reads a manifest from path, or the embedded default when path is
// empty, and checks that every required sprite is present.
func Load(path string) (*Catalog, error) {
	data := defaultManifest
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("assets: failed to read manifest %s: %w", path, err)
		}
	}

	c, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if err := c.Require(RequiredSprites...); err != nil {
		return nil, err
	}
	return c, nil
}
