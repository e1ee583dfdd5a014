// Package assets loads tile and player glyphs from YAML tileset files.
package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-adventure/internal/core"
	"github.com/vovakirdan/tui-adventure/internal/entity"
	"github.com/vovakirdan/tui-adventure/internal/world"
)

//go:embed defaults/tileset.yaml
var defaultTilesetYAML []byte

// EmbeddedPath names the built-in tileset in errors and logs.
const EmbeddedPath = "embedded:tileset.yaml"

// AssetLoadError reports a tileset that could not be read, parsed or
// is incomplete.
type AssetLoadError struct {
	Path string
	Err  error
}

func (e *AssetLoadError) Error() string {
	return fmt.Sprintf("assets: load %s: %v", e.Path, e.Err)
}

func (e *AssetLoadError) Unwrap() error {
	return e.Err
}

// Pack is a loaded tileset with player sprites.
type Pack struct {
	Tiles   *world.Tileset
	Sprites entity.Sprites
	Path    string
}

type glyphSpec struct {
	Rune  string `yaml:"rune"`
	Color string `yaml:"color"`
}

type playerSpec struct {
	Color string   `yaml:"color"`
	Up    []string `yaml:"up"`
	Down  []string `yaml:"down"`
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
}

type tilesetFile struct {
	Tiles  map[string]glyphSpec `yaml:"tiles"`
	Player playerSpec           `yaml:"player"`
}

// LoadFile reads a tileset from disk. An empty path loads the embedded default.
func LoadFile(path string) (*Pack, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &AssetLoadError{Path: path, Err: err}
	}
	return Parse(data, path)
}

// Default returns the embedded tileset.
func Default() (*Pack, error) {
	return Parse(defaultTilesetYAML, EmbeddedPath)
}

// Parse decodes tileset YAML. Tiles may be omitted; player sprites are
// required for all four directions.
func Parse(data []byte, path string) (*Pack, error) {
	var f tilesetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, &AssetLoadError{Path: path, Err: err}
	}

	pack := &Pack{Tiles: world.NewTileset(), Path: path}

	for name, spec := range f.Tiles {
		t, err := world.ParseTileType(name)
		if err != nil {
			return nil, &AssetLoadError{Path: path, Err: err}
		}
		g, err := spec.glyph()
		if err != nil {
			return nil, &AssetLoadError{Path: path, Err: fmt.Errorf("tile %s: %w", name, err)}
		}
		pack.Tiles.Define(t, g)
	}

	if err := f.Player.sprites(&pack.Sprites); err != nil {
		return nil, &AssetLoadError{Path: path, Err: err}
	}
	return pack, nil
}

func (s glyphSpec) glyph() (core.Glyph, error) {
	r, err := singleRune(s.Rune)
	if err != nil {
		return core.Glyph{}, err
	}
	c, err := parseColor(s.Color)
	if err != nil {
		return core.Glyph{}, err
	}
	return core.Glyph{Rune: r, Color: c}, nil
}

func (p playerSpec) sprites(dst *entity.Sprites) error {
	c, err := parseColor(p.Color)
	if err != nil {
		return fmt.Errorf("player: %w", err)
	}

	frames := map[core.Direction][]string{
		core.DirUp:    p.Up,
		core.DirDown:  p.Down,
		core.DirLeft:  p.Left,
		core.DirRight: p.Right,
	}
	for _, d := range core.Directions {
		fs := frames[d]
		if len(fs) != 2 {
			return fmt.Errorf("player %s: need 2 frames, got %d", d, len(fs))
		}
		var g [2]core.Glyph
		for i, f := range fs {
			r, err := singleRune(f)
			if err != nil {
				return fmt.Errorf("player %s frame %d: %w", d, i+1, err)
			}
			g[i] = core.Glyph{Rune: r, Color: c}
		}
		dst.Set(d, g[0], g[1])
	}
	return nil
}

func singleRune(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("rune %q must be exactly one character", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return 0, errors.New("invalid UTF-8 rune")
	}
	return r, nil
}

func parseColor(name string) (core.Color, error) {
	if name == "" {
		return core.ColorDefault, nil
	}
	c, ok := core.ParseColor(name)
	if !ok {
		return 0, fmt.Errorf("unknown color %q", name)
	}
	return c, nil
}
