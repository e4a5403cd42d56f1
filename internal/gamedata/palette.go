package gamedata

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// GlyphDef defines how one cell code is drawn.
type GlyphDef struct {
	Code  int    `json:"code"`  // Cell code the glyph applies to
	Name  string `json:"name"`  // Cell name (e.g., "wall")
	Glyph string `json:"glyph"` // Single character for terminal rendering
	Text  string `json:"text"`  // Two-character form for plain text output
	Color string `json:"color"` // Hex color code (e.g., "#505050")
}

// GlyphRune returns the glyph as a rune for rendering.
func (g *GlyphDef) GlyphRune() rune {
	for _, r := range g.Glyph {
		return r
	}
	return '?'
}

// TCellColor returns the color as a tcell.Color.
func (g *GlyphDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(g.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// PaletteFile represents the structure of palette.json.
type PaletteFile struct {
	Glyphs []GlyphDef `json:"glyphs"`
}

// Palette maps cell codes to their glyphs.
type Palette struct {
	byCode map[int]*GlyphDef
}

// NewPalette creates a palette from glyph definitions. Later duplicates of a
// code are rejected.
func NewPalette(glyphs []GlyphDef) (*Palette, error) {
	p := &Palette{
		byCode: make(map[int]*GlyphDef, len(glyphs)),
	}
	for i := range glyphs {
		if _, dup := p.byCode[glyphs[i].Code]; dup {
			return nil, fmt.Errorf("duplicate glyph for code %d", glyphs[i].Code)
		}
		p.byCode[glyphs[i].Code] = &glyphs[i]
	}
	return p, nil
}

// LoadPalette loads the palette from the embedded palette.json.
func LoadPalette() (*Palette, error) {
	file, err := Load[PaletteFile]("palette.json")
	if err != nil {
		return nil, err
	}
	if len(file.Glyphs) == 0 {
		return nil, errors.New("no glyphs loaded from palette.json")
	}
	return NewPalette(file.Glyphs)
}

// MustLoadPalette loads the palette, panicking on error.
func MustLoadPalette() *Palette {
	p, err := LoadPalette()
	if err != nil {
		panic(err)
	}
	return p
}

// Get returns the glyph for a code, or nil if the code is not in the palette.
func (p *Palette) Get(code int) *GlyphDef {
	return p.byCode[code]
}
