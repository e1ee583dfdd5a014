package tui

import (
	"regexp"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-adventure/internal/core"
)

var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.SetGlyph(0, 0, core.Glyph{Rune: '~', Color: core.ColorBlue})
	s.SetGlyph(1, 0, core.Glyph{Rune: '~', Color: core.ColorBlue})
	s.SetGlyph(2, 0, core.Glyph{Rune: ',', Color: core.ColorGreen})
	s.SetGlyph(3, 0, core.Glyph{Rune: '♣', Color: core.ColorDarkGreen})
	s.DrawText(0, 1, "sand")

	out := ansiEscape.ReplaceAllString(RenderScreen(s), "")
	lines := strings.Split(out, "\n")

	if len(lines) != 2 {
		t.Fatalf("got %d lines, expected 2", len(lines))
	}
	if lines[0] != "~~,♣  " {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "sand  " {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestEveryColorHasStyle(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorDarkGreen; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("color %d has no style", c)
		}
	}
}
