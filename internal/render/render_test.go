package render

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/Garsondee/zolyx/internal/sim"
)

func TestFieldColor_UsesPaperBits(t *testing.T) {
	// 0x70 -> paper 6 (yellow), 0x58 -> paper 3 (magenta).
	if FieldColor(0) != Bright[6] {
		t.Errorf("level 1 colour = %v, want yellow", FieldColor(0))
	}
	if FieldColor(2) != Bright[3] {
		t.Errorf("level 3 colour = %v, want magenta", FieldColor(2))
	}
	if FieldColor(16) != FieldColor(0) {
		t.Error("level table does not wrap at 16")
	}
}

func TestTimerColor(t *testing.T) {
	if TimerColor(TimerLowThreshold) != TimerOK {
		t.Error("timer at threshold should still be green")
	}
	if TimerColor(TimerLowThreshold-1) != TimerLow {
		t.Error("timer below threshold should be red")
	}
}

func TestASCII_FreshLevel(t *testing.T) {
	s := sim.New(sim.WithSeed(1))
	out := ASCII(s)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != ViewH+1 {
		t.Fatalf("got %d lines, want %d", len(lines), ViewH+1)
	}
	if !strings.HasPrefix(lines[0], "LEVEL 01  LIVES 3") {
		t.Fatalf("status line = %q", lines[0])
	}
	// Top border row: player at the left corner.
	top := lines[1+sim.FieldMinY-ViewY0]
	if top[sim.FieldMinX-ViewX0] != 'P' {
		t.Fatalf("player glyph missing from %q", top)
	}
	if strings.Count(top, "#")+strings.Count(top, "C")+1 != sim.FieldMaxX-sim.FieldMinX+1 {
		t.Fatalf("top border row malformed: %q", top)
	}
}

func TestWritePNG_Decodes(t *testing.T) {
	s := sim.New(sim.WithSeed(1))
	var buf bytes.Buffer
	if err := WritePNG(&buf, s, 2); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != ViewW*2 || b.Dy() != (ViewH+HUDRows)*2 {
		t.Fatalf("size = %dx%d", b.Dx(), b.Dy())
	}
	// Border corner is ink.
	r, g, bl, _ := img.At((sim.FieldMaxX-ViewX0)*2, (sim.FieldMaxY-ViewY0)*2).RGBA()
	if r != 0 || g != 0 || bl != 0 {
		t.Fatalf("border pixel = %d,%d,%d, want black", r, g, bl)
	}
}

func TestPixels_MarksEntities(t *testing.T) {
	s := sim.New(sim.WithSeed(1))
	px := Pixels(s)
	if len(px) != ViewW*ViewH {
		t.Fatalf("len = %d", len(px))
	}
	p := s.Player()
	if got := px[(p.Y-ViewY0)*ViewW+(p.X-ViewX0)]; got != PlayerColor {
		t.Fatalf("player cell = %v", got)
	}
	if got := px[(40-ViewY0)*ViewW+(sim.FieldMinX+1-ViewX0)]; got != FieldColor(0) {
		t.Fatalf("open cell = %v, want field colour", got)
	}
}
