package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/zolyx/internal/sim"
)

const (
	panelWidth      = 300
	panelMaxEntries = 60
	panelLineHeight = 14
)

// EventPanel is a ring buffer of recent simulation events rendered beside
// the field.
type EventPanel struct {
	entries []sim.SimLogEntry
	head    int
	count   int
}

// NewEventPanel creates a panel with a fixed capacity.
func NewEventPanel() *EventPanel {
	return &EventPanel{entries: make([]sim.SimLogEntry, panelMaxEntries)}
}

// Add appends entries, dropping the oldest when full. Per-tick movement
// entries are skipped.
func (ep *EventPanel) Add(events []sim.SimLogEntry) {
	for _, e := range events {
		if e.Category == "move" {
			continue
		}
		ep.entries[ep.head] = e
		ep.head = (ep.head + 1) % panelMaxEntries
		if ep.count < panelMaxEntries {
			ep.count++
		}
	}
}

// Reset empties the panel.
func (ep *EventPanel) Reset() { ep.head, ep.count = 0, 0 }

// Recent returns entries in chronological order (oldest first).
func (ep *EventPanel) Recent() []sim.SimLogEntry {
	out := make([]sim.SimLogEntry, ep.count)
	for i := 0; i < ep.count; i++ {
		out[i] = ep.entries[(ep.head-ep.count+i+panelMaxEntries)%panelMaxEntries]
	}
	return out
}

var categoryColors = map[string]color.RGBA{
	"fill":      {R: 80, G: 200, B: 80, A: 255},
	"spark":     {R: 230, G: 220, B: 60, A: 255},
	"death":     {R: 220, G: 60, B: 60, A: 255},
	"collision": {R: 220, G: 60, B: 60, A: 255},
	"level":     {R: 80, G: 200, B: 230, A: 255},
	"cursor":    {R: 210, G: 80, B: 210, A: 255},
}

// Draw renders the panel at panelX, newest entry at the bottom.
func (ep *EventPanel) Draw(screen *ebiten.Image, panelX, panelH int) {
	vector.FillRect(screen, float32(panelX), 0, panelWidth, float32(panelH), color.RGBA{R: 10, G: 10, B: 14, A: 255}, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1, color.RGBA{R: 60, G: 60, B: 80, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "EVENTS", panelX+8, 2)

	entries := ep.Recent()
	maxVisible := (panelH - 24) / panelLineHeight
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}
	y := 20
	for _, e := range entries {
		dot, ok := categoryColors[e.Category]
		if !ok {
			dot = color.RGBA{R: 140, G: 140, B: 140, A: 255}
		}
		vector.FillRect(screen, float32(panelX+5), float32(y+5), 3, 5, dot, false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%4d %-3s %s %s", e.Tick, e.Entity, e.Key, e.Value), panelX+12, y)
		y += panelLineHeight
	}
}
