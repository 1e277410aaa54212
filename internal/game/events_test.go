package game

import (
	"testing"

	"github.com/Garsondee/zolyx/internal/sim"
)

func entry(tick int, category string) sim.SimLogEntry {
	return sim.SimLogEntry{Tick: tick, Entity: "P", Category: category, Key: "k"}
}

func TestEventPanel_SkipsMovement(t *testing.T) {
	ep := NewEventPanel()
	ep.Add([]sim.SimLogEntry{entry(1, "move"), entry(2, "fill"), entry(3, "move")})
	got := ep.Recent()
	if len(got) != 1 || got[0].Tick != 2 {
		t.Fatalf("Recent = %+v, want only the fill entry", got)
	}
}

func TestEventPanel_RingOrder(t *testing.T) {
	ep := NewEventPanel()
	for i := 0; i < panelMaxEntries+15; i++ {
		ep.Add([]sim.SimLogEntry{entry(i, "spark")})
	}
	got := ep.Recent()
	if len(got) != panelMaxEntries {
		t.Fatalf("len = %d, want %d", len(got), panelMaxEntries)
	}
	if got[0].Tick != 15 {
		t.Errorf("oldest tick = %d, want 15", got[0].Tick)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Tick != got[i-1].Tick+1 {
			t.Fatalf("entries out of order at %d: %d after %d", i, got[i].Tick, got[i-1].Tick)
		}
	}
}

func TestEventPanel_Reset(t *testing.T) {
	ep := NewEventPanel()
	ep.Add([]sim.SimLogEntry{entry(1, "fill")})
	ep.Reset()
	if n := len(ep.Recent()); n != 0 {
		t.Errorf("after Reset len = %d", n)
	}
}

func TestEventPanel_FedFromSim(t *testing.T) {
	s := sim.New(sim.WithSeed(3))
	ep := NewEventPanel()
	ep.Add(s.Log().Entries())
	if len(ep.Recent()) == 0 {
		t.Fatalf("a fresh game should log its start")
	}
	if !s.Log().HasEntry("level", "init", "") {
		t.Errorf("expected level/init entry")
	}
}
