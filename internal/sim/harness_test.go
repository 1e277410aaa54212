package sim

import "testing"

func TestScript_PlaysStepsInOrder(t *testing.T) {
	sc := NewScript(Step{InputRight, 2}, Step{InputDown, 1})
	want := []Input{InputRight, InputRight, InputDown, InputNone, InputNone}
	for i, w := range want {
		if got := sc.Next(nil); got != w {
			t.Fatalf("step %d = %s, want %s", i, got, w)
		}
	}
	if !sc.Done() {
		t.Fatal("script not done")
	}
}

func TestRunUntil_StopsOnPredicate(t *testing.T) {
	s := New(WithSeed(1))
	quiet(s)
	n := RunUntil(s, Hold(InputRight), func(s *Sim) bool { return s.Player().X == 12 }, 100)
	if n != 10 {
		t.Fatalf("ran %d ticks, want 10", n)
	}
}

func TestRandomWalk_ProducesFills(t *testing.T) {
	fills := 0
	for seed := int64(1); seed <= 5; seed++ {
		s := New(WithSeed(seed))
		Run(s, NewRandomWalk(seed, 0.7), 4000)
		fills += s.Log().CountCategory("fill", "closed")
	}
	if fills == 0 {
		t.Fatal("autopilot never closed a trail")
	}
}
