package sim

import "testing"

func TestNew_FreshLevel(t *testing.T) {
	s := New(WithSeed(7))

	if s.Level() != 0 || s.Score() != 0 || s.Lives() != InitialLives {
		t.Fatalf("level=%d score=%d lives=%d", s.Level(), s.Score(), s.Lives())
	}
	if s.Timer() != InitialTimer {
		t.Fatalf("timer = %d, want %d", s.Timer(), InitialTimer)
	}
	if s.Percentage() != 0 || s.RawPercentage() != 0 {
		t.Fatalf("percentages = %d/%d, want 0/0", s.Percentage(), s.RawPercentage())
	}
	if s.Grid().CountNonEmpty() != BorderCellCount || s.Grid().Count(CellBorder) != BorderCellCount {
		t.Fatal("fresh grid is not just the border")
	}
	if s.Mode() != ModePlaying {
		t.Fatalf("mode = %s, want playing", s.Mode())
	}
	p := s.Player()
	if p.X != FieldMinX || p.Y != FieldMinY || p.Dir != DirRight || p.Drawing {
		t.Fatalf("player = %+v", p)
	}
}

func TestInitLevel_ActivationMasks(t *testing.T) {
	for level := 0; level < 20; level++ {
		s := New(WithSeed(int64(level)), WithLevel(level))
		sm, cm := SparkMask(level), ChaserMask(level)

		for i, sp := range s.Sparks() {
			want := sm&(0x80>>uint(i)) != 0
			if sp.Active != want {
				t.Fatalf("level %d spark %d active=%v, want %v", level, i, sp.Active, want)
			}
			if sp.Dir.Cardinal() {
				t.Fatalf("level %d spark %d has cardinal heading %s", level, i, sp.Dir)
			}
			if !sp.Active {
				if sp.X != 0 || sp.Y != 0 {
					t.Fatalf("level %d inactive spark %d at (%d,%d)", level, i, sp.X, sp.Y)
				}
				continue
			}
			base := sparkBases[i]
			if sp.X < base.x || sp.X > base.x+7 || sp.Y < base.y || sp.Y > base.y+14 || (sp.Y-base.y)%2 != 0 {
				t.Fatalf("level %d spark %d at (%d,%d) outside its spawn box", level, i, sp.X, sp.Y)
			}
		}
		for i, c := range s.Chasers() {
			want := cm&(0x80>>uint(i)) != 0
			if c.Active != want {
				t.Fatalf("level %d chaser %d active=%v, want %v", level, i, c.Active, want)
			}
			if c.X != chaserSpawns[i].x || c.Y != chaserSpawns[i].y || c.Dir != chaserSpawns[i].dir || c.WallSide != 0 {
				t.Fatalf("level %d chaser %d = %+v", level, i, c)
			}
		}
	}
}

func TestSim_SameSeedSameGame(t *testing.T) {
	a := New(WithSeed(99))
	b := New(WithSeed(99))
	wa := NewRandomWalk(5, 0.5)
	wb := NewRandomWalk(5, 0.5)
	for i := 0; i < 3000; i++ {
		a.Tick(wa.Next(a))
		b.Tick(wb.Next(b))
	}
	if a.Score() != b.Score() || a.Lives() != b.Lives() || a.Frame() != b.Frame() || *a.Grid() != *b.Grid() {
		t.Fatalf("runs diverged: %s vs %s", a.Log().Summary(a), b.Log().Summary(b))
	}
}

func TestSim_DisplayScoreInvariant(t *testing.T) {
	s := New(WithSeed(3))
	walk := NewRandomWalk(11, 0.6)
	for i := 0; i < 5000; i++ {
		s.Tick(walk.Next(s))
		want := s.Score() + (s.RawPercentage()+s.Percentage())*4
		if got := s.DisplayScore(); got != want {
			t.Fatalf("tick %d: display score %d, want %d", i, got, want)
		}
		if s.GameOver() {
			s.Restart()
		}
	}
}

func TestSim_TimerExpiryKillsAndKeepsTerritory(t *testing.T) {
	s := New(WithSeed(1))
	quiet(s)

	// Claim a pocket and leave a stray trail cell behind.
	for x := 3; x <= 10; x++ {
		s.grid.Set(x, 19, CellClaimed)
	}
	s.grid.Set(40, 40, CellTrail)
	s.timer = 1
	s.timerSub = 1

	s.Tick(InputNone)

	if !s.OutOfTime() {
		t.Fatal("out-of-time flag not set")
	}
	if s.Lives() != InitialLives-1 {
		t.Fatalf("lives = %d, want %d", s.Lives(), InitialLives-1)
	}
	if s.Grid().At(5, 19) != CellClaimed {
		t.Fatal("claimed territory lost on death")
	}
	if s.Grid().At(40, 40) != CellEmpty {
		t.Fatal("trail cell survived death")
	}
	if s.Mode() != ModeDeathPause {
		t.Fatalf("mode = %s, want death_pause", s.Mode())
	}
	if s.Timer() != 0 {
		t.Fatalf("timer = %d, want 0 after out-of-time death", s.Timer())
	}
	if !s.Log().HasEntry("death", "out_of_time", "lives=2") {
		t.Fatalf("missing death event\n%s", s.Log().Format())
	}
}

func TestSim_TimerRefillOptIn(t *testing.T) {
	s := New(WithSeed(1), WithTimerRefill(true))
	quiet(s)
	s.timer = 1
	s.timerSub = 1
	s.Tick(InputNone)
	if s.Timer() != InitialTimer {
		t.Fatalf("timer = %d, want refilled %d", s.Timer(), InitialTimer)
	}
}

func TestSim_EmptyTimerKeepsKilling(t *testing.T) {
	s := New(WithSeed(1))
	quiet(s)
	s.timer = 1
	s.timerSub = 1

	n := RunUntil(s, Hold(InputNone), (*Sim).GameOver, 200)
	if !s.GameOver() {
		t.Fatalf("game still running after %d ticks with an empty timer\n%s", n, s.Log().Format())
	}
	if got := s.Log().CountCategory("death", "out_of_time"); got != InitialLives {
		t.Fatalf("out-of-time deaths = %d, want %d", got, InitialLives)
	}
}

func TestSim_DeathPauseFreezes(t *testing.T) {
	s := New(WithSeed(1))
	quiet(s)
	s.timer, s.timerSub = 1, 1
	s.Tick(InputNone)
	frame := s.Frame()

	for i := 0; i < deathPauseTicks; i++ {
		if s.Mode() != ModeDeathPause {
			t.Fatalf("pause ended after %d ticks", i)
		}
		s.Tick(InputRight)
	}
	if s.Frame() != frame {
		t.Fatal("frames advanced during the death pause")
	}
	if s.Mode() != ModePlaying {
		t.Fatalf("mode = %s after pause, want playing", s.Mode())
	}
	s.Tick(InputRight)
	if s.Player().X != FieldMinX+1 {
		t.Fatal("player did not move after the pause")
	}
}

func TestSim_ChaserContactCostsLife(t *testing.T) {
	s := New(WithSeed(1))
	quiet(s)
	s.chasers[0] = Chaser{X: FieldMinX + 3, Y: FieldMinY, Dir: DirLeft, Active: true}

	s.Tick(InputRight)

	if s.Lives() != InitialLives-1 {
		t.Fatalf("lives = %d, want %d", s.Lives(), InitialLives-1)
	}
	if s.OutOfTime() {
		t.Fatal("collision death flagged as out of time")
	}
	p := s.Player()
	if p.X != FieldMinX || p.Y != FieldMinY {
		t.Fatalf("player not reset: (%d,%d)", p.X, p.Y)
	}
	if s.Log().CountCategory("collision", "proximity") != 1 {
		t.Fatalf("expected one proximity collision\n%s", s.Log().Format())
	}
}

func TestSim_LastLifeEndsGame(t *testing.T) {
	s := New(WithSeed(1), WithLives(1))
	quiet(s)
	s.timer, s.timerSub = 1, 1
	s.Tick(InputNone)

	if !s.GameOver() || s.Mode() != ModeGameOver {
		t.Fatalf("mode = %s, want game_over", s.Mode())
	}
	if s.Lives() != 0 {
		t.Fatalf("lives = %d, want 0", s.Lives())
	}
	frame := s.Frame()
	for i := 0; i < 10; i++ {
		s.Tick(InputRight)
	}
	if s.GameOverFrame() != 10 {
		t.Fatalf("game over frame = %d, want 10", s.GameOverFrame())
	}
	if s.Frame() != frame {
		t.Fatal("simulation ran after game over")
	}

	if !s.Restart() {
		t.Fatal("restart refused after game over")
	}
	if s.Lives() != 1 || s.Mode() != ModePlaying || s.Score() != 0 {
		t.Fatalf("restart: lives=%d mode=%s score=%d", s.Lives(), s.Mode(), s.Score())
	}
}

func TestSim_RestartIgnoredWhilePlaying(t *testing.T) {
	s := New(WithSeed(1))
	s.Tick(InputRight)
	if s.Restart() {
		t.Fatal("restart accepted mid-game")
	}
}

func TestSim_PauseIsNoop(t *testing.T) {
	s := New(WithSeed(1))
	quiet(s)
	s.TogglePause()
	for i := 0; i < 5; i++ {
		s.Tick(InputRight)
	}
	if s.Mode() != ModePaused || s.Frame() != 0 || s.Player().X != FieldMinX {
		t.Fatal("paused sim advanced")
	}
	s.SetPaused(false)
	s.Tick(InputRight)
	if s.Player().X != FieldMinX+1 {
		t.Fatal("sim did not resume")
	}
}

func TestSim_SparkKillScores(t *testing.T) {
	s := New(WithSeed(1))
	quiet(s)
	s.grid.Set(41, 41, CellClaimed)
	s.sparks[0] = Spark{X: 40, Y: 40, Dir: DirDownRight, Active: true}

	s.Tick(InputNone)

	if s.Score() != SparkKillPoints {
		t.Fatalf("score = %d, want %d", s.Score(), SparkKillPoints)
	}
	if s.Sparks()[0].Active {
		t.Fatal("spark survived")
	}
	if s.Lives() != InitialLives {
		t.Fatal("spark kill cost a life")
	}
}

func TestSim_SparkOnTrailKillsPlayer(t *testing.T) {
	s := New(WithSeed(1))
	quiet(s)
	s.Tick(InputRight)
	s.Tick(InputDown | InputFire) // trail at (3,19)
	s.sparks[0] = Spark{X: 3, Y: 19, Dir: DirDownRight, Active: true}

	s.Tick(InputDown | InputFire)

	if s.Lives() != InitialLives-1 {
		t.Fatalf("lives = %d, want %d", s.Lives(), InitialLives-1)
	}
	if s.Score() != SparkKillPoints {
		t.Fatalf("score = %d, want %d", s.Score(), SparkKillPoints)
	}
	if s.Grid().Count(CellTrail) != 0 || len(s.Trail()) != 0 {
		t.Fatal("trail survived the death")
	}
}

// claimAlmostAll fills the field so the next percentage update wins.
func claimAlmostAll(s *Sim) {
	for y := FieldMinY + 1; y < 80; y++ {
		for x := FieldMinX + 1; x < FieldMaxX; x++ {
			s.grid.Set(x, y, CellClaimed)
		}
	}
}

func TestSim_LevelCompleteSequence(t *testing.T) {
	s := New(WithSeed(1))
	quiet(s)
	claimAlmostAll(s)
	s.timer = 10

	s.Tick(InputNone)

	lc, active := s.LevelComplete()
	if !active || s.Mode() != ModeLevelComplete || lc.Phase != PhaseRainbow {
		t.Fatalf("mode=%s phase=%s", s.Mode(), lc.Phase)
	}
	if s.Percentage() != 0 || s.RawPercentage() != 0 {
		t.Fatal("percentages not committed")
	}
	scoreAfterBonus := s.Score()
	if scoreAfterBonus == 0 {
		t.Fatal("no bonus committed")
	}
	timer := s.Timer()

	for i := 0; i < rainbowTicks; i++ {
		s.Tick(InputNone)
	}
	if lc, _ = s.LevelComplete(); lc.Phase != PhaseCountdown {
		t.Fatalf("phase = %s after rainbow, want countdown", lc.Phase)
	}

	for i := 0; i < timer*countdownTickRate; i++ {
		s.Tick(InputNone)
	}
	if s.Timer() != 0 {
		t.Fatalf("timer = %d after countdown, want 0", s.Timer())
	}
	if s.Score() != scoreAfterBonus+timer {
		t.Fatalf("score = %d, want %d", s.Score(), scoreAfterBonus+timer)
	}

	s.Tick(InputNone)
	if lc, _ = s.LevelComplete(); lc.Phase != PhasePause {
		t.Fatalf("phase = %s, want pause", lc.Phase)
	}
	for i := 0; i < completePauseTicks; i++ {
		s.Tick(InputNone)
	}
	if lc, _ = s.LevelComplete(); lc.Phase != PhaseAdvance {
		t.Fatalf("phase = %s, want advance", lc.Phase)
	}
	s.Tick(InputNone)

	if s.Level() != 1 {
		t.Fatalf("level = %d, want 1", s.Level())
	}
	if _, active := s.LevelComplete(); active || s.Mode() != ModePlaying {
		t.Fatalf("mode = %s after advance", s.Mode())
	}
	if s.Grid().Count(CellClaimed) != 0 || s.Timer() != InitialTimer {
		t.Fatal("next level not reinitialised")
	}
	if s.Score() != scoreAfterBonus+timer {
		t.Fatal("score changed on level advance")
	}
	if !s.Log().HasEntry("level", "advance", "level=2") {
		t.Fatalf("missing advance event\n%s", s.Log().Format())
	}
}

func TestSim_TimerCountsDown(t *testing.T) {
	s := New(WithSeed(1))
	quiet(s)
	for i := 0; i < TimerSpeed*3; i++ {
		s.Tick(InputNone)
	}
	if s.Timer() != InitialTimer-3 {
		t.Fatalf("timer = %d, want %d", s.Timer(), InitialTimer-3)
	}
}
