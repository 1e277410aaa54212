package sim

// Read accessors for hosts. Slices returned here alias live state and must
// not be modified.

// Grid returns the playfield.
func (s *Sim) Grid() *Grid { return &s.grid }

// Player returns a copy of the player.
func (s *Sim) Player() Player { return s.player }

// Chasers returns every chaser slot, active or not.
func (s *Sim) Chasers() []Chaser { return s.chasers[:] }

// Sparks returns every spark slot, active or not.
func (s *Sim) Sparks() []Spark { return s.sparks[:] }

// Cursor returns the trail cursor.
func (s *Sim) Cursor() TrailCursor { return s.cursor }

// Trail returns the trail drawn so far, oldest first.
func (s *Sim) Trail() []TrailEntry { return s.trail }

// TrailFrames is the number of ticks spent drawing the current trail.
func (s *Sim) TrailFrames() int { return s.trailFrames }

func (s *Sim) Timer() int         { return s.timer }
func (s *Sim) Lives() int         { return s.lives }
func (s *Sim) Level() int         { return s.level }
func (s *Sim) Score() int         { return s.score }
func (s *Sim) Frame() int         { return s.frame }
func (s *Sim) Percentage() int    { return s.percentage }
func (s *Sim) RawPercentage() int { return s.rawPercentage }
func (s *Sim) Paused() bool       { return s.paused }
func (s *Sim) GameOverFrame() int { return s.gameOverFrame }
func (s *Sim) Log() *SimLog       { return s.log }

// OutOfTime reports whether the last death was caused by the timer.
func (s *Sim) OutOfTime() bool { return s.outOfTime }

// GameOver reports whether the game has ended.
func (s *Sim) GameOver() bool { return s.mode == ModeGameOver }

// Mode returns the current run mode. Paused overrides everything else.
func (s *Sim) Mode() Mode {
	if s.paused {
		return ModePaused
	}
	return s.mode
}

// LevelComplete returns the level-complete sequence state and whether it is
// running.
func (s *Sim) LevelComplete() (LevelComplete, bool) {
	return s.complete, s.mode == ModeLevelComplete
}

// DeathPause is the number of frozen ticks left after losing a life.
func (s *Sim) DeathPause() int { return s.deathPause }
