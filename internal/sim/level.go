package sim

import "fmt"

// InitGame resets score, lives and level and starts the first level.
func (s *Sim) InitGame() {
	s.level = s.startLevel
	s.score = 0
	s.lives = s.startLives
	s.outOfTime = false
	s.gameOverFrame = 0
	s.log.Add(0, "--", "game", "start",
		fmt.Sprintf("level=%d lives=%d", s.level+1, s.lives), float64(s.lives))
	s.InitLevel()
}

// InitLevel sets up the current level: fresh grid, timer, player and the
// level's chasers and sparks. Score and lives carry over.
func (s *Sim) InitLevel() {
	s.timer = InitialTimer
	s.timerSub = TimerSpeed
	s.frame = 0
	s.trailFrames = 0
	s.won = false
	s.collision = false
	s.timerExpired = false
	s.deathPause = 0
	s.complete = LevelComplete{}
	s.mode = ModePlaying

	s.grid.Reset()
	s.player.resetToStart()
	s.trail = s.trail[:0]
	s.cursor = TrailCursor{}

	s.initSparks()
	s.initChasers()
	s.updatePercentage()

	s.log.Add(0, "--", "level", "init",
		fmt.Sprintf("level=%d sparks=%08b chasers=%02b", s.level+1, SparkMask(s.level), ChaserMask(s.level)>>6),
		float64(s.level))
}

// initSparks places the level's sparks near their anchors with a random
// offset and a random diagonal heading. Inactive slots sit at the origin.
func (s *Sim) initSparks() {
	mask := SparkMask(s.level)
	for i := range s.sparks {
		dir := Dir((s.rand()&3)*2 + 1)
		sp := Spark{Dir: dir}
		if mask&(0x80>>uint(i)) != 0 {
			sp.Active = true
			sp.X = sparkBases[i].x + (s.rand() & 7)
			sp.Y = sparkBases[i].y + (s.rand()&7)*2
		}
		s.sparks[i] = sp
	}
}

// initChasers spawns the level's chasers at their fixed wall positions.
func (s *Sim) initChasers() {
	mask := ChaserMask(s.level)
	for i := range s.chasers {
		spawn := chaserSpawns[i]
		s.chasers[i] = Chaser{
			X:      spawn.x,
			Y:      spawn.y,
			Dir:    spawn.dir,
			Active: mask&(0x80>>uint(i)) != 0,
		}
	}
}

// rand returns a byte-sized random value.
func (s *Sim) rand() int {
	return s.rng.Intn(256)
}
