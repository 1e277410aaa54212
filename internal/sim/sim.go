package sim

import (
	"fmt"
	"math/rand"
)

// Mode is the coarse run state of the simulation.
type Mode int

const (
	ModePlaying Mode = iota
	ModeDeathPause
	ModeLevelComplete
	ModeGameOver
	ModePaused // reported by Mode() only; pausing overlays the other modes
)

func (m Mode) String() string {
	switch m {
	case ModePlaying:
		return "playing"
	case ModeDeathPause:
		return "death_pause"
	case ModeLevelComplete:
		return "level_complete"
	case ModeGameOver:
		return "game_over"
	case ModePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// Phase is a step of the level-complete sequence.
type Phase int

const (
	PhaseRainbow Phase = iota
	PhaseCountdown
	PhasePause
	PhaseAdvance
)

func (p Phase) String() string {
	switch p {
	case PhaseRainbow:
		return "rainbow"
	case PhaseCountdown:
		return "countdown"
	case PhasePause:
		return "pause"
	case PhaseAdvance:
		return "advance"
	default:
		return "unknown"
	}
}

// LevelComplete is the state of the level-complete sequence.
type LevelComplete struct {
	Phase     Phase
	Frame     int // ticks spent in the current phase
	SubFrame  int // countdown pacing
	Remaining int // timer units still to convert into points
}

// Sim owns the entire game state. All mutation happens inside Tick and the
// Init* calls; everything else is a read accessor.
type Sim struct {
	grid        Grid
	player      Player
	trail       []TrailEntry
	trailFrames int
	cursor      TrailCursor
	chasers     [MaxChasers]Chaser
	sparks      [MaxSparks]Spark

	score         int
	lives         int
	level         int
	timer         int
	timerSub      int
	frame         int
	percentage    int
	rawPercentage int

	mode          Mode
	paused        bool
	outOfTime     bool
	gameOverFrame int
	deathPause    int
	complete      LevelComplete

	// per-tick signals
	won          bool
	collision    bool
	timerExpired bool

	rng *rand.Rand
	log *SimLog

	startLevel      int
	startLives      int
	refillOnTimeout bool
}

// Option configures a Sim before the first game is initialised.
type Option func(*Sim)

// WithSeed makes spark placement reproducible.
func WithSeed(seed int64) Option {
	return func(s *Sim) {
		s.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- gameplay randomness
	}
}

// WithLevel starts new games on the given level index.
func WithLevel(level int) Option {
	return func(s *Sim) {
		if level >= 0 {
			s.startLevel = level
		}
	}
}

// WithLives overrides the starting number of lives.
func WithLives(lives int) Option {
	return func(s *Sim) {
		if lives > 0 {
			s.startLives = lives
		}
	}
}

// WithLog replaces the event log, e.g. with a verbose one.
func WithLog(l *SimLog) Option {
	return func(s *Sim) {
		if l != nil {
			s.log = l
		}
	}
}

// WithVerboseLog records per-tick movement entries as well as events.
func WithVerboseLog(v bool) Option {
	return func(s *Sim) { s.log = NewSimLog(v) }
}

// WithTimerRefill controls whether an out-of-time death with lives left
// refills the level timer. It is off by default: the timer stays at zero and
// keeps expiring until the lives run out.
func WithTimerRefill(on bool) Option {
	return func(s *Sim) { s.refillOnTimeout = on }
}

// New builds a Sim and starts a fresh game.
func New(opts ...Option) *Sim {
	s := &Sim{
		rng:        rand.New(rand.NewSource(1)), // #nosec G404 -- gameplay randomness
		log:        NewSimLog(false),
		startLives: InitialLives,
	}
	for _, o := range opts {
		o(s)
	}
	s.InitGame()
	return s
}

// --- Tick ---

// Tick advances the simulation by one frame using the given input vector.
func (s *Sim) Tick(in Input) {
	if s.paused {
		return
	}
	switch s.mode {
	case ModeGameOver:
		s.gameOverFrame++
		return
	case ModeLevelComplete:
		s.tickLevelComplete()
		return
	case ModeDeathPause:
		s.deathPause--
		if s.deathPause <= 0 {
			s.deathPause = 0
			s.mode = ModePlaying
		}
		return
	}
	s.tickPlaying(in)
}

// tickPlaying is one normal frame. The order of the steps matters.
func (s *Sim) tickPlaying(in Input) {
	s.frame++

	s.movePlayer(in)

	if s.player.FillComplete {
		s.player.FillComplete = false
		s.completeFill()
	}

	if s.player.Drawing && TrailOccupied(&s.grid, s.sparks[:], s.chasers[:]) {
		s.flagCollision("trail", "enemy on trail")
	}

	for i := range s.chasers {
		StepChaser(&s.grid, &s.chasers[i])
	}
	for i := range s.sparks {
		s.stepSpark(i)
	}

	if AdvanceCursor(&s.cursor, s.trail) {
		s.log.Add(s.frame, "T", "cursor", "caught",
			fmt.Sprintf("index=%d trail=%d", s.cursor.Index, len(s.trail)), float64(len(s.trail)))
		s.flagCollision("cursor", "trail cursor caught the player")
	}

	if Proximity(s.player, s.chasers[:], s.cursor) {
		s.flagCollision("proximity", fmt.Sprintf("player at (%d,%d)", s.player.X, s.player.Y))
	}

	s.tickTimer()
	s.updatePercentage()

	s.log.AddVerbose(s.frame, "P", "move", "position",
		fmt.Sprintf("(%d,%d)", s.player.X, s.player.Y), 0)

	switch {
	case s.timerExpired:
		s.outOfTime = true
		s.die("out_of_time")
		s.timerExpired = false
	case s.collision:
		s.outOfTime = false
		s.die("collision")
		s.collision = false
	case s.won:
		s.startLevelComplete()
	}
}

func (s *Sim) stepSpark(i int) {
	sp := &s.sparks[i]
	x, y := sp.X, sp.Y
	switch StepSpark(&s.grid, sp) {
	case SparkKilled:
		s.score += SparkKillPoints
		s.log.Add(s.frame, sparkLabel(i), "spark", "killed",
			fmt.Sprintf("at (%d,%d) +%d", x, y, SparkKillPoints), SparkKillPoints)
	case SparkKilledOnTrail:
		s.score += SparkKillPoints
		s.log.Add(s.frame, sparkLabel(i), "spark", "on_trail",
			fmt.Sprintf("at (%d,%d)", x, y), SparkKillPoints)
		s.flagCollision("trail", fmt.Sprintf("spark %d on trail", i))
	}
}

func (s *Sim) flagCollision(key, detail string) {
	if !s.collision {
		s.log.Add(s.frame, "P", "collision", key, detail, 0)
	}
	s.collision = true
}

func (s *Sim) tickTimer() {
	s.timerSub--
	if s.timerSub > 0 {
		return
	}
	s.timerSub = TimerSpeed
	s.timer--
	if s.timer <= 0 {
		s.timer = 0
		s.timerExpired = true
	}
}

// completeFill runs the territory fill for the trail that just closed and
// clears all trail state.
func (s *Sim) completeFill() {
	if len(s.trail) == 0 {
		return
	}
	cells := len(s.trail)
	claimed := Fill(&s.grid, s.trail, s.player.Dir)
	s.trail = s.trail[:0]
	s.trailFrames = 0
	s.cursor = TrailCursor{}
	s.updatePercentage()
	s.log.Add(s.frame, "P", "fill", "closed",
		fmt.Sprintf("trail=%d claimed=%d filled=%d%%", cells, claimed, s.percentage), float64(claimed))
}

// --- Death ---

// die runs the death sequence. cause is logged.
func (s *Sim) die(cause string) {
	s.grid.ClearTrail()
	s.trail = s.trail[:0]
	s.trailFrames = 0
	s.cursor = TrailCursor{}
	s.player.Drawing = false
	s.player.FillComplete = false

	s.lives--
	s.log.Add(s.frame, "P", "death", cause, fmt.Sprintf("lives=%d", s.lives), float64(s.lives))
	if s.lives <= 0 {
		s.lives = 0
		s.mode = ModeGameOver
		s.gameOverFrame = 0
		s.log.Add(s.frame, "--", "game", "over",
			fmt.Sprintf("score=%d level=%d", s.score, s.level+1), float64(s.score))
		return
	}

	s.player.resetToStart()
	s.initChasers()
	s.initSparks()
	s.collision = false
	s.timerExpired = false
	if s.outOfTime && s.refillOnTimeout {
		s.timer = InitialTimer
		s.timerSub = TimerSpeed
	}
	s.deathPause = deathPauseTicks
	s.mode = ModeDeathPause
}

// --- Level complete ---

func (s *Sim) startLevelComplete() {
	s.score += progressBonus(s.rawPercentage, s.percentage)
	s.log.Add(s.frame, "--", "level", "complete",
		fmt.Sprintf("level=%d filled=%d%% timer=%d", s.level+1, s.percentage, s.timer), float64(s.percentage))
	s.rawPercentage, s.percentage = 0, 0
	s.complete = LevelComplete{Phase: PhaseRainbow, Remaining: s.timer}
	s.mode = ModeLevelComplete
}

func (s *Sim) tickLevelComplete() {
	lc := &s.complete
	lc.Frame++

	switch lc.Phase {
	case PhaseRainbow:
		if lc.Frame >= rainbowTicks {
			lc.Phase, lc.Frame, lc.SubFrame = PhaseCountdown, 0, 0
		}
	case PhaseCountdown:
		if lc.Remaining <= 0 {
			lc.Phase, lc.Frame = PhasePause, 0
			return
		}
		lc.SubFrame++
		if lc.SubFrame >= countdownTickRate {
			lc.SubFrame = 0
			lc.Remaining--
			s.timer--
			s.score++
		}
	case PhasePause:
		if lc.Frame >= completePauseTicks {
			lc.Phase = PhaseAdvance
		}
	case PhaseAdvance:
		s.level++
		s.log.Add(s.frame, "--", "level", "advance", fmt.Sprintf("level=%d", s.level+1), float64(s.level))
		s.InitLevel()
	}
}

// --- Host controls ---

// SetPaused freezes or resumes the simulation.
func (s *Sim) SetPaused(p bool) { s.paused = p }

// TogglePause flips the paused flag.
func (s *Sim) TogglePause() { s.paused = !s.paused }

// Restart starts a new game once the current one is over. It reports
// whether a restart happened.
func (s *Sim) Restart() bool {
	if s.mode != ModeGameOver {
		return false
	}
	s.InitGame()
	return true
}

func sparkLabel(i int) string { return fmt.Sprintf("S%d", i) }
