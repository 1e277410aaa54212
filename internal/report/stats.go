// Package report runs headless games and summarises them.
package report

import (
	"fmt"
	"strings"

	"github.com/Garsondee/zolyx/internal/sim"
)

// RunStats summarises one headless game.
type RunStats struct {
	RunIndex int
	Seed     int64
	Ticks    int // ticks actually played

	FinalLevel int
	Score      int
	Lives      int
	GameOver   bool

	Fills           int
	CellsClaimed    int
	SparksKilled    int
	DeathsCollision int
	DeathsTimeout   int
	LevelsCompleted int
	CursorCatches   int

	// Level frame of the first fill and first death, -1 when they never
	// happened.
	FirstFillTick  int
	FirstDeathTick int

	// How the last life was lost ("collision", "out_of_time"), empty when
	// the player never died.
	LastDeathCause string
}

// Play runs one game for up to ticks ticks, stopping early on game over.
func Play(runIndex int, seed int64, ticks int, src sim.InputSource, opts ...sim.Option) (RunStats, *sim.Sim) {
	s := sim.New(append([]sim.Option{sim.WithSeed(seed)}, opts...)...)
	played := sim.RunUntil(s, src, (*sim.Sim).GameOver, ticks)
	return Collect(runIndex, seed, played, s), s
}

// Collect derives RunStats from a finished game's event log.
func Collect(runIndex int, seed int64, ticks int, s *sim.Sim) RunStats {
	l := s.Log()
	rs := RunStats{
		RunIndex:        runIndex,
		Seed:            seed,
		Ticks:           ticks,
		FinalLevel:      s.Level(),
		Score:           s.DisplayScore(),
		Lives:           s.Lives(),
		GameOver:        s.GameOver(),
		Fills:           l.CountCategory("fill", "closed"),
		SparksKilled:    l.CountCategory("spark", ""),
		DeathsCollision: l.CountCategory("death", "collision"),
		DeathsTimeout:   l.CountCategory("death", "out_of_time"),
		LevelsCompleted: l.CountCategory("level", "complete"),
		CursorCatches:   l.CountCategory("cursor", "caught"),
		FirstFillTick:   -1,
		FirstDeathTick:  -1,
	}
	if e, ok := l.LastOf("death", ""); ok {
		rs.LastDeathCause = e.Key
	}
	for _, e := range l.Entries() {
		switch {
		case e.Category == "fill" && e.Key == "closed":
			rs.CellsClaimed += int(e.NumVal)
			if rs.FirstFillTick < 0 {
				rs.FirstFillTick = e.Tick
			}
		case e.Category == "death" && rs.FirstDeathTick < 0:
			rs.FirstDeathTick = e.Tick
		}
	}
	return rs
}

func deathCause(c string) string {
	if c == "" {
		return "none"
	}
	return c
}

// Deaths is the total number of lives lost.
func (rs RunStats) Deaths() int { return rs.DeathsCollision + rs.DeathsTimeout }

// Format prints a run in the key=value style of the report.
func (rs RunStats) Format() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- Run %d (seed=%d) ---\n", rs.RunIndex, rs.Seed)
	fmt.Fprintf(&sb, "result: ticks=%d level=%d score=%d lives=%d game_over=%v\n",
		rs.Ticks, rs.FinalLevel+1, rs.Score, rs.Lives, rs.GameOver)
	fmt.Fprintf(&sb, "territory: fills=%d cells_claimed=%d levels_completed=%d\n",
		rs.Fills, rs.CellsClaimed, rs.LevelsCompleted)
	fmt.Fprintf(&sb, "hazards: sparks_killed=%d deaths_collision=%d deaths_timeout=%d cursor_catches=%d\n",
		rs.SparksKilled, rs.DeathsCollision, rs.DeathsTimeout, rs.CursorCatches)
	fmt.Fprintf(&sb, "markers: first_fill=%d first_death=%d last_death=%s\n", rs.FirstFillTick, rs.FirstDeathTick, deathCause(rs.LastDeathCause))
	return sb.String()
}

// FormatAggregate prints per-run averages over all runs.
func FormatAggregate(all []RunStats) string {
	var sb strings.Builder
	n := len(all)
	var score, fills, cells, sparks, deaths, levels int
	var fillTicks, deathTicks []int
	gameOvers := 0
	for _, rs := range all {
		score += rs.Score
		fills += rs.Fills
		cells += rs.CellsClaimed
		sparks += rs.SparksKilled
		deaths += rs.Deaths()
		levels += rs.LevelsCompleted
		if rs.GameOver {
			gameOvers++
		}
		if rs.FirstFillTick >= 0 {
			fillTicks = append(fillTicks, rs.FirstFillTick)
		}
		if rs.FirstDeathTick >= 0 {
			deathTicks = append(deathTicks, rs.FirstDeathTick)
		}
	}
	fmt.Fprintln(&sb, "=== Aggregate ===")
	fmt.Fprintf(&sb, "runs=%d game_overs=%d\n", n, gameOvers)
	fmt.Fprintf(&sb, "avg_per_run: score=%.1f fills=%.1f cells_claimed=%.1f sparks_killed=%.1f deaths=%.1f levels_completed=%.1f\n",
		avg(score, n), avg(fills, n), avg(cells, n), avg(sparks, n), avg(deaths, n), avg(levels, n))
	fmt.Fprintf(&sb, "marker_avg_ticks: first_fill=%s first_death=%s\n",
		avgTickString(fillTicks), avgTickString(deathTicks))
	return sb.String()
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}
