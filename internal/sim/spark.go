package sim

// SparkOutcome says what happened to a spark on its tick.
type SparkOutcome int

const (
	SparkIdle SparkOutcome = iota // inactive, or boxed in on all sides
	SparkMoved
	SparkBounced
	SparkKilled        // ran into, or was buried by, claimed territory
	SparkKilledOnTrail // found itself on the player's trail
)

func (o SparkOutcome) String() string {
	switch o {
	case SparkIdle:
		return "idle"
	case SparkMoved:
		return "moved"
	case SparkBounced:
		return "bounced"
	case SparkKilled:
		return "killed"
	case SparkKilledOnTrail:
		return "killed_on_trail"
	default:
		return "unknown"
	}
}

// bounceTurns is the order sparks try when the diagonal ahead is wall:
// clockwise, counter-clockwise, then straight back.
var bounceTurns = [3]int{2, -2, 4}

// StepSpark moves one spark. It does not award points or raise collisions;
// the caller acts on the returned outcome.
func StepSpark(g *Grid, sp *Spark) SparkOutcome {
	if !sp.Active {
		return SparkIdle
	}

	switch g.At(sp.X, sp.Y) {
	case CellClaimed:
		sp.kill()
		return SparkKilled
	case CellTrail:
		sp.kill()
		return SparkKilledOnTrail
	}

	tx, ty := sp.Dir.Step(sp.X, sp.Y)
	switch g.At(tx, ty) {
	case CellEmpty, CellTrail:
		sp.X, sp.Y = tx, ty
		return SparkMoved
	case CellBorder:
		for _, turn := range bounceTurns {
			d := sp.Dir.Turn(turn)
			bx, by := d.Step(sp.X, sp.Y)
			if g.At(bx, by) == CellEmpty {
				sp.Dir = d
				sp.X, sp.Y = bx, by
				return SparkBounced
			}
		}
		return SparkIdle
	}

	sp.kill()
	return SparkKilled
}

func (sp *Spark) kill() {
	sp.Active = false
	sp.X, sp.Y = 0, 0
}
