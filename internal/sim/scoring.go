package sim

// Percentages returns the claimed-only and the filled percentages of the
// field. The filled figure discounts the starting perimeter.
func Percentages(g *Grid) (raw, filled int) {
	raw = g.Count(CellClaimed) / PercentageDivisor
	filled = (g.CountNonEmpty() - BorderCellCount) / PercentageDivisor
	return raw, filled
}

// progressBonus converts uncommitted progress into points.
func progressBonus(raw, filled int) int {
	return (raw + filled) * 4
}

// updatePercentage refreshes both percentages and raises the win flag.
func (s *Sim) updatePercentage() {
	s.rawPercentage, s.percentage = Percentages(&s.grid)
	if s.percentage >= WinPercentage {
		s.won = true
	}
}

// DisplayScore is the committed score plus the bonus for territory claimed
// so far on this level.
func (s *Sim) DisplayScore() int {
	return s.score + progressBonus(s.rawPercentage, s.percentage)
}
