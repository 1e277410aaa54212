package sim

// --- Field geometry ---

// GridSize is the width and height of the cell coordinate space.
const GridSize = 128

// Field border rectangle (inclusive).
const (
	FieldMinX = 2
	FieldMaxX = 125
	FieldMinY = 18
	FieldMaxY = 93
)

// Midpoints used to pick the fill side of a straight trail.
const (
	fieldMidX = 63
	fieldMidY = 55
)

// --- Rules ---

const (
	// BorderCellCount is the number of cells in the initial perimeter.
	// 124 top + 124 bottom + 74 left + 74 right.
	BorderCellCount = 396

	// PercentageDivisor turns a cell count into an (approximate) percentage.
	PercentageDivisor = 90

	// WinPercentage is the filled percentage that completes a level.
	WinPercentage = 75

	InitialLives = 3

	// InitialTimer is the level timer; it drops by one every TimerSpeed ticks.
	InitialTimer = 176
	TimerSpeed   = 14

	// TrailCursorThreshold is how many ticks of drawing it takes before the
	// trail cursor starts chasing the player along the trail.
	TrailCursorThreshold = 72

	// SparkKillPoints is awarded when a spark runs into claimed territory.
	SparkKillPoints = 50

	// CollisionDistance is the exclusive Chebyshev distance for a hit.
	CollisionDistance = 2

	// deathPauseTicks is the freeze after losing a life.
	deathPauseTicks = 30

	// cursorStride is how many trail entries the cursor advances per tick.
	cursorStride = 2
)

// Level-complete sequence timing, in ticks.
const (
	rainbowTicks       = 32
	countdownTickRate  = 2
	completePauseTicks = 50
)

// TicksPerSecond is the native simulation rate.
const TicksPerSecond = 50

// --- Entity tables ---

// MaxChasers and MaxSparks bound the per-level entity slots.
const (
	MaxChasers = 2
	MaxSparks  = 8
)

// maxLevelIndex clamps the per-level tables; levels past it reuse the last row.
const maxLevelIndex = 15

type point struct{ x, y int }

// sparkBases are the spawn anchors; a random offset is added per level.
var sparkBases = [MaxSparks]point{
	{29, 33}, {61, 33}, {93, 33},
	{29, 53}, {93, 53},
	{29, 73}, {61, 73}, {93, 73},
}

// sparkMasks enable sparks per level. Bit 7 is spark 0.
var sparkMasks = [maxLevelIndex + 1]uint8{
	0x40, 0x18, 0xA2, 0x5A, 0xBA, 0xBD, 0xFD, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
}

// chaserMasks enable chasers per level. Bit 7 is chaser 0.
var chaserMasks = [maxLevelIndex + 1]uint8{
	0x80, 0x80, 0x80, 0x80, 0x80, 0x80,
	0xC0, 0xC0, 0xC0, 0xC0, 0xC0, 0xC0, 0xC0, 0xC0, 0xC0, 0xC0,
}

type chaserSpawn struct {
	x, y int
	dir  Dir
}

var chaserSpawns = [MaxChasers]chaserSpawn{
	{64, FieldMinY, DirRight},
	{64, FieldMaxY, DirLeft},
}

// SparkMask returns the spark activation bitmask for a level.
func SparkMask(level int) uint8 { return sparkMasks[clampLevel(level)] }

// ChaserMask returns the chaser activation bitmask for a level.
func ChaserMask(level int) uint8 { return chaserMasks[clampLevel(level)] }

func clampLevel(level int) int {
	if level < 0 {
		return 0
	}
	if level > maxLevelIndex {
		return maxLevelIndex
	}
	return level
}
