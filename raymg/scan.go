package raymg

// Direction is one of the eight principal rays from a square.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// Directions lists all rays in scan order.
var Directions = [8]Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

// Unit steps per direction as (Δfile, Δrank).
var directionSteps = [8][2]int{
	{0, 1},
	{1, 1},
	{1, 0},
	{1, -1},
	{0, -1},
	{-1, -1},
	{-1, 0},
	{-1, 1},
}

var directionNames = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// Step returns the unit displacement of d.
func (d Direction) Step() (df, dr int) { return directionSteps[d][0], directionSteps[d][1] }

func (d Direction) String() string { return directionNames[d] }

// DirectionOf returns the ray on which displacement (df, dr) lies and its
// distance along that ray. ok is false for (0,0) and for displacements that
// are not on a rank, file or diagonal, such as knight jumps.
func DirectionOf(df, dr int) (d Direction, dist int, ok bool) {
	if df == 0 && dr == 0 {
		return 0, 0, false
	}
	if df != 0 && dr != 0 && abs(df) != abs(dr) {
		return 0, 0, false
	}
	sf, sr := sign(df), sign(dr)
	for _, dir := range Directions {
		if directionSteps[dir][0] == sf && directionSteps[dir][1] == sr {
			return dir, max(abs(df), abs(dr)), true
		}
	}
	return 0, 0, false
}

// Obstruction holds, per direction, how many steps a piece can travel before
// the ray is blocked. A capturable blocker counts as one more step, a friendly
// blocker does not.
type Obstruction [8]int

// Scan walks the eight rays from (file, rank) for a piece of the given color.
// Only board contents matter; the origin square itself is never inspected.
func Scan(b *Board, file, rank int, color Color) Obstruction {
	var obs Obstruction
	for _, d := range Directions {
		df, dr := d.Step()
		n := 0
		for f, r := file+df, rank+dr; OnBoard(f, r); f, r = f+df, r+dr {
			s := b.squares[index(f, r)]
			if !s.IsEmpty() {
				if s.Color() != color {
					n++
				}
				break
			}
			n++
		}
		obs[d] = n
	}
	return obs
}
