package terrain

// Tile is one cell of a parsed map
// Corner variants read as "facing direction, then turn direction": NorthToEast
// is entered heading north and left heading east
type Tile uint8

const (
	OutOfBounds Tile = iota
	Empty
	North
	South
	East
	West
	NorthToEast
	NorthToWest
	SouthToEast
	SouthToWest
	EastToNorth
	EastToSouth
	WestToNorth
	WestToSouth
)

// Direction is a unit step in world space, y grows downward
type Direction struct {
	DX, DY float64
}

var (
	DirNone  = Direction{}
	DirNorth = Direction{DX: 0, DY: -1}
	DirSouth = Direction{DX: 0, DY: 1}
	DirEast  = Direction{DX: 1, DY: 0}
	DirWest  = Direction{DX: -1, DY: 0}
)

// IsZero reports whether d carries no heading
func (d Direction) IsZero() bool {
	return d.DX == 0 && d.DY == 0
}

// Clockwise rotates d a quarter turn clockwise on screen
func (d Direction) Clockwise() Direction {
	return Direction{DX: -d.DY, DY: d.DX}
}

// Step returns the grid offset of one move along d
func (d Direction) Step() (drow, dcol int) {
	return int(d.DY), int(d.DX)
}

// IsPath reports whether walkers may occupy the tile
func (t Tile) IsPath() bool {
	return t != OutOfBounds && t != Empty && t <= WestToSouth
}

// IsStraight reports whether the tile is a non-corner path tile
func (t Tile) IsStraight() bool {
	return t >= North && t <= West
}

// IsCorner reports whether the tile turns the path
func (t Tile) IsCorner() bool {
	return t >= NorthToEast && t <= WestToSouth
}

// Heading returns the direction of travel of a straight tile, DirNone otherwise
func (t Tile) Heading() Direction {
	switch t {
	case North:
		return DirNorth
	case South:
		return DirSouth
	case East:
		return DirEast
	case West:
		return DirWest
	}
	return DirNone
}

// Corner returns the heading on entry and on exit for a corner tile
// Straight tiles return their heading twice, other tiles DirNone
func (t Tile) Corner() (entrance, exit Direction) {
	switch t {
	case NorthToEast:
		return DirNorth, DirEast
	case NorthToWest:
		return DirNorth, DirWest
	case SouthToEast:
		return DirSouth, DirEast
	case SouthToWest:
		return DirSouth, DirWest
	case EastToNorth:
		return DirEast, DirNorth
	case EastToSouth:
		return DirEast, DirSouth
	case WestToNorth:
		return DirWest, DirNorth
	case WestToSouth:
		return DirWest, DirSouth
	}
	h := t.Heading()
	return h, h
}

// Rotation is the signed quarter turn a tile applies along the entrance to exit direction
// Counter-clockwise on screen is positive
func (t Tile) Rotation() int {
	switch t {
	case EastToNorth, NorthToWest, WestToSouth, SouthToEast:
		return 1
	case NorthToEast, WestToNorth, SouthToWest, EastToSouth:
		return -1
	}
	return 0
}

// Rune returns the map text character the tile parses from
func (t Tile) Rune() rune {
	switch {
	case t == Empty:
		return ' '
	case t == North:
		return 'n'
	case t == South:
		return 'v'
	case t == East:
		return '>'
	case t == West:
		return '<'
	case t.IsCorner():
		return 'x'
	}
	return '#'
}

func (t Tile) String() string {
	switch t {
	case OutOfBounds:
		return "OutOfBounds"
	case Empty:
		return "Empty"
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	case NorthToEast:
		return "NorthToEast"
	case NorthToWest:
		return "NorthToWest"
	case SouthToEast:
		return "SouthToEast"
	case SouthToWest:
		return "SouthToWest"
	case EastToNorth:
		return "EastToNorth"
	case EastToSouth:
		return "EastToSouth"
	case WestToNorth:
		return "WestToNorth"
	case WestToSouth:
		return "WestToSouth"
	}
	return "Tile(?)"
}

// HasBorder reports whether a wall separates two adjacent tiles
// Anything touching OutOfBounds is walled, and so is any path/empty boundary
func HasBorder(a, b Tile) bool {
	return a == OutOfBounds || b == OutOfBounds || ((a == Empty) != (b == Empty))
}
