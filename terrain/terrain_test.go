package terrain

import (
	"testing"

	"github.com/pkg/errors"
)

func TestParseSwitchbackDimensions(t *testing.T) {
	g, err := Parse(Switchback)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if g.Width != 22 || g.Height != 18 {
		t.Errorf("Expected 22x18 visible map, got %dx%d", g.Width, g.Height)
	}
	if g.TrueWidth() != 26 || g.TrueHeight() != 22 {
		t.Errorf("Expected 26x22 true map, got %dx%d", g.TrueWidth(), g.TrueHeight())
	}
}

func TestParseCornerDisambiguation(t *testing.T) {
	g := MustParse(Switchback)

	tests := []struct {
		row, col int
		want     Tile
	}{
		{3, 4, EastToSouth},
		{3, 10, EastToSouth},
		{15, 15, NorthToEast},
		{5, 4, SouthToEast},
		{6, 3, SouthToEast},
		{6, 7, EastToNorth},
		{17, 4, SouthToEast},
	}
	for _, tt := range tests {
		if got := g.At(tt.row, tt.col); got != tt.want {
			t.Errorf("Tile (%d,%d): expected %s, got %s", tt.row, tt.col, tt.want, got)
		}
	}
}

func TestParseStraightTiles(t *testing.T) {
	g := MustParse(Switchback)

	if got := g.At(0, 0); got != OutOfBounds {
		t.Errorf("Expected OutOfBounds at origin, got %s", got)
	}
	if got := g.At(2, 2); got != Empty {
		t.Errorf("Expected Empty at (2,2), got %s", got)
	}
	if got := g.At(3, 1); got != East {
		t.Errorf("Expected East at (3,1), got %s", got)
	}
	if got := g.At(4, 4); got != South {
		t.Errorf("Expected South at (4,4), got %s", got)
	}
	if got := g.At(-1, 5); got != OutOfBounds {
		t.Errorf("Expected OutOfBounds off grid, got %s", got)
	}
	if got := g.AtVisible(1, -1); got != East {
		t.Errorf("Expected East at visible (1,-1), got %s", got)
	}
}

func TestEntrancesAndExits(t *testing.T) {
	g := MustParse(Switchback)

	wantEntrances := []Pos{{3, 1}, {4, 1}}
	wantExits := []Pos{{3, 24}, {4, 24}}

	if got := g.Entrances(); !equalPos(got, wantEntrances) {
		t.Errorf("Expected entrances %v, got %v", wantEntrances, got)
	}
	if got := g.Exits(); !equalPos(got, wantExits) {
		t.Errorf("Expected exits %v, got %v", wantExits, got)
	}

	s := MustParse(Straights)
	if n := len(s.Entrances()); n != 6 {
		t.Errorf("Expected 6 entrances on Straights, got %d", n)
	}
	if n := len(s.Exits()); n != 6 {
		t.Errorf("Expected 6 exits on Straights, got %d", n)
	}
}

func TestEntrancesReturnsCopy(t *testing.T) {
	g := MustParse(Switchback)
	e := g.Entrances()
	e[0] = Pos{Row: 99, Col: 99}
	if g.Entrances()[0] == e[0] {
		t.Error("Expected Entrances to return an independent slice")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want error
	}{
		{
			name: "too few rows",
			rows: []string{"#####", "#####"},
			want: ErrMapTooSmall,
		},
		{
			name: "ragged",
			rows: []string{"#####", "#####", "#### ", "####", "#####"},
			want: ErrRaggedMap,
		},
		{
			name: "corner on edge",
			rows: []string{"x####", "#####", "#####", "#####", "#####"},
			want: ErrCornerOutOfRange,
		},
		{
			name: "isolated corner",
			rows: []string{"#####", "#####", "##x##", "#####", "#####"},
			want: ErrAmbiguousCorner,
		},
		{
			name: "no entrance",
			rows: []string{"#####", "#####", "## ##", "#####", "#####"},
			want: ErrNoEntrance,
		},
		{
			name: "no exit",
			rows: []string{"#####", "#####", "#> ##", "#####", "#####"},
			want: ErrNoExit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.rows)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic on malformed map")
		}
	}()
	MustParse([]string{"#"})
}

func TestCoordinateHelpers(t *testing.T) {
	if r, c := TrueRowCol(0, 0); r != 2 || c != 2 {
		t.Errorf("Expected (2,2), got (%d,%d)", r, c)
	}
	if r, c := TrueRowCol(-0.5, 64); r != 4 || c != 1 {
		t.Errorf("Expected (4,1), got (%d,%d)", r, c)
	}
	if x, y := TileCenter(0, 0); x != 16 || y != 16 {
		t.Errorf("Expected (16,16), got (%v,%v)", x, y)
	}
	if x, y := TrueTileCenter(3, 1); x != -16 || y != 48 {
		t.Errorf("Expected (-16,48), got (%v,%v)", x, y)
	}
	if x, y := TileOrigin(15, 15); x != 416 || y != 416 {
		t.Errorf("Expected (416,416), got (%v,%v)", x, y)
	}

	g := MustParse(Switchback)
	if !g.InBounds(0, 0) {
		t.Error("Expected origin in bounds")
	}
	if g.InBounds(22*TileSize, 10) {
		t.Error("Expected right edge out of bounds")
	}
	if g.InBounds(-0.1, 10) {
		t.Error("Expected negative x out of bounds")
	}
}

func TestHasBorder(t *testing.T) {
	tests := []struct {
		a, b Tile
		want bool
	}{
		{East, East, false},
		{East, NorthToEast, false},
		{Empty, Empty, false},
		{Empty, East, true},
		{South, Empty, true},
		{OutOfBounds, East, true},
		{Empty, OutOfBounds, true},
	}
	for _, tt := range tests {
		if got := HasBorder(tt.a, tt.b); got != tt.want {
			t.Errorf("HasBorder(%s, %s): expected %v, got %v", tt.a, tt.b, tt.want, got)
		}
	}
}

func TestTileRotationPairs(t *testing.T) {
	// A left turn followed by the matching right turn nets zero
	pairs := [][2]Tile{
		{EastToNorth, NorthToEast},
		{WestToSouth, SouthToWest},
		{NorthToWest, WestToNorth},
		{SouthToEast, EastToSouth},
	}
	for _, p := range pairs {
		if p[0].Rotation() != 1 || p[1].Rotation() != -1 {
			t.Errorf("Expected %s=+1 and %s=-1, got %d and %d", p[0], p[1], p[0].Rotation(), p[1].Rotation())
		}
	}
	if East.Rotation() != 0 || Empty.Rotation() != 0 {
		t.Error("Expected straight and empty tiles to carry no rotation")
	}
}

func TestTileCornerHeadings(t *testing.T) {
	entrance, exit := NorthToEast.Corner()
	if entrance != DirNorth || exit != DirEast {
		t.Errorf("Expected north then east, got %v then %v", entrance, exit)
	}
	entrance, exit = West.Corner()
	if entrance != DirWest || exit != DirWest {
		t.Errorf("Expected straight tile to report its heading twice, got %v and %v", entrance, exit)
	}
	if !Empty.Heading().IsZero() {
		t.Error("Expected empty tile to have no heading")
	}
	if DirEast.Clockwise() != DirSouth {
		t.Errorf("Expected east rotated clockwise to be south, got %v", DirEast.Clockwise())
	}
}

func TestTileRuneRoundTrip(t *testing.T) {
	g := MustParse(Switchback)
	for row := 0; row < g.TrueHeight(); row++ {
		for col := 0; col < g.TrueWidth(); col++ {
			if got, want := byte(g.At(row, col).Rune()), Switchback[row][col]; got != want {
				t.Fatalf("Rune at (%d,%d): expected %q, got %q", row, col, want, got)
			}
		}
	}
}

func equalPos(a, b []Pos) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
