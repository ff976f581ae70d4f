package lib3x3

import (
	"github.com/pkg/errors"

	"github.com/gridlock-systems/go3x3/go3x3"
)

// Static geometry of the 3x3 grid. Within each table row, points are kept
// in an order that puts the transitions most likely to appear in real-world
// patterns first; only set membership carries meaning.

// adjacentTo[p] lists the king-move neighbors of p:
// corners have 3, edge midpoints have 5, the center has all 8.
var adjacentTo = [go3x3.NumPoints][]go3x3.Point{
	0: {1, 3, 4},
	1: {0, 2, 4, 3, 5},
	2: {1, 5, 4},
	3: {0, 6, 4, 1, 7},
	4: {1, 3, 5, 7, 0, 2, 6, 8},
	5: {2, 8, 4, 7, 1},
	6: {3, 7, 4},
	7: {6, 8, 4, 3, 5},
	8: {7, 5, 4},
}

// farCollinearTo[p] lists the points sharing a row, column, or diagonal
// with p but separated from it by exactly one intervening point. Reaching
// one of these requires the intervening point to have been visited already.
// The center sits adjacent to everything on its lines, so its row is empty.
var farCollinearTo = [go3x3.NumPoints][]go3x3.Point{
	0: {2, 6, 8},
	1: {7},
	2: {0, 8, 6},
	3: {5},
	4: {},
	5: {3},
	6: {0, 8, 2},
	7: {1},
	8: {6, 2, 0},
}

// gridSpans are the 8 full lines of the grid (rows, columns, diagonals).
// The midpoint table is derived from them.
var gridSpans = [8][3]go3x3.Point{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

var (
	midpointAt [go3x3.NumPoints][go3x3.NumPoints]int8
	adjacentAs [go3x3.NumPoints]uint16
	farAs      [go3x3.NumPoints]uint16
)

func init() {
	for a := range midpointAt {
		for b := range midpointAt[a] {
			midpointAt[a][b] = -1
		}
	}
	for _, span := range gridSpans {
		lo, mid, hi := span[0], span[1], span[2]
		midpointAt[lo][hi] = int8(mid)
		midpointAt[hi][lo] = int8(mid)
	}
	for p := range adjacentTo {
		for _, q := range adjacentTo[p] {
			adjacentAs[p] |= 1 << q
		}
		for _, q := range farCollinearTo[p] {
			farAs[p] |= 1 << q
		}
	}
}

// Adjacent returns the points one grid-step from p (read-only).
func Adjacent(p go3x3.Point) []go3x3.Point {
	return adjacentTo[p]
}

// FarCollinear returns the points collinear with p at grid-distance two (read-only).
func FarCollinear(p go3x3.Point) []go3x3.Point {
	return farCollinearTo[p]
}

func IsAdjacent(a, b go3x3.Point) bool {
	return adjacentAs[a]&(1<<b) != 0
}

func IsFarCollinear(a, b go3x3.Point) bool {
	return farAs[a]&(1<<b) != 0
}

// Midpoint returns the point lying directly between a and b.
//
// Defined only when b is far-collinear with a; any other pairing is a logic
// error in the caller and panics rather than return a wrong answer.
func Midpoint(a, b go3x3.Point) go3x3.Point {
	mid := midpointAt[a][b]
	if mid < 0 {
		panic(errors.Wrapf(go3x3.ErrNotCollinear, "midpoint(%d,%d)", a, b))
	}
	return go3x3.Point(mid)
}
