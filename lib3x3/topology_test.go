package lib3x3_test

import (
	"testing"

	"github.com/gridlock-systems/go3x3/go3x3"
	"github.com/gridlock-systems/go3x3/lib3x3"
)

func maskOf(points ...go3x3.Point) uint16 {
	m := uint16(0)
	for _, p := range points {
		m |= 1 << p
	}
	return m
}

func setOf(points []go3x3.Point) uint16 {
	return maskOf(points...)
}

func TestAdjacencyTable(t *testing.T) {
	want := [go3x3.NumPoints]uint16{
		0: maskOf(1, 3, 4),
		1: maskOf(0, 2, 3, 4, 5),
		2: maskOf(1, 4, 5),
		3: maskOf(0, 1, 4, 6, 7),
		4: maskOf(0, 1, 2, 3, 5, 6, 7, 8),
		5: maskOf(1, 2, 4, 7, 8),
		6: maskOf(3, 4, 7),
		7: maskOf(1, 3, 4, 5, 6, 8),
		8: maskOf(4, 5, 7),
	}
	for p := go3x3.Point(0); p < go3x3.NumPoints; p++ {
		if got := setOf(lib3x3.Adjacent(p)); got != want[p] {
			t.Errorf("adjacent(%d): got %09b, want %09b", p, got, want[p])
		}
	}
}

func TestFarCollinearTable(t *testing.T) {
	want := [go3x3.NumPoints]uint16{
		0: maskOf(2, 6, 8),
		1: maskOf(7),
		2: maskOf(0, 6, 8),
		3: maskOf(5),
		4: 0,
		5: maskOf(3),
		6: maskOf(0, 2, 8),
		7: maskOf(1),
		8: maskOf(0, 2, 6),
	}
	for p := go3x3.Point(0); p < go3x3.NumPoints; p++ {
		if got := setOf(lib3x3.FarCollinear(p)); got != want[p] {
			t.Errorf("farCollinear(%d): got %09b, want %09b", p, got, want[p])
		}
	}
}

func TestMidpoints(t *testing.T) {
	cases := []struct{ a, b, mid go3x3.Point }{
		{0, 2, 1},
		{0, 6, 3},
		{0, 8, 4},
		{1, 7, 4},
		{2, 6, 4},
		{2, 8, 5},
		{3, 5, 4},
		{6, 8, 7},
	}
	for _, tc := range cases {
		if got := lib3x3.Midpoint(tc.a, tc.b); got != tc.mid {
			t.Errorf("midpoint(%d,%d) = %d, want %d", tc.a, tc.b, got, tc.mid)
		}
		if got := lib3x3.Midpoint(tc.b, tc.a); got != tc.mid {
			t.Errorf("midpoint(%d,%d) = %d, want %d", tc.b, tc.a, got, tc.mid)
		}
	}
}

func TestMidpointPanicsOffLine(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("midpoint of a non-collinear pair should panic")
		}
	}()
	lib3x3.Midpoint(0, 5)
}

// The grid's 8-fold dihedral symmetry must map each topology table onto
// itself; this is the guard against transcription slips in the constants.
func TestTablesUnderDihedralSymmetry(t *testing.T) {
	for si := range go3x3.GridSymmetries {
		sym := &go3x3.GridSymmetries[si]
		for a := go3x3.Point(0); a < go3x3.NumPoints; a++ {
			for b := go3x3.Point(0); b < go3x3.NumPoints; b++ {
				ma, mb := sym.MapPoint(a), sym.MapPoint(b)
				if lib3x3.IsAdjacent(a, b) != lib3x3.IsAdjacent(ma, mb) {
					t.Fatalf("symmetry %d breaks adjacency of (%d,%d)", si, a, b)
				}
				if lib3x3.IsFarCollinear(a, b) != lib3x3.IsFarCollinear(ma, mb) {
					t.Fatalf("symmetry %d breaks far-collinearity of (%d,%d)", si, a, b)
				}
				if lib3x3.IsFarCollinear(a, b) {
					if lib3x3.Midpoint(ma, mb) != sym.MapPoint(lib3x3.Midpoint(a, b)) {
						t.Fatalf("symmetry %d breaks midpoint of (%d,%d)", si, a, b)
					}
				}
			}
		}
	}
}
