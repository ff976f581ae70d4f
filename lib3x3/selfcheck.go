package lib3x3

import (
	"github.com/pkg/errors"

	"github.com/gridlock-systems/go3x3/go3x3"
)

// SelfCheck runs a fixed battery of assertions over the grid topology and
// the legal-move rule. It must pass before any enumeration is trusted: the
// tables are hand-maintained constants and every downstream result depends
// on their exact membership.
//
// The returned error names the violated relationship.
func SelfCheck() error {
	if err := checkTableShapes(); err != nil {
		return err
	}
	if err := checkMidpoints(); err != nil {
		return err
	}
	if err := checkDihedralClosure(); err != nil {
		return err
	}
	return checkMoveRule()
}

func checkTableShapes() error {
	wantAdjacent := [go3x3.NumPoints]int{3, 5, 3, 5, 8, 5, 3, 5, 3}
	wantFar := [go3x3.NumPoints]int{3, 1, 3, 1, 0, 1, 3, 1, 3}

	for p := go3x3.Point(0); p < go3x3.NumPoints; p++ {
		if got := len(Adjacent(p)); got != wantAdjacent[p] {
			return errors.Errorf("point %d: %d adjacent points, want %d", p, got, wantAdjacent[p])
		}
		if got := len(FarCollinear(p)); got != wantFar[p] {
			return errors.Errorf("point %d: %d far-collinear points, want %d", p, got, wantFar[p])
		}
		if adjacentAs[p]&farAs[p] != 0 {
			return errors.Errorf("point %d: adjacent and far-collinear sets overlap", p)
		}
		if adjacentAs[p]&(1<<p) != 0 || farAs[p]&(1<<p) != 0 {
			return errors.Errorf("point %d: listed as reachable from itself", p)
		}
	}

	// Spot checks on linear reachability (adjacent or far-collinear).
	if !IsFarCollinear(0, 6) {
		return errors.New("0 and 6 should be collinear across 3")
	}
	if IsAdjacent(0, 5) || IsFarCollinear(0, 5) {
		return errors.New("0 and 5 should not be collinear")
	}
	return nil
}

func checkMidpoints() error {
	for _, span := range gridSpans {
		lo, mid, hi := span[0], span[1], span[2]
		if Midpoint(lo, hi) != mid || Midpoint(hi, lo) != mid {
			return errors.Errorf("midpoint(%d,%d) should be %d either way around", lo, hi, mid)
		}
		if !IsFarCollinear(lo, hi) || !IsFarCollinear(hi, lo) {
			return errors.Errorf("span endpoints %d and %d should be mutually far-collinear", lo, hi)
		}
	}
	return nil
}

// checkDihedralClosure verifies all three topology tables against the 8
// rigid motions of the grid: geometric relations must be preserved by every
// relabeling. This guards against hand-transcription slips in the tables.
func checkDihedralClosure() error {
	for si := range go3x3.GridSymmetries {
		sym := &go3x3.GridSymmetries[si]
		for a := go3x3.Point(0); a < go3x3.NumPoints; a++ {
			for b := go3x3.Point(0); b < go3x3.NumPoints; b++ {
				if IsAdjacent(a, b) != IsAdjacent(sym.MapPoint(a), sym.MapPoint(b)) {
					return errors.Errorf("adjacency of (%d,%d) not preserved by symmetry %d", a, b, si)
				}
				if IsFarCollinear(a, b) != IsFarCollinear(sym.MapPoint(a), sym.MapPoint(b)) {
					return errors.Errorf("far-collinearity of (%d,%d) not preserved by symmetry %d", a, b, si)
				}
				if IsFarCollinear(a, b) {
					mapped := Midpoint(sym.MapPoint(a), sym.MapPoint(b))
					if mapped != sym.MapPoint(Midpoint(a, b)) {
						return errors.Errorf("midpoint of (%d,%d) not preserved by symmetry %d", a, b, si)
					}
				}
			}
		}
	}
	return nil
}

func checkMoveRule() error {
	cases := []struct {
		expr    string
		allowed []go3x3.Point
		blocked []go3x3.Point
	}{
		// Down the left column: 2 and 8 stay blocked behind unvisited 4 and 7.
		{"0-3-6", []go3x3.Point{1, 4, 5, 7}, []go3x3.Point{0, 2, 3, 6, 8}},
		// Six points down; only the bottom row remains.
		{"2-1-5-4-3-0", []go3x3.Point{6, 7, 8}, []go3x3.Point{0, 1, 2, 3, 4, 5}},
		// 7 -> 1 must skip over the unvisited center.
		{"0-7", []go3x3.Point{4}, []go3x3.Point{1}},
		// With the center visited, 7 -> 1 opens up.
		{"0-4-7", []go3x3.Point{1}, nil},
	}

	for _, tc := range cases {
		X := MustParsePattern(tc.expr)
		var nextBuf [go3x3.NumPoints]go3x3.Point
		got := uint16(0)
		for _, p := range AllowedNext(X, nextBuf[:0]) {
			got |= 1 << p
		}
		X.Reclaim()

		for _, p := range tc.allowed {
			if got&(1<<p) == 0 {
				return errors.Errorf("allowedNext(%s) should include %d", tc.expr, p)
			}
		}
		for _, p := range tc.blocked {
			if got&(1<<p) != 0 {
				return errors.Errorf("allowedNext(%s) should exclude %d", tc.expr, p)
			}
		}
	}
	return nil
}
