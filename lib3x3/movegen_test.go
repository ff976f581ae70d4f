package lib3x3_test

import (
	"testing"

	"github.com/gridlock-systems/go3x3/go3x3"
	"github.com/gridlock-systems/go3x3/lib3x3"
)

func allowedMask(t *testing.T, expr string) uint16 {
	t.Helper()
	X := lib3x3.MustParsePattern(expr)
	defer X.Reclaim()

	var buf [go3x3.NumPoints]go3x3.Point
	return setOf(lib3x3.AllowedNext(X, buf[:0]))
}

func TestAllowedNext(t *testing.T) {
	cases := []struct {
		expr string
		want uint16
	}{
		{"0-3-6", maskOf(1, 4, 5, 7)},
		{"2-1-5-4-3-0", maskOf(6, 7, 8)},
		{"0-4-7", maskOf(1, 2, 3, 5, 6, 8)},
		// From a lone corner everything is reachable except the three
		// far-collinear points sitting behind unvisited midpoints; the
		// knight-style leaps to 5 and 7 cross no grid point.
		{"0", maskOf(1, 3, 4, 5, 7)},
		// The center reaches everything.
		{"4", maskOf(0, 1, 2, 3, 5, 6, 7, 8)},
		// Nothing may extend a full pattern.
		{"0-1-2-5-8-7-6-3-4", 0},
	}
	for _, tc := range cases {
		if got := allowedMask(t, tc.expr); got != tc.want {
			t.Errorf("allowedNext(%s): got %09b, want %09b", tc.expr, got, tc.want)
		}
	}
}

func TestAllowedNextSkipRule(t *testing.T) {
	// 7 -> 1 skips over the center: blocked until 4 has been visited.
	if got := allowedMask(t, "0-7"); got&maskOf(1) != 0 || got&maskOf(4) == 0 {
		t.Fatalf("allowedNext(0-7) = %09b: want 4 allowed, 1 blocked", got)
	}
	if got := allowedMask(t, "0-4-7"); got&maskOf(1) == 0 {
		t.Fatalf("allowedNext(0-4-7) = %09b: want 1 allowed", got)
	}
}

func TestAllowedNextAscendingOrder(t *testing.T) {
	X := lib3x3.MustParsePattern("0-3-6")
	defer X.Reclaim()

	var buf [go3x3.NumPoints]go3x3.Point
	next := lib3x3.AllowedNext(X, buf[:0])
	for i := 1; i < len(next); i++ {
		if next[i-1] >= next[i] {
			t.Fatalf("candidates not in ascending order: %v", next)
		}
	}
}
