package lib3x3

import (
	"github.com/gridlock-systems/go3x3/go3x3"
)

// AllowedNext appends to dst every point that may legally extend X and
// returns the result. X must be non-empty.
//
// An unvisited point is eligible unless it is far-collinear with the
// pattern's last point while the intervening midpoint is still unvisited:
// a stroke across an unvisited grid point lands on that point instead.
// Adjacent moves and free leaps (knight-style moves cross no grid point)
// are always open. Candidates are scanned in ascending point order, which
// fixes the enumeration order of everything downstream.
func AllowedNext(X *go3x3.Pattern, dst []go3x3.Point) []go3x3.Point {
	last := X.Last()
	for p := go3x3.Point(0); p < go3x3.NumPoints; p++ {
		if X.Contains(p) {
			continue
		}
		if IsAdjacent(last, p) {
			dst = append(dst, p)
			continue
		}
		if IsFarCollinear(last, p) && !X.Contains(Midpoint(last, p)) {
			continue
		}
		dst = append(dst, p)
	}
	return dst
}
