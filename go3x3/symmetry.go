package go3x3

// Symmetry is a relabeling of grid points under one of the 8 rigid motions
// of the square (the dihedral group of the grid): sym[p] is where p lands.
type Symmetry [NumPoints]Point

// GridSymmetries holds the identity, the three rotations, and the four
// reflections of the 3x3 grid. The set of valid patterns of any length is
// closed under every one of them.
var GridSymmetries [8]Symmetry

func init() {
	span := GridSpan - 1
	motions := [8]func(r, c int) (int, int){
		func(r, c int) (int, int) { return r, c },
		func(r, c int) (int, int) { return c, span - r },        // rotate 90
		func(r, c int) (int, int) { return span - r, span - c }, // rotate 180
		func(r, c int) (int, int) { return span - c, r },        // rotate 270
		func(r, c int) (int, int) { return r, span - c },        // mirror columns
		func(r, c int) (int, int) { return span - r, c },        // mirror rows
		func(r, c int) (int, int) { return c, r },               // main diagonal
		func(r, c int) (int, int) { return span - c, span - r }, // anti diagonal
	}
	for si, motion := range motions {
		for p := 0; p < NumPoints; p++ {
			r, c := motion(p/GridSpan, p%GridSpan)
			GridSymmetries[si][p] = Point(r*GridSpan + c)
		}
	}
}

func (sym *Symmetry) MapPoint(p Point) Point {
	return sym[p]
}

// MapPattern returns a new pooled Pattern with every point of X relabeled.
// Relabeling is a bijection, so the no-repeat invariant is preserved.
func (sym *Symmetry) MapPattern(X *Pattern) *Pattern {
	Xm := NewPattern(nil)
	for _, p := range X.Points() {
		if err := Xm.TryAppend(sym[p]); err != nil {
			panic(err)
		}
	}
	return Xm
}
