package go3x3

import (
	"sync"
)

// Pattern is an ordered, duplicate-free sequence of grid Points.
//
// A Pattern is built by appending one Point at a time; a 9-bit membership
// mask makes visited checks O(1). Instances are pooled: construct with
// NewPattern and release with Reclaim.
type Pattern struct {
	points [MaxPatternLen]Point
	count  int
	mask   uint16
}

// NewPattern returns a pooled Pattern initialized as a copy of Xsrc (or empty if Xsrc is nil).
func NewPattern(Xsrc *Pattern) *Pattern {
	X := patternPool.Get().(*Pattern)
	X.Init(Xsrc)
	return X
}

func (X *Pattern) Init(Xsrc *Pattern) {
	if Xsrc == nil {
		X.count = 0
		X.mask = 0
		return
	}
	*X = *Xsrc
}

// Reclaim recycles this Pattern instance into a pool for reuse.
// Caller asserts that no more references to this instance will persist.
func (X *Pattern) Reclaim() {
	patternPool.Put(X)
}

var patternPool = sync.Pool{
	New: func() any {
		return &Pattern{}
	},
}

func (X *Pattern) Len() int {
	return X.count
}

// Last returns the most recently appended Point. X must be non-empty.
func (X *Pattern) Last() Point {
	return X.points[X.count-1]
}

func (X *Pattern) PointAt(i int) Point {
	return X.points[i]
}

// Points returns the sequence as a slice view into X (valid until X is next mutated or reclaimed).
func (X *Pattern) Points() []Point {
	return X.points[:X.count]
}

func (X *Pattern) Contains(p Point) bool {
	return X.mask&(1<<p) != 0
}

// TryAppend appends p, enforcing grid range and the no-repeat invariant.
func (X *Pattern) TryAppend(p Point) error {
	if p >= NumPoints {
		return ErrBadPoint
	}
	if X.count == MaxPatternLen {
		return ErrPatternFull
	}
	if X.Contains(p) {
		return ErrDuplicatePoint
	}
	X.points[X.count] = p
	X.count++
	X.mask |= 1 << p
	return nil
}

// IsEqual returns true if both patterns hold the same points in the same order.
func (X *Pattern) IsEqual(other *Pattern) bool {
	if X.count != other.count || X.mask != other.mask {
		return false
	}
	for i := 0; i < X.count; i++ {
		if X.points[i] != other.points[i] {
			return false
		}
	}
	return true
}

// HasPrefix returns true if X begins with the full sequence of the given prefix.
func (X *Pattern) HasPrefix(prefix *Pattern) bool {
	if prefix.count > X.count {
		return false
	}
	for i := 0; i < prefix.count; i++ {
		if X.points[i] != prefix.points[i] {
			return false
		}
	}
	return true
}

// AppendLSM appends the catalog key form of X: a length byte followed by the
// point bytes, so keys sort by pattern length, then lexicographically.
func (X *Pattern) AppendLSM(dst []byte) []byte {
	dst = append(dst, byte(X.count))
	for i := 0; i < X.count; i++ {
		dst = append(dst, byte(X.points[i]))
	}
	return dst
}

// InitFromLSM initializes X from a key previously formed by AppendLSM.
func (X *Pattern) InitFromLSM(key []byte) error {
	X.Init(nil)
	if len(key) < 1 || int(key[0]) != len(key)-1 {
		return ErrUnmarshal
	}
	for _, b := range key[1:] {
		if err := X.TryAppend(Point(b)); err != nil {
			return ErrUnmarshal
		}
	}
	return nil
}

// AppendAscii appends the pattern's points as concatenated decimal digits (e.g. "014").
func (X *Pattern) AppendAscii(dst []byte) []byte {
	for i := 0; i < X.count; i++ {
		dst = append(dst, '0'+byte(X.points[i]))
	}
	return dst
}

// InitFromAscii initializes X from a bare digit string previously formed by AppendAscii.
func (X *Pattern) InitFromAscii(digits string) error {
	X.Init(nil)
	for _, r := range digits {
		if r < '0' || r > '8' {
			return ErrUnmarshal
		}
		if err := X.TryAppend(Point(r - '0')); err != nil {
			return ErrUnmarshal
		}
	}
	return nil
}

func (X *Pattern) String() string {
	var buf [MaxPatternLen]byte
	return string(X.AppendAscii(buf[:0]))
}
