package lib3x3

import (
	"github.com/gridlock-systems/go3x3/go3x3"
)

// EnumOpts bounds a pattern enumeration by length.
type EnumOpts struct {
	MinLen int
	MaxLen int
}

// DefaultEnumOpts covers the production census: every unlockable length.
var DefaultEnumOpts = EnumOpts{
	MinLen: go3x3.MinPatternLen,
	MaxLen: go3x3.MaxPatternLen,
}

// ExtendPattern returns one new pooled Pattern per point that may legally
// extend X — the single-step branch expansion of the search.
func ExtendPattern(X *go3x3.Pattern) []*go3x3.Pattern {
	var nextBuf [go3x3.NumPoints]go3x3.Point
	next := AllowedNext(X, nextBuf[:0])

	branches := make([]*go3x3.Pattern, 0, len(next))
	for _, p := range next {
		Xn := go3x3.NewPattern(X)
		if err := Xn.TryAppend(p); err != nil {
			panic(err)
		}
		branches = append(branches, Xn)
	}
	return branches
}

// EnumPatternsOfLength returns every valid pattern of exactly targetLen
// points beginning at start, by expanding the singleton [start] one level
// at a time until targetLen-1 rounds have completed. targetLen must be >= 1.
//
// Each level fully completes before the next begins; intermediate patterns
// are reclaimed as they are expanded.
func EnumPatternsOfLength(start go3x3.Point, targetLen int) []*go3x3.Pattern {
	X0 := go3x3.NewPattern(nil)
	if err := X0.TryAppend(start); err != nil {
		panic(err)
	}

	level := []*go3x3.Pattern{X0}
	for round := 1; round < targetLen; round++ {
		next := make([]*go3x3.Pattern, 0, 4*len(level))
		for _, X := range level {
			next = append(next, ExtendPattern(X)...)
			X.Reclaim()
		}
		level = next
	}
	return level
}

// EnumAllOfLength returns every valid pattern of exactly targetLen points,
// walking starting points in 0..8 order. Patterns from different starts
// never collide (their first point differs), so the union needs no dedup.
func EnumAllOfLength(targetLen int) []*go3x3.Pattern {
	all := make([]*go3x3.Pattern, 0, 16)
	for start := go3x3.Point(0); start < go3x3.NumPoints; start++ {
		all = append(all, EnumPatternsOfLength(start, targetLen)...)
	}
	return all
}

// EnumPatterns is the primary entry point for pattern enumeration: it walks
// lengths opts.MinLen..opts.MaxLen ascending and feeds every valid pattern
// into the returned stream, grouped by length, then by starting point.
func EnumPatterns(opts EnumOpts) *go3x3.PatternStream {
	pw := &patternWalker{
		opts: opts,
		EnumStream: &go3x3.PatternStream{
			Outlet: make(chan *go3x3.Pattern, 1),
		},
	}

	go func() {
		pw.emitPatterns()
	}()

	return pw.EnumStream
}

type patternWalker struct {
	EnumStream *go3x3.PatternStream
	opts       EnumOpts
}

func (pw *patternWalker) emitPatterns() {
	for L := pw.opts.MinLen; L <= pw.opts.MaxLen; L++ {
		for _, X := range EnumAllOfLength(L) {
			pw.EnumStream.Outlet <- X
		}
	}
	pw.EnumStream.Close()
}
