package lib3x3

import (
	"github.com/alecthomas/participle/v2"
	"github.com/pkg/errors"

	"github.com/gridlock-systems/go3x3/go3x3"
)

// PatternExpr is a human-readable listing of patterns: comma-separated
// sequences of dash-separated points, e.g. "0-3-6, 2-1-5-4-3-0".
type PatternExpr struct {
	Seqs []*PointSeq `parser:"(@@ (',' @@)*)?"`
}

type PointSeq struct {
	First int64   `parser:"@Int"`
	Rest  []int64 `parser:"('-' @Int)*"`
}

var parsePatternExpr = participle.MustBuild[PatternExpr]()

// ParsePatternExpr parses expr and returns one pooled Pattern per sequence.
// Points are range-checked and the no-repeat invariant is enforced.
func ParsePatternExpr(expr string) ([]*go3x3.Pattern, error) {
	ast, err := parsePatternExpr.ParseString("", expr)
	if err != nil {
		return nil, errors.Wrapf(go3x3.ErrBadPatternExpr, "%q: %v", expr, err)
	}

	patterns := make([]*go3x3.Pattern, 0, len(ast.Seqs))
	reclaimAll := func() {
		for _, X := range patterns {
			X.Reclaim()
		}
	}

	for _, seq := range ast.Seqs {
		X := go3x3.NewPattern(nil)
		patterns = append(patterns, X)

		ids := make([]int64, 0, go3x3.MaxPatternLen)
		ids = append(ids, seq.First)
		ids = append(ids, seq.Rest...)
		for _, id := range ids {
			if id < 0 || id >= go3x3.NumPoints {
				reclaimAll()
				return nil, errors.Wrapf(go3x3.ErrBadPoint, "%q: point %d", expr, id)
			}
			if err := X.TryAppend(go3x3.Point(id)); err != nil {
				reclaimAll()
				return nil, errors.Wrapf(err, "%q", expr)
			}
		}
	}

	return patterns, nil
}

// MustParsePattern parses an expression holding exactly one pattern,
// panicking on any failure. Intended for fixed expressions in checks and tests.
func MustParsePattern(expr string) *go3x3.Pattern {
	patterns, err := ParsePatternExpr(expr)
	if err != nil {
		panic(err)
	}
	if len(patterns) != 1 {
		panic(errors.Wrapf(go3x3.ErrBadPatternExpr, "%q: want exactly one pattern, got %d", expr, len(patterns)))
	}
	return patterns[0]
}
