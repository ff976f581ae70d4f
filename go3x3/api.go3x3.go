package go3x3

import (
	"errors"
)

const (

	// GridSpan is the number of points along one side of the grid.
	GridSpan = 3

	// NumPoints is the total number of points on the grid.
	NumPoints = GridSpan * GridSpan

	// MinPatternLen is the shortest pattern accepted as an unlock pattern.
	MinPatternLen = 4

	// MaxPatternLen is the longest possible pattern (every point used once).
	MaxPatternLen = NumPoints
)

// Point identifies one of the 9 fixed grid positions, laid out row-major:
//
//	0  1  2
//	3  4  5
//	6  7  8
type Point byte

// OnPatternHit is a callback channel used to return Patterns meeting a set of selection criteria.
// Ownership of a Pattern also travels through the channel.
type OnPatternHit chan<- *Pattern

// Errors
var (
	ErrBadPoint        = errors.New("point out of grid range")
	ErrDuplicatePoint  = errors.New("point already in pattern")
	ErrPatternFull     = errors.New("pattern already spans every point")
	ErrNotCollinear    = errors.New("points have no midpoint")
	ErrBadPatternExpr  = errors.New("bad pattern expression")
	ErrUnmarshal       = errors.New("unmarshal failed")
	ErrBadCatalogParam = errors.New("bad catalog param")
)

// PatternAdder accepts patterns on an add-if-absent basis.
type PatternAdder interface {

	// Tries to add the given pattern to this collection.
	// If true is returned, X did not exist and was added.
	TryAddPattern(X *Pattern) bool
}

// Catalog wraps a database of unlock patterns.
type Catalog interface {
	PatternAdder

	// Returns true if this catalog was opened for read-only access.
	IsReadOnly() bool

	// NumPatterns returns the number of patterns in this catalog having the given length.
	// An out of bounds length returns 0.
	NumPatterns(forLen byte) int64

	// Select fires the given callback with each cataloged Pattern that meets the selection criteria.
	Select(sel PatternSelector, onHit OnPatternHit)

	Close() error
}

// CatalogContext is a container for open / active Catalog instances.
type CatalogContext interface {

	// Attaches the given Catalog to this context.
	AttachCatalog(cat Catalog)

	// Detaches the given Catalog from this context.
	DetachCatalog(cat Catalog)

	// Closes all open catalogs to be closed then closes.
	Close()

	// Signals when Close() completed and all open Catalogs have been closed
	Done() <-chan struct{}
}

// CatalogOpts specifies params for opening a pattern Catalog
type CatalogOpts struct {
	DbPathName string // omit for an in-memory db
	ReadOnly   bool   // open in read-only mode
}

// PatternInfo bounds a pattern by length and starting point.
type PatternInfo struct {
	Len   byte
	Start Point
}

// PatternSelector is an operator that either selects a given Pattern or not.
type PatternSelector struct {
	Prefix *Pattern    // if set, only patterns beginning with this sequence
	Min    PatternInfo // lower select bounds
	Max    PatternInfo // upper select bounds
}

// DefaultPatternSelector selects every valid pattern.
var DefaultPatternSelector = PatternSelector{
	Min: PatternInfo{
		Len: 1,
	},
	Max: PatternInfo{
		Len:   MaxPatternLen,
		Start: NumPoints - 1,
	},
}

// AllowPattern is a convenience function used to see if a Pattern is selected according to a PatternSelector.
func (sel *PatternSelector) AllowPattern(X *Pattern) bool {
	L := byte(X.Len())
	if L < sel.Min.Len || L > sel.Max.Len {
		return false
	}
	if L > 0 {
		start := X.PointAt(0)
		if start < sel.Min.Start || start > sel.Max.Start {
			return false
		}
	}
	if sel.Prefix != nil && !X.HasPrefix(sel.Prefix) {
		return false
	}
	return true
}

// PrintOpts specifies how patterns are written by PatternStream.Print.
type PrintOpts struct {
	Label    string // prefix label
	Ordinals bool   // if set, each line is prefixed with a running count
}

// DefaultPrintOpts emits one bare digit-string line per pattern.
var DefaultPrintOpts = PrintOpts{}
