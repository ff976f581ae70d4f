package go3x3

import (
	"bytes"
	"fmt"
	"io"

	"github.com/emirpasic/gods/trees/redblacktree"
)

// PatternStream is a pipeline of Patterns; each stage runs in its own
// goroutine and hands Pattern ownership downstream.
type PatternStream struct {
	Outlet chan *Pattern
}

func NewPatternStream() *PatternStream {
	stream := &PatternStream{
		Outlet: make(chan *Pattern),
	}
	return stream
}

func StreamPattern(X *Pattern) *PatternStream {
	next := NewPatternStream()

	go func() {
		next.Outlet <- NewPattern(X)
		next.Close()
	}()

	return next
}

func (stream *PatternStream) Close() {
	if stream.Outlet != nil {
		close(stream.Outlet)
	}
}

func (stream *PatternStream) PushPattern(X *Pattern) {
	stream.Outlet <- NewPattern(X)
}

func (stream *PatternStream) PullPattern() *Pattern {
	X := <-stream.Outlet
	return X
}

// PullAll drains the stream, reclaiming every pattern and returning the count pulled.
func (stream *PatternStream) PullAll() int {
	count := int(0)
	for X := range stream.Outlet {
		count++
		X.Reclaim()
	}
	return count
}

// Print writes one line per pattern to out as it passes through.
//
// The caller retains ownership of out; several pipeline runs may print to
// the same writer in sequence.
func (stream *PatternStream) Print(out io.Writer, opts PrintOpts) *PatternStream {
	next := &PatternStream{
		Outlet: make(chan *Pattern, 1),
	}

	go func() {
		var lineBuf [32]byte

		count := 0
		for X := range stream.Outlet {
			line := lineBuf[:0]
			if len(opts.Label) > 0 {
				line = append(line, opts.Label...)
				line = append(line, ',')
			}
			count++
			if opts.Ordinals {
				line = fmt.Appendf(line, "%06d,", count)
			}
			line = X.AppendAscii(line)
			line = append(line, '\n')
			if _, err := out.Write(line); err != nil {
				panic(err)
			}
			next.Outlet <- X
		}
		next.Close()
	}()

	return next
}

// AddTo offers each pattern to target, passing through only those that were
// newly added and reclaiming the rest.
func (stream *PatternStream) AddTo(target PatternAdder) *PatternStream {
	next := &PatternStream{
		Outlet: make(chan *Pattern, 1),
	}

	go func() {
		for X := range stream.Outlet {
			wasAdded := target.TryAddPattern(X)
			if wasAdded {
				next.Outlet <- X
			} else {
				X.Reclaim()
			}
		}
		next.Close()
	}()

	return next
}

func SelectFromCatalog(cat Catalog, sel PatternSelector) *PatternStream {
	next := &PatternStream{
		Outlet: make(chan *Pattern, 1),
	}

	onHit := make(chan *Pattern, 4)

	go func() {
		cat.Select(sel, onHit)
		close(onHit)
	}()

	go func() {
		for X := range onHit {
			if sel.AllowPattern(X) {
				next.Outlet <- X
			} else {
				X.Reclaim()
			}
		}
		next.Close()
	}()

	return next
}

func (stream *PatternStream) SelectFromStream(sel PatternSelector) *PatternStream {
	next := &PatternStream{
		Outlet: make(chan *Pattern, 1),
	}

	go func() {
		for X := range stream.Outlet {
			if sel.AllowPattern(X) {
				next.Outlet <- X
			} else {
				X.Reclaim()
			}
		}
		next.Close()
	}()

	return next
}

// SortLexical collects the entire stream and re-emits it ordered by pattern
// length, then lexicographically by points. The workload is bounded by the
// grid, so buffering the whole stream is acceptable.
func (stream *PatternStream) SortLexical() *PatternStream {
	next := &PatternStream{
		Outlet: make(chan *Pattern, 1),
	}

	go func() {
		sorted := redblacktree.Tree{
			Comparator: func(a, b interface{}) int {
				return bytes.Compare(a.([]byte), b.([]byte))
			},
		}
		for X := range stream.Outlet {
			sorted.Put(X.AppendLSM(nil), X)
		}

		itr := sorted.Iterator()
		for itr.Next() {
			next.Outlet <- itr.Value().(*Pattern)
		}
		next.Close()
	}()

	return next
}

// PermuteSymmetries emits the image of each pattern under all 8 grid
// symmetries (the identity image first).
func (stream *PatternStream) PermuteSymmetries() *PatternStream {
	next := &PatternStream{
		Outlet: make(chan *Pattern, 1),
	}

	go func() {
		for Xsrc := range stream.Outlet {
			for si := range GridSymmetries {
				next.Outlet <- GridSymmetries[si].MapPattern(Xsrc)
			}
			Xsrc.Reclaim()
		}
		next.Close()
	}()

	return next
}
