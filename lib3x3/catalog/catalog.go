package catalog

import (
	"runtime"

	"github.com/dgraph-io/badger/v3"
	"github.com/gogo/protobuf/proto"
	"github.com/pkg/errors"

	"github.com/gridlock-systems/go3x3/go3x3"
)

/***

Catalog database format:

	gCatalogStateKey => CatalogState

	[Len byte][Point bytes...] => nil
	...

Pattern keys carry the whole pattern, so entries need no value and iterate
in census order: by length, then lexicographically by points. The reserved
state key starts with a zero byte, below every pattern key (Len >= 1).

***/

var (
	gCatalogStateKey = []byte{0x00, 0x00, 0x01}
)

const (
	gMajorVers = 2024
	gMinorVers = 1
)

// catalog is a db wrapper for an unlock pattern census
type catalog struct {
	ctx        go3x3.CatalogContext
	readOnly   bool
	stateDirty bool
	state      go3x3.CatalogState
	db         *badger.DB
}

func OpenCatalog(ctx go3x3.CatalogContext, opts go3x3.CatalogOpts) (go3x3.Catalog, error) {
	cat := &catalog{
		ctx:      ctx,
		readOnly: opts.ReadOnly,
	}

	dbOpts := badger.DefaultOptions(opts.DbPathName)
	dbOpts.ReadOnly = opts.ReadOnly
	dbOpts.DetectConflicts = false // not needed so disable for performance
	dbOpts.Logger = nil
	dbOpts.MetricsEnabled = false

	// Badger for windows currently does not support read-only mode
	if runtime.GOOS == "windows" {
		dbOpts.ReadOnly = false
	}

	if len(opts.DbPathName) == 0 {
		if opts.ReadOnly {
			return nil, errors.Wrap(go3x3.ErrBadCatalogParam, "DbPathName must be specified for read-only catalog")
		}
		dbOpts.InMemory = true
	}

	var err error
	cat.db, err = badger.Open(dbOpts)
	if err != nil {
		return nil, err
	}

	// Once the db is open, the catalog ctx blocks until the catalog closes
	ctx.AttachCatalog(cat)

	err = cat.loadState()
	if err == badger.ErrKeyNotFound {
		err = nil
		cat.stateDirty = true
		cat.state.MajorVers = gMajorVers
		cat.state.MinorVers = gMinorVers
		cat.state.NumPatterns = make([]uint64, go3x3.MaxPatternLen+1)
	}

	if err == nil {
		if cat.state.MajorVers != gMajorVers || cat.state.MinorVers != gMinorVers {
			err = errors.New("catalog version is incompatible")
		} else if len(cat.state.NumPatterns) != go3x3.MaxPatternLen+1 {
			err = errors.New("catalog counters do not match the grid")
		}
	}

	if err != nil {
		cat.Close()
		return nil, err
	}

	return cat, nil
}

func (cat *catalog) loadState() error {
	err := cat.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gCatalogStateKey)
		if err == nil {
			err = item.Value(func(val []byte) error {
				return proto.Unmarshal(val, &cat.state)
			})
		}
		return err
	})
	return err
}

func (cat *catalog) flushState() {
	if cat.stateDirty && !cat.readOnly && cat.db != nil {
		err := cat.db.Update(func(txn *badger.Txn) error {
			stateBuf, err := proto.Marshal(&cat.state)
			if err != nil {
				return err
			}
			return txn.Set(gCatalogStateKey, stateBuf)
		})
		if err != nil {
			panic(err)
		}
		cat.stateDirty = false
	}
}

func (cat *catalog) Close() error {
	cat.flushState()
	if cat.db != nil {
		cat.db.Close()
		cat.db = nil
		cat.ctx.DetachCatalog(cat)
		cat.ctx = nil
	}
	return nil
}

func (cat *catalog) IsReadOnly() bool {
	return cat.readOnly
}

func (cat *catalog) NumPatterns(forLen byte) int64 {
	if int(forLen) >= len(cat.state.NumPatterns) {
		return 0
	}
	return int64(cat.state.NumPatterns[forLen])
}

// TryAddPattern adds the given pattern if it isn't already cataloged.
//
// If true is returned, X was not present and was added and the census
// counter for its length was bumped.
func (cat *catalog) TryAddPattern(X *go3x3.Pattern) bool {
	if cat.readOnly {
		return false
	}

	var keyBuf [go3x3.MaxPatternLen + 1]byte
	key := X.AppendLSM(keyBuf[:0])

	txn := cat.db.NewTransaction(true)
	defer txn.Discard()

	_, err := txn.Get(key)
	if err == nil {
		return false
	}
	if err != badger.ErrKeyNotFound {
		panic(err)
	}

	if err = txn.Set(key, nil); err != nil {
		panic(err)
	}
	if err = txn.Commit(); err != nil {
		panic(err)
	}

	cat.state.NumPatterns[X.Len()]++
	cat.stateDirty = true
	return true
}

// Select will call onHit() with all patterns matching the given criteria,
// in catalog key order.
//
// Ownership of each emitted Pattern passes to the receiver.
func (cat *catalog) Select(sel go3x3.PatternSelector, onHit go3x3.OnPatternHit) {
	minKey := [1]byte{sel.Min.Len}

	txn := cat.db.NewTransaction(false)
	defer txn.Discard()

	it := txn.NewIterator(badger.IteratorOptions{
		PrefetchValues: false,
	})
	defer it.Close()

	for it.Seek(minKey[:]); it.Valid(); it.Next() {
		curKey := it.Item().Key()

		// Step over the state record; stop once past the length window
		if curKey[0] == 0 {
			continue
		}
		if curKey[0] > sel.Max.Len {
			break
		}

		X := go3x3.NewPattern(nil)
		if err := X.InitFromLSM(curKey); err != nil {
			panic(err)
		}
		if sel.AllowPattern(X) {
			onHit <- X
		} else {
			X.Reclaim()
		}
	}
}
