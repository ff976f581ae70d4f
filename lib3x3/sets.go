package lib3x3

import (
	"github.com/dgraph-io/badger/v3"

	"github.com/gridlock-systems/go3x3/go3x3"
)

// PatternSet is an add-if-absent membership set of Patterns.
type PatternSet interface {
	go3x3.PatternAdder

	// Close drops every member. The set may be reused after Close; a
	// reused set must be closed again.
	Close()
}

// NewPatternSet returns an empty in-memory PatternSet backed by the same
// LSM store the catalog uses, keyed by the pattern's LSM form.
func NewPatternSet() PatternSet {
	return &patternSet{}
}

type patternSet struct {
	lsmSet
}

func (set *patternSet) TryAddPattern(X *go3x3.Pattern) bool {
	var keyBuf [go3x3.MaxPatternLen + 1]byte
	key := X.AppendLSM(keyBuf[:0])
	return set.tryAdd(key)
}

type lsmSet struct {
	db *badger.DB
}

func (set *lsmSet) autoOpen() {
	if set.db == nil {
		dbOpts := badger.DefaultOptions("").WithInMemory(true)
		dbOpts.Logger = nil
		dbOpts.MetricsEnabled = false

		var err error
		set.db, err = badger.Open(dbOpts)
		if err != nil {
			panic(err)
		}
	}
}

func (set *lsmSet) tryAdd(key []byte) bool {
	set.autoOpen()

	txn := set.db.NewTransaction(true)
	defer txn.Commit()

	added := false
	_, err := txn.Get(key)
	if err == nil {
		// already a member
	} else if err == badger.ErrKeyNotFound {
		err = txn.Set(key, nil)
		added = true
	}

	if err != nil {
		panic(err)
	}

	return added
}

func (set *lsmSet) Close() {
	if set.db != nil {
		set.db.Close()
		set.db = nil
	}
}
