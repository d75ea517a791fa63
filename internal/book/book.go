// Package book is a persistent cache of search results keyed by FEN,
// backed by BadgerDB: positions already searched to a given depth are
// served back instead of re-walked, the way an opening book or a
// disk-backed transposition table would.
package book

import (
	"encoding/json"
	"errors"

	"github.com/dgraph-io/badger/v4"
)

// Entry is one cached search result for a position.
type Entry struct {
	BestUCI string `json:"best_uci"`
	Score   int    `json:"score"`
	Depth   int    `json:"depth"`
	Nodes   int    `json:"nodes"`
}

// Book wraps a BadgerDB directory as a FEN -> Entry cache.
type Book struct {
	db *badger.DB
}

// Open opens (creating if necessary) a book rooted at dir.
func Open(dir string) (*Book, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Book{db: db}, nil
}

// Close releases the underlying database handle.
func (b *Book) Close() error {
	if b.db == nil {
		return nil
	}
	return b.db.Close()
}

// Lookup returns the cached entry for fen, if any, and whether it was
// found and searched to at least minDepth.
func (b *Book) Lookup(fen string, minDepth int) (Entry, bool) {
	var entry Entry
	found := false

	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(fen))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			if err := json.Unmarshal(val, &entry); err != nil {
				return err
			}
			found = entry.Depth >= minDepth
			return nil
		})
	})
	if err != nil {
		return Entry{}, false
	}
	return entry, found
}

// Store saves entry under fen, overwriting any existing entry for fen
// whatever its depth.
func (b *Book) Store(fen string, entry Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(fen), data)
	})
}
