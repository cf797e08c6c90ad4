package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const keyMagicPrefix = "magics/"

// ErrNotFound is returned when no magic set is stored for a family.
var ErrNotFound = errors.New("storage: not found")

// MagicSet is one family's magic multipliers, indexed by square, together
// with how they were found.
type MagicSet struct {
	Family   string     `json:"family"`
	Seed     uint64     `json:"seed"`
	Numbers  [64]uint64 `json:"numbers"`
	Attempts int64      `json:"attempts"`
	FoundAt  time.Time  `json:"found_at"`
}

func magicKey(family string) []byte {
	return []byte(keyMagicPrefix + family)
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// Open opens (creating if needed) the database in dir.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging
	return open(opts)
}

// OpenInMemory opens a database that lives only as long as the process.
func OpenInMemory() (*Storage, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	return open(opts)
}

func open(opts badger.Options) (*Storage, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open magic store: %w", err)
	}
	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveMagics stores set under its family, replacing any earlier set.
func (s *Storage) SaveMagics(set *MagicSet) error {
	if set.Family == "" {
		return errors.New("storage: magic set has no family")
	}
	if set.FoundAt.IsZero() {
		set.FoundAt = time.Now()
	}

	data, err := json.Marshal(set)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(magicKey(set.Family), data)
	})
}

// LoadMagics returns the set stored for family, or ErrNotFound.
func (s *Storage) LoadMagics(family string) (*MagicSet, error) {
	set := &MagicSet{}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(magicKey(family))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s magics", ErrNotFound, family)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, set)
		})
	})
	if err != nil {
		return nil, err
	}
	return set, nil
}

// DeleteMagics removes the set stored for family. Deleting a missing set is not an error.
func (s *Storage) DeleteMagics(family string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(magicKey(family))
	})
}

// Families lists the families that have a stored set, in key order.
func (s *Storage) Families() ([]string, error) {
	var families []string

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(keyMagicPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			families = append(families, strings.TrimPrefix(string(it.Item().Key()), keyMagicPrefix))
		}
		return nil
	})

	return families, err
}
