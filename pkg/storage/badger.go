package storage

import (
	"errors"

	badger "github.com/dgraph-io/badger/v4"
)

// ErrNotFound is returned when a name has no stored value.
var ErrNotFound = errors.New("entry not found")

// Store defines the interface for the persistent cache backing
type Store interface {
	Put(name string, data []byte) error
	Get(name string) ([]byte, error)
	Close() error
}

// BadgerStore is a BadgerDB implementation of the Store interface
type BadgerStore struct {
	db *badger.DB
}

// NewBadgerStore creates a new BadgerStore
func NewBadgerStore(path string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil // badger's own logs drown out ours

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &BadgerStore{db: db}, nil
}

// Put stores the serialized cache entry for a domain name
func (s *BadgerStore) Put(name string, data []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(name), data)
	})
	return err
}

// Get retrieves the serialized cache entry for a domain name
func (s *BadgerStore) Get(name string) ([]byte, error) {
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(name))
		if err != nil {
			return err // badger.ErrKeyNotFound
		}
		data, err = item.ValueCopy(nil)
		return err
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	return data, err
}

// Close closes the BadgerDB
func (s *BadgerStore) Close() error {
	return s.db.Close()
}
