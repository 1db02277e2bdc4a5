package database

import (
	"errors"

	"github.com/dgraph-io/badger/v4"
)

// BadgerStore: backend local embebido, el análogo del localStorage original.
// Un único par clave/valor con escrituras sincrónicas.
type BadgerStore struct {
	db *badger.DB
}

func NewBadgerStore(path string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path).
		WithSyncWrites(true).
		WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &BadgerStore{db: db}, nil
}

// NewInMemoryStore: backend en memoria para tests.
func NewInMemoryStore() (*BadgerStore, error) {
	opts := badger.DefaultOptions("").
		WithInMemory(true).
		WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &BadgerStore{db: db}, nil
}

func (s *BadgerStore) Load() ([]byte, bool, error) {
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(StorageKey))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (s *BadgerStore) Save(data []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(StorageKey), data)
	})
}

func (s *BadgerStore) Delete() error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(StorageKey))
	})
}

func (s *BadgerStore) Close() error {
	return s.db.Close()
}
