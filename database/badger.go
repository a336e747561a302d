package database

import (
	"encoding/json"
	"sync/atomic"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Store keeps every collection as flat JSON documents inside an
// in-memory badger instance. Entity keys carry a monotonic sequence
// number so that whole-collection scans come back in insertion order;
// a second keyspace indexes each document by id.
type Store struct {
	db  *badger.DB
	seq uint64
}

// New opens a fresh in-memory store
func New() (*Store, error) {
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	if err != nil {
		return nil, errors.Wrap(err, "open badger")
	}

	return &Store{db: db}, nil
}

// Close releases the underlying badger instance
func (s *Store) Close() error {
	return s.db.Close()
}

func entityPrefix(collection string) []byte {
	return []byte("e/" + collection + "/")
}

func entityKey(collection string, seq uint64) []byte {
	key := entityPrefix(collection)
	for shift := 56; shift >= 0; shift -= 8 {
		key = append(key, byte(seq>>uint(shift)))
	}
	return key
}

func indexKey(collection string, id string) []byte {
	return []byte("i/" + collection + "/" + id)
}

// FindOne returns the first document of the collection matching the
// predicate, in insertion order, or nil when nothing matches.
// Lookups by id go through the index instead of a scan.
func (s *Store) FindOne(collection string, p Predicate) (Document, error) {
	if p.Key == "id" && p.InArray == "" {
		return s.getByID(collection, p.Equals)
	}

	var found Document
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = entityPrefix(collection)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			doc, err := decodeItem(it.Item())
			if err != nil {
				return err
			}
			if p.Match(doc) {
				found = doc
				return nil
			}
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "findOne %s", collection)
	}

	return found, nil
}

// FindMany returns every document of the collection matching the
// predicate, in insertion order. A nil predicate returns the whole
// collection.
func (s *Store) FindMany(collection string, p *Predicate) ([]Document, error) {
	var list []Document
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = entityPrefix(collection)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			doc, err := decodeItem(it.Item())
			if err != nil {
				return err
			}
			if p == nil || p.Match(doc) {
				list = append(list, doc)
			}
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "findMany %s", collection)
	}

	return list, nil
}

// Create stores a new document and returns it. A fresh id is assigned
// unless the document already carries one (seed data does).
func (s *Store) Create(collection string, data Document) (Document, error) {
	doc := Document{}
	for key, value := range data {
		doc[key] = value
	}
	if id, ok := doc["id"].(string); !ok || id == "" {
		doc["id"] = uuid.NewString()
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrapf(err, "create %s", collection)
	}

	key := entityKey(collection, atomic.AddUint64(&s.seq, 1))
	err = s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(key, raw); err != nil {
			return err
		}
		return txn.Set(indexKey(collection, doc["id"].(string)), key)
	})
	if err != nil {
		return nil, errors.Wrapf(err, "create %s", collection)
	}

	// round-trip so callers always see JSON-decoded field types
	var stored Document
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, errors.Wrapf(err, "create %s", collection)
	}

	return stored, nil
}

// Change merges the provided fields into the document identified by id
// and returns the updated document. Absent fields keep their prior
// value. Fails with ErrNoSuchEntity when the id is unknown.
func (s *Store) Change(collection string, id string, fields Document) (Document, error) {
	var updated Document
	err := s.db.Update(func(txn *badger.Txn) error {
		key, doc, err := getLocked(txn, collection, id)
		if err != nil {
			return err
		}
		if doc == nil {
			return errors.Wrapf(ErrNoSuchEntity, "%s/%s", collection, id)
		}

		for name, value := range fields {
			if name == "id" {
				continue
			}
			doc[name] = value
		}

		raw, err := json.Marshal(doc)
		if err != nil {
			return err
		}
		if err := txn.Set(key, raw); err != nil {
			return err
		}

		return json.Unmarshal(raw, &updated)
	})
	if err != nil {
		return nil, errors.Wrapf(err, "change %s", collection)
	}

	return updated, nil
}

// Delete removes the document identified by id and returns it, or nil
// when the id is unknown
func (s *Store) Delete(collection string, id string) (Document, error) {
	var removed Document
	err := s.db.Update(func(txn *badger.Txn) error {
		key, doc, err := getLocked(txn, collection, id)
		if err != nil {
			return err
		}
		if doc == nil {
			return nil
		}

		if err := txn.Delete(key); err != nil {
			return err
		}
		if err := txn.Delete(indexKey(collection, id)); err != nil {
			return err
		}

		removed = doc
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "delete %s", collection)
	}

	return removed, nil
}

func (s *Store) getByID(collection string, id string) (Document, error) {
	var found Document
	err := s.db.View(func(txn *badger.Txn) error {
		_, doc, err := getLocked(txn, collection, id)
		if err != nil {
			return err
		}
		found = doc
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "get %s/%s", collection, id)
	}

	return found, nil
}

// getLocked resolves id -> entity key -> document inside txn.
// Returns a nil document when the id is unknown.
func getLocked(txn *badger.Txn, collection string, id string) ([]byte, Document, error) {
	item, err := txn.Get(indexKey(collection, id))
	if err == badger.ErrKeyNotFound {
		return nil, nil, nil
	} else if err != nil {
		return nil, nil, err
	}

	key, err := item.ValueCopy(nil)
	if err != nil {
		return nil, nil, err
	}

	entity, err := txn.Get(key)
	if err != nil {
		return nil, nil, err
	}

	doc, err := decodeItem(entity)
	if err != nil {
		return nil, nil, err
	}

	return key, doc, nil
}

func decodeItem(item *badger.Item) (Document, error) {
	raw, err := item.ValueCopy(nil)
	if err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	return doc, nil
}
