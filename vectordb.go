package vectordb

import (
	"context"
	"fmt"
	"slices"
	"sync"
)

// Database owns a set of named collections and routes document operations to
// the addressed collection. It is created empty and lives for the duration
// of the owning process.
//
// A Database is safe for concurrent use. Operations on different collections
// never contend with each other.
type Database struct {
	mu          sync.RWMutex
	collections map[string]*Collection

	opts options
}

// New creates an empty Database.
func New(optFns ...Option) *Database {
	opts := defaultOptions()

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Database{
		collections: make(map[string]*Collection),
		opts:        opts,
	}
}

// Add creates a new empty collection under name and returns it.
//
// If a collection with the same name already exists it is replaced by the
// new empty one, mirroring plain map-insert semantics. Callers that want
// get-or-create should check Get first.
func (db *Database) Add(name string) *Collection {
	coll := newCollection(name, db.opts)

	db.mu.Lock()
	_, replaced := db.collections[name]
	db.collections[name] = coll
	db.mu.Unlock()

	db.opts.logger.LogAddCollection(name, replaced)

	return coll
}

// Get returns the collection with the given name, or false if it does not
// exist. The returned pointer is live: document operations on it are
// reflected in the database.
func (db *Database) Get(name string) (*Collection, bool) {
	db.mu.RLock()
	coll, ok := db.collections[name]
	db.mu.RUnlock()

	return coll, ok
}

// Drop removes the collection with the given name and reports whether a
// removal occurred.
func (db *Database) Drop(name string) bool {
	db.mu.Lock()
	_, ok := db.collections[name]
	if ok {
		delete(db.collections, name)
	}
	db.mu.Unlock()

	db.opts.logger.LogDropCollection(name, ok)

	return ok
}

// Names returns the names of all collections in lexical order.
func (db *Database) Names() []string {
	db.mu.RLock()
	names := make([]string, 0, len(db.collections))
	for name := range db.collections {
		names = append(names, name)
	}
	db.mu.RUnlock()

	slices.Sort(names)
	return names
}

// Len returns the number of collections.
func (db *Database) Len() int {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return len(db.collections)
}

// Search resolves the collection by name and delegates to Collection.Search.
// An unknown name yields an error satisfying errors.Is(err, ErrCollectionNotFound).
func (db *Database) Search(ctx context.Context, name string, query []float32, k int) ([]SearchResult, error) {
	coll, ok := db.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrCollectionNotFound, name)
	}

	return coll.Search(ctx, query, k)
}
