package vectordb

import (
	"bytes"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/vectordb/distance"
)

// Document pairs a unique identifier with its embedding vector.
type Document struct {
	ID     uuid.UUID
	Vector []float32
}

// SearchResult is a single ranked match returned by Search.
type SearchResult struct {
	ID    uuid.UUID
	Score float32
}

// Collection is a named set of documents sharing a vector space.
//
// Documents are held in memory only; the map from id to vector is the sole
// source of truth. All vectors in a collection are expected to share the
// same dimensionality by convention. This is not enforced on write: a
// document whose length differs from the query is skipped during search.
//
// A Collection is safe for concurrent use. Reads (Get, Len, Search) may
// overlap freely; mutation excludes them via a reader-writer lock. Stored
// vectors are never modified in place — Upsert installs a fresh copy — so a
// snapshot taken under the read lock stays valid after the lock is released.
type Collection struct {
	name string

	mu   sync.RWMutex
	docs map[uuid.UUID][]float32

	opts options
}

func newCollection(name string, opts options) *Collection {
	return &Collection{
		name: name,
		docs: make(map[uuid.UUID][]float32),
		opts: opts,
	}
}

// Name returns the collection name.
func (c *Collection) Name() string { return c.name }

// Len returns the number of documents in the collection.
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.docs)
}

// Upsert inserts a new document or replaces the vector of an existing one
// with the same id. The vector is copied; the caller keeps ownership of its
// slice.
func (c *Collection) Upsert(id uuid.UUID, vector []float32) {
	start := time.Now()

	// Copy so changes outside this function don't affect the stored document.
	vec := slices.Clone(vector)

	c.mu.Lock()
	c.docs[id] = vec
	c.mu.Unlock()

	c.opts.metrics.RecordUpsert(time.Since(start))
	c.opts.logger.LogUpsert(c.name, id, len(vec))
}

// BatchUpsert inserts or replaces multiple documents in a single operation.
// This is more efficient than calling Upsert repeatedly as it acquires the
// lock once.
func (c *Collection) BatchUpsert(docs []Document) {
	if len(docs) == 0 {
		return
	}

	start := time.Now()

	c.mu.Lock()
	for _, d := range docs {
		c.docs[d.ID] = slices.Clone(d.Vector)
	}
	c.mu.Unlock()

	c.opts.metrics.RecordBatchUpsert(len(docs), time.Since(start))
	c.opts.logger.LogBatchUpsert(c.name, len(docs))
}

// Get returns a copy of the stored vector for the given id, or false if no
// such document exists.
func (c *Collection) Get(id uuid.UUID) ([]float32, bool) {
	c.mu.RLock()
	vec, ok := c.docs[id]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	return slices.Clone(vec), true
}

// Delete removes the document with the given id and reports whether a
// removal occurred. Deleting an absent id is not an error.
func (c *Collection) Delete(id uuid.UUID) bool {
	start := time.Now()

	c.mu.Lock()
	_, ok := c.docs[id]
	if ok {
		delete(c.docs, id)
	}
	c.mu.Unlock()

	c.opts.metrics.RecordDelete(time.Since(start), ok)
	c.opts.logger.LogDelete(c.name, id, ok)

	return ok
}

// Search returns the k documents most similar to query under cosine
// similarity, ordered by descending score. Ties are broken by id so that
// repeated queries against an unchanged collection always return the same
// order, regardless of how scoring work was scheduled.
//
// Stored vectors whose length differs from the query are skipped. A zero
// magnitude on either side scores as 0. If the collection holds fewer than
// k documents, all of them are returned. k <= 0 yields an empty result.
//
// The only error condition is context cancellation.
func (c *Collection) Search(ctx context.Context, query []float32, k int) ([]SearchResult, error) {
	start := time.Now()

	results, err := c.search(ctx, query, k)

	c.opts.metrics.RecordSearch(k, time.Since(start), err)
	c.opts.logger.LogSearch(ctx, c.name, k, len(results), err)

	return results, err
}

func (c *Collection) search(ctx context.Context, query []float32, k int) ([]SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Snapshot under the read lock, score after releasing it. Stored
	// vectors are immutable (Upsert replaces, never mutates), so the
	// snapshot cannot be written to by a concurrent mutation.
	c.mu.RLock()
	snapshot := make([]Document, 0, len(c.docs))
	for id, vec := range c.docs {
		snapshot = append(snapshot, Document{ID: id, Vector: vec})
	}
	c.mu.RUnlock()

	if k <= 0 || len(snapshot) == 0 {
		return []SearchResult{}, nil
	}

	scores := make([]float32, len(snapshot))
	keep := make([]bool, len(snapshot))

	if err := c.score(ctx, query, snapshot, scores, keep); err != nil {
		return nil, err
	}

	results := make([]SearchResult, 0, len(snapshot))
	for i, d := range snapshot {
		if !keep[i] {
			continue
		}
		results = append(results, SearchResult{ID: d.ID, Score: scores[i]})
	}

	slices.SortFunc(results, cmpResultByScoreDesc)

	if k > len(results) {
		k = len(results)
	}
	return results[:k:k], nil
}

// score fills scores and keep for every snapshot entry, fanning out across
// a bounded set of goroutines when the snapshot is large enough. Workers
// write to disjoint index ranges, so no locking is needed during scoring.
func (c *Collection) score(ctx context.Context, query []float32, snapshot []Document, scores []float32, keep []bool) error {
	workers := c.opts.searchWorkers
	if workers <= 1 || len(snapshot) < c.opts.minParallel {
		scoreRange(query, snapshot, scores, keep, 0, len(snapshot))
		return nil
	}
	if workers > len(snapshot) {
		workers = len(snapshot)
	}

	g, gctx := errgroup.WithContext(ctx)

	chunk := (len(snapshot) + workers - 1) / workers
	for lo := 0; lo < len(snapshot); lo += chunk {
		lo, hi := lo, min(lo+chunk, len(snapshot))
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			scoreRange(query, snapshot, scores, keep, lo, hi)
			return nil
		})
	}

	return g.Wait()
}

func scoreRange(query []float32, snapshot []Document, scores []float32, keep []bool, lo, hi int) {
	for i := lo; i < hi; i++ {
		vec := snapshot[i].Vector
		if len(vec) != len(query) {
			continue
		}
		scores[i] = distance.Cosine(query, vec)
		keep[i] = true
	}
}

// cmpResultByScoreDesc orders by score descending, then id ascending.
// Package-level to avoid closure allocation in the search hot path.
func cmpResultByScoreDesc(a, b SearchResult) int {
	if a.Score > b.Score {
		return -1
	}
	if a.Score < b.Score {
		return 1
	}
	return bytes.Compare(a.ID[:], b.ID[:])
}
