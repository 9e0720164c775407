// Package vectordb provides an in-process, in-memory vector store for Go.
//
// A Database holds independent named collections of documents. Each document
// is a UUID paired with a float32 embedding vector. Collections support
// insert-or-replace, delete and lookup by id, plus exact k-nearest-neighbor
// search under cosine similarity. Scoring is brute force over every stored
// vector and is parallelized across a bounded set of goroutines for larger
// collections.
//
// # Quick Start
//
//	ctx := context.Background()
//	db := vectordb.New()
//
//	coll := db.Add("articles")
//	coll.Upsert(uuid.New(), []float32{0.1, 0.7, 0.2})
//	coll.Upsert(uuid.New(), []float32{0.9, 0.1, 0.4})
//
//	results, err := db.Search(ctx, "articles", []float32{0.1, 0.8, 0.1}, 5)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, r := range results {
//	    fmt.Println(r.ID, r.Score)
//	}
//
// # Concurrency
//
// Each collection is guarded by a reader-writer lock: any number of searches
// and lookups may run concurrently, and mutation excludes them. Collections
// never contend with each other.
//
// The store lives for the lifetime of the owning process. There is no
// persistence layer and no approximate index; every search scans the whole
// collection and returns exact results.
package vectordb
