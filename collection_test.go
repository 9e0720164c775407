package vectordb

import (
	"context"
	"math"
	"strconv"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vectordb/testutil"
)

func newTestCollection(optFns ...Option) *Collection {
	return New(optFns...).Add("test")
}

// testID returns a deterministic UUID for the given ordinal, so that test
// fixtures are reproducible across runs.
func testID(i int) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(strconv.Itoa(i)))
}

func randomVectors(n, dim int, seed int64) [][]float32 {
	return testutil.NewRNG(seed).UniformRangeVectors(n, dim)
}

func TestUpsertAndGet(t *testing.T) {
	coll := newTestCollection()
	id := uuid.New()

	coll.Upsert(id, []float32{1, 2, 3})

	got, ok := coll.Get(id)
	require.True(t, ok)
	assert.Equal(t, []float32{1, 2, 3}, got)
	assert.Equal(t, 1, coll.Len())
}

func TestUpsertReplaces(t *testing.T) {
	coll := newTestCollection()
	id := uuid.New()

	coll.Upsert(id, []float32{1, 2, 3})
	coll.Upsert(id, []float32{4, 5, 6})

	got, ok := coll.Get(id)
	require.True(t, ok)
	assert.Equal(t, []float32{4, 5, 6}, got)
	assert.Equal(t, 1, coll.Len(), "upsert with an existing id must not create a duplicate")
}

func TestUpsertCopiesVector(t *testing.T) {
	coll := newTestCollection()
	id := uuid.New()

	v := []float32{1, 2, 3}
	coll.Upsert(id, v)
	v[0] = 99

	got, _ := coll.Get(id)
	assert.Equal(t, float32(1), got[0], "stored vector must not alias the caller's slice")
}

func TestGetReturnsCopy(t *testing.T) {
	coll := newTestCollection()
	id := uuid.New()

	coll.Upsert(id, []float32{1, 2, 3})

	got, _ := coll.Get(id)
	got[0] = 99

	again, _ := coll.Get(id)
	assert.Equal(t, float32(1), again[0])
}

func TestGetAbsent(t *testing.T) {
	coll := newTestCollection()

	got, ok := coll.Get(uuid.New())
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestDelete(t *testing.T) {
	coll := newTestCollection()
	id := uuid.New()

	coll.Upsert(id, []float32{1, 2, 3})

	assert.True(t, coll.Delete(id))
	_, ok := coll.Get(id)
	assert.False(t, ok)
	assert.Equal(t, 0, coll.Len())

	assert.False(t, coll.Delete(id), "deleting an absent id reports no removal")
}

func TestBatchUpsert(t *testing.T) {
	coll := newTestCollection()

	docs := []Document{
		{ID: testID(0), Vector: []float32{1, 0}},
		{ID: testID(1), Vector: []float32{0, 1}},
		{ID: testID(2), Vector: []float32{1, 1}},
	}
	coll.BatchUpsert(docs)

	assert.Equal(t, 3, coll.Len())
	for _, d := range docs {
		got, ok := coll.Get(d.ID)
		require.True(t, ok)
		assert.Equal(t, d.Vector, got)
	}

	// Empty batch is a no-op.
	coll.BatchUpsert(nil)
	assert.Equal(t, 3, coll.Len())
}

func TestSearchEmptyCollection(t *testing.T) {
	coll := newTestCollection()

	results, err := coll.Search(context.Background(), []float32{1, 0, 0}, 5)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchKZero(t *testing.T) {
	coll := newTestCollection()
	coll.Upsert(uuid.New(), []float32{1, 0, 0})

	results, err := coll.Search(context.Background(), []float32{1, 0, 0}, 0)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchKLargerThanCollection(t *testing.T) {
	coll := newTestCollection()
	coll.Upsert(uuid.New(), []float32{1, 0})
	coll.Upsert(uuid.New(), []float32{0, 1})

	results, err := coll.Search(context.Background(), []float32{1, 0}, 10)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestSearchRanking(t *testing.T) {
	coll := newTestCollection()

	exact := testID(1)
	orthogonal := testID(2)
	angled := testID(3)

	coll.Upsert(exact, []float32{1, 0, 0})
	coll.Upsert(orthogonal, []float32{0, 1, 0})
	coll.Upsert(angled, []float32{1, 1, 0})

	results, err := coll.Search(context.Background(), []float32{1, 0, 0}, 2)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, exact, results[0].ID)
	assert.InDelta(t, 1.0, results[0].Score, 1e-5)

	assert.Equal(t, angled, results[1].ID)
	assert.InDelta(t, 1/math.Sqrt2, results[1].Score, 1e-5)
}

func TestSearchSkipsDimensionMismatch(t *testing.T) {
	coll := newTestCollection()

	matching := testID(1)
	coll.Upsert(matching, []float32{1, 0, 0})
	coll.Upsert(testID(2), []float32{1, 0})

	results, err := coll.Search(context.Background(), []float32{1, 0, 0}, 10)
	require.NoError(t, err)
	require.Len(t, results, 1, "a mismatched document is skipped, not fatal")
	assert.Equal(t, matching, results[0].ID)
}

func TestSearchZeroMagnitude(t *testing.T) {
	coll := newTestCollection()

	zero := testID(1)
	match := testID(2)

	coll.Upsert(zero, []float32{0, 0, 0})
	coll.Upsert(match, []float32{2, 0, 0})

	results, err := coll.Search(context.Background(), []float32{1, 0, 0}, 10)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, match, results[0].ID)
	assert.Equal(t, zero, results[1].ID)
	assert.Equal(t, float32(0), results[1].Score)

	for _, r := range results {
		assert.False(t, math.IsNaN(float64(r.Score)))
	}
}

func TestSearchTieBreakByID(t *testing.T) {
	coll := newTestCollection()

	lo := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	hi := uuid.MustParse("00000000-0000-0000-0000-000000000002")

	// Same vector, same score. Insert in both orders to rule out
	// insertion-order effects.
	coll.Upsert(hi, []float32{1, 1})
	coll.Upsert(lo, []float32{1, 1})

	results, err := coll.Search(context.Background(), []float32{1, 1}, 2)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, lo, results[0].ID)
	assert.Equal(t, hi, results[1].ID)
}

func TestSearchDeterminism(t *testing.T) {
	const (
		size = 5000
		dim  = 32
		k    = 25
	)

	vectors := randomVectors(size, dim, 4711)

	load := func(coll *Collection) {
		docs := make([]Document, size)
		for i, v := range vectors {
			docs[i] = Document{ID: testID(i), Vector: v}
		}
		coll.BatchUpsert(docs)
	}

	parallel := newTestCollection()
	serial := newTestCollection(WithSearchWorkers(1))
	load(parallel)
	load(serial)

	query := randomVectors(1, dim, 814)[0]

	first, err := parallel.Search(context.Background(), query, k)
	require.NoError(t, err)
	require.Len(t, first, k)

	for i := 1; i < len(first); i++ {
		assert.LessOrEqual(t, first[i].Score, first[i-1].Score, "scores must be non-increasing")
	}

	// Re-running the identical query yields the identical ordered result.
	second, err := parallel.Search(context.Background(), query, k)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Parallel scoring must not change the result versus single-threaded.
	single, err := serial.Search(context.Background(), query, k)
	require.NoError(t, err)
	assert.Equal(t, first, single)
}

func TestSearchMatchesExactTopK(t *testing.T) {
	const (
		size = 1000
		dim  = 16
		k    = 10
	)

	vectors := randomVectors(size, dim, 23)

	coll := newTestCollection(WithMinParallel(0))
	for i, v := range vectors {
		coll.Upsert(testID(i), v)
	}

	query := randomVectors(1, dim, 99)[0]

	results, err := coll.Search(context.Background(), query, k)
	require.NoError(t, err)

	truth := testutil.ExactTopK(query, vectors, k)
	require.Len(t, results, len(truth))

	for i, want := range truth {
		assert.Equal(t, testID(want.Index), results[i].ID)
		assert.Equal(t, want.Score, results[i].Score)
	}
}

func TestSearchContextCancelled(t *testing.T) {
	coll := newTestCollection()
	coll.Upsert(uuid.New(), []float32{1, 0})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := coll.Search(ctx, []float32{1, 0}, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConcurrentSearchAndMutate(t *testing.T) {
	coll := newTestCollection(WithMinParallel(0))

	for i := 0; i < 100; i++ {
		coll.Upsert(testID(i), []float32{float32(i), 1, 0})
	}

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				switch i % 3 {
				case 0:
					coll.Upsert(testID(1000+w*200+i), []float32{float32(i), 0, 1})
				case 1:
					coll.Delete(testID(i % 100))
				default:
					_, err := coll.Search(context.Background(), []float32{1, 1, 1}, 10)
					assert.NoError(t, err)
				}
			}
		}(w)
	}
	wg.Wait()
}
