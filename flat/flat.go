// Package flat provides an exhaustive-scan index that ranks every stored
// vector against a query with the collection's distance metric.
package flat

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"sync"
	"sync/atomic"

	"github.com/hupe1980/vecspace/collection"
	"github.com/hupe1980/vecspace/distance"
	"github.com/hupe1980/vecspace/internal/queue"
)

var (
	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("k must be positive")

	// ErrNotFound is returned when an ID is not in the index.
	ErrNotFound = errors.New("vector not found")

	// ErrDuplicateID is returned when inserting an ID that already exists.
	ErrDuplicateID = errors.New("vector id already exists")
)

// cancelCheckInterval is how many candidates are scored between context checks.
const cancelCheckInterval = 256

// SearchResult represents a search result.
type SearchResult struct {
	// ID is the identifier of the stored vector.
	ID uint64

	// Distance is the distance between the query and the stored vector.
	Distance float32
}

type entry struct {
	id  uint64
	vec []float32
}

// indexState holds the immutable state of the index for lock-free reads.
type indexState struct {
	entries []entry
	pos     map[uint64]int // id -> offset in entries
}

// Index is a flat index over the vectors of one collection.
// It uses a copy-on-write pattern for lock-free concurrent reads.
type Index struct {
	state   atomic.Pointer[indexState]
	writeMu sync.Mutex // Serializes writes only
	cfg     collection.Config
}

// New creates a flat index for the given collection config.
func New(cfg *collection.Config) (*Index, error) {
	if cfg == nil {
		return nil, errors.New("flat: nil collection config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	f := &Index{cfg: *cfg}
	f.state.Store(&indexState{pos: map[uint64]int{}})

	return f, nil
}

// Config returns the collection config of the index.
func (f *Index) Config() collection.Config { return f.cfg }

// Metric returns the distance metric used for ranking.
func (f *Index) Metric() distance.Metric { return f.cfg.Space }

// Len returns the number of stored vectors.
func (f *Index) Len() int { return len(f.state.Load().entries) }

// Insert stores a copy of v under id.
func (f *Index) Insert(ctx context.Context, id uint64, v []float32) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := f.cfg.CheckVector(v); err != nil {
		return err
	}

	f.writeMu.Lock()
	defer f.writeMu.Unlock()

	old := f.state.Load()
	if _, ok := old.pos[id]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateID, id)
	}

	next := &indexState{
		entries: make([]entry, len(old.entries), len(old.entries)+1),
		pos:     make(map[uint64]int, len(old.pos)+1),
	}
	copy(next.entries, old.entries)
	for k, p := range old.pos {
		next.pos[k] = p
	}

	next.pos[id] = len(next.entries)
	next.entries = append(next.entries, entry{id: id, vec: append([]float32(nil), v...)})

	f.state.Store(next)

	return nil
}

// Delete removes the vector stored under id.
func (f *Index) Delete(ctx context.Context, id uint64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f.writeMu.Lock()
	defer f.writeMu.Unlock()

	old := f.state.Load()
	at, ok := old.pos[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}

	next := &indexState{
		entries: make([]entry, 0, len(old.entries)-1),
		pos:     make(map[uint64]int, len(old.pos)-1),
	}
	next.entries = append(next.entries, old.entries[:at]...)
	next.entries = append(next.entries, old.entries[at+1:]...)
	for i, e := range next.entries {
		next.pos[e.id] = i
	}

	f.state.Store(next)

	return nil
}

// Get returns a copy of the vector stored under id.
func (f *Index) Get(id uint64) ([]float32, error) {
	st := f.state.Load()
	at, ok := st.pos[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return append([]float32(nil), st.entries[at].vec...), nil
}

// Search returns the k stored vectors nearest to query, nearest first.
// Equal distances are ordered by ascending ID. A nil filter admits every ID.
func (f *Index) Search(ctx context.Context, query []float32, k int, filter func(id uint64) bool) ([]SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if k <= 0 {
		return nil, ErrInvalidK
	}
	if err := f.cfg.CheckVector(query); err != nil {
		return nil, err
	}

	st := f.state.Load()
	if len(st.entries) == 0 {
		return nil, nil
	}

	topK := queue.NewMax(min(k, len(st.entries)))

	for i, e := range st.entries {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		if filter != nil && !filter(e.id) {
			continue
		}

		d, err := distance.Distance(f.cfg.Space, query, e.vec)
		if err != nil {
			return nil, err
		}

		topK.PushBounded(queue.Item{ID: e.id, Distance: d}, k)
	}

	items := topK.Drain()
	results := make([]SearchResult, len(items))
	for i, it := range items {
		results[i] = SearchResult{ID: it.ID, Distance: it.Distance}
	}

	return results, nil
}

// SearchStream returns an iterator over Search results, nearest first.
// Stop iterating to discard the remaining results.
func (f *Index) SearchStream(ctx context.Context, query []float32, k int, filter func(id uint64) bool) iter.Seq2[SearchResult, error] {
	return func(yield func(SearchResult, error) bool) {
		results, err := f.Search(ctx, query, k, filter)
		if err != nil {
			yield(SearchResult{}, err)
			return
		}

		for _, r := range results {
			if !yield(r, nil) {
				return
			}
		}
	}
}
