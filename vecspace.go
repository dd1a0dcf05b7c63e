package vecspace

import (
	"context"
	"iter"
	"time"

	"github.com/hupe1980/vecspace/codec"
	"github.com/hupe1980/vecspace/collection"
	"github.com/hupe1980/vecspace/distance"
	"github.com/hupe1980/vecspace/flat"
)

// Collection is a named set of vectors ranked under one distance metric.
// It is safe for concurrent use.
type Collection struct {
	cfg     collection.Config
	index   *flat.Index
	metrics MetricsCollector
	logger  *Logger
}

// NewCollection creates an empty collection.
//
// The metric is taken from metadata["hnsw:space"] ("l2", "cosine" or "ip")
// and defaults to "l2" when the key is absent. An unknown name is rejected
// with *distance.ErrInvalidDistanceFunction; Code reports it as
// codes.InvalidArgument.
func NewCollection(name string, dimension int, metadata map[string]any, optFns ...Option) (*Collection, error) {
	opts := applyOptions(optFns)

	cfg, err := collection.FromMetadata(name, dimension, metadata)
	if err != nil {
		opts.logger.LogConfigRejected(context.Background(), name, err)
		return nil, err
	}

	return newCollection(cfg, opts)
}

// OpenCollection creates an empty collection from a config persisted with
// Collection.MarshalConfig.
func OpenCollection(data []byte, optFns ...Option) (*Collection, error) {
	opts := applyOptions(optFns)

	cfg, err := collection.Decode(data)
	if err != nil {
		opts.logger.LogConfigRejected(context.Background(), "", err)
		return nil, err
	}

	return newCollection(cfg, opts)
}

func newCollection(cfg *collection.Config, opts options) (*Collection, error) {
	idx, err := flat.New(cfg)
	if err != nil {
		return nil, translateError(err)
	}

	return &Collection{
		cfg:     *cfg,
		index:   idx,
		metrics: opts.metricsCollector,
		logger:  opts.logger.WithCollection(cfg.Name, cfg.Space).WithDimension(cfg.Dimension),
	}, nil
}

// Name returns the collection name.
func (c *Collection) Name() string { return c.cfg.Name }

// Dimension returns the fixed vector length of the collection.
func (c *Collection) Dimension() int { return c.cfg.Dimension }

// Metric returns the distance metric of the collection.
func (c *Collection) Metric() distance.Metric { return c.cfg.Space }

// Metadata returns the collection metadata, including "hnsw:space".
func (c *Collection) Metadata() map[string]any { return c.cfg.Metadata() }

// Len returns the number of stored vectors.
func (c *Collection) Len() int { return c.index.Len() }

// MarshalConfig serializes the collection config with the given codec.
// A nil codec selects codec.Default.
func (c *Collection) MarshalConfig(cd codec.Codec) ([]byte, error) {
	return c.cfg.Encode(cd)
}

// Insert stores vector under id.
func (c *Collection) Insert(ctx context.Context, id uint64, vector []float32) error {
	start := time.Now()
	err := translateError(c.index.Insert(ctx, id, vector))
	c.metrics.RecordInsert(time.Since(start), err)
	c.logger.LogInsert(ctx, id, len(vector), err)
	return err
}

// Delete removes the vector stored under id.
func (c *Collection) Delete(ctx context.Context, id uint64) error {
	start := time.Now()
	err := translateError(c.index.Delete(ctx, id))
	c.metrics.RecordDelete(time.Since(start), err)
	c.logger.LogDelete(ctx, id, err)
	return err
}

// Get returns a copy of the vector stored under id.
func (c *Collection) Get(id uint64) ([]float32, error) {
	v, err := c.index.Get(id)
	return v, translateError(err)
}

// SearchResult represents a search result.
type SearchResult struct {
	// ID is the identifier of the stored vector.
	ID uint64

	// Distance is the distance to the query under the collection metric.
	// Smaller is more similar; inner-product distances may be negative.
	Distance float32
}

// FilterFunc is a function used to filter search results.
type FilterFunc func(id uint64) bool

// SearchOptions contains options for Search.
type SearchOptions struct {
	// FilterFunc restricts the candidates. Nil admits every ID.
	FilterFunc FilterFunc
}

// Search returns the k vectors nearest to query, nearest first.
func (c *Collection) Search(ctx context.Context, query []float32, k int, optFns ...func(o *SearchOptions)) ([]SearchResult, error) {
	start := time.Now()

	opts := SearchOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}

	hits, err := c.index.Search(ctx, query, k, opts.FilterFunc)
	if err != nil {
		err = translateError(err)
		c.metrics.RecordSearch(k, time.Since(start), err)
		c.logger.LogSearch(ctx, k, 0, err)
		return nil, err
	}

	results := make([]SearchResult, len(hits))
	for i, h := range hits {
		results[i] = SearchResult{ID: h.ID, Distance: h.Distance}
	}

	c.metrics.RecordSearch(k, time.Since(start), nil)
	c.logger.LogSearch(ctx, k, len(results), nil)

	return results, nil
}

// SearchStream returns an iterator over Search results, nearest first.
// Stop iterating to discard the remaining results.
func (c *Collection) SearchStream(ctx context.Context, query []float32, k int, optFns ...func(o *SearchOptions)) iter.Seq2[SearchResult, error] {
	return func(yield func(SearchResult, error) bool) {
		results, err := c.Search(ctx, query, k, optFns...)
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
