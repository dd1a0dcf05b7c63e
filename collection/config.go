// Package collection holds the per-collection configuration that fixes the
// distance metric used for every comparison within a collection.
package collection

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/hupe1980/vecspace/codec"
	"github.com/hupe1980/vecspace/distance"
	"github.com/hupe1980/vecspace/internal/math32"
)

// MetadataKeySpace is the collection metadata key naming the distance metric.
const MetadataKeySpace = "hnsw:space"

var (
	// ErrEmptyName is returned when a collection has no name.
	ErrEmptyName = errors.New("collection name must not be empty")

	// ErrInvalidDimension is returned when the dimension is not positive.
	ErrInvalidDimension = errors.New("collection dimension must be positive")

	// ErrInvalidSpace is returned when the configured metric is not a supported one.
	ErrInvalidSpace = errors.New("collection space is not a supported metric")

	// ErrMalformed is returned when persisted config bytes lack a codec header
	// or their payload cannot be decoded.
	ErrMalformed = errors.New("malformed collection config")

	// ErrNonFiniteVector is returned when a vector holds a NaN or ±Inf component.
	ErrNonFiniteVector = errors.New("vector contains NaN or Inf")
)

// ErrInvalidMetadata indicates a metadata value of the wrong type.
type ErrInvalidMetadata struct {
	Key   string
	Value any
}

func (e *ErrInvalidMetadata) Error() string {
	return fmt.Sprintf("invalid metadata %q: expected string, got %T", e.Key, e.Value)
}

// Config is the immutable configuration of a collection.
type Config struct {
	// Name identifies the collection.
	Name string `json:"name"`

	// Dimension is the fixed vector length for this collection.
	Dimension int `json:"dimension"`

	// Space is the distance metric, persisted as "l2", "cosine" or "ip".
	Space distance.Metric `json:"space"`
}

// Options contains optional collection settings.
type Options struct {
	// Space is the distance metric. Defaults to distance.Euclidean.
	Space distance.Metric
}

// DefaultOptions contains the default collection options.
var DefaultOptions = Options{
	Space: distance.Euclidean,
}

// New creates and validates a collection config.
func New(name string, dimension int, optFns ...func(o *Options)) (*Config, error) {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	c := &Config{
		Name:      name,
		Dimension: dimension,
		Space:     opts.Space,
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// FromMetadata builds a config from free-form collection metadata.
//
// The metric is read from MetadataKeySpace. A missing key selects the
// default metric; a present key must hold a valid metric name, otherwise
// the *distance.ErrInvalidDistanceFunction from distance.Parse is returned.
func FromMetadata(name string, dimension int, md map[string]any) (*Config, error) {
	space := DefaultOptions.Space

	if raw, ok := md[MetadataKeySpace]; ok {
		s, ok := raw.(string)
		if !ok {
			return nil, &ErrInvalidMetadata{Key: MetadataKeySpace, Value: raw}
		}

		m, err := distance.Parse(s)
		if err != nil {
			return nil, err
		}
		space = m
	}

	return New(name, dimension, func(o *Options) {
		o.Space = space
	})
}

// Validate checks the config for consistency.
func (c *Config) Validate() error {
	if c.Name == "" {
		return ErrEmptyName
	}
	if c.Dimension <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDimension, c.Dimension)
	}
	if !c.Space.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidSpace, c.Space)
	}
	return nil
}

// Metadata returns the config as collection metadata.
func (c *Config) Metadata() map[string]any {
	return map[string]any{MetadataKeySpace: c.Space.String()}
}

// CheckVector verifies that v has the collection's dimension and only
// finite components.
func (c *Config) CheckVector(v []float32) error {
	if len(v) != c.Dimension {
		return &distance.ErrDimensionMismatch{Expected: c.Dimension, Actual: len(v)}
	}
	if !math32.Finite(v) {
		return ErrNonFiniteVector
	}
	return nil
}

// Encode serializes the config. The output starts with the codec name on
// its own line so Decode can pick the matching codec.
func (c *Config) Encode(cd codec.Codec) ([]byte, error) {
	if cd == nil {
		cd = codec.Default
	}

	payload, err := cd.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode collection config: %w", err)
	}

	out := make([]byte, 0, len(cd.Name())+1+len(payload))
	out = append(out, cd.Name()...)
	out = append(out, '\n')
	out = append(out, payload...)

	return out, nil
}

// Decode parses bytes produced by Encode and validates the result.
func Decode(data []byte) (*Config, error) {
	name, payload, ok := bytes.Cut(data, []byte{'\n'})
	if !ok {
		return nil, ErrMalformed
	}

	cd, ok := codec.ByName(string(name))
	if !ok {
		return nil, &codec.ErrUnknownCodec{Name: string(name)}
	}

	var c Config
	if err := cd.Unmarshal(payload, &c); err != nil {
		var idf *distance.ErrInvalidDistanceFunction
		if errors.As(err, &idf) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}
