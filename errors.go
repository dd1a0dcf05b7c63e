package vecspace

import (
	"context"
	"errors"
	"fmt"

	"github.com/hupe1980/vecspace/codec"
	"github.com/hupe1980/vecspace/collection"
	"github.com/hupe1980/vecspace/distance"
	"github.com/hupe1980/vecspace/flat"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("k must be positive")

	// ErrNotFound is returned when a vector does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when inserting an ID that is already stored.
	ErrAlreadyExists = errors.New("already exists")
)

// ErrDimensionMismatch indicates a vector/query dimensionality mismatch.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, flat.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	if errors.Is(err, flat.ErrDuplicateID) {
		return fmt.Errorf("%w: %w", ErrAlreadyExists, err)
	}
	if errors.Is(err, flat.ErrInvalidK) {
		return fmt.Errorf("%w: %w", ErrInvalidK, err)
	}

	var dm *distance.ErrDimensionMismatch
	if errors.As(err, &dm) {
		return &ErrDimensionMismatch{Expected: dm.Expected, Actual: dm.Actual, cause: err}
	}

	return err
}

// Code classifies err into the gRPC status code taxonomy.
//
// Bad user input (an unknown metric name, an invalid collection config,
// a non-positive k, a vector of the wrong length or with NaN/Inf components
// handed to a Collection) maps to InvalidArgument. Persisted config bytes
// that cannot be decoded map to DataLoss. A *distance.ErrDimensionMismatch reaching the
// caller unwrapped means an index compared vectors of different lengths,
// which is a broken contract and maps to Internal.
func Code(err error) codes.Code {
	if err == nil {
		return codes.OK
	}

	if s, ok := status.FromError(err); ok {
		return s.Code()
	}

	var (
		idf *distance.ErrInvalidDistanceFunction
		um  *distance.ErrUnknownMetric
		dm  *distance.ErrDimensionMismatch
		rdm *ErrDimensionMismatch
		im  *collection.ErrInvalidMetadata
		uc  *codec.ErrUnknownCodec
	)

	switch {
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	case errors.As(err, &idf),
		errors.As(err, &im),
		errors.As(err, &rdm),
		errors.Is(err, ErrInvalidK),
		errors.Is(err, flat.ErrInvalidK),
		errors.Is(err, collection.ErrEmptyName),
		errors.Is(err, collection.ErrInvalidDimension),
		errors.Is(err, collection.ErrInvalidSpace),
		errors.Is(err, collection.ErrNonFiniteVector):
		return codes.InvalidArgument
	case errors.Is(err, ErrNotFound), errors.Is(err, flat.ErrNotFound):
		return codes.NotFound
	case errors.Is(err, ErrAlreadyExists), errors.Is(err, flat.ErrDuplicateID):
		return codes.AlreadyExists
	case errors.As(err, &dm), errors.As(err, &um):
		return codes.Internal
	case errors.As(err, &uc), errors.Is(err, collection.ErrMalformed):
		return codes.DataLoss
	default:
		return codes.Unknown
	}
}

// Status converts err into a gRPC status carrying its Code and message.
// It returns nil for a nil error.
func Status(err error) *status.Status {
	if err == nil {
		return nil
	}
	if s, ok := status.FromError(err); ok {
		return s
	}
	return status.New(Code(err), err.Error())
}
