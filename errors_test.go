package vecspace

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/hupe1980/vecspace/codec"
	"github.com/hupe1980/vecspace/collection"
	"github.com/hupe1980/vecspace/distance"
	"github.com/hupe1980/vecspace/flat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code codes.Code
	}{
		{"Nil", nil, codes.OK},
		{"InvalidDistanceFunction", &distance.ErrInvalidDistanceFunction{Name: "foo"}, codes.InvalidArgument},
		{"WrappedInvalidDistanceFunction", fmt.Errorf("create: %w", &distance.ErrInvalidDistanceFunction{Name: "L2"}), codes.InvalidArgument},
		{"EvaluatorDimensionMismatch", &distance.ErrDimensionMismatch{Expected: 3, Actual: 2}, codes.Internal},
		{"CollectionDimensionMismatch", &ErrDimensionMismatch{Expected: 3, Actual: 2}, codes.InvalidArgument},
		{"UnknownMetric", &distance.ErrUnknownMetric{Metric: 42}, codes.Internal},
		{"InvalidMetadata", &collection.ErrInvalidMetadata{Key: "hnsw:space", Value: 1}, codes.InvalidArgument},
		{"EmptyName", collection.ErrEmptyName, codes.InvalidArgument},
		{"InvalidDimension", collection.ErrInvalidDimension, codes.InvalidArgument},
		{"InvalidSpace", collection.ErrInvalidSpace, codes.InvalidArgument},
		{"NonFiniteVector", collection.ErrNonFiniteVector, codes.InvalidArgument},
		{"InvalidK", ErrInvalidK, codes.InvalidArgument},
		{"FlatInvalidK", flat.ErrInvalidK, codes.InvalidArgument},
		{"NotFound", ErrNotFound, codes.NotFound},
		{"FlatNotFound", flat.ErrNotFound, codes.NotFound},
		{"AlreadyExists", ErrAlreadyExists, codes.AlreadyExists},
		{"FlatDuplicate", flat.ErrDuplicateID, codes.AlreadyExists},
		{"Canceled", context.Canceled, codes.Canceled},
		{"Deadline", fmt.Errorf("search: %w", context.DeadlineExceeded), codes.DeadlineExceeded},
		{"UnknownCodec", &codec.ErrUnknownCodec{Name: "gob"}, codes.DataLoss},
		{"Malformed", collection.ErrMalformed, codes.DataLoss},
		{"WrappedMalformed", fmt.Errorf("%w: %w", collection.ErrMalformed, errors.New("unexpected end of JSON input")), codes.DataLoss},
		{"Status", status.Error(codes.Unavailable, "down"), codes.Unavailable},
		{"Other", errors.New("boom"), codes.Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, Code(tt.err))
		})
	}
}

func TestStatus(t *testing.T) {
	assert.Nil(t, Status(nil))

	s := Status(&distance.ErrInvalidDistanceFunction{Name: "foo"})
	require.NotNil(t, s)
	assert.Equal(t, codes.InvalidArgument, s.Code())
	assert.Equal(t, `invalid distance function "foo"`, s.Message())

	s = Status(status.Error(codes.PermissionDenied, "nope"))
	assert.Equal(t, codes.PermissionDenied, s.Code())
	assert.Equal(t, "nope", s.Message())
}

func TestTranslateError(t *testing.T) {
	assert.NoError(t, translateError(nil))

	err := translateError(fmt.Errorf("%w: %d", flat.ErrNotFound, 1))
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, flat.ErrNotFound)

	err = translateError(flat.ErrDuplicateID)
	assert.ErrorIs(t, err, ErrAlreadyExists)

	err = translateError(flat.ErrInvalidK)
	assert.ErrorIs(t, err, ErrInvalidK)

	inner := &distance.ErrDimensionMismatch{Expected: 4, Actual: 5}
	err = translateError(inner)
	var dm *ErrDimensionMismatch
	require.ErrorAs(t, err, &dm)
	assert.Equal(t, 4, dm.Expected)
	assert.Equal(t, 5, dm.Actual)
	assert.Equal(t, "dimension mismatch: expected 4, got 5", dm.Error())
	assert.Same(t, inner, errors.Unwrap(err))

	other := errors.New("boom")
	assert.Same(t, other, translateError(other))
}
