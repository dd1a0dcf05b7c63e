package collection

import (
	"math"
	"testing"

	"github.com/hupe1980/vecspace/codec"
	"github.com/hupe1980/vecspace/distance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		c, err := New("docs", 3)
		require.NoError(t, err)
		assert.Equal(t, distance.Euclidean, c.Space)
	})

	t.Run("WithSpace", func(t *testing.T) {
		c, err := New("docs", 3, func(o *Options) { o.Space = distance.InnerProduct })
		require.NoError(t, err)
		assert.Equal(t, distance.InnerProduct, c.Space)
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := New("", 3)
		assert.ErrorIs(t, err, ErrEmptyName)

		_, err = New("docs", 0)
		assert.ErrorIs(t, err, ErrInvalidDimension)

		_, err = New("docs", 3, func(o *Options) { o.Space = 0 })
		assert.ErrorIs(t, err, ErrInvalidSpace)
	})
}

func TestFromMetadata(t *testing.T) {
	tests := []struct {
		name     string
		md       map[string]any
		expected distance.Metric
	}{
		{"Nil", nil, distance.Euclidean},
		{"Absent", map[string]any{"owner": "me"}, distance.Euclidean},
		{"L2", map[string]any{MetadataKeySpace: "l2"}, distance.Euclidean},
		{"Cosine", map[string]any{MetadataKeySpace: "cosine"}, distance.Cosine},
		{"IP", map[string]any{MetadataKeySpace: "ip"}, distance.InnerProduct},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := FromMetadata("docs", 4, tt.md)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, c.Space)
			assert.Equal(t, tt.expected.String(), c.Metadata()[MetadataKeySpace])
		})
	}

	t.Run("UnknownName", func(t *testing.T) {
		_, err := FromMetadata("docs", 4, map[string]any{MetadataKeySpace: "L2"})

		var idf *distance.ErrInvalidDistanceFunction
		require.ErrorAs(t, err, &idf)
		assert.Equal(t, "L2", idf.Name)
	})

	t.Run("WrongType", func(t *testing.T) {
		_, err := FromMetadata("docs", 4, map[string]any{MetadataKeySpace: 2})

		var im *ErrInvalidMetadata
		require.ErrorAs(t, err, &im)
		assert.Equal(t, MetadataKeySpace, im.Key)
		assert.Equal(t, `invalid metadata "hnsw:space": expected string, got int`, im.Error())
	})
}

func TestCheckVector(t *testing.T) {
	c, err := New("docs", 3)
	require.NoError(t, err)

	require.NoError(t, c.CheckVector([]float32{1, 2, 3}))

	var dm *distance.ErrDimensionMismatch
	require.ErrorAs(t, c.CheckVector([]float32{1, 2}), &dm)
	assert.Equal(t, 3, dm.Expected)
	assert.Equal(t, 2, dm.Actual)

	for _, v := range [][]float32{
		{1, float32(math.NaN()), 3},
		{float32(math.Inf(1)), 2, 3},
		{1, 2, float32(math.Inf(-1))},
	} {
		assert.ErrorIs(t, c.CheckVector(v), ErrNonFiniteVector)
	}
	require.NoError(t, c.CheckVector([]float32{1e38, -math.SmallestNonzeroFloat32, 0}))
}

func TestEncodeDecode(t *testing.T) {
	for _, cd := range []codec.Codec{codec.JSON{}, codec.GoJSON{}, nil} {
		name := "default"
		if cd != nil {
			name = cd.Name()
		}

		t.Run(name, func(t *testing.T) {
			for _, m := range distance.Metrics() {
				c, err := New("docs", 8, func(o *Options) { o.Space = m })
				require.NoError(t, err)

				data, err := c.Encode(cd)
				require.NoError(t, err)
				assert.Contains(t, string(data), `"space":"`+m.String()+`"`)

				got, err := Decode(data)
				require.NoError(t, err)
				assert.Equal(t, c, got)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	t.Run("NoHeader", func(t *testing.T) {
		_, err := Decode([]byte(`{"name":"docs"}`))
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("UnknownCodec", func(t *testing.T) {
		_, err := Decode([]byte("gob\n{}"))

		var uc *codec.ErrUnknownCodec
		require.ErrorAs(t, err, &uc)
		assert.Equal(t, "gob", uc.Name)
	})

	t.Run("InvalidSpace", func(t *testing.T) {
		_, err := Decode([]byte("json\n" + `{"name":"docs","dimension":3,"space":"manhattan"}`))

		var idf *distance.ErrInvalidDistanceFunction
		require.ErrorAs(t, err, &idf)
		assert.Equal(t, "manhattan", idf.Name)
	})

	t.Run("MissingSpace", func(t *testing.T) {
		_, err := Decode([]byte("json\n" + `{"name":"docs","dimension":3}`))
		assert.ErrorIs(t, err, ErrInvalidSpace)
	})

	t.Run("UndecodablePayload", func(t *testing.T) {
		for _, name := range []string{"json", "go-json"} {
			_, err := Decode([]byte(name + "\n{not json"))
			assert.ErrorIs(t, err, ErrMalformed, name)
		}
	})

	t.Run("WrongFieldType", func(t *testing.T) {
		_, err := Decode([]byte("json\n" + `{"name":"docs","dimension":"three","space":"l2"}`))
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("InvalidDimension", func(t *testing.T) {
		_, err := Decode([]byte("go-json\n" + `{"name":"docs","dimension":-1,"space":"ip"}`))
		assert.ErrorIs(t, err, ErrInvalidDimension)
	})
}
