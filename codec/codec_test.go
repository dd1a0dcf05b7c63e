package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name      string `json:"name"`
	Dimension int    `json:"dimension"`
}

func TestByName(t *testing.T) {
	for _, name := range []string{"json", "go-json"} {
		c, ok := ByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, c.Name())
	}

	_, ok := ByName("msgpack")
	assert.False(t, ok)
}

func TestCodecs(t *testing.T) {
	in := sample{Name: "docs", Dimension: 384}

	for _, c := range []Codec{JSON{}, GoJSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			b, err := c.Marshal(in)
			require.NoError(t, err)
			assert.JSONEq(t, `{"name":"docs","dimension":384}`, string(b))

			var out sample
			require.NoError(t, c.Unmarshal(b, &out))
			assert.Equal(t, in, out)
		})
	}
}

func TestErrUnknownCodec(t *testing.T) {
	assert.Equal(t, `unknown codec "gob"`, (&ErrUnknownCodec{Name: "gob"}).Error())
}
