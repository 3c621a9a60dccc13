package point

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeYAML(t *testing.T) {
	data := []byte(`
- [1, 3]
- [-2, 2]
- {x: 0, y: 5}
- x: -7
  y: 1
`)

	points, err := DecodeYAML(data)
	require.NoError(t, err)
	assert.Equal(t, []Point{{1, 3}, {-2, 2}, {0, 5}, {-7, 1}}, points)
}

func TestDecodeYAMLInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"Three coordinates", "- [1, 2, 3]\n"},
		{"One coordinate", "- [1]\n"},
		{"Missing y", "- {x: 1}\n"},
		{"Scalar", "- 12\n"},
		{"Not a number", "- [a, 1]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeYAML([]byte(tt.data))
			assert.ErrorIs(t, err, ErrInvalidPoint)
		})
	}
}

func TestEncodeYAML(t *testing.T) {
	data, err := EncodeYAML([]Point{{1, 3}, {-2, 2}})
	require.NoError(t, err)
	assert.Equal(t, "- [1, 3]\n- [-2, 2]\n", string(data))

	decoded, err := DecodeYAML(data)
	require.NoError(t, err)
	assert.Equal(t, []Point{{1, 3}, {-2, 2}}, decoded)

	empty, err := EncodeYAML(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(empty))
}
