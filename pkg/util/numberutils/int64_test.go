package numberutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsInt64(t *testing.T) {
	assert.True(t, IsInt64("42"))
	assert.True(t, IsInt64("-7"))
	assert.False(t, IsInt64("abc"))
	assert.False(t, IsInt64("4.2"))
	assert.False(t, IsInt64(""))
}

func TestToInt64(t *testing.T) {
	assert.Equal(t, int64(42), ToInt64("42"))
	assert.Equal(t, int64(0), ToInt64("abc"))
}

func TestToInt64WithDefault(t *testing.T) {
	assert.Equal(t, int64(42), ToInt64WithDefault("42", 7))
	assert.Equal(t, int64(7), ToInt64WithDefault("abc", 7))
}

func TestToInt64WithError(t *testing.T) {
	value, err := ToInt64WithError("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), value)

	_, err = ToInt64WithError("abc")
	assert.Error(t, err)
}
