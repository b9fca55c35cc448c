package numberutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsInt(t *testing.T) {
	assert.True(t, IsInt("42"))
	assert.True(t, IsInt("-7"))
	assert.False(t, IsInt("abc"))
	assert.False(t, IsInt("4.2"))
	assert.False(t, IsInt(""))
}

func TestToInt(t *testing.T) {
	assert.Equal(t, 42, ToInt("42"))
	assert.Equal(t, 0, ToInt("abc"))
}

func TestToIntWithDefault(t *testing.T) {
	assert.Equal(t, 42, ToIntWithDefault("42", 7))
	assert.Equal(t, 7, ToIntWithDefault("abc", 7))
}

func TestToIntWithError(t *testing.T) {
	value, err := ToIntWithError("42")
	require.NoError(t, err)
	assert.Equal(t, 42, value)

	_, err = ToIntWithError("abc")
	assert.Error(t, err)
}
