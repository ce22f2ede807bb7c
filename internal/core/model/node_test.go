package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRegion(t *testing.T) {
	r, err := ParseRegion("PP99-46d")
	require.NoError(t, err)
	assert.Equal(t, Region{Name: "PP99-46d", Map: "PP99"}, r)

	// Only the first dash separates the map.
	r, err = ParseRegion("B05-V1-d")
	require.NoError(t, err)
	assert.Equal(t, "B05", r.Map)

	for _, name := range []string{"", "nodash", "-46", "PP99-"} {
		_, err := ParseRegion(name)
		assert.ErrorIs(t, err, ErrInvalidRegion, name)
	}
}

func TestMapOf(t *testing.T) {
	assert.Equal(t, "FV91", MapOf("FV91-V1"))
	assert.Equal(t, "nodash", MapOf("nodash"))
	assert.True(t, InMap("FV91-V1", "FV91"))
	assert.False(t, InMap("FV91-V1", "FV9"))
}
