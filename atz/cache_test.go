package atz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheGetReturnsSameInstanceForCanonicalID(t *testing.T) {
	CacheReset()

	r1, err := CacheGet("America/Los_Angeles")
	require.NoError(t, err)
	r2, err := CacheGet("America/Los_Angeles")
	require.NoError(t, err)

	assert.Same(t, r1, r2)
}

func TestCacheGetCollapsesAliasOntoCanonical(t *testing.T) {
	CacheReset()

	canonical, err := CacheGet("America/Los_Angeles")
	require.NoError(t, err)
	viaAlias, err := CacheGet("US/Pacific")
	require.NoError(t, err)

	assert.Same(t, canonical, viaAlias)
}

func TestCacheGetAliasFirstStillCollapses(t *testing.T) {
	CacheReset()

	viaAlias, err := CacheGet("US/Eastern")
	require.NoError(t, err)
	canonical, err := CacheGet("America/New_York")
	require.NoError(t, err)

	assert.Same(t, viaAlias, canonical)
}

func TestCacheGetUnknownZone(t *testing.T) {
	CacheReset()

	_, err := CacheGet("Nowhere/Imaginary")
	assert.ErrorIs(t, err, ErrUnknownZone)
}
