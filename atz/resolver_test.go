package atz

import (
	"testing"

	"github.com/jpfluger/atzresolve/atzcal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucharestDaylight(t *testing.T) {
	r, err := New("Europe/Bucharest")
	require.NoError(t, err)

	dt := atzcal.EncodeDateTime(2013, 6, 15, 12*3600)
	offset, dstSave, kind, err := r.OffsetsAndType(dt)
	require.NoError(t, err)

	assert.Equal(t, int64(7200), offset)
	assert.Equal(t, int64(3600), dstSave)
	assert.Equal(t, Daylight, kind)

	name, err := r.DisplayName(dt, false)
	require.NoError(t, err)
	assert.Equal(t, "EEST", name)
}

func TestBucharestStandard(t *testing.T) {
	r, err := New("Europe/Bucharest")
	require.NoError(t, err)

	dt := atzcal.EncodeDateTime(2013, 1, 15, 12*3600)
	offset, dstSave, kind, err := r.OffsetsAndType(dt)
	require.NoError(t, err)

	assert.Equal(t, int64(7200), offset)
	assert.Equal(t, int64(0), dstSave)
	assert.Equal(t, Standard, kind)

	name, err := r.DisplayName(dt, false)
	require.NoError(t, err)
	assert.Equal(t, "EET", name)
}

func TestBucharestInvalidGap(t *testing.T) {
	r, err := New("Europe/Bucharest")
	require.NoError(t, err)

	// 2013-03-31 the last Sunday of March: the gap runs 03:00->04:00 local.
	dt := atzcal.EncodeDateTime(2013, 3, 31, 3*3600+30*60)
	_, dstSave, kind, err := r.OffsetsAndType(dt)
	require.NoError(t, err)

	assert.Equal(t, Invalid, kind)
	assert.Equal(t, int64(3600), dstSave)
}

func TestBucharestAmbiguousFold(t *testing.T) {
	r, err := New("Europe/Bucharest")
	require.NoError(t, err)

	// 2013-10-27 the last Sunday of October: the fold runs 03:00->04:00 local (repeated).
	dt := atzcal.EncodeDateTime(2013, 10, 27, 3*3600+30*60)
	_, dstSave, kind, err := r.OffsetsAndType(dt)
	require.NoError(t, err)

	assert.Equal(t, Ambiguous, kind)
	assert.Equal(t, int64(3600), dstSave)

	std, err := r.DisplayName(dt, false)
	require.NoError(t, err)
	assert.Equal(t, "EET", std)

	dst, err := r.DisplayName(dt, true)
	require.NoError(t, err)
	assert.Equal(t, "EEST", dst)
}

func TestAliasResolvesToCanonicalID(t *testing.T) {
	r, err := New("US/Pacific")
	require.NoError(t, err)
	assert.Equal(t, "America/Los_Angeles", r.ID())
}

func TestUnknownZone(t *testing.T) {
	_, err := New("Mars/Olympus")
	if err == nil {
		t.Fatalf("expected an error for an unknown zone")
	}
	assert.ErrorIs(t, err, ErrUnknownZone)
}

func TestLosAngelesSpringForwardGap(t *testing.T) {
	r, err := New("America/Los_Angeles")
	require.NoError(t, err)

	// 2023-03-12: US DST starts 02:00 standard -> 03:00 daylight.
	dt := atzcal.EncodeDateTime(2023, 3, 12, 2*3600+30*60)
	_, _, kind, err := r.OffsetsAndType(dt)
	require.NoError(t, err)
	assert.Equal(t, Invalid, kind)
}

func TestNewYorkFallBackFold(t *testing.T) {
	r, err := New("America/New_York")
	require.NoError(t, err)

	// 2023-11-05: US DST ends 02:00 daylight -> 01:00 standard.
	dt := atzcal.EncodeDateTime(2023, 11, 5, 1*3600+30*60)
	_, _, kind, err := r.OffsetsAndType(dt)
	require.NoError(t, err)
	assert.Equal(t, Ambiguous, kind)
}

func TestTokyoAlwaysStandard(t *testing.T) {
	r, err := New("Asia/Tokyo")
	require.NoError(t, err)

	for _, month := range []int{1, 4, 7, 10} {
		dt := atzcal.EncodeDateTime(2023, month, 15, 12*3600)
		offset, dstSave, kind, err := r.OffsetsAndType(dt)
		require.NoError(t, err)
		assert.Equal(t, int64(32400), offset)
		assert.Equal(t, int64(0), dstSave)
		assert.Equal(t, Standard, kind)
	}
}

func TestDomainMinIsInRange(t *testing.T) {
	r, err := New("UTC")
	require.NoError(t, err)

	// UTC's single period starts at DomainMin, so the earliest
	// representable instant resolves rather than being out of range.
	_, _, kind, err := r.OffsetsAndType(atzcal.DomainMin())
	require.NoError(t, err)
	assert.Equal(t, Standard, kind)
}

func TestKnownZonesIncludesAliasesOnlyWhenRequested(t *testing.T) {
	withAliases := KnownZones(true)
	withoutAliases := KnownZones(false)

	assert.Contains(t, withAliases, "US/Pacific")
	assert.NotContains(t, withoutAliases, "US/Pacific")
	assert.Contains(t, withoutAliases, "America/Los_Angeles")
}

func TestBucharestPreRuleFamilyPeriodIsStandardOnly(t *testing.T) {
	r, err := New("Europe/Bucharest")
	require.NoError(t, err)

	dt := atzcal.EncodeDateTime(1990, 7, 1, 12*3600)
	offset, dstSave, kind, err := r.OffsetsAndType(dt)
	require.NoError(t, err)
	assert.Equal(t, int64(7200), offset)
	assert.Equal(t, int64(0), dstSave)
	assert.Equal(t, Standard, kind)
}
