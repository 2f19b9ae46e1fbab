package atzcal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDate(t *testing.T) {
	dt := EncodeDate(2013, 10, 27)
	assert.Equal(t, 2013, dt.Year())
	assert.Equal(t, 10, dt.Month())
	assert.Equal(t, 27, dt.Day())
	assert.Equal(t, int64(0), dt.SecondsOfDay())
}

func TestEncodeDateTime(t *testing.T) {
	dt := EncodeDateTime(2013, 3, 31, 3*3600+30*60)
	if got := dt.SecondsOfDay(); got != 3*3600+30*60 {
		t.Errorf("SecondsOfDay() = %d, want %d", got, 3*3600+30*60)
	}
}

func TestDayOfWeek(t *testing.T) {
	// 2013-10-27 is a Sunday.
	dt := EncodeDate(2013, 10, 27)
	assert.Equal(t, 7, DayOfWeek(dt))

	// 2013-10-28 is a Monday.
	dt2 := EncodeDate(2013, 10, 28)
	assert.Equal(t, 1, DayOfWeek(dt2))
}

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year, month, want int
	}{
		{2013, 2, 28},
		{2012, 2, 29}, // leap year
		{2013, 4, 30},
		{2013, 1, 31},
	}
	for _, c := range cases {
		if got := DaysInMonth(c.year, c.month); got != c.want {
			t.Errorf("DaysInMonth(%d, %d) = %d, want %d", c.year, c.month, got, c.want)
		}
	}
}

func TestAddSeconds(t *testing.T) {
	dt := EncodeDate(2013, 3, 31)
	dt = AddSeconds(dt, 3*3600)
	assert.Equal(t, int64(3*3600), dt.SecondsOfDay())
	assert.Equal(t, 31, dt.Day())

	// Crossing midnight rolls to the next day.
	dt2 := AddSeconds(EncodeDate(2013, 3, 31), 24*3600)
	assert.Equal(t, 1, dt2.Day())
	assert.Equal(t, 4, dt2.Month())
}

func TestCompare(t *testing.T) {
	a := EncodeDate(2013, 1, 1)
	b := EncodeDate(2013, 6, 1)
	assert.Equal(t, -1, Compare(a, b))
	assert.Equal(t, 1, Compare(b, a))
	assert.Equal(t, 0, Compare(a, a))
}

func TestDomainBounds(t *testing.T) {
	if Compare(DomainMin(), DomainMax()) >= 0 {
		t.Errorf("DomainMin() must be before DomainMax()")
	}
	assert.Equal(t, 1, DomainMin().Year())
	assert.Equal(t, 9999, DomainMax().Year())
}

func TestYearOf(t *testing.T) {
	assert.Equal(t, 2013, YearOf(EncodeDate(2013, 10, 27)))
}
