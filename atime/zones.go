package atime

import (
	"os"
	"runtime"
	"time"

	"github.com/jpfluger/atzresolve/atz"
	"github.com/jpfluger/atzresolve/atzcal"
	"github.com/mileusna/timezones"
)

// offsetForInstant resolves the total UTC offset (base + any daylight
// adjustment) a zone observes at utc, converging in a few iterations since
// the local wall-clock reading a zone's rules key off of depends on the
// very offset being solved for.
func offsetForInstant(r *atz.Resolver, utc time.Time) (int64, error) {
	var guess int64
	for i := 0; i < 3; i++ {
		local := utc.Add(time.Duration(guess) * time.Second)
		offset, dstSave, _, err := r.OffsetsAndType(atzcal.FromTime(local))
		if err != nil {
			return 0, err
		}
		total := offset + dstSave
		if total == guess {
			return total, nil
		}
		guess = total
	}
	return guess, nil
}

// TimeIn returns t expressed in the specified timezone. The bundled zone
// database (package atz) is tried first; if timeZoneId is not one of its
// known zones or aliases, this falls back to the host's own IANA zoneinfo
// via time.LoadLocation.
func TimeIn(t time.Time, timeZoneId string) (time.Time, error) {
	if t.IsZero() {
		t = time.Now().UTC()
	}

	if r, err := atz.CacheGet(timeZoneId); err == nil {
		if total, offErr := offsetForInstant(r, t.UTC()); offErr == nil {
			return t.UTC().In(time.FixedZone(r.ID(), int(total))), nil
		}
	}

	loc, err := time.LoadLocation(timeZoneId)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(loc), nil
}

// TimeInNoError is similar to TimeIn but does not return an error.
func TimeInNoError(t time.Time, timeZoneId string) time.Time {
	tt, _ := TimeIn(t, timeZoneId)
	return tt
}

// TimeInPointer returns a pointer to the time in a specified timezone.
func TimeInPointer(t time.Time, timeZoneId string) (*time.Time, error) {
	tt, err := TimeIn(t, timeZoneId)
	return &tt, err
}

// TimeInPointerNoError is similar to TimeInPointer but does not return an error.
func TimeInPointerNoError(t time.Time, timeZoneId string) *time.Time {
	tt := TimeInNoError(t, timeZoneId)
	return &tt
}

// GetLocation returns the time.Location for a given timezone ID. The host's
// zoneinfo is tried first since it carries the full historical rule set;
// when the host does not know timeZoneID, a time.Location is synthesized
// from the bundled atz database using the current instant's offset. That
// synthesized Location is only accurate around the instant it was built
// from; callers needing correctness across a wide date range should prefer
// TimeIn, which re-resolves the offset for each instant queried.
func GetLocation(timeZoneID string) (*time.Location, error) {
	if loc, err := time.LoadLocation(timeZoneID); err == nil {
		return loc, nil
	}

	r, err := atz.CacheGet(timeZoneID)
	if err != nil {
		return nil, err
	}
	total, err := offsetForInstant(r, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	return time.FixedZone(r.ID(), int(total)), nil
}

// GetCurrentTimeInZone returns the current time in the specified timezone.
func GetCurrentTimeInZone(timeZoneID string) (time.Time, error) {
	return TimeIn(time.Now().UTC(), timeZoneID)
}

// ConvertToTimeZone converts the given time to the specified time zone.
func ConvertToTimeZone(t interface{}, timeZoneId string) time.Time {
	dt := EnsureDateTime(t)
	if dt.IsZero() {
		return dt
	}
	converted, err := TimeIn(dt, timeZoneId)
	if err != nil {
		return dt.In(time.UTC)
	}
	return converted
}

// TimeZoneOffset returns the offset in hours for the specified timezone, at
// the current instant.
func TimeZoneOffset(timeZoneID string) (int, error) {
	if r, err := atz.CacheGet(timeZoneID); err == nil {
		total, offErr := offsetForInstant(r, time.Now().UTC())
		if offErr == nil {
			return int(total) / 3600, nil
		}
	}

	loc, err := GetLocation(timeZoneID)
	if err != nil {
		return 0, err
	}
	_, offset := time.Now().In(loc).Zone()
	return offset / 3600, nil
}

// GetSystemTimeZone attempts to determine the system's timezone.
func GetSystemTimeZone() string {
	osHost := runtime.GOOS
	switch osHost {
	case "windows":
		// Windows timezone names do not align with IANA timezone names.
		return "UTC"
	case "darwin", "linux":
		// Darwin (macOS) and Linux timezones can be determined from the TZ environment variable.
		if zone, ok := os.LookupEnv("TZ"); ok {
			return zone
		}
		// Fallback to local time zone if TZ is not set.
		loc, err := time.LoadLocation("Local")
		if err == nil {
			return loc.String()
		}
	}
	return "UTC"
}

// GetOSTimeZones retrieves a list of valid timezones for the operating system.
func GetOSTimeZones() []string {
	osHost := runtime.GOOS
	switch osHost {
	case "windows":
		// Windows timezone names do not align with IANA timezone names.
		return nil
	case "darwin", "linux":
		// Darwin (macOS) and Linux timezones can be determined using timezones package.
		return timezones.List()
	}
	return nil
}
