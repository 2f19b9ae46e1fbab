package atz

import (
	"errors"
	"fmt"

	"github.com/jpfluger/atzresolve/aerr"
	"github.com/jpfluger/atzresolve/alog"
)

// ErrUnknownZone is the sentinel a caller can match with errors.Is when a
// requested zone identifier is not present in the bundled zones or aliases.
var ErrUnknownZone = errors.New("atz: unknown zone")

// ErrOutOfRange is the sentinel a caller can match with errors.Is when a
// queried instant falls outside every compiled period of a zone.
var ErrOutOfRange = errors.New("atz: instant out of range")

// UnknownZoneError reports that id did not match any zone or alias.
func UnknownZoneError(id string) *aerr.Error {
	err := aerr.NewError(fmt.Errorf("%w: %q", ErrUnknownZone, id))
	alog.LOGGER(alog.LOGGER_ATZ).Warn().Str("zone_id", id).Msg(err.Error())
	return err
}

// OutOfRangeError reports that dt fell outside every compiled period of the
// named zone.
func OutOfRangeError(zoneID string, dt fmt.Stringer) *aerr.Error {
	err := aerr.NewError(fmt.Errorf("%w: zone %q at %s", ErrOutOfRange, zoneID, dt.String()))
	alog.LOGGER(alog.LOGGER_ATZ).Warn().Str("zone_id", zoneID).Str("at", dt.String()).Msg(err.Error())
	return err
}
