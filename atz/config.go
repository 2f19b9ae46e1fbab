package atz

import (
	"github.com/go-playground/validator/v10"
	"github.com/jpfluger/atzresolve/alog"
)

// Config is the small set of knobs an embedding application tunes before
// using this package: which zone queries default to, whether the
// process-wide resolver cache is used, and which logging channel atz writes
// to.
type Config struct {
	DefaultZoneID      string            `validate:"required"`
	EnableProcessCache bool              `validate:"-"`
	LogChannel         alog.ChannelLabel `validate:"-"`
}

// NewConfig builds a Config with LogChannel set to alog.LOGGER_ATZ.
func NewConfig(defaultZoneID string, enableProcessCache bool) *Config {
	return &Config{
		DefaultZoneID:      defaultZoneID,
		EnableProcessCache: enableProcessCache,
		LogChannel:         alog.LOGGER_ATZ,
	}
}

// Validate checks the Config's required fields and that DefaultZoneID names
// a zone or alias this package actually knows about.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}
	if findZone(c.DefaultZoneID) == nil {
		return UnknownZoneError(c.DefaultZoneID)
	}
	return nil
}

// Resolver builds the Resolver for this Config's DefaultZoneID, going
// through the process-wide cache when EnableProcessCache is set.
func (c *Config) Resolver() (*Resolver, error) {
	if c.EnableProcessCache {
		return CacheGet(c.DefaultZoneID)
	}
	return New(c.DefaultZoneID)
}

// Provision wires this Config's LogChannel into the shared alog logger: a
// single Channel at debug level, writing to stderr and, when logDir is
// non-empty, also to a rotated file under logDir. overrides, if non-empty,
// may raise the channel's level or redirect its writers before the channel
// is initialized. Like alog.SetGlobalLogger itself, only the first caller
// across the process actually takes effect; later callers are no-ops.
func (c *Config) Provision(appName, logDir string, overrides alog.LogChannelConfigMap) error {
	writerTypes := alog.WriterTypes{alog.WRITERTYPE_CONSOLE_STDERR}
	if logDir != "" {
		writerTypes = append(writerTypes, alog.WRITERTYPE_FILE)
	}

	channels := alog.Channels{
		{Name: c.LogChannel, LogLevel: "debug", WriterTypes: writerTypes},
	}

	if len(overrides) > 0 {
		applied, _, err := channels.ApplyOverrides(overrides)
		if err != nil {
			return err
		}
		channels = applied
	}

	prov := &alog.ChannelProvisioner{
		ChannelProvisionerBase: alog.ChannelProvisionerBase{DirLog: logDir},
		App:                    appName,
	}
	return alog.SetGlobalLogger("", channels, prov)
}
