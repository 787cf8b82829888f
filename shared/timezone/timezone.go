package timezone

import (
	"countdown/config"
	"countdown/shared/clock"
	"countdown/shared/constant"
	"countdown/shared/failure"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/locales"
	"github.com/maypok86/otter/v2"
	"github.com/rs/zerolog/log"
)

var ErrInvalidTimezone = errors.New("invalid timezone identifier")

const locationCacheSize = 64

// Normalizer turns civil date/times into instants anchored to a zone and
// back into display strings. It holds no countdown state.
type Normalizer struct {
	clock      clock.Clock
	host       *time.Location
	locations  *otter.Cache[string, *time.Location]
	translator locales.Translator
}

func New(clk clock.Clock, host *time.Location, locale string) *Normalizer {
	return &Normalizer{
		clock: clk,
		host:  host,
		locations: otter.Must(&otter.Options[string, *time.Location]{
			MaximumSize: locationCacheSize,
		}),
		translator: translatorFor(locale),
	}
}

// NewFromConfig builds a Normalizer whose host zone and locale come from the
// COUNTDOWN_* settings.
func NewFromConfig(clk clock.Clock, cfg *config.Config) (*Normalizer, error) {
	hostZone := cfg.Countdown.HostTimezone
	if hostZone == constant.Empty {
		hostZone = constant.HostTimezone
	}

	host, err := time.LoadLocation(hostZone)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", hostZone).
			Msg("Failed to load host timezone. Please use standard timezone names like 'America/Mexico_City', 'UTC', 'Local'")

		return nil, failure.Configuration(fmt.Errorf("%w %q: %w", ErrInvalidTimezone, hostZone, err)) //nolint:wrapcheck
	}

	log.Info().
		Str("host", host.String()).
		Str("target", constant.TargetTimezone).
		Str("locale", cfg.Countdown.Locale).
		Msg("Timezone normalizer initialized")

	return New(clk, host, cfg.Countdown.Locale), nil
}

// Host returns the zone civil date/times are first interpreted in.
func (n *Normalizer) Host() *time.Location {
	return n.host
}

// Location resolves an IANA zone name. Unknown names fail with an error
// wrapping ErrInvalidTimezone.
func (n *Normalizer) Location(zoneID string) (*time.Location, error) {
	if loc, ok := n.locations.GetIfPresent(zoneID); ok {
		return loc, nil
	}

	if zoneID == constant.Empty {
		return nil, failure.Configuration(fmt.Errorf("%w: empty zone name", ErrInvalidTimezone)) //nolint:wrapcheck
	}

	loc, err := time.LoadLocation(zoneID)
	if err != nil {
		return nil, failure.Configuration(fmt.Errorf("%w %q: %w", ErrInvalidTimezone, zoneID, err)) //nolint:wrapcheck
	}

	n.locations.Set(zoneID, loc)

	return loc, nil
}

// CurrentInstantInZone returns the real current time carried in zoneID, so
// its calendar fields are the zone's civil time.
func (n *Normalizer) CurrentInstantInZone(zoneID string) (time.Time, error) {
	loc, err := n.Location(zoneID)
	if err != nil {
		return time.Time{}, err
	}

	return n.clock.Now().In(loc), nil
}

// ZoneOffsetMinutes returns the offset such that UTC = zone civil time + offset,
// as of now. It is not valid for instants in another daylight-saving regime.
func (n *Normalizer) ZoneOffsetMinutes(zoneID string) (int, error) {
	loc, err := n.Location(zoneID)
	if err != nil {
		return 0, err
	}

	return offsetMinutes(n.clock.Now(), loc), nil
}

// HostOffsetMinutes is ZoneOffsetMinutes for the host zone.
func (n *Normalizer) HostOffsetMinutes() int {
	return offsetMinutes(n.clock.Now(), n.host)
}

// MakeInstantInZone reads civil as host wall-clock time, then shifts it by the
// zone/host offset difference sampled now.
func (n *Normalizer) MakeInstantInZone(civil CivilDateTime, zoneID string) (Instant, error) {
	if !civil.Valid() {
		return InvalidInstant, failure.BadRequest(fmt.Errorf("%w: %s", ErrMalformedCivil, civil)) //nolint:wrapcheck
	}

	loc, err := n.Location(zoneID)
	if err != nil {
		return InvalidInstant, err
	}

	now := n.clock.Now()
	shift := offsetMinutes(now, loc) - offsetMinutes(now, n.host)

	return InstantOf(civil.In(n.host).Add(time.Duration(shift) * time.Minute)), nil
}

// ParseInZone parses a date and optional time of day and anchors them to zoneID.
func (n *Normalizer) ParseInZone(date, timeOfDay, zoneID string) (Instant, error) {
	civil, err := ParseCivil(date, timeOfDay)
	if err != nil {
		return InvalidInstant, err
	}

	return n.MakeInstantInZone(civil, zoneID)
}

// offsetMinutes compares the UTC reading of at with its civil reading in loc.
func offsetMinutes(at time.Time, loc *time.Location) int {
	civilAsUTC := CivilOf(at.In(loc)).In(time.UTC)

	return int(at.Truncate(time.Second).Sub(civilAsUTC) / time.Minute)
}
