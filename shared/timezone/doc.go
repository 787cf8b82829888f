// Package timezone converts between civil date/times, instants and
// zone-local display strings for the countdown.
//
// Usage Examples:
//
//  1. Current time in the target zone:
//     n := timezone.New(clock.New(), time.Local, constant.DefaultLocale)
//     now, err := n.CurrentInstantInZone(constant.TargetTimezone)
//
//  2. Anchoring a civil date/time to the target zone:
//     civil, err := timezone.ParseCivil("2025-06-30", "19:00:00")
//     target, err := n.MakeInstantInZone(civil, constant.TargetTimezone)
//
//  3. Rendering an instant for people:
//     s, err := n.FormatInZone(target, constant.TargetTimezone, timezone.TargetDisplay)
//
// Zone offsets are sampled at the moment of the call and never cached. Only
// *time.Location values (the zone rules themselves) are cached. The host's
// zoneinfo database is used as-is; no database is bundled.
//
// MakeInstantInZone shifts by the difference between the target zone and
// host zone offsets sampled at "now". When the civil date falls on the other
// side of a daylight-saving transition (of either zone) the result is off by
// the size of that transition.
package timezone
