// Package dedupe provides the shared singleflight group used to collapse
// concurrent matchup-generation requests. Two organizers mashing the button
// for the same call-up share one advisory round-trip instead of racing the
// rate limiter.
package dedupe

import "golang.org/x/sync/singleflight"

// MatchupGroup deduplicates generation requests keyed by the canonical
// roster key (see keys.RosterKey).
var MatchupGroup singleflight.Group
