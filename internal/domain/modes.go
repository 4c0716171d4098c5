package domain

import "strings"

// Transport modes understood by the directions provider.
const (
	ModeDriving   = "driving"
	ModeWalking   = "walking"
	ModeBicycling = "bicycling"
	ModeTransit   = "transit"
)

// DefaultMode is used when a participant has no stated mode preference.
const DefaultMode = ModeDriving

var modeAliases = map[string]string{
	"driving":   ModeDriving,
	"car":       ModeDriving,
	"drive":     ModeDriving,
	"walking":   ModeWalking,
	"walk":      ModeWalking,
	"bicycling": ModeBicycling,
	"bike":      ModeBicycling,
	"cycling":   ModeBicycling,
	"transit":   ModeTransit,
	"bus":       ModeTransit,
	"train":     ModeTransit,
}

// NormalizeMode maps a user-supplied mode tag onto the provider vocabulary.
// The boolean reports whether the tag is recognized.
func NormalizeMode(tag string) (string, bool) {
	mode, ok := modeAliases[strings.ToLower(strings.TrimSpace(tag))]
	return mode, ok
}
