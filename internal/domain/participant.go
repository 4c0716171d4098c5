package domain

// Represents a person who may attend events.
// Profiles are sourced from the user store and are immutable within a
// single schedule-generation run. DefaultLocation is nil when the user
// has never set a home location.
type Participant struct {
	ID              string
	DisplayName     string
	DefaultLocation *Coordinates
	TransportModes  []string
}

// PreferredModes returns the participant's transport mode tags with a
// driving fallback when no preference is recorded.
func (p *Participant) PreferredModes() []string {
	if len(p.TransportModes) == 0 {
		return []string{DefaultMode}
	}
	return p.TransportModes
}
