package domain

import "fmt"

// TravelMode selects how commute durations are computed by the
// mapping provider.
type TravelMode string

const (
	ModeDriving TravelMode = "driving"
	ModeTransit TravelMode = "transit"
	ModeBicycle TravelMode = "bicycle"
	ModeWalking TravelMode = "walking"
)

// ParseTravelMode validates a user-supplied mode string.
func ParseTravelMode(s string) (TravelMode, error) {
	switch TravelMode(s) {
	case ModeDriving, ModeTransit, ModeBicycle, ModeWalking:
		return TravelMode(s), nil
	}
	return "", fmt.Errorf(
		"unknown travel mode %q (expected driving, transit, bicycle or walking)", s,
	)
}

// RequestValue returns the value the provider's API expects for this mode.
// The API spells cycling "bicycling"; every other mode passes through.
func (m TravelMode) RequestValue() string {
	if m == ModeBicycle {
		return "bicycling"
	}
	return string(m)
}
