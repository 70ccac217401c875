package domain

// WalkRoute is a static catalog entry describing a walk's theme and time
// window. Routes are fixed at build time and never user created.
type WalkRoute struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`

	// Bookable time-of-day window, [StartHour, EndHour) in local hours.
	StartHour int `json:"startHour"`
	EndHour   int `json:"endHour"`

	DistanceKm      float64 `json:"distanceKm"`
	DurationMinutes int     `json:"durationMinutes"`
	Difficulty      string  `json:"difficulty"`
}
