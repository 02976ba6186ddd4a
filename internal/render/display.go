package render

import "strings"

// Display selects which sections of a report are rendered.
type Display struct {
	Abilities    bool `json:"abilities"`
	Stats        bool `json:"stats"`
	Availability bool `json:"availability"`
	// Unavailable also lists versions where the pokemon cannot be found.
	Unavailable bool `json:"unavailable"`
	Typing      bool `json:"typing"`
}

func DefaultDisplay() Display {
	return Display{
		Abilities:    true,
		Stats:        true,
		Availability: true,
		Unavailable:  true,
		Typing:       true,
	}
}

// ToggleLetters are the single letter commands accepted by Toggle.
const ToggleLetters = "psaut"

// Toggle flips the section bound to letter: p abilities, s stats,
// a availability, u unavailable versions, t typing. ok is false for any
// other input and d is returned unchanged.
func (d Display) Toggle(letter string) (toggled Display, ok bool) {
	switch strings.ToLower(strings.TrimSpace(letter)) {
	case "p":
		d.Abilities = !d.Abilities
	case "s":
		d.Stats = !d.Stats
	case "a":
		d.Availability = !d.Availability
	case "u":
		d.Unavailable = !d.Unavailable
	case "t":
		d.Typing = !d.Typing
	default:
		return d, false
	}
	return d, true
}

func (d Display) String() string {
	flag := func(name string, on bool) string {
		if on {
			return name + ":on"
		}
		return name + ":off"
	}
	return strings.Join([]string{
		flag("[p]ossible abilities", d.Abilities),
		flag("[s]tats", d.Stats),
		flag("[a]vailability", d.Availability),
		flag("[u]navailable", d.Unavailable),
		flag("[t]yping", d.Typing),
	}, "  ")
}
