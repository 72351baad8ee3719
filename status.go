package mui

import "strings"

// Status is the interaction state of a widget. Values are bit flags so a
// set of them can be used as a mask.
type Status uint

const (
	Clicked Status = 1 << iota
	Idle
	Hovered
	Pressed
	Disabled
	Changed
	Init

	AllStatus = Clicked | Idle | Hovered | Pressed | Disabled | Changed | Init
)

var statusNames = []string{"clicked", "idle", "hovered", "pressed", "disabled", "changed", "init"}

func (s Status) String() string {
	if s == 0 {
		return "none"
	}
	var names []string
	for i, name := range statusNames {
		if s&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	return strings.Join(names, "|")
}
