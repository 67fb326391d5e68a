package trends

import "fmt"

var phaseDescriptions = map[Phase]string{
	PhaseEmerging: "This keyword is in its early adoption phase with growing interest.",
	PhaseGrowing:  "This keyword is gaining momentum and popularity rapidly.",
	PhasePeaking:  "This keyword has reached its peak popularity and is widely discussed.",
	PhaseDecaying: "This keyword is declining in popularity and mentions.",
	PhaseStable:   "This keyword maintains consistent engagement over time.",
}

// DescribePhase returns the human-readable description of a trend phase.
// Unknown labels get a templated sentence embedding the literal value.
func DescribePhase(phase Phase) string {
	if description, ok := phaseDescriptions[phase]; ok {
		return description
	}
	return fmt.Sprintf("This keyword is in the %s phase.", phase)
}
