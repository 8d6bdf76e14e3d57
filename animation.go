package statsring

import (
	"fmt"
	"strconv"
	"strings"
)

// AnimationType selects how segments are revealed.
type AnimationType int

const (
	// Rotation grows every segment while the whole ring turns once.
	Rotation AnimationType = iota
	// Sequential reveals segments one after another from 12 o'clock.
	Sequential
	// Bidirectional grows every segment outward from its own midpoint.
	Bidirectional
)

// DefaultAnimationType is used when no type is configured.
const DefaultAnimationType = Sequential

var animationTypeNames = [...]string{
	Rotation:      "rotation",
	Sequential:    "sequential",
	Bidirectional: "bidirectional",
}

// String returns the lower-case name of the type.
func (t AnimationType) String() string {
	if t >= 0 && int(t) < len(animationTypeNames) {
		return animationTypeNames[t]
	}
	return fmt.Sprintf("AnimationType(%d)", int(t))
}

// Valid reports whether t is one of the defined types.
func (t AnimationType) Valid() bool {
	return t >= Rotation && t <= Bidirectional
}

// ParseAnimationType accepts a name ("rotation", "sequential",
// "bidirectional", case-insensitive) or its numeric value.
func ParseAnimationType(s string) (AnimationType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range animationTypeNames {
		if s == name {
			return AnimationType(i), nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil && AnimationType(n).Valid() {
		return AnimationType(n), nil
	}
	return 0, fmt.Errorf("statsring: unknown animation type %q", s)
}
