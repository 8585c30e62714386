package matching

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownLevel = errors.New("unknown proficiency level")

// Level is the ordinal proficiency scale. The zero value is LevelUnknown and
// never satisfies a requirement.
type Level uint8

const (
	LevelUnknown Level = iota
	LevelBeginner
	LevelIntermediate
	LevelAdvanced
	LevelExpert
)

var levelLabels = [...]string{
	LevelUnknown:      "Unknown",
	LevelBeginner:     "Beginner",
	LevelIntermediate: "Intermediate",
	LevelAdvanced:     "Advanced",
	LevelExpert:       "Expert",
}

// Levels returns the known levels in ascending order.
func Levels() []Level {
	return []Level{LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert}
}

// ParseLevel maps a label to its Level. Matching is case-insensitive and
// ignores surrounding whitespace; anything else yields (LevelUnknown, false).
func ParseLevel(label string) (Level, bool) {
	label = strings.TrimSpace(label)
	for _, l := range Levels() {
		if strings.EqualFold(label, levelLabels[l]) {
			return l, true
		}
	}
	return LevelUnknown, false
}

func (l Level) Valid() bool {
	return l >= LevelBeginner && l <= LevelExpert
}

func (l Level) String() string {
	if !l.Valid() {
		return levelLabels[LevelUnknown]
	}
	return levelLabels[l]
}

// Satisfies reports whether l is at or above min. Unknown on either side fails.
func (l Level) Satisfies(min Level) bool {
	if !l.Valid() || !min.Valid() {
		return false
	}
	return l >= min
}

// AtLeast compares two labels under the fixed ordering.
func AtLeast(have, want string) bool {
	h, ok := ParseLevel(have)
	if !ok {
		return false
	}
	w, ok := ParseLevel(want)
	if !ok {
		return false
	}
	return h.Satisfies(w)
}

func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLevel, uint8(l))
	}
	return []byte(levelLabels[l]), nil
}

func (l *Level) UnmarshalText(b []byte) error {
	v, ok := ParseLevel(string(b))
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLevel, string(b))
	}
	*l = v
	return nil
}
