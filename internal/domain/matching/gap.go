package matching

import (
	"fmt"

	"github.com/google/uuid"
)

// Shortage is one line of a gap report. Every requirement is listed once the
// match set is empty; QualifiedCount tells callers whether the requirement is
// unmet on its own or only in combination with the others.
type Shortage struct {
	SkillID        uuid.UUID
	SkillName      string
	MinLevel       Level
	MinLabel       string
	QualifiedCount int
	Narrative      string
}

// AnalyzeGaps builds the per-requirement shortage list. It returns nil unless
// the match set is empty and requirements exist.
func AnalyzeGaps(reqs []Requirement, roster Roster, matched []Candidate) []Shortage {
	if len(reqs) == 0 || len(matched) > 0 {
		return nil
	}

	out := make([]Shortage, 0, len(reqs))
	for _, r := range reqs {
		n := countQualified(r, roster)
		out = append(out, Shortage{
			SkillID:        r.SkillID,
			SkillName:      r.SkillName,
			MinLevel:       r.MinLevel,
			MinLabel:       requirementLabel(r),
			QualifiedCount: n,
			Narrative:      narrative(r, n),
		})
	}
	return out
}

func requirementLabel(r Requirement) string {
	if r.MinLevel.Valid() {
		return r.MinLevel.String()
	}
	return r.MinLabel
}

func narrative(r Requirement, qualified int) string {
	name := r.SkillName
	if name == "" {
		name = r.SkillID.String()
	}

	if !r.MinLevel.Valid() {
		return fmt.Sprintf(
			"Blocker: requirement for %s has an unrecognized minimum level %q and cannot be satisfied. Correct the requirement level.",
			name, r.MinLabel,
		)
	}

	if qualified == 0 {
		return fmt.Sprintf(
			"Critical shortage: no personnel have %s at %s level or higher. Consider hiring or training to cover this requirement.",
			name, r.MinLevel,
		)
	}

	return fmt.Sprintf(
		"Blocker in combination: %d personnel have %s at %s level or higher, but none of them meet every other requirement. Consider cross-training them on the remaining skills or hiring.",
		qualified, name, r.MinLevel,
	)
}
