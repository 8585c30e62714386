package matching

import "github.com/google/uuid"

type Requirement struct {
	SkillID   uuid.UUID
	SkillName string
	MinLevel  Level
	// MinLabel keeps the stored label so unknown values can be reported verbatim.
	MinLabel string
}

// Qualifies reports whether c holds every requirement at or above its minimum.
func Qualifies(c Candidate, reqs []Requirement) bool {
	for _, r := range reqs {
		have, ok := c.Skills[r.SkillID]
		if !ok {
			return false
		}
		if !have.Satisfies(r.MinLevel) {
			return false
		}
	}
	return true
}

// Filter returns the candidates satisfying every requirement, ascending by id.
// An empty requirement list yields an empty slice; callers that need the
// "no requirements defined" distinction go through Match.
func Filter(reqs []Requirement, roster Roster) []Candidate {
	out := make([]Candidate, 0)
	if len(reqs) == 0 {
		return out
	}
	for _, c := range roster.Candidates() {
		if Qualifies(c, reqs) {
			out = append(out, c)
		}
	}
	return out
}

func countQualified(r Requirement, roster Roster) int {
	n := 0
	for _, id := range roster.order {
		have, ok := roster.byID[id].Skills[r.SkillID]
		if ok && have.Satisfies(r.MinLevel) {
			n++
		}
	}
	return n
}
