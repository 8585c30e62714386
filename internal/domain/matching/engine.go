package matching

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

type Outcome string

const (
	OutcomeNoRequirements Outcome = "no_requirements"
	OutcomeMatched        Outcome = "matched"
	OutcomeNoMatch        Outcome = "no_match"
)

type IssueSource string

const (
	IssueSourceAssignment  IssueSource = "assignment"
	IssueSourceRequirement IssueSource = "requirement"
)

type IssueKind string

const (
	// IssueUnknownLabel: the stored proficiency label is outside the scale.
	IssueUnknownLabel IssueKind = "unknown_label"
	// IssueMissingID: the row has no person or skill id and was skipped.
	IssueMissingID IssueKind = "missing_id"
)

// LabelIssue flags a stored row the engine could not use as-is. The affected
// row never satisfies anything; the issue is data, not an error.
type LabelIssue struct {
	Source   IssueSource
	Kind     IssueKind
	PersonID uuid.UUID
	SkillID  uuid.UUID
	Label    string
}

// RequirementRow is one project requirement as read from storage.
type RequirementRow struct {
	SkillID   uuid.UUID
	SkillName string
	MinLevel  string
}

type Result struct {
	Outcome      Outcome
	Requirements []Requirement
	Matched      []Candidate
	Gaps         []Shortage
	Issues       []LabelIssue
}

// NoRequirements reports the "no requirements defined" sentinel.
func (r Result) NoRequirements() bool {
	return r.Outcome == OutcomeNoRequirements
}

// Match runs the full pipeline over one snapshot: normalize requirements,
// index the roster, filter, and analyze gaps when nobody qualifies.
func Match(reqRows []RequirementRow, rosterRows []RosterRow) Result {
	reqs, issues := NormalizeRequirements(reqRows)
	if len(reqs) == 0 {
		return Result{
			Outcome:      OutcomeNoRequirements,
			Requirements: reqs,
			Matched:      []Candidate{},
			Issues:       issues,
		}
	}

	roster, rosterIssues := IndexRoster(rosterRows)
	issues = append(issues, rosterIssues...)

	matched := Filter(reqs, roster)
	if len(matched) > 0 {
		return Result{
			Outcome:      OutcomeMatched,
			Requirements: reqs,
			Matched:      matched,
			Issues:       issues,
		}
	}

	return Result{
		Outcome:      OutcomeNoMatch,
		Requirements: reqs,
		Matched:      matched,
		Gaps:         AnalyzeGaps(reqs, roster, matched),
		Issues:       issues,
	}
}

// NormalizeRequirements parses labels, collapses repeated skills (last row
// wins) and orders the result by skill name, then skill id. Rows without a
// skill id are dropped and reported.
func NormalizeRequirements(rows []RequirementRow) ([]Requirement, []LabelIssue) {
	var issues []LabelIssue
	bySkill := make(map[uuid.UUID]Requirement, len(rows))
	for _, row := range rows {
		if row.SkillID == uuid.Nil {
			issues = append(issues, LabelIssue{
				Source: IssueSourceRequirement,
				Kind:   IssueMissingID,
				Label:  row.MinLevel,
			})
			continue
		}
		lvl, _ := ParseLevel(row.MinLevel)
		bySkill[row.SkillID] = Requirement{
			SkillID:   row.SkillID,
			SkillName: row.SkillName,
			MinLevel:  lvl,
			MinLabel:  row.MinLevel,
		}
	}

	out := make([]Requirement, 0, len(bySkill))
	for _, r := range bySkill {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := strings.ToLower(out[i].SkillName), strings.ToLower(out[j].SkillName)
		if a != b {
			return a < b
		}
		return out[i].SkillID.String() < out[j].SkillID.String()
	})

	for _, r := range out {
		if !r.MinLevel.Valid() {
			issues = append(issues, LabelIssue{
				Source:  IssueSourceRequirement,
				Kind:    IssueUnknownLabel,
				SkillID: r.SkillID,
				Label:   r.MinLabel,
			})
		}
	}
	return out, issues
}
