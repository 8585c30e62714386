package matching

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matchedIDs(res Result) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(res.Matched))
	for _, c := range res.Matched {
		out = append(out, c.ID)
	}
	return out
}

func TestMatch_SingleRequirement(t *testing.T) {
	x, y := uuid.New(), uuid.New()
	sql := uuid.New()

	res := Match(
		[]RequirementRow{{SkillID: sql, SkillName: "SQL", MinLevel: "Intermediate"}},
		[]RosterRow{
			{PersonID: x, Name: "X", SkillID: sql, Level: "Advanced"},
			{PersonID: y, Name: "Y", SkillID: sql, Level: "Beginner"},
		},
	)

	assert.Equal(t, OutcomeMatched, res.Outcome)
	assert.Equal(t, []uuid.UUID{x}, matchedIDs(res))
	assert.Nil(t, res.Gaps)
}

func TestMatch_GapReportListsEveryRequirement(t *testing.T) {
	x, y := uuid.New(), uuid.New()
	sql, py := uuid.New(), uuid.New()

	res := Match(
		[]RequirementRow{
			{SkillID: sql, SkillName: "SQL", MinLevel: "Intermediate"},
			{SkillID: py, SkillName: "Python", MinLevel: "Expert"},
		},
		[]RosterRow{
			{PersonID: x, Name: "X", SkillID: sql, Level: "Advanced"},
			{PersonID: x, Name: "X", SkillID: py, Level: "Advanced"},
			{PersonID: y, Name: "Y", SkillID: sql, Level: "Intermediate"},
		},
	)

	assert.Equal(t, OutcomeNoMatch, res.Outcome)
	assert.Empty(t, res.Matched)
	require.Len(t, res.Gaps, 2)

	// ordered by skill name
	assert.Equal(t, "Python", res.Gaps[0].SkillName)
	assert.Equal(t, LevelExpert, res.Gaps[0].MinLevel)
	assert.Equal(t, 0, res.Gaps[0].QualifiedCount)
	assert.Contains(t, res.Gaps[0].Narrative, "Critical shortage")
	assert.Contains(t, res.Gaps[0].Narrative, "hiring or training")

	assert.Equal(t, "SQL", res.Gaps[1].SkillName)
	assert.Equal(t, 2, res.Gaps[1].QualifiedCount)
	assert.Contains(t, res.Gaps[1].Narrative, "Blocker in combination")

	unmet := 0
	for _, g := range res.Gaps {
		if g.QualifiedCount == 0 {
			unmet++
		}
	}
	assert.Equal(t, 1, unmet)
}

func TestMatch_NoRequirementsSentinel(t *testing.T) {
	res := Match(nil, []RosterRow{{PersonID: uuid.New(), SkillID: uuid.New(), Level: "Expert"}})

	assert.True(t, res.NoRequirements())
	assert.Equal(t, OutcomeNoRequirements, res.Outcome)
	assert.Empty(t, res.Matched)
	assert.Nil(t, res.Gaps)

	empty := Match([]RequirementRow{{SkillID: uuid.New(), SkillName: "Rust", MinLevel: "Beginner"}}, nil)
	assert.False(t, empty.NoRequirements())
	assert.NotEqual(t, res.Outcome, empty.Outcome)
}

func TestMatch_RequirementWithoutSkillIDIsReported(t *testing.T) {
	res := Match([]RequirementRow{{SkillID: uuid.Nil, MinLevel: "Expert"}}, nil)

	assert.Equal(t, OutcomeNoRequirements, res.Outcome)
	require.Len(t, res.Issues, 1)
	assert.Equal(t, IssueSourceRequirement, res.Issues[0].Source)
	assert.Equal(t, IssueMissingID, res.Issues[0].Kind)
	assert.Equal(t, "Expert", res.Issues[0].Label)

	sql := uuid.New()
	res = Match(
		[]RequirementRow{{SkillID: uuid.Nil, MinLevel: "Beginner"}, {SkillID: sql, SkillName: "SQL", MinLevel: "Beginner"}},
		[]RosterRow{{PersonID: uuid.New(), SkillID: sql, Level: "Advanced"}},
	)
	assert.Equal(t, OutcomeMatched, res.Outcome)
	require.Len(t, res.Requirements, 1)
	require.Len(t, res.Issues, 1)
	assert.Equal(t, IssueMissingID, res.Issues[0].Kind)
}

func TestMatch_DuplicateAssignmentRows(t *testing.T) {
	p, s := uuid.New(), uuid.New()
	req := []RequirementRow{{SkillID: s, SkillName: "Go", MinLevel: "Advanced"}}

	res := Match(req, []RosterRow{
		{PersonID: p, Name: "P", SkillID: s, Level: "Beginner"},
		{PersonID: p, Name: "P", SkillID: s, Level: "Expert"},
	})
	require.Len(t, res.Matched, 1)
	assert.Len(t, res.Matched[0].Skills, 1)

	res = Match(req, []RosterRow{
		{PersonID: p, Name: "P", SkillID: s, Level: "Expert"},
		{PersonID: p, Name: "P", SkillID: s, Level: "Beginner"},
	})
	assert.Empty(t, res.Matched)
}

func TestMatch_EmptyRosterGivesFullGapReport(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	res := Match([]RequirementRow{
		{SkillID: a, SkillName: "A", MinLevel: "Beginner"},
		{SkillID: b, SkillName: "B", MinLevel: "Expert"},
	}, nil)

	assert.Equal(t, OutcomeNoMatch, res.Outcome)
	assert.Len(t, res.Gaps, 2)
}

func TestMatch_RequirementWithNoAssignees(t *testing.T) {
	p := uuid.New()
	held, orphan := uuid.New(), uuid.New()

	res := Match([]RequirementRow{
		{SkillID: held, SkillName: "Held", MinLevel: "Beginner"},
		{SkillID: orphan, SkillName: "Orphan", MinLevel: "Beginner"},
	}, []RosterRow{{PersonID: p, SkillID: held, Level: "Expert"}})

	assert.Empty(t, res.Matched)
	require.Len(t, res.Gaps, 2)
	assert.Equal(t, "Orphan", res.Gaps[1].SkillName)
	assert.Equal(t, 0, res.Gaps[1].QualifiedCount)
}

func TestMatch_UnknownLabelsDegradeToNoMatch(t *testing.T) {
	p, s := uuid.New(), uuid.New()

	res := Match(
		[]RequirementRow{{SkillID: s, SkillName: "Go", MinLevel: "Beginner"}},
		[]RosterRow{{PersonID: p, SkillID: s, Level: "Godlike"}},
	)
	assert.Empty(t, res.Matched)
	require.Len(t, res.Issues, 1)
	assert.Equal(t, IssueSourceAssignment, res.Issues[0].Source)

	res = Match(
		[]RequirementRow{{SkillID: s, SkillName: "Go", MinLevel: "Master"}},
		[]RosterRow{{PersonID: p, SkillID: s, Level: "Expert"}},
	)
	assert.Empty(t, res.Matched)
	require.Len(t, res.Issues, 1)
	assert.Equal(t, IssueSourceRequirement, res.Issues[0].Source)
	require.Len(t, res.Gaps, 1)
	assert.Equal(t, "Master", res.Gaps[0].MinLabel)
	assert.Contains(t, res.Gaps[0].Narrative, "unrecognized")
}

func TestMatch_DuplicateRequirementRowsLastWins(t *testing.T) {
	p, s := uuid.New(), uuid.New()
	res := Match([]RequirementRow{
		{SkillID: s, SkillName: "Go", MinLevel: "Expert"},
		{SkillID: s, SkillName: "Go", MinLevel: "Beginner"},
	}, []RosterRow{{PersonID: p, SkillID: s, Level: "Intermediate"}})

	require.Len(t, res.Requirements, 1)
	assert.Equal(t, LevelBeginner, res.Requirements[0].MinLevel)
	assert.Len(t, res.Matched, 1)
}

// randomSnapshot builds a roster over a small skill universe so that
// matches, partial matches and misses all occur.
func randomSnapshot(rng *rand.Rand, people, skills int) ([]uuid.UUID, []RosterRow) {
	skillIDs := make([]uuid.UUID, skills)
	for i := range skillIDs {
		skillIDs[i] = uuid.New()
	}
	labels := []string{"Beginner", "Intermediate", "Advanced", "Expert"}

	rows := make([]RosterRow, 0)
	for i := 0; i < people; i++ {
		pid := uuid.New()
		for _, s := range skillIDs {
			if rng.Intn(3) == 0 {
				continue
			}
			rows = append(rows, RosterRow{PersonID: pid, Name: pid.String(), SkillID: s, Level: labels[rng.Intn(len(labels))]})
		}
	}
	return skillIDs, rows
}

func randomRequirements(rng *rand.Rand, skillIDs []uuid.UUID) []RequirementRow {
	labels := []string{"Beginner", "Intermediate", "Advanced", "Expert"}
	out := make([]RequirementRow, 0)
	for i, s := range skillIDs {
		if rng.Intn(2) == 0 {
			continue
		}
		out = append(out, RequirementRow{SkillID: s, SkillName: string(rune('A' + i)), MinLevel: labels[rng.Intn(len(labels))]})
	}
	return out
}

func TestMatch_EveryMatchSatisfiesAllRequirements(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for iter := 0; iter < 50; iter++ {
		skillIDs, rows := randomSnapshot(rng, 12, 5)
		reqRows := randomRequirements(rng, skillIDs)
		res := Match(reqRows, rows)
		if len(reqRows) == 0 {
			assert.True(t, res.NoRequirements())
			continue
		}

		roster, _ := IndexRoster(rows)
		inMatch := make(map[uuid.UUID]bool)
		for _, c := range res.Matched {
			inMatch[c.ID] = true
		}
		for _, c := range roster.Candidates() {
			want := true
			for _, r := range reqRows {
				have, ok := c.Skills[r.SkillID]
				if !ok || !AtLeast(have.String(), r.MinLevel) {
					want = false
					break
				}
			}
			assert.Equal(t, want, inMatch[c.ID])
		}
	}
}

func TestMatch_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	skillIDs, rows := randomSnapshot(rng, 20, 4)
	reqRows := randomRequirements(rng, skillIDs)

	first := Match(reqRows, rows)
	second := Match(reqRows, rows)
	assert.Equal(t, first, second)
}

func TestMatch_MonotoneInRequirements(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	for iter := 0; iter < 30; iter++ {
		skillIDs, rows := randomSnapshot(rng, 15, 5)
		reqRows := randomRequirements(rng, skillIDs)
		if len(reqRows) < 2 {
			continue
		}

		full := Match(reqRows, rows)
		fewer := Match(reqRows[:len(reqRows)-1], rows)

		fewerSet := make(map[uuid.UUID]bool)
		for _, id := range matchedIDs(fewer) {
			fewerSet[id] = true
		}
		for _, id := range matchedIDs(full) {
			assert.True(t, fewerSet[id], "adding a requirement grew the match set")
		}
	}
}

func TestMatch_MonotoneInRoster(t *testing.T) {
	p, q := uuid.New(), uuid.New()
	a, b := uuid.New(), uuid.New()
	reqs := []RequirementRow{
		{SkillID: a, SkillName: "A", MinLevel: "Intermediate"},
		{SkillID: b, SkillName: "B", MinLevel: "Advanced"},
	}
	rows := []RosterRow{
		{PersonID: p, SkillID: a, Level: "Expert"},
		{PersonID: q, SkillID: a, Level: "Advanced"},
		{PersonID: q, SkillID: b, Level: "Expert"},
	}

	before := Match(reqs, rows)
	assert.Equal(t, []uuid.UUID{q}, matchedIDs(before))

	after := Match(reqs, append(rows, RosterRow{PersonID: p, SkillID: b, Level: "Advanced"}))
	assert.ElementsMatch(t, []uuid.UUID{p, q}, matchedIDs(after))
}
