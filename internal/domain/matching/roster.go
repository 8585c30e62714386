package matching

import (
	"bytes"
	"sort"

	"github.com/google/uuid"
)

// RosterRow is one (person, skill) pair as read from the personnel directory.
// Personnel without skills do not appear.
type RosterRow struct {
	PersonID uuid.UUID
	Name     string
	Role     string
	Email    string
	SkillID  uuid.UUID
	Level    string
}

type Candidate struct {
	ID     uuid.UUID
	Name   string
	Role   string
	Email  string
	Skills map[uuid.UUID]Level
	// Labels holds the stored label for each skill, verbatim.
	Labels map[uuid.UUID]string
}

// Label returns the canonical label for a known level and the stored text
// otherwise.
func (c Candidate) Label(skillID uuid.UUID) string {
	if lvl := c.Skills[skillID]; lvl.Valid() {
		return lvl.String()
	}
	if raw, ok := c.Labels[skillID]; ok {
		return raw
	}
	return LevelUnknown.String()
}

func (c Candidate) clone() Candidate {
	skills := make(map[uuid.UUID]Level, len(c.Skills))
	for k, v := range c.Skills {
		skills[k] = v
	}
	labels := make(map[uuid.UUID]string, len(c.Labels))
	for k, v := range c.Labels {
		labels[k] = v
	}
	c.Skills = skills
	c.Labels = labels
	return c
}

// Roster is an immutable person -> skills index.
type Roster struct {
	byID  map[uuid.UUID]Candidate
	order []uuid.UUID
}

// IndexRoster groups rows by person. Person attributes come from the first row
// seen for that person; for a repeated (person, skill) pair the last row in
// input order wins. Unparseable labels are kept as LevelUnknown and reported;
// rows missing a person or skill id are skipped and reported.
func IndexRoster(rows []RosterRow) (Roster, []LabelIssue) {
	acc := rosterAcc{byID: make(map[uuid.UUID]Candidate)}
	for _, row := range rows {
		acc = acc.fold(row)
	}

	order := make([]uuid.UUID, 0, len(acc.byID))
	for id := range acc.byID {
		order = append(order, id)
	}
	sortIDs(order)

	return Roster{byID: acc.byID, order: order}, acc.issues
}

type rosterAcc struct {
	byID   map[uuid.UUID]Candidate
	issues []LabelIssue
}

func (a rosterAcc) fold(row RosterRow) rosterAcc {
	if row.PersonID == uuid.Nil || row.SkillID == uuid.Nil {
		a.issues = append(a.issues, LabelIssue{
			Source:   IssueSourceAssignment,
			Kind:     IssueMissingID,
			PersonID: row.PersonID,
			SkillID:  row.SkillID,
			Label:    row.Level,
		})
		return a
	}

	c, ok := a.byID[row.PersonID]
	if !ok {
		c = Candidate{
			ID:     row.PersonID,
			Name:   row.Name,
			Role:   row.Role,
			Email:  row.Email,
			Skills: make(map[uuid.UUID]Level),
			Labels: make(map[uuid.UUID]string),
		}
	}

	lvl, valid := ParseLevel(row.Level)
	if !valid {
		a.issues = append(a.issues, LabelIssue{
			Source:   IssueSourceAssignment,
			Kind:     IssueUnknownLabel,
			PersonID: row.PersonID,
			SkillID:  row.SkillID,
			Label:    row.Level,
		})
	}
	c.Skills[row.SkillID] = lvl
	c.Labels[row.SkillID] = row.Level
	a.byID[row.PersonID] = c
	return a
}

func (r Roster) Len() int {
	return len(r.order)
}

func (r Roster) Get(id uuid.UUID) (Candidate, bool) {
	c, ok := r.byID[id]
	if !ok {
		return Candidate{}, false
	}
	return c.clone(), true
}

// Candidates returns every indexed person in ascending id order.
func (r Roster) Candidates() []Candidate {
	out := make([]Candidate, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id].clone())
	}
	return out
}

func sortIDs(ids []uuid.UUID) {
	sort.Slice(ids, func(i, j int) bool {
		return bytes.Compare(ids[i][:], ids[j][:]) < 0
	})
}
