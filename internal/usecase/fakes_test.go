package usecase

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"skill-matrix/internal/domain/matching"
	"skill-matrix/internal/domain/personnel"
	"skill-matrix/internal/domain/project"
	"skill-matrix/internal/domain/skill"
	"skill-matrix/internal/repository"

	"github.com/google/uuid"
)

type fakeSkillRepo struct {
	items map[uuid.UUID]skill.Skill
	err   error
}

func newFakeSkillRepo(items ...skill.Skill) *fakeSkillRepo {
	r := &fakeSkillRepo{items: map[uuid.UUID]skill.Skill{}}
	for _, s := range items {
		r.items[s.ID] = s
	}
	return r
}

func (r *fakeSkillRepo) List(context.Context) ([]skill.Skill, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]skill.Skill, 0, len(r.items))
	for _, s := range r.items {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeSkillRepo) GetByID(_ context.Context, id uuid.UUID) (skill.Skill, error) {
	if r.err != nil {
		return skill.Skill{}, r.err
	}
	s, ok := r.items[id]
	if !ok {
		return skill.Skill{}, skill.ErrNotFound
	}
	return s, nil
}

func (r *fakeSkillRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	_, ok := r.items[id]
	return ok, nil
}

func (r *fakeSkillRepo) Create(_ context.Context, s skill.Skill) (skill.Skill, error) {
	if r.err != nil {
		return skill.Skill{}, r.err
	}
	for _, existing := range r.items {
		if existing.Name == s.Name {
			return skill.Skill{}, skill.ErrNameTaken
		}
	}
	s.ID = uuid.New()
	s.CreatedAt = time.Now()
	r.items[s.ID] = s
	return s, nil
}

func (r *fakeSkillRepo) Update(_ context.Context, s skill.Skill) (skill.Skill, error) {
	if r.err != nil {
		return skill.Skill{}, r.err
	}
	if _, ok := r.items[s.ID]; !ok {
		return skill.Skill{}, skill.ErrNotFound
	}
	r.items[s.ID] = s
	return s, nil
}

func (r *fakeSkillRepo) Delete(_ context.Context, id uuid.UUID) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.items[id]; !ok {
		return skill.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

type fakePersonnelRepo struct {
	items map[uuid.UUID]personnel.Personnel
	err   error
}

func newFakePersonnelRepo(items ...personnel.Personnel) *fakePersonnelRepo {
	r := &fakePersonnelRepo{items: map[uuid.UUID]personnel.Personnel{}}
	for _, p := range items {
		r.items[p.ID] = p
	}
	return r
}

func (r *fakePersonnelRepo) List(context.Context) ([]personnel.Personnel, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]personnel.Personnel, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePersonnelRepo) GetByID(_ context.Context, id uuid.UUID) (personnel.Personnel, error) {
	if r.err != nil {
		return personnel.Personnel{}, r.err
	}
	p, ok := r.items[id]
	if !ok {
		return personnel.Personnel{}, personnel.ErrNotFound
	}
	return p, nil
}

func (r *fakePersonnelRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	_, ok := r.items[id]
	return ok, nil
}

func (r *fakePersonnelRepo) Create(_ context.Context, p personnel.Personnel) (personnel.Personnel, error) {
	if r.err != nil {
		return personnel.Personnel{}, r.err
	}
	for _, existing := range r.items {
		if existing.Email == p.Email {
			return personnel.Personnel{}, personnel.ErrEmailTaken
		}
	}
	p.ID = uuid.New()
	r.items[p.ID] = p
	return p, nil
}

func (r *fakePersonnelRepo) Update(_ context.Context, p personnel.Personnel) (personnel.Personnel, error) {
	if r.err != nil {
		return personnel.Personnel{}, r.err
	}
	if _, ok := r.items[p.ID]; !ok {
		return personnel.Personnel{}, personnel.ErrNotFound
	}
	r.items[p.ID] = p
	return p, nil
}

func (r *fakePersonnelRepo) Delete(_ context.Context, id uuid.UUID) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.items[id]; !ok {
		return personnel.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

type pairKey [2]uuid.UUID

type fakeAssignmentRepo struct {
	items     map[pairKey]personnel.Assignment
	roster    []matching.RosterRow
	err       error
	rosterErr error
}

func newFakeAssignmentRepo() *fakeAssignmentRepo {
	return &fakeAssignmentRepo{items: map[pairKey]personnel.Assignment{}}
}

func (r *fakeAssignmentRepo) Upsert(_ context.Context, a personnel.Assignment) (personnel.Assignment, error) {
	if r.err != nil {
		return personnel.Assignment{}, r.err
	}
	r.items[pairKey{a.PersonID, a.SkillID}] = a
	return a, nil
}

func (r *fakeAssignmentRepo) ListByPerson(_ context.Context, personID uuid.UUID) ([]personnel.Assignment, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]personnel.Assignment, 0)
	for k, a := range r.items {
		if k[0] == personID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAssignmentRepo) Delete(_ context.Context, personID, skillID uuid.UUID) error {
	if r.err != nil {
		return r.err
	}
	k := pairKey{personID, skillID}
	if _, ok := r.items[k]; !ok {
		return personnel.ErrAssignmentNotFound
	}
	delete(r.items, k)
	return nil
}

func (r *fakeAssignmentRepo) RosterRows(context.Context) ([]matching.RosterRow, error) {
	if r.rosterErr != nil {
		return nil, r.rosterErr
	}
	return r.roster, nil
}

type fakeProjectRepo struct {
	items map[uuid.UUID]project.Project
	err   error
}

func newFakeProjectRepo(items ...project.Project) *fakeProjectRepo {
	r := &fakeProjectRepo{items: map[uuid.UUID]project.Project{}}
	for _, p := range items {
		r.items[p.ID] = p
	}
	return r
}

func (r *fakeProjectRepo) List(context.Context) ([]project.Project, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]project.Project, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProjectRepo) GetByID(_ context.Context, id uuid.UUID) (project.Project, error) {
	if r.err != nil {
		return project.Project{}, r.err
	}
	p, ok := r.items[id]
	if !ok {
		return project.Project{}, project.ErrNotFound
	}
	return p, nil
}

func (r *fakeProjectRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	_, ok := r.items[id]
	return ok, nil
}

func (r *fakeProjectRepo) Create(_ context.Context, p project.Project) (project.Project, error) {
	if r.err != nil {
		return project.Project{}, r.err
	}
	p.ID = uuid.New()
	r.items[p.ID] = p
	return p, nil
}

func (r *fakeProjectRepo) Update(_ context.Context, p project.Project) (project.Project, error) {
	if r.err != nil {
		return project.Project{}, r.err
	}
	if _, ok := r.items[p.ID]; !ok {
		return project.Project{}, project.ErrNotFound
	}
	r.items[p.ID] = p
	return p, nil
}

func (r *fakeProjectRepo) Delete(_ context.Context, id uuid.UUID) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.items[id]; !ok {
		return project.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

type fakeRequirementRepo struct {
	items map[pairKey]project.Requirement
	rows  []matching.RequirementRow
	err   error
}

func newFakeRequirementRepo() *fakeRequirementRepo {
	return &fakeRequirementRepo{items: map[pairKey]project.Requirement{}}
}

func (r *fakeRequirementRepo) Upsert(_ context.Context, req project.Requirement) (project.Requirement, error) {
	if r.err != nil {
		return project.Requirement{}, r.err
	}
	r.items[pairKey{req.ProjectID, req.SkillID}] = req
	return req, nil
}

func (r *fakeRequirementRepo) FindByProjectID(_ context.Context, projectID uuid.UUID) ([]project.Requirement, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]project.Requirement, 0)
	for k, req := range r.items {
		if k[0] == projectID {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *fakeRequirementRepo) Delete(_ context.Context, projectID, skillID uuid.UUID) error {
	if r.err != nil {
		return r.err
	}
	k := pairKey{projectID, skillID}
	if _, ok := r.items[k]; !ok {
		return project.ErrRequirementNotFound
	}
	delete(r.items, k)
	return nil
}

func (r *fakeRequirementRepo) RequirementRows(context.Context, uuid.UUID) ([]matching.RequirementRow, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.rows, nil
}

type fakeReportRepo struct {
	experience []repository.LabelCount
	topSkills  []repository.LabelCount
	status     []repository.LabelCount
	err        error
	calls      int
	mu         sync.Mutex
}

func (r *fakeReportRepo) hit() {
	r.mu.Lock()
	r.calls++
	r.mu.Unlock()
}

func (r *fakeReportRepo) ExperienceDistribution(context.Context) ([]repository.LabelCount, error) {
	r.hit()
	return r.experience, r.err
}

func (r *fakeReportRepo) TopSkills(context.Context, int) ([]repository.LabelCount, error) {
	r.hit()
	return r.topSkills, nil
}

func (r *fakeReportRepo) ProjectStatusCounts(context.Context) ([]repository.LabelCount, error) {
	r.hit()
	return r.status, nil
}

type fakeCache struct {
	data    map[string][]byte
	getErr  error
	setErr  error
	deleted []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]byte{}}
}

func (c *fakeCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	if c.getErr != nil {
		return false, c.getErr
	}
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *fakeCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	if c.setErr != nil {
		return c.setErr
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = b
	return nil
}

func (c *fakeCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.data, k)
		c.deleted = append(c.deleted, k)
	}
	return nil
}

type notifyEvent struct {
	source    string
	projectID uuid.UUID
}

type fakeNotifier struct {
	events []notifyEvent
}

func (n *fakeNotifier) NotifyMatchInputsChanged(source string, projectID uuid.UUID) {
	n.events = append(n.events, notifyEvent{source: source, projectID: projectID})
}

type fakeObserver struct {
	outcomes    []string
	labelIssues map[string]int
	cache       map[string]int
}

func newFakeObserver() *fakeObserver {
	return &fakeObserver{labelIssues: map[string]int{}, cache: map[string]int{}}
}

func (o *fakeObserver) ObserveMatch(outcome string, _, _ int, _ time.Duration) {
	o.outcomes = append(o.outcomes, outcome)
}

func (o *fakeObserver) IncLabelIssue(source string) { o.labelIssues[source]++ }
func (o *fakeObserver) IncCache(result string)      { o.cache[result]++ }
