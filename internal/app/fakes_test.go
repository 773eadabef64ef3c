package app

import (
	"context"
	"sort"
	"sync"
	"time"

	"careerassign/internal/common"
	"careerassign/internal/domain/application"
	"careerassign/internal/domain/candidate"
	"careerassign/internal/domain/company"
	"careerassign/internal/domain/course"
	"careerassign/internal/domain/institution"
	"careerassign/internal/domain/job"
	"careerassign/internal/domain/notification"
)

type fakeApplicationRepo struct {
	mu      sync.Mutex
	apps    map[common.UUID]*application.Application
	clock   time.Time
	planErr error
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{
		apps:  make(map[common.UUID]*application.Application),
		clock: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (r *fakeApplicationRepo) tick() time.Time {
	r.clock = r.clock.Add(time.Minute)
	return r.clock
}

// seed inserts an application directly, bypassing gates, for scenario setup.
func (r *fakeApplicationRepo) seed(app application.Application) application.Application {
	r.mu.Lock()
	defer r.mu.Unlock()
	if app.ID.IsZero() {
		app.ID = common.NewUUID()
	}
	if app.SubmittedAt.IsZero() {
		app.SubmittedAt = r.tick()
	}
	stored := app
	r.apps[app.ID] = &stored
	return app
}

func (r *fakeApplicationRepo) snapshot() map[common.UUID]application.Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	statuses := make(map[common.UUID]application.Status, len(r.apps))
	for id, app := range r.apps {
		statuses[id] = app.Status
	}
	return statuses
}

func (r *fakeApplicationRepo) Create(ctx context.Context, app application.Application) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app.ID = common.NewUUID()
	app.SubmittedAt = r.tick()
	stored := app
	r.apps[app.ID] = &stored
	return &app, nil
}

func (r *fakeApplicationRepo) GetByID(ctx context.Context, id common.UUID) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.apps[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "application not found", nil)
	}
	copied := *app
	return &copied, nil
}

func (r *fakeApplicationRepo) list(filter func(application.Application) bool) []application.Application {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []application.Application
	for _, app := range r.apps {
		if filter(*app) {
			items = append(items, *app)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].SubmittedAt.Before(items[j].SubmittedAt) })
	return items
}

func (r *fakeApplicationRepo) ListByCandidate(ctx context.Context, candidateID common.UUID) ([]application.Application, error) {
	return r.list(func(a application.Application) bool { return a.CandidateID == candidateID }), nil
}

func (r *fakeApplicationRepo) ListByInstitution(ctx context.Context, instID common.UUID) ([]application.Application, error) {
	return r.list(func(a application.Application) bool { return a.InstitutionID == instID }), nil
}

func (r *fakeApplicationRepo) ListByCourse(ctx context.Context, courseID common.UUID) ([]application.Application, error) {
	return r.list(func(a application.Application) bool { return a.CourseID == courseID }), nil
}

func (r *fakeApplicationRepo) ListWaitingByInstitution(ctx context.Context, instID common.UUID) ([]application.Application, error) {
	return r.list(func(a application.Application) bool {
		return a.InstitutionID == instID && a.Status == application.StatusWaiting
	}), nil
}

func (r *fakeApplicationRepo) CountByCandidateAndInstitution(ctx context.Context, candidateID, instID common.UUID) (int, error) {
	return len(r.list(func(a application.Application) bool {
		return a.CandidateID == candidateID && a.InstitutionID == instID
	})), nil
}

func (r *fakeApplicationRepo) ListAdmittedByCandidate(ctx context.Context, candidateID common.UUID) ([]application.Application, error) {
	return r.list(func(a application.Application) bool {
		return a.CandidateID == candidateID && a.Status == application.StatusAdmitted
	}), nil
}

func (r *fakeApplicationRepo) NextWaiting(ctx context.Context, courseID, instID common.UUID) (*application.Application, error) {
	waiting := r.list(func(a application.Application) bool {
		return a.CourseID == courseID && a.InstitutionID == instID && a.Status == application.StatusWaiting
	})
	if len(waiting) == 0 {
		return nil, common.NewError(common.CodeNotFound, "no waiting applications", nil)
	}
	return &waiting[0], nil
}

func (r *fakeApplicationRepo) UpdateStatus(ctx context.Context, id common.UUID, status application.Status) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.apps[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "application not found", nil)
	}
	app.Status = status
	copied := *app
	return &copied, nil
}

func (r *fakeApplicationRepo) AdmitExclusive(ctx context.Context, id common.UUID) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.apps[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "application not found", nil)
	}
	for otherID, other := range r.apps {
		if otherID != id && other.CandidateID == app.CandidateID && other.InstitutionID == app.InstitutionID && other.Status == application.StatusAdmitted {
			return nil, common.NewError(common.CodeConflict, "candidate already admitted at this institution", nil)
		}
	}
	app.Status = application.StatusAdmitted
	copied := *app
	return &copied, nil
}

func (r *fakeApplicationRepo) ApplyPlan(ctx context.Context, plan []application.StatusChange) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.planErr != nil {
		return r.planErr
	}
	for _, change := range plan {
		app, ok := r.apps[change.ApplicationID]
		if !ok || app.Status != change.From {
			return common.NewError(common.CodeConflict, "plan conflicts with current ledger state", nil)
		}
	}
	for _, change := range plan {
		r.apps[change.ApplicationID].Status = change.To
	}
	return nil
}

type fakeCandidateRepo struct {
	mu       sync.Mutex
	profiles map[common.UUID]*candidate.Profile
}

func newFakeCandidateRepo() *fakeCandidateRepo {
	return &fakeCandidateRepo{profiles: make(map[common.UUID]*candidate.Profile)}
}

func (r *fakeCandidateRepo) seed(profile candidate.Profile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := profile
	r.profiles[profile.UserID] = &stored
}

func (r *fakeCandidateRepo) GetByUserID(ctx context.Context, userID common.UUID) (*candidate.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	profile, ok := r.profiles[userID]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "profile not found", nil)
	}
	copied := *profile
	return &copied, nil
}

func (r *fakeCandidateRepo) Upsert(ctx context.Context, profile candidate.Profile) (*candidate.Profile, error) {
	r.seed(profile)
	return &profile, nil
}

func (r *fakeCandidateRepo) AddDocument(ctx context.Context, userID common.UUID, doc candidate.Document) (*candidate.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	profile, ok := r.profiles[userID]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "profile not found", nil)
	}
	doc.ID = common.NewUUID()
	doc.UploadedAt = time.Now().UTC()
	profile.Documents = append(profile.Documents, doc)
	return &doc, nil
}

func (r *fakeCandidateRepo) RemoveDocument(ctx context.Context, userID, docID common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	profile, ok := r.profiles[userID]
	if !ok {
		return common.NewError(common.CodeNotFound, "profile not found", nil)
	}
	for i, doc := range profile.Documents {
		if doc.ID == docID {
			profile.Documents = append(profile.Documents[:i], profile.Documents[i+1:]...)
			return nil
		}
	}
	return common.NewError(common.CodeNotFound, "document not found", nil)
}

func (r *fakeCandidateRepo) ListCompletedStudies(ctx context.Context) ([]candidate.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []candidate.Profile
	for _, profile := range r.profiles {
		if profile.CompletedStudies {
			items = append(items, *profile)
		}
	}
	return items, nil
}

type fakeCourseRepo struct {
	mu      sync.Mutex
	courses map[common.UUID]*course.Course
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{courses: make(map[common.UUID]*course.Course)}
}

func (r *fakeCourseRepo) seed(c course.Course) course.Course {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c.ID.IsZero() {
		c.ID = common.NewUUID()
	}
	stored := c
	r.courses[c.ID] = &stored
	return c
}

func (r *fakeCourseRepo) Create(ctx context.Context, c course.Course) (*course.Course, error) {
	created := r.seed(c)
	return &created, nil
}

func (r *fakeCourseRepo) Update(ctx context.Context, c course.Course) (*course.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.courses[c.ID]; !ok {
		return nil, common.NewError(common.CodeNotFound, "course not found", nil)
	}
	stored := c
	r.courses[c.ID] = &stored
	return &c, nil
}

func (r *fakeCourseRepo) GetByID(ctx context.Context, id common.UUID) (*course.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.courses[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "course not found", nil)
	}
	copied := *c
	return &copied, nil
}

func (r *fakeCourseRepo) listWhere(filter func(course.Course) bool) []course.Course {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []course.Course
	for _, c := range r.courses {
		if filter(*c) {
			items = append(items, *c)
		}
	}
	return items
}

func (r *fakeCourseRepo) ListByInstitution(ctx context.Context, instID common.UUID) ([]course.Course, error) {
	return r.listWhere(func(c course.Course) bool { return c.InstitutionID == instID }), nil
}

func (r *fakeCourseRepo) ListByFaculty(ctx context.Context, facultyID common.UUID) ([]course.Course, error) {
	return r.listWhere(func(c course.Course) bool { return c.FacultyID == facultyID }), nil
}

func (r *fakeCourseRepo) ListPublished(ctx context.Context) ([]course.Course, error) {
	return r.listWhere(func(c course.Course) bool { return c.Published }), nil
}

func (r *fakeCourseRepo) SetPublished(ctx context.Context, id common.UUID, published bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.courses[id]
	if !ok {
		return common.NewError(common.CodeNotFound, "course not found", nil)
	}
	c.Published = published
	return nil
}

func (r *fakeCourseRepo) Delete(ctx context.Context, id common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.courses, id)
	return nil
}

type fakeInstitutionRepo struct {
	mu           sync.Mutex
	institutions map[common.UUID]*institution.Institution
}

func newFakeInstitutionRepo() *fakeInstitutionRepo {
	return &fakeInstitutionRepo{institutions: make(map[common.UUID]*institution.Institution)}
}

func (r *fakeInstitutionRepo) seed(inst institution.Institution) institution.Institution {
	r.mu.Lock()
	defer r.mu.Unlock()
	if inst.ID.IsZero() {
		inst.ID = common.NewUUID()
	}
	stored := inst
	r.institutions[inst.ID] = &stored
	return inst
}

func (r *fakeInstitutionRepo) Create(ctx context.Context, inst institution.Institution) (*institution.Institution, error) {
	created := r.seed(inst)
	return &created, nil
}

func (r *fakeInstitutionRepo) Update(ctx context.Context, inst institution.Institution) (*institution.Institution, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.institutions[inst.ID]; !ok {
		return nil, common.NewError(common.CodeNotFound, "institution not found", nil)
	}
	stored := inst
	r.institutions[inst.ID] = &stored
	return &inst, nil
}

func (r *fakeInstitutionRepo) GetByID(ctx context.Context, id common.UUID) (*institution.Institution, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inst, ok := r.institutions[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "institution not found", nil)
	}
	copied := *inst
	return &copied, nil
}

func (r *fakeInstitutionRepo) FindByOwner(ctx context.Context, ownerID common.UUID) (*institution.Institution, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, inst := range r.institutions {
		if inst.OwnerID == ownerID {
			copied := *inst
			return &copied, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "institution not found", nil)
}

func (r *fakeInstitutionRepo) List(ctx context.Context) ([]institution.Institution, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []institution.Institution
	for _, inst := range r.institutions {
		items = append(items, *inst)
	}
	return items, nil
}

func (r *fakeInstitutionRepo) Delete(ctx context.Context, id common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.institutions, id)
	return nil
}

type fakeNotificationRepo struct {
	mu    sync.Mutex
	items []notification.Notification
	err   error
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{}
}

func (r *fakeNotificationRepo) Create(ctx context.Context, n notification.Notification) (*notification.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	n.ID = common.NewUUID()
	n.CreatedAt = time.Now().UTC()
	r.items = append(r.items, n)
	return &n, nil
}

func (r *fakeNotificationRepo) ListByUser(ctx context.Context, userID common.UUID) ([]notification.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []notification.Notification
	for _, n := range r.items {
		if n.UserID == userID {
			items = append(items, n)
		}
	}
	return items, nil
}

func (r *fakeNotificationRepo) MarkRead(ctx context.Context, userID, id common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, n := range r.items {
		if n.ID == id && n.UserID == userID {
			r.items[i].Read = true
			return nil
		}
	}
	return common.NewError(common.CodeNotFound, "notification not found", nil)
}

func (r *fakeNotificationRepo) Delete(ctx context.Context, userID, id common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, n := range r.items {
		if n.ID == id && n.UserID == userID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return common.NewError(common.CodeNotFound, "notification not found", nil)
}

func (r *fakeNotificationRepo) all() []notification.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]notification.Notification(nil), r.items...)
}

type fakeJobRepo struct {
	mu   sync.Mutex
	jobs map[common.UUID]*job.Job
	seq  int
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[common.UUID]*job.Job)}
}

func (r *fakeJobRepo) seed(j job.Job) job.Job {
	r.mu.Lock()
	defer r.mu.Unlock()
	if j.ID.IsZero() {
		j.ID = common.NewUUID()
	}
	r.seq++
	if j.PostedAt.IsZero() {
		j.PostedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(r.seq) * time.Minute)
	}
	stored := j
	r.jobs[j.ID] = &stored
	return j
}

func (r *fakeJobRepo) Create(ctx context.Context, j job.Job) (*job.Job, error) {
	created := r.seed(j)
	return &created, nil
}

func (r *fakeJobRepo) Update(ctx context.Context, j job.Job) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jobs[j.ID]; !ok {
		return nil, common.NewError(common.CodeNotFound, "job not found", nil)
	}
	stored := j
	r.jobs[j.ID] = &stored
	return &j, nil
}

func (r *fakeJobRepo) GetByID(ctx context.Context, id common.UUID) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "job not found", nil)
	}
	copied := *j
	return &copied, nil
}

func (r *fakeJobRepo) ListByCompany(ctx context.Context, companyID common.UUID) ([]job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []job.Job
	for _, j := range r.jobs {
		if j.CompanyID == companyID {
			items = append(items, *j)
		}
	}
	return items, nil
}

func (r *fakeJobRepo) ListRecent(ctx context.Context, limit int) ([]job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []job.Job
	for _, j := range r.jobs {
		items = append(items, *j)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].PostedAt.After(items[j].PostedAt) })
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (r *fakeJobRepo) AddApplicant(ctx context.Context, jobID, applicationID common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[jobID]
	if !ok {
		return common.NewError(common.CodeNotFound, "job not found", nil)
	}
	j.Applicants = append(j.Applicants, applicationID)
	return nil
}

func (r *fakeJobRepo) DeleteWithApplications(ctx context.Context, id common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.jobs, id)
	return nil
}

type fakeJobAppRepo struct {
	mu   sync.Mutex
	apps map[common.UUID]*application.JobApplication
}

func newFakeJobAppRepo() *fakeJobAppRepo {
	return &fakeJobAppRepo{apps: make(map[common.UUID]*application.JobApplication)}
}

func (r *fakeJobAppRepo) seed(app application.JobApplication) application.JobApplication {
	r.mu.Lock()
	defer r.mu.Unlock()
	if app.ID.IsZero() {
		app.ID = common.NewUUID()
	}
	stored := app
	r.apps[app.ID] = &stored
	return app
}

func (r *fakeJobAppRepo) Create(ctx context.Context, app application.JobApplication) (*application.JobApplication, error) {
	app.AppliedAt = time.Now().UTC()
	created := r.seed(app)
	return &created, nil
}

func (r *fakeJobAppRepo) GetByID(ctx context.Context, id common.UUID) (*application.JobApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.apps[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "job application not found", nil)
	}
	copied := *app
	return &copied, nil
}

func (r *fakeJobAppRepo) ListByCandidate(ctx context.Context, candidateID common.UUID) ([]application.JobApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []application.JobApplication
	for _, app := range r.apps {
		if app.CandidateID == candidateID {
			items = append(items, *app)
		}
	}
	return items, nil
}

func (r *fakeJobAppRepo) ListByJob(ctx context.Context, jobID common.UUID) ([]application.JobApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []application.JobApplication
	for _, app := range r.apps {
		if app.JobID == jobID {
			items = append(items, *app)
		}
	}
	return items, nil
}

func (r *fakeJobAppRepo) ListQualified(ctx context.Context, jobID common.UUID, minScore float64) ([]application.JobApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []application.JobApplication
	for _, app := range r.apps {
		if app.JobID == jobID && app.MatchScore > minScore && app.ReadyForInterview {
			items = append(items, *app)
		}
	}
	return items, nil
}

func (r *fakeJobAppRepo) SetReady(ctx context.Context, id common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.apps[id]
	if !ok {
		return common.NewError(common.CodeNotFound, "job application not found", nil)
	}
	app.ReadyForInterview = true
	return nil
}

func (r *fakeJobAppRepo) UpdateStatus(ctx context.Context, id common.UUID, status application.JobStatus) (*application.JobApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.apps[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "job application not found", nil)
	}
	app.Status = status
	copied := *app
	return &copied, nil
}

func (r *fakeJobAppRepo) ScheduleInterview(ctx context.Context, id common.UUID, updated application.JobApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.apps[id]
	if !ok {
		return common.NewError(common.CodeNotFound, "job application not found", nil)
	}
	app.InterviewScheduled = updated.InterviewScheduled
	app.InterviewDate = updated.InterviewDate
	app.InterviewExpectations = updated.InterviewExpectations
	return nil
}

type fakeCompanyRepo struct {
	mu       sync.Mutex
	profiles map[common.UUID]*company.Profile
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{profiles: make(map[common.UUID]*company.Profile)}
}

func (r *fakeCompanyRepo) seed(profile company.Profile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := profile
	r.profiles[profile.UserID] = &stored
}

func (r *fakeCompanyRepo) GetByUserID(ctx context.Context, userID common.UUID) (*company.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	profile, ok := r.profiles[userID]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "company profile not found", nil)
	}
	copied := *profile
	return &copied, nil
}

func (r *fakeCompanyRepo) Upsert(ctx context.Context, profile company.Profile) (*company.Profile, error) {
	r.seed(profile)
	return &profile, nil
}
