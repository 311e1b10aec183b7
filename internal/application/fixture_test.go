package application_test

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/workhub/workhub/internal/application"
	"github.com/workhub/workhub/internal/domain"
	"github.com/workhub/workhub/internal/ports"
)

func newFixture() *fixture {
	return newFixtureWithConfig(defaultTestConfig())
}

func defaultTestConfig() application.Config {
	return application.Config{
		TokenTTL:             7 * 24 * time.Hour,
		FailedLoginThreshold: 5,
		LockoutDuration:      30 * time.Minute,
		UnreadCacheTTL:       time.Minute,
	}
}

func newFixtureWithConfig(cfg application.Config) *fixture {
	clock := &fakeClock{t: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	users := &fakeUsers{
		byEmail: map[string]domain.User{},
		byID:    map[uuid.UUID]domain.User{},
	}
	messages := &fakeMessages{users: users}
	notes := &fakeNotes{byID: map[uuid.UUID]domain.Note{}}
	tasks := &fakeTasks{byID: map[uuid.UUID]domain.Task{}, users: users}
	companies := &fakeCompanies{byID: map[uuid.UUID]domain.Company{}}
	jobPosts := &fakeJobPosts{byID: map[uuid.UUID]domain.JobPost{}, companies: companies}
	categories := &fakeCategories{byID: map[uuid.UUID]domain.JobCategory{}, jobPosts: jobPosts}
	skills := &fakeSkills{byID: map[uuid.UUID]domain.Skill{}}
	lockouts := &fakeLockouts{state: map[string]ports.LockoutState{}}
	unreadCache := &fakeUnreadCache{values: map[uuid.UUID]int{}}
	publisher := &fakePublisher{}
	notifier := &fakeNotifier{}
	signer := &fakeSigner{tokens: map[string]ports.AuthClaims{}}
	google := &fakeGoogleVerifier{identities: map[string]ports.GoogleIdentity{}}

	svc := application.NewService(application.Dependencies{
		Config:         cfg,
		Users:          users,
		Messages:       messages,
		Notes:          notes,
		Tasks:          tasks,
		Companies:      companies,
		Categories:     categories,
		Skills:         skills,
		JobPosts:       jobPosts,
		Lockouts:       lockouts,
		UnreadCache:    unreadCache,
		Publisher:      publisher,
		Notifier:       notifier,
		Hasher:         &fakeHasher{},
		TokenSigner:    signer,
		GoogleVerifier: google,
		NowFn:          clock.Now,
	})

	return &fixture{
		service:     svc,
		clock:       clock,
		users:       users,
		messages:    messages,
		notes:       notes,
		tasks:       tasks,
		companies:   companies,
		categories:  categories,
		skills:      skills,
		jobPosts:    jobPosts,
		lockouts:    lockouts,
		unreadCache: unreadCache,
		publisher:   publisher,
		notifier:    notifier,
		signer:      signer,
		google:      google,
	}
}

type fixture struct {
	service     *application.Service
	clock       *fakeClock
	users       *fakeUsers
	messages    *fakeMessages
	notes       *fakeNotes
	tasks       *fakeTasks
	companies   *fakeCompanies
	categories  *fakeCategories
	skills      *fakeSkills
	jobPosts    *fakeJobPosts
	lockouts    *fakeLockouts
	unreadCache *fakeUnreadCache
	publisher   *fakePublisher
	notifier    *fakeNotifier
	signer      *fakeSigner
	google      *fakeGoogleVerifier
}

func (f *fixture) mustRegister(t *testing.T, username, email string) domain.PublicUser {
	t.Helper()
	user, err := f.service.Register(context.Background(), application.RegisterRequest{
		Username: username,
		Email:    email,
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("register %s failed: %v", email, err)
	}
	return user
}

// fakeClock hands out strictly increasing instants so ordering assertions
// never depend on wall time.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(time.Second)
	return c.t
}

type fakeUsers struct {
	mu      sync.Mutex
	byEmail map[string]domain.User
	byID    map[uuid.UUID]domain.User
}

func (f *fakeUsers) Create(_ context.Context, params ports.CreateUserParams) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byEmail[params.Email]; ok {
		return domain.User{}, domain.ErrConflict
	}
	u := domain.User{
		UserID:       uuid.New(),
		Username:     params.Username,
		Email:        params.Email,
		PasswordHash: params.PasswordHash,
		AuthProvider: params.AuthProvider,
		CreatedAt:    params.CreatedAtUTC,
		UpdatedAt:    params.CreatedAtUTC,
	}
	f.byEmail[u.Email] = u
	f.byID[u.UserID] = u
	return u, nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byEmail[email]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) GetByID(_ context.Context, userID uuid.UUID) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[userID]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) SearchByEmail(_ context.Context, query string, excludeID uuid.UUID, limit int) ([]domain.PublicUser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	needle := strings.ToLower(query)
	var out []domain.PublicUser
	for _, u := range f.byID {
		if u.UserID == excludeID {
			continue
		}
		if strings.Contains(strings.ToLower(u.Email), needle) {
			out = append(out, u.Public())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeMessages struct {
	mu    sync.Mutex
	items []domain.Message
	users *fakeUsers
}

func (f *fakeMessages) Create(ctx context.Context, params ports.SendMessageParams) (domain.Message, error) {
	sender, err := f.users.GetByID(ctx, params.SenderID)
	if err != nil {
		return domain.Message{}, err
	}
	receiver, err := f.users.GetByID(ctx, params.ReceiverID)
	if err != nil {
		return domain.Message{}, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	msg := domain.Message{
		MessageID:   uuid.New(),
		SenderID:    params.SenderID,
		ReceiverID:  params.ReceiverID,
		Content:     params.Content,
		MessageType: params.MessageType,
		IsRead:      false,
		CreatedAt:   params.CreatedAtUTC,
		Sender:      sender.Public(),
		Receiver:    receiver.Public(),
	}
	f.items = append(f.items, msg)
	return msg, nil
}

func (f *fakeMessages) History(_ context.Context, userA, userB uuid.UUID, limit int) ([]domain.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var thread []domain.Message
	for _, m := range f.items {
		if (m.SenderID == userA && m.ReceiverID == userB) || (m.SenderID == userB && m.ReceiverID == userA) {
			thread = append(thread, m)
		}
	}
	sort.Slice(thread, func(i, j int) bool { return thread[i].CreatedAt.Before(thread[j].CreatedAt) })
	if len(thread) > limit {
		thread = thread[len(thread)-limit:]
	}
	return thread, nil
}

func (f *fakeMessages) MarkThreadRead(_ context.Context, reader, counterpart uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var flipped int64
	for i, m := range f.items {
		if m.SenderID == counterpart && m.ReceiverID == reader && !m.IsRead {
			f.items[i].IsRead = true
			flipped++
		}
	}
	return flipped, nil
}

func (f *fakeMessages) UnreadCount(_ context.Context, reader uuid.UUID) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, m := range f.items {
		if m.ReceiverID == reader && !m.IsRead {
			count++
		}
	}
	return count, nil
}

func (f *fakeMessages) Counterparts(_ context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	seen := map[uuid.UUID]bool{}
	var out []uuid.UUID
	for _, m := range f.items {
		var other uuid.UUID
		switch userID {
		case m.SenderID:
			other = m.ReceiverID
		case m.ReceiverID:
			other = m.SenderID
		default:
			continue
		}
		if !seen[other] {
			seen[other] = true
			out = append(out, other)
		}
	}
	return out, nil
}

func (f *fakeMessages) Summary(_ context.Context, userID, counterpartID uuid.UUID) (*domain.LastMessage, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var last *domain.Message
	unread := 0
	for i, m := range f.items {
		if (m.SenderID == userID && m.ReceiverID == counterpartID) || (m.SenderID == counterpartID && m.ReceiverID == userID) {
			if last == nil || m.CreatedAt.After(last.CreatedAt) {
				last = &f.items[i]
			}
			if m.SenderID == counterpartID && m.ReceiverID == userID && !m.IsRead {
				unread++
			}
		}
	}
	if last == nil {
		return nil, 0, nil
	}
	return &domain.LastMessage{
		Content:   last.Content,
		Sender:    last.SenderID.String(),
		CreatedAt: last.CreatedAt,
	}, unread, nil
}

type fakeNotes struct {
	mu   sync.Mutex
	byID map[uuid.UUID]domain.Note
}

func (f *fakeNotes) Create(_ context.Context, note domain.Note) (domain.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[note.NoteID] = note
	return note, nil
}

func (f *fakeNotes) ListByUser(_ context.Context, userID uuid.UUID, tag string) ([]domain.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Note
	for _, n := range f.byID {
		if n.UserID != userID {
			continue
		}
		if tag != "" && !containsString(n.Tags, tag) {
			continue
		}
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

func (f *fakeNotes) GetByID(_ context.Context, noteID, userID uuid.UUID) (domain.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n, ok := f.byID[noteID]
	if !ok || n.UserID != userID {
		return domain.Note{}, domain.ErrNotFound
	}
	return n, nil
}

func (f *fakeNotes) Update(_ context.Context, note domain.Note) (domain.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.byID[note.NoteID]
	if !ok || existing.UserID != note.UserID {
		return domain.Note{}, domain.ErrNotFound
	}
	f.byID[note.NoteID] = note
	return note, nil
}

func (f *fakeNotes) Delete(_ context.Context, noteID, userID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	n, ok := f.byID[noteID]
	if !ok || n.UserID != userID {
		return domain.ErrNotFound
	}
	delete(f.byID, noteID)
	return nil
}

type fakeTasks struct {
	mu    sync.Mutex
	byID  map[uuid.UUID]domain.Task
	users *fakeUsers
}

func (f *fakeTasks) Create(_ context.Context, task domain.Task) (domain.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[task.TaskID] = task
	return task, nil
}

func (f *fakeTasks) ListVisible(_ context.Context, userID uuid.UUID, filter domain.TaskFilter) ([]domain.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Task
	for _, t := range f.byID {
		if !t.IsVisibleTo(userID) {
			continue
		}
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		if filter.Priority != "" && t.Priority != filter.Priority {
			continue
		}
		if filter.Keyword != "" {
			needle := strings.ToLower(filter.Keyword)
			if !strings.Contains(strings.ToLower(t.Title), needle) && !strings.Contains(strings.ToLower(t.Description), needle) {
				continue
			}
		}
		if filter.Collaborator != uuid.Nil {
			found := false
			for _, c := range t.Collaborators {
				if c.User.UserID == filter.Collaborator {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeTasks) GetByID(_ context.Context, taskID uuid.UUID) (domain.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.byID[taskID]
	if !ok {
		return domain.Task{}, domain.ErrNotFound
	}
	return t, nil
}

func (f *fakeTasks) Update(_ context.Context, task domain.Task) (domain.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[task.TaskID]; !ok {
		return domain.Task{}, domain.ErrNotFound
	}
	f.byID[task.TaskID] = task
	return task, nil
}

func (f *fakeTasks) Delete(_ context.Context, taskID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[taskID]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, taskID)
	return nil
}

func (f *fakeTasks) AddCollaborator(ctx context.Context, taskID, userID uuid.UUID, role string, addedAt time.Time) error {
	user, err := f.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.byID[taskID]
	if !ok {
		return domain.ErrNotFound
	}
	for _, c := range t.Collaborators {
		if c.User.UserID == userID {
			return domain.ErrConflict
		}
	}
	t.Collaborators = append(t.Collaborators, domain.Collaborator{User: user.Public(), Role: role, AddedAt: addedAt})
	f.byID[taskID] = t
	return nil
}

func (f *fakeTasks) RemoveCollaborator(_ context.Context, taskID, userID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.byID[taskID]
	if !ok {
		return domain.ErrNotFound
	}
	kept := t.Collaborators[:0]
	removed := false
	for _, c := range t.Collaborators {
		if c.User.UserID == userID {
			removed = true
			continue
		}
		kept = append(kept, c)
	}
	if !removed {
		return domain.ErrNotFound
	}
	t.Collaborators = kept
	f.byID[taskID] = t
	return nil
}

type fakeCompanies struct {
	mu   sync.Mutex
	byID map[uuid.UUID]domain.Company
}

func (f *fakeCompanies) Create(_ context.Context, company domain.Company) (domain.Company, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.byID {
		if c.Name == company.Name {
			return domain.Company{}, domain.ErrConflict
		}
	}
	f.byID[company.CompanyID] = company
	return company, nil
}

func (f *fakeCompanies) List(_ context.Context) ([]domain.Company, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Company, 0, len(f.byID))
	for _, c := range f.byID {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeCompanies) GetByID(_ context.Context, companyID uuid.UUID) (domain.Company, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.byID[companyID]
	if !ok {
		return domain.Company{}, domain.ErrNotFound
	}
	return c, nil
}

type fakeCategories struct {
	mu       sync.Mutex
	byID     map[uuid.UUID]domain.JobCategory
	jobPosts *fakeJobPosts
}

func (f *fakeCategories) Create(_ context.Context, category domain.JobCategory) (domain.JobCategory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[category.CategoryID] = category
	return category, nil
}

func (f *fakeCategories) List(_ context.Context) ([]domain.JobCategory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.JobCategory, 0, len(f.byID))
	for _, c := range f.byID {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeCategories) GetByID(_ context.Context, categoryID uuid.UUID) (domain.JobCategory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.byID[categoryID]
	if !ok {
		return domain.JobCategory{}, domain.ErrNotFound
	}
	return c, nil
}

func (f *fakeCategories) ListChildren(_ context.Context, parentID uuid.UUID) ([]domain.JobCategory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.JobCategory
	for _, c := range f.byID {
		if c.ParentID != nil && *c.ParentID == parentID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeCategories) Update(_ context.Context, category domain.JobCategory) (domain.JobCategory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[category.CategoryID]; !ok {
		return domain.JobCategory{}, domain.ErrNotFound
	}
	f.byID[category.CategoryID] = category
	return category, nil
}

func (f *fakeCategories) Delete(_ context.Context, categoryID uuid.UUID) error {
	f.mu.Lock()
	if _, ok := f.byID[categoryID]; !ok {
		f.mu.Unlock()
		return domain.ErrNotFound
	}
	for _, c := range f.byID {
		if c.ParentID != nil && *c.ParentID == categoryID {
			f.mu.Unlock()
			return domain.ErrConflict
		}
	}
	f.mu.Unlock()

	if f.jobPosts.referencesCategory(categoryID) {
		return domain.ErrConflict
	}

	f.mu.Lock()
	delete(f.byID, categoryID)
	f.mu.Unlock()
	return nil
}

type fakeSkills struct {
	mu   sync.Mutex
	byID map[uuid.UUID]domain.Skill
}

func (f *fakeSkills) Create(_ context.Context, skill domain.Skill) (domain.Skill, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.byID {
		if s.Name == skill.Name {
			return domain.Skill{}, domain.ErrConflict
		}
	}
	f.byID[skill.SkillID] = skill
	return skill, nil
}

func (f *fakeSkills) List(_ context.Context, category string) ([]domain.Skill, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Skill
	for _, s := range f.byID {
		if category != "" && s.Category != category {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeSkills) GetByIDs(_ context.Context, ids []uuid.UUID) ([]domain.Skill, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Skill
	for _, id := range ids {
		if s, ok := f.byID[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeJobPosts struct {
	mu        sync.Mutex
	byID      map[uuid.UUID]domain.JobPost
	companies *fakeCompanies
}

func (f *fakeJobPosts) referencesCategory(categoryID uuid.UUID) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.byID {
		if p.CategoryID != nil && *p.CategoryID == categoryID {
			return true
		}
	}
	return false
}

func (f *fakeJobPosts) CreateWithSkills(_ context.Context, post domain.JobPost, skills []domain.JobSkill) (domain.JobPost, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	post.Skills = skills
	f.byID[post.JobPostID] = post
	return post, nil
}

func (f *fakeJobPosts) List(_ context.Context, filter domain.JobFilter) (ports.JobPostPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []domain.JobPost
	for _, p := range f.byID {
		if p.Status != domain.JobStatusActive {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(p.Title), strings.ToLower(filter.Search)) {
			continue
		}
		if filter.Location != "" && !strings.Contains(strings.ToLower(p.Location), strings.ToLower(filter.Location)) {
			continue
		}
		if filter.JobType != "" && p.JobType != filter.JobType {
			continue
		}
		if filter.ExperienceLevel != "" && p.ExperienceLevel != filter.ExperienceLevel {
			continue
		}
		if filter.CategoryID != uuid.Nil && (p.CategoryID == nil || *p.CategoryID != filter.CategoryID) {
			continue
		}
		if filter.CompanyID != uuid.Nil && p.CompanyID != filter.CompanyID {
			continue
		}
		matched = append(matched, p)
	}
	sort.Slice(matched, func(i, j int) bool {
		if filter.SortDesc {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})

	total := len(matched)
	offset := (filter.Page - 1) * filter.PageSize
	if offset >= total {
		return ports.JobPostPage{Jobs: []domain.JobPost{}, TotalItems: total}, nil
	}
	end := offset + filter.PageSize
	if end > total {
		end = total
	}
	return ports.JobPostPage{Jobs: matched[offset:end], TotalItems: total}, nil
}

func (f *fakeJobPosts) GetByID(ctx context.Context, jobPostID uuid.UUID, countView bool) (domain.JobPost, error) {
	f.mu.Lock()
	p, ok := f.byID[jobPostID]
	if !ok {
		f.mu.Unlock()
		return domain.JobPost{}, domain.ErrNotFound
	}
	if countView {
		p.ViewsCount++
		f.byID[jobPostID] = p
	}
	f.mu.Unlock()

	if company, err := f.companies.GetByID(ctx, p.CompanyID); err == nil {
		p.Company = &company
	}
	return p, nil
}

func (f *fakeJobPosts) ListByCompany(_ context.Context, companyID uuid.UUID, activeOnly bool) ([]domain.JobPost, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.JobPost
	for _, p := range f.byID {
		if p.CompanyID != companyID {
			continue
		}
		if activeOnly && p.Status != domain.JobStatusActive {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type fakeLockouts struct {
	mu    sync.Mutex
	state map[string]ports.LockoutState
}

func (f *fakeLockouts) Get(_ context.Context, key string) (ports.LockoutState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state[key], nil
}

func (f *fakeLockouts) RecordFailure(_ context.Context, key string, now time.Time, threshold int, lockoutWindow time.Duration) (ports.LockoutState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	state := f.state[key]
	state.FailedCount++
	if state.FailedCount >= threshold {
		until := now.Add(lockoutWindow)
		state.LockedUntil = &until
	}
	f.state[key] = state
	return state, nil
}

func (f *fakeLockouts) Clear(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.state, key)
	return nil
}

type fakeUnreadCache struct {
	mu     sync.Mutex
	values map[uuid.UUID]int
	hits   int
	sets   int
}

func (f *fakeUnreadCache) Get(_ context.Context, userID uuid.UUID) (int, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	count, ok := f.values[userID]
	if ok {
		f.hits++
	}
	return count, ok, nil
}

func (f *fakeUnreadCache) Set(_ context.Context, userID uuid.UUID, count int, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[userID] = count
	f.sets++
	return nil
}

func (f *fakeUnreadCache) Invalidate(_ context.Context, userID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.values, userID)
	return nil
}

type publishedEvent struct {
	eventType    string
	payload      []byte
	partitionKey string
}

type fakePublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (f *fakePublisher) Publish(_ context.Context, eventType string, payload []byte, partitionKey string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, publishedEvent{eventType: eventType, payload: payload, partitionKey: partitionKey})
	return nil
}

func (f *fakePublisher) byType(eventType string) []publishedEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []publishedEvent
	for _, e := range f.events {
		if e.eventType == eventType {
			out = append(out, e)
		}
	}
	return out
}

type notification struct {
	userID  uuid.UUID
	event   string
	payload any
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []notification
}

func (f *fakeNotifier) NotifyUser(userID uuid.UUID, event string, payload any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, notification{userID: userID, event: event, payload: payload})
}

func (f *fakeNotifier) forUser(userID uuid.UUID) []notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []notification
	for _, n := range f.sent {
		if n.userID == userID {
			out = append(out, n)
		}
	}
	return out
}

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (fakeHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return domain.ErrInvalidCredentials
	}
	return nil
}

type fakeSigner struct {
	mu     sync.Mutex
	tokens map[string]ports.AuthClaims
	n      int
}

func (f *fakeSigner) Sign(claims ports.AuthClaims) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.n++
	token := "token-" + claims.UserID.String() + "-" + strconv.Itoa(f.n)
	f.tokens[token] = claims
	return token, nil
}

func (f *fakeSigner) ParseAndValidate(raw string) (ports.AuthClaims, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	claims, ok := f.tokens[raw]
	if !ok {
		return ports.AuthClaims{}, domain.ErrUnauthorized
	}
	return claims, nil
}

type fakeGoogleVerifier struct {
	mu         sync.Mutex
	identities map[string]ports.GoogleIdentity
}

func (f *fakeGoogleVerifier) Verify(_ context.Context, credential string) (ports.GoogleIdentity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	identity, ok := f.identities[credential]
	if !ok {
		return ports.GoogleIdentity{}, domain.ErrInvalidCredentials
	}
	return identity, nil
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
