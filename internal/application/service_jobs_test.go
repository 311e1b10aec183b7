package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/workhub/workhub/internal/application"
	"github.com/workhub/workhub/internal/domain"
)

func (f *fixture) mustCompany(t *testing.T, userID uuid.UUID, name string) domain.Company {
	t.Helper()
	company, err := f.service.CreateCompany(context.Background(), userID, application.CreateCompanyRequest{
		Name: name,
		Size: "11-50",
	})
	if err != nil {
		t.Fatalf("create company %s failed: %v", name, err)
	}
	return company
}

func (f *fixture) mustJob(t *testing.T, userID uuid.UUID, req application.CreateJobPostRequest) domain.JobPost {
	t.Helper()
	if req.JobType == "" {
		req.JobType = domain.JobTypeFullTime
	}
	if req.ExperienceLevel == "" {
		req.ExperienceLevel = "mid"
	}
	if req.Description == "" {
		req.Description = "description"
	}
	if req.Location == "" {
		req.Location = "Remote"
	}
	post, err := f.service.CreateJob(context.Background(), userID, req)
	if err != nil {
		t.Fatalf("create job %s failed: %v", req.Title, err)
	}
	return post
}

func TestCreateJobDefaultsAndValidation(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	owner := f.mustRegister(t, "owner", "owner@example.com")
	company := f.mustCompany(t, owner.UserID, "Acme")

	post := f.mustJob(t, owner.UserID, application.CreateJobPostRequest{
		CompanyID: company.CompanyID,
		Title:     "Backend Engineer",
	})
	if post.Status != domain.JobStatusDraft {
		t.Fatalf("expected draft default, got %q", post.Status)
	}
	if post.EmploymentType != "permanent" || post.Currency != "USD" {
		t.Fatalf("expected permanent/USD defaults, got %s/%s", post.EmploymentType, post.Currency)
	}

	if _, err := f.service.CreateJob(ctx, owner.UserID, application.CreateJobPostRequest{
		CompanyID:       uuid.New(),
		Title:           "Ghost role",
		Description:     "d",
		Location:        "Remote",
		JobType:         domain.JobTypeFullTime,
		ExperienceLevel: "mid",
	}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("unknown company must be not found, got %v", err)
	}

	lo, hi := 90000, 60000
	if _, err := f.service.CreateJob(ctx, owner.UserID, application.CreateJobPostRequest{
		CompanyID:       company.CompanyID,
		Title:           "Inverted salary",
		Description:     "d",
		Location:        "Remote",
		JobType:         domain.JobTypeFullTime,
		ExperienceLevel: "mid",
		SalaryMin:       &lo,
		SalaryMax:       &hi,
	}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("inverted salary range must be rejected, got %v", err)
	}

	if _, err := f.service.CreateJob(ctx, owner.UserID, application.CreateJobPostRequest{
		CompanyID:       company.CompanyID,
		Title:           "Weird type",
		Description:     "d",
		Location:        "Remote",
		JobType:         "gig",
		ExperienceLevel: "mid",
	}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("unknown job type must be rejected, got %v", err)
	}
}

func TestCreateJobResolvesSkills(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	owner := f.mustRegister(t, "owner", "owner@example.com")
	company := f.mustCompany(t, owner.UserID, "Acme")

	goSkill, err := f.service.CreateSkill(ctx, application.CreateSkillRequest{Name: "Go", Category: "technical"})
	if err != nil {
		t.Fatalf("create skill failed: %v", err)
	}

	post := f.mustJob(t, owner.UserID, application.CreateJobPostRequest{
		CompanyID: company.CompanyID,
		Title:     "Go Engineer",
		Skills:    []application.JobSkillInput{{SkillID: goSkill.SkillID, IsRequired: true}},
	})
	if len(post.Skills) != 1 || post.Skills[0].Name != "Go" || !post.Skills[0].IsRequired {
		t.Fatalf("skills not attached: %+v", post.Skills)
	}

	if _, err := f.service.CreateJob(ctx, owner.UserID, application.CreateJobPostRequest{
		CompanyID:       company.CompanyID,
		Title:           "Mystery stack",
		Description:     "d",
		Location:        "Remote",
		JobType:         domain.JobTypeFullTime,
		ExperienceLevel: "mid",
		Skills:          []application.JobSkillInput{{SkillID: uuid.New()}},
	}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("unknown skill must fail the post, got %v", err)
	}
}

func TestListJobsPagination(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	owner := f.mustRegister(t, "owner", "owner@example.com")
	company := f.mustCompany(t, owner.UserID, "Acme")

	for i := 0; i < 12; i++ {
		f.mustJob(t, owner.UserID, application.CreateJobPostRequest{
			CompanyID: company.CompanyID,
			Title:     "Active role " + string(rune('A'+i)),
			Status:    domain.JobStatusActive,
		})
	}
	// Drafts never appear in the public listing.
	f.mustJob(t, owner.UserID, application.CreateJobPostRequest{
		CompanyID: company.CompanyID,
		Title:     "Hidden draft",
	})

	page1, err := f.service.ListJobs(ctx, domain.JobFilter{})
	if err != nil {
		t.Fatalf("list jobs failed: %v", err)
	}
	if page1.Pagination.CurrentPage != 1 || page1.Pagination.ItemsPerPage != 10 {
		t.Fatalf("expected page 1 of 10, got %+v", page1.Pagination)
	}
	if page1.Pagination.TotalItems != 12 || page1.Pagination.TotalPages != 2 {
		t.Fatalf("expected 12 items over 2 pages, got %+v", page1.Pagination)
	}
	if len(page1.Jobs) != 10 {
		t.Fatalf("expected 10 jobs on page 1, got %d", len(page1.Jobs))
	}
	// Default ordering is newest first.
	if page1.Jobs[0].CreatedAt.Before(page1.Jobs[1].CreatedAt) {
		t.Fatalf("expected newest first ordering")
	}

	page2, err := f.service.ListJobs(ctx, domain.JobFilter{Page: 2})
	if err != nil {
		t.Fatalf("list jobs failed: %v", err)
	}
	if len(page2.Jobs) != 2 {
		t.Fatalf("expected 2 jobs on page 2, got %d", len(page2.Jobs))
	}

	clamped, err := f.service.ListJobs(ctx, domain.JobFilter{PageSize: 5000})
	if err != nil {
		t.Fatalf("list jobs failed: %v", err)
	}
	if clamped.Pagination.ItemsPerPage != 100 {
		t.Fatalf("expected page size clamped to 100, got %d", clamped.Pagination.ItemsPerPage)
	}
}

func TestListJobsFilters(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	owner := f.mustRegister(t, "owner", "owner@example.com")
	acme := f.mustCompany(t, owner.UserID, "Acme")
	globex := f.mustCompany(t, owner.UserID, "Globex")

	f.mustJob(t, owner.UserID, application.CreateJobPostRequest{
		CompanyID: acme.CompanyID,
		Title:     "Senior Go Engineer",
		Location:  "Berlin",
		Status:    domain.JobStatusActive,
	})
	f.mustJob(t, owner.UserID, application.CreateJobPostRequest{
		CompanyID: globex.CompanyID,
		Title:     "Data Analyst",
		Location:  "Hanoi",
		JobType:   domain.JobTypeContract,
		Status:    domain.JobStatusActive,
	})

	bySearch, err := f.service.ListJobs(ctx, domain.JobFilter{Search: "go engineer"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(bySearch.Jobs) != 1 || bySearch.Jobs[0].Title != "Senior Go Engineer" {
		t.Fatalf("search filter returned wrong set: %+v", bySearch.Jobs)
	}

	byLocation, err := f.service.ListJobs(ctx, domain.JobFilter{Location: "hanoi"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(byLocation.Jobs) != 1 || byLocation.Jobs[0].Location != "Hanoi" {
		t.Fatalf("location filter returned wrong set: %+v", byLocation.Jobs)
	}

	byCompany, err := f.service.ListJobs(ctx, domain.JobFilter{CompanyID: globex.CompanyID})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(byCompany.Jobs) != 1 || byCompany.Jobs[0].CompanyID != globex.CompanyID {
		t.Fatalf("company filter returned wrong set: %+v", byCompany.Jobs)
	}
}

func TestGetJobCountsViews(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	owner := f.mustRegister(t, "owner", "owner@example.com")
	company := f.mustCompany(t, owner.UserID, "Acme")
	post := f.mustJob(t, owner.UserID, application.CreateJobPostRequest{
		CompanyID: company.CompanyID,
		Title:     "Platform Engineer",
		Status:    domain.JobStatusActive,
	})

	first, err := f.service.GetJob(ctx, post.JobPostID)
	if err != nil {
		t.Fatalf("get job failed: %v", err)
	}
	if first.ViewsCount != 1 {
		t.Fatalf("expected first view counted, got %d", first.ViewsCount)
	}
	if first.Company == nil || first.Company.Name != "Acme" {
		t.Fatalf("expected company resolved on detail read")
	}

	second, err := f.service.GetJob(ctx, post.JobPostID)
	if err != nil {
		t.Fatalf("get job failed: %v", err)
	}
	if second.ViewsCount != 2 {
		t.Fatalf("expected second view counted, got %d", second.ViewsCount)
	}
}

func TestListJobsByCompany(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	owner := f.mustRegister(t, "owner", "owner@example.com")
	company := f.mustCompany(t, owner.UserID, "Acme")

	f.mustJob(t, owner.UserID, application.CreateJobPostRequest{
		CompanyID: company.CompanyID, Title: "Active", Status: domain.JobStatusActive,
	})
	f.mustJob(t, owner.UserID, application.CreateJobPostRequest{
		CompanyID: company.CompanyID, Title: "Draft",
	})

	posts, err := f.service.ListJobsByCompany(ctx, company.CompanyID)
	if err != nil {
		t.Fatalf("list by company failed: %v", err)
	}
	if len(posts) != 1 || posts[0].Title != "Active" {
		t.Fatalf("expected only the active post, got %+v", posts)
	}

	if _, err := f.service.ListJobsByCompany(ctx, uuid.New()); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("unknown company must be not found, got %v", err)
	}
}

func TestCreateJobsBulkReportsPerIndexFailures(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	owner := f.mustRegister(t, "owner", "owner@example.com")
	company := f.mustCompany(t, owner.UserID, "Acme")

	created, failures := f.service.CreateJobsBulk(ctx, owner.UserID, []application.CreateJobPostRequest{
		{
			CompanyID:       company.CompanyID,
			Title:           "Good role",
			Description:     "d",
			Location:        "Remote",
			JobType:         domain.JobTypeFullTime,
			ExperienceLevel: "mid",
		},
		{
			CompanyID: company.CompanyID,
			// Missing title fails validation without aborting the batch.
		},
		{
			CompanyID:       company.CompanyID,
			Title:           "Another good role",
			Description:     "d",
			Location:        "Remote",
			JobType:         domain.JobTypePartTime,
			ExperienceLevel: "junior",
		},
	})
	if len(created) != 2 {
		t.Fatalf("expected 2 created, got %d", len(created))
	}
	if failures[0] != nil || failures[2] != nil {
		t.Fatalf("unexpected failures: %v", failures)
	}
	if !errors.Is(failures[1], domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input at index 1, got %v", failures[1])
	}
}

func TestCompanyAndSkillValidation(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	owner := f.mustRegister(t, "owner", "owner@example.com")

	if _, err := f.service.CreateCompany(ctx, owner.UserID, application.CreateCompanyRequest{
		Name: "Acme", Size: "huge",
	}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("unknown company size must be rejected, got %v", err)
	}
	company := f.mustCompany(t, owner.UserID, "Acme")
	if company.Status != "active" {
		t.Fatalf("expected active status default, got %q", company.Status)
	}

	skill, err := f.service.CreateSkill(ctx, application.CreateSkillRequest{Name: "Negotiation"})
	if err != nil {
		t.Fatalf("create skill failed: %v", err)
	}
	if skill.Category != "other" {
		t.Fatalf("expected category default, got %q", skill.Category)
	}
	if _, err := f.service.CreateSkill(ctx, application.CreateSkillRequest{
		Name: "Juggling", Category: "circus",
	}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("unknown skill category must be rejected, got %v", err)
	}

	skills, err := f.service.ListSkills(ctx, "other")
	if err != nil {
		t.Fatalf("list skills failed: %v", err)
	}
	if len(skills) != 1 || skills[0].Name != "Negotiation" {
		t.Fatalf("category listing returned wrong set: %+v", skills)
	}
}

func TestCategoryHierarchy(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()

	root, err := f.service.CreateCategory(ctx, application.CreateCategoryRequest{Name: "Engineering"})
	if err != nil {
		t.Fatalf("create root failed: %v", err)
	}
	child, err := f.service.CreateCategory(ctx, application.CreateCategoryRequest{
		Name:     "Backend",
		ParentID: &root.CategoryID,
	})
	if err != nil {
		t.Fatalf("create child failed: %v", err)
	}

	missing := uuid.New()
	if _, err := f.service.CreateCategory(ctx, application.CreateCategoryRequest{
		Name:     "Orphan",
		ParentID: &missing,
	}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("missing parent must be not found, got %v", err)
	}

	loaded, err := f.service.GetCategory(ctx, root.CategoryID)
	if err != nil {
		t.Fatalf("get category failed: %v", err)
	}
	if len(loaded.Subcategories) != 1 || loaded.Subcategories[0].CategoryID != child.CategoryID {
		t.Fatalf("expected child attached, got %+v", loaded.Subcategories)
	}

	tree, err := f.service.CategoryTree(ctx)
	if err != nil {
		t.Fatalf("category tree failed: %v", err)
	}
	if len(tree) != 1 || tree[0].CategoryID != root.CategoryID {
		t.Fatalf("expected one root, got %+v", tree)
	}
	if len(tree[0].Subcategories) != 1 {
		t.Fatalf("expected nested child in tree")
	}

	if _, err := f.service.UpdateCategory(ctx, root.CategoryID, application.UpdateCategoryRequest{
		ParentID: &root.CategoryID,
	}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("self-parenting must be rejected, got %v", err)
	}

	if err := f.service.DeleteCategory(ctx, root.CategoryID); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("deleting a parent with children must conflict, got %v", err)
	}
	if err := f.service.DeleteCategory(ctx, child.CategoryID); err != nil {
		t.Fatalf("deleting the leaf failed: %v", err)
	}
	if err := f.service.DeleteCategory(ctx, root.CategoryID); err != nil {
		t.Fatalf("deleting the now-childless root failed: %v", err)
	}
}

func TestDeleteCategoryBlockedByJobPosts(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	owner := f.mustRegister(t, "owner", "owner@example.com")
	company := f.mustCompany(t, owner.UserID, "Acme")

	category, err := f.service.CreateCategory(ctx, application.CreateCategoryRequest{Name: "Design"})
	if err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	f.mustJob(t, owner.UserID, application.CreateJobPostRequest{
		CompanyID:  company.CompanyID,
		Title:      "Product Designer",
		CategoryID: &category.CategoryID,
	})

	if err := f.service.DeleteCategory(ctx, category.CategoryID); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("category referenced by a post must conflict, got %v", err)
	}
}
