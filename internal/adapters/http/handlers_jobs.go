package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/workhub/workhub/internal/application"
	"github.com/workhub/workhub/internal/domain"
)

func (h *Handler) listJobs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := domain.JobFilter{
		Search:          q.Get("search"),
		Location:        q.Get("location"),
		JobType:         q.Get("jobType"),
		ExperienceLevel: q.Get("experienceLevel"),
		SalaryMin:       parseIntDefault(q.Get("salaryMin"), 0),
		SalaryMax:       parseIntDefault(q.Get("salaryMax"), 0),
		SortBy:          q.Get("sortBy"),
		SortDesc:        q.Get("sortOrder") != "asc",
		Page:            parseIntDefault(q.Get("page"), 0),
		PageSize:        parseIntDefault(q.Get("limit"), 0),
	}
	if raw := q.Get("categoryId"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			filter.CategoryID = id
		}
	}
	if raw := q.Get("companyId"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			filter.CompanyID = id
		}
	}

	res, err := h.service.ListJobs(r.Context(), filter)
	if err != nil {
		writeMappedError(r.Context(), w, "list_jobs", err)
		return
	}
	writeSuccess(w, http.StatusOK, res)
}

func (h *Handler) getJob(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuidParam(r, "jobId")
	if err != nil {
		writeBadIDError(r.Context(), w, "get_job", "job id")
		return
	}

	job, err := h.service.GetJob(r.Context(), jobID)
	if err != nil {
		writeMappedError(r.Context(), w, "get_job", err)
		return
	}
	writeSuccess(w, http.StatusOK, job)
}

func (h *Handler) listJobsByCompany(w http.ResponseWriter, r *http.Request) {
	companyID, err := uuidParam(r, "companyId")
	if err != nil {
		writeBadIDError(r.Context(), w, "list_jobs_by_company", "company id")
		return
	}

	jobs, err := h.service.ListJobsByCompany(r.Context(), companyID)
	if err != nil {
		writeMappedError(r.Context(), w, "list_jobs_by_company", err)
		return
	}
	writeSuccess(w, http.StatusOK, jobs)
}

func (h *Handler) createJob(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())

	var req application.CreateJobPostRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "create_job", err)
		return
	}

	job, err := h.service.CreateJob(r.Context(), claims.UserID, req)
	if err != nil {
		writeMappedError(r.Context(), w, "create_job", err)
		return
	}
	writeSuccess(w, http.StatusCreated, job)
}

func (h *Handler) createJobsBulk(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())

	var reqs []application.CreateJobPostRequest
	if err := decodeBody(r, &reqs); err != nil {
		writeValidationError(r.Context(), w, "create_jobs_bulk", err)
		return
	}

	jobs, errs := h.service.CreateJobsBulk(r.Context(), claims.UserID, reqs)
	failures := make([]map[string]any, 0)
	for i, creationErr := range errs {
		if creationErr != nil {
			failures = append(failures, map[string]any{
				"index": i,
				"error": creationErr.Error(),
			})
		}
	}
	writeSuccess(w, http.StatusCreated, map[string]any{
		"created": jobs,
		"failed":  failures,
	})
}
