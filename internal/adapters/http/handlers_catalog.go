package http

import (
	"net/http"

	"github.com/workhub/workhub/internal/application"
)

func (h *Handler) listCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := h.service.ListCompanies(r.Context())
	if err != nil {
		writeMappedError(r.Context(), w, "list_companies", err)
		return
	}
	writeSuccess(w, http.StatusOK, companies)
}

func (h *Handler) createCompany(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFromContext(r.Context())

	var req application.CreateCompanyRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "create_company", err)
		return
	}

	company, err := h.service.CreateCompany(r.Context(), claims.UserID, req)
	if err != nil {
		writeMappedError(r.Context(), w, "create_company", err)
		return
	}
	writeSuccess(w, http.StatusCreated, company)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("tree") == "true" {
		tree, err := h.service.CategoryTree(r.Context())
		if err != nil {
			writeMappedError(r.Context(), w, "category_tree", err)
			return
		}
		writeSuccess(w, http.StatusOK, tree)
		return
	}

	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		writeMappedError(r.Context(), w, "list_categories", err)
		return
	}
	writeSuccess(w, http.StatusOK, categories)
}

func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := uuidParam(r, "categoryId")
	if err != nil {
		writeBadIDError(r.Context(), w, "get_category", "category id")
		return
	}

	category, err := h.service.GetCategory(r.Context(), categoryID)
	if err != nil {
		writeMappedError(r.Context(), w, "get_category", err)
		return
	}
	writeSuccess(w, http.StatusOK, category)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var req application.CreateCategoryRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "create_category", err)
		return
	}

	category, err := h.service.CreateCategory(r.Context(), req)
	if err != nil {
		writeMappedError(r.Context(), w, "create_category", err)
		return
	}
	writeSuccess(w, http.StatusCreated, category)
}

func (h *Handler) createCategoriesBulk(w http.ResponseWriter, r *http.Request) {
	var reqs []application.CreateCategoryRequest
	if err := decodeBody(r, &reqs); err != nil {
		writeValidationError(r.Context(), w, "create_categories_bulk", err)
		return
	}

	categories, errs := h.service.CreateCategoriesBulk(r.Context(), reqs)
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
		"created": categories,
		"failed":  failures,
	})
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := uuidParam(r, "categoryId")
	if err != nil {
		writeBadIDError(r.Context(), w, "update_category", "category id")
		return
	}

	var req application.UpdateCategoryRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "update_category", err)
		return
	}

	category, err := h.service.UpdateCategory(r.Context(), categoryID, req)
	if err != nil {
		writeMappedError(r.Context(), w, "update_category", err)
		return
	}
	writeSuccess(w, http.StatusOK, category)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := uuidParam(r, "categoryId")
	if err != nil {
		writeBadIDError(r.Context(), w, "delete_category", "category id")
		return
	}

	if err := h.service.DeleteCategory(r.Context(), categoryID); err != nil {
		writeMappedError(r.Context(), w, "delete_category", err)
		return
	}
	writeMessage(w, http.StatusOK, "category deleted")
}

func (h *Handler) listSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := h.service.ListSkills(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		writeMappedError(r.Context(), w, "list_skills", err)
		return
	}
	writeSuccess(w, http.StatusOK, skills)
}

func (h *Handler) createSkill(w http.ResponseWriter, r *http.Request) {
	var req application.CreateSkillRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "create_skill", err)
		return
	}

	skill, err := h.service.CreateSkill(r.Context(), req)
	if err != nil {
		writeMappedError(r.Context(), w, "create_skill", err)
		return
	}
	writeSuccess(w, http.StatusCreated, skill)
}

func (h *Handler) createSkillsBulk(w http.ResponseWriter, r *http.Request) {
	var reqs []application.CreateSkillRequest
	if err := decodeBody(r, &reqs); err != nil {
		writeValidationError(r.Context(), w, "create_skills_bulk", err)
		return
	}

	skills, errs := h.service.CreateSkillsBulk(r.Context(), reqs)
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
		"created": skills,
		"failed":  failures,
	})
}
