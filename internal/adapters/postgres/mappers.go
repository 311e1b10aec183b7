package postgres

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/workhub/workhub/internal/domain"
)

func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likeContains builds a contains pattern from user input. The LIKE
// metacharacters are escaped so the text only ever matches literally.
func likeContains(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

func toDomainUser(m userModel) domain.User {
	return domain.User{
		UserID:       m.ID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		AuthProvider: m.AuthProvider,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toPublicUser(m userModel) domain.PublicUser {
	return domain.PublicUser{
		UserID:   m.ID,
		Username: m.Username,
		Email:    m.Email,
	}
}

func toDomainMessage(m messageModel) domain.Message {
	return domain.Message{
		MessageID:   m.ID,
		SenderID:    m.SenderID,
		ReceiverID:  m.ReceiverID,
		Content:     m.Content,
		MessageType: m.MessageType,
		IsRead:      m.IsRead,
		CreatedAt:   m.CreatedAt,
		Sender:      toPublicUser(m.Sender),
		Receiver:    toPublicUser(m.Receiver),
	}
}

func stringSlice(a []string) []string {
	if a == nil {
		return []string{}
	}
	return a
}

func toDomainNote(m noteModel) domain.Note {
	return domain.Note{
		NoteID:    m.ID,
		UserID:    m.UserID,
		Title:     m.Title,
		Content:   m.Content,
		Tags:      stringSlice(m.Tags),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toDomainTask(m taskModel) domain.Task {
	collaborators := make([]domain.Collaborator, 0, len(m.Collaborators))
	for _, c := range m.Collaborators {
		collaborators = append(collaborators, domain.Collaborator{
			User:    toPublicUser(c.User),
			Role:    c.Role,
			AddedAt: c.AddedAt,
		})
	}
	return domain.Task{
		TaskID:        m.ID,
		UserID:        m.UserID,
		Owner:         toPublicUser(m.Owner),
		Title:         m.Title,
		Description:   m.Description,
		Status:        m.Status,
		Priority:      m.Priority,
		DueDate:       m.DueDate,
		Tags:          stringSlice(m.Tags),
		Collaborators: collaborators,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toDomainCompany(m companyModel) domain.Company {
	return domain.Company{
		CompanyID:    m.ID,
		Name:         m.Name,
		Description:  m.Description,
		Industry:     m.Industry,
		Size:         m.Size,
		Website:      m.Website,
		LogoURL:      m.LogoURL,
		Headquarters: m.Headquarters,
		FoundedYear:  m.FoundedYear,
		Status:       m.Status,
		CreatedBy:    m.CreatedBy,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toDomainCategory(m jobCategoryModel) domain.JobCategory {
	return domain.JobCategory{
		CategoryID:  m.ID,
		Name:        m.Name,
		Description: m.Description,
		ParentID:    m.ParentID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toDomainSkill(m skillModel) domain.Skill {
	return domain.Skill{
		SkillID:   m.ID,
		Name:      m.Name,
		Category:  m.Category,
		CreatedAt: m.CreatedAt,
	}
}

func toDomainJobPost(m jobPostModel) domain.JobPost {
	skills := make([]domain.JobSkill, 0, len(m.Skills))
	for _, js := range m.Skills {
		skills = append(skills, domain.JobSkill{
			Skill:      toDomainSkill(js.Skill),
			IsRequired: js.IsRequired,
		})
	}
	post := domain.JobPost{
		JobPostID:           m.ID,
		CompanyID:           m.CompanyID,
		CreatedBy:           m.CreatedBy,
		Title:               m.Title,
		Description:         m.Description,
		Requirements:        m.Requirements,
		Responsibilities:    m.Responsibilities,
		Benefits:            m.Benefits,
		CategoryID:          m.CategoryID,
		JobType:             m.JobType,
		EmploymentType:      m.EmploymentType,
		ExperienceLevel:     m.ExperienceLevel,
		Location:            m.Location,
		SalaryMin:           m.SalaryMin,
		SalaryMax:           m.SalaryMax,
		Currency:            m.Currency,
		IsSalaryNegotiable:  m.IsSalaryNegotiable,
		ApplicationDeadline: m.ApplicationDeadline,
		Status:              m.Status,
		ViewsCount:          m.ViewsCount,
		ApplicationsCount:   m.ApplicationsCount,
		SavedCount:          m.SavedCount,
		Skills:              skills,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
	if m.Company.ID != uuid.Nil {
		company := toDomainCompany(m.Company)
		post.Company = &company
	}
	if m.Category != nil {
		category := toDomainCategory(*m.Category)
		post.Category = &category
	}
	return post
}
