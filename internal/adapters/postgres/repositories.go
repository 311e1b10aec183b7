package postgres

import (
	"gorm.io/gorm"

	"github.com/workhub/workhub/internal/ports"
)

type Repositories struct {
	Users      ports.UserRepository
	Messages   ports.MessageRepository
	Notes      ports.NoteRepository
	Tasks      ports.TaskRepository
	Companies  ports.CompanyRepository
	Categories ports.CategoryRepository
	Skills     ports.SkillRepository
	JobPosts   ports.JobPostRepository
}

func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Users:      &userRepository{db: db},
		Messages:   &messageRepository{db: db},
		Notes:      &noteRepository{db: db},
		Tasks:      &taskRepository{db: db},
		Companies:  &companyRepository{db: db},
		Categories: &categoryRepository{db: db},
		Skills:     &skillRepository{db: db},
		JobPosts:   &jobPostRepository{db: db},
	}
}
