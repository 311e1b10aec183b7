package postgres

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type userModel struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Username     string    `gorm:"column:username;not null"`
	Email        string    `gorm:"column:email;uniqueIndex;not null"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	AuthProvider string    `gorm:"column:auth_provider;not null;default:local"`
	CreatedAt    time.Time `gorm:"column:created_at;not null"`
	UpdatedAt    time.Time `gorm:"column:updated_at;not null"`
}

func (userModel) TableName() string { return "users" }

type messageModel struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	SenderID    uuid.UUID `gorm:"column:sender_id;type:uuid;not null"`
	ReceiverID  uuid.UUID `gorm:"column:receiver_id;type:uuid;not null"`
	Content     string    `gorm:"column:content;not null"`
	MessageType string    `gorm:"column:message_type;not null;default:text"`
	IsRead      bool      `gorm:"column:is_read;not null;default:false"`
	CreatedAt   time.Time `gorm:"column:created_at;not null"`

	Sender   userModel `gorm:"foreignKey:SenderID"`
	Receiver userModel `gorm:"foreignKey:ReceiverID"`
}

func (messageModel) TableName() string { return "messages" }

type noteModel struct {
	ID        uuid.UUID      `gorm:"column:id;type:uuid;primaryKey"`
	UserID    uuid.UUID      `gorm:"column:user_id;type:uuid;not null;index"`
	Title     string         `gorm:"column:title;not null"`
	Content   string         `gorm:"column:content;not null"`
	Tags      pq.StringArray `gorm:"column:tags;type:text[]"`
	CreatedAt time.Time      `gorm:"column:created_at;not null"`
	UpdatedAt time.Time      `gorm:"column:updated_at;not null"`
}

func (noteModel) TableName() string { return "notes" }

type taskModel struct {
	ID          uuid.UUID      `gorm:"column:id;type:uuid;primaryKey"`
	UserID      uuid.UUID      `gorm:"column:user_id;type:uuid;not null;index"`
	Title       string         `gorm:"column:title;not null"`
	Description string         `gorm:"column:description"`
	Status      string         `gorm:"column:status;not null;default:pending"`
	Priority    string         `gorm:"column:priority;not null;default:medium"`
	DueDate     *time.Time     `gorm:"column:due_date"`
	Tags        pq.StringArray `gorm:"column:tags;type:text[]"`
	CreatedAt   time.Time      `gorm:"column:created_at;not null"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;not null"`

	Owner         userModel               `gorm:"foreignKey:UserID"`
	Collaborators []taskCollaboratorModel `gorm:"foreignKey:TaskID"`
}

func (taskModel) TableName() string { return "tasks" }

type taskCollaboratorModel struct {
	TaskID  uuid.UUID `gorm:"column:task_id;type:uuid;primaryKey"`
	UserID  uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey"`
	Role    string    `gorm:"column:role;not null;default:viewer"`
	AddedAt time.Time `gorm:"column:added_at;not null"`

	User userModel `gorm:"foreignKey:UserID"`
}

func (taskCollaboratorModel) TableName() string { return "task_collaborators" }

type companyModel struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Name         string    `gorm:"column:name;uniqueIndex;not null"`
	Description  string    `gorm:"column:description"`
	Industry     string    `gorm:"column:industry"`
	Size         string    `gorm:"column:size"`
	Website      string    `gorm:"column:website"`
	LogoURL      string    `gorm:"column:logo_url"`
	Headquarters string    `gorm:"column:headquarters"`
	FoundedYear  int       `gorm:"column:founded_year"`
	Status       string    `gorm:"column:status;not null;default:active"`
	CreatedBy    uuid.UUID `gorm:"column:created_by;type:uuid;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;not null"`
	UpdatedAt    time.Time `gorm:"column:updated_at;not null"`
}

func (companyModel) TableName() string { return "companies" }

type jobCategoryModel struct {
	ID          uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	Name        string     `gorm:"column:name;uniqueIndex;not null"`
	Description string     `gorm:"column:description"`
	ParentID    *uuid.UUID `gorm:"column:parent_id;type:uuid;index"`
	CreatedAt   time.Time  `gorm:"column:created_at;not null"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;not null"`
}

func (jobCategoryModel) TableName() string { return "job_categories" }

type skillModel struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Name      string    `gorm:"column:name;uniqueIndex;not null"`
	Category  string    `gorm:"column:category;not null;default:other"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
}

func (skillModel) TableName() string { return "skills" }

type jobPostModel struct {
	ID                  uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	CompanyID           uuid.UUID  `gorm:"column:company_id;type:uuid;not null;index"`
	CreatedBy           uuid.UUID  `gorm:"column:created_by;type:uuid;not null"`
	Title               string     `gorm:"column:title;not null"`
	Description         string     `gorm:"column:description;not null"`
	Requirements        string     `gorm:"column:requirements"`
	Responsibilities    string     `gorm:"column:responsibilities"`
	Benefits            string     `gorm:"column:benefits"`
	CategoryID          *uuid.UUID `gorm:"column:category_id;type:uuid;index"`
	JobType             string     `gorm:"column:job_type;not null"`
	EmploymentType      string     `gorm:"column:employment_type;not null;default:permanent"`
	ExperienceLevel     string     `gorm:"column:experience_level;not null"`
	Location            string     `gorm:"column:location;not null"`
	SalaryMin           *int       `gorm:"column:salary_min"`
	SalaryMax           *int       `gorm:"column:salary_max"`
	Currency            string     `gorm:"column:currency;not null;default:USD"`
	IsSalaryNegotiable  bool       `gorm:"column:is_salary_negotiable;not null;default:false"`
	ApplicationDeadline *time.Time `gorm:"column:application_deadline"`
	Status              string     `gorm:"column:status;not null;default:draft"`
	ViewsCount          int        `gorm:"column:views_count;not null;default:0"`
	ApplicationsCount   int        `gorm:"column:applications_count;not null;default:0"`
	SavedCount          int        `gorm:"column:saved_count;not null;default:0"`
	CreatedAt           time.Time  `gorm:"column:created_at;not null"`
	UpdatedAt           time.Time  `gorm:"column:updated_at;not null"`

	Company  companyModel      `gorm:"foreignKey:CompanyID"`
	Category *jobCategoryModel `gorm:"foreignKey:CategoryID"`
	Skills   []jobSkillModel   `gorm:"foreignKey:JobPostID"`
}

func (jobPostModel) TableName() string { return "job_posts" }

type jobSkillModel struct {
	JobPostID  uuid.UUID `gorm:"column:job_post_id;type:uuid;primaryKey"`
	SkillID    uuid.UUID `gorm:"column:skill_id;type:uuid;primaryKey"`
	IsRequired bool      `gorm:"column:is_required;not null;default:true"`

	Skill skillModel `gorm:"foreignKey:SkillID"`
}

func (jobSkillModel) TableName() string { return "job_skills" }
