package domain

import (
	"time"

	"github.com/lib/pq"
)

// Record - общий контракт для всех сущностей, которые умеет хранить storage.
type Record interface {
	RecordID() string
	Created() time.Time
	Assign(id string, at time.Time)
}

// Base - системная часть записи: идентификатор и время вставки.
// Время вставки задаёт порядок коллекции по умолчанию.
type Base struct {
	ID           string    `json:"id" bson:"_id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreationTime time.Time `json:"creationTime" bson:"creationTime" gorm:"not null;index"`
}

func (b Base) RecordID() string { return b.ID }

func (b Base) Created() time.Time { return b.CreationTime }

// Assign выставляет идентичность записи. Вызывается только хранилищем.
func (b *Base) Assign(id string, at time.Time) {
	b.ID = id
	b.CreationTime = at
}

// Comment - запись гостевой книги.
type Comment struct {
	Base       `bson:",inline"`
	Name       string     `json:"name" bson:"name" gorm:"type:varchar(50);not null"`
	Message    string     `json:"message" bson:"message" gorm:"type:varchar(500);not null"`
	Email      *string    `json:"email,omitempty" bson:"email,omitempty" gorm:"type:varchar(255)"`
	Website    *string    `json:"website,omitempty" bson:"website,omitempty" gorm:"type:text"`
	IsApproved bool       `json:"isApproved" bson:"isApproved" gorm:"not null;index"`
	CreatedAt  time.Time  `json:"createdAt" bson:"createdAt" gorm:"not null;index"`
	// Ставится только при правке, gorm не должен заполнять его сам.
	UpdatedAt  *time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty" gorm:"autoUpdateTime:false"`
}

// Certification - сертификат. Color и GlowColor - подсказки для UI.
type Certification struct {
	Base         `bson:",inline"`
	Title        string         `json:"title" bson:"title" gorm:"not null" validate:"required"`
	Issuer       string         `json:"issuer" bson:"issuer" gorm:"not null" validate:"required"`
	Date         string         `json:"date" bson:"date"`
	CredentialID string         `json:"credentialId" bson:"credentialId"`
	URL          *string        `json:"url,omitempty" bson:"url,omitempty"`
	IconType     string         `json:"iconType" bson:"iconType"`
	Color        string         `json:"color" bson:"color"`
	GlowColor    string         `json:"glowColor" bson:"glowColor"`
	Skills       pq.StringArray `json:"skills" bson:"skills" gorm:"type:text[]"`
}

// Типы опыта работы.
const (
	ExperienceEmployment = "employment"
	ExperienceInternship = "internship"
	ExperienceOJT        = "ojt"
	ExperienceStudentOrg = "student-org"
	ExperienceFreelance  = "freelance"
	ExperienceVolunteer  = "volunteer"
)

// Experience - место работы, стажировка, организация и т.п.
type Experience struct {
	Base             `bson:",inline"`
	Title            string         `json:"title" bson:"title" gorm:"not null" validate:"required"`
	Organization     string         `json:"organization" bson:"organization" gorm:"not null" validate:"required"`
	Type             string         `json:"type" bson:"type" gorm:"type:varchar(32);not null" validate:"oneof=employment internship ojt student-org freelance volunteer"`
	Location         string         `json:"location" bson:"location"`
	StartDate        string         `json:"startDate" bson:"startDate" gorm:"type:varchar(7);not null;index" validate:"yearmonth"`
	EndDate          *string        `json:"endDate,omitempty" bson:"endDate,omitempty" gorm:"type:varchar(7)" validate:"omitnil,yearmonth"`
	IsCurrent        bool           `json:"isCurrent" bson:"isCurrent"`
	Description      string         `json:"description" bson:"description" gorm:"type:text"`
	Responsibilities pq.StringArray `json:"responsibilities" bson:"responsibilities" gorm:"type:text[]"`
	Achievements     pq.StringArray `json:"achievements" bson:"achievements" gorm:"type:text[]"`
	Logo             *string        `json:"logo,omitempty" bson:"logo,omitempty"`
	Color            *string        `json:"color,omitempty" bson:"color,omitempty"`
	Technologies     pq.StringArray `json:"technologies" bson:"technologies" gorm:"type:text[]"`
}

// EndLabel возвращает конец периода для отображения.
// Для текущей позиции это всегда "Present", что бы ни лежало в EndDate.
func (e *Experience) EndLabel() string {
	if e.IsCurrent {
		return "Present"
	}
	if e.EndDate == nil {
		return ""
	}
	return *e.EndDate
}

// Normalize сводит пустые необязательные поля к nil, как это делает патч.
func (e *Experience) Normalize() {
	for _, f := range []**string{&e.EndDate, &e.Logo, &e.Color} {
		if *f != nil {
			*f = optional(**f)
		}
	}
}

// HackathonLinks - ссылки хакатона, все необязательные.
type HackathonLinks struct {
	Github *string `json:"github,omitempty" bson:"github,omitempty"`
	Demo   *string `json:"demo,omitempty" bson:"demo,omitempty"`
	Social *string `json:"social,omitempty" bson:"social,omitempty"`
}

// Hackathon - участие в хакатоне.
type Hackathon struct {
	Base        `bson:",inline"`
	Title       string         `json:"title" bson:"title" gorm:"not null" validate:"required"`
	Organizer   string         `json:"organizer" bson:"organizer"`
	Date        string         `json:"date" bson:"date" gorm:"type:varchar(10);not null;index" validate:"datetime=2006-01-02"`
	Description string         `json:"description" bson:"description" gorm:"type:text"`
	Thumbnail   string         `json:"thumbnail" bson:"thumbnail"`
	Gallery     pq.StringArray `json:"gallery" bson:"gallery" gorm:"type:text[]"`
	Tags        pq.StringArray `json:"tags" bson:"tags" gorm:"type:text[]"`
	Links       HackathonLinks `json:"links" bson:"links" gorm:"embedded;embeddedPrefix:links_"`
}

// ProjectLinks - ссылки проекта, все необязательные.
type ProjectLinks struct {
	Github *string `json:"github,omitempty" bson:"github,omitempty"`
	Demo   *string `json:"demo,omitempty" bson:"demo,omitempty"`
	Live   *string `json:"live,omitempty" bson:"live,omitempty"`
}

// Project - проект портфолио.
type Project struct {
	Base        `bson:",inline"`
	Title       string         `json:"title" bson:"title" gorm:"not null" validate:"required"`
	Category    string         `json:"category" bson:"category"`
	Description string         `json:"description" bson:"description" gorm:"type:text"`
	Thumbnail   string         `json:"thumbnail" bson:"thumbnail"`
	Gallery     pq.StringArray `json:"gallery,omitempty" bson:"gallery,omitempty" gorm:"type:text[]"`
	Tags        pq.StringArray `json:"tags" bson:"tags" gorm:"type:text[]"`
	Date        string         `json:"date" bson:"date"`
	Links       ProjectLinks   `json:"links" bson:"links" gorm:"embedded;embeddedPrefix:links_"`
	CreatedAt   time.Time      `json:"createdAt" bson:"createdAt" gorm:"not null;index"`
}

// Категории навыков.
const (
	SkillFrontend   = "frontend"
	SkillBackend    = "backend"
	SkillFrameworks = "frameworks"
	SkillTools      = "tools"
)

// Skill - навык с иконкой.
type Skill struct {
	Base     `bson:",inline"`
	Name     string `json:"name" bson:"name" gorm:"not null" validate:"required"`
	Category string `json:"category" bson:"category" gorm:"type:varchar(16);not null" validate:"oneof=frontend backend frameworks tools"`
	Img      string `json:"img" bson:"img"`
}

// HeroContent - шапка главной страницы.
type HeroContent struct {
	Base        `bson:",inline"`
	Title       string         `json:"title" bson:"title"`
	Subtitle    string         `json:"subtitle" bson:"subtitle"`
	Description string         `json:"description" bson:"description" gorm:"type:text"`
	Roles       pq.StringArray `json:"roles" bson:"roles" gorm:"type:text[]"`
}

func (HeroContent) TableName() string { return "hero_content" }

// AboutStats - цифры для блока "обо мне".
type AboutStats struct {
	YearsExperience   int `json:"yearsExperience" bson:"yearsExperience"`
	ProjectsCompleted int `json:"projectsCompleted" bson:"projectsCompleted"`
	Technologies      int `json:"technologies" bson:"technologies"`
	Certifications    int `json:"certifications" bson:"certifications"`
}

// AboutContent - блок "обо мне".
type AboutContent struct {
	Base     `bson:",inline"`
	Title    string         `json:"title" bson:"title"`
	Subtitle string         `json:"subtitle" bson:"subtitle"`
	Bio      pq.StringArray `json:"bio" bson:"bio" gorm:"type:text[]"`
	Stats    AboutStats     `json:"stats" bson:"stats" gorm:"embedded;embeddedPrefix:stats_"`
}

func (AboutContent) TableName() string { return "about_content" }

// SocialLink - ссылка на соцсеть. Одна запись на платформу.
type SocialLink struct {
	Base     `bson:",inline"`
	Platform string `json:"platform" bson:"platform" gorm:"not null" validate:"required"`
	URL      string `json:"url" bson:"url" gorm:"not null" validate:"required"`
	Label    string `json:"label" bson:"label"`
	Color    string `json:"color" bson:"color"`
	Order    int    `json:"order" bson:"order" gorm:"not null;index" validate:"gte=0"`
	IsActive bool   `json:"isActive" bson:"isActive" gorm:"not null"`
}
