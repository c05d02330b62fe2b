package models

import (
	"time"

	"github.com/google/uuid"
)

// Every child table carries a portfolio_id foreign key declared with
// ON DELETE CASCADE in the schema; deleting a portfolio row removes the
// whole aggregate.

type Portfolio struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Subtitle  string    `gorm:"type:varchar(255)"`
	Bio       string    `gorm:"type:text"`
	Theme     string    `gorm:"type:varchar(50)"`
	Layout    string    `gorm:"type:varchar(50)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type PortfolioContact struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	PortfolioID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Email       string    `gorm:"type:varchar(255)"`
	Phone       string    `gorm:"type:varchar(50)"`
	Location    string    `gorm:"type:varchar(255)"`
	LinkedInURL string    `gorm:"column:linkedin_url;type:text"`
	GithubURL   string    `gorm:"type:text"`
	WebsiteURL  string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type PortfolioProject struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	PortfolioID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Title        string    `gorm:"type:varchar(255);not null"`
	Description  string    `gorm:"type:text"`
	Technologies string    `gorm:"type:jsonb;default:'[]'"`
	ImageURL     string    `gorm:"type:text"`
	LinkURL      string    `gorm:"type:text"`
	IsFeatured   bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type PortfolioExperience struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	PortfolioID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Company      string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(255);not null"`
	Duration     string    `gorm:"type:varchar(120)"`
	Description  string    `gorm:"type:text"`
	Achievements string    `gorm:"type:jsonb;default:'[]'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type PortfolioSkill struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	PortfolioID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(120);not null"`
	Level       int       `gorm:"not null;default:0"`
	Category    string    `gorm:"type:varchar(120)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type PortfolioService struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	PortfolioID uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Price       string    `gorm:"type:varchar(120)"`
	Icon        string    `gorm:"type:varchar(120)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type PortfolioTestimonial struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	PortfolioID uuid.UUID `gorm:"type:uuid;not null;index"`
	Author      string    `gorm:"type:varchar(255);not null"`
	Company     string    `gorm:"type:varchar(255)"`
	Content     string    `gorm:"type:text"`
	AvatarURL   string    `gorm:"type:text"`
	Rating      int       `gorm:"not null;default:5"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type PortfolioTeamMember struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	PortfolioID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Role        string    `gorm:"type:varchar(255)"`
	Bio         string    `gorm:"type:text"`
	Email       string    `gorm:"type:varchar(255)"`
	AvatarURL   string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type TeamMemberSocialLink struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	TeamMemberID uuid.UUID `gorm:"type:uuid;not null;index"`
	Platform     string    `gorm:"type:varchar(120);not null"`
	URL          string    `gorm:"type:text;not null"`
	Icon         string    `gorm:"type:varchar(120)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type PortfolioSocialLink struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	PortfolioID uuid.UUID `gorm:"type:uuid;not null;index"`
	Platform    string    `gorm:"type:varchar(120);not null"`
	URL         string    `gorm:"type:text;not null"`
	Icon        string    `gorm:"type:varchar(120)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
