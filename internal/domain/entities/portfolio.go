package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Portfolio represents the root portfolio record
type Portfolio struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Name      string    `json:"name"`
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle"`
	Bio       string    `json:"bio"`
	Theme     string    `json:"theme"`
	Layout    string    `json:"layout"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PortfolioContact holds the portfolio's contact details (one per portfolio)
type PortfolioContact struct {
	ID          uuid.UUID   `json:"id"`
	Email       string      `json:"email"`
	Phone       null.String `json:"phone,omitempty"`
	Location    null.String `json:"location,omitempty"`
	LinkedInURL null.String `json:"linkedinUrl,omitempty"`
	GithubURL   null.String `json:"githubUrl,omitempty"`
	WebsiteURL  null.String `json:"websiteUrl,omitempty"`
}

// PortfolioProject is a showcased project
type PortfolioProject struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Technologies []string  `json:"technologies"`
	ImageURL     string    `json:"imageUrl"`
	LinkURL      string    `json:"linkUrl"`
	Featured     bool      `json:"featured"`
}

// PortfolioExperience is a work-history entry
type PortfolioExperience struct {
	ID           uuid.UUID `json:"id"`
	Company      string    `json:"company"`
	Role         string    `json:"role"`
	Duration     string    `json:"duration"`
	Description  string    `json:"description"`
	Achievements []string  `json:"achievements"`
}

// PortfolioSkill is a skill with a 0-100 proficiency level.
// Category is a display grouping tag, not a separate entity.
type PortfolioSkill struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Level    int       `json:"level"`
	Category string    `json:"category"`
}

// PortfolioService is an offered service with a free-form price label
type PortfolioService struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	Icon        string    `json:"icon"`
}

// PortfolioTestimonial is a client testimonial
type PortfolioTestimonial struct {
	ID        uuid.UUID `json:"id"`
	Author    string    `json:"author"`
	Company   string    `json:"company"`
	Content   string    `json:"content"`
	AvatarURL string    `json:"avatarUrl"`
	Rating    int       `json:"rating"`
}

// SocialLink is a platform/url pair; used both at portfolio level and
// nested under a team member
type SocialLink struct {
	ID       uuid.UUID `json:"id"`
	Platform string    `json:"platform"`
	URL      string    `json:"url"`
	Icon     string    `json:"icon"`
}

// PortfolioTeamMember is an agency team member with their own social links
type PortfolioTeamMember struct {
	ID          uuid.UUID    `json:"id"`
	Name        string       `json:"name"`
	Role        string       `json:"role"`
	Bio         string       `json:"bio"`
	Email       string       `json:"email"`
	AvatarURL   string       `json:"avatarUrl"`
	SocialLinks []SocialLink `json:"socialLinks"`
}

// PortfolioAggregate is the fully-assembled portfolio: the root record plus
// every owned child collection. Child IDs are caller-supplied and stable
// across edits; on save the aggregate's id sets are authoritative per
// collection (ids missing from a non-empty incoming collection are deleted
// from storage).
type PortfolioAggregate struct {
	Portfolio
	Contact      *PortfolioContact      `json:"contact,omitempty"`
	Projects     []PortfolioProject     `json:"projects"`
	Experiences  []PortfolioExperience  `json:"experiences"`
	Skills       []PortfolioSkill       `json:"skills"`
	Services     []PortfolioService     `json:"services"`
	Testimonials []PortfolioTestimonial `json:"testimonials"`
	TeamMembers  []PortfolioTeamMember  `json:"teamMembers"`
	SocialLinks  []SocialLink           `json:"socialLinks"`
}
