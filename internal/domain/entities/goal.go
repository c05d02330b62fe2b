package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Goal represents a measurable business goal (revenue, clients, hours...)
type Goal struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"userId"`
	Title        string    `json:"title"`
	TargetValue  float64   `json:"targetValue"`
	CurrentValue float64   `json:"currentValue"`
	Unit         string    `json:"unit"`
	Deadline     null.Time `json:"deadline,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Progress returns completion as a 0-100 percentage, capped at 100
func (g *Goal) Progress() float64 {
	if g.TargetValue <= 0 {
		return 0
	}
	p := g.CurrentValue / g.TargetValue * 100
	if p > 100 {
		return 100
	}
	return p
}
