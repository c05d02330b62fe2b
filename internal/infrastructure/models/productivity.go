package models

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	ClientID  *uuid.UUID `gorm:"type:uuid;index"`
	Title     string     `gorm:"type:varchar(255);not null"`
	Notes     string     `gorm:"type:text"`
	Status    string     `gorm:"type:varchar(20);not null;default:'todo'"`
	Priority  string     `gorm:"type:varchar(20);not null;default:'medium'"`
	DueDate   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Goal struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Title        string    `gorm:"type:varchar(255);not null"`
	TargetValue  float64   `gorm:"not null;default:0"`
	CurrentValue float64   `gorm:"not null;default:0"`
	Unit         string    `gorm:"type:varchar(50)"`
	Deadline     *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Event struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	ClientID  *uuid.UUID `gorm:"type:uuid;index"`
	Title     string     `gorm:"type:varchar(255);not null"`
	Location  string     `gorm:"type:varchar(255)"`
	StartsAt  time.Time  `gorm:"not null;index"`
	EndsAt    time.Time  `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
