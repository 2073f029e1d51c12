package model

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title        string    `gorm:"not null" json:"title"`
	Description  string    `json:"description,omitempty"`
	Priority     string    `gorm:"not null;default:medium;check:priority IN ('low', 'medium', 'high')" json:"priority"`
	Completed    bool      `gorm:"not null;default:false" json:"completed"`
	ColumnID     uuid.UUID `gorm:"type:uuid;not null;index" json:"columnId"`
	ProjectID    *uint     `gorm:"index" json:"projectId,omitempty"`
	AssignedToID *uint     `gorm:"index" json:"assignedToId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	Column     *Column     `gorm:"foreignKey:ColumnID" json:"column,omitempty"`
	Project    *Project    `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	AssignedTo *TeamMember `gorm:"foreignKey:AssignedToID" json:"assignedTo,omitempty"`
	Activities []Activity  `gorm:"foreignKey:TaskID" json:"activities,omitempty"`
}

// Task priorities
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)
