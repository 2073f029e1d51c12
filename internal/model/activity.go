package model

import (
	"time"

	"github.com/google/uuid"
)

// Activity is an append-only log entry; rows are never updated or deleted
// by normal flow. User/project/task references are weak, for display only.
type Activity struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Type        string     `gorm:"not null;index" json:"type"`
	Description string     `gorm:"not null" json:"description"`
	UserID      *uint      `gorm:"index" json:"userId,omitempty"`
	ProjectID   *uint      `gorm:"index" json:"projectId,omitempty"`
	TaskID      *uuid.UUID `gorm:"type:uuid;index" json:"taskId,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`

	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Project *Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Task    *Task    `gorm:"foreignKey:TaskID" json:"task,omitempty"`
}

// Activity types
const (
	ActivityTaskCreated    = "task_created"
	ActivityTaskUpdated    = "task_updated"
	ActivityTaskCompleted  = "task_completed"
	ActivityProjectCreated = "project_created"
	ActivityProjectUpdated = "project_updated"
)
