package model

import "time"

type Project struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"not null" json:"name"`
	Description string     `json:"description,omitempty"`
	Progress    int        `gorm:"not null;default:0;check:progress >= 0 AND progress <= 100" json:"progress"`
	Status      string     `gorm:"not null;default:Started" json:"status"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	OwnerID     *uint      `gorm:"index" json:"ownerId,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`

	Owner   *User    `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Columns []Column `gorm:"foreignKey:ProjectID" json:"columns,omitempty"`
	Tasks   []Task   `gorm:"foreignKey:ProjectID" json:"-"`
}

// Project lifecycle statuses. Progress is derived from tasks; status is
// only ever set explicitly by the client.
const (
	ProjectStarted    = "Started"
	ProjectInProgress = "In progress"
	ProjectOnTrack    = "On track"
	ProjectAlmostDone = "Almost done"
	ProjectCompleted  = "Completed"
)
