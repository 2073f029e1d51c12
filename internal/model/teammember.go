package model

import "time"

type TeamMember struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"not null" json:"name"`
	Role           string    `gorm:"not null" json:"role"`
	Email          string    `gorm:"uniqueIndex;not null" json:"email"`
	Initials       string    `gorm:"not null" json:"initials"`
	Avatar         string    `gorm:"not null;default:bg-slate-900" json:"avatar"`
	Status         string    `gorm:"not null;default:Active;check:status IN ('Active', 'Offline', 'Away')" json:"status"`
	TasksCompleted int       `gorm:"not null;default:0" json:"tasksCompleted"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
