package model

import (
	"time"

	"github.com/google/uuid"
)

type Column struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Color     string    `gorm:"not null;default:#94a3b8" json:"color"`
	Order     int       `gorm:"column:order;not null;default:0" json:"order"`
	ProjectID *uint     `gorm:"index" json:"projectId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Project *Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Tasks   []Task   `gorm:"foreignKey:ColumnID" json:"tasks,omitempty"`
}

// DefaultColor is applied when a column is created without one.
const DefaultColor = "#94a3b8"

// DefaultColumns seeds every new project's board.
func DefaultColumns(projectID uint) []Column {
	id := projectID
	return []Column{
		{Title: "To Do", Color: "#94a3b8", Order: 0, ProjectID: &id},
		{Title: "In Progress", Color: "#3b82f6", Order: 1, ProjectID: &id},
		{Title: "Review", Color: "#f59e0b", Order: 2, ProjectID: &id},
		{Title: "Done", Color: "#10b981", Order: 3, ProjectID: &id},
	}
}
