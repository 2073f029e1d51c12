package model

import (
	"strings"
	"time"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Role      string    `gorm:"not null;default:team_member;check:role IN ('admin', 'project_manager', 'team_member', 'viewer')" json:"role"`
	Avatar    string    `json:"avatar,omitempty"`
	Initials  string    `json:"initials"`
	Status    string    `gorm:"not null;default:Active" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Authorization roles
const (
	RoleAdmin          = "admin"
	RoleProjectManager = "project_manager"
	RoleTeamMember     = "team_member"
	RoleViewer         = "viewer"
)

// Presence statuses shared by users and team members
const (
	StatusActive  = "Active"
	StatusOffline = "Offline"
	StatusAway    = "Away"
)

// Initials derives display initials from a full name: first letters of up
// to two words, uppercased.
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		r := []rune(word)
		b.WriteString(strings.ToUpper(string(r[0])))
		if len([]rune(b.String())) >= 2 {
			break
		}
	}
	return b.String()
}
