package repository

import "errors"

// Common repository errors
var (
	// ErrUserNotFound is returned when a user is not found
	ErrUserNotFound = errors.New("user not found")

	// ErrTeamMemberNotFound is returned when a team member is not found
	ErrTeamMemberNotFound = errors.New("team member not found")

	// ErrProjectNotFound is returned when a project is not found
	ErrProjectNotFound = errors.New("project not found")

	// ErrColumnNotFound is returned when a column is not found
	ErrColumnNotFound = errors.New("column not found")

	// ErrTaskNotFound is returned when a task is not found
	ErrTaskNotFound = errors.New("task not found")

	// ErrActivityNotFound is returned when an activity is not found
	ErrActivityNotFound = errors.New("activity not found")
)
