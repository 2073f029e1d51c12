// Package activity appends human-readable log entries for the feed.
package activity

import (
	"context"
	"fmt"

	"pulse/internal/logger"
	"pulse/internal/model"
	"pulse/internal/repository"

	"github.com/google/uuid"
)

// RecorderInterface is implemented by Recorder and mocked in handler tests.
type RecorderInterface interface {
	TaskCreated(ctx context.Context, userID *uint, projectID *uint, taskID uuid.UUID, title string)
	TaskUpdated(ctx context.Context, userID *uint, projectID *uint, taskID uuid.UUID, title string)
	TaskCompleted(ctx context.Context, userID *uint, projectID *uint, taskID uuid.UUID, title string)
	TaskMoved(ctx context.Context, userID *uint, projectID *uint, taskID uuid.UUID, title, columnTitle string)
	ProjectCreated(ctx context.Context, userID *uint, projectID uint, name string)
	ProjectUpdated(ctx context.Context, userID *uint, projectID uint, name string)
}

// Recorder appends one activity row per successful mutation. Appends are
// best-effort: a failed insert is logged and never fails the triggering
// request.
type Recorder struct {
	repo repository.ActivityRepositoryInterface
}

var _ RecorderInterface = (*Recorder)(nil)

func NewRecorder(repo repository.ActivityRepositoryInterface) *Recorder {
	return &Recorder{repo: repo}
}

func (r *Recorder) TaskCreated(ctx context.Context, userID *uint, projectID *uint, taskID uuid.UUID, title string) {
	r.record(ctx, &model.Activity{
		Type:        model.ActivityTaskCreated,
		Description: fmt.Sprintf("Task %q was created", title),
		UserID:      userID,
		ProjectID:   projectID,
		TaskID:      &taskID,
	})
}

func (r *Recorder) TaskUpdated(ctx context.Context, userID *uint, projectID *uint, taskID uuid.UUID, title string) {
	r.record(ctx, &model.Activity{
		Type:        model.ActivityTaskUpdated,
		Description: fmt.Sprintf("Task %q was updated", title),
		UserID:      userID,
		ProjectID:   projectID,
		TaskID:      &taskID,
	})
}

func (r *Recorder) TaskCompleted(ctx context.Context, userID *uint, projectID *uint, taskID uuid.UUID, title string) {
	r.record(ctx, &model.Activity{
		Type:        model.ActivityTaskCompleted,
		Description: fmt.Sprintf("Task %q was completed", title),
		UserID:      userID,
		ProjectID:   projectID,
		TaskID:      &taskID,
	})
}

func (r *Recorder) TaskMoved(ctx context.Context, userID *uint, projectID *uint, taskID uuid.UUID, title, columnTitle string) {
	r.record(ctx, &model.Activity{
		Type:        model.ActivityTaskUpdated,
		Description: fmt.Sprintf("Task %q was moved to %q", title, columnTitle),
		UserID:      userID,
		ProjectID:   projectID,
		TaskID:      &taskID,
	})
}

func (r *Recorder) ProjectCreated(ctx context.Context, userID *uint, projectID uint, name string) {
	r.record(ctx, &model.Activity{
		Type:        model.ActivityProjectCreated,
		Description: fmt.Sprintf("User created project %q", name),
		UserID:      userID,
		ProjectID:   &projectID,
	})
}

func (r *Recorder) ProjectUpdated(ctx context.Context, userID *uint, projectID uint, name string) {
	r.record(ctx, &model.Activity{
		Type:        model.ActivityProjectUpdated,
		Description: fmt.Sprintf("Project %q was updated", name),
		UserID:      userID,
		ProjectID:   &projectID,
	})
}

func (r *Recorder) record(ctx context.Context, a *model.Activity) {
	if err := r.repo.Create(ctx, a); err != nil {
		logger.Error("failed to record activity", "type", a.Type, "error", err)
	}
}
