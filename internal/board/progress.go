// Package board keeps Project.Progress consistent with the completion
// ratio of the project's tasks.
package board

import (
	"context"
	"math"

	"gorm.io/gorm"
)

// ProgressRefresher is what mutation handlers invoke after a task
// create/update/delete that may change a project's completion ratio.
type ProgressRefresher interface {
	RefreshProgress(ctx context.Context, projectID *uint) error
}

// Maintainer recomputes project progress directly in the store.
type Maintainer struct {
	db *gorm.DB
}

var _ ProgressRefresher = (*Maintainer)(nil)

func NewMaintainer(db *gorm.DB) *Maintainer {
	return &Maintainer{db: db}
}

// RefreshProgress recomputes the completion percentage of the given
// project from its current task set. The count and the write happen in a
// single UPDATE...SELECT, so two concurrent task mutations cannot overwrite
// each other with stale counts. A project with no tasks keeps its current
// progress: the EXISTS guard makes the statement match zero rows.
//
// A nil projectID is a no-op: the task did not belong to a project.
func (m *Maintainer) RefreshProgress(ctx context.Context, projectID *uint) error {
	if projectID == nil {
		return nil
	}

	return m.db.WithContext(ctx).Exec(
		`UPDATE projects
		 SET progress = (
		     SELECT ROUND(100.0 * COUNT(*) FILTER (WHERE completed) / COUNT(*))
		     FROM tasks WHERE tasks.project_id = projects.id
		 ),
		 updated_at = NOW()
		 WHERE id = ? AND EXISTS (SELECT 1 FROM tasks WHERE tasks.project_id = ?)`,
		*projectID, *projectID,
	).Error
}

// Percent mirrors the rounding of the UPDATE statement above in pure Go.
// Returns -1 when there are no tasks, meaning the stored progress should be
// left as is.
func Percent(completed, total int) int {
	if total == 0 {
		return -1
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}
