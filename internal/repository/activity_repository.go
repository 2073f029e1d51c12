package repository

import (
	"context"
	"errors"

	"pulse/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActivityRepository struct {
	db *gorm.DB
}

// ActivityFilter narrows List; nil fields are ignored.
type ActivityFilter struct {
	ProjectID *uint
	TaskID    *uuid.UUID
	UserID    *uint
	Type      *string
	Limit     int
	Offset    int
}

type ActivityRepositoryInterface interface {
	Create(ctx context.Context, activity *model.Activity) error
	GetByID(ctx context.Context, id uint) (*model.Activity, error)
	List(ctx context.Context, filter ActivityFilter) ([]model.Activity, int64, error)
	Recent(ctx context.Context, limit int) ([]model.Activity, error)
}

var _ ActivityRepositoryInterface = (*ActivityRepository)(nil)

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Create(ctx context.Context, activity *model.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *ActivityRepository) GetByID(ctx context.Context, id uint) (*model.Activity, error) {
	var activity model.Activity
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Project").
		Preload("Task").
		First(&activity, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrActivityNotFound
	}
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

// List returns a page of activities, newest first, plus the total count
// matching the filter for pagination.
func (r *ActivityRepository) List(ctx context.Context, filter ActivityFilter) ([]model.Activity, int64, error) {
	base := r.db.WithContext(ctx).Model(&model.Activity{})
	if filter.ProjectID != nil {
		base = base.Where("project_id = ?", *filter.ProjectID)
	}
	if filter.TaskID != nil {
		base = base.Where("task_id = ?", *filter.TaskID)
	}
	if filter.UserID != nil {
		base = base.Where("user_id = ?", *filter.UserID)
	}
	if filter.Type != nil {
		base = base.Where("type = ?", *filter.Type)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var activities []model.Activity
	err := base.Session(&gorm.Session{}).
		Preload("User").
		Preload("Project").
		Preload("Task").
		Order("created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&activities).Error
	if err != nil {
		return nil, 0, err
	}
	return activities, total, nil
}

func (r *ActivityRepository) Recent(ctx context.Context, limit int) ([]model.Activity, error) {
	var activities []model.Activity
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Project").
		Preload("Task").
		Order("created_at DESC").
		Limit(limit).
		Find(&activities).Error
	return activities, err
}
