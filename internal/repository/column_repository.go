package repository

import (
	"context"
	"errors"

	"pulse/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ColumnRepository struct {
	db *gorm.DB
}

// ColumnOrder is one {columnId, order} pair of a reorder request.
type ColumnOrder struct {
	ID    uuid.UUID
	Order int
}

type ColumnRepositoryInterface interface {
	Create(ctx context.Context, column *model.Column) error
	CreateBatch(ctx context.Context, columns []model.Column) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Column, error)
	List(ctx context.Context, projectID *uint) ([]model.Column, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Column, error)
	Update(ctx context.Context, column *model.Column) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountTasks(ctx context.Context, id uuid.UUID) (int64, error)
	MaxOrder(ctx context.Context, projectID uint) (int, error)
	Reorder(ctx context.Context, orders []ColumnOrder) error
}

var _ ColumnRepositoryInterface = (*ColumnRepository)(nil)

func NewColumnRepository(db *gorm.DB) *ColumnRepository {
	return &ColumnRepository{db: db}
}

func (r *ColumnRepository) Create(ctx context.Context, column *model.Column) error {
	return r.db.WithContext(ctx).Create(column).Error
}

func (r *ColumnRepository) CreateBatch(ctx context.Context, columns []model.Column) error {
	return r.db.WithContext(ctx).Create(&columns).Error
}

func (r *ColumnRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Column, error) {
	var column model.Column
	err := r.db.WithContext(ctx).
		Preload("Project").
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at")
		}).
		Preload("Tasks.AssignedTo").
		Where("id = ?", id).First(&column).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &column, nil
}

// List returns columns ordered left to right, optionally scoped to one
// project, with their tasks and assignees.
func (r *ColumnRepository) List(ctx context.Context, projectID *uint) ([]model.Column, error) {
	var columns []model.Column
	query := r.db.WithContext(ctx).
		Preload("Project").
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at")
		}).
		Preload("Tasks.AssignedTo").
		Order(`"order"`)
	if projectID != nil {
		query = query.Where("project_id = ?", *projectID)
	}
	err := query.Find(&columns).Error
	return columns, err
}

func (r *ColumnRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Column, error) {
	var columns []model.Column
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order(`"order"`).
		Find(&columns).Error
	return columns, err
}

func (r *ColumnRepository) Update(ctx context.Context, column *model.Column) error {
	result := r.db.WithContext(ctx).Save(column)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrColumnNotFound
	}
	return nil
}

func (r *ColumnRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Column{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrColumnNotFound
	}
	return nil
}

func (r *ColumnRepository) CountTasks(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("column_id = ?", id).
		Count(&count).Error
	return count, err
}

func (r *ColumnRepository) MaxOrder(ctx context.Context, projectID uint) (int, error) {
	var maxOrder struct {
		Max int
	}
	err := r.db.WithContext(ctx).Model(&model.Column{}).
		Select(`COALESCE(MAX("order"), -1) as max`).
		Where("project_id = ?", projectID).
		Scan(&maxOrder).Error
	return maxOrder.Max, err
}

// Reorder applies all position updates in a single transaction so readers
// never observe a partially reordered board.
func (r *ColumnRepository) Reorder(ctx context.Context, orders []ColumnOrder) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, o := range orders {
			result := tx.Model(&model.Column{}).Where("id = ?", o.ID).
				Update("order", o.Order)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrColumnNotFound
			}
		}
		return nil
	})
}
