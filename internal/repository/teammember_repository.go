package repository

import (
	"context"
	"errors"

	"pulse/internal/model"

	"gorm.io/gorm"
)

type TeamMemberRepository struct {
	db *gorm.DB
}

type TeamMemberRepositoryInterface interface {
	Create(ctx context.Context, member *model.TeamMember) error
	FindByEmail(ctx context.Context, email string) (*model.TeamMember, error)
	GetByID(ctx context.Context, id uint) (*model.TeamMember, error)
	List(ctx context.Context) ([]model.TeamMember, error)
	Update(ctx context.Context, member *model.TeamMember) error
	Delete(ctx context.Context, id uint) error
}

var _ TeamMemberRepositoryInterface = (*TeamMemberRepository)(nil)

func NewTeamMemberRepository(db *gorm.DB) *TeamMemberRepository {
	return &TeamMemberRepository{db: db}
}

func (r *TeamMemberRepository) Create(ctx context.Context, member *model.TeamMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *TeamMemberRepository) FindByEmail(ctx context.Context, email string) (*model.TeamMember, error) {
	var member model.TeamMember
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &member, err
}

func (r *TeamMemberRepository) GetByID(ctx context.Context, id uint) (*model.TeamMember, error) {
	var member model.TeamMember
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &member, err
}

func (r *TeamMemberRepository) List(ctx context.Context) ([]model.TeamMember, error) {
	var members []model.TeamMember
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&members).Error
	return members, err
}

func (r *TeamMemberRepository) Update(ctx context.Context, member *model.TeamMember) error {
	result := r.db.WithContext(ctx).Save(member)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTeamMemberNotFound
	}
	return nil
}

func (r *TeamMemberRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.TeamMember{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTeamMemberNotFound
	}
	return nil
}
