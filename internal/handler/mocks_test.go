package handler_test

import (
	"context"

	"pulse/internal/model"
	"pulse/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	user := args.Get(0)
	if user == nil {
		return nil, args.Error(1)
	}
	return user.(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	user := args.Get(0)
	if user == nil {
		return nil, args.Error(1)
	}
	return user.(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	users := args.Get(0)
	if users == nil {
		return nil, args.Error(1)
	}
	return users.([]model.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockTeamMemberRepository struct {
	mock.Mock
}

func (m *MockTeamMemberRepository) Create(ctx context.Context, member *model.TeamMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockTeamMemberRepository) FindByEmail(ctx context.Context, email string) (*model.TeamMember, error) {
	args := m.Called(ctx, email)
	member := args.Get(0)
	if member == nil {
		return nil, args.Error(1)
	}
	return member.(*model.TeamMember), args.Error(1)
}

func (m *MockTeamMemberRepository) GetByID(ctx context.Context, id uint) (*model.TeamMember, error) {
	args := m.Called(ctx, id)
	member := args.Get(0)
	if member == nil {
		return nil, args.Error(1)
	}
	return member.(*model.TeamMember), args.Error(1)
}

func (m *MockTeamMemberRepository) List(ctx context.Context) ([]model.TeamMember, error) {
	args := m.Called(ctx)
	members := args.Get(0)
	if members == nil {
		return nil, args.Error(1)
	}
	return members.([]model.TeamMember), args.Error(1)
}

func (m *MockTeamMemberRepository) Update(ctx context.Context, member *model.TeamMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockTeamMemberRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) Create(ctx context.Context, project *model.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) GetByID(ctx context.Context, id uint) (*model.Project, error) {
	args := m.Called(ctx, id)
	project := args.Get(0)
	if project == nil {
		return nil, args.Error(1)
	}
	return project.(*model.Project), args.Error(1)
}

func (m *MockProjectRepository) GetBare(ctx context.Context, id uint) (*model.Project, error) {
	args := m.Called(ctx, id)
	project := args.Get(0)
	if project == nil {
		return nil, args.Error(1)
	}
	return project.(*model.Project), args.Error(1)
}

func (m *MockProjectRepository) List(ctx context.Context) ([]model.Project, error) {
	args := m.Called(ctx)
	projects := args.Get(0)
	if projects == nil {
		return nil, args.Error(1)
	}
	return projects.([]model.Project), args.Error(1)
}

func (m *MockProjectRepository) Update(ctx context.Context, project *model.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockColumnRepository struct {
	mock.Mock
}

func (m *MockColumnRepository) Create(ctx context.Context, column *model.Column) error {
	args := m.Called(ctx, column)
	return args.Error(0)
}

func (m *MockColumnRepository) CreateBatch(ctx context.Context, columns []model.Column) error {
	args := m.Called(ctx, columns)
	return args.Error(0)
}

func (m *MockColumnRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Column, error) {
	args := m.Called(ctx, id)
	column := args.Get(0)
	if column == nil {
		return nil, args.Error(1)
	}
	return column.(*model.Column), args.Error(1)
}

func (m *MockColumnRepository) List(ctx context.Context, projectID *uint) ([]model.Column, error) {
	args := m.Called(ctx, projectID)
	columns := args.Get(0)
	if columns == nil {
		return nil, args.Error(1)
	}
	return columns.([]model.Column), args.Error(1)
}

func (m *MockColumnRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Column, error) {
	args := m.Called(ctx, ids)
	columns := args.Get(0)
	if columns == nil {
		return nil, args.Error(1)
	}
	return columns.([]model.Column), args.Error(1)
}

func (m *MockColumnRepository) Update(ctx context.Context, column *model.Column) error {
	args := m.Called(ctx, column)
	return args.Error(0)
}

func (m *MockColumnRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockColumnRepository) CountTasks(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockColumnRepository) MaxOrder(ctx context.Context, projectID uint) (int, error) {
	args := m.Called(ctx, projectID)
	return args.Int(0), args.Error(1)
}

func (m *MockColumnRepository) Reorder(ctx context.Context, orders []repository.ColumnOrder) error {
	args := m.Called(ctx, orders)
	return args.Error(0)
}

type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Create(ctx context.Context, task *model.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	args := m.Called(ctx, id)
	task := args.Get(0)
	if task == nil {
		return nil, args.Error(1)
	}
	return task.(*model.Task), args.Error(1)
}

func (m *MockTaskRepository) List(ctx context.Context, filter repository.TaskFilter) ([]model.Task, error) {
	args := m.Called(ctx, filter)
	tasks := args.Get(0)
	if tasks == nil {
		return nil, args.Error(1)
	}
	return tasks.([]model.Task), args.Error(1)
}

func (m *MockTaskRepository) Update(ctx context.Context, task *model.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Create(ctx context.Context, activity *model.Activity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func (m *MockActivityRepository) GetByID(ctx context.Context, id uint) (*model.Activity, error) {
	args := m.Called(ctx, id)
	activity := args.Get(0)
	if activity == nil {
		return nil, args.Error(1)
	}
	return activity.(*model.Activity), args.Error(1)
}

func (m *MockActivityRepository) List(ctx context.Context, filter repository.ActivityFilter) ([]model.Activity, int64, error) {
	args := m.Called(ctx, filter)
	activities := args.Get(0)
	if activities == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return activities.([]model.Activity), args.Get(1).(int64), args.Error(2)
}

func (m *MockActivityRepository) Recent(ctx context.Context, limit int) ([]model.Activity, error) {
	args := m.Called(ctx, limit)
	activities := args.Get(0)
	if activities == nil {
		return nil, args.Error(1)
	}
	return activities.([]model.Activity), args.Error(1)
}

// MockMaintainer stands in for the board progress refresher.
type MockMaintainer struct {
	mock.Mock
}

func (m *MockMaintainer) RefreshProgress(ctx context.Context, projectID *uint) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

// MockRecorder stands in for the activity recorder.
type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) TaskCreated(ctx context.Context, userID *uint, projectID *uint, taskID uuid.UUID, title string) {
	m.Called(ctx, userID, projectID, taskID, title)
}

func (m *MockRecorder) TaskUpdated(ctx context.Context, userID *uint, projectID *uint, taskID uuid.UUID, title string) {
	m.Called(ctx, userID, projectID, taskID, title)
}

func (m *MockRecorder) TaskCompleted(ctx context.Context, userID *uint, projectID *uint, taskID uuid.UUID, title string) {
	m.Called(ctx, userID, projectID, taskID, title)
}

func (m *MockRecorder) TaskMoved(ctx context.Context, userID *uint, projectID *uint, taskID uuid.UUID, title, columnTitle string) {
	m.Called(ctx, userID, projectID, taskID, title, columnTitle)
}

func (m *MockRecorder) ProjectCreated(ctx context.Context, userID *uint, projectID uint, name string) {
	m.Called(ctx, userID, projectID, name)
}

func (m *MockRecorder) ProjectUpdated(ctx context.Context, userID *uint, projectID uint, name string) {
	m.Called(ctx, userID, projectID, name)
}
