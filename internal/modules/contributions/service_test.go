package contributions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"vaultadmin/internal/domain"
)

type mockContributionRepo struct {
	mock.Mock
}

func (m *mockContributionRepo) Create(ctx context.Context, c *domain.Contribution) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockContributionRepo) GetByID(ctx context.Context, id string) (*domain.Contribution, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contribution), args.Error(1)
}

func (m *mockContributionRepo) GetByWork(ctx context.Context, workID string) ([]domain.Contribution, error) {
	args := m.Called(ctx, workID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contribution), args.Error(1)
}

func (m *mockContributionRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockWorkCounter struct {
	mock.Mock
}

func (m *mockWorkCounter) GetByID(ctx context.Context, id string) (*domain.Work, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Work), args.Error(1)
}

func (m *mockWorkCounter) AdjustContributors(ctx context.Context, id string, delta int) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

func TestService_Create(t *testing.T) {
	contribRepo := new(mockContributionRepo)
	works := new(mockWorkCounter)

	works.On("GetByID", mock.Anything, "work-1").Return(&domain.Work{
		ID:                "work-1",
		MaxContributions:  100,
		ContributorsCount: 3,
	}, nil)
	contribRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.Contribution) bool {
		return c.ID != "" && c.WorkID != nil && *c.WorkID == "work-1" && c.Author == "anonymous"
	})).Return(nil)
	works.On("AdjustContributors", mock.Anything, "work-1", 1).Return(nil)

	svc := NewService(contribRepo, works)

	contribution, err := svc.Create(context.Background(), CreateInput{
		WorkID:  "work-1",
		Content: "and then the rain stopped",
	})
	require.NoError(t, err)
	assert.Equal(t, "anonymous", contribution.Author)
	assert.False(t, contribution.Timestamp.IsZero())
	works.AssertCalled(t, "AdjustContributors", mock.Anything, "work-1", 1)
}

func TestService_Create_WorkFull(t *testing.T) {
	contribRepo := new(mockContributionRepo)
	works := new(mockWorkCounter)

	works.On("GetByID", mock.Anything, "work-1").Return(&domain.Work{
		ID:                "work-1",
		MaxContributions:  5,
		ContributorsCount: 5,
	}, nil)

	svc := NewService(contribRepo, works)

	_, err := svc.Create(context.Background(), CreateInput{WorkID: "work-1", Content: "one more"})
	assert.ErrorIs(t, err, ErrWorkFull)
	contribRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_WorkMissing(t *testing.T) {
	works := new(mockWorkCounter)
	works.On("GetByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(new(mockContributionRepo), works)

	_, err := svc.Create(context.Background(), CreateInput{WorkID: "missing", Content: "x"})
	assert.ErrorIs(t, err, ErrWorkNotFound)
}

func TestService_Delete_DecrementsCounter(t *testing.T) {
	contribRepo := new(mockContributionRepo)
	works := new(mockWorkCounter)

	workID := "work-1"
	contribRepo.On("GetByID", mock.Anything, "c-1").Return(&domain.Contribution{
		ID:     "c-1",
		WorkID: &workID,
	}, nil)
	contribRepo.On("Delete", mock.Anything, "c-1").Return(nil)
	works.On("AdjustContributors", mock.Anything, "work-1", -1).Return(nil)

	svc := NewService(contribRepo, works)

	require.NoError(t, svc.Delete(context.Background(), "c-1"))
	works.AssertCalled(t, "AdjustContributors", mock.Anything, "work-1", -1)
}

func TestService_Delete_Detached(t *testing.T) {
	contribRepo := new(mockContributionRepo)
	works := new(mockWorkCounter)

	contribRepo.On("GetByID", mock.Anything, "c-1").Return(&domain.Contribution{ID: "c-1"}, nil)
	contribRepo.On("Delete", mock.Anything, "c-1").Return(nil)

	svc := NewService(contribRepo, works)

	require.NoError(t, svc.Delete(context.Background(), "c-1"))
	works.AssertNotCalled(t, "AdjustContributors", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Delete_NotFound(t *testing.T) {
	contribRepo := new(mockContributionRepo)
	contribRepo.On("GetByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(contribRepo, new(mockWorkCounter))

	assert.ErrorIs(t, svc.Delete(context.Background(), "missing"), ErrContributionNotFound)
}
