package dummy

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vaultadmin/internal/domain"
)

type mockWorkRepo struct {
	mock.Mock
}

func (m *mockWorkRepo) CreateBatch(ctx context.Context, works []domain.Work) error {
	args := m.Called(ctx, works)
	return args.Error(0)
}

func (m *mockWorkRepo) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockContributionRepo struct {
	mock.Mock
}

func (m *mockContributionRepo) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockLikeRepo struct {
	mock.Mock
}

func (m *mockLikeRepo) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockProfileRepo struct {
	mock.Mock
}

func (m *mockProfileRepo) Create(ctx context.Context, p *domain.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockProfileRepo) DeleteDummies(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func newTestService(works *mockWorkRepo, contributions *mockContributionRepo, likes *mockLikeRepo, profiles *mockProfileRepo) *Service {
	return NewService(works, contributions, likes, profiles)
}

func TestService_GenerateWorks(t *testing.T) {
	worksRepo := new(mockWorkRepo)

	var captured []domain.Work
	worksRepo.On("CreateBatch", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		captured = args.Get(1).([]domain.Work)
	}).Return(nil)

	svc := newTestService(worksRepo, new(mockContributionRepo), new(mockLikeRepo), new(mockProfileRepo))

	generated, err := svc.GenerateWorks(context.Background(), 25, []string{"poetry"})
	require.NoError(t, err)
	require.Len(t, generated, 25)
	require.Len(t, captured, 25)

	for _, w := range generated {
		assert.NotEmpty(t, w.ID)
		assert.NotEmpty(t, w.Title)
		assert.Equal(t, "poetry", w.Category)
		assert.GreaterOrEqual(t, w.CompletionRate, 0.3)
		assert.Less(t, w.CompletionRate, 0.6)
		assert.GreaterOrEqual(t, w.ViewCount, 0)
		assert.Less(t, w.ViewCount, 100)
		assert.Less(t, w.LikeCount, 20)
		assert.False(t, w.CreatedDate.IsZero())
	}
}

func TestService_GenerateWorks_Concurrent(t *testing.T) {
	worksRepo := new(mockWorkRepo)
	profiles := new(mockProfileRepo)
	worksRepo.On("CreateBatch", mock.Anything, mock.Anything).Return(nil)
	profiles.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := newTestService(worksRepo, new(mockContributionRepo), new(mockLikeRepo), profiles)

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := svc.GenerateWorks(context.Background(), 50, nil)
			errs <- err
		}()
		go func() {
			defer wg.Done()
			_, err := svc.GenerateUsers(context.Background(), 10)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
}

func TestService_GenerateWorks_ClampsCount(t *testing.T) {
	worksRepo := new(mockWorkRepo)
	worksRepo.On("CreateBatch", mock.Anything, mock.Anything).Return(nil)

	svc := newTestService(worksRepo, new(mockContributionRepo), new(mockLikeRepo), new(mockProfileRepo))

	generated, err := svc.GenerateWorks(context.Background(), 0, nil)
	require.NoError(t, err)
	assert.Len(t, generated, 10)

	generated, err = svc.GenerateWorks(context.Background(), 10000, nil)
	require.NoError(t, err)
	assert.Len(t, generated, maxGenerateCount)
}

func TestService_GenerateWorks_UnknownCategory(t *testing.T) {
	svc := newTestService(new(mockWorkRepo), new(mockContributionRepo), new(mockLikeRepo), new(mockProfileRepo))

	_, err := svc.GenerateWorks(context.Background(), 5, []string{"cookbooks"})
	assert.ErrorIs(t, err, ErrNoCategories)
}

func TestService_GenerateUsers(t *testing.T) {
	profiles := new(mockProfileRepo)
	profiles.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Profile) bool {
		return p.IsDummy && p.Status == domain.StatusActive && p.Nickname != "" && p.Email != ""
	})).Return(nil)

	svc := newTestService(new(mockWorkRepo), new(mockContributionRepo), new(mockLikeRepo), profiles)

	generated, err := svc.GenerateUsers(context.Background(), 5)
	require.NoError(t, err)
	assert.Len(t, generated, 5)
	profiles.AssertNumberOfCalls(t, "Create", 5)
}

func TestService_PurgeContent(t *testing.T) {
	worksRepo := new(mockWorkRepo)
	contribRepo := new(mockContributionRepo)
	likeRepo := new(mockLikeRepo)

	contribRepo.On("DeleteAll", mock.Anything).Return(int64(40), nil)
	worksRepo.On("DeleteAll", mock.Anything).Return(int64(12), nil)
	likeRepo.On("DeleteAll", mock.Anything).Return(int64(7), nil)

	svc := newTestService(worksRepo, contribRepo, likeRepo, new(mockProfileRepo))

	result, err := svc.PurgeContent(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(12), result.Works)
	assert.Equal(t, int64(40), result.Contributions)
	assert.Equal(t, int64(7), result.Likes)
}

func TestService_PurgeUsers(t *testing.T) {
	profiles := new(mockProfileRepo)
	profiles.On("DeleteDummies", mock.Anything).Return(int64(9), nil)

	svc := newTestService(new(mockWorkRepo), new(mockContributionRepo), new(mockLikeRepo), profiles)

	deleted, err := svc.PurgeUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(9), deleted)
}

func TestCategories(t *testing.T) {
	svc := newTestService(new(mockWorkRepo), new(mockContributionRepo), new(mockLikeRepo), new(mockProfileRepo))
	assert.ElementsMatch(t, []string{"poetry", "novel", "essay", "scenario"}, svc.Categories())
}
