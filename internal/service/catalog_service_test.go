package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"feedback-builder/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testCatalog = []domain.Category{
	{ID: "c1", Name: "Course Objectives"},
	{ID: "c2", Name: "Logistics"},
}

func TestCatalogService_Fetch(t *testing.T) {
	repo := new(MockCategoryRepository)
	repo.On("ListCategories", mock.Anything, 1000).Return(testCatalog, nil).Once()

	svc := NewCatalogService(repo, nil, 0, 1000, nil)
	got, err := svc.Fetch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, testCatalog, got)
	repo.AssertExpectations(t)
}

func TestCatalogService_FetchEmptyIsNotNil(t *testing.T) {
	repo := new(MockCategoryRepository)
	repo.On("ListCategories", mock.Anything, 10).Return(nil, nil)

	got, err := NewCatalogService(repo, nil, 0, 10, nil).Fetch(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCatalogService_FetchIgnoresFirstCallerCancellation(t *testing.T) {
	repo := new(MockCategoryRepository)
	live := mock.MatchedBy(func(ctx context.Context) bool { return ctx.Err() == nil })
	repo.On("ListCategories", live, 1000).Return(testCatalog, nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	got, err := NewCatalogService(repo, nil, 0, 1000, nil).Fetch(ctx)

	require.NoError(t, err)
	assert.Equal(t, testCatalog, got)
	repo.AssertExpectations(t)
}

func TestCatalogService_FetchError(t *testing.T) {
	repo := new(MockCategoryRepository)
	dbErr := errors.New("ORA-12541: TNS:no listener")
	repo.On("ListCategories", mock.Anything, 1000).Return(nil, dbErr)

	_, err := NewCatalogService(repo, nil, 0, 1000, nil).Fetch(context.Background())

	var fetchErr *domain.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "category catalog", fetchErr.Resource)
	assert.ErrorIs(t, err, dbErr)
}

func TestCatalogService_UsesCache(t *testing.T) {
	repo := new(MockCategoryRepository)
	repo.On("ListCategories", mock.Anything, 1000).Return(testCatalog, nil).Once()
	c := newMemoryCache()
	svc := NewCatalogService(repo, c, time.Minute, 1000, nil)

	first, err := svc.Fetch(context.Background())
	require.NoError(t, err)
	second, err := svc.Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, testCatalog, first)
	assert.Equal(t, testCatalog, second)
	assert.Equal(t, time.Minute, c.ttls["feedbackbuilder:catalog:categories:all:1000"])
	repo.AssertExpectations(t)
}

func TestCatalogService_CacheFailureFallsBackToRepository(t *testing.T) {
	repo := new(MockCategoryRepository)
	repo.On("ListCategories", mock.Anything, 1000).Return(testCatalog, nil).Twice()
	c := newMemoryCache()
	c.getErr = errors.New("connection refused")
	c.setErr = errors.New("connection refused")
	svc := NewCatalogService(repo, c, time.Minute, 1000, nil)

	for i := 0; i < 2; i++ {
		got, err := svc.Fetch(context.Background())
		require.NoError(t, err)
		assert.Equal(t, testCatalog, got)
	}
	repo.AssertExpectations(t)
}

func TestCatalogService_ReturnsCopy(t *testing.T) {
	repo := new(MockCategoryRepository)
	repo.On("ListCategories", mock.Anything, 1000).Return([]domain.Category{{ID: "c1", Name: "A"}}, nil)
	svc := NewCatalogService(repo, nil, 0, 1000, nil)

	got, err := svc.Fetch(context.Background())
	require.NoError(t, err)
	got[0].Name = "changed"

	again, err := svc.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "A", again[0].Name)
}

func TestCatalogService_LoadReportsFailure(t *testing.T) {
	repo := new(MockCategoryRepository)
	repo.On("ListCategories", mock.Anything, 1000).Return(nil, errors.New("timeout"))
	notifier := &capturingNotifier{}

	got := NewCatalogService(repo, nil, 0, 1000, nil).Load(context.Background(), notifier)

	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Equal(t, []domain.Notification{{Kind: domain.NotifyError, Message: "Failed to load categories"}}, notifier.received)
}

func TestCatalogService_LoadSuccessIsSilent(t *testing.T) {
	repo := new(MockCategoryRepository)
	repo.On("ListCategories", mock.Anything, 1000).Return(testCatalog, nil)
	notifier := &capturingNotifier{}

	got := NewCatalogService(repo, nil, 0, 1000, nil).Load(context.Background(), notifier)

	assert.Equal(t, testCatalog, got)
	assert.Empty(t, notifier.received)
}
