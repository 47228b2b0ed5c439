package service

import (
	"context"
	"sync"
	"time"

	"feedback-builder/internal/domain"

	"github.com/stretchr/testify/mock"
)

// memoryCache is an in-process domain.Cache for service tests. Expiration is recorded, not enforced.
type memoryCache struct {
	mu   sync.Mutex
	data map[string]string
	ttls map[string]time.Duration

	getErr error
	setErr error

	// beforeSwap runs at the start of every CompareAndSwap, outside the lock.
	beforeSwap func()
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (c *memoryCache) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return "", c.getErr
	}
	v, ok := c.data[key]
	if !ok {
		return "", domain.ErrCacheMiss
	}
	return v, nil
}

func (c *memoryCache) Set(_ context.Context, key string, value string, expiration time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.setErr != nil {
		return c.setErr
	}
	c.data[key] = value
	c.ttls[key] = expiration
	return nil
}

func (c *memoryCache) SetNX(_ context.Context, key string, value string, expiration time.Duration) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.data[key]; ok {
		return false, nil
	}
	c.data[key] = value
	c.ttls[key] = expiration
	return true, nil
}

func (c *memoryCache) CompareAndSwap(_ context.Context, key string, old string, value string, expiration time.Duration) (bool, error) {
	if c.beforeSwap != nil {
		c.beforeSwap()
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.setErr != nil {
		return false, c.setErr
	}
	if v, ok := c.data[key]; !ok || v != old {
		return false, nil
	}
	c.data[key] = value
	c.ttls[key] = expiration
	return true, nil
}

func (c *memoryCache) DeleteIfEquals(_ context.Context, key string, value string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.data[key]; !ok || v != value {
		return false, nil
	}
	delete(c.data, key)
	delete(c.ttls, key)
	return true, nil
}

func (c *memoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	delete(c.ttls, key)
	return nil
}

func (c *memoryCache) Ping(context.Context) error { return nil }

func (c *memoryCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.data[key]
	return ok
}

// --- MockCategoryRepository ---
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context, limit int) ([]domain.Category, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

// --- MockFeedbackFormRepository ---
type MockFeedbackFormRepository struct {
	mock.Mock
}

func (m *MockFeedbackFormRepository) GetForm(ctx context.Context, id string) (*domain.FeedbackForm, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FeedbackForm), args.Error(1)
}

func (m *MockFeedbackFormRepository) CreateForm(ctx context.Context, form domain.PersistedForm) (string, error) {
	args := m.Called(ctx, form)
	return args.String(0), args.Error(1)
}

func (m *MockFeedbackFormRepository) UpdateForm(ctx context.Context, id string, form domain.PersistedForm) error {
	args := m.Called(ctx, id, form)
	return args.Error(0)
}
