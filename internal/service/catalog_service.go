package service

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"feedback-builder/internal/cache"
	"feedback-builder/internal/domain"
	"feedback-builder/internal/logger"
	"feedback-builder/internal/observability"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const catalogLoadFailedMessage = "Failed to load categories"

// CatalogService provides the list of categories forms can hold questions for.
type CatalogService interface {
	// Fetch returns the catalog or a FetchError.
	Fetch(ctx context.Context) ([]domain.Category, error)

	// Load returns the catalog, or an empty one after reporting the failure to n.
	Load(ctx context.Context, n domain.Notifier) []domain.Category
}

type catalogService struct {
	repo     domain.CategoryRepository
	cache    domain.Cache
	cacheTTL time.Duration
	pageSize int
	metrics  *observability.Metrics
	group    singleflight.Group
}

// NewCatalogService creates a catalog service. A nil cache or a zero cacheTTL
// disables catalog caching.
func NewCatalogService(repo domain.CategoryRepository, c domain.Cache, cacheTTL time.Duration, pageSize int, metrics *observability.Metrics) CatalogService {
	return &catalogService{
		repo:     repo,
		cache:    c,
		cacheTTL: cacheTTL,
		pageSize: pageSize,
		metrics:  metrics,
	}
}

func (s *catalogService) cacheKey() string {
	return cache.GenerateCacheKey("catalog", "categories", "all", strconv.Itoa(s.pageSize))
}

func (s *catalogService) cachingEnabled() bool {
	return s.cache != nil && s.cacheTTL > 0
}

// Fetch implements CatalogService
func (s *catalogService) Fetch(ctx context.Context) ([]domain.Category, error) {
	key := s.cacheKey()

	if s.cachingEnabled() {
		cached, err := s.cache.Get(ctx, key)
		switch {
		case err == nil:
			var categories []domain.Category
			uerr := json.Unmarshal([]byte(cached), &categories)
			if uerr == nil {
				return categories, nil
			}
			logger.Get().Warn("Discarding undecodable cached catalog", zap.String("key", key), zap.Error(uerr))
		case !errors.Is(err, domain.ErrCacheMiss):
			logger.Get().Warn("Catalog cache read failed", zap.String("key", key), zap.Error(err))
		}
	}

	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		// Joined callers share this call, so it must outlive the first caller's request.
		ctx := context.WithoutCancel(ctx)
		categories, err := s.repo.ListCategories(ctx, s.pageSize)
		if err != nil {
			return nil, err
		}
		if categories == nil {
			categories = []domain.Category{}
		}
		if s.cachingEnabled() {
			s.store(ctx, key, categories)
		}
		return categories, nil
	})
	if err != nil {
		s.metrics.CatalogFetchFailed()
		return nil, &domain.FetchError{Resource: "category catalog", Cause: err}
	}

	categories := v.([]domain.Category)
	return append([]domain.Category{}, categories...), nil
}

func (s *catalogService) store(ctx context.Context, key string, categories []domain.Category) {
	data, err := json.Marshal(categories)
	if err != nil {
		logger.Get().Warn("Failed to encode catalog for caching", zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, string(data), s.cacheTTL); err != nil {
		logger.Get().Warn("Failed to cache catalog", zap.String("key", key), zap.Error(err))
	}
}

// Load implements CatalogService
func (s *catalogService) Load(ctx context.Context, n domain.Notifier) []domain.Category {
	categories, err := s.Fetch(ctx)
	if err != nil {
		logger.Get().Error("Category catalog unavailable", zap.Error(err))
		if n != nil {
			n.Notify(ctx, domain.NotifyError, catalogLoadFailedMessage)
		}
		return []domain.Category{}
	}
	return categories
}
