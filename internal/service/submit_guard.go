package service

import (
	"context"
	"time"

	"feedback-builder/internal/cache"
	"feedback-builder/internal/domain"
	"feedback-builder/internal/logger"
	"feedback-builder/internal/util"

	"go.uber.org/zap"
)

// SubmitGuard allows at most one submit per session at a time.
type SubmitGuard interface {
	// Acquire takes the submit lock for sessionID. It fails with a
	// SUBMIT_IN_PROGRESS DomainError while another submit holds it.
	Acquire(ctx context.Context, sessionID string) (release func(), err error)
}

type cacheSubmitGuard struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewSubmitGuard creates a guard whose locks expire after ttl even if never released.
func NewSubmitGuard(c domain.Cache, ttl time.Duration) SubmitGuard {
	return &cacheSubmitGuard{cache: c, ttl: ttl}
}

func submitLockKey(sessionID string) string {
	return cache.GenerateCacheKey("builder", "submit_lock", sessionID)
}

// Acquire implements SubmitGuard
func (g *cacheSubmitGuard) Acquire(ctx context.Context, sessionID string) (func(), error) {
	key := submitLockKey(sessionID)
	token := util.NewULID()
	ok, err := g.cache.SetNX(ctx, key, token, g.ttl)
	if err != nil {
		return nil, domain.NewInternalError("failed to acquire submit lock", err)
	}
	if !ok {
		return nil, domain.NewSubmitInProgressError(sessionID)
	}

	release := func() {
		// The request context may already be done when the lock is released.
		// After expiry the key may belong to a later submit; only our token is removed.
		released, err := g.cache.DeleteIfEquals(context.WithoutCancel(ctx), key, token)
		if err != nil {
			logger.Get().Warn("Failed to release submit lock", zap.String("sessionID", sessionID), zap.Error(err))
			return
		}
		if !released {
			logger.Get().Warn("Submit lock expired before release", zap.String("sessionID", sessionID))
		}
	}
	return release, nil
}
