package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"feedback-builder/internal/cache"
	"feedback-builder/internal/domain"
	"feedback-builder/internal/logger"

	"go.uber.org/zap"
)

// DraftSessionStore keeps builder sessions between requests.
type DraftSessionStore interface {
	// Get returns the session or a NotFound DomainError once it is gone or expired.
	Get(ctx context.Context, id string) (*domain.BuilderSession, error)
	Save(ctx context.Context, session *domain.BuilderSession) error
	// Update applies fn to the stored session and writes it back only if no
	// other write happened in between. On such a race fn is re-run against the
	// fresh session, up to maxSessionUpdateAttempts times. An error from fn
	// leaves the session untouched.
	Update(ctx context.Context, id string, fn func(*domain.BuilderSession) error) (*domain.BuilderSession, error)
	Delete(ctx context.Context, id string) error
}

const maxSessionUpdateAttempts = 3

type draftSessionStore struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewDraftSessionStore creates a session store on top of c. Every save
// refreshes the session's time to live.
func NewDraftSessionStore(c domain.Cache, ttl time.Duration) DraftSessionStore {
	return &draftSessionStore{cache: c, ttl: ttl}
}

func sessionKey(id string) string {
	return cache.GenerateCacheKey("builder", "session", id)
}

// Get implements DraftSessionStore
func (s *draftSessionStore) Get(ctx context.Context, id string) (*domain.BuilderSession, error) {
	session, _, err := s.load(ctx, id)
	return session, err
}

// load returns the decoded session together with the raw value it was decoded from.
func (s *draftSessionStore) load(ctx context.Context, id string) (*domain.BuilderSession, string, error) {
	data, err := s.cache.Get(ctx, sessionKey(id))
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, "", domain.NewNotFoundError(fmt.Sprintf("builder session not found with ID: %s", id))
		}
		return nil, "", domain.NewInternalError("failed to read builder session", err)
	}

	var session domain.BuilderSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		logger.Get().Error("Undecodable builder session", zap.String("sessionID", id), zap.Error(err))
		return nil, "", domain.NewInternalError("failed to decode builder session", err)
	}
	return &session, data, nil
}

// Update implements DraftSessionStore
func (s *draftSessionStore) Update(ctx context.Context, id string, fn func(*domain.BuilderSession) error) (*domain.BuilderSession, error) {
	for attempt := 1; attempt <= maxSessionUpdateAttempts; attempt++ {
		session, old, err := s.load(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := fn(session); err != nil {
			return nil, err
		}
		session.ID = id
		session.Version++

		data, err := json.Marshal(session)
		if err != nil {
			return nil, domain.NewInternalError("failed to encode builder session", err)
		}
		swapped, err := s.cache.CompareAndSwap(ctx, sessionKey(id), old, string(data), s.ttl)
		if err != nil {
			return nil, domain.NewInternalError("failed to store builder session", err)
		}
		if swapped {
			return session, nil
		}
		logger.Get().Debug("Builder session changed concurrently, retrying",
			zap.String("sessionID", id), zap.Int("attempt", attempt))
	}
	return nil, domain.NewSessionConflictError(id)
}

// Save implements DraftSessionStore
func (s *draftSessionStore) Save(ctx context.Context, session *domain.BuilderSession) error {
	if session == nil || session.ID == "" {
		return domain.NewInvalidInputError("builder session must have an id")
	}
	data, err := json.Marshal(session)
	if err != nil {
		return domain.NewInternalError("failed to encode builder session", err)
	}
	if err := s.cache.Set(ctx, sessionKey(session.ID), string(data), s.ttl); err != nil {
		return domain.NewInternalError("failed to store builder session", err)
	}
	return nil
}

// Delete implements DraftSessionStore
func (s *draftSessionStore) Delete(ctx context.Context, id string) error {
	if err := s.cache.Delete(ctx, sessionKey(id)); err != nil {
		return domain.NewInternalError("failed to delete builder session", err)
	}
	return nil
}
