package service

import (
	"context"
	"sync"

	"feedback-builder/internal/domain"
	"feedback-builder/internal/logger"

	"go.uber.org/zap"
)

// LogNotifier writes operator notifications to the application log.
type LogNotifier struct{}

// NewLogNotifier creates a notifier backed by the global logger.
func NewLogNotifier() domain.Notifier {
	return LogNotifier{}
}

// Notify implements domain.Notifier
func (LogNotifier) Notify(_ context.Context, kind domain.NotificationKind, message string) {
	if kind == domain.NotifyError {
		logger.Get().Warn("Operator notification", zap.String("kind", string(kind)), zap.String("message", message))
		return
	}
	logger.Get().Info("Operator notification", zap.String("kind", string(kind)), zap.String("message", message))
}

// noticeRecorder keeps the notifications raised during one builder operation
// so they can be returned with the session, and forwards each to next.
type noticeRecorder struct {
	next domain.Notifier

	mu      sync.Mutex
	notices []domain.Notification
}

func newNoticeRecorder(next domain.Notifier) *noticeRecorder {
	return &noticeRecorder{next: next}
}

func (r *noticeRecorder) Notify(ctx context.Context, kind domain.NotificationKind, message string) {
	r.mu.Lock()
	r.notices = append(r.notices, domain.Notification{Kind: kind, Message: message})
	r.mu.Unlock()
	if r.next != nil {
		r.next.Notify(ctx, kind, message)
	}
}

func (r *noticeRecorder) Notices() []domain.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Notification(nil), r.notices...)
}
