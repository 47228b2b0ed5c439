package domain

import "context"

// CategoryRepository is the category catalog service.
type CategoryRepository interface {
	// ListCategories returns at most limit categories in catalog order.
	ListCategories(ctx context.Context, limit int) ([]Category, error)

	// SaveCategory persists a new category and assigns its ID.
	SaveCategory(ctx context.Context, category *Category) error
}

// FeedbackFormRepository is the form persistence service.
type FeedbackFormRepository interface {
	// GetForm returns the stored form or a NotFound DomainError.
	GetForm(ctx context.Context, id string) (*FeedbackForm, error)

	// CreateForm stores a new form and returns its id.
	CreateForm(ctx context.Context, form PersistedForm) (string, error)

	// UpdateForm replaces an existing form.
	UpdateForm(ctx context.Context, id string, form PersistedForm) error
}

// NotificationKind is the severity of an operator-facing notification.
type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
)

// Notification is a toast shown to the operator.
type Notification struct {
	Kind    NotificationKind `json:"kind"`
	Message string           `json:"message"`
}

// Notifier is a fire-and-forget reporting channel. Callers never depend on delivery.
type Notifier interface {
	Notify(ctx context.Context, kind NotificationKind, message string)
}

// TransactionManager runs fn in a single database transaction carried by ctx.
// Repositories called with that ctx join the transaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
