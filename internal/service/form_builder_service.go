package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"feedback-builder/internal/domain"
	"feedback-builder/internal/logger"
	"feedback-builder/internal/observability"
	"feedback-builder/internal/util"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	formLoadFailedMessage    = "Failed to load feedback form"
	formCreatedMessage       = "Feedback form created successfully"
	formUpdatedMessage       = "Feedback form updated successfully"
	formCreateFailedMessage  = "Failed to create feedback form"
	formUpdateFailedMessage  = "Failed to update feedback form"
	formValidationMessageFmt = "Cannot save feedback form: %s"
)

// SubmitResult is returned after a form was persisted.
type SubmitResult struct {
	FormID  string
	Mode    domain.BuilderMode
	Notices []domain.Notification
}

// FormBuilderService drives builder sessions: it opens a draft for a new or
// stored form, applies edits to it and finally persists it.
type FormBuilderService interface {
	// OpenSession starts a create session when formID is empty and an edit
	// session for the stored form otherwise.
	OpenSession(ctx context.Context, formID string) (*domain.BuilderSession, error)
	GetSession(ctx context.Context, sessionID string) (*domain.BuilderSession, error)
	DiscardSession(ctx context.Context, sessionID string) error

	UpdateDetails(ctx context.Context, sessionID string, update domain.DetailsUpdate) (*domain.BuilderSession, error)
	// ApplySelection replaces the selected categories. When the change would
	// discard drafted questions and confirmDiscard is false, it fails with a
	// CONFIRMATION_REQUIRED error and leaves the session untouched.
	ApplySelection(ctx context.Context, sessionID string, categoryIDs []string, confirmDiscard bool) (*domain.BuilderSession, error)

	AddQuestion(ctx context.Context, sessionID, categoryID string) (*domain.BuilderSession, error)
	RemoveQuestion(ctx context.Context, sessionID, categoryID string, index int) (*domain.BuilderSession, error)
	SetQuestionField(ctx context.Context, sessionID, categoryID string, index int, field domain.QuestionField, value string) (*domain.BuilderSession, error)
	AddOption(ctx context.Context, sessionID, categoryID string, questionIndex int) (*domain.BuilderSession, error)
	SetOption(ctx context.Context, sessionID, categoryID string, questionIndex, optionIndex int, value string) (*domain.BuilderSession, error)
	RemoveOption(ctx context.Context, sessionID, categoryID string, questionIndex, optionIndex int) (*domain.BuilderSession, error)

	// Submit validates and persists the draft. The session is removed on
	// success and kept, with the failure notice, otherwise.
	Submit(ctx context.Context, sessionID string) (*SubmitResult, error)
}

type formBuilderService struct {
	catalog  CatalogService
	forms    domain.FeedbackFormRepository
	sessions DraftSessionStore
	guard    SubmitGuard
	notifier domain.Notifier
	metrics  *observability.Metrics
	now      func() time.Time
}

// NewFormBuilderService creates a new instance of formBuilderService
func NewFormBuilderService(
	catalog CatalogService,
	forms domain.FeedbackFormRepository,
	sessions DraftSessionStore,
	guard SubmitGuard,
	notifier domain.Notifier,
	metrics *observability.Metrics,
) FormBuilderService {
	if notifier == nil {
		notifier = NewLogNotifier()
	}
	return &formBuilderService{
		catalog:  catalog,
		forms:    forms,
		sessions: sessions,
		guard:    guard,
		notifier: notifier,
		metrics:  metrics,
		now:      time.Now,
	}
}

// OpenSession implements FormBuilderService
func (s *formBuilderService) OpenSession(ctx context.Context, formID string) (*domain.BuilderSession, error) {
	formID = strings.TrimSpace(formID)
	rec := newNoticeRecorder(s.notifier)

	var (
		catalog []domain.Category
		form    *domain.FeedbackForm
		g       errgroup.Group
	)
	g.Go(func() error {
		catalog = s.catalog.Load(ctx, rec)
		return nil
	})
	if formID != "" {
		g.Go(func() error {
			f, err := s.forms.GetForm(ctx, formID)
			if err != nil {
				return err
			}
			form = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Get().Error("Failed to load feedback form for editing", zap.String("formID", formID), zap.Error(err))
		rec.Notify(ctx, domain.NotifyError, formLoadFailedMessage)
		return nil, &domain.FetchError{Resource: fmt.Sprintf("feedback form %s", formID), Cause: err}
	}
	if formID != "" && form == nil {
		rec.Notify(ctx, domain.NotifyError, formLoadFailedMessage)
		return nil, domain.NewNotFoundError(fmt.Sprintf("feedback form not found with ID: %s", formID))
	}

	now := s.now().UTC()
	session := &domain.BuilderSession{
		ID:        util.NewULID(),
		Mode:      domain.ModeCreate,
		Draft:     domain.NewDraft(),
		Catalog:   catalog,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if form != nil {
		session.Mode = domain.ModeEdit
		session.FormID = form.ID
		session.Draft = domain.HydrateDraft(form.PersistedForm)
	}
	session.Notices = rec.Notices()

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	s.metrics.SessionOpened(string(session.Mode))
	logger.Get().Info("Builder session opened",
		zap.String("sessionID", session.ID),
		zap.String("mode", string(session.Mode)),
		zap.String("formID", session.FormID),
		zap.Int("catalogSize", len(catalog)))
	return session, nil
}

// GetSession implements FormBuilderService
func (s *formBuilderService) GetSession(ctx context.Context, sessionID string) (*domain.BuilderSession, error) {
	return s.sessions.Get(ctx, sessionID)
}

// DiscardSession implements FormBuilderService
func (s *formBuilderService) DiscardSession(ctx context.Context, sessionID string) error {
	if _, err := s.sessions.Get(ctx, sessionID); err != nil {
		return err
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return err
	}
	logger.Get().Info("Builder session discarded", zap.String("sessionID", sessionID))
	return nil
}

// edit applies fn to the session's draft and stores the result. Notices
// from earlier operations are cleared. When fn fails nothing is stored.
func (s *formBuilderService) edit(ctx context.Context, sessionID string, fn func(domain.FormDraft) (domain.FormDraft, error)) (*domain.BuilderSession, error) {
	return s.sessions.Update(ctx, sessionID, func(session *domain.BuilderSession) error {
		draft, err := fn(session.Draft)
		if err != nil {
			return err
		}
		session.Draft = draft
		session.Notices = nil
		session.UpdatedAt = s.now().UTC()
		return nil
	})
}

// UpdateDetails implements FormBuilderService
func (s *formBuilderService) UpdateDetails(ctx context.Context, sessionID string, update domain.DetailsUpdate) (*domain.BuilderSession, error) {
	return s.edit(ctx, sessionID, func(d domain.FormDraft) (domain.FormDraft, error) {
		return d.ApplyDetails(update)
	})
}

// ApplySelection implements FormBuilderService
func (s *formBuilderService) ApplySelection(ctx context.Context, sessionID string, categoryIDs []string, confirmDiscard bool) (*domain.BuilderSession, error) {
	next := domain.NewSelectionSet(categoryIDs...)
	var removed []string
	session, err := s.sessions.Update(ctx, sessionID, func(session *domain.BuilderSession) error {
		if unknown := domain.UnknownCategories(session.Catalog, session.Draft.Selection, categoryIDs); len(unknown) > 0 {
			return domain.NewValidationError("category_ids", fmt.Sprintf("unknown categories: %s", strings.Join(unknown, ", ")))
		}
		if discarded := domain.DiscardedQuestions(session.Draft, next); len(discarded) > 0 && !confirmDiscard {
			return domain.NewConfirmationRequiredError(discarded)
		}

		var selection domain.SelectionSet
		var questions domain.CategoryQuestionMap
		selection, questions, removed = domain.Reconcile(session.Draft.Selection, session.Draft.QuestionsByCategory, next)
		session.Draft.Selection = selection
		session.Draft.QuestionsByCategory = questions
		session.Notices = nil
		session.UpdatedAt = s.now().UTC()
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(removed) > 0 {
		s.metrics.CategoriesDiscarded(len(removed))
		logger.Get().Info("Categories deselected",
			zap.String("sessionID", sessionID),
			zap.Strings("categoryIDs", removed))
	}
	return session, nil
}

// AddQuestion implements FormBuilderService
func (s *formBuilderService) AddQuestion(ctx context.Context, sessionID, categoryID string) (*domain.BuilderSession, error) {
	if strings.TrimSpace(categoryID) == "" {
		return nil, domain.NewMissingFieldError("category_id")
	}
	return s.edit(ctx, sessionID, func(d domain.FormDraft) (domain.FormDraft, error) {
		return d.AddQuestion(categoryID), nil
	})
}

// RemoveQuestion implements FormBuilderService
func (s *formBuilderService) RemoveQuestion(ctx context.Context, sessionID, categoryID string, index int) (*domain.BuilderSession, error) {
	return s.edit(ctx, sessionID, func(d domain.FormDraft) (domain.FormDraft, error) {
		return d.RemoveQuestion(categoryID, index), nil
	})
}

// SetQuestionField implements FormBuilderService
func (s *formBuilderService) SetQuestionField(ctx context.Context, sessionID, categoryID string, index int, field domain.QuestionField, value string) (*domain.BuilderSession, error) {
	return s.edit(ctx, sessionID, func(d domain.FormDraft) (domain.FormDraft, error) {
		return d.SetQuestionField(categoryID, index, field, value)
	})
}

// AddOption implements FormBuilderService
func (s *formBuilderService) AddOption(ctx context.Context, sessionID, categoryID string, questionIndex int) (*domain.BuilderSession, error) {
	return s.edit(ctx, sessionID, func(d domain.FormDraft) (domain.FormDraft, error) {
		return d.AddOption(categoryID, questionIndex), nil
	})
}

// SetOption implements FormBuilderService
func (s *formBuilderService) SetOption(ctx context.Context, sessionID, categoryID string, questionIndex, optionIndex int, value string) (*domain.BuilderSession, error) {
	return s.edit(ctx, sessionID, func(d domain.FormDraft) (domain.FormDraft, error) {
		return d.SetOption(categoryID, questionIndex, optionIndex, value), nil
	})
}

// RemoveOption implements FormBuilderService
func (s *formBuilderService) RemoveOption(ctx context.Context, sessionID, categoryID string, questionIndex, optionIndex int) (*domain.BuilderSession, error) {
	return s.edit(ctx, sessionID, func(d domain.FormDraft) (domain.FormDraft, error) {
		return d.RemoveOption(categoryID, questionIndex, optionIndex), nil
	})
}

// Submit implements FormBuilderService
func (s *formBuilderService) Submit(ctx context.Context, sessionID string) (*SubmitResult, error) {
	release, err := s.guard.Acquire(ctx, sessionID)
	if err != nil {
		s.metrics.Submission(observability.OutcomeContention)
		return nil, err
	}
	defer release()

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	rec := newNoticeRecorder(s.notifier)
	payload, err := domain.Serialize(session.Draft)
	if err != nil {
		s.metrics.Submission(observability.OutcomeInvalid)
		rec.Notify(ctx, domain.NotifyError, fmt.Sprintf(formValidationMessageFmt, err.Error()))
		s.keepWithNotices(ctx, session, rec)
		return nil, err
	}

	formID := session.FormID
	switch session.Mode {
	case domain.ModeEdit:
		err = s.forms.UpdateForm(ctx, formID, payload)
		if err != nil {
			return nil, s.persistFailed(ctx, session, rec, "update", formUpdateFailedMessage, err)
		}
		s.metrics.Submission(observability.OutcomeUpdated)
		rec.Notify(ctx, domain.NotifySuccess, formUpdatedMessage)
	default:
		formID, err = s.forms.CreateForm(ctx, payload)
		if err != nil {
			return nil, s.persistFailed(ctx, session, rec, "create", formCreateFailedMessage, err)
		}
		s.metrics.Submission(observability.OutcomeCreated)
		rec.Notify(ctx, domain.NotifySuccess, formCreatedMessage)
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		// The form is saved; a leftover session only expires later.
		logger.Get().Warn("Failed to remove submitted builder session", zap.String("sessionID", sessionID), zap.Error(err))
	}
	logger.Get().Info("Feedback form submitted",
		zap.String("sessionID", sessionID),
		zap.String("mode", string(session.Mode)),
		zap.String("formID", formID))

	return &SubmitResult{FormID: formID, Mode: session.Mode, Notices: rec.Notices()}, nil
}

func (s *formBuilderService) persistFailed(ctx context.Context, session *domain.BuilderSession, rec *noticeRecorder, op, message string, cause error) error {
	s.metrics.Submission(observability.OutcomeFailed)
	logger.Get().Error("Failed to persist feedback form",
		zap.String("sessionID", session.ID),
		zap.String("op", op),
		zap.String("formID", session.FormID),
		zap.Error(cause))
	rec.Notify(ctx, domain.NotifyError, message)
	s.keepWithNotices(ctx, session, rec)
	return &domain.PersistError{Op: op, Cause: cause}
}

// keepWithNotices attaches the failure notices to the stored session and leaves its draft alone.
func (s *formBuilderService) keepWithNotices(ctx context.Context, session *domain.BuilderSession, rec *noticeRecorder) {
	notices := rec.Notices()
	stored, err := s.sessions.Update(ctx, session.ID, func(current *domain.BuilderSession) error {
		current.Notices = notices
		current.UpdatedAt = s.now().UTC()
		return nil
	})
	if err != nil {
		logger.Get().Warn("Failed to store notices on builder session", zap.String("sessionID", session.ID), zap.Error(err))
		return
	}
	*session = *stored
}
