package handler_test

import (
	"context"

	"feedback-builder/internal/domain"
	"feedback-builder/internal/service"
)

// --- Manual Mocks ---

// MockCatalogService
type MockCatalogService struct {
	FetchFunc func(ctx context.Context) ([]domain.Category, error)
}

func (m *MockCatalogService) Fetch(ctx context.Context) ([]domain.Category, error) {
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx)
	}
	panic("MockCatalogService.FetchFunc not implemented")
}

func (m *MockCatalogService) Load(ctx context.Context, n domain.Notifier) []domain.Category {
	categories, err := m.Fetch(ctx)
	if err != nil {
		return []domain.Category{}
	}
	return categories
}

// MockFeedbackFormService
type MockFeedbackFormService struct {
	GetFormFunc    func(ctx context.Context, id string) (*domain.FeedbackForm, error)
	CreateFormFunc func(ctx context.Context, form domain.PersistedForm) (string, error)
	UpdateFormFunc func(ctx context.Context, id string, form domain.PersistedForm) error
}

func (m *MockFeedbackFormService) GetForm(ctx context.Context, id string) (*domain.FeedbackForm, error) {
	if m.GetFormFunc != nil {
		return m.GetFormFunc(ctx, id)
	}
	panic("MockFeedbackFormService.GetFormFunc not implemented")
}

func (m *MockFeedbackFormService) CreateForm(ctx context.Context, form domain.PersistedForm) (string, error) {
	if m.CreateFormFunc != nil {
		return m.CreateFormFunc(ctx, form)
	}
	panic("MockFeedbackFormService.CreateFormFunc not implemented")
}

func (m *MockFeedbackFormService) UpdateForm(ctx context.Context, id string, form domain.PersistedForm) error {
	if m.UpdateFormFunc != nil {
		return m.UpdateFormFunc(ctx, id, form)
	}
	panic("MockFeedbackFormService.UpdateFormFunc not implemented")
}

// MockFormBuilderService
type MockFormBuilderService struct {
	OpenSessionFunc      func(ctx context.Context, formID string) (*domain.BuilderSession, error)
	GetSessionFunc       func(ctx context.Context, sessionID string) (*domain.BuilderSession, error)
	DiscardSessionFunc   func(ctx context.Context, sessionID string) error
	UpdateDetailsFunc    func(ctx context.Context, sessionID string, update domain.DetailsUpdate) (*domain.BuilderSession, error)
	ApplySelectionFunc   func(ctx context.Context, sessionID string, categoryIDs []string, confirmDiscard bool) (*domain.BuilderSession, error)
	AddQuestionFunc      func(ctx context.Context, sessionID, categoryID string) (*domain.BuilderSession, error)
	RemoveQuestionFunc   func(ctx context.Context, sessionID, categoryID string, index int) (*domain.BuilderSession, error)
	SetQuestionFieldFunc func(ctx context.Context, sessionID, categoryID string, index int, field domain.QuestionField, value string) (*domain.BuilderSession, error)
	AddOptionFunc        func(ctx context.Context, sessionID, categoryID string, questionIndex int) (*domain.BuilderSession, error)
	SetOptionFunc        func(ctx context.Context, sessionID, categoryID string, questionIndex, optionIndex int, value string) (*domain.BuilderSession, error)
	RemoveOptionFunc     func(ctx context.Context, sessionID, categoryID string, questionIndex, optionIndex int) (*domain.BuilderSession, error)
	SubmitFunc           func(ctx context.Context, sessionID string) (*service.SubmitResult, error)
}

func (m *MockFormBuilderService) OpenSession(ctx context.Context, formID string) (*domain.BuilderSession, error) {
	if m.OpenSessionFunc != nil {
		return m.OpenSessionFunc(ctx, formID)
	}
	panic("MockFormBuilderService.OpenSessionFunc not implemented")
}

func (m *MockFormBuilderService) GetSession(ctx context.Context, sessionID string) (*domain.BuilderSession, error) {
	if m.GetSessionFunc != nil {
		return m.GetSessionFunc(ctx, sessionID)
	}
	panic("MockFormBuilderService.GetSessionFunc not implemented")
}

func (m *MockFormBuilderService) DiscardSession(ctx context.Context, sessionID string) error {
	if m.DiscardSessionFunc != nil {
		return m.DiscardSessionFunc(ctx, sessionID)
	}
	panic("MockFormBuilderService.DiscardSessionFunc not implemented")
}

func (m *MockFormBuilderService) UpdateDetails(ctx context.Context, sessionID string, update domain.DetailsUpdate) (*domain.BuilderSession, error) {
	if m.UpdateDetailsFunc != nil {
		return m.UpdateDetailsFunc(ctx, sessionID, update)
	}
	panic("MockFormBuilderService.UpdateDetailsFunc not implemented")
}

func (m *MockFormBuilderService) ApplySelection(ctx context.Context, sessionID string, categoryIDs []string, confirmDiscard bool) (*domain.BuilderSession, error) {
	if m.ApplySelectionFunc != nil {
		return m.ApplySelectionFunc(ctx, sessionID, categoryIDs, confirmDiscard)
	}
	panic("MockFormBuilderService.ApplySelectionFunc not implemented")
}

func (m *MockFormBuilderService) AddQuestion(ctx context.Context, sessionID, categoryID string) (*domain.BuilderSession, error) {
	if m.AddQuestionFunc != nil {
		return m.AddQuestionFunc(ctx, sessionID, categoryID)
	}
	panic("MockFormBuilderService.AddQuestionFunc not implemented")
}

func (m *MockFormBuilderService) RemoveQuestion(ctx context.Context, sessionID, categoryID string, index int) (*domain.BuilderSession, error) {
	if m.RemoveQuestionFunc != nil {
		return m.RemoveQuestionFunc(ctx, sessionID, categoryID, index)
	}
	panic("MockFormBuilderService.RemoveQuestionFunc not implemented")
}

func (m *MockFormBuilderService) SetQuestionField(ctx context.Context, sessionID, categoryID string, index int, field domain.QuestionField, value string) (*domain.BuilderSession, error) {
	if m.SetQuestionFieldFunc != nil {
		return m.SetQuestionFieldFunc(ctx, sessionID, categoryID, index, field, value)
	}
	panic("MockFormBuilderService.SetQuestionFieldFunc not implemented")
}

func (m *MockFormBuilderService) AddOption(ctx context.Context, sessionID, categoryID string, questionIndex int) (*domain.BuilderSession, error) {
	if m.AddOptionFunc != nil {
		return m.AddOptionFunc(ctx, sessionID, categoryID, questionIndex)
	}
	panic("MockFormBuilderService.AddOptionFunc not implemented")
}

func (m *MockFormBuilderService) SetOption(ctx context.Context, sessionID, categoryID string, questionIndex, optionIndex int, value string) (*domain.BuilderSession, error) {
	if m.SetOptionFunc != nil {
		return m.SetOptionFunc(ctx, sessionID, categoryID, questionIndex, optionIndex, value)
	}
	panic("MockFormBuilderService.SetOptionFunc not implemented")
}

func (m *MockFormBuilderService) RemoveOption(ctx context.Context, sessionID, categoryID string, questionIndex, optionIndex int) (*domain.BuilderSession, error) {
	if m.RemoveOptionFunc != nil {
		return m.RemoveOptionFunc(ctx, sessionID, categoryID, questionIndex, optionIndex)
	}
	panic("MockFormBuilderService.RemoveOptionFunc not implemented")
}

func (m *MockFormBuilderService) Submit(ctx context.Context, sessionID string) (*service.SubmitResult, error) {
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, sessionID)
	}
	panic("MockFormBuilderService.SubmitFunc not implemented")
}
