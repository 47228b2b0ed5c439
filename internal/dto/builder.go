package dto

import (
	"time"

	"feedback-builder/internal/domain"
)

// OpenSessionRequest starts a builder session. An empty form_id opens a create session.
type OpenSessionRequest struct {
	FormID string `json:"form_id" validate:"omitempty,max=64"`
}

// UpdateDetailsRequest changes the form-level fields. Absent fields are left alone.
type UpdateDetailsRequest struct {
	Title      *string `json:"title" validate:"omitempty,max=500"`
	CourseType *string `json:"course_type" validate:"omitempty,course_type"`
	Active     *bool   `json:"active"`
}

func (r UpdateDetailsRequest) ToDomain() domain.DetailsUpdate {
	update := domain.DetailsUpdate{Title: r.Title, Active: r.Active}
	if r.CourseType != nil {
		ct := domain.CourseType(*r.CourseType)
		update.CourseType = &ct
	}
	return update
}

// SelectionRequest replaces the selected categories. An empty list clears the selection.
type SelectionRequest struct {
	CategoryIDs    []string `json:"category_ids" validate:"required,dive,required,max=64"`
	ConfirmDiscard bool     `json:"confirm_discard"`
}

// SetQuestionFieldRequest sets the text or the format of a question
type SetQuestionFieldRequest struct {
	Field string  `json:"field" validate:"required,oneof=text format"`
	Value *string `json:"value" validate:"required,max=2000"`
}

// SetOptionRequest sets the label of a choice option
type SetOptionRequest struct {
	Value *string `json:"value" validate:"required,max=500"`
}

// QuestionResponse is a drafted question
type QuestionResponse struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Format  string   `json:"format"`
	Options []string `json:"options"`
}

// DraftResponse is the current draft of a builder session
type DraftResponse struct {
	Title               string                        `json:"title"`
	CourseType          string                        `json:"course_type"`
	Active              bool                          `json:"active"`
	SelectedCategoryIDs []string                      `json:"selected_category_ids"`
	QuestionsByCategory map[string][]QuestionResponse `json:"questions_by_category"`
}

// NoticeResponse is an operator notification raised by the last operation
type NoticeResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// SessionResponse represents a builder session in the API response
type SessionResponse struct {
	ID        string             `json:"id"`
	Version   int64              `json:"version"`
	Mode      string             `json:"mode"`
	FormID    string             `json:"form_id,omitempty"`
	Draft     DraftResponse      `json:"draft"`
	Catalog   []CategoryResponse `json:"catalog"`
	Notices   []NoticeResponse   `json:"notices"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// SubmitResponse is returned after a draft was persisted
type SubmitResponse struct {
	FormID  string           `json:"form_id"`
	Mode    string           `json:"mode"`
	Notices []NoticeResponse `json:"notices"`
}

func NewNoticeResponses(notices []domain.Notification) []NoticeResponse {
	out := make([]NoticeResponse, 0, len(notices))
	for _, n := range notices {
		out = append(out, NoticeResponse{Kind: string(n.Kind), Message: n.Message})
	}
	return out
}

func NewCategoryResponses(categories []domain.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategoryResponse{ID: c.ID, Name: c.Name})
	}
	return out
}

// NewSessionResponse builds the response body for a builder session.
func NewSessionResponse(s *domain.BuilderSession) SessionResponse {
	questions := make(map[string][]QuestionResponse, len(s.Draft.QuestionsByCategory))
	for categoryID, list := range s.Draft.QuestionsByCategory {
		out := make([]QuestionResponse, 0, len(list))
		for _, q := range list {
			options := append([]string{}, q.Options...)
			out = append(out, QuestionResponse{ID: q.ID, Text: q.Text, Format: string(q.Format), Options: options})
		}
		questions[categoryID] = out
	}

	return SessionResponse{
		ID:      s.ID,
		Version: s.Version,
		Mode:    string(s.Mode),
		FormID:  s.FormID,
		Draft: DraftResponse{
			Title:               s.Draft.Title,
			CourseType:          string(s.Draft.CourseType),
			Active:              s.Draft.Active,
			SelectedCategoryIDs: s.Draft.Selection.IDs(),
			QuestionsByCategory: questions,
		},
		Catalog:   NewCategoryResponses(s.Catalog),
		Notices:   NewNoticeResponses(s.Notices),
		UpdatedAt: s.UpdatedAt,
	}
}
