package dto

import "feedback-builder/internal/domain"

// CategoryResponse represents a catalog entry in the API response
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CategoriesResponse wraps the category catalog
type CategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// QuestionRequest is one question of a stored form
type QuestionRequest struct {
	ID      string   `json:"id" validate:"required,notblank,max=64"`
	Text    string   `json:"text" validate:"max=2000"`
	Format  string   `json:"format" validate:"required,response_format"`
	Options []string `json:"options" validate:"max=100,dive,max=500"`
}

// CategoryQuestionsRequest is the per-category envelope of a stored form
type CategoryQuestionsRequest struct {
	Questions []QuestionRequest `json:"questions" validate:"required,dive"`
}

// FeedbackFormRequest is the body of POST and PUT /api/feedback-forms
type FeedbackFormRequest struct {
	Title        string                              `json:"title" validate:"required,notblank,max=500"`
	TypeOfCourse string                              `json:"type_of_course" validate:"required,course_type"`
	Status       *int                                `json:"status" validate:"required,oneof=0 1"`
	Questions    map[string]CategoryQuestionsRequest `json:"questions" validate:"required,dive,keys,required,max=64,endkeys,required"`
}

// ToDomain converts the request into the persisted form shape.
func (r FeedbackFormRequest) ToDomain() domain.PersistedForm {
	form := domain.PersistedForm{
		Title:        r.Title,
		TypeOfCourse: domain.CourseType(r.TypeOfCourse),
		Questions:    make(map[string]domain.CategoryQuestions, len(r.Questions)),
	}
	if r.Status != nil {
		form.Status = *r.Status
	}
	for categoryID, envelope := range r.Questions {
		questions := make([]domain.QuestionDraft, 0, len(envelope.Questions))
		for _, q := range envelope.Questions {
			options := q.Options
			if options == nil {
				options = []string{}
			}
			questions = append(questions, domain.QuestionDraft{
				ID:      q.ID,
				Text:    q.Text,
				Format:  domain.ResponseFormat(q.Format),
				Options: options,
			})
		}
		form.Questions[categoryID] = domain.CategoryQuestions{Questions: questions}
	}
	return form
}

// CreateFeedbackFormResponse is returned after a form was stored
type CreateFeedbackFormResponse struct {
	ID string `json:"id"`
}

// FeedbackFormResponse is a stored form together with its id
type FeedbackFormResponse struct {
	ID string `json:"id"`
	domain.PersistedForm
}
