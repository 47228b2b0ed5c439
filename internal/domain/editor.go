package domain

import (
	"feedback-builder/internal/util"
)

// QuestionField names a question field that can be edited in place.
type QuestionField string

const (
	FieldText   QuestionField = "text"
	FieldFormat QuestionField = "format"
)

// NewQuestionID generates client-side question ids.
var NewQuestionID = util.NewULID

// AddQuestion appends an empty Rating question to the category. The category
// does not have to be selected.
func (d FormDraft) AddQuestion(categoryID string) FormDraft {
	q := QuestionDraft{
		ID:      d.freshQuestionID(),
		Text:    "",
		Format:  FormatRating,
		Options: []string{},
	}

	current := d.QuestionsByCategory[categoryID]
	list := make([]QuestionDraft, len(current), len(current)+1)
	copy(list, current)
	list = append(list, q)

	return d.withCategory(categoryID, list)
}

// RemoveQuestion deletes the question at index. A stale index is ignored.
func (d FormDraft) RemoveQuestion(categoryID string, index int) FormDraft {
	current, ok := d.QuestionsByCategory[categoryID]
	if !ok || index < 0 || index >= len(current) {
		return d
	}

	list := make([]QuestionDraft, 0, len(current)-1)
	list = append(list, current[:index]...)
	list = append(list, current[index+1:]...)

	return d.withCategory(categoryID, list)
}

// SetQuestionField replaces the text or the format of one question.
//
// A question's options only exist while its format is Dropdown or
// SingleChoice: switching to Rating or FreeText drops them, switching between
// the two choice formats keeps them.
func (d FormDraft) SetQuestionField(categoryID string, index int, field QuestionField, value string) (FormDraft, error) {
	switch field {
	case FieldText:
		return d.updateQuestion(categoryID, index, func(q QuestionDraft) QuestionDraft {
			q.Text = value
			return q
		}), nil
	case FieldFormat:
		format := ResponseFormat(value)
		if !format.Valid() {
			return d, NewInvalidFormatError("format", value)
		}
		return d.updateQuestion(categoryID, index, func(q QuestionDraft) QuestionDraft {
			if !format.HasOptions() || !q.Format.HasOptions() {
				q.Options = []string{}
			}
			q.Format = format
			return q
		}), nil
	default:
		return d, NewInvalidFormatError("field", string(field))
	}
}

// AddOption appends an empty option. Questions whose format has no options are left as they are.
func (d FormDraft) AddOption(categoryID string, qIndex int) FormDraft {
	return d.updateQuestion(categoryID, qIndex, func(q QuestionDraft) QuestionDraft {
		if !q.Format.HasOptions() {
			return q
		}
		q.Options = append(q.Options, "")
		return q
	})
}

func (d FormDraft) SetOption(categoryID string, qIndex, oIndex int, value string) FormDraft {
	return d.updateQuestion(categoryID, qIndex, func(q QuestionDraft) QuestionDraft {
		if oIndex < 0 || oIndex >= len(q.Options) {
			return q
		}
		q.Options[oIndex] = value
		return q
	})
}

func (d FormDraft) RemoveOption(categoryID string, qIndex, oIndex int) FormDraft {
	return d.updateQuestion(categoryID, qIndex, func(q QuestionDraft) QuestionDraft {
		if oIndex < 0 || oIndex >= len(q.Options) {
			return q
		}
		q.Options = append(q.Options[:oIndex], q.Options[oIndex+1:]...)
		return q
	})
}

// updateQuestion applies fn to a private copy of the question at index and
// stores the result in a new list and a new map. fn may mutate the copy's
// Options freely. A stale index leaves the draft as it is.
func (d FormDraft) updateQuestion(categoryID string, index int, fn func(QuestionDraft) QuestionDraft) FormDraft {
	current, ok := d.QuestionsByCategory[categoryID]
	if !ok || index < 0 || index >= len(current) {
		return d
	}

	list := make([]QuestionDraft, len(current))
	copy(list, current)
	list[index] = fn(current[index].clone())

	return d.withCategory(categoryID, list)
}

func (d FormDraft) withCategory(categoryID string, list []QuestionDraft) FormDraft {
	questions := d.QuestionsByCategory.shallowCopy()
	questions[categoryID] = list
	d.QuestionsByCategory = questions
	return d
}

func (d FormDraft) freshQuestionID() string {
	for {
		id := NewQuestionID()
		if !d.hasQuestionID(id) {
			return id
		}
	}
}

func (d FormDraft) hasQuestionID(id string) bool {
	for _, list := range d.QuestionsByCategory {
		for _, q := range list {
			if q.ID == id {
				return true
			}
		}
	}
	return false
}
