package domain

import (
	"strings"
)

// NewDraft returns the draft used when authoring a new form.
func NewDraft() FormDraft {
	return FormDraft{
		Title:               "",
		CourseType:          CourseTypeAll,
		Active:              true,
		Selection:           SelectionSet{},
		QuestionsByCategory: CategoryQuestionMap{},
	}
}

// HydrateDraft builds the editing draft for an existing form. The selection is
// exactly the set of categories present in the document and every question is
// copied verbatim, client ids included.
func HydrateDraft(form PersistedForm) FormDraft {
	draft := FormDraft{
		Title:               form.Title,
		CourseType:          form.TypeOfCourse,
		Active:              form.Status == StatusActive,
		Selection:           make(SelectionSet, len(form.Questions)),
		QuestionsByCategory: make(CategoryQuestionMap, len(form.Questions)),
	}
	for categoryID, group := range form.Questions {
		draft.Selection[categoryID] = struct{}{}
		draft.QuestionsByCategory[categoryID] = cloneQuestions(group.Questions)
	}
	return draft
}

// Serialize converts a draft into the persisted document. Every category in
// QuestionsByCategory is included whether or not it is currently selected.
// The only check is that the title is not blank.
func Serialize(draft FormDraft) (PersistedForm, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return PersistedForm{}, NewMissingFieldError("title")
	}

	status := StatusInactive
	if draft.Active {
		status = StatusActive
	}

	questions := make(map[string]CategoryQuestions, len(draft.QuestionsByCategory))
	for categoryID, list := range draft.QuestionsByCategory {
		questions[categoryID] = CategoryQuestions{Questions: cloneQuestions(list)}
	}

	return PersistedForm{
		Title:        draft.Title,
		TypeOfCourse: draft.CourseType,
		Status:       status,
		Questions:    questions,
	}, nil
}

func cloneQuestions(list []QuestionDraft) []QuestionDraft {
	out := make([]QuestionDraft, len(list))
	for i, q := range list {
		out[i] = q.clone()
	}
	return out
}
