package domain

import (
	"encoding/json"
	"sort"
)

// Category groups feedback questions, e.g. "Objectives" or "Logistics".
// The builder treats categories as read-only reference data.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ResponseFormat is the answer-input type of a question.
type ResponseFormat string

const (
	FormatRating       ResponseFormat = "Rating"
	FormatFreeText     ResponseFormat = "FreeText"
	FormatDropdown     ResponseFormat = "Dropdown"
	FormatSingleChoice ResponseFormat = "SingleChoice"
)

// ResponseFormats lists every format in display order.
var ResponseFormats = []ResponseFormat{FormatRating, FormatFreeText, FormatDropdown, FormatSingleChoice}

func (f ResponseFormat) Valid() bool {
	for _, known := range ResponseFormats {
		if f == known {
			return true
		}
	}
	return false
}

// HasOptions reports whether questions of this format own a list of selectable options.
func (f ResponseFormat) HasOptions() bool {
	return f == FormatDropdown || f == FormatSingleChoice
}

// CourseType scopes a feedback form to a family of courses.
type CourseType string

const (
	CourseTypeAll        CourseType = "All"
	CourseTypeSTCW       CourseType = "STCW"
	CourseTypeNonSTCW    CourseType = "NON-STCW"
	CourseTypeValueAdded CourseType = "VALUE-ADDED"
)

var CourseTypes = []CourseType{CourseTypeAll, CourseTypeSTCW, CourseTypeNonSTCW, CourseTypeValueAdded}

func (c CourseType) Valid() bool {
	for _, known := range CourseTypes {
		if c == known {
			return true
		}
	}
	return false
}

// QuestionDraft is one question of a form being authored. ID is generated on
// the client side when the question is created and is never regenerated; it
// has no relation to server-assigned identifiers.
type QuestionDraft struct {
	ID      string         `json:"id"`
	Text    string         `json:"text"`
	Format  ResponseFormat `json:"format"`
	Options []string       `json:"options"`
}

// clone returns a copy whose Options slice is never shared with q.
func (q QuestionDraft) clone() QuestionDraft {
	q.Options = cloneOptions(q.Options)
	return q
}

// MarshalJSON always writes options as an array, even when Options is nil.
func (q QuestionDraft) MarshalJSON() ([]byte, error) {
	type wire QuestionDraft
	if q.Options == nil {
		q.Options = []string{}
	}
	return json.Marshal(wire(q))
}

// cloneOptions keeps nil as nil so a hydrated form serializes back unchanged.
func cloneOptions(options []string) []string {
	if options == nil {
		return nil
	}
	return append(make([]string, 0, len(options)), options...)
}

// CategoryQuestionMap maps a category id to its ordered question list.
type CategoryQuestionMap map[string][]QuestionDraft

func (m CategoryQuestionMap) shallowCopy() CategoryQuestionMap {
	out := make(CategoryQuestionMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// SelectionSet is the set of category ids the operator chose in the category picker.
type SelectionSet map[string]struct{}

func NewSelectionSet(ids ...string) SelectionSet {
	s := make(SelectionSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s SelectionSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// IDs returns the members sorted.
func (s SelectionSet) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s SelectionSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.IDs())
}

func (s *SelectionSet) UnmarshalJSON(data []byte) error {
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	*s = NewSelectionSet(ids...)
	return nil
}

// FormDraft is the in-memory, not yet persisted state of a feedback form.
// It is a value: every editor and reconciler operation returns a new draft
// and leaves the receiver untouched.
type FormDraft struct {
	Title               string              `json:"title"`
	CourseType          CourseType          `json:"course_type"`
	Active              bool                `json:"active"`
	Selection           SelectionSet        `json:"selection"`
	QuestionsByCategory CategoryQuestionMap `json:"questions_by_category"`
}

// CategoryQuestions is the per-category envelope of the persisted document.
type CategoryQuestions struct {
	Questions []QuestionDraft `json:"questions"`
}

// PersistedForm is the stored shape of a feedback form. Questions stay nested
// under their category id because downstream consumers key off it.
type PersistedForm struct {
	Title        string                       `json:"title"`
	TypeOfCourse CourseType                   `json:"type_of_course"`
	Status       int                          `json:"status"`
	Questions    map[string]CategoryQuestions `json:"questions"`
}

const (
	StatusInactive = 0
	StatusActive   = 1
)

// FeedbackForm is a persisted form together with its server-side identity.
type FeedbackForm struct {
	ID string `json:"id"`
	PersistedForm
}
