package domain

import "time"

// BuilderMode tells whether a session authors a new form or edits a stored one.
type BuilderMode string

const (
	ModeCreate BuilderMode = "create"
	ModeEdit   BuilderMode = "edit"
)

// BuilderSession is one operator's editing session. It lives until the form
// is submitted, the session is discarded, or it expires; nothing in it is
// persisted to the form store before submit.
type BuilderSession struct {
	ID        string         `json:"id"`
	Version   int64          `json:"version"`
	Mode      BuilderMode    `json:"mode"`
	FormID    string         `json:"form_id,omitempty"`
	Draft     FormDraft      `json:"draft"`
	Catalog   []Category     `json:"catalog"`
	Notices   []Notification `json:"notices,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// DetailsUpdate changes the form-level fields of a draft. Nil fields are left alone.
type DetailsUpdate struct {
	Title      *string
	CourseType *CourseType
	Active     *bool
}

// ApplyDetails returns the draft with the non-nil fields of u applied.
func (d FormDraft) ApplyDetails(u DetailsUpdate) (FormDraft, error) {
	if u.CourseType != nil && !u.CourseType.Valid() {
		return d, NewInvalidFormatError("course_type", string(*u.CourseType))
	}
	if u.Title != nil {
		d.Title = *u.Title
	}
	if u.CourseType != nil {
		d.CourseType = *u.CourseType
	}
	if u.Active != nil {
		d.Active = *u.Active
	}
	return d, nil
}

// UnknownCategories returns, in input order, the ids that are neither in the
// catalog nor already selected. An empty catalog, as after a failed load, accepts every id.
func UnknownCategories(catalog []Category, selection SelectionSet, ids []string) []string {
	if len(catalog) == 0 {
		return nil
	}
	known := make(map[string]struct{}, len(catalog))
	for _, c := range catalog {
		known[c.ID] = struct{}{}
	}
	var unknown []string
	for _, id := range ids {
		if _, ok := known[id]; ok || selection.Has(id) {
			continue
		}
		unknown = append(unknown, id)
	}
	return unknown
}
