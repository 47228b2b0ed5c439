package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDetails(t *testing.T) {
	title := "Course Feedback"
	course := CourseTypeNonSTCW
	inactive := false

	draft, err := NewDraft().ApplyDetails(DetailsUpdate{Title: &title, CourseType: &course, Active: &inactive})
	require.NoError(t, err)
	assert.Equal(t, "Course Feedback", draft.Title)
	assert.Equal(t, CourseTypeNonSTCW, draft.CourseType)
	assert.False(t, draft.Active)

	unchanged, err := draft.ApplyDetails(DetailsUpdate{})
	require.NoError(t, err)
	assert.Equal(t, draft, unchanged)

	bogus := CourseType("Diving")
	_, err = draft.ApplyDetails(DetailsUpdate{Title: &title, CourseType: &bogus})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "course_type", vErr.Field)
}

func TestUnknownCategories(t *testing.T) {
	catalog := []Category{{ID: "c1", Name: "Objectives"}, {ID: "c2", Name: "Logistics"}}
	selection := NewSelectionSet("retired")

	assert.Empty(t, UnknownCategories(catalog, selection, []string{"c1", "retired"}))
	assert.Equal(t, []string{"c9", "c8"}, UnknownCategories(catalog, selection, []string{"c9", "c2", "c8"}))
	assert.Empty(t, UnknownCategories(nil, selection, []string{"c9"}), "degraded catalog accepts any id")
}
