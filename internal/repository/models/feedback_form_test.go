package models

import (
	"testing"

	"feedback-builder/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormQuestions_Value(t *testing.T) {
	var nilQuestions FormQuestions
	val, err := nilQuestions.Value()
	require.NoError(t, err)
	assert.Equal(t, "{}", val)

	q := FormQuestions{
		"c1": {Questions: []domain.QuestionDraft{{ID: "q1", Text: "Pace", Format: domain.FormatDropdown, Options: []string{"Yes", "No"}}}},
	}
	val, err = q.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `{"c1":{"questions":[{"id":"q1","text":"Pace","format":"Dropdown","options":["Yes","No"]}]}}`, val.(string))
}

func TestFormQuestions_Scan(t *testing.T) {
	tests := []struct {
		name    string
		input   interface{}
		want    FormQuestions
		wantErr bool
	}{
		{name: "nil", input: nil, want: FormQuestions{}},
		{name: "empty string", input: "", want: FormQuestions{}},
		{name: "json null", input: []byte("null"), want: FormQuestions{}},
		{
			name:  "string document",
			input: `{"c2":{"questions":[{"id":"q9","text":"Rate the venue","format":"Rating","options":[]}]}}`,
			want: FormQuestions{"c2": {Questions: []domain.QuestionDraft{
				{ID: "q9", Text: "Rate the venue", Format: domain.FormatRating, Options: []string{}},
			}}},
		},
		{name: "bytes empty object", input: []byte("{}"), want: FormQuestions{}},
		{name: "unsupported type", input: 42, wantErr: true},
		{name: "malformed json", input: "{", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got FormQuestions
			err := got.Scan(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
