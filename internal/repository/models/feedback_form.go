package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"feedback-builder/internal/domain"
)

// FormQuestions stores the nested {categoryId: {questions: [...]}} document in a CLOB.
type FormQuestions map[string]domain.CategoryQuestions

// Value implements the driver.Valuer interface
func (q FormQuestions) Value() (driver.Value, error) {
	if q == nil {
		// nil map is stored as an empty JSON object
		return "{}", nil
	}
	jsonData, err := json.Marshal(q)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (q *FormQuestions) Scan(value interface{}) error {
	if value == nil {
		*q = FormQuestions{}
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("FormQuestions Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*q = FormQuestions{}
		return nil
	}

	parsed := FormQuestions{}
	if err := json.Unmarshal(bytesToParse, &parsed); err != nil {
		return fmt.Errorf("FormQuestions Scan: %w", err)
	}
	*q = parsed
	return nil
}

// Category is a row of FEEDBACK_CATEGORIES.
type Category struct {
	ID        string       `db:"ID"`
	Name      string       `db:"NAME"`
	CreatedAt time.Time    `db:"CREATED_AT"`
	DeletedAt sql.NullTime `db:"DELETED_AT"`
}

// FeedbackForm is a row of FEEDBACK_FORMS.
type FeedbackForm struct {
	ID           string        `db:"ID"`
	Title        string        `db:"TITLE"`
	TypeOfCourse string        `db:"TYPE_OF_COURSE"`
	Status       int           `db:"STATUS"`
	Questions    FormQuestions `db:"QUESTIONS"`
	CreatedAt    time.Time     `db:"CREATED_AT"`
	UpdatedAt    time.Time     `db:"UPDATED_AT"`
	DeletedAt    sql.NullTime  `db:"DELETED_AT"`
}
