package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"feedback-builder/internal/domain"
	"feedback-builder/internal/repository/models"
	"feedback-builder/internal/util"
)

// FeedbackFormDatabaseAdapter implements domain.FeedbackFormRepository on Oracle.
// The nested question document is kept as JSON in the QUESTIONS CLOB.
type FeedbackFormDatabaseAdapter struct {
	db DBTX
}

func NewFeedbackFormDatabaseAdapter(db DBTX) domain.FeedbackFormRepository {
	return &FeedbackFormDatabaseAdapter{db: db}
}

func (a *FeedbackFormDatabaseAdapter) GetForm(ctx context.Context, id string) (*domain.FeedbackForm, error) {
	var row models.FeedbackForm
	query := `SELECT id, title, type_of_course, status, questions, created_at, updated_at, deleted_at
	FROM feedback_forms
	WHERE id = :1
	AND deleted_at IS NULL`

	if err := GetExecutor(ctx, a.db).GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError(fmt.Sprintf("feedback form not found with ID: %s", id))
		}
		return nil, fmt.Errorf("failed to get feedback form %s: %w", id, err)
	}
	return toDomainFeedbackForm(&row), nil
}

func (a *FeedbackFormDatabaseAdapter) CreateForm(ctx context.Context, form domain.PersistedForm) (string, error) {
	now := time.Now()
	row := toModelFeedbackForm(form)
	row.ID = util.NewULID()
	row.CreatedAt = now
	row.UpdatedAt = now

	query := `INSERT INTO feedback_forms (id, title, type_of_course, status, questions, created_at, updated_at)
	VALUES (:1, :2, :3, :4, :5, :6, :7)`
	_, err := GetExecutor(ctx, a.db).ExecContext(ctx, query,
		row.ID, row.Title, row.TypeOfCourse, row.Status, row.Questions, row.CreatedAt, row.UpdatedAt)
	if err != nil {
		return "", fmt.Errorf("failed to insert feedback form: %w", err)
	}
	return row.ID, nil
}

func (a *FeedbackFormDatabaseAdapter) UpdateForm(ctx context.Context, id string, form domain.PersistedForm) error {
	row := toModelFeedbackForm(form)
	row.UpdatedAt = time.Now()

	query := `UPDATE feedback_forms
	SET title = :1, type_of_course = :2, status = :3, questions = :4, updated_at = :5
	WHERE id = :6 AND deleted_at IS NULL`
	result, err := GetExecutor(ctx, a.db).ExecContext(ctx, query,
		row.Title, row.TypeOfCourse, row.Status, row.Questions, row.UpdatedAt, id)
	if err != nil {
		return fmt.Errorf("failed to update feedback form %s: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows for feedback form %s: %w", id, err)
	}
	if affected == 0 {
		return domain.NewNotFoundError(fmt.Sprintf("feedback form not found with ID: %s", id))
	}
	return nil
}

func toDomainFeedbackForm(row *models.FeedbackForm) *domain.FeedbackForm {
	questions := make(map[string]domain.CategoryQuestions, len(row.Questions))
	for k, v := range row.Questions {
		questions[k] = v
	}
	return &domain.FeedbackForm{
		ID: row.ID,
		PersistedForm: domain.PersistedForm{
			Title:        row.Title,
			TypeOfCourse: domain.CourseType(row.TypeOfCourse),
			Status:       row.Status,
			Questions:    questions,
		},
	}
}

func toModelFeedbackForm(form domain.PersistedForm) models.FeedbackForm {
	return models.FeedbackForm{
		Title:        form.Title,
		TypeOfCourse: string(form.TypeOfCourse),
		Status:       form.Status,
		Questions:    models.FormQuestions(form.Questions),
	}
}
