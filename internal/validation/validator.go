package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"feedback-builder/internal/domain"
	"feedback-builder/internal/util"

	"github.com/go-playground/validator/v10"
)

// Validator provides request validation functionality
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance with the builder's custom tags registered.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("course_type", func(fl validator.FieldLevel) bool {
		return domain.CourseType(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("response_format", func(fl validator.FieldLevel) bool {
		return domain.ResponseFormat(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("ulid", func(fl validator.FieldLevel) bool {
		return util.IsULID(fl.Field().String())
	})

	return &Validator{validate: v}
}

// ValidateStruct checks s against its validate tags.
func (v *Validator) ValidateStruct(s interface{}) domain.ValidationErrors {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domain.ValidationErrors{domain.NewValidationError("", err.Error())}
	}

	out := make(domain.ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, toValidationError(fe))
	}
	return out
}

// ValidateSessionID validates a builder session id path parameter
func (v *Validator) ValidateSessionID(id string) domain.ValidationErrors {
	err := v.validate.Var(id, "required,ulid")
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 && fieldErrs[0].Tag() == "required" {
		return domain.ValidationErrors{domain.NewMissingFieldError("session_id")}
	}
	return domain.ValidationErrors{domain.NewInvalidFormatError("session_id", id)}
}

// fieldPath turns "UpdateDetailsRequest.questions[c1].questions[0].format" into "questions[c1].questions[0].format".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func toValidationError(fe validator.FieldError) *domain.ValidationError {
	field := fieldPath(fe)
	switch fe.Tag() {
	case "required", "notblank":
		return domain.NewMissingFieldError(field)
	case "course_type", "response_format", "ulid", "oneof":
		return domain.NewInvalidFormatError(field, fmt.Sprintf("%v", fe.Value()))
	case "max":
		return domain.NewValidationError(field, fmt.Sprintf("must be at most %s characters", fe.Param()))
	default:
		return domain.NewValidationError(field, fmt.Sprintf("failed %q validation", fe.Tag()))
	}
}
