package report

import (
	"errors"
	"reflect"
	"strings"

	"civicjustice/models"

	"github.com/go-playground/validator/v10"
)

// fieldMessages maps json field names to the message shown under the field.
var fieldMessages = map[string]string{
	"fullName":    "Full name is required",
	"email":       "Invalid email address",
	"phone":       "Valid phone number required",
	"category":    "Please select an issue category",
	"description": "Description must be at least 10 characters",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return models.IsIssueCategory(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// Validate checks r against the form schema and returns one error per failing field, in form order.
func Validate(r models.IssueReport) []models.FieldError {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []models.FieldError{{Message: err.Error()}}
	}

	out := make([]models.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg, ok := fieldMessages[fe.Field()]
		if !ok {
			msg = fe.Error()
		}
		out = append(out, models.FieldError{Field: fe.Field(), Message: msg})
	}
	return out
}

func (s *DefaultReportService) Validate(r models.IssueReport) []models.FieldError {
	return Validate(r)
}
