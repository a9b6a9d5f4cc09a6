package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// RegisterValidators adds the status tags to gin's validator and makes
// field errors use JSON names. Safe to call more than once.
func RegisterValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(fieldName)
		_ = v.RegisterValidation("expense_status", func(fl validator.FieldLevel) bool {
			_, err := domain.ParseExpenseStatus(fl.Field().String())
			return err == nil
		})
		_ = v.RegisterValidation("income_status", func(fl validator.FieldLevel) bool {
			_, err := domain.ParseIncomeStatus(fl.Field().String())
			return err == nil
		})
	})
}

// fieldName reports the json (or form) name of a struct field.
func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

// bindingErrors turns a binding failure into a field -> message map. ok is
// false when err is not a validation failure (e.g. malformed JSON).
func bindingErrors(err error) (map[string]string, bool) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			out[fe.Field()] = validationMessage(fe)
		}
		return out, true
	}
	if errors.Is(err, domain.ErrInvalidStatus) {
		return map[string]string{"status": err.Error()}, true
	}
	return nil, false
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "expense_status":
		return "must be one of pending, approved, rejected"
	case "income_status":
		return "must be one of pending, completed, rejected"
	default:
		return "failed on " + fe.Tag()
	}
}
