package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/HackArena_Go/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var (
	validate     *Validator
	validateOnce sync.Once
)

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("reaction", validateReaction)
	_ = v.RegisterValidation("condition", validateCondition)
	_ = v.RegisterValidation("handle", validateHandle)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	validateOnce.Do(InitValidator)
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// keyed by JSON field name.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "reaction":
			errs[field] = "Unsupported reaction"
		case "condition":
			errs[field] = "Unknown task condition"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "gte":
			errs[field] = fmt.Sprintf("Must be %s or more", e.Param())
		case "nefield":
			errs[field] = fmt.Sprintf("Must differ from %s", strings.ToLower(e.Param()))
		case "handle":
			errs[field] = "Must not contain whitespace"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

func validateReaction(fl validator.FieldLevel) bool {
	return domain.IsValidReaction(fl.Field().String())
}

// ValidConditions lists the task condition types progress can be reported for
var ValidConditions = map[string]bool{
	domain.ConditionHackWins:    true,
	domain.ConditionHacks:       true,
	domain.ConditionPurchases:   true,
	domain.ConditionActivations: true,
	domain.ConditionQuizCorrect: true,
}

func validateCondition(fl validator.FieldLevel) bool {
	return ValidConditions[fl.Field().String()]
}

// validateHandle rejects usernames containing whitespace
func validateHandle(fl validator.FieldLevel) bool {
	return !strings.ContainsFunc(fl.Field().String(), unicode.IsSpace)
}
