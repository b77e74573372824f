package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen/advisor-dashboard/internal/domain"
)

var (
	// ErrValidation wraps struct tag failures.
	ErrValidation = errors.New("validation failed")

	// ErrBinding wraps bodies and queries that could not be decoded.
	ErrBinding = errors.New("binding failed")
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator. Field errors are keyed by JSON
// name, and two tags are added: notempty rejects blank strings and
// riskprofile accepts the three risk profiles.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}

			return name
		})

		_ = validate.RegisterValidation("notempty", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		_ = validate.RegisterValidation("riskprofile", func(fl validator.FieldLevel) bool {
			return domain.RiskProfile(fl.Field().String()).Valid()
		})
	})

	return validate
}

// Validate checks v's struct tags.
func Validate(v any) error {
	if err := Validator().Struct(v); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return nil
}

// BindAndValidate decodes the JSON body into v and validates it.
func BindAndValidate(c *gin.Context, v any) error {
	if err := c.ShouldBindJSON(v); err != nil {
		return fmt.Errorf("%w: %w", ErrBinding, err)
	}

	return Validate(v)
}

// BindQueryAndValidate decodes the query string into v and validates it.
func BindQueryAndValidate(c *gin.Context, v any) error {
	if err := c.ShouldBindQuery(v); err != nil {
		return fmt.Errorf("%w: %w", ErrBinding, err)
	}

	return Validate(v)
}

// IsValidationError reports whether err carries struct tag failures.
func IsValidationError(err error) bool {
	var fieldErrs validator.ValidationErrors
	return errors.As(err, &fieldErrs)
}

// ValidationErrors maps each failed field, by JSON name, to a message.
func ValidationErrors(err error) map[string]string {
	out := make(map[string]string)

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return out
	}

	for _, fe := range fieldErrs {
		out[fieldPath(fe)] = validationMessage(fe)
	}

	return out
}

// fieldPath keeps the position of nested fields so that goals[1].name and
// goals[0].name stay distinct.
func fieldPath(fe validator.FieldError) string {
	_, rest, found := strings.Cut(fe.Namespace(), ".")
	if !found || rest == "" {
		return fe.Field()
	}

	return rest
}

var validationMessages = map[string]string{
	"required":    "is required",
	"notempty":    "must not be empty",
	"email":       "must be a valid email address",
	"riskprofile": "must be conservative, moderate or aggressive",
	"gt":          "must be greater than {param}",
	"gte":         "must be at least {param}",
	"lt":          "must be less than {param}",
	"lte":         "must be at most {param}",
	"oneof":       "must be one of: {param}",
}

func validationMessage(fe validator.FieldError) string {
	tag, param := fe.Tag(), fe.Param()

	if tag == "min" || tag == "max" {
		bound := "at least"
		if tag == "max" {
			bound = "at most"
		}

		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be %s %s characters", bound, param)
		}

		return fmt.Sprintf("must be %s %s", bound, param)
	}

	if msg, ok := validationMessages[tag]; ok {
		return strings.ReplaceAll(msg, "{param}", param)
	}

	return "failed validation: " + tag
}
