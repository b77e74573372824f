package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports fields by their koanf key so messages name the same
// path used in YAML and in APP_ variables.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("koanf"), ",")
		if name == "" || name == "-" {
			return f.Name
		}

		return name
	})

	return v
}

// Validate checks field tags and then the rules that span sections. The
// service refuses to start on any failure, and every problem is listed.
func (c *Config) Validate() error {
	var problems []string

	err := validate.Struct(c)

	var fieldErrs validator.ValidationErrors

	switch {
	case errors.As(err, &fieldErrs):
		for _, fe := range fieldErrs {
			problems = append(problems, formatFieldError(fe))
		}
	case err != nil:
		return fmt.Errorf("config validation failed: %w", err)
	}

	problems = append(problems, c.crossFieldProblems()...)

	if len(problems) == 0 {
		return nil
	}

	return fmt.Errorf("config validation failed:\n  %s", strings.Join(problems, "\n  "))
}

// crossFieldProblems covers rules a single field tag cannot express.
func (c *Config) crossFieldProblems() []string {
	var problems []string

	if c.Server.WriteTimeout > 0 && c.Dora.RetrievalDelay >= c.Server.WriteTimeout {
		problems = append(problems, fmt.Sprintf(
			"dora.retrieval_delay (%s) must be shorter than server.write_timeout (%s)",
			c.Dora.RetrievalDelay, c.Server.WriteTimeout))
	}

	for _, origin := range c.CORS.AllowedOrigins {
		if origin == "*" && len(c.CORS.AllowedOrigins) > 1 {
			problems = append(problems, `cors.allowed_origins: "*" cannot be combined with other origins`)
			break
		}
	}

	return problems
}

func formatFieldError(e validator.FieldError) string {
	field := formatFieldPath(e.Namespace())

	switch e.Tag() {
	case "required":
		return field + " is required"
	case "required_if":
		return fmt.Sprintf("%s is required when %s", field, strings.ToLower(e.Param()))
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "url":
		return field + " must be a valid URL"
	default:
		return fmt.Sprintf("%s failed validation: %s", field, e.Tag())
	}
}

// formatFieldPath drops the root struct from "Config.server.read_timeout".
func formatFieldPath(namespace string) string {
	_, rest, found := strings.Cut(namespace, ".")
	if !found {
		return namespace
	}

	return rest
}
