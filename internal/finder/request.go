// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package finder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Request limits.
const (
	MinQueryLength    = 2
	MaxQueryLength    = 500
	MinMaxResults     = 1
	MaxMaxResults     = 10
	DefaultMaxResults = 5
)

// Request is one search as received from a caller.
type Request struct {
	Query      string `json:"query" yaml:"query" validate:"required,min=2,max=500"`
	MaxResults int    `json:"max_results,omitempty" yaml:"max_results,omitempty" validate:"min=1,max=10"`
}

// ValidationError reports an invalid request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var validate = validator.New()

// Normalize trims the query and applies the default MaxResults, then
// validates the result.
func (r Request) Normalize() (Request, error) {
	r.Query = strings.TrimSpace(r.Query)
	if r.MaxResults == 0 {
		r.MaxResults = DefaultMaxResults
	}
	if err := validate.Struct(r); err != nil {
		return r, toValidationError(err)
	}
	return r, nil
}

func toValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &ValidationError{Field: "request", Message: err.Error()}
	}
	fe := verrs[0]
	ve := &ValidationError{Field: fe.Field()}
	switch fe.Field() + "." + fe.Tag() {
	case "Query.required":
		ve.Message = "Query is required."
	case "Query.min":
		ve.Message = fmt.Sprintf("Query must be at least %d characters long.", MinQueryLength)
	case "Query.max":
		ve.Message = fmt.Sprintf("Query cannot exceed %d characters.", MaxQueryLength)
	case "MaxResults.min", "MaxResults.max":
		ve.Message = fmt.Sprintf("MaxResults must be between %d and %d.", MinMaxResults, MaxMaxResults)
	default:
		ve.Message = fmt.Sprintf("failed %q validation", fe.Tag())
	}
	return ve
}
