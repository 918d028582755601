package models

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationErrors collects per-field constraint messages for a rejected
// create or update. It satisfies error so services can return it alongside
// other failures and handlers can pick it out with errors.As.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, v[field]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationErrors maps go-playground validator failures to field messages.
func NewValidationErrors(err validator.ValidationErrors) ValidationErrors {
	messages := make(ValidationErrors, len(err))
	for _, e := range err {
		messages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return messages
}
