// Stationdata - Climate Station Metadata Service
// Copyright 2026 Meteonet
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/meteonet/stationdata

// Package validation provides struct validation using go-playground/validator
// v10. It exposes a thread-safe singleton validator instance plus error
// translation into plain messages suitable for the API's `{"message": ...}`
// error body.
//
// Example:
//
//	type CollectionRequest struct {
//	    Limit  int `validate:"min=0"`
//	    Offset int `validate:"min=0"`
//	}
//
//	if err := validation.ValidateStruct(&req); err != nil {
//	    respondError(w, http.StatusBadRequest, err.Error())
//	    return
//	}
package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// singleton validator instance
var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldError represents a single field validation failure.
type FieldError struct {
	Field   string
	Tag     string
	Param   string
	Message string
}

// Error returns the human-readable message for the field failure.
func (e *FieldError) Error() string {
	return e.Message
}

// RequestValidationError is a collection of field validation failures.
type RequestValidationError struct {
	fields []FieldError
}

// Fields returns the individual field failures.
func (ve *RequestValidationError) Fields() []FieldError {
	return ve.fields
}

// Error implements the error interface, returning a combined message.
func (ve *RequestValidationError) Error() string {
	if len(ve.fields) == 0 {
		return "validation failed"
	}
	messages := make([]string, 0, len(ve.fields))
	for _, f := range ve.fields {
		messages = append(messages, f.Message)
	}
	return strings.Join(messages, "; ")
}

// getValidator returns the singleton validator, creating it on first use.
// The validator caches struct metadata, so sharing one instance matters for
// performance.
func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ValidateStruct validates a struct using its `validate` tags.
// Returns nil if validation passes, or a *RequestValidationError describing
// every failed field.
func ValidateStruct(v interface{}) *RequestValidationError {
	err := getValidator().Struct(v)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		// Programming error: a non-struct was passed.
		return &RequestValidationError{fields: []FieldError{{
			Field:   "",
			Tag:     "struct",
			Message: "invalid value passed to validator",
		}}}
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &RequestValidationError{fields: []FieldError{{
			Message: err.Error(),
		}}}
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Param:   fe.Param(),
			Message: messageFor(fe),
		})
	}
	return &RequestValidationError{fields: fields}
}

// messageFor produces a readable message for a single field error.
func messageFor(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "datetime":
		return fmt.Sprintf("%s must be a date in format %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation rule %q", field, fe.Tag())
	}
}
