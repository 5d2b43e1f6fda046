// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate provides a chainable Validator that collects field-level
// errors before returning a single [apperr.AppError].
//
// # Architecture
//
// Services validate request bodies with it; handlers use it only to parse path
// and query parameters. Storage never validates.
// Every rule runs; the resulting error lists all violations, not just the first.
package validate

import (
	"fmt"
	"net/mail"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/taibuivan/contacts/internal/platform/apperr"
)

var (
	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")
)

// Validator collects field-level validation errors via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	errs []apperr.FieldError
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, "is required")
	}
	return v
}

// NotEmpty fails if an optional value was supplied but is empty.
func (v *Validator) NotEmpty(field string, value *string) *Validator {
	if value != nil && strings.TrimSpace(*value) == "" {
		v.add(field, "is not allowed to be empty")
	}
	return v
}

// MaxLen fails if the Unicode character count exceeds max.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	if utf8.RuneCountInString(value) > max {
		v.add(field, fmt.Sprintf("length must be less than or equal to %d characters long", max))
	}
	return v
}

// MinLen fails if the Unicode character count is below min.
func (v *Validator) MinLen(field, value string, min int) *Validator {
	if utf8.RuneCountInString(value) < min {
		v.add(field, fmt.Sprintf("length must be at least %d characters long", min))
	}
	return v
}

// Email fails if the value is not a valid RFC 5322 email address whose domain
// carries a top-level part.
func (v *Validator) Email(field, value string) *Validator {
	address, err := mail.ParseAddress(value)
	if err != nil || address.Address != value || !hasTopLevelDomain(value) {
		v.add(field, "must be a valid email")
	}
	return v
}

func hasTopLevelDomain(address string) bool {
	domain := address[strings.LastIndexByte(address, '@')+1:]
	dot := strings.LastIndexByte(domain, '.')
	return dot > 0 && dot < len(domain)-1
}

// PositiveInt parses value as a positive integer identifier.
//
// On failure the error is recorded and zero is returned, so the caller must
// still check [Validator.Err] before using the result.
func (v *Validator) PositiveInt(field, value string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		v.add(field, "must be a number")
		return 0
	}
	if n <= 0 {
		v.add(field, "must be a positive number")
		return 0
	}
	return n
}

// Custom adds a failure with a custom message if the condition is true.
//
// # Example
//
//	v.Custom("page", page < 1, "must be greater than or equal to 1")
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.add(field, message)
	}
	return v
}

// Err returns a [apperr.AppError] (VALIDATION_ERROR) if any rules failed,
// or nil if all rules passed.
//
// The message concatenates every violation in the order they were recorded.
// This is the only output method — call it at the end of the chain.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}

	parts := make([]string, 0, len(v.errs))
	for _, fieldError := range v.errs {
		parts = append(parts, fmt.Sprintf("%q %s", fieldError.Field, fieldError.Message))
	}

	return apperr.ValidationError(strings.Join(parts, ". "), v.errs...)
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

// add appends a [apperr.FieldError] to the internal slice.
func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}

// FieldErr is a shortcut to create a single-field validation error.
func FieldErr(field, message string) *apperr.AppError {
	return apperr.ValidationError(fmt.Sprintf("%q %s", field, message), apperr.FieldError{
		Field:   field,
		Message: message,
	})
}
