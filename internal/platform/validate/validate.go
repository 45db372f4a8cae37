// Copyright (c) 2026 Cadenza. All rights reserved.

// Package validate provides a chainable Validator that collects rule
// failures before returning a single [apperr.AppError].
//
// # Architecture
//
// This package is used at the service boundary — never in storage. It ensures
// that business logic only operates on semantically valid data. Resource name
// rules live in the canonical package; validate covers everything else
// (credentials, required fields).
package validate

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/cadenza-music/cadenza/internal/platform/apperr"
)

// ErrInvalidJSON is returned when a request body cannot be decoded.
var ErrInvalidJSON = apperr.ValidationError("invalid request body")

// New returns an empty Validator ready for chaining.
func New() *Validator {
	return &Validator{}
}

// Validator collects validation failures via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	msgs []string
}

// Required fails with msg if the trimmed value is empty.
func (v *Validator) Required(value, msg string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(msg)
	}
	return v
}

// MaxLen fails if the Unicode character count of value exceeds max.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	if utf8.RuneCountInString(value) > max {
		v.add(fmt.Sprintf("%s must be at most %d characters", field, max))
	}
	return v
}

// Custom adds a failure with a custom message if failed is true.
func (v *Validator) Custom(failed bool, msg string) *Validator {
	if failed {
		v.add(msg)
	}
	return v
}

// Err returns an [apperr.AppError] (VALIDATION_ERROR) if any rule failed,
// or nil if all rules passed.
//
// This is the only output method — call it at the end of the chain.
func (v *Validator) Err() error {
	if len(v.msgs) == 0 {
		return nil
	}
	return apperr.ValidationError(strings.Join(v.msgs, "; "))
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.msgs) > 0
}

// Repeated failures with an identical message collapse into one, so two
// fields sharing a notice ("you must supply a username and password") never
// report it twice.
func (v *Validator) add(msg string) {
	for _, existing := range v.msgs {
		if existing == msg {
			return
		}
	}
	v.msgs = append(v.msgs, msg)
}
