// Package errs is the one place the module touches cockroachdb/errors.
// Errors built here keep a stack trace and survive Mark, so callers must
// compare with Is rather than the standard library.
package errs

import (
	cr "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

// Wrap returns nil for a nil err so it can sit on a return line.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

// Mark tags err so that Is(err, reference) holds. A nil err yields reference.
func Mark(err error, reference error) error {
	if err == nil {
		return reference
	}
	return cr.Mark(err, reference)
}

func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

func As(err error, target any) bool {
	return cr.As(err, target)
}

// Validation creates an error marked with ErrDomainValidation.
func Validation(msg string) error {
	return cr.Mark(cr.New(msg), ErrDomainValidation)
}

func Validationf(format string, args ...any) error {
	return cr.Mark(cr.Newf(format, args...), ErrDomainValidation)
}
