// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides a set of error handling helpers,
// extending the standard library errors package.
package errors

import (
	"errors"
)

// New returns an error that formats as the given text.
// Each call to New returns a distinct error value even if the text is identical.
// It is the same as [errors.New].
func New(text string) error {
	return errors.New(text)
}

// Join returns an error that wraps the given errors.
// It is the same as [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// As finds the first error in err's tree that matches target, and if one is found,
// sets target to that error value and returns true. Otherwise, it returns false.
// It is the same as [errors.As].
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Is reports whether any error in err's tree matches target.
// It is the same as [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err, if err's type
// contains an Unwrap method returning error. Otherwise, Unwrap returns nil.
// It is the same as [errors.Unwrap].
func Unwrap(err error) error {
	return errors.Unwrap(err)
}
