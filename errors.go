// This file is part of go-cmdargs.
//
// Copyright (C) 2020-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package cmdargs

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/DavidGamba/go-cmdargs/text"
)

// ErrorUsage - Indicates a problem with the command line arguments given by
// the user.
// The error message is meant to be shown to the user.
var ErrorUsage = errors.New("usage error")

// ErrorInternalState - Indicates the accessor was used out of order by the
// application.
var ErrorInternalState = errors.New("internal state error")

// UsageError - Malformed arguments, missing required options and invalid or
// out of range values.
// It matches ErrorUsage with errors.Is.
type UsageError struct {
	ID    string // option the error refers to, empty when the engine rejected the arguments
	msg   string
	cause error
}

func usageErrorf(id string, format string, a ...interface{}) *UsageError {
	return &UsageError{ID: id, msg: fmt.Sprintf(format, a...)}
}

func (e *UsageError) Error() string { return e.msg }

func (e *UsageError) Is(target error) bool { return target == ErrorUsage }

func (e *UsageError) Unwrap() error { return e.cause }

// InternalStateError - The application called a getter before parsing or
// read a field that was never extracted.
// It matches ErrorInternalState with errors.Is.
type InternalStateError struct {
	msg string
}

func (e *InternalStateError) Error() string { return e.msg }

func (e *InternalStateError) Is(target error) bool { return target == ErrorInternalState }

// Initialised - Returns the value pointed to by value.
// Applications store the results of their getters in pointer fields during
// ExtractCustomOptions. Those fields stay nil when help was requested or
// parse wasn't called, reading them through Initialised reports that as an
// InternalStateError.
func Initialised[T any](value *T) (T, error) {
	if value == nil {
		var zero T
		return zero, &InternalStateError{msg: text.ErrorNotInitialised}
	}
	return *value, nil
}
