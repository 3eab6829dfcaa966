// This file is part of go-cmdargs.
//
// Copyright (C) 2020-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package cmdargs

import (
	"strconv"
	"time"

	"cloud.google.com/go/civil"

	"github.com/DavidGamba/go-cmdargs/text"
)

// Optional getters return false when the option wasn't given.
// Required getters are the optional ones plus a missing option error, value
// validation only runs on values that were given.

func missingOption(id string) error {
	return usageErrorf(id, text.ErrorMissingRequiredOption, id)
}

// HasArg - Indicates if the option was passed on the last parse.
func (a *Accessor) HasArg(id string) (bool, error) {
	r, err := a.parsed()
	if err != nil {
		return false, err
	}
	return r.HasOption(id), nil
}

// OptionalStringArg - Returns the first value given to the option.
//
// An option that doesn't take a value reports false even when it was given,
// use HasArg to check for it.
func (a *Accessor) OptionalStringArg(id string) (string, bool, error) {
	r, err := a.parsed()
	if err != nil {
		return "", false, err
	}
	value, ok := r.OptionValue(id)
	return value, ok, nil
}

// RequiredStringArg - Returns the first value given to the option.
func (a *Accessor) RequiredStringArg(id string) (string, error) {
	value, ok, err := a.OptionalStringArg(id)
	return required(id, value, ok, err)
}

// OptionalStringArgList - Returns every value given to the option in the
// order they were given, duplicates included.
func (a *Accessor) OptionalStringArgList(id string) ([]string, bool, error) {
	r, err := a.parsed()
	if err != nil {
		return nil, false, err
	}
	values, ok := r.OptionValues(id)
	return values, ok, nil
}

// RequiredStringArgList - Returns every value given to the option in the
// order they were given, duplicates included.
func (a *Accessor) RequiredStringArgList(id string) ([]string, error) {
	values, ok, err := a.OptionalStringArgList(id)
	return required(id, values, ok, err)
}

func parseInt(id, value string) (int, error) {
	i, err := strconv.Atoi(value)
	if err != nil {
		return 0, usageErrorf(id, text.ErrorInvalidInteger, value, id)
	}
	return i, nil
}

// OptionalIntArg - Returns the option value as a base 10 integer.
func (a *Accessor) OptionalIntArg(id string) (int, bool, error) {
	value, ok, err := a.OptionalStringArg(id)
	if err != nil || !ok {
		return 0, false, err
	}
	i, err := parseInt(id, value)
	if err != nil {
		return 0, false, err
	}
	return i, true, nil
}

// OptionalIntArgMin - Same as OptionalIntArg but the value must be at least min.
func (a *Accessor) OptionalIntArgMin(id string, min int) (int, bool, error) {
	i, ok, err := a.OptionalIntArg(id)
	if err != nil || !ok {
		return 0, false, err
	}
	if i < min {
		return 0, false, usageErrorf(id, text.ErrorIntegerBelowMinimum, i, id, min)
	}
	return i, true, nil
}

// OptionalIntArgRange - Same as OptionalIntArg but the value must be within
// min and max, both inclusive.
func (a *Accessor) OptionalIntArgRange(id string, min, max int) (int, bool, error) {
	i, ok, err := a.OptionalIntArg(id)
	if err != nil || !ok {
		return 0, false, err
	}
	if i < min || i > max {
		return 0, false, usageErrorf(id, text.ErrorIntegerOutOfRange, i, id, min, max)
	}
	return i, true, nil
}

func required[T any](id string, value T, ok bool, err error) (T, error) {
	if err != nil {
		var zero T
		return zero, err
	}
	if !ok {
		var zero T
		return zero, missingOption(id)
	}
	return value, nil
}

// RequiredIntArg - Returns the option value as a base 10 integer.
func (a *Accessor) RequiredIntArg(id string) (int, error) {
	i, ok, err := a.OptionalIntArg(id)
	return required(id, i, ok, err)
}

// RequiredIntArgMin - Same as RequiredIntArg but the value must be at least min.
func (a *Accessor) RequiredIntArgMin(id string, min int) (int, error) {
	i, ok, err := a.OptionalIntArgMin(id, min)
	return required(id, i, ok, err)
}

// RequiredIntArgRange - Same as RequiredIntArg but the value must be within
// min and max, both inclusive.
func (a *Accessor) RequiredIntArgRange(id string, min, max int) (int, error) {
	i, ok, err := a.OptionalIntArgRange(id, min, max)
	return required(id, i, ok, err)
}

func (a *Accessor) parseDate(id, value string) (civil.Date, error) {
	d, err := civil.ParseDate(value)
	if err == nil {
		return d, nil
	}
	for _, layout := range a.dateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return civil.DateOf(t), nil
		}
	}
	return civil.Date{}, usageErrorf(id, text.ErrorInvalidDate, value, id)
}

// OptionalDateArg - Returns the option value as a calendar date.
// Dates use the ISO 8601 format, 2006-01-02, or any of the layouts given with
// DateLayouts.
func (a *Accessor) OptionalDateArg(id string) (civil.Date, bool, error) {
	value, ok, err := a.OptionalStringArg(id)
	if err != nil || !ok {
		return civil.Date{}, false, err
	}
	d, err := a.parseDate(id, value)
	if err != nil {
		return civil.Date{}, false, err
	}
	return d, true, nil
}

// RequiredDateArg - Returns the option value as a calendar date.
func (a *Accessor) RequiredDateArg(id string) (civil.Date, error) {
	d, ok, err := a.OptionalDateArg(id)
	return required(id, d, ok, err)
}
