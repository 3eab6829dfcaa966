// This file is part of go-cmdargs.
//
// Copyright (C) 2020-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package text - User facing strings.
package text

// ErrorMissingRequiredOption - Option that was requested with a required getter was not given.
var ErrorMissingRequiredOption = "Missing required option: %s."

// ErrorInvalidInteger - Option value is not a base 10 integer.
var ErrorInvalidInteger = "Invalid integer '%s' for argument %s."

// ErrorIntegerBelowMinimum - Option value is smaller than the given minimum.
var ErrorIntegerBelowMinimum = "Integer %d for argument %s is out of range. Value must be at least %d."

// ErrorIntegerOutOfRange - Option value is outside of the given inclusive range.
var ErrorIntegerOutOfRange = "Integer %d for argument %s is out of range. Expected value in range %d..%d."

// ErrorInvalidDate - Option value is not a calendar date.
var ErrorInvalidDate = "Invalid date '%s' for argument %s."

// ErrorNotParsed - A getter was called before parsing.
var ErrorNotParsed = "You must parse the command line arguments before they can be used."

// ErrorNotInitialised - An extracted field was read before it was set.
var ErrorNotInitialised = "INTERNAL ERROR: You called an option getter before you parsed the options or when help was requested."

// MessageOnUnknown - Engine found an option that is not part of the schema.
var MessageOnUnknown = "Unknown option '%s'"

// ErrorMissingArgument - Engine found a value taking option without a value.
var ErrorMissingArgument = "Missing argument for option '%s'!"

// HelpDescription - Description of the implicit help option.
var HelpDescription = "shows this help message."

// HelpNameHeader -
var HelpNameHeader = "NAME"

// HelpSynopsisHeader -
var HelpSynopsisHeader = "SYNOPSIS"

// HelpOptionsHeader -
var HelpOptionsHeader = "OPTIONS"
