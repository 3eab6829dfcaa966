// This file is part of go-cmdargs.
//
// Copyright (C) 2020-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package engine - contract between the accessor and the option parsing
// library that tokenizes the command line.
package engine

import (
	"github.com/DavidGamba/go-cmdargs/option"
)

// Engine - Parses args against a schema.
//
// Parse must not keep references to args and must return a fresh Result on
// every call.
// It fails when args don't conform to the schema: unknown options, missing
// values for value taking options, etc.
type Engine interface {
	Parse(schema *option.Schema, args []string) (Result, error)
}

// Result - Read only view of a single parse.
// Options can be queried by either their short or long name.
type Result interface {
	// HasOption - Indicates if the option was passed on the command line.
	HasOption(name string) bool

	// OptionValue - Returns the first value given to the option.
	OptionValue(name string) (string, bool)

	// OptionValues - Returns every value given to the option in the order
	// they were passed.
	OptionValues(name string) ([]string, bool)
}

// Func - Adapter to use an ordinary function as an Engine.
type Func func(schema *option.Schema, args []string) (Result, error)

// Parse - Calls fn(schema, args).
func (fn Func) Parse(schema *option.Schema, args []string) (Result, error) {
	return fn(schema, args)
}
