// This file is part of go-cmdargs.
//
// Copyright (C) 2020-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package option

import (
	"fmt"
)

// Schema - Ordered set of option declarations.
// Options can be looked up by either their short or long name.
//
// A Schema can be frozen, after which any attempt to add to it panics.
type Schema struct {
	options []*Option
	index   map[string]*Option
	frozen  bool
}

// NewSchema - Returns an empty Schema.
func NewSchema() *Schema {
	return &Schema{
		index: map[string]*Option{},
	}
}

// Add - Adds the given option declarations.
//
// It panics when the option has no name, when any of its names is already
// declared, or when the schema is frozen.
// Declaration errors are programming errors so they are reported right away.
func (s *Schema) Add(opts ...*Option) *Schema {
	for _, opt := range opts {
		if s.frozen {
			panic(fmt.Sprintf("option '%s' added to a frozen schema", opt.Name))
		}
		if opt.Name == "" {
			panic("option name can't be empty")
		}
		for _, alias := range opt.Aliases() {
			if _, ok := s.index[alias]; ok {
				panic(fmt.Sprintf("option/alias '%s' is already defined", alias))
			}
		}
		for _, alias := range opt.Aliases() {
			s.index[alias] = opt
		}
		s.options = append(s.options, opt)
	}
	return s
}

// AddOption - Convenience to declare an option that takes no value or a
// single value.
func (s *Schema) AddOption(name string, hasArg bool, description string) *Schema {
	arity := NoArgs
	if hasArg {
		arity = SingleArg
	}
	return s.Add(New(name, arity).SetDescription(description))
}

// Get - Returns the option declared with the given short or long name.
func (s *Schema) Get(name string) (*Option, bool) {
	opt, ok := s.index[name]
	return opt, ok
}

// Options - Returns the declared options in declaration order.
func (s *Schema) Options() []*Option {
	list := make([]*Option, len(s.options))
	copy(list, s.options)
	return list
}

// Len - Number of declared options.
func (s *Schema) Len() int {
	return len(s.options)
}

// Freeze - Stops the schema from accepting new declarations.
func (s *Schema) Freeze() *Schema {
	s.frozen = true
	return s
}

// Frozen - Indicates if the schema no longer accepts declarations.
func (s *Schema) Frozen() bool {
	return s.frozen
}
