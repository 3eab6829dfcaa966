// This file is part of go-cmdargs.
//
// Copyright (C) 2020-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package option - option declarations and the schema that holds them.
package option

import (
	"sort"
)

// Arity - Indicates how many values an option takes.
type Arity int

// Arities
const (
	NoArgs       Arity = iota // flag, takes no value
	SingleArg                 // takes exactly one value per occurrence
	MultipleArgs              // takes one or more values per occurrence
)

func (a Arity) String() string {
	switch a {
	case SingleArg:
		return "single"
	case MultipleArgs:
		return "multiple"
	default:
		return "none"
	}
}

// Option - declaration of a single command line option.
type Option struct {
	Name        string // short name, used with a single dash
	LongName    string // optional long name, used with a double dash
	Description string // used for help
	Arity       Arity
	HelpArgName string // optional arg name used for help, defaults to "value"
}

// New - Returns a new option declaration.
func New(name string, arity Arity) *Option {
	return &Option{
		Name:  name,
		Arity: arity,
	}
}

// SetLongName - Sets the long name of the option.
func (opt *Option) SetLongName(name string) *Option {
	opt.LongName = name
	return opt
}

// SetDescription - Sets the description used in the help output.
func (opt *Option) SetDescription(msg string) *Option {
	opt.Description = msg
	return opt
}

// SetHelpArgName - Sets the argument name used in the help output.
// For example, by default a single value option will read:
//
//	-f|--from <value>
//
// If SetHelpArgName("date") is used it will read:
//
//	-f|--from <date>
func (opt *Option) SetHelpArgName(name string) *Option {
	opt.HelpArgName = name
	return opt
}

// Aliases - Returns every name the option can be called with.
func (opt *Option) Aliases() []string {
	if opt.LongName == "" || opt.LongName == opt.Name {
		return []string{opt.Name}
	}
	return []string{opt.Name, opt.LongName}
}

// HasArg - Indicates if the option takes a value.
func (opt *Option) HasArg() bool {
	return opt.Arity != NoArgs
}

// ArgName - Returns the argument name used in the help output.
func (opt *Option) ArgName() string {
	if opt.HelpArgName != "" {
		return opt.HelpArgName
	}
	return "value"
}

// Sort Interface
func Sort(list []*Option) {
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name < list[j].Name
	})
}
