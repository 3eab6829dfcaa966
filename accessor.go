// This file is part of go-cmdargs.
//
// Copyright (C) 2020-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package cmdargs

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/davecgh/go-spew/spew"

	"github.com/DavidGamba/go-cmdargs/engine"
	"github.com/DavidGamba/go-cmdargs/engine/getopt"
	"github.com/DavidGamba/go-cmdargs/help"
	"github.com/DavidGamba/go-cmdargs/option"
	"github.com/DavidGamba/go-cmdargs/text"
)

// Names of the help option every accessor declares.
const (
	HelpOption     = "h"
	HelpLongOption = "help"
)

// CustomOptions - Implemented by the application to declare its options and
// read them back after a parse.
type CustomOptions interface {
	// AddCustomOptions - Called once, when the schema is built.
	AddCustomOptions(schema *option.Schema)

	// ExtractCustomOptions - Called after every successful parse where help
	// wasn't requested.
	// Errors are returned unchanged by Parse.
	ExtractCustomOptions(a *Accessor) error
}

// Accessor - Declares, parses and type converts command line options.
//
// An Accessor is not safe for concurrent use.
type Accessor struct {
	custom      CustomOptions
	name        string
	description string
	engine      engine.Engine
	dateLayouts []string

	schemaOnce sync.Once
	schema     *option.Schema

	// nil until the first successful parse
	result        engine.Result
	helpRequested bool
}

// New - Returns an Accessor for the given custom options.
// custom can be nil, in which case only the help option is declared.
//
// By default options are parsed with go-getoptions, see Engine to change it.
func New(custom CustomOptions, fns ...ConfigFn) *Accessor {
	a := &Accessor{
		custom:        custom,
		name:          filepath.Base(os.Args[0]),
		engine:        getopt.New(),
		helpRequested: true,
	}
	for _, fn := range fns {
		fn(a)
	}
	return a
}

// Options - Returns the supported options.
// The schema is built on the first call and frozen, later calls return the
// same schema.
func (a *Accessor) Options() *option.Schema {
	a.schemaOnce.Do(func() {
		s := option.NewSchema()
		s.Add(option.New(HelpOption, option.NoArgs).
			SetLongName(HelpLongOption).
			SetDescription(text.HelpDescription))
		if a.custom != nil {
			a.custom.AddCustomOptions(s)
		}
		a.schema = s.Freeze()
		Logger.Debugf("schema built with %d options", s.Len())
	})
	return a.schema
}

// IsHelpRequested - Indicates if help was requested on the last parse.
// It is true before the first parse.
func (a *Accessor) IsHelpRequested() bool {
	return a.helpRequested
}

// Parse - Parses args, a copy of args is given to the engine.
//
// The result of the parse replaces the result of any earlier parse.
// When help was not requested, the custom options are extracted.
//
// Engine failures are returned as a *UsageError and leave the accessor as it
// was before the call.
func (a *Accessor) Parse(args []string) error {
	argv := make([]string, len(args))
	copy(argv, args)

	Logger.Debugf("parsing args: %q", argv)
	result, err := a.engine.Parse(a.Options(), argv)
	if err != nil {
		Logger.Debugf("engine failed: %+v", err)
		return &UsageError{msg: err.Error(), cause: err}
	}
	if debugEnabled() {
		Logger.Debugf("parse result: %s", spew.Sdump(result))
	}

	a.result = result
	a.helpRequested = result.HasOption(HelpOption)
	if a.helpRequested {
		Logger.Debugf("help requested, skipping custom option extraction")
		return nil
	}
	if a.custom == nil {
		return nil
	}
	return a.custom.ExtractCustomOptions(a)
}

// Help - Returns the automated help for the declared options.
func (a *Accessor) Help() string {
	options := a.Options().Options()
	return help.Name(a.name, a.description) + "\n" +
		help.Synopsis(a.name, options) + "\n" +
		help.OptionList(options)
}

func (a *Accessor) parsed() (engine.Result, error) {
	if a.result == nil {
		return nil, &InternalStateError{msg: text.ErrorNotParsed}
	}
	return a.result, nil
}
