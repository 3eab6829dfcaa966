// This file is part of go-cmdargs.
//
// Copyright (C) 2020-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package posix - Engine backed by spf13/pflag.
//
// Single character short names become pflag shorthands.
// Options without a long name use their short name as the long name.
// Value taking options take one value per occurrence, a value can start with
// a dash.
package posix

import (
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/DavidGamba/go-cmdargs/engine"
	"github.com/DavidGamba/go-cmdargs/option"
)

// Engine - pflag backed engine.
type Engine struct {
	name string
}

var _ engine.Engine = (*Engine)(nil)

// New - Returns an Engine, name is used by pflag in its error messages.
func New(name string) *Engine {
	return &Engine{name: name}
}

// Parse - Declares the schema on a new pflag.FlagSet and parses args.
func (e *Engine) Parse(schema *option.Schema, args []string) (engine.Result, error) {
	fs := pflag.NewFlagSet(e.name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.SortFlags = false

	// short name => flag names that set it
	names := map[string][]string{}
	for _, o := range schema.Options() {
		long := o.LongName
		if long == "" {
			long = o.Name
		}
		short := ""
		if len(o.Name) == 1 {
			short = o.Name
		}
		switch o.Arity {
		case option.NoArgs:
			fs.BoolP(long, short, false, o.Description)
		default:
			fs.StringArrayP(long, short, nil, o.Description)
		}
		names[o.Name] = []string{long}

		// A multi character short name can't be a shorthand, expose it as a
		// hidden long flag sharing the same value.
		if short == "" && long != o.Name {
			f := fs.Lookup(long)
			fs.AddFlag(&pflag.Flag{
				Name:        o.Name,
				Usage:       f.Usage,
				Value:       f.Value,
				DefValue:    f.DefValue,
				NoOptDefVal: f.NoOptDefVal,
				Hidden:      true,
			})
			names[o.Name] = append(names[o.Name], o.Name)
		}
	}

	err := fs.Parse(args)
	if err != nil {
		return nil, parseError(err)
	}

	result := engine.NewValues(schema)
	for _, o := range schema.Options() {
		changed := false
		for _, n := range names[o.Name] {
			if fs.Changed(n) {
				changed = true
			}
		}
		if !changed {
			continue
		}
		if o.Arity == option.NoArgs {
			result.Set(o.Name)
			continue
		}
		values, err := fs.GetStringArray(names[o.Name][0])
		if err != nil {
			return nil, errors.WithStack(err)
		}
		result.Set(o.Name, values...)
	}
	return result, nil
}

func parseError(err error) error {
	var unknown *pflag.NotExistError
	if errors.As(err, &unknown) {
		return engine.UnknownOptionError(unknown.GetSpecifiedName(), err)
	}
	var missing *pflag.ValueRequiredError
	if errors.As(err, &missing) {
		return engine.MissingArgumentError(missing.GetSpecifiedName(), err)
	}
	return errors.WithStack(err)
}
