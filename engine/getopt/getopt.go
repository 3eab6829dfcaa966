// This file is part of go-cmdargs.
//
// Copyright (C) 2020-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package getopt - Engine backed by go-getoptions.
//
// Every option is declared on a fresh getoptions.GetOpt for each parse so
// that state never leaks from one parse into the next.
// Value taking options are declared as string slices so that every
// occurrence of the option is kept in order.
// A negative number right after a value taking option is its value.
package getopt

import (
	"strings"

	"github.com/DavidGamba/go-getoptions"
	"github.com/pkg/errors"

	"github.com/DavidGamba/go-cmdargs/engine"
	"github.com/DavidGamba/go-cmdargs/option"
)

// MaxArgs - Maximum amount of values a multiple value option takes at once.
var MaxArgs = 99

// Engine - go-getoptions backed engine.
type Engine struct {
	mode getoptions.Mode
}

var _ engine.Engine = (*Engine)(nil)

// New - Returns an Engine using the go-getoptions Normal mode.
func New() *Engine {
	return &Engine{mode: getoptions.Normal}
}

// SetMode - Sets the go-getoptions operation mode for single dash options.
func (e *Engine) SetMode(mode getoptions.Mode) *Engine {
	e.mode = mode
	return e
}

// join - go-getoptions reads the value of `-a=-5` and `--a=-5`, except in
// SingleDash mode where the short form is `-a-5`.
func (e *Engine) join(token, value string) string {
	if e.mode == getoptions.SingleDash && !strings.HasPrefix(token, "--") {
		return token + value
	}
	return engine.JoinWithEquals(token, value)
}

// Parse - Declares the schema on a new getoptions.GetOpt and parses args.
func (e *Engine) Parse(schema *option.Schema, args []string) (engine.Result, error) {
	opt := getoptions.New()
	opt.SetMode(e.mode)
	opt.SetUnknownMode(getoptions.Fail)

	flags := map[string]*bool{}
	lists := map[string]*[]string{}
	for _, o := range schema.Options() {
		fns := []getoptions.ModifyFn{opt.Description(o.Description)}
		if o.LongName != "" && o.LongName != o.Name {
			fns = append(fns, opt.Alias(o.LongName))
		}
		switch o.Arity {
		case option.NoArgs:
			var b bool
			opt.BoolVar(&b, o.Name, false, fns...)
			flags[o.Name] = &b
		case option.SingleArg:
			var s []string
			opt.StringSliceVar(&s, o.Name, 1, 1, fns...)
			lists[o.Name] = &s
		default:
			var s []string
			opt.StringSliceVar(&s, o.Name, 1, MaxArgs, fns...)
			lists[o.Name] = &s
		}
	}

	_, err := opt.Parse(engine.JoinNegativeNumbers(schema, args, e.join))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	result := engine.NewValues(schema)
	for name := range flags {
		if opt.Called(name) {
			result.Set(name)
		}
	}
	for name, values := range lists {
		if opt.Called(name) {
			result.Set(name, *values...)
		}
	}
	return result, nil
}
