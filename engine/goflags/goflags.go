// This file is part of go-cmdargs.
//
// Copyright (C) 2020-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package goflags - Engine backed by jessevdk/go-flags.
//
// go-flags reads option declarations from struct tags, the schema is turned
// into a struct type built at parse time with one field per option.
// Value taking options take one value per occurrence.
package goflags

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/DavidGamba/go-cmdargs/engine"
	"github.com/DavidGamba/go-cmdargs/option"
)

// Engine - go-flags backed engine.
type Engine struct {
	name string
}

var _ engine.Engine = (*Engine)(nil)

// New - Returns an Engine, name is the application name used by go-flags.
func New(name string) *Engine {
	return &Engine{name: name}
}

// field - Struct field declared for an option, an option has a second hidden
// field when its short name is longer than one character.
type field struct {
	owner string // schema short name
	long  string
}

var (
	boolType  = reflect.TypeOf(false)
	sliceType = reflect.TypeOf([]string(nil))
)

// Parse - Declares the schema on a new flags.Parser and parses args.
func (e *Engine) Parse(schema *option.Schema, args []string) (engine.Result, error) {
	var decls []field
	var structFields []reflect.StructField
	declare := func(o *option.Option, long string, tag string) {
		typ := sliceType
		if o.Arity == option.NoArgs {
			typ = boolType
		} else {
			tag += ` unquote:"false"`
		}
		structFields = append(structFields, reflect.StructField{
			Name: fmt.Sprintf("Option%d", len(structFields)),
			Type: typ,
			Tag:  reflect.StructTag(tag),
		})
		decls = append(decls, field{owner: o.Name, long: long})
	}

	for _, o := range schema.Options() {
		long := o.LongName
		if long == "" {
			long = o.Name
		}
		tag := `long:` + strconv.Quote(long) + ` description:` + strconv.Quote(o.Description)
		if len(o.Name) == 1 {
			tag += ` short:` + strconv.Quote(o.Name)
		}
		declare(o, long, tag)

		// A multi character short name can't be a go-flags short name,
		// expose it as a hidden long option.
		if len(o.Name) > 1 && long != o.Name {
			declare(o, o.Name, `long:`+strconv.Quote(o.Name)+` hidden:"true"`)
		}
	}

	data := reflect.New(reflect.StructOf(structFields))
	parser := flags.NewNamedParser(e.name, flags.PassDoubleDash)
	_, err := parser.AddGroup("Application Options", "", data.Interface())
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// go-flags names options in its errors as `-a, --long`
	labels := map[string]string{}
	declared := make([]*flags.Option, len(decls))
	for i, d := range decls {
		declared[i] = parser.FindOptionByLongName(d.long)
		if declared[i] != nil {
			labels[declared[i].String()] = d.owner
		}
	}

	_, err = parser.ParseArgs(engine.JoinNegativeNumbers(schema, args, engine.JoinWithEquals))
	if err != nil {
		return nil, parseError(labels, err)
	}

	result := engine.NewValues(schema)
	for i, d := range decls {
		if declared[i] == nil || !declared[i].IsSet() {
			continue
		}
		v := data.Elem().Field(i)
		if v.Kind() == reflect.Bool {
			result.Set(d.owner)
			continue
		}
		result.Set(d.owner, v.Interface().([]string)...)
	}
	return result, nil
}

func parseError(labels map[string]string, err error) error {
	ferr, ok := err.(*flags.Error)
	if !ok {
		return errors.WithStack(err)
	}
	name := quoted(ferr.Message)
	switch ferr.Type {
	case flags.ErrUnknownFlag:
		return engine.UnknownOptionError(name, err)
	case flags.ErrExpectedArgument:
		if owner, ok := labels[name]; ok {
			name = owner
		}
		return engine.MissingArgumentError(strings.TrimLeft(name, "-"), err)
	}
	return errors.WithStack(err)
}

// quoted - Returns the first text quoted as `text' in msg.
func quoted(msg string) string {
	start := strings.Index(msg, "`")
	if start < 0 {
		return ""
	}
	end := strings.Index(msg[start+1:], "'")
	if end < 0 {
		return ""
	}
	return msg[start+1 : start+1+end]
}
