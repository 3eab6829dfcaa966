// This file is part of go-cmdargs.
//
// Copyright (C) 2020-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package engine

import (
	"github.com/DavidGamba/go-cmdargs/option"
)

// Values - Result implementation shared by the engine backends.
// Values are stored under the option's short name and looked up through the
// schema so that long names resolve to the same entry.
type Values struct {
	schema *option.Schema
	called map[string]bool
	values map[string][]string
}

var _ Result = (*Values)(nil)

// NewValues - Returns an empty result for the given schema.
func NewValues(schema *option.Schema) *Values {
	return &Values{
		schema: schema,
		called: map[string]bool{},
		values: map[string][]string{},
	}
}

// Set - Marks the option as called and appends the given values.
// Names that are not part of the schema are ignored.
func (v *Values) Set(name string, values ...string) *Values {
	opt, ok := v.schema.Get(name)
	if !ok {
		return v
	}
	v.called[opt.Name] = true
	v.values[opt.Name] = append(v.values[opt.Name], values...)
	return v
}

func (v *Values) HasOption(name string) bool {
	opt, ok := v.schema.Get(name)
	if !ok {
		return false
	}
	return v.called[opt.Name]
}

func (v *Values) OptionValue(name string) (string, bool) {
	values, ok := v.OptionValues(name)
	if !ok {
		return "", false
	}
	return values[0], true
}

func (v *Values) OptionValues(name string) ([]string, bool) {
	opt, ok := v.schema.Get(name)
	if !ok || !v.called[opt.Name] {
		return nil, false
	}
	values := v.values[opt.Name]
	if len(values) == 0 {
		return nil, false
	}
	list := make([]string, len(values))
	copy(list, values)
	return list, true
}
