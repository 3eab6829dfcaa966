// This file is part of go-cmdargs.
//
// Copyright (C) 2020-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DavidGamba/go-cmdargs/option"
)

func TestValues(t *testing.T) {
	s := option.NewSchema().
		Add(option.New("h", option.NoArgs).SetLongName("help")).
		Add(option.New("b", option.MultipleArgs).SetLongName("bee"))

	v := NewValues(s)
	v.Set("help")
	v.Set("b", "1")
	v.Set("bee", "2", "3")
	v.Set("unknown", "x")

	assert.True(t, v.HasOption("h"))
	assert.True(t, v.HasOption("help"))
	assert.False(t, v.HasOption("unknown"))

	_, ok := v.OptionValue("h")
	assert.False(t, ok)

	first, ok := v.OptionValue("bee")
	assert.True(t, ok)
	assert.Equal(t, "1", first)

	list, ok := v.OptionValues("b")
	assert.True(t, ok)
	assert.Equal(t, []string{"1", "2", "3"}, list)

	// Callers can't modify the stored values
	list[0] = "changed"
	first, _ = v.OptionValue("b")
	assert.Equal(t, "1", first)
}

func TestFunc(t *testing.T) {
	s := option.NewSchema().AddOption("a", true, "")
	var got []string
	e := Func(func(schema *option.Schema, args []string) (Result, error) {
		got = args
		return NewValues(schema).Set("a", args[1]), nil
	})
	r, err := e.Parse(s, []string{"-a", "x"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"-a", "x"}, got)
	v, _ := r.OptionValue("a")
	assert.Equal(t, "x", v)
}
