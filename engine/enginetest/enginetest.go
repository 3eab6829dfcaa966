// This file is part of go-cmdargs.
//
// Copyright (C) 2020-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package enginetest - Conformance tests shared by the engine backends.
package enginetest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DavidGamba/go-cmdargs/engine"
	"github.com/DavidGamba/go-cmdargs/option"
)

// Schema - h/help flag, a single value option and b multiple value option.
func Schema() *option.Schema {
	return option.NewSchema().
		Add(option.New("h", option.NoArgs).SetLongName("help").SetDescription("shows this help message.")).
		AddOption("a", true, "").
		Add(option.New("b", option.MultipleArgs)).
		Add(option.New("v", option.NoArgs).SetLongName("verbose")).
		Add(option.New("f", option.SingleArg).SetLongName("from")).
		Freeze()
}

// Run - Runs the conformance tests against e.
func Run(t *testing.T, e engine.Engine) {
	t.Helper()

	t.Run("values", func(t *testing.T) {
		r, err := e.Parse(Schema(), []string{"-a", "abc", "-b", "123", "-b", "456"})
		require.NoError(t, err)

		assert.True(t, r.HasOption("a"))
		assert.True(t, r.HasOption("b"))
		assert.False(t, r.HasOption("h"))
		assert.False(t, r.HasOption("help"))
		assert.False(t, r.HasOption("c"))

		v, ok := r.OptionValue("a")
		assert.True(t, ok)
		assert.Equal(t, "abc", v)

		v, ok = r.OptionValue("b")
		assert.True(t, ok)
		assert.Equal(t, "123", v)

		list, ok := r.OptionValues("b")
		assert.True(t, ok)
		assert.Equal(t, []string{"123", "456"}, list)

		list, ok = r.OptionValues("a")
		assert.True(t, ok)
		assert.Equal(t, []string{"abc"}, list)

		_, ok = r.OptionValue("c")
		assert.False(t, ok)
		_, ok = r.OptionValues("c")
		assert.False(t, ok)
	})

	t.Run("duplicates are kept in order", func(t *testing.T) {
		r, err := e.Parse(Schema(), []string{"-b", "x", "-b", "y", "-b", "x"})
		require.NoError(t, err)
		list, ok := r.OptionValues("b")
		assert.True(t, ok)
		assert.Equal(t, []string{"x", "y", "x"}, list)
	})

	t.Run("repeated single value option", func(t *testing.T) {
		r, err := e.Parse(Schema(), []string{"-a", "first", "-a", "second"})
		require.NoError(t, err)
		v, _ := r.OptionValue("a")
		assert.Equal(t, "first", v)
		list, _ := r.OptionValues("a")
		assert.Equal(t, []string{"first", "second"}, list)
	})

	t.Run("short help", func(t *testing.T) {
		r, err := e.Parse(Schema(), []string{"-h"})
		require.NoError(t, err)
		assert.True(t, r.HasOption("h"))
		assert.True(t, r.HasOption("help"))
		_, ok := r.OptionValue("h")
		assert.False(t, ok)
	})

	t.Run("long help", func(t *testing.T) {
		r, err := e.Parse(Schema(), []string{"--help"})
		require.NoError(t, err)
		assert.True(t, r.HasOption("h"))
	})

	t.Run("long name with value", func(t *testing.T) {
		r, err := e.Parse(Schema(), []string{"--from", "2018-12-03", "--verbose"})
		require.NoError(t, err)
		v, ok := r.OptionValue("f")
		assert.True(t, ok)
		assert.Equal(t, "2018-12-03", v)
		v, ok = r.OptionValue("from")
		assert.True(t, ok)
		assert.Equal(t, "2018-12-03", v)
		assert.True(t, r.HasOption("v"))
	})

	t.Run("long name with equals", func(t *testing.T) {
		r, err := e.Parse(Schema(), []string{"--from=2018-12-03"})
		require.NoError(t, err)
		v, _ := r.OptionValue("f")
		assert.Equal(t, "2018-12-03", v)
	})

	t.Run("no args", func(t *testing.T) {
		r, err := e.Parse(Schema(), []string{})
		require.NoError(t, err)
		assert.False(t, r.HasOption("h"))
		assert.False(t, r.HasOption("a"))
	})

	t.Run("empty arg", func(t *testing.T) {
		r, err := e.Parse(Schema(), []string{""})
		require.NoError(t, err)
		assert.False(t, r.HasOption("h"))
	})

	t.Run("unknown option", func(t *testing.T) {
		_, err := e.Parse(Schema(), []string{"--unknown"})
		assert.EqualError(t, err, "Unknown option 'unknown'")

		_, err = e.Parse(Schema(), []string{"-x"})
		assert.EqualError(t, err, "Unknown option 'x'")
	})

	t.Run("missing value", func(t *testing.T) {
		_, err := e.Parse(Schema(), []string{"-a"})
		assert.EqualError(t, err, "Missing argument for option 'a'!")
	})

	t.Run("negative number values", func(t *testing.T) {
		r, err := e.Parse(Schema(), []string{"-a", "-5", "-b", "-1.5", "--from", "-3"})
		require.NoError(t, err)
		v, _ := r.OptionValue("a")
		assert.Equal(t, "-5", v)
		list, _ := r.OptionValues("b")
		assert.Equal(t, []string{"-1.5"}, list)
		v, _ = r.OptionValue("f")
		assert.Equal(t, "-3", v)
	})

	t.Run("fresh result per parse", func(t *testing.T) {
		s := Schema()
		first, err := e.Parse(s, []string{"-a", "abc", "-b", "1"})
		require.NoError(t, err)
		second, err := e.Parse(s, []string{"-b", "2"})
		require.NoError(t, err)

		assert.True(t, first.HasOption("a"))
		assert.False(t, second.HasOption("a"))
		list, _ := second.OptionValues("b")
		assert.Equal(t, []string{"2"}, list)
	})
}
