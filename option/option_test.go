// This file is part of go-cmdargs.
//
// Copyright (C) 2020-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package option

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOption(t *testing.T) {
	tests := []struct {
		name    string
		option  *Option
		aliases []string
		hasArg  bool
		argName string
	}{
		{"flag", New("h", NoArgs).SetLongName("help"), []string{"h", "help"}, false, "value"},
		{"single", New("a", SingleArg), []string{"a"}, true, "value"},
		{"multiple", New("b", MultipleArgs).SetHelpArgName("item"), []string{"b"}, true, "item"},
		{"same long name", New("x", SingleArg).SetLongName("x"), []string{"x"}, true, "value"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.aliases, tt.option.Aliases()); diff != "" {
				t.Errorf("aliases mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tt.hasArg, tt.option.HasArg())
			assert.Equal(t, tt.argName, tt.option.ArgName())
		})
	}
}

func TestSchema(t *testing.T) {
	s := NewSchema()
	s.Add(New("h", NoArgs).SetLongName("help").SetDescription("shows this help message."))
	s.AddOption("a", true, "")
	s.Add(New("b", MultipleArgs))

	require.Equal(t, 3, s.Len())

	opt, ok := s.Get("help")
	require.True(t, ok)
	assert.Equal(t, "h", opt.Name)
	opt, ok = s.Get("h")
	require.True(t, ok)
	assert.Equal(t, "help", opt.LongName)

	opt, ok = s.Get("a")
	require.True(t, ok)
	assert.Equal(t, SingleArg, opt.Arity)

	_, ok = s.Get("c")
	assert.False(t, ok)

	names := []string{}
	for _, o := range s.Options() {
		names = append(names, o.Name)
	}
	assert.Equal(t, []string{"h", "a", "b"}, names)

	// The returned slice is a copy
	list := s.Options()
	list[0] = nil
	assert.NotNil(t, s.Options()[0])
}

func TestSchemaPanics(t *testing.T) {
	t.Run("duplicate name", func(t *testing.T) {
		s := NewSchema().AddOption("a", true, "")
		assert.PanicsWithValue(t, "option/alias 'a' is already defined", func() {
			s.AddOption("a", false, "")
		})
	})
	t.Run("duplicate long name", func(t *testing.T) {
		s := NewSchema().Add(New("h", NoArgs).SetLongName("help"))
		assert.PanicsWithValue(t, "option/alias 'help' is already defined", func() {
			s.Add(New("x", NoArgs).SetLongName("help"))
		})
		// Nothing was registered for the failed declaration
		_, ok := s.Get("x")
		assert.False(t, ok)
	})
	t.Run("empty name", func(t *testing.T) {
		assert.PanicsWithValue(t, "option name can't be empty", func() {
			NewSchema().Add(New("", NoArgs))
		})
	})
	t.Run("frozen", func(t *testing.T) {
		s := NewSchema().AddOption("a", true, "").Freeze()
		assert.True(t, s.Frozen())
		assert.PanicsWithValue(t, "option 'b' added to a frozen schema", func() {
			s.AddOption("b", true, "")
		})
	})
}

func TestSort(t *testing.T) {
	list := []*Option{New("c", NoArgs), New("a", NoArgs), New("b", NoArgs)}
	Sort(list)
	assert.Equal(t, "a", list[0].Name)
	assert.Equal(t, "b", list[1].Name)
	assert.Equal(t, "c", list[2].Name)
}

func TestArityString(t *testing.T) {
	assert.Equal(t, "none", NoArgs.String())
	assert.Equal(t, "single", SingleArg.String())
	assert.Equal(t, "multiple", MultipleArgs.String())
}
