// This file is part of go-cmdargs.
//
// Copyright (C) 2020-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package cmdargs

import (
	"bytes"
	"io"
	"testing"

	"github.com/DavidGamba/go-cmdargs/engine"
	"github.com/DavidGamba/go-cmdargs/engine/getopt"
	"github.com/DavidGamba/go-cmdargs/engine/goflags"
	"github.com/DavidGamba/go-cmdargs/engine/posix"
	"github.com/DavidGamba/go-cmdargs/option"
)

// setupTestLogging - Defines an output for the default Logger and returns a
// function that prints the output if the output is not empty.
//
// Usage:
//
//	logTestOutput := setupTestLogging(t)
//	defer logTestOutput()
func setupTestLogging(t *testing.T) func() {
	s := ""
	buf := bytes.NewBufferString(s)
	Logger.SetOutput(buf)
	return func() {
		Logger.SetOutput(io.Discard)
		if len(buf.String()) > 0 {
			t.Log("\n" + buf.String())
		}
	}
}

// testArgs - a single value option, b multiple value option.
type testArgs struct {
	addCalls     int
	extractCalls int
	extractErr   error
}

func (ta *testArgs) AddCustomOptions(s *option.Schema) {
	ta.addCalls++
	s.AddOption("a", true, "")
	s.Add(option.New("b", option.MultipleArgs).SetDescription(""))
}

func (ta *testArgs) ExtractCustomOptions(a *Accessor) error {
	ta.extractCalls++
	return ta.extractErr
}

// testEngines - every engine backend, getters must behave the same on all of them.
func testEngines() map[string]engine.Engine {
	return map[string]engine.Engine{
		"getopt":  getopt.New(),
		"posix":   posix.New("cmdargs.test"),
		"goflags": goflags.New("cmdargs.test"),
	}
}

// forEachEngine - Runs fn with a new accessor, for every engine, after
// parsing `-a argA -b 123 -b 456`.
func forEachEngine(t *testing.T, argA string, fn func(t *testing.T, a *Accessor)) {
	t.Helper()
	for name, e := range testEngines() {
		t.Run(name, func(t *testing.T) {
			logTestOutput := setupTestLogging(t)
			defer logTestOutput()

			a := New(&testArgs{}, Engine(e))
			err := a.Parse([]string{"-a", argA, "-b", "123", "-b", "456"})
			if err != nil {
				t.Fatalf("unexpected parse error: %s", err)
			}
			fn(t, a)
		})
	}
}
