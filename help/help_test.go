// This file is part of go-cmdargs.
//
// Copyright (C) 2020-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package help

import (
	"fmt"
	"strings"
	"testing"

	"github.com/DavidGamba/go-cmdargs/option"
)

// Test helper to compare two string outputs and find the first difference
func firstDiff(got, expected string) string {
	same := ""
	for i, gc := range got {
		if len([]rune(expected)) <= i {
			return fmt.Sprintf("Index: %d | diff: got '%s' - exp '%s'\n", len(expected), got, expected)
		}
		if gc != []rune(expected)[i] {
			return fmt.Sprintf("Index: %d | diff: got '%c' - exp '%c'\n%s\n", i, gc, []rune(expected)[i], same)
		}
		same += string(gc)
	}
	if len(expected) > len(got) {
		return fmt.Sprintf("Index: %d | diff: got '%s' - exp '%s'\n", len(got), got, expected)
	}
	return ""
}

func testOptions() []*option.Option {
	return []*option.Option{
		option.New("h", option.NoArgs).SetLongName("help").SetDescription("shows this help message."),
		option.New("f", option.SingleArg).SetLongName("from").SetHelpArgName("date").SetDescription("First day of the report."),
		option.New("t", option.MultipleArgs).SetLongName("tag").SetDescription("Only include entries with the tag.\nCan be repeated."),
		option.New("q", option.NoArgs),
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		name        string
		description string
		expected    string
	}{
		{"report", "", "NAME:\n    report\n"},
		{"report", "Daily report", "NAME:\n    report - Daily report\n"},
	}
	for _, tt := range tests {
		got := Name(tt.name, tt.description)
		if got != tt.expected {
			t.Errorf("Unexpected name:\n%s", firstDiff(got, tt.expected))
		}
	}
}

func TestSynopsis(t *testing.T) {
	got := Synopsis("report", testOptions())
	expected := `SYNOPSIS:
    report [-h|--help] [-f|--from <date>] [-t|--tag <value>...]... [-q]
`
	if got != expected {
		t.Errorf("Unexpected synopsis:\n%s", firstDiff(got, expected))
	}
}

func TestSynopsisWraps(t *testing.T) {
	options := testOptions()
	for _, name := range []string{"one", "two", "three"} {
		options = append(options, option.New(name[:1]+"x", option.SingleArg).SetLongName("long-option-"+name))
	}
	got := Synopsis("report", options)
	for i, line := range strings.Split(strings.TrimSuffix(got, "\n"), "\n") {
		if len(line) > Width {
			t.Errorf("line %d is longer than %d: '%s'", i, Width, line)
		}
	}
	if !strings.Contains(got, "\n           [") {
		t.Errorf("continuation lines not aligned with the script name:\n%s", got)
	}
}

func TestOptionList(t *testing.T) {
	got := OptionList(testOptions())
	expected := `OPTIONS:
    -h|--help              shows this help message.

    -f|--from <date>       First day of the report.

    -t|--tag <value>...    Only include entries with the tag.
                           Can be repeated.

    -q

`
	if got != expected {
		t.Errorf("Unexpected option list:\n%s", firstDiff(got, expected))
	}
	if OptionList(nil) != "" {
		t.Errorf("expected empty output without options")
	}
}
