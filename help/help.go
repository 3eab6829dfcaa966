// This file is part of go-cmdargs.
//
// Copyright (C) 2020-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package help - Automated help output for a schema.
package help

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/DavidGamba/go-cmdargs/option"
	"github.com/DavidGamba/go-cmdargs/text"
)

// Padding -
var Padding = 4

// Width - Synopsis lines are wrapped before reaching it.
var Width = 80

// Name - Returns the NAME section.
func Name(scriptName, description string) string {
	out := scriptName
	if description != "" {
		out += fmt.Sprintf(" - %s", description)
	}
	return fmt.Sprintf("%s:\n%s%s\n", text.HelpNameHeader, strings.Repeat(" ", Padding), out)
}

// aliasList - -a|--all
func aliasList(opt *option.Option) string {
	aliases := []string{}
	for _, alias := range opt.Aliases() {
		if alias == opt.Name {
			aliases = append(aliases, "-"+alias)
		} else {
			aliases = append(aliases, "--"+alias)
		}
	}
	return strings.Join(aliases, "|")
}

func synopsis(opt *option.Option) string {
	aliasStr := aliasList(opt)
	switch opt.Arity {
	case option.SingleArg:
		return fmt.Sprintf("[%s <%s>]", aliasStr, opt.ArgName())
	case option.MultipleArgs:
		return fmt.Sprintf("[%s <%s>...]...", aliasStr, opt.ArgName())
	default:
		return fmt.Sprintf("[%s]", aliasStr)
	}
}

// Synopsis - Returns the SYNOPSIS section.
// Options are listed in the given order.
func Synopsis(scriptName string, options []*option.Option) string {
	scriptName = strings.Repeat(" ", Padding) + scriptName
	var out string
	line := scriptName
	for _, opt := range options {
		syn := synopsis(opt)
		if len(line)+len(syn)+1 > Width {
			out += line + "\n"
			line = fmt.Sprintf("%s %s", strings.Repeat(" ", len(scriptName)), syn)
		} else {
			line += fmt.Sprintf(" %s", syn)
		}
	}
	out += line
	return fmt.Sprintf("%s:\n%s\n", text.HelpSynopsisHeader, out)
}

// pad - Given a string and a padding factor it will return the string padded with spaces.
func pad(s string, factor int) string {
	return fmt.Sprintf("%-"+strconv.Itoa(factor)+"s", s)
}

// OptionList - Return a formatted list of options and their descriptions.
// Options are listed in the given order.
func OptionList(options []*option.Option) string {
	if len(options) == 0 {
		return ""
	}
	entries := make([]string, len(options))
	factor := 0
	for i, opt := range options {
		entry := aliasList(opt)
		switch opt.Arity {
		case option.SingleArg:
			entry += " <" + opt.ArgName() + ">"
		case option.MultipleArgs:
			entry += " <" + opt.ArgName() + ">..."
		}
		entries[i] = entry
		if len(entry) > factor {
			factor = len(entry)
		}
	}
	padding := strings.Repeat(" ", Padding)
	out := fmt.Sprintf("%s:\n", text.HelpOptionsHeader)
	for i, opt := range options {
		if opt.Description == "" {
			out += fmt.Sprintf("%s%s\n\n", padding, entries[i])
			continue
		}
		description := strings.Replace(opt.Description, "\n", "\n"+padding+strings.Repeat(" ", factor+Padding), -1)
		out += fmt.Sprintf("%s%s%s%s\n\n", padding, pad(entries[i], factor), padding, description)
	}
	return out
}
