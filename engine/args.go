// This file is part of go-cmdargs.
//
// Copyright (C) 2020-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/DavidGamba/go-cmdargs/option"
	"github.com/DavidGamba/go-cmdargs/text"
)

// JoinFn - Attaches value to the option token it follows, for example
// `-a` and `-5` into `-a=-5`.
type JoinFn func(token, value string) string

// JoinWithEquals - Joins token and value with `=`.
func JoinWithEquals(token, value string) string {
	return token + "=" + value
}

// JoinNegativeNumbers - Returns a copy of args where a negative number
// following a value taking option of the schema is attached to the option
// with join.
// Parsers that consider every argument starting with `-` an option then read
// the number as the option value.
//
// Only the argument right after the option is joined and arguments after `--`
// are left untouched.
func JoinNegativeNumbers(schema *option.Schema, args []string, join JoinFn) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}
		if i+1 < len(args) && isNegativeNumber(args[i+1]) {
			if o, ok := lookupToken(schema, arg); ok && o.HasArg() {
				out = append(out, join(arg, args[i+1]))
				i++
				continue
			}
		}
		out = append(out, arg)
	}
	return out
}

// lookupToken - Returns the option for `-name` or `--name`.
func lookupToken(schema *option.Schema, token string) (*option.Option, bool) {
	var name string
	switch {
	case strings.HasPrefix(token, "--"):
		name = token[2:]
	case strings.HasPrefix(token, "-"):
		name = token[1:]
	default:
		return nil, false
	}
	if name == "" || strings.HasPrefix(name, "-") || strings.Contains(name, "=") {
		return nil, false
	}
	return schema.Get(name)
}

func isNegativeNumber(s string) bool {
	if len(s) < 2 || s[0] != '-' || s[1] < '0' || s[1] > '9' {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// Error - Parse error with a message common to every engine.
// The error returned by the parsing library is kept as its cause.
type Error struct {
	msg   string
	cause error
}

func (e *Error) Error() string { return e.msg }

// Cause - Returns the parsing library error.
func (e *Error) Cause() error { return e.cause }

func (e *Error) Unwrap() error { return e.cause }

// UnknownOptionError - name is the option as given, without leading dashes.
func UnknownOptionError(name string, cause error) error {
	return &Error{msg: fmt.Sprintf(text.MessageOnUnknown, name), cause: cause}
}

// MissingArgumentError - name is the option as given, without leading dashes.
func MissingArgumentError(name string, cause error) error {
	return &Error{msg: fmt.Sprintf(text.ErrorMissingArgument, name), cause: cause}
}
