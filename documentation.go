// This file is part of go-cmdargs.
//
// Copyright (C) 2020-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package cmdargs - Typed access to command line options on top of an option
parsing library.

An application implements CustomOptions to declare its options and to read
them back once the command line is parsed:

	type Args struct {
		from  *civil.Date
		limit *int
	}

	func (args *Args) AddCustomOptions(s *option.Schema) {
		s.Add(option.New("f", option.SingleArg).SetLongName("from"))
		s.Add(option.New("l", option.SingleArg).SetLongName("limit"))
	}

	func (args *Args) ExtractCustomOptions(a *cmdargs.Accessor) error {
		from, err := a.RequiredDateArg("f")
		if err != nil {
			return err
		}
		limit, err := a.RequiredIntArgRange("l", 1, 100)
		if err != nil {
			return err
		}
		args.from, args.limit = &from, &limit
		return nil
	}

Then parses the command line and checks for help before using the values:

	args := &Args{}
	a := cmdargs.New(args)
	err := a.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}
	if a.IsHelpRequested() {
		fmt.Fprint(os.Stderr, a.Help())
		os.Exit(1)
	}

# Features

• Every accessor declares `-h|--help`.
When it is given, ExtractCustomOptions is not called.

• Required and optional getters for strings, string lists, integers,
integers with a minimum or an inclusive range, and dates.
Optional getters report absent options, required getters fail with
`Missing required option: <id>.`.

• Values are only validated when the option was given.

• Every Parse call replaces the previous result.

• Errors caused by the user match ErrorUsage, errors caused by using the
accessor out of order match ErrorInternalState.

• Pluggable parsing engine: go-getoptions (default), spf13/pflag or
jessevdk/go-flags.

• Automated help from the option declarations.
*/
package cmdargs
