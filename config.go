// This file is part of go-cmdargs.
//
// Copyright (C) 2020-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package cmdargs

import (
	"github.com/DavidGamba/go-cmdargs/engine"
)

// ConfigFn - Function signature for functions that configure an Accessor.
type ConfigFn func(a *Accessor)

// Self - Set a custom name and description that will show in the automated help.
// If name is an empty string, the executable name is kept.
func Self(name string, description string) ConfigFn {
	return func(a *Accessor) {
		if name != "" {
			a.name = name
		}
		a.description = description
	}
}

// Engine - Parse with the given engine instead of go-getoptions.
func Engine(e engine.Engine) ConfigFn {
	return func(a *Accessor) {
		a.engine = e
	}
}

// DateLayouts - Additional time.Parse layouts accepted by the date getters.
// ISO 8601 dates (2006-01-02) are always accepted and tried first.
// Layouts should not be ambiguous between day and month.
func DateLayouts(layouts ...string) ConfigFn {
	return func(a *Accessor) {
		a.dateLayouts = append(a.dateLayouts, layouts...)
	}
}
