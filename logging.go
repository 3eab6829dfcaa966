// This file is part of go-cmdargs.
//
// Copyright (C) 2020-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package cmdargs

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.DebugLevel)
	return l
}

// debugEnabled - Reports if debug messages reach an output, used to skip
// building expensive messages.
func debugEnabled() bool {
	return Logger.IsLevelEnabled(logrus.DebugLevel) && Logger.Out != io.Discard
}
