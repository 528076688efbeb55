//go:build !release

// Package assertx provides a single removable precondition check shared by
// dynconn's lower layers. In default (debug) builds a failed check panics
// with a formatted message; the "release" build tag compiles the check out
// entirely (see assertx_release.go), per the removable-assertion policy
// described for this repo's core data structures.
package assertx

import "fmt"

// Require panics with the formatted message if cond is false.
//
// Callers use this exclusively for precondition violations — programming
// errors such as linking two already-connected vertices — never for
// ordinary, recoverable conditions. Those are absorbed as no-ops or
// reported as nil results by the caller.
func Require(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
