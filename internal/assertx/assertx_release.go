//go:build release

package assertx

// Require is a no-op in release builds: precondition checks are compiled
// out entirely rather than merely disabled at runtime.
func Require(cond bool, format string, args ...interface{}) {}
