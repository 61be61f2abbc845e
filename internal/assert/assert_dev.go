//go:build !release

package assert

import "fmt"

// That panics with the formatted message if cond is false.
//
// This is compiled out in release builds. Use it for invariants that, if
// violated, indicate a bug in the engine itself rather than caller misuse.
func That(cond bool, format string, args ...any) { //nolint:goprintffuncname
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
