//go:build release

package assert

// That is a no-op in release builds; invariant checks are assumed to have
// already been exercised under the dev build tag.
func That(cond bool, format string, args ...any) {}
