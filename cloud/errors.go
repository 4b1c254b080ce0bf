// errors.go — sentinel errors for the cloud package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site;
//     generators attach context via %w at the return site.

package cloud

import (
	"errors"
	"fmt"
)

// ErrTooFewPoints indicates that the requested point count is smaller than
// the allowed minimum for the generator.
// Usage: if errors.Is(err, ErrTooFewPoints) { /* raise n */ }.
var ErrTooFewPoints = errors.New("cloud: too few points")

// ErrBadClusterCount indicates that the cluster count is outside [1, n].
// Usage: if errors.Is(err, ErrBadClusterCount) { /* fix clusters */ }.
var ErrBadClusterCount = errors.New("cloud: cluster count out of range")

// ErrOptionViolation indicates that a WithX(...) option received a
// meaningless value (negative standard deviation, inverted bounds, nil RNG).
// The violation is recorded during option application and surfaced when the
// generator is invoked, never as a panic.
var ErrOptionViolation = errors.New("cloud: invalid option value")

// cloudErrorf wraps a sentinel with generator context:
// "<Generator>: <details>: <sentinel>".
func cloudErrorf(generator string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", generator, fmt.Sprintf(format, args...), sentinel)
}
