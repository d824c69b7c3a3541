//go:build !linux && !windows

package clock

// DefaultSource returns the runtime-monotonic source on platforms without a
// dedicated high-resolution backend.
func DefaultSource() Source {
	return Monotonic()
}
