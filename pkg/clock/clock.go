package clock

import "time"

// Instant is an opaque monotonic tick count. Instants are only meaningful
// relative to other Instants read from the same Source.
type Instant = int64

// Source reads instants from one monotonic clock facility.
type Source interface {
	// Now returns the current instant in native ticks.
	Now() Instant
	// Frequency returns the number of ticks per second, or 0 if the
	// source could not be initialized on this host.
	Frequency() int64
	// Supported reports whether the clock facility behind this source is
	// usable on the current host.
	Supported() bool
	Name() string
}

// epoch anchors the runtime-monotonic source. The value is arbitrary; only
// differences between reads matter.
var epoch = time.Now()

type monotonicSource struct{}

// Monotonic returns a Source backed by the Go runtime's monotonic clock.
// It is available on every platform and ticks in nanoseconds.
func Monotonic() Source {
	return monotonicSource{}
}

func (monotonicSource) Now() Instant {
	return time.Since(epoch).Nanoseconds()
}

func (monotonicSource) Frequency() int64 {
	return int64(time.Second)
}

func (monotonicSource) Supported() bool {
	return true
}

func (monotonicSource) Name() string {
	return "runtime-monotonic"
}
