package timer

import (
	"github.com/akfreed/HighPerformanceTimer/pkg/clock"
	"github.com/akfreed/HighPerformanceTimer/pkg/errors"
)

const timerCaller = "timer"

// Timer is a high-performance stopwatch for tracking run time or
// controlling game loops. Mark a start point with Start, a stop point with
// Stop, and query the elapsed or remaining time against the configured
// interval. A Timer is a single-owner value: it is not synchronized and
// must not be mutated from multiple goroutines.
type Timer struct {
	src            clock.Source
	startTime      clock.Instant
	stopTime       clock.Instant
	interval       float64 // native ticks
	perSecond      float64
	perMillisecond float64
	valid          bool
}

// New returns a Timer backed by the best monotonic clock source for this
// platform, with the interval defaulted to 1/60th of a second.
func New() *Timer {
	return NewWithSource(clock.DefaultSource())
}

// NewWithSource returns a Timer backed by the given source. The source
// frequency is read once here and cached; a source reporting a zero
// frequency leaves the Timer usable but unsupported, and its measurements
// are meaningless.
func NewWithSource(src clock.Source) *Timer {
	perSecond := float64(src.Frequency())
	return &Timer{
		src:            src,
		perSecond:      perSecond,
		perMillisecond: perSecond / 1000,
		interval:       perSecond / 60, // default is 1/60th of a second
		valid:          src.Supported() && perSecond > 0,
	}
}

// IsSupportedPlatform reports whether the clock source behind this Timer
// was usable at construction time. Callers should check it once before
// trusting measurements.
func (t *Timer) IsSupportedPlatform() bool {
	return t.valid
}

// GetInterval returns the loop-pacing interval in seconds.
func (t *Timer) GetInterval() float64 {
	return t.interval / t.perSecond
}

// SetInterval sets the loop-pacing interval. The unit is ticks per second,
// e.g. 60 sets the interval to 1/60th of a second. A zero rate is a
// programming error: it is logged and the previous interval is kept.
func (t *Timer) SetInterval(ticksPerSecond float64) {
	if ticksPerSecond == 0 {
		errors.NonFatalError(errors.InvalidIntervalRate, "interval rate must not be zero", timerCaller).Log()
		return
	}
	t.interval = t.perSecond / ticksPerSecond
}

// Start marks the current instant as both the start point and the stop
// point, so the elapsed time reads zero until the next Stop.
func (t *Timer) Start() {
	now := t.src.Now()
	t.startTime = now
	t.stopTime = now
}

// Stop marks the current instant as the stop point. It does not halt
// anything; the clock source runs for the life of the process, and Stop
// may be called repeatedly to re-mark the stop point within one window.
func (t *Timer) Stop() {
	t.stopTime = t.src.Now()
}

// GetElapsed returns the time from the start point to the stop point in
// milliseconds. The result is not clamped and is negative if the stop
// point precedes the start point.
func (t *Timer) GetElapsed() float64 {
	return float64(t.stopTime-t.startTime) / t.perMillisecond
}

// GetRemaining returns interval minus elapsed, in milliseconds. A negative
// result means the interval has been exceeded and the loop is running
// behind schedule.
func (t *Timer) GetRemaining() float64 {
	return (t.interval - float64(t.stopTime-t.startTime)) / t.perMillisecond
}

// IntervalHasElapsed reports whether the time between the start and stop
// points has reached the interval. The comparison is done in native ticks
// so the boundary is not subject to millisecond-conversion rounding.
func (t *Timer) IntervalHasElapsed() bool {
	return float64(t.stopTime-t.startTime) >= t.interval
}
