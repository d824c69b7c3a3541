//go:build windows

package clock

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/akfreed/HighPerformanceTimer/pkg/logs"
)

// x/sys/windows does not wrap the performance counter, so the kernel32
// procs are loaded directly.
var (
	kernel32                      = windows.NewLazySystemDLL("kernel32.dll")
	procQueryPerformanceCounter   = kernel32.NewProc("QueryPerformanceCounter")
	procQueryPerformanceFrequency = kernel32.NewProc("QueryPerformanceFrequency")
)

type qpcSource struct {
	perSecond int64
}

// DefaultSource returns the highest-resolution monotonic source available
// on this host: the performance counter. The counter frequency is queried
// once here; a failed query marks the source unsupported but it remains
// callable.
func DefaultSource() Source {
	var perSecond int64
	ret, _, _ := procQueryPerformanceFrequency.Call(uintptr(unsafe.Pointer(&perSecond)))
	if ret == 0 || perSecond <= 0 {
		logs.NewLogger("clock").Warn("performance counter frequency unavailable, measurements will be meaningless")
		return qpcSource{}
	}
	return qpcSource{perSecond: perSecond}
}

func (s qpcSource) Now() Instant {
	var count int64
	ret, _, _ := procQueryPerformanceCounter.Call(uintptr(unsafe.Pointer(&count)))
	if ret == 0 {
		return 0
	}
	return count
}

func (s qpcSource) Frequency() int64 {
	if s.perSecond <= 0 {
		return 0
	}
	return s.perSecond
}

func (s qpcSource) Supported() bool {
	return s.perSecond > 0
}

func (s qpcSource) Name() string {
	return "performance-counter"
}
