package clock

import (
	"testing"
	"time"
)

func Test_defaultSourceUsable(t *testing.T) {
	src := DefaultSource()
	t.Logf("default source: %s", src.Name())

	if !src.Supported() {
		t.Skip("no usable monotonic clock source on this host")
	}
	if src.Frequency() <= 0 {
		t.Errorf("supported source reports frequency %d", src.Frequency())
		t.FailNow()
	}
	if src.Name() == "" {
		t.Error("source has no name")
		t.FailNow()
	}
}

func Test_defaultSourceNeverGoesBackward(t *testing.T) {
	src := DefaultSource()
	if !src.Supported() {
		t.Skip("no usable monotonic clock source on this host")
	}

	prev := src.Now()
	for i := 0; i < 10; i++ {
		time.Sleep(time.Millisecond)
		now := src.Now()
		if now < prev {
			t.Errorf("clock went backward: %d after %d", now, prev)
			t.FailNow()
		}
		prev = now
	}
}

func Test_monotonicSourceAdvances(t *testing.T) {
	src := Monotonic()

	if !src.Supported() {
		t.Error("runtime-monotonic source must always be supported")
		t.FailNow()
	}
	if src.Frequency() != int64(time.Second) {
		t.Errorf("runtime-monotonic frequency is %d, want nanosecond ticks", src.Frequency())
		t.FailNow()
	}

	before := src.Now()
	time.Sleep(5 * time.Millisecond)
	after := src.Now()
	if after <= before {
		t.Errorf("source did not advance across a sleep: %d -> %d", before, after)
		t.FailNow()
	}
}
