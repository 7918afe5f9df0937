package ratelimit

import (
	"testing"
	"time"
)

func TestLimiter_SpacesRequests(t *testing.T) {
	l := NewPerMinute(60) // one per second
	base := time.Date(2021, time.March, 12, 14, 0, 0, 0, time.UTC)

	if !l.Allow(base) {
		t.Fatal("first request should be admitted")
	}
	if l.Allow(base.Add(200 * time.Millisecond)) {
		t.Error("request inside the interval should be rejected")
	}
	if !l.Allow(base.Add(time.Second)) {
		t.Error("request at the interval boundary should be admitted")
	}
	if !l.Allow(base.Add(5 * time.Second)) {
		t.Error("request well past the interval should be admitted")
	}
}

func TestLimiter_RejectionDoesNotPushSlot(t *testing.T) {
	l := NewPerMinute(60)
	base := time.Date(2021, time.March, 12, 14, 0, 0, 0, time.UTC)

	l.Allow(base)
	l.Allow(base.Add(500 * time.Millisecond)) // rejected
	if !l.Allow(base.Add(time.Second)) {
		t.Error("rejected request must not delay the next slot")
	}
}

func TestLimiter_Disabled(t *testing.T) {
	for _, rpm := range []int{0, -5} {
		l := NewPerMinute(rpm)
		if l != nil {
			t.Fatalf("NewPerMinute(%d) = %v, want nil", rpm, l)
		}
		now := time.Now()
		for i := 0; i < 3; i++ {
			if !l.Allow(now) {
				t.Fatal("nil limiter must admit everything")
			}
		}
	}
}
