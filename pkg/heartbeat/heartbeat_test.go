package heartbeat

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestHeartbeatFires(t *testing.T) {
	var count atomic.Int32
	h := Start(10*time.Millisecond, func(time.Time) {
		count.Add(1)
	})
	defer h.Stop()

	deadline := time.After(2 * time.Second)
	for count.Load() < 2 {
		select {
		case <-deadline:
			t.Fatal("heartbeat did not fire in time")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestHeartbeatStop(t *testing.T) {
	var count atomic.Int32
	h := Start(10*time.Millisecond, func(time.Time) {
		count.Add(1)
	})

	time.Sleep(35 * time.Millisecond)
	h.Stop()
	stopped := count.Load()

	time.Sleep(50 * time.Millisecond)
	if count.Load() != stopped {
		t.Fatal("heartbeat kept firing after Stop")
	}

	// Stop twice must not panic.
	h.Stop()
}
