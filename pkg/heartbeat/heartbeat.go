package heartbeat

import (
	"sync"
	"time"
)

// Heartbeat is a cancellable repeating timer. The owner must call Stop on
// teardown; an unstopped heartbeat would keep firing for the life of the
// process.

type Heartbeat struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

// Start fires fn every interval until Stop is called. fn runs on the
// heartbeat's own goroutine, so it should be quick and must not block.
func Start(interval time.Duration, fn func(now time.Time)) *Heartbeat {
	h := &Heartbeat{
		ticker: time.NewTicker(interval),
		done:   make(chan struct{}),
	}

	go func() {
		for {
			select {
			case now := <-h.ticker.C:
				fn(now)
			case <-h.done:
				return
			}
		}
	}()

	return h
}

// Stop cancels the heartbeat. Safe to call more than once.
func (h *Heartbeat) Stop() {
	h.once.Do(func() {
		h.ticker.Stop()
		close(h.done)
	})
}
