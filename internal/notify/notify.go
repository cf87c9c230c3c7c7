// Package notify holds the one-shot notification that the editor shows
// once it has settled into the buffer after a collision.
//
// The collision is resolved before the editor finishes opening the
// file, so the message cannot be printed immediately: it would be
// overdrawn by the editor's own startup output. Instead the message is
// parked here and drained on the first buffer-entered callback.
package notify

import "sync"

// Scheduler parks at most one pending notification. Scheduling a new
// message replaces any previous one; only the latest collision matters.
type Scheduler struct {
	mu      sync.Mutex
	pending string
	set     bool
}

// NewScheduler returns an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Schedule parks msg for the next BufferEntered call, replacing any
// previously scheduled message.
func (s *Scheduler) Schedule(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = msg
	s.set = true
}

// BufferEntered drains the pending message. The second return is false
// when nothing was scheduled. Draining clears the slot, so a message is
// delivered at most once no matter how many buffer events follow.
func (s *Scheduler) BufferEntered() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return "", false
	}
	msg := s.pending
	s.pending = ""
	s.set = false
	return msg, true
}

// Pending reports whether a message is waiting without draining it.
func (s *Scheduler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set
}
