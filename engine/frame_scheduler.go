package engine

import "time"

// FrameScheduler queues "next frame" callbacks for a single-threaded host.
// Callbacks requested while a frame runs are deferred to the following frame
type FrameScheduler struct {
	interval time.Duration
	queue    []func()
	frame    uint64
}

// NewFrameScheduler creates a scheduler whose host ticks every interval
func NewFrameScheduler(interval time.Duration) *FrameScheduler {
	return &FrameScheduler{
		interval: interval,
		queue:    make([]func(), 0, 4),
	}
}

// RequestFrame schedules fn to run on the next frame
func (s *FrameScheduler) RequestFrame(fn func()) {
	s.queue = append(s.queue, fn)
}

// Pending reports whether any callback waits for the next frame
func (s *FrameScheduler) Pending() bool {
	return len(s.queue) > 0
}

// RunFrame runs the callbacks queued before this call and returns how many ran
func (s *FrameScheduler) RunFrame() int {
	s.frame++
	if len(s.queue) == 0 {
		return 0
	}

	due := s.queue
	s.queue = make([]func(), 0, cap(due))
	for _, fn := range due {
		fn()
	}
	return len(due)
}

// Frame returns the number of frames run so far
func (s *FrameScheduler) Frame() uint64 {
	return s.frame
}

// Interval is the host tick period
func (s *FrameScheduler) Interval() time.Duration {
	return s.interval
}
