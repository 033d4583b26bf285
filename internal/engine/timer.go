package engine

import (
	"context"
	"time"
)

// ToggleTimer is the only timer entry point: it opens a session if none is
// running for the task and closes the open one otherwise. Toggling twice in
// quick succession therefore accrues only the wall-clock gap between the two
// calls, never double-counts.
func (s *Service) ToggleTimer(ctx context.Context, id string) bool {
	t := s.find(id)
	if t == nil {
		return false
	}
	now := s.nowMs()
	if t.TimerRunning {
		closeSession(t, now)
	} else {
		t.TimerRunning = true
		t.TimerStartedAt = now
	}
	s.commit(ctx)
	return true
}

// closeSession accrues the open session into TimeSpent. No-op when the timer
// is not running.
func closeSession(t *Task, now int64) {
	if !t.TimerRunning {
		return
	}
	if d := now - t.TimerStartedAt; d > 0 {
		t.TimeSpent += d
	}
	t.TimerRunning = false
	t.TimerStartedAt = 0
}

// Elapsed projects a task's total tracked time at the given instant:
// accrued time plus the open session, if any. Pure; nothing is persisted
// until the session closes, so the host may poll this at any rate.
func Elapsed(t Task, now time.Time) time.Duration {
	ms := t.TimeSpent
	if t.TimerRunning {
		if d := now.UnixMilli() - t.TimerStartedAt; d > 0 {
			ms += d
		}
	}
	return time.Duration(ms) * time.Millisecond
}

// AnyTimerRunning reports whether any task has an open session. The view
// layer uses this to run its display tick only while needed.
func (s *Service) AnyTimerRunning() bool {
	for _, t := range s.tasks {
		if t.TimerRunning {
			return true
		}
	}
	return false
}
