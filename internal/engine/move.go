package engine

import (
	"context"

	"boardquest/internal/catalog"
)

// MoveTask transitions a task to a new column. Any running timer session is
// closed first, regardless of direction. Entering done freezes the tier
// reward on the task and emits TaskCompleted; leaving done emits TaskReopened
// and clears the completion fields. Transitions that stay on one side of the
// done boundary have no points effect.
//
// The returned event (nil for points-neutral moves) has already been applied
// to the ledger. ok is false for unknown ids or invalid columns.
func (s *Service) MoveTask(ctx context.Context, id string, newStatus Status) (ev Event, ok bool) {
	if !newStatus.IsValid() {
		return nil, false
	}
	t := s.find(id)
	if t == nil {
		return nil, false
	}

	now := s.nowMs()
	closeSession(t, now)

	wasDone := t.Status == StatusDone
	switch {
	case newStatus == StatusDone && !wasDone:
		reward := catalog.TierByKey(t.Difficulty).Reward
		t.CompletedAt = now
		t.PointsAwarded = reward
		ev = TaskCompleted{TaskID: t.ID, Reward: reward}
	case wasDone && newStatus != StatusDone:
		ev = TaskReopened{TaskID: t.ID, Refund: t.PointsAwarded}
		t.CompletedAt = 0
		t.PointsAwarded = 0
	}
	t.Status = newStatus

	s.applyEvent(ev)
	s.commit(ctx)
	return ev, true
}
