package engine

// Event is emitted by a column transition when it crosses the done boundary.
// The economy applies the ledger change; callers may additionally consume it
// for celebratory feedback.
type Event interface {
	isEvent()
}

type TaskCompleted struct {
	TaskID string
	Reward int
}

func (TaskCompleted) isEvent() {}

type TaskReopened struct {
	TaskID string
	Refund int
}

func (TaskReopened) isEvent() {}
