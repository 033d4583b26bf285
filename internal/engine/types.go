package engine

import "boardquest/internal/catalog"

type Status string

const (
	StatusBacklog Status = "backlog"
	StatusTodo    Status = "todo"
	StatusDoing   Status = "doing"
	StatusDone    Status = "done"
)

// Columns lists the workflow columns in board order.
var Columns = []Status{StatusBacklog, StatusTodo, StatusDoing, StatusDone}

func (s Status) IsValid() bool {
	switch s {
	case StatusBacklog, StatusTodo, StatusDoing, StatusDone:
		return true
	default:
		return false
	}
}

// UnassignedProject is the sentinel project label for tasks created with a
// blank project field.
const UnassignedProject = "Unassigned"

// ProjectFilterAll matches every project in queries.
const ProjectFilterAll = "ALL"

// Task is the persisted task record. Timestamps are epoch milliseconds;
// CompletedAt and TimerStartedAt are 0 while unset. PointsAwarded is the
// tier reward frozen at completion time and is non-zero iff the task is done.
type Task struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Project        string          `json:"project"`
	Difficulty     catalog.TierKey `json:"difficulty"`
	Status         Status          `json:"status"`
	Priority       int             `json:"priority"`
	CreatedAt      int64           `json:"createdAt"`
	CompletedAt    int64           `json:"completedAt"`
	PointsAwarded  int             `json:"pointsAwarded"`
	TimeSpent      int64           `json:"timeSpent"`
	TimerRunning   bool            `json:"timerRunning"`
	TimerStartedAt int64           `json:"timerStartedAt"`
}

// PurchaseRecord is one entry of the append-only shop inventory.
type PurchaseRecord struct {
	ID          string `json:"id"`
	ItemID      string `json:"itemId"`
	Name        string `json:"name"`
	Emoji       string `json:"emoji"`
	PurchasedAt int64  `json:"purchasedAt"`
}
