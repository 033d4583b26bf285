package engine

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"boardquest/internal/catalog"
)

// IsValidTitle reports whether a title would be accepted by CreateTask.
// Exposed so the view layer can give feedback before issuing the command.
func IsValidTitle(title string) bool {
	return strings.TrimSpace(title) != ""
}

func normalizeProject(project string) string {
	p := strings.TrimSpace(project)
	if p == "" {
		return UnassignedProject
	}
	return p
}

func clampPriority(p int) int {
	if p < 1 {
		return 1
	}
	if p > 5 {
		return 5
	}
	return p
}

type CreateTaskInput struct {
	Title       string
	Description string
	Project     string
	Difficulty  catalog.TierKey
	Status      Status
	Priority    int
}

// CreateTask allocates a new task at the head of the collection and returns
// a copy of it. A title that trims to empty rejects the whole command (nil
// return, nothing mutated). Invalid difficulty falls back to the default
// tier, invalid column to backlog, zero priority to 3.
func (s *Service) CreateTask(ctx context.Context, in CreateTaskInput) *Task {
	if !IsValidTitle(in.Title) {
		return nil
	}

	diff := in.Difficulty
	if !diff.IsValid() {
		diff = catalog.DefaultTier
	}
	status := in.Status
	if !status.IsValid() {
		status = StatusBacklog
	}
	priority := in.Priority
	if priority == 0 {
		priority = 3
	}

	t := &Task{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Project:     normalizeProject(in.Project),
		Difficulty:  diff,
		Status:      status,
		Priority:    clampPriority(priority),
		CreatedAt:   s.nowMs(),
	}
	s.tasks = append([]*Task{t}, s.tasks...)
	s.commit(ctx)

	c := *t
	return &c
}

// UpdateTaskInput merges set fields into an existing task. Status is
// deliberately absent: all column transitions go through MoveTask so that
// reward logic cannot be bypassed by a field merge.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Project     *string
	Difficulty  *catalog.TierKey
	Priority    *int
}

// UpdateTask merges the set fields and returns a copy of the updated task.
// Unknown ids and titles that trim to empty are refused no-ops. Changing
// difficulty never re-evaluates PointsAwarded; the reward stays frozen at
// completion time.
func (s *Service) UpdateTask(ctx context.Context, id string, in UpdateTaskInput) *Task {
	t := s.find(id)
	if t == nil {
		return nil
	}
	if in.Title != nil && !IsValidTitle(*in.Title) {
		return nil
	}

	if in.Title != nil {
		t.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.Project != nil {
		t.Project = normalizeProject(*in.Project)
	}
	if in.Difficulty != nil && in.Difficulty.IsValid() {
		t.Difficulty = *in.Difficulty
	}
	if in.Priority != nil {
		t.Priority = clampPriority(*in.Priority)
	}
	s.commit(ctx)

	c := *t
	return &c
}

// DeleteTask discards the task unconditionally. Deleting a done task does
// not claw back its points.
func (s *Service) DeleteTask(ctx context.Context, id string) bool {
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			s.commit(ctx)
			return true
		}
	}
	return false
}
