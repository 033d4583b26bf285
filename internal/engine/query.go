package engine

import (
	"sort"
	"strings"
	"time"

	"boardquest/internal/catalog"
)

type SortKey string

const (
	SortPriority   SortKey = "priority"   // ascending, 1 first
	SortCreated    SortKey = "created"    // newest first
	SortDifficulty SortKey = "difficulty" // hardest tier first
)

// Query narrows and orders the task list. Zero value lists everything in
// priority order.
type Query struct {
	// Filter is a case-insensitive substring matched against title,
	// description and project.
	Filter string
	// Project keeps only tasks of one project; empty or ProjectFilterAll
	// keeps all.
	Project string
	Sort    SortKey
}

// ListTasks is a pure query: it returns an ordered sequence of task copies
// and never mutates the collection.
func (s *Service) ListTasks(q Query) []Task {
	needle := strings.ToLower(strings.TrimSpace(q.Filter))
	out := make([]Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if q.Project != "" && q.Project != ProjectFilterAll && t.Project != q.Project {
			continue
		}
		if needle != "" && !matches(t, needle) {
			continue
		}
		out = append(out, *t)
	}

	switch q.Sort {
	case SortCreated:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	case SortDifficulty:
		sort.SliceStable(out, func(i, j int) bool {
			return catalog.TierIndex(out[i].Difficulty) > catalog.TierIndex(out[j].Difficulty)
		})
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Priority < out[j].Priority })
	}
	return out
}

func matches(t *Task, needle string) bool {
	for _, field := range []string{t.Title, t.Description, t.Project} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// Projects returns the distinct project names in first-seen order.
func (s *Service) Projects() []string {
	seen := map[string]bool{}
	var out []string
	for _, t := range s.tasks {
		if !seen[t.Project] {
			seen[t.Project] = true
			out = append(out, t.Project)
		}
	}
	return out
}

type Stats struct {
	Total        int
	Done         int
	InProgress   int
	TotalElapsed time.Duration
}

// Stats summarizes the board. TotalElapsed includes the live projection of
// running sessions.
func (s *Service) Stats() Stats {
	now := s.now()
	var st Stats
	for _, t := range s.tasks {
		st.Total++
		switch t.Status {
		case StatusDone:
			st.Done++
		case StatusDoing:
			st.InProgress++
		}
		st.TotalElapsed += Elapsed(*t, now)
	}
	return st
}
