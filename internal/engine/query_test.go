package engine

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"boardquest/internal/catalog"
)

func seedBoard(t *testing.T, svc *Service, clk *testClock) {
	t.Helper()
	for _, in := range []CreateTaskInput{
		{Title: "Fix login bug", Description: "OAuth redirect loops", Project: "Impulse", Difficulty: catalog.TierS, Priority: 1, Status: StatusTodo},
		{Title: "Write docs", Project: "Impulse", Difficulty: catalog.TierM, Priority: 4, Status: StatusBacklog},
		{Title: "Ship landing page", Project: "Website", Difficulty: catalog.TierXL, Priority: 2, Status: StatusDoing},
		{Title: "Water plants", Difficulty: catalog.TierXS, Priority: 3, Status: StatusTodo},
	} {
		mustCreate(t, svc, in)
		clk.advance(time.Minute)
	}
}

func TestListTasksIsPure(t *testing.T) {
	svc, clk := newTestService(t)
	seedBoard(t, svc, clk)

	q := Query{Filter: "i", Sort: SortCreated}
	first := svc.ListTasks(q)
	second := svc.ListTasks(q)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("repeated query differs (-first +second):\n%s", diff)
	}

	// Mutating the returned copies must not leak into the collection.
	first[0].Title = "mangled"
	first[0].Status = StatusDone
	third := svc.ListTasks(q)
	if diff := cmp.Diff(second, third); diff != "" {
		t.Fatalf("query result mutated the store (-second +third):\n%s", diff)
	}
	if svc.Points() != 0 {
		t.Fatalf("query affected the ledger")
	}
}

func TestFilterIsCaseInsensitiveAcrossFields(t *testing.T) {
	svc, clk := newTestService(t)
	seedBoard(t, svc, clk)

	for _, tc := range []struct {
		filter string
		want   string
	}{
		{"LOGIN", "Fix login bug"},       // title
		{"oauth", "Fix login bug"},       // description
		{"webSITE", "Ship landing page"}, // project
	} {
		got := svc.ListTasks(Query{Filter: tc.filter})
		if len(got) != 1 || got[0].Title != tc.want {
			t.Fatalf("filter %q matched %d tasks, want only %q", tc.filter, len(got), tc.want)
		}
	}
}

func TestSortOrders(t *testing.T) {
	svc, clk := newTestService(t)
	seedBoard(t, svc, clk)

	titles := func(tasks []Task) []string {
		out := make([]string, len(tasks))
		for i, task := range tasks {
			out[i] = task.Title
		}
		return out
	}

	byPriority := titles(svc.ListTasks(Query{Sort: SortPriority}))
	wantPriority := []string{"Fix login bug", "Ship landing page", "Water plants", "Write docs"}
	if diff := cmp.Diff(wantPriority, byPriority); diff != "" {
		t.Fatalf("priority order (-want +got):\n%s", diff)
	}

	byCreated := titles(svc.ListTasks(Query{Sort: SortCreated}))
	wantCreated := []string{"Water plants", "Ship landing page", "Write docs", "Fix login bug"}
	if diff := cmp.Diff(wantCreated, byCreated); diff != "" {
		t.Fatalf("created order (-want +got):\n%s", diff)
	}

	byDifficulty := titles(svc.ListTasks(Query{Sort: SortDifficulty}))
	if byDifficulty[0] != "Ship landing page" || byDifficulty[len(byDifficulty)-1] != "Water plants" {
		t.Fatalf("difficulty order: %v, want XL first and XS last", byDifficulty)
	}
}

func TestProjectFilterAndProjects(t *testing.T) {
	svc, clk := newTestService(t)
	seedBoard(t, svc, clk)

	if got := svc.ListTasks(Query{Project: "Impulse"}); len(got) != 2 {
		t.Fatalf("project filter matched %d, want 2", len(got))
	}
	if got := svc.ListTasks(Query{Project: ProjectFilterAll}); len(got) != 4 {
		t.Fatalf("ALL sentinel matched %d, want 4", len(got))
	}

	// First-seen order over the newest-first collection.
	want := []string{UnassignedProject, "Website", "Impulse"}
	if diff := cmp.Diff(want, svc.Projects()); diff != "" {
		t.Fatalf("projects (-want +got):\n%s", diff)
	}
}

func TestStatsIncludeLiveTimerProjection(t *testing.T) {
	svc, clk := newTestService(t)
	ctx := context.Background()
	seedBoard(t, svc, clk)

	done := svc.ListTasks(Query{Filter: "docs"})[0]
	svc.MoveTask(ctx, done.ID, StatusDone)

	tracked := svc.ListTasks(Query{Filter: "landing"})[0]
	svc.ToggleTimer(ctx, tracked.ID)
	clk.advance(90 * time.Second)

	st := svc.Stats()
	if st.Total != 4 || st.Done != 1 || st.InProgress != 1 {
		t.Fatalf("stats=%+v", st)
	}
	if st.TotalElapsed != 90*time.Second {
		t.Fatalf("totalElapsed=%v, want 90s (live projection)", st.TotalElapsed)
	}
}
