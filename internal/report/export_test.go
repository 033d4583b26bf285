package report

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"boardquest/internal/catalog"
	"boardquest/internal/engine"
	"boardquest/internal/storage"
)

func newTestExporter(t *testing.T) (*Exporter, *engine.Service) {
	t.Helper()
	ctx := context.Background()
	store, err := storage.Open(ctx, filepath.Join(t.TempDir(), "test.db"), nil)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	svc := engine.NewService(ctx, store)
	task := svc.CreateTask(ctx, engine.CreateTaskInput{Title: "Ship v2", Project: "Impulse", Difficulty: catalog.TierL})
	if task == nil {
		t.Fatalf("create failed")
	}
	svc.MoveTask(ctx, task.ID, engine.StatusDone)
	return NewExporter(svc), svc
}

func TestExportJSON(t *testing.T) {
	e, svc := newTestExporter(t)

	data, err := e.Export("json")
	if err != nil {
		t.Fatalf("export json: %v", err)
	}
	var payload struct {
		Points int           `json:"points"`
		Tasks  []engine.Task `json:"tasks"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if payload.Points != svc.Points() || len(payload.Tasks) != 1 || payload.Tasks[0].Title != "Ship v2" {
		t.Fatalf("payload: %+v", payload)
	}
}

func TestExportCSV(t *testing.T) {
	e, _ := newTestExporter(t)

	data, err := e.Export("csv")
	if err != nil {
		t.Fatalf("export csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("csv lines=%d, want header + 1 row", len(lines))
	}
	if !strings.HasPrefix(lines[0], "id,title,project") {
		t.Fatalf("csv header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "Ship v2") {
		t.Fatalf("csv row: %q", lines[1])
	}
}

func TestExportPDF(t *testing.T) {
	e, _ := newTestExporter(t)

	data, err := e.Export("pdf")
	if err != nil {
		t.Fatalf("export pdf: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("not a pdf: %q", data[:min(8, len(data))])
	}
}

func TestExportUnknownFormat(t *testing.T) {
	e, _ := newTestExporter(t)
	if _, err := e.Export("xml"); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
