package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"boardquest/internal/engine"
)

// Exporter renders the board and its stats to json, csv or pdf.
type Exporter struct {
	svc *engine.Service
}

func NewExporter(svc *engine.Service) *Exporter {
	return &Exporter{svc: svc}
}

func (e *Exporter) Export(format string) ([]byte, error) {
	tasks := e.svc.ListTasks(engine.Query{Sort: engine.SortCreated})
	st := e.svc.Stats()

	switch strings.ToLower(format) {
	case "json":
		payload := struct {
			Stats  engine.Stats  `json:"stats"`
			Points int           `json:"points"`
			Tasks  []engine.Task `json:"tasks"`
		}{Stats: st, Points: e.svc.Points(), Tasks: tasks}
		return json.MarshalIndent(payload, "", "  ")
	case "csv":
		var b strings.Builder
		w := csv.NewWriter(&b)
		_ = w.Write([]string{"id", "title", "project", "difficulty", "status", "priority", "points_awarded", "time_spent_ms", "created_at", "completed_at"})
		for _, t := range tasks {
			_ = w.Write([]string{
				t.ID, t.Title, t.Project, string(t.Difficulty), string(t.Status),
				fmt.Sprint(t.Priority), fmt.Sprint(t.PointsAwarded), fmt.Sprint(t.TimeSpent),
				fmt.Sprint(t.CreatedAt), fmt.Sprint(t.CompletedAt),
			})
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return nil, err
		}
		return []byte(b.String()), nil
	case "pdf":
		pdf := gofpdf.New("P", "mm", "A4", "")
		pdf.AddPage()
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(40, 10, "Boardquest Report")
		pdf.Ln(12)
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 6, fmt.Sprintf("Points: %d   Tasks: %d   Done: %d   In progress: %d   Tracked: %s",
			e.svc.Points(), st.Total, st.Done, st.InProgress, st.TotalElapsed.Round(time.Second)), "0", "L", false)
		pdf.Ln(4)
		for _, t := range tasks {
			line := fmt.Sprintf("[%s] %s (%s) prio %d, %s", t.Status, t.Title, t.Project, t.Priority, t.Difficulty)
			if t.Status == engine.StatusDone {
				line += fmt.Sprintf(", +%d pts", t.PointsAwarded)
			}
			pdf.MultiCell(0, 6, line, "0", "L", false)
		}
		var buf strings.Builder
		if err := pdf.Output(&buf); err != nil {
			return nil, err
		}
		return []byte(buf.String()), nil
	default:
		return nil, fmt.Errorf("unknown format %s", format)
	}
}
