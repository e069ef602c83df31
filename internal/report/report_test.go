package report

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/backmassage/seqrename/internal/config"
)

func sampleReport() *Report {
	r := New(config.Job{Dir: "/photos", BaseName: "trip", Style: config.StyleAlpha, Start: 1, Ext: ".jpg"})
	r.Add(
		Entry{Index: 1, Old: "a.jpg", New: "trip_a.jpg", Status: StatusRenamed},
		Entry{Index: 2, Old: "b.jpg", New: "trip_b.jpg", Status: StatusCollision},
		Entry{Index: 3, Old: "c.jpg", New: "trip_c.jpg", Status: StatusFailed, Error: "permission denied"},
		Entry{Index: 4, Old: "d.jpg", New: "trip_d.jpg", Status: StatusPlanned},
	)
	return r
}

func TestNew_AssignsRunID(t *testing.T) {
	a := New(config.Job{})
	b := New(config.Job{})
	if _, err := uuid.Parse(a.ID); err != nil {
		t.Errorf("ID %q is not a UUID: %v", a.ID, err)
	}
	if a.ID == b.ID {
		t.Error("two reports share a run ID")
	}
}

func TestAdd_Counters(t *testing.T) {
	r := sampleReport()
	if r.Renamed != 1 || r.Skipped != 1 || r.Failed != 1 {
		t.Errorf("counters renamed=%d skipped=%d failed=%d, want 1/1/1", r.Renamed, r.Skipped, r.Failed)
	}
	if len(r.Entries) != 4 {
		t.Errorf("got %d entries, want 4", len(r.Entries))
	}
}

func TestWrite_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	r := sampleReport()
	if err := r.Write(path); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := ReadYAML(path)
	if err != nil {
		t.Fatalf("ReadYAML: %v", err)
	}
	if got.ID != r.ID || got.BaseName != "trip" || got.Style != "alpha" || got.Filter != ".jpg" {
		t.Errorf("header fields = %+v", got)
	}
	if len(got.Entries) != 4 {
		t.Fatalf("got %d entries, want 4", len(got.Entries))
	}
	if got.Entries[2].Status != StatusFailed || got.Entries[2].Error != "permission denied" {
		t.Errorf("entry 3 = %+v", got.Entries[2])
	}
	if got.FinishedAt.IsZero() {
		t.Error("FinishedAt not stamped")
	}
}

func TestWrite_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.xlsx")
	r := sampleReport()
	if err := r.Write(path); err != nil {
		t.Fatalf("Write: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(Sheet)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) == 0 || rows[0][0] != "Run" || rows[0][1] != r.ID {
		t.Fatalf("first row = %v, want run ID", rows)
	}

	header := -1
	for i, row := range rows {
		if len(row) > 0 && row[0] == "Index" {
			header = i
			break
		}
	}
	if header < 0 {
		t.Fatal("entries header row not found")
	}
	entries := rows[header+1:]
	if len(entries) != 4 {
		t.Fatalf("got %d entry rows, want 4", len(entries))
	}
	if entries[0][1] != "a.jpg" || entries[0][2] != "trip_a.jpg" || entries[0][3] != "renamed" {
		t.Errorf("first entry row = %v", entries[0])
	}
	if entries[2][4] != "permission denied" {
		t.Errorf("failed entry row = %v", entries[2])
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := sampleReport().Write(filepath.Join(t.TempDir(), "run.json"))
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Write(.json) error = %v, want ErrUnknownFormat", err)
	}
}
