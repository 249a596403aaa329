package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/backdrop/internal/engine"
)

func sampleSeries() *Series {
	s := NewSeries([]string{"hero", "contact"})
	s.Append(1, []engine.SessionStats{{Section: "hero", Total: 50}, {Section: "contact", Total: 9}})
	s.Append(2, []engine.SessionStats{{Section: "hero", Total: 50}, {Section: "contact", Total: 11}})
	s.Append(3, []engine.SessionStats{{Section: "hero", Total: 50}})
	return s
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	meta := RunMetadata{
		Label:  "landing",
		Seed:   42,
		FPS:    60,
		Frames: 3,
		Sessions: []engine.SessionStats{
			{Section: "hero", State: "stopped", Frames: 3, Total: 50},
		},
	}
	runID, err := st.Save(meta, sampleSeries())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Error("expected non-empty run id")
	}

	loaded, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Label != "landing" {
		t.Errorf("expected label 'landing', got '%s'", loaded.Label)
	}
	if loaded.Seed != 42 {
		t.Errorf("expected seed 42, got %d", loaded.Seed)
	}
	if len(loaded.Sessions) != 1 || loaded.Sessions[0].Total != 50 {
		t.Errorf("unexpected sessions %+v", loaded.Sessions)
	}

	series, err := st.LoadSeries(runID)
	if err != nil {
		t.Fatalf("load series failed: %v", err)
	}
	if series.Len() != 3 {
		t.Fatalf("expected 3 samples, got %d", series.Len())
	}
	contact := series.Column("contact")
	if contact[0] != 9 || contact[1] != 11 || contact[2] != 0 {
		t.Errorf("unexpected contact column %v", contact)
	}
	if series.Frames[2] != 3 {
		t.Errorf("expected frame 3, got %d", series.Frames[2])
	}
}

func TestStoreList(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	if _, err := st.Save(RunMetadata{Label: "a"}, nil); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, err := st.Save(RunMetadata{Label: "b"}, sampleSeries()); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := os.Mkdir(filepath.Join(dir, "junk"), 0755); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("expected 2 runs, got %d", len(runs))
	}
}

func TestStoreListMissingDir(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "nope"))
	runs, err := st.List()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected empty list, got %d", len(runs))
	}
}

func TestStoreLoadMissing(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("nonexistent"); err == nil {
		t.Error("expected error for missing run")
	}
	if _, err := st.LoadSeries("nonexistent"); err == nil {
		t.Error("expected error for missing series")
	}
}

func TestSeriesColumnAndPeak(t *testing.T) {
	s := sampleSeries()
	if s.Column("missing") != nil {
		t.Error("expected nil for unknown column")
	}
	peak := s.Peak()
	if peak["hero"] != 50 || peak["contact"] != 11 {
		t.Errorf("unexpected peaks %v", peak)
	}
}
