package automation

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/san-kum/backdrop/internal/config"
	"github.com/san-kum/backdrop/internal/storage"
)

func smallConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Width, cfg.Height = 300, 200
	cfg.Frames = 60
	cfg.Seed = 11
	return cfg
}

func TestRun(t *testing.T) {
	res, err := Run(context.Background(), smallConfig(), Options{})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if res.Frames != 60 {
		t.Errorf("expected 60 frames, got %d", res.Frames)
	}
	if res.Series.Len() != 60 {
		t.Errorf("expected 60 samples, got %d", res.Series.Len())
	}
	if len(res.Stats) != 7 {
		t.Errorf("expected 7 sessions, got %d", len(res.Stats))
	}
	if res.Escaped != 0 {
		t.Errorf("expected no escaped entities, got %d", res.Escaped)
	}
}

func TestRunShrinkKeepsEntitiesOnCanvas(t *testing.T) {
	cfg := smallConfig()
	cfg.Width, cfg.Height = 1200, 900
	res, err := Run(context.Background(), cfg, Options{
		Resizes: []Resize{{Frame: 20, Width: 200, Height: 150}},
	})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if res.Escaped != 0 {
		t.Errorf("expected no escaped entities after shrink, got %d", res.Escaped)
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := Run(ctx, smallConfig(), Options{})
	if err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if res.Frames != 0 {
		t.Errorf("expected no frames, got %d", res.Frames)
	}
}

func TestScenarioStepConfig(t *testing.T) {
	step := ScenarioStep{Preset: "minimal", Frames: 10, Theme: "ocean"}
	cfg, err := step.Config()
	if err != nil {
		t.Fatalf("config failed: %v", err)
	}
	if cfg.FPS != 30 {
		t.Errorf("expected preset fps 30, got %d", cfg.FPS)
	}
	if cfg.Frames != 10 || cfg.Theme != "ocean" {
		t.Errorf("expected overrides applied, got frames=%d theme=%s", cfg.Frames, cfg.Theme)
	}

	if _, err := (ScenarioStep{Preset: "missing"}).Config(); err == nil {
		t.Error("expected error for unknown preset")
	}
	if _, err := (ScenarioStep{Sections: []string{"footer"}}).Config(); err == nil {
		t.Error("expected error for unknown section")
	}
}

func TestRunScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	data := []byte(`name: smoke
steps:
  - label: hero-small
    sections: [hero]
    frames: 20
    width: 200
    height: 100
    seed: 3
  - sections: [contact]
    frames: 30
    seed: 4
    resizes:
      - frame: 10
        width: 120
        height: 80
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	sc, err := LoadScenario(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(sc.Steps) != 2 || sc.Steps[1].Resizes[0].Width != 120 {
		t.Fatalf("unexpected scenario %+v", sc)
	}

	st := storage.New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}
	ids, err := RunScenario(context.Background(), sc, st, log.New(io.Discard))
	if err != nil {
		t.Fatalf("scenario failed: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(ids))
	}

	meta, err := st.Load(ids[1])
	if err != nil {
		t.Fatal(err)
	}
	if meta.Label != "smoke-2" || meta.Frames != 30 {
		t.Errorf("unexpected metadata %+v", meta)
	}
}

func TestRunSweep(t *testing.T) {
	cfg := smallConfig()
	cfg.Frames = 30
	cfg.Sections = []string{"hero", "experience"}

	results, err := RunSweep(context.Background(), cfg, 3, 99)
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if results[0].Seed == results[1].Seed {
		t.Error("expected distinct seeds")
	}
	if results[0].Final["hero"] != 50 {
		t.Errorf("expected 50 hero particles, got %d", results[0].Final["hero"])
	}

	bounded, escaping := SweepStats(results)
	if bounded != 3 || escaping != 0 {
		t.Errorf("expected 3 bounded, got %d bounded %d escaping", bounded, escaping)
	}
	if cfg.Seed != 11 {
		t.Error("sweep must not modify the base config")
	}
}

func TestSweepStats(t *testing.T) {
	bounded, escaping := SweepStats([]SweepResult{{Escaped: 0}, {Escaped: 2}, {}})
	if bounded != 2 || escaping != 1 {
		t.Errorf("expected 2/1, got %d/%d", bounded, escaping)
	}
}
