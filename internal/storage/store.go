package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/backdrop/internal/engine"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string                `json:"id"`
	Label     string                `json:"label"`
	Timestamp time.Time             `json:"timestamp"`
	Seed      int64                 `json:"seed"`
	FPS       int                   `json:"fps"`
	Frames    int                   `json:"frames"`
	Width     int                   `json:"width"`
	Height    int                   `json:"height"`
	Theme     string                `json:"theme"`
	Realtime  bool                  `json:"realtime"`
	Elapsed   time.Duration         `json:"elapsed"`
	Sessions  []engine.SessionStats `json:"sessions"`
}

// Save writes metadata.json and population.csv into a new run directory and
// returns the run id.
func (s *Store) Save(meta RunMetadata, series *Series) (string, error) {
	if meta.Label == "" {
		meta.Label = "run"
	}
	meta.Timestamp = time.Now()
	meta.ID = fmt.Sprintf("%s_%d", meta.Label, meta.Timestamp.UnixMilli())
	runDir := filepath.Join(s.baseDir, meta.ID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if series == nil {
		return meta.ID, nil
	}

	csvFile, err := os.Create(filepath.Join(runDir, "population.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write(append([]string{"frame"}, series.Columns...)); err != nil {
		return "", err
	}
	for i, row := range series.Rows {
		rec := make([]string, 0, len(row)+1)
		rec = append(rec, strconv.Itoa(series.Frames[i]))
		for _, v := range row {
			rec = append(rec, strconv.Itoa(v))
		}
		if err := w.Write(rec); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return meta.ID, nil
}

// List returns every readable run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadSeries(runID string) (*Series, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "population.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return &Series{}, nil
	}

	series := NewSeries(records[0][1:])
	for _, record := range records[1:] {
		if len(record) == 0 {
			continue
		}
		frame, err := strconv.Atoi(record[0])
		if err != nil {
			continue
		}
		row := make([]int, len(series.Columns))
		for j := 1; j < len(record) && j <= len(row); j++ {
			v, err := strconv.Atoi(record[j])
			if err != nil {
				continue
			}
			row[j-1] = v
		}
		series.Frames = append(series.Frames, frame)
		series.Rows = append(series.Rows, row)
	}

	return series, nil
}
