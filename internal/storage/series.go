package storage

import "github.com/san-kum/backdrop/internal/engine"

// Series is the per-frame live entity total of each section.
type Series struct {
	Columns []string
	Frames  []int
	Rows    [][]int
}

func NewSeries(columns []string) *Series {
	return &Series{Columns: append([]string(nil), columns...)}
}

// Append records one sample. Sections missing from stats record zero.
func (s *Series) Append(frame int, stats []engine.SessionStats) {
	totals := make(map[string]int, len(stats))
	for _, st := range stats {
		totals[st.Section] = st.Total
	}
	row := make([]int, len(s.Columns))
	for i, c := range s.Columns {
		row[i] = totals[c]
	}
	s.Frames = append(s.Frames, frame)
	s.Rows = append(s.Rows, row)
}

func (s *Series) Len() int { return len(s.Frames) }

// Column returns the samples of one section, or nil if unknown.
func (s *Series) Column(name string) []float64 {
	idx := -1
	for i, c := range s.Columns {
		if c == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	out := make([]float64, len(s.Rows))
	for i, row := range s.Rows {
		out[i] = float64(row[idx])
	}
	return out
}

// Peak returns the largest sample of every column.
func (s *Series) Peak() map[string]int {
	peak := make(map[string]int, len(s.Columns))
	for _, row := range s.Rows {
		for i, v := range row {
			if v > peak[s.Columns[i]] {
				peak[s.Columns[i]] = v
			}
		}
	}
	return peak
}
