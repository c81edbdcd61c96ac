package types

import "time"

// RunResult describes one completed sort.
type RunResult struct {
	Algorithm   string        `json:"algorithm"`
	Size        int           `json:"size"`
	Accesses    int64         `json:"accesses"`
	Elapsed     time.Duration `json:"elapsed"`
	Sorted      bool          `json:"sorted"`
	Interrupted bool          `json:"interrupted"` // pacing was cut short
	Output      []int         `json:"output,omitempty"`
}

// BenchRow is one cell of an access-count benchmark.
type BenchRow struct {
	Algorithm string        `json:"algorithm"`
	Kind      InputKind     `json:"-"`
	KindName  string        `json:"kind"`
	Size      int           `json:"size"`
	Accesses  int64         `json:"accesses"`
	Elapsed   time.Duration `json:"elapsed"`
}
