package driver

import (
	"encoding/json"
	"os"
	"time"
)

// Stats accumulates corpus-run counters. It survives restarts through the
// checkpoint file.
type Stats struct {
	Processed int `json:"processed"`
	Failed    int `json:"failed"`
	Entities  int `json:"entities"`
	Relations int `json:"relations"`
}

// Checkpoint records how far a corpus run got.
type Checkpoint struct {
	LastProcessed int       `json:"last_processed"`
	Stats         Stats     `json:"stats"`
	Timestamp     time.Time `json:"timestamp"`
}

// loadCheckpoint reads a checkpoint file. A missing or corrupt file yields
// a fresh checkpoint so a run can always start.
func loadCheckpoint(path string) Checkpoint {
	fresh := Checkpoint{LastProcessed: -1}

	data, err := os.ReadFile(path)
	if err != nil {
		return fresh
	}
	var cp Checkpoint
	if err := json.Unmarshal(data, &cp); err != nil {
		return fresh
	}
	return cp
}

// saveCheckpoint writes the checkpoint atomically: temp file, then rename.
func saveCheckpoint(path string, cp Checkpoint) error {
	cp.Timestamp = time.Now().UTC()
	data, err := json.MarshalIndent(cp, "", "  ")
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
