package driver

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/granthika/telkg/pkg/telkg/store"
)

// StreamWriter writes graphs to disk incrementally, either as one JSON
// array ("json") or one object per line ("jsonl").
type StreamWriter struct {
	f      *os.File
	enc    *json.Encoder
	format string
	wrote  bool
	closed bool
}

// NewStreamWriter opens the output file. Append mode is only meaningful for
// the jsonl format and is used when resuming a run.
func NewStreamWriter(path, format string, appendTo bool) (*StreamWriter, error) {
	switch format {
	case "json", "jsonl":
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}

	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if format == "jsonl" && appendTo {
		flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return nil, err
	}

	w := &StreamWriter{f: f, enc: json.NewEncoder(f), format: format}
	if format == "json" {
		if _, err := f.WriteString("[\n"); err != nil {
			f.Close()
			return nil, err
		}
	}
	return w, nil
}

// Write appends one graph to the output.
func (w *StreamWriter) Write(g store.Graph) error {
	if w.format == "json" {
		if w.wrote {
			if _, err := w.f.WriteString(",\n"); err != nil {
				return err
			}
		}
		data, err := json.Marshal(g)
		if err != nil {
			return err
		}
		if _, err := w.f.Write(data); err != nil {
			return err
		}
		w.wrote = true
		return nil
	}
	return w.enc.Encode(g)
}

// Close terminates the JSON array if needed and closes the file.
func (w *StreamWriter) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	if w.format == "json" {
		if _, err := w.f.WriteString("\n]\n"); err != nil {
			w.f.Close()
			return err
		}
	}
	return w.f.Close()
}
