package feed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeDump(t *testing.T, lines []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dump.jsonl")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadJSONL(t *testing.T) {
	path := writeDump(t, []string{
		`{"url": "https://example.com/1", "title": "రామాయణం", "text": "రాముడు పుస్తకం చదివాడు", "outlet": "eenadu"}`,
		``,
		`{broken`,
		`{"url": "https://example.com/2", "text": ""}`,
		`{"title": "వార్త", "text": "సీత హైదరాబాద్ వెళ్ళింది"}`,
	})

	items, skipped, err := LoadJSONL(path)
	if err != nil {
		t.Fatalf("LoadJSONL: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if skipped != 2 {
		t.Errorf("skipped = %d, want 2 (malformed line and empty article)", skipped)
	}
	if items[0].Outlet != "eenadu" {
		t.Errorf("Outlet = %q", items[0].Outlet)
	}
}

func TestLoadJSONLNoValidItems(t *testing.T) {
	path := writeDump(t, []string{`{broken`, `{"text": "  "}`})
	if _, _, err := LoadJSONL(path); err == nil {
		t.Error("dump without valid items should fail")
	}
}

func TestLoadJSONLMissingFile(t *testing.T) {
	if _, _, err := LoadJSONL(filepath.Join(t.TempDir(), "absent.jsonl")); err == nil {
		t.Error("missing dump should fail")
	}
}

func TestItemText(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want string
	}{
		{"title and body", Item{Title: "వార్త", Body: "రాముడు వచ్చాడు"}, "వార్త. రాముడు వచ్చాడు"},
		{"body only", Item{Body: "రాముడు వచ్చాడు"}, "రాముడు వచ్చాడు"},
		{"title only", Item{Title: "వార్త"}, "వార్త"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestItemDocID(t *testing.T) {
	if got := (Item{URL: "https://example.com/1", Title: "వార్త"}).DocID(); got != "https://example.com/1" {
		t.Errorf("DocID = %q, want the URL", got)
	}
	if got := (Item{Title: "వార్త"}).DocID(); got != "వార్త" {
		t.Errorf("DocID = %q, want the title fallback", got)
	}
}
