package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func collectChunks(t *testing.T, path string) (ids, texts []string) {
	t.Helper()
	err := forEachChunk(path, func(id, text string) error {
		ids = append(ids, id)
		texts = append(texts, text)
		return nil
	})
	if err != nil {
		t.Fatalf("forEachChunk: %v", err)
	}
	return ids, texts
}

func TestTextChunking(t *testing.T) {
	var lines []string
	for i := 0; i < chunkLines+10; i++ {
		lines = append(lines, fmt.Sprintf("వాక్యం %d", i))
	}
	// Blank lines must not count toward the chunk size.
	content := strings.Join(lines[:20], "\n") + "\n\n\n" + strings.Join(lines[20:], "\n")
	path := writeTempFile(t, "corpus.txt", content)

	ids, texts := collectChunks(t, path)
	if len(ids) != 2 {
		t.Fatalf("got %d chunks, want 2", len(ids))
	}
	if ids[0] != "chunk_0" || ids[1] != "chunk_1" {
		t.Errorf("chunk ids = %v", ids)
	}
	if got := len(strings.Fields(texts[0])); got != chunkLines*2 {
		t.Errorf("first chunk has %d fields, want %d lines of 2 words", got, chunkLines*2)
	}
	if !strings.Contains(texts[1], fmt.Sprintf("వాక్యం %d", chunkLines)) {
		t.Errorf("second chunk missing overflow lines: %q", texts[1])
	}
}

func TestTextChunkingEmptyFile(t *testing.T) {
	path := writeTempFile(t, "empty.txt", "\n\n  \n")
	ids, _ := collectChunks(t, path)
	if len(ids) != 0 {
		t.Errorf("blank file produced chunks: %v", ids)
	}
}

func TestJSONLReading(t *testing.T) {
	content := strings.Join([]string{
		`{"id": "wiki_1", "text": "రాముడు పుస్తకం చదివాడు"}`,
		``,
		`{"text": "సీత హైదరాబాద్ వెళ్ళింది"}`,
		`{not json`,
		`{"id": "wiki_4", "text": "కృష్ణుడు వచ్చాడు"}`,
	}, "\n")
	path := writeTempFile(t, "corpus.jsonl", content)

	ids, texts := collectChunks(t, path)
	if len(ids) != 3 {
		t.Fatalf("got %d docs, want 3 (malformed line skipped)", len(ids))
	}
	if ids[0] != "wiki_1" {
		t.Errorf("ids[0] = %q", ids[0])
	}
	// The line without an id takes its index, and the malformed line still
	// consumes an index.
	if ids[1] != "doc_1" {
		t.Errorf("ids[1] = %q, want doc_1", ids[1])
	}
	if ids[2] != "wiki_4" {
		t.Errorf("ids[2] = %q", ids[2])
	}
	if texts[2] != "కృష్ణుడు వచ్చాడు" {
		t.Errorf("texts[2] = %q", texts[2])
	}
}

func TestHTMLReading(t *testing.T) {
	content := `<html><head>
<style>body { color: red }</style>
<script>var x = "చెత్త";</script>
</head><body>
<h1>రామాయణం</h1>
<p>రాముడు పుస్తకం చదివాడు</p>
</body></html>`
	path := writeTempFile(t, "page.html", content)

	ids, texts := collectChunks(t, path)
	if len(ids) != 1 {
		t.Fatalf("got %d chunks, want 1", len(ids))
	}
	joined := texts[0]
	if !strings.Contains(joined, "రామాయణం") || !strings.Contains(joined, "చదివాడు") {
		t.Errorf("chunk missing body text: %q", joined)
	}
	if strings.Contains(joined, "color: red") || strings.Contains(joined, "చెత్త") {
		t.Errorf("chunk includes script/style content: %q", joined)
	}
}

func TestReaderPropagatesCallbackError(t *testing.T) {
	path := writeTempFile(t, "corpus.txt", "ఒకటి\nరెండు")
	wantErr := fmt.Errorf("stop")
	err := forEachChunk(path, func(id, text string) error { return wantErr })
	if err != wantErr {
		t.Errorf("err = %v, want callback error", err)
	}
}

func TestReaderMissingFile(t *testing.T) {
	err := forEachChunk(filepath.Join(t.TempDir(), "absent.txt"), func(string, string) error {
		return nil
	})
	if err == nil {
		t.Error("missing file should fail")
	}
}
