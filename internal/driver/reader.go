package driver

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// chunkLines is how many non-blank lines of a plain-text corpus are merged
// into one document chunk.
const chunkLines = 50

// forEachChunk streams the document chunks of a corpus file to fn in order.
// The format is chosen by extension: .jsonl files yield one document per
// line, .html/.htm files are stripped to text first, anything else is
// treated as plain text and chunked.
func forEachChunk(path string, fn func(id, text string) error) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jsonl":
		return forEachJSONL(path, fn)
	case ".html", ".htm":
		return forEachHTMLChunk(path, fn)
	default:
		return forEachTextChunk(path, fn)
	}
}

func forEachTextChunk(path string, fn func(id, text string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return chunkText(bufio.NewScanner(f), fn)
}

func chunkText(scanner *bufio.Scanner, fn func(id, text string) error) error {
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var buffer []string
	idx := 0
	flush := func() error {
		if len(buffer) == 0 {
			return nil
		}
		err := fn(fmt.Sprintf("chunk_%d", idx), strings.Join(buffer, " "))
		idx++
		buffer = buffer[:0]
		return err
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			buffer = append(buffer, line)
		}
		if len(buffer) >= chunkLines {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return flush()
}

// jsonlDoc is one line of a JSONL corpus.
type jsonlDoc struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

func forEachJSONL(path string, fn func(id, text string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	idx := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var doc jsonlDoc
		if err := json.Unmarshal([]byte(line), &doc); err != nil {
			// Malformed lines are skipped, not fatal.
			idx++
			continue
		}
		id := doc.ID
		if id == "" {
			id = fmt.Sprintf("doc_%d", idx)
		}
		if err := fn(id, doc.Text); err != nil {
			return err
		}
		idx++
	}
	return scanner.Err()
}

func forEachHTMLChunk(path string, fn func(id, text string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	doc, err := html.Parse(f)
	if err != nil {
		return err
	}

	var buf strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		switch {
		case n.Type == html.TextNode:
			buf.WriteString(n.Data)
			buf.WriteString("\n")
		case n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style"):
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extractText(c)
		}
	}
	extractText(doc)

	scanner := bufio.NewScanner(strings.NewReader(buf.String()))
	return chunkText(scanner, fn)
}
