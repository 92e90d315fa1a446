// Package feed loads Telugu news dumps for graph indexing. A dump is a JSONL
// file of article objects, one per line.
package feed

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Item is one article of a news dump.
type Item struct {
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Outlet      string    `json:"outlet"`
	PublishedAt time.Time `json:"published_at"`
	Body        string    `json:"text"`
	Categories  []string  `json:"categories"`
}

// Text is the article content submitted to extraction: the title joined with
// the body.
func (it Item) Text() string {
	switch {
	case it.Title == "":
		return it.Body
	case it.Body == "":
		return it.Title
	default:
		return it.Title + ". " + it.Body
	}
}

// DocID identifies the article in the graph store. The URL wins when present.
func (it Item) DocID() string {
	if it.URL != "" {
		return it.URL
	}
	return it.Title
}

// LoadJSONL reads a news dump. Malformed lines are counted, not fatal; a dump
// with no valid items is an error.
func LoadJSONL(path string) (items []Item, skipped int, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("read dump %s: %w", path, err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var item Item
		if err := json.Unmarshal([]byte(line), &item); err != nil {
			skipped++
			continue
		}
		if strings.TrimSpace(item.Text()) == "" {
			skipped++
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil, skipped, fmt.Errorf("no valid items in %s", path)
	}
	return items, skipped, nil
}
