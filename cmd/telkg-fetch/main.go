// Command telkg-fetch downloads random Telugu Wikipedia articles through the
// MediaWiki API and writes them as a JSONL corpus for telkg-corpus.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const apiBase = "https://te.wikipedia.org/w/api.php"

// Articles are requested in batches; the API caps random generation at 20
// pages with extracts per call.
const batchSize = 20

type apiResponse struct {
	Query struct {
		Pages map[string]struct {
			PageID  int64  `json:"pageid"`
			Title   string `json:"title"`
			Extract string `json:"extract"`
		} `json:"pages"`
	} `json:"query"`
}

// corpusDoc matches the JSONL document format the corpus driver reads.
type corpusDoc struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

func main() {
	var (
		count   = flag.Int("count", 100, "Number of articles to download")
		outPath = flag.String("out", "testdata/tewiki/corpus.jsonl", "Output JSONL file")
	)
	flag.Parse()

	log.Printf("Downloading %d Telugu Wikipedia articles...", *count)

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		log.Fatal("Failed to create output directory:", err)
	}
	outFile, err := os.Create(*outPath)
	if err != nil {
		log.Fatal("Failed to create output file:", err)
	}
	defer outFile.Close()

	encoder := json.NewEncoder(outFile)
	downloaded := 0
	seen := map[int64]bool{}

	for downloaded < *count {
		pages, err := fetchBatch()
		if err != nil {
			log.Fatal("Failed to fetch batch:", err)
		}
		if len(pages) == 0 {
			break
		}

		for _, p := range pages {
			if downloaded >= *count || seen[p.pageID] {
				continue
			}
			seen[p.pageID] = true

			text := strings.TrimSpace(p.extract)
			if text == "" {
				continue
			}

			doc := corpusDoc{
				ID:   fmt.Sprintf("tewiki_%d", p.pageID),
				Text: p.title + ". " + text,
			}
			if err := encoder.Encode(doc); err != nil {
				log.Printf("Failed to encode %s: %v", p.title, err)
				continue
			}

			downloaded++
			if downloaded%batchSize == 0 {
				log.Printf("Downloaded %d/%d articles...", downloaded, *count)
			}
		}

		// Be nice to the API.
		time.Sleep(200 * time.Millisecond)
	}

	log.Printf("Downloaded %d articles to %s", downloaded, *outPath)
}

type page struct {
	pageID  int64
	title   string
	extract string
}

func fetchBatch() ([]page, error) {
	params := url.Values{
		"action":        {"query"},
		"format":        {"json"},
		"generator":     {"random"},
		"grnnamespace":  {"0"},
		"grnlimit":      {fmt.Sprint(batchSize)},
		"prop":          {"extracts"},
		"explaintext":   {"1"},
		"exintro":       {"0"},
		"exlimit":       {"max"},
		"formatversion": {"1"},
	}

	resp, err := http.Get(apiBase + "?" + params.Encode())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	var parsed apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	pages := make([]page, 0, len(parsed.Query.Pages))
	for _, p := range parsed.Query.Pages {
		pages = append(pages, page{pageID: p.PageID, title: p.Title, extract: p.Extract})
	}
	return pages, nil
}
