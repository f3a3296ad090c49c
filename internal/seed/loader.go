// Package seed loads the initial sandwich catalog from JSON files at startup.
package seed

import (
	"bufio"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/mefdet1/Assignment-5/internal/models"
)

// Catalog is the contents of one seed file
type Catalog struct {
	Resources  []models.ResourceCreate `json:"resources"`
	Sandwiches []models.SandwichCreate `json:"sandwiches"`
	Recipes    []models.RecipeCreate   `json:"recipes"`
}

// Loader reads catalogs from local paths or http(s) URLs
type Loader struct {
	client *http.Client
	log    *slog.Logger
}

// loadResult holds the result of loading a single source
type loadResult struct {
	index   int
	catalog Catalog
	err     error
}

// NewLoader creates a new catalog loader
func NewLoader(log *slog.Logger) *Loader {
	return &Loader{
		client: &http.Client{Timeout: 30 * time.Second},
		log:    log,
	}
}

// Load fetches all sources concurrently and returns their catalogs in
// source order. Any failing source fails the whole load.
func (l *Loader) Load(ctx context.Context, sources []string) ([]Catalog, error) {
	if len(sources) == 0 {
		return nil, nil
	}

	resultChan := make(chan loadResult, len(sources))

	var wg sync.WaitGroup
	for i, src := range sources {
		wg.Add(1)
		go func(index int, source string) {
			defer wg.Done()

			catalog, err := l.loadSource(ctx, source)
			resultChan <- loadResult{
				index:   index,
				catalog: catalog,
				err:     err,
			}
		}(i, src)
	}

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	results := make([]loadResult, len(sources))
	for result := range resultChan {
		results[result.index] = result
	}

	catalogs := make([]Catalog, len(results))
	for i, result := range results {
		if result.err != nil {
			return nil, fmt.Errorf("load seed %s: %w", sources[i], result.err)
		}
		catalogs[i] = result.catalog
	}

	return catalogs, nil
}

func (l *Loader) loadSource(ctx context.Context, source string) (Catalog, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return l.loadFromURL(ctx, source)
	}
	return l.loadFromFile(source)
}

func (l *Loader) loadFromFile(path string) (Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	l.log.Debug("reading seed file", "path", path)
	return parseCatalog(f)
}

func (l *Loader) loadFromURL(ctx context.Context, url string) (Catalog, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Catalog{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return Catalog{}, fmt.Errorf("failed to download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Catalog{}, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	l.log.Debug("downloaded seed file", "url", url)
	return parseCatalog(resp.Body)
}

// parseCatalog decodes a JSON catalog, transparently gunzipping it when the
// stream starts with the gzip magic bytes.
func parseCatalog(r io.Reader) (Catalog, error) {
	br := bufio.NewReader(r)

	if magic, err := br.Peek(2); err == nil && magic[0] == 0x1f && magic[1] == 0x8b {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return Catalog{}, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gz.Close()
		return decodeCatalog(gz)
	}

	return decodeCatalog(br)
}

func decodeCatalog(r io.Reader) (Catalog, error) {
	var c Catalog
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return Catalog{}, fmt.Errorf("error decoding catalog: %w", err)
	}
	return c, nil
}
