// Package ddragon serves the static champion catalog from Data Dragon,
// cached process-wide after the first successful fetch.
package ddragon

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

const baseURL = "https://ddragon.leagueoflegends.com"

type championFile struct {
	Data map[string]struct {
		Key  string `json:"key"` // numeric id as a string
		Name string `json:"name"`
	} `json:"data"`
}

// Catalog is a read-through cache over the champion.json catalog. The
// first call to Champions populates it; concurrent first callers are
// coalesced through a single flight so the upstream is hit at most once,
// and a partially populated map is never observable.
type Catalog struct {
	http  *http.Client
	group singleflight.Group

	mu      sync.RWMutex
	byID    map[int64]string
	version string
}

// NewCatalog returns an empty catalog backed by the public Data Dragon CDN.
func NewCatalog() *Catalog {
	return &Catalog{
		http: &http.Client{Timeout: 15 * time.Second},
	}
}

// Version returns the catalog's Data Dragon version, empty before the
// first successful population.
func (c *Catalog) Version() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

// Champions returns the championID→name catalog, fetching and caching it
// on first use. The returned map is shared; callers must not mutate it.
func (c *Catalog) Champions(ctx context.Context) (map[int64]string, error) {
	c.mu.RLock()
	cached := c.byID
	c.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	v, err, _ := c.group.Do("champions", func() (interface{}, error) {
		// Re-check under the flight: a prior flight may have populated.
		c.mu.RLock()
		populated := c.byID
		c.mu.RUnlock()
		if populated != nil {
			return populated, nil
		}

		version, err := c.latestVersion(ctx)
		if err != nil {
			return nil, err
		}
		byID, err := c.fetchChampions(ctx, version)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.byID = byID
		c.version = version
		c.mu.Unlock()
		return byID, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(map[int64]string), nil
}

func (c *Catalog) latestVersion(ctx context.Context) (string, error) {
	var versions []string
	if err := c.get(ctx, baseURL+"/api/versions.json", &versions); err != nil {
		return "", fmt.Errorf("ddragon versions: %w", err)
	}
	if len(versions) == 0 {
		return "", fmt.Errorf("ddragon versions: empty list")
	}
	return versions[0], nil
}

func (c *Catalog) fetchChampions(ctx context.Context, version string) (map[int64]string, error) {
	var file championFile
	u := fmt.Sprintf("%s/cdn/%s/data/en_US/champion.json", baseURL, version)
	if err := c.get(ctx, u, &file); err != nil {
		return nil, fmt.Errorf("ddragon champions: %w", err)
	}

	byID := make(map[int64]string, len(file.Data))
	for _, champ := range file.Data {
		id, err := strconv.ParseInt(champ.Key, 10, 64)
		if err != nil {
			continue // malformed key, champion just won't resolve
		}
		byID[id] = champ.Name
	}
	return byID, nil
}

func (c *Catalog) get(ctx context.Context, rawurl string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawurl, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: HTTP %d", rawurl, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
