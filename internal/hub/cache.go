package hub

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"emotiond/internal/common/fsutil"
)

// Cache stores downloaded artifacts under <dir>/<repo-with-slashes-flattened>/.
// Existing files are reused; missing ones are fetched through the Client.
type Cache struct {
	dir    string
	client *Client
}

// NewCache resolves and creates the cache directory.
func NewCache(dir string, client *Client) (*Cache, error) {
	abs, err := fsutil.EnsureDir(dir)
	if err != nil {
		return nil, fmt.Errorf("hub: cache dir: %w", err)
	}
	return &Cache{dir: abs, client: client}, nil
}

// Dir returns the resolved cache directory.
func (c *Cache) Dir() string {
	return c.dir
}

// Ensure returns local paths for the named artifacts of repo, downloading any
// that are not already cached. Paths are keyed by artifact name. On any
// download failure no partial entry is added for that artifact.
func (c *Cache) Ensure(ctx context.Context, repo string, names ...string) (map[string]string, error) {
	repoDir, err := fsutil.EnsureDir(filepath.Join(c.dir, flattenRepo(repo)))
	if err != nil {
		return nil, fmt.Errorf("hub: repo dir: %w", err)
	}
	paths := make(map[string]string, len(names))
	for _, name := range names {
		dest := filepath.Join(repoDir, name)
		if !fsutil.PathExists(dest) {
			if err := c.client.Download(ctx, repo, name, dest); err != nil {
				return nil, fmt.Errorf("hub: fetch %s/%s: %w", repo, name, err)
			}
		}
		paths[name] = dest
	}
	return paths, nil
}

// flattenRepo maps "org/model" to a single path segment.
func flattenRepo(repo string) string {
	return strings.ReplaceAll(repo, "/", "--")
}
