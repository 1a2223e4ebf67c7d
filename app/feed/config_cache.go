package feed

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/mercato-app/homefeed/app/card"
)

// TileCache loads and caches the locally defined tiles, one YAML file
// per tile. Local tiles carry no vendor card data.
type TileCache struct {
	tilesDir string
	cache    map[string]*TileConfig
	mu       sync.RWMutex
}

func NewTileCache(tilesDir string) *TileCache {
	return &TileCache{
		tilesDir: tilesDir,
		cache:    make(map[string]*TileConfig),
	}
}

// Run loads every *.yml file in the tiles directory, replacing the
// current cache. A missing directory is not an error: the feed simply
// has no local tiles.
func (tc *TileCache) Run() error {
	if _, err := os.Stat(tc.tilesDir); os.IsNotExist(err) {
		return nil
	}

	files, err := filepath.Glob(filepath.Join(tc.tilesDir, "*.yml"))
	if err != nil {
		return fmt.Errorf("failed to find YML files: %w", err)
	}

	loaded := make(map[string]*TileConfig, len(files))
	for _, file := range files {
		fileName := filepath.Base(file)
		tileName := fileName[:len(fileName)-4] // Remove .yml extension

		tileConfig, err := tc.parseConfig(file, tileName)
		if err != nil {
			return fmt.Errorf("error loading %s: %w", file, err)
		}

		loaded[tileName] = tileConfig
		slog.Debug("Tile configuration loaded", "tile", tileConfig.ID, "tags", tileConfig.Tags)
	}

	tc.mu.Lock()
	defer tc.mu.Unlock()
	tc.cache = loaded

	return nil
}

// GetTiles returns the local tiles as domain objects in a stable order
// (sorted by tile ID).
func (tc *TileCache) GetTiles() []card.Tile {
	tc.mu.RLock()
	defer tc.mu.RUnlock()

	tiles := make([]card.Tile, 0, len(tc.cache))
	for _, cfg := range tc.cache {
		tiles = append(tiles, card.Tile{
			ID:       cfg.ID,
			Title:    cfg.Title,
			Detail:   cfg.Detail,
			Price:    cfg.Price,
			ImageURL: cfg.Image,
			Tags:     cfg.Tags,
		})
	}

	sort.Slice(tiles, func(i, j int) bool { return tiles[i].ID < tiles[j].ID })
	return tiles
}

func (tc *TileCache) GetTileCount() int {
	tc.mu.RLock()
	defer tc.mu.RUnlock()
	return len(tc.cache)
}

func (tc *TileCache) parseConfig(configFile, tileName string) (*TileConfig, error) {
	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var tileConfig TileConfig
	if err := yaml.Unmarshal(data, &tileConfig); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if tileConfig.ID == "" {
		tileConfig.ID = tileName
	}

	if err := tc.validateConfig(&tileConfig); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configFile, err)
	}

	return &tileConfig, nil
}

func (tc *TileCache) validateConfig(tileConfig *TileConfig) error {
	if tileConfig == nil {
		return fmt.Errorf("tileConfig is nil")
	}
	if tileConfig.Title == "" {
		return fmt.Errorf("tile title is required")
	}
	for i, tag := range tileConfig.Tags {
		if tag == "" {
			return fmt.Errorf("empty tag at index %d", i)
		}
	}
	return nil
}
