package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/marcus/podview/internal/models"
)

// Directory layout file names
const (
	podcastsFile = "podcasts.json"
	seasonsFile  = "seasons.json"
	genresFile   = "genres.json"
)

// fileFormat is the single-file catalog layout
type fileFormat struct {
	Podcasts []models.Item        `json:"podcasts" yaml:"podcasts"`
	Seasons  []models.ShowSeasons `json:"seasons" yaml:"seasons"`
	Genres   []models.Genre       `json:"genres" yaml:"genres"`
}

// Load reads a catalog from a file or directory
func Load(ctx context.Context, path string) (*Catalog, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat catalog: %w", err)
	}
	if info.IsDir() {
		return LoadDir(ctx, path)
	}
	return LoadFile(path)
}

// LoadFile reads a single JSON or YAML catalog file, chosen by extension
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var f fileFormat
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", filepath.Base(path), err)
		}
	case ".json":
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", filepath.Base(path), err)
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", filepath.Ext(path))
	}

	return New(f.Podcasts, f.Seasons, f.Genres), nil
}

// LoadDir reads podcasts.json, seasons.json and genres.json from dir in
// parallel. Only podcasts.json is required.
func LoadDir(ctx context.Context, dir string) (*Catalog, error) {
	var (
		items   []models.Item
		seasons []models.ShowSeasons
		genres  []models.Genre
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return readJSON(ctx, filepath.Join(dir, podcastsFile), false, &items)
	})
	g.Go(func() error {
		return readJSON(ctx, filepath.Join(dir, seasonsFile), true, &seasons)
	})
	g.Go(func() error {
		return readJSON(ctx, filepath.Join(dir, genresFile), true, &genres)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return New(items, seasons, genres), nil
}

func readJSON(ctx context.Context, path string, optional bool, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return nil
}
