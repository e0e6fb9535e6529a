package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/marcus/podview/internal/catalog"
	"github.com/marcus/podview/internal/config"
	"github.com/marcus/podview/internal/db"
	"github.com/marcus/podview/internal/models"
)

// sourceFlag is a --source value restricted to the known source kinds
type sourceFlag models.SourceKind

var _ pflag.Value = (*sourceFlag)(nil)

func (s *sourceFlag) String() string { return string(*s) }

func (s *sourceFlag) Set(v string) error {
	k := models.SourceKind(strings.ToLower(strings.TrimSpace(v)))
	if !models.IsValidSourceKind(k) {
		return fmt.Errorf("must be one of %s", joinKinds())
	}
	*s = sourceFlag(k)
	return nil
}

func (s *sourceFlag) Type() string { return "source" }

func joinKinds() string {
	kinds := models.AllSourceKinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

// catalogFlags holds the catalog selection flags shared by commands
type catalogFlags struct {
	catalog  string
	database string
	source   sourceFlag
}

func (f *catalogFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.catalog, "catalog", "c", "", "catalog file (.json, .yaml) or directory")
	cmd.Flags().StringVar(&f.database, "db", "", "sqlite catalog database")
	cmd.Flags().VarP(&f.source, "source", "s", "catalog source: "+joinKinds())
}

// resolve merges flags over the config file. The kind comes from --source,
// then from a location flag, then from the configured source, then from
// whichever location is configured, falling back to the sample.
func (f *catalogFlags) resolve(cfg *models.Config) (models.SourceKind, string) {
	cat, database := cfg.Catalog, cfg.Database
	if f.catalog != "" {
		cat = f.catalog
	}
	if f.database != "" {
		database = f.database
	}

	var kind models.SourceKind
	switch {
	case f.source != "":
		kind = models.SourceKind(f.source)
	case f.database != "":
		kind = models.SourceSQLite
	case f.catalog != "":
		kind = models.SourceFile
	case cfg.Source != "":
		kind = cfg.Source
	case database != "":
		kind = models.SourceSQLite
	case cat != "":
		kind = models.SourceFile
	default:
		kind = models.SourceSample
	}

	switch kind {
	case models.SourceFile:
		return kind, cat
	case models.SourceSQLite:
		if database == "" {
			database = db.DefaultPath(getBaseDir())
		}
		return kind, database
	}
	return kind, ""
}

// loadCatalog loads the catalog selected by the flags and config
func loadCatalog(ctx context.Context, f *catalogFlags) (*catalog.Catalog, *models.Config, error) {
	cfg, err := config.Load(getBaseDir())
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	kind, location := f.resolve(cfg)
	switch kind {
	case models.SourceSample:
		return catalog.Sample(), cfg, nil

	case models.SourceFile:
		if location == "" {
			return nil, nil, fmt.Errorf("source %q needs --catalog or the catalog config key", kind)
		}
		c, err := catalog.Load(ctx, location)
		if err != nil {
			return nil, nil, fmt.Errorf("load catalog: %w", err)
		}
		return c, cfg, nil

	case models.SourceSQLite:
		database, err := db.Open(location)
		if err != nil {
			return nil, nil, err
		}
		defer database.Close()

		c, err := database.Catalog(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("read catalog database: %w", err)
		}
		return c, cfg, nil
	}

	return nil, nil, fmt.Errorf("unknown source %q", kind)
}
