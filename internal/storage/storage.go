// Package storage picks the repository backend named by the configuration.
package storage

import (
	"context"

	"github.com/spf13/afero"

	"cutlery/internal/config"
	"cutlery/internal/db"
	"cutlery/internal/jsonstore"
	"cutlery/internal/repository"
)

// Storage bundles the repositories of one backend.
type Storage struct {
	Users        repository.UserRepository
	Requirements repository.RequirementRepository
	Catalog      repository.CatalogRepository

	close func() error
}

// Open connects the configured backend. JSON documents live under cfg.DataDir;
// SQL drivers are migrated before use.
func Open(ctx context.Context, cfg *config.Config) (*Storage, error) {
	if cfg.StorageDriver == config.DriverJSON {
		return OpenJSON(afero.NewOsFs(), cfg.DataDir)
	}

	gormDB, err := db.Open(ctx, cfg.StorageDriver, cfg.DatabaseDSN, cfg.Debug)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(gormDB); err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	return &Storage{
		Users:        repository.NewUserRepository(gormDB),
		Requirements: repository.NewRequirementRepository(gormDB),
		Catalog:      repository.NewCatalogRepository(gormDB),
		close:        sqlDB.Close,
	}, nil
}

// OpenJSON serves the repositories from the JSON documents under dir on fs.
func OpenJSON(fs afero.Fs, dir string) (*Storage, error) {
	store, err := jsonstore.Open(fs, dir)
	if err != nil {
		return nil, err
	}
	return &Storage{
		Users:        store.Users(),
		Requirements: store.Requirements(),
		Catalog:      store.Catalog(),
	}, nil
}

// Close releases the database connection, if any.
func (s *Storage) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}
