package main

import (
	"context"
	"fmt"
	"path"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"

	"motionstock/internal/adapter/api/handler"
	"motionstock/internal/adapter/repository"
	domainrepo "motionstock/internal/domain/repository"
	"motionstock/internal/domain/service"
	"motionstock/internal/infrastructure/storage"
	"motionstock/pkg/config"
	"motionstock/pkg/logger"
)

// stores holds the backends selected by configuration.
type stores struct {
	assets    domainrepo.AssetRepository
	templates domainrepo.TemplateRepository
	projects  domainrepo.ProjectRepository
	blobs     service.BlobStore

	closers []func() error
}

func openStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	s := &stores{}

	switch cfg.StoreDriver {
	case config.StoreFirestore:
		var opts []option.ClientOption
		if cfg.CredentialsPath != "" {
			logger.Info("Using service account from file: %s", cfg.CredentialsPath)
			opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
		}
		client, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create Firestore client: %w", err)
		}
		s.closers = append(s.closers, client.Close)
		s.assets = repository.NewFirestoreAssetRepository(client)
		s.templates = repository.NewFirestoreTemplateRepository(client)
		s.projects = repository.NewFirestoreProjectRepository(client)

	case config.StoreSQLite:
		db, err := repository.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, db.Close)
		s.assets = repository.NewSQLiteAssetRepository(db)
		s.templates = repository.NewSQLiteTemplateRepository(db)
		s.projects = repository.NewSQLiteProjectRepository(db)

	default:
		logger.Warn("Using in-memory store; records are lost on restart")
		s.assets = repository.NewMemoryAssetRepository()
		s.templates = repository.NewMemoryTemplateRepository()
		s.projects = repository.NewMemoryProjectRepository()
	}

	switch cfg.StorageBackend {
	case config.StorageGCS:
		client, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, cfg.FirebaseProject, cfg.CredentialsPath)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("failed to initialize Cloud Storage: %w", err)
		}
		s.blobs = client
	default:
		local, err := storage.NewLocalStore(cfg.StorageRoot)
		if err != nil {
			s.Close()
			return nil, err
		}
		s.blobs = local
	}
	s.closers = append(s.closers, s.blobs.Close)

	logger.Info("Stores ready (records: %s, files: %s)", cfg.StoreDriver, cfg.StorageBackend)
	return s, nil
}

// healthChecks probes both backends through their public interfaces.
func (s *stores) healthChecks(cfg *config.Config) map[string]handler.HealthCheck {
	return map[string]handler.HealthCheck{
		"records": func(ctx context.Context) error {
			_, err := s.templates.Count(ctx)
			return err
		},
		"files": func(ctx context.Context) error {
			_, err := s.blobs.Exists(ctx, path.Join(cfg.AssetPrefix, ".probe"))
			return err
		},
	}
}

func (s *stores) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			logger.Error("Failed to close store: %v", err)
		}
	}
}
