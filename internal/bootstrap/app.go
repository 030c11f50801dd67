package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"filebox-backend/internal/files"
	"filebox-backend/internal/shared/config"
	"filebox-backend/internal/shared/server"
	"filebox-backend/internal/shared/storage/db"
)

// App holds shared dependencies.
type App struct {
	Config       config.Config
	Router       *gin.Engine
	DB           *sql.DB
	FilesRepo    files.Repo
	FilesService *files.Service
	FilesHandler *files.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var repo files.Repo
	if sqlDB != nil {
		repo = &files.PGRepo{DB: sqlDB}
	} else {
		repo = files.NewMemoryRepo()
	}

	svc := &files.Service{Repo: repo}
	handler := files.NewHandler(svc)

	return &App{
		Config:       cfg,
		Router:       server.NewRouter(cfg, handler),
		DB:           sqlDB,
		FilesRepo:    repo,
		FilesService: svc,
		FilesHandler: handler,
	}, nil
}

// buildDB connects to Postgres and ensures the schema exists. Without a
// DATABASE_URL, dev-like environments fall back to the in-memory repository;
// production refuses to start degraded.
func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if cfg.DatabaseURL == "" {
		if config.IsDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repository")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if config.IsDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repository: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		if config.IsDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repository: %v", err)
			return nil, nil
		}
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return sqlDB, nil
}
