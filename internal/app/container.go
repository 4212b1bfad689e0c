package app

import (
	"context"
	"log"
	"os"
	"time"

	"talent-bridge/internal/config"
	"talent-bridge/internal/database"
	"talent-bridge/internal/database/migration"
	dbpostgres "talent-bridge/internal/database/postgres"
	"talent-bridge/internal/database/seeder"
	"talent-bridge/internal/infrastructure/cache"
	"talent-bridge/internal/infrastructure/filestore"
	"talent-bridge/internal/mail"
	"talent-bridge/internal/ws"
)

// Container holds the process-wide infrastructure. Everything above
// it (usecases, handlers) is wired in Bootstrap.
type Container struct {
	Config config.Config
	Logger *log.Logger
	DB     database.DB
	Redis  *cache.Redis
	Files  *filestore.Store
	Mailer mail.Sender
	Hub    *ws.Hub
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags|log.Lmicroseconds)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	runner := migration.Runner{Dir: cfg.Database.MigrationsDir}
	if err := runner.Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, err
	}

	if cfg.App.Environment == "development" {
		seed := seeder.Runner{Seeders: seeder.Defaults()}
		if err := seed.Run(ctx, db); err != nil {
			logger.Printf("SEED failed | error=%v", err)
		}
	}

	files, err := filestore.New(cfg.Files.Dir)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	hub := ws.NewHub(logger)
	go hub.Run()

	return &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Redis:  cache.NewRedis(cfg.Redis, logger),
		Files:  files,
		Mailer: mail.NewSMTPSender(cfg.SMTP),
		Hub:    hub,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
