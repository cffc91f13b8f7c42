package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log"
	"os"

	_ "github.com/lib/pq"

	"github.com/pageza/ahara/backend/config"
	"github.com/pageza/ahara/backend/internal/database"
	"github.com/pageza/ahara/backend/internal/logger"
)

func main() {
	// Parse command line flags
	rollback := flag.Bool("rollback", false, "Rollback the last migration")
	migrationsDir := flag.String("dir", "migrations", "Directory holding the SQL migrations")
	flag.Parse()

	appLog, err := logger.New(config.GetEnvironment().LogMode(), "info")
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer appLog.Sync()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("DATABASE_URL is not set and config failed to load: %v", err)
		}
		dsn = cfg.Database.DSN()
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	migrator := database.NewMigrator(db, *migrationsDir, appLog)

	if *rollback {
		name, err := migrator.Rollback(ctx)
		if errors.Is(err, database.ErrNoMigrations) {
			appLog.Info("nothing to roll back")
			return
		}
		if err != nil {
			appLog.Fatal("rollback failed", "error", err)
		}
		appLog.Info("rolled back migration", "name", name)
		return
	}

	applied, err := migrator.Up(ctx)
	if err != nil {
		appLog.Fatal("migration failed", "error", err)
	}
	appLog.Info("migrations complete", "applied", applied)
}
