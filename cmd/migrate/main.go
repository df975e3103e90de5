package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/m04kA/HMS-FrontdeskService/internal/config"
)

// Применяет миграции схемы базы данных.
//
//	go run ./cmd/migrate -config config.toml -path migrations up
//	go run ./cmd/migrate -config config.toml -path migrations down
func main() {
	configPath := flag.String("config", "config.toml", "путь к конфигурации")
	migrationsPath := flag.String("path", "migrations", "каталог с миграциями")
	flag.Parse()

	direction := flag.Arg(0)
	if direction != "up" && direction != "down" {
		fmt.Println("usage: migrate [-config config.toml] [-path migrations] up|down")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.Database.User, cfg.Database.Password,
		cfg.Database.Host, cfg.Database.Port,
		cfg.Database.DBName, cfg.Database.SSLMode,
	)

	m, err := migrate.New("file://"+*migrationsPath, dsn)
	if err != nil {
		fmt.Printf("Failed to initialize migrations: %v\n", err)
		os.Exit(1)
	}
	defer func() { _, _ = m.Close() }()

	switch direction {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	}

	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			fmt.Println("No pending migrations")
			return
		}
		fmt.Printf("Migration failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Migrations applied: %s\n", direction)
}
