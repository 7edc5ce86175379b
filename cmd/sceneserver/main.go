package main

import (
	"context"
	"fmt"
	"log"

	"sketchpad/internal/common/config"
	"sketchpad/internal/repository"
	"sketchpad/internal/server"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// ============================================================
// Scene Service
// ============================================================

func main() {
	cfg := config.Load()

	db, err := repository.OpenSQLite(cfg.SceneDBPath)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := repository.New(db).Init(context.Background()); err != nil {
		log.Fatalf("init db: %v", err)
	}

	app := server.New(cfg, db)

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting Scene Service on %s (env: %s, db: %s)", addr, cfg.Environment, cfg.SceneDBPath)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
