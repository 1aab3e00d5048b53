package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/6610685031/cn331-project-budgy/internal/config"
	"github.com/6610685031/cn331-project-budgy/internal/database"
	"github.com/6610685031/cn331-project-budgy/internal/mail"
	"github.com/6610685031/cn331-project-budgy/internal/router"
)

func main() {
	// load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// ensure basic directories exist
	if err := ensureDir(filepath.Dir(cfg.Database.Path)); err != nil {
		log.Fatalf("create data dir: %v", err)
	}
	if err := ensureDir(cfg.Uploads.Dir); err != nil {
		log.Fatalf("create uploads dir: %v", err)
	}

	// init database
	db, err := database.Init(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}

	// run migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	sender := mail.NewMailerSend(cfg.Mail)

	// setup router
	r := router.SetupRouter(cfg, db, sender)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	log.Printf("server listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("run server: %v", err)
	}
}

func ensureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
