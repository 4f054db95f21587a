package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/scholaris/scholaris-backend/internal/config"
)

func main() {
	var dir string
	flag.StringVar(&dir, "path", "migrations", "Directory containing migration files")
	flag.Parse()

	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	m, err := migrate.New("file://"+dir, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("migrate init: %v", err)
	}

	args := flag.Args()
	if len(args) < 1 {
		usage()
		return
	}

	switch args[0] {
	case "up":
		if err := m.Up(); err != nil && err != migrate.ErrNoChange {
			log.Fatalf("up: %v", err)
		}
		fmt.Println("migrations applied")
	case "down":
		if err := m.Down(); err != nil && err != migrate.ErrNoChange {
			log.Fatalf("down: %v", err)
		}
		fmt.Println("migrations rolled back")
	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			log.Fatalf("version: %v", err)
		}
		fmt.Printf("version %d (dirty: %t)\n", version, dirty)
	case "force":
		if len(args) < 2 {
			log.Fatal("force requires a version argument")
		}
		v, err := strconv.Atoi(args[1])
		if err != nil {
			log.Fatalf("invalid version %q: %v", args[1], err)
		}
		if err := m.Force(v); err != nil {
			log.Fatalf("force: %v", err)
		}
		fmt.Printf("forced version to %d\n", v)
	default:
		usage()
	}
}

func usage() {
	fmt.Println("Usage: migrate [flags] <up|down|version|force <version>>")
	flag.PrintDefaults()
}
