package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"novelverse/internal/catalog"
	"novelverse/pkg/database"
)

func main() {
	var (
		in     = flag.String("in", "data/novels.csv", "input CSV path for the catalog")
		dbPath = flag.String("db", "data/novelverse.db", "SQLite catalog path")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	f, err := os.Open(*in)
	if err != nil {
		log.Fatalf("open %s: %v", *in, err)
	}
	defer f.Close()

	novels, err := catalog.ReadCSV(f)
	if err != nil {
		log.Fatalf("parse %s: %v", *in, err)
	}

	db, err := database.Open(database.Config{Path: *dbPath})
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}
	if err := catalog.SaveSnapshot(ctx, db, novels); err != nil {
		log.Fatalf("save snapshot failed: %v", err)
	}

	log.Printf("✅ imported %d novels from %s into %s", len(novels), *in, *dbPath)
}
