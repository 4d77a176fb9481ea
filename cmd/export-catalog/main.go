package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"novelverse/internal/catalog"
	"novelverse/pkg/database"
	"novelverse/pkg/models"
)

func main() {
	var (
		dbPath  = flag.String("db", "", "SQLite catalog path (empty exports the built-in seed)")
		csvOut  = flag.String("csv", "data/novels.csv", "output CSV path (empty to skip)")
		jsonOut = flag.String("json", "", "output JSON path (empty to skip)")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var store catalog.Store = catalog.NewSeedStore()
	if *dbPath != "" {
		db, err := database.Open(database.Config{Path: *dbPath})
		if err != nil {
			log.Fatalf("db open failed: %v", err)
		}
		defer db.Close()
		if err := database.Migrate(db); err != nil {
			log.Fatalf("db migrate failed: %v", err)
		}
		store = catalog.NewSQLiteStore(db)
	}

	novels, err := store.List(ctx)
	if err != nil {
		log.Fatalf("list novels failed: %v", err)
	}

	if *csvOut != "" {
		if err := exportCSV(*csvOut, novels); err != nil {
			log.Fatalf("export csv failed: %v", err)
		}
	}
	if *jsonOut != "" {
		if err := exportJSON(*jsonOut, novels); err != nil {
			log.Fatalf("export json failed: %v", err)
		}
	}

	log.Printf("✅ exported %d novels (csv=%q json=%q)", len(novels), *csvOut, *jsonOut)
}

func create(outPath string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return nil, err
	}
	return os.Create(outPath)
}

func exportCSV(outPath string, novels []models.NovelSummary) error {
	f, err := create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return catalog.WriteCSV(f, novels)
}

func exportJSON(outPath string, novels []models.NovelSummary) error {
	f, err := create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(novels)
}
