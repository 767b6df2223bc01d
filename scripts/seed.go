package main

import (
	"context"
	"flag"
	"log"
	"time"

	_ "github.com/lib/pq"

	"github.com/jordanlanch/outreachhq/config"
	"github.com/jordanlanch/outreachhq/pkg/database"
	"github.com/jordanlanch/outreachhq/pkg/testdata"
)

func main() {
	count := flag.Int("count", 50, "prospects per industry")
	batchSize := flag.Int("batch-size", 100, "insert batch size")
	flag.Parse()

	cfg := config.Load()

	db, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	total := 0
	for _, industry := range testdata.Industries() {
		prospects := testdata.GenerateProspects(testdata.ProspectGeneratorConfig{
			Industry: industry,
			Count:    *count,
		})

		if err := testdata.BulkInsertProspects(ctx, db.Ent, prospects, *batchSize); err != nil {
			log.Fatalf("❌ Failed seeding %s prospects: %v", industry, err)
		}

		total += len(prospects)
		log.Printf("✅ Seeded %d %s prospects", len(prospects), industry)
	}

	log.Printf("🌱 Seeding complete: %d prospects", total)
}
