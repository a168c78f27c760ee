// Command seed inserts a demo vendor catalog so local agents have
// datasets to negotiate over.
//
// Usage:
//
//	seed
//
// Requires DATABASE_DSN environment variable to be set. Re-running is
// safe: rows are inserted with fixed IDs and ON CONFLICT DO NOTHING.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type seedVendor struct {
	id       string
	name     string
	datasets []seedDataset
}

type seedDataset struct {
	id    string
	title string
}

var catalog = []seedVendor{
	{
		id:   "7b8a1f9e-2c3d-4e5f-8a9b-0c1d2e3f4a5b",
		name: "Global Metrics Ltd",
		datasets: []seedDataset{
			{id: "a1b2c3d4-0001-4000-8000-000000000001", title: "Consumer Spending Index 2024"},
			{id: "a1b2c3d4-0002-4000-8000-000000000002", title: "EU Retail Footfall, Weekly"},
		},
	},
	{
		id:   "3e4f5a6b-7c8d-4e9f-a0b1-c2d3e4f5a6b7",
		name: "Signalwave Data Co",
		datasets: []seedDataset{
			{id: "a1b2c3d4-0003-4000-8000-000000000003", title: "Maritime AIS Traces, Q1-Q4"},
		},
	},
}

func main() {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	var inserted int
	for _, v := range catalog {
		tag, err := pool.Exec(ctx,
			"INSERT INTO vendors (id, name) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING",
			v.id, v.name,
		)
		if err != nil {
			log.Fatalf("seed vendor %s: %v", v.name, err)
		}
		inserted += int(tag.RowsAffected())

		for _, d := range v.datasets {
			tag, err := pool.Exec(ctx,
				"INSERT INTO datasets (id, vendor_id, title) VALUES ($1, $2, $3) ON CONFLICT (id) DO NOTHING",
				d.id, v.id, d.title,
			)
			if err != nil {
				log.Fatalf("seed dataset %s: %v", d.title, err)
			}
			inserted += int(tag.RowsAffected())
		}
	}

	fmt.Printf("Seeded demo catalog: %d new rows.\n", inserted)
}
