package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hupe1980/vectordb"
)

func main() {
	ctx := context.Background()

	db := vectordb.New(
		vectordb.WithLogger(vectordb.NewTextLogger(slog.LevelDebug)),
	)

	papers := db.Add("papers")
	papers.Upsert(uuid.New(), []float32{12, 72, 63})
	papers.Upsert(uuid.New(), []float32{24, 45, 36})

	notes := db.Add("notes")
	notes.Upsert(uuid.New(), []float32{14, 30, 60})
	notes.Upsert(uuid.New(), []float32{10, 12, 100})

	query := []float32{41, 51, 31}

	for _, name := range db.Names() {
		results, err := db.Search(ctx, name, query, 3)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("--- %s ---\n", name)
		for _, r := range results {
			fmt.Printf("%s  score=%.4f\n", r.ID, r.Score)
		}
	}
}
