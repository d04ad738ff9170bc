// Command seed loads starter content into the portfolio database, with an
// optional randomized demo mode for development.
package main

import (
	"context"
	"flag"
	"log"

	"folio/internal/config"
	"folio/internal/database"
	"folio/internal/seed"
)

func main() {
	demo := flag.Bool("demo", false, "Also create randomized demo content")
	numProjects := flag.Int("projects", 10, "Number of demo projects to create")
	numPosts := flag.Int("posts", 15, "Number of demo blog posts to create")
	numMessages := flag.Int("messages", 25, "Number of demo contact messages to create")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	opts := seed.Options{
		Demo:        *demo,
		NumProjects: *numProjects,
		NumPosts:    *numPosts,
		NumMessages: *numMessages,
	}
	if err := seed.Run(context.Background(), db, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding complete")
}
