package main

import (
	"log"

	"github.com/mdaffarh/eco-scan/internal/config"
	"github.com/mdaffarh/eco-scan/internal/database"
	"github.com/mdaffarh/eco-scan/internal/migrations"
	"github.com/mdaffarh/eco-scan/internal/seeds"
)

func main() {
	config.LoadConfig()
	database.Connect()

	if err := migrations.Run(database.DB); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	seeds.SeedAdmin()
	seeds.SeedBins()

	log.Println("Seeding complete")
}
