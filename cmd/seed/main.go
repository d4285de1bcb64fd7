// Command main runs the database seeder for Crave.
package main

import (
	"context"
	"flag"
	"log"

	"crave/internal/config"
	"crave/internal/database"
	"crave/internal/seed"
)

func main() {
	numProfiles := flag.Int("profiles", 30, "Number of profiles to create")
	numRestaurants := flag.Int("restaurants", 12, "Number of restaurants to create")
	numPosts := flag.Int("posts", 150, "Number of posts to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	fast := flag.Bool("fast", false, "Skip bcrypt (profiles cannot sign in)")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if _, err := seed.Seed(context.Background(), db, seed.Options{
		Profiles:    *numProfiles,
		Restaurants: *numRestaurants,
		Posts:       *numPosts,
		ShouldClean: *shouldClean,
		SkipBcrypt:  *fast,
	}); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Println("✨ All done! Your database is now populated with demo data.")
	log.Printf("📧 All seeded profiles have the password: %s", seed.DefaultPassword)
}
