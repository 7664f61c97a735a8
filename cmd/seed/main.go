// Command main runs the database seeder for BrewVibe.
package main

import (
	"flag"
	"log"
	"os"

	"brewvibe/internal/config"
	"brewvibe/internal/database"
	"brewvibe/internal/seed"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	// Parse command line flags
	numFake := flag.Int("fake", 0, "Number of additional fake recipes to generate")
	shouldClean := flag.Bool("clean", false, "Clear recipes, comments and wishlists before seeding")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(db)

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("❌ Cleanup failed: %v", err)
		}
	}

	admin, created, err := s.Admin(seed.AdminCredentials{
		Username: envOr("ADMIN_USERNAME", "admin"),
		Email:    envOr("ADMIN_EMAIL", "admin@brewvibe.dev"),
		Password: envOr("ADMIN_PASSWORD", "ChangeMe-Admin123"),
	})
	if err != nil {
		log.Fatalf("❌ Admin seeding failed: %v", err)
	}
	if created {
		log.Printf("✓ Admin user %q created. Change the password in production!", admin.Username)
	} else {
		log.Printf("⚠️  Admin user already exists: %s <%s>", admin.Username, admin.Email)
	}

	count, err := s.Recipes()
	if err != nil {
		log.Fatalf("❌ Recipe seeding failed: %v", err)
	}
	log.Printf("✓ %d curated recipes seeded", count)

	if *numFake > 0 {
		if err := s.Fake(*numFake); err != nil {
			log.Fatalf("❌ Fake data seeding failed: %v", err)
		}
		log.Printf("✓ %d fake recipes created", *numFake)
		log.Println("📧 All fake users have the password: password123")
	}

	log.Println("✨ All done! Your database is now populated.")
}
