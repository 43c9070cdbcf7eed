// Command seed fills the development database with demo users and posts.
package main

import (
	"flag"
	"log"

	"inkpost/internal/config"
	"inkpost/internal/database"
	"inkpost/internal/seed"
)

func main() {
	users := flag.Int("users", 3, "number of users to create")
	posts := flag.Int("posts", 4, "posts per user")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	opts := seed.DefaultOptions()
	opts.Users = *users
	opts.PostsPerUser = *posts

	if err := seed.Run(db, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("Seeded %d users with %d posts each", opts.Users, opts.PostsPerUser)
}
