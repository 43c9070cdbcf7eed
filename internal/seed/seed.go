// Package seed creates demo data for the application database. It is
// intended for development only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"inkpost/internal/auth"
	"inkpost/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Options controls how much demo data gets created.
type Options struct {
	Users        int
	PostsPerUser int
	Password     string
	BcryptCost   int
}

// DefaultOptions returns a small demo data set.
func DefaultOptions() Options {
	return Options{
		Users:        3,
		PostsPerUser: 4,
		Password:     "password",
		BcryptCost:   4, // cheap hashing for throwaway demo accounts
	}
}

// Run populates the database with fake users and posts. All users share
// the same password so demo logins are easy.
func Run(db *gorm.DB, opts Options) error {
	gofakeit.Seed(time.Now().UnixNano())
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	hashed, err := auth.HashPassword(opts.Password, opts.BcryptCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	for i := 0; i < opts.Users; i++ {
		user := &models.User{
			Email:    gofakeit.Email(),
			Name:     gofakeit.Name(),
			Password: hashed,
			Status:   gofakeit.Phrase(),
		}
		if err := db.Create(user).Error; err != nil {
			return fmt.Errorf("seed user: %w", err)
		}

		for j := 0; j < opts.PostsPerUser; j++ {
			post := &models.Post{
				Title:    gofakeit.Sentence(4),
				Content:  gofakeit.Paragraph(1, 3, 6, "\n"),
				ImageURL: fmt.Sprintf("images/%s", gofakeit.UUID()),
				UserID:   user.ID,
				// spread creation times so the feed pages look real
				CreatedAt: time.Now().Add(-time.Duration(r.Intn(72)) * time.Hour),
			}
			if err := db.Create(post).Error; err != nil {
				return fmt.Errorf("seed post: %w", err)
			}
		}
	}

	return nil
}
