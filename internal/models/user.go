// Package models contains data structures for the application's domain models.
package models

import "time"

// DefaultStatus is the status assigned to freshly created users.
const DefaultStatus = "I am new!"

// User represents a registered account. Users own posts and are never
// hard-deleted.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Name      string    `gorm:"size:120;not null" json:"name"`
	Password  string    `gorm:"not null" json:"-"`
	Status    string    `gorm:"size:255;not null;default:'I am new!'" json:"status"`
	Posts     []Post    `gorm:"foreignKey:UserID" json:"posts,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Creator is the reduced owner view embedded in post responses.
type Creator struct {
	ID   uint   `json:"_id"`
	Name string `json:"name"`
}

// CreatorSummary returns the reduced owner view of this user.
func (u *User) CreatorSummary() Creator {
	return Creator{ID: u.ID, Name: u.Name}
}
