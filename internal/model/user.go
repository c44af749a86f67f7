package model

import "time"

// User is an account row. All devotional records hang off the user ID.
type User struct {
	ID             int       `db:"id" json:"id"`
	Email          string    `db:"email" json:"email"`
	HashedPassword string    `db:"hashed_password" json:"-"`
	Name           *string   `db:"name" json:"name"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}
