package models

import "time"

// Apartment is a listing record. Listings are managed by the owner-facing CRUD
// surface; the booking engine only reads them.
type Apartment struct {
	ID                string    `bson:"id" json:"id"`
	Title             string    `bson:"title" json:"title"`
	Slug              string    `bson:"slug" json:"slug"`
	Capacity          int       `bson:"capacity" json:"capacity"` // maximum number of guests
	BasePricePerNight float64   `bson:"base_price_per_night" json:"base_price_per_night"`
	Currency          string    `bson:"currency" json:"currency"`
	IsActive          bool      `bson:"is_active" json:"is_active"`
	CreatedAt         time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time `bson:"updated_at" json:"updated_at"`
}
