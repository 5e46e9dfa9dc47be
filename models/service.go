package models

import "time"

// Service is a care-service offering shown in the public catalog.
type Service struct {
	ID           string    `bson:"id" json:"id"`
	Title        string    `bson:"title" json:"title"`
	Description  string    `bson:"description" json:"description"`
	PricePerHour float64   `bson:"pricePerHour" json:"pricePerHour"` // BDT per hour, > 0
	ImageURL     string    `bson:"imageUrl" json:"imageUrl"`
	Features     []string  `bson:"features" json:"features"` // ordered bullet points
	Active       bool      `bson:"active" json:"active"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
