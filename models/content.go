package models

import "time"

// Testimonial is a customer quote shown on the marketing site.
type Testimonial struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Quote     string    `bson:"quote" json:"quote"`
	Rating    int       `bson:"rating" json:"rating"` // 1..5
	PhotoURL  string    `bson:"photoUrl,omitempty" json:"photoUrl,omitempty"`
	Active    bool      `bson:"active" json:"active"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// SliderContent is one hero slide on the landing page.
type SliderContent struct {
	ID        string    `bson:"id" json:"id"`
	Title     string    `bson:"title" json:"title"`
	Subtitle  string    `bson:"subtitle" json:"subtitle"`
	ImageURL  string    `bson:"imageUrl" json:"imageUrl"`
	Order     int       `bson:"order" json:"order"`
	Active    bool      `bson:"active" json:"active"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// AboutContent is the singleton about-section document.
type AboutContent struct {
	ID         string    `bson:"id" json:"id"`
	Heading    string    `bson:"heading" json:"heading"`
	Body       string    `bson:"body" json:"body"`
	ImageURL   string    `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Highlights []string  `bson:"highlights,omitempty" json:"highlights,omitempty"`
	Visible    bool      `bson:"visible" json:"visible"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

// FooterLink is a single navigation link in a footer column.
type FooterLink struct {
	Label string `bson:"label" json:"label"`
	URL   string `bson:"url" json:"url"`
}

// FooterContent is the singleton footer document.
type FooterContent struct {
	ID        string       `bson:"id" json:"id"`
	Tagline   string       `bson:"tagline" json:"tagline"`
	Links     []FooterLink `bson:"links" json:"links"`
	Copyright string       `bson:"copyright" json:"copyright"`
	Visible   bool         `bson:"visible" json:"visible"`
	UpdatedAt time.Time    `bson:"updatedAt" json:"updatedAt"`
}

// Well-known ids for the singleton content documents.
const (
	AboutContentID  = "about"
	FooterContentID = "footer"
)
