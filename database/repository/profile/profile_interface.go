package profileRepo

import (
	"carexyz/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ProfileRepository defines methods for mirrored-profile data access.
type ProfileRepository interface {
	// GetByUID retrieves a profile by identity-provider uid.
	GetByUID(uid string) (*models.Profile, error)
	// GetAll retrieves all mirrored profiles.
	GetAll() ([]models.Profile, error)
	// Upsert inserts or refreshes a profile document by uid. Role and status
	// are preserved on existing documents.
	Upsert(p *models.Profile) error
	// UpdateFields applies a partial update to a profile by uid.
	UpdateFields(uid string, fields bson.M) error
	// Delete removes a profile document by uid.
	Delete(uid string) error
}
