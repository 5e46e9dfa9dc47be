// File: carexyz/handlers/bundle.go
package handlers

import (
	profileRepoPkg "carexyz/database/repository/profile"
	"carexyz/middleware"
)

// HandlerBundle groups all endpoint handlers into one struct so route
// registration stays in one place.
type HandlerBundle struct {
	ProfileRepo   profileRepoPkg.ProfileRepository
	TokenVerifier middleware.TokenVerifier

	// Public marketing surface.
	CatalogHandler *CatalogHandler

	// Customer booking + payment endpoints.
	BookingHandler *BookingHandler

	// Profile mirror endpoints.
	ProfileHandler *ProfileHandler

	// Admin endpoints.
	AdminHandler *AdminHandler

	// Image upload endpoints.
	StorageHandler *StorageHandler

	// Demo data loader.
	SeedHandler *SeedHandler
}
