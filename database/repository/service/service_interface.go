package serviceRepo

import (
	"carexyz/models"
)

// ServiceRepository defines methods for catalog data access.
type ServiceRepository interface {
	// GetByID retrieves a service by its unique ID.
	GetByID(id string) (*models.Service, error)
	// GetAll retrieves all services, active or not.
	GetAll() ([]models.Service, error)
	// GetActive retrieves only services visible in the public catalog.
	GetActive() ([]models.Service, error)
	// Create inserts a new service record.
	Create(svc *models.Service) error
	// Update modifies an existing service record.
	Update(svc *models.Service) error
	// Delete removes a service record by its ID.
	Delete(id string) error
}
