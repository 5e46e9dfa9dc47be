package catalog

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"time"

	serviceRepo "carexyz/database/repository/service"
	"carexyz/models"
	svcbooking "carexyz/services/booking"
	"carexyz/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CatalogService serves the public service listing and the admin service CRUD.
type CatalogService interface {
	// ListActive returns active services, served from cache when possible.
	ListActive() ([]models.Service, error)
	// Get returns a single service by id.
	Get(id string) (*models.Service, error)
	// ListAll returns all services for the admin table.
	ListAll() ([]models.Service, error)
	Create(svc *models.Service) error
	Update(svc *models.Service) error
	Delete(id string) error
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Repo  serviceRepo.ServiceRepository
	Cache *redis.Client
}

// ListActive returns the active catalog, cache-first.
func (s *DefaultCatalogService) ListActive() ([]models.Service, error) {
	logger := utils.GetLogger()
	ctx := context.Background()

	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx, utils.CatalogCacheKey).Result()
		if err == nil {
			var services []models.Service
			if jsonErr := json.Unmarshal([]byte(cached), &services); jsonErr == nil {
				return services, nil
			}
		} else if err != redis.Nil {
			logger.Warn("catalog cache read failed", zap.Error(err))
		}
	}

	services, err := s.Repo.GetActive()
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if data, err := json.Marshal(services); err == nil {
			if err := s.Cache.Set(ctx, utils.CatalogCacheKey, data, utils.CatalogCacheTTL).Err(); err != nil {
				logger.Warn("catalog cache write failed", zap.Error(err))
			}
		}
	}
	return services, nil
}

// Get returns a single service by id.
func (s *DefaultCatalogService) Get(id string) (*models.Service, error) {
	return s.Repo.GetByID(id)
}

// ListAll returns all services for the admin table.
func (s *DefaultCatalogService) ListAll() ([]models.Service, error) {
	return s.Repo.GetAll()
}

// Create validates and persists a new service, then busts the catalog cache.
func (s *DefaultCatalogService) Create(svc *models.Service) error {
	if fields := validateService(svc); fields != nil {
		return &svcbooking.ValidationError{Fields: fields}
	}
	if svc.ID == "" {
		svc.ID = uuid.New().String()
	}
	if err := s.Repo.Create(svc); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// Update validates and persists service changes, then busts the catalog cache.
func (s *DefaultCatalogService) Update(svc *models.Service) error {
	if fields := validateService(svc); fields != nil {
		return &svcbooking.ValidationError{Fields: fields}
	}
	if err := s.Repo.Update(svc); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// Delete removes a service unconditionally. Existing bookings keep their
// denormalized snapshot, so no cascading cleanup happens here.
func (s *DefaultCatalogService) Delete(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *DefaultCatalogService) invalidate() {
	if s.Cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.Cache.Del(ctx, utils.CatalogCacheKey).Err(); err != nil {
		utils.GetLogger().Warn("catalog cache invalidation failed", zap.Error(err))
	}
}

func validateService(svc *models.Service) map[string]string {
	fields := make(map[string]string)

	title := strings.TrimSpace(svc.Title)
	if len(title) < 3 || len(title) > 120 {
		fields["title"] = "title must be between 3 and 120 characters"
	}
	if len(strings.TrimSpace(svc.Description)) < 10 {
		fields["description"] = "description must be at least 10 characters"
	}
	if svc.PricePerHour <= 0 {
		fields["pricePerHour"] = "pricePerHour must be positive"
	}
	if svc.ImageURL != "" {
		if u, err := url.Parse(svc.ImageURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			fields["imageUrl"] = "imageUrl must be a valid http(s) URL"
		}
	}
	if len(svc.Features) == 0 {
		fields["features"] = "at least one feature is required"
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}
