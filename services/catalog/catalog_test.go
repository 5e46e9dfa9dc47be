package catalog

import (
	"errors"
	"testing"

	"carexyz/models"
	svcbooking "carexyz/services/booking"
)

type memServiceRepo struct {
	services map[string]*models.Service
}

func newMemServiceRepo() *memServiceRepo {
	return &memServiceRepo{services: make(map[string]*models.Service)}
}

func (m *memServiceRepo) GetByID(id string) (*models.Service, error) {
	return m.services[id], nil
}

func (m *memServiceRepo) GetAll() ([]models.Service, error) {
	out := make([]models.Service, 0, len(m.services))
	for _, s := range m.services {
		out = append(out, *s)
	}
	return out, nil
}

func (m *memServiceRepo) GetActive() ([]models.Service, error) {
	var out []models.Service
	for _, s := range m.services {
		if s.Active {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *memServiceRepo) Create(svc *models.Service) error {
	m.services[svc.ID] = svc
	return nil
}

func (m *memServiceRepo) Update(svc *models.Service) error {
	m.services[svc.ID] = svc
	return nil
}

func (m *memServiceRepo) Delete(id string) error {
	delete(m.services, id)
	return nil
}

func validSvc() *models.Service {
	return &models.Service{
		Title:        "Elderly Care Companion",
		Description:  "Trained companions for daily elderly support.",
		PricePerHour: 600,
		ImageURL:     "https://cdn.example.com/elderly.jpg",
		Features:     []string{"Trained caregivers"},
		Active:       true,
	}
}

func TestCreateAssignsIDAndPersists(t *testing.T) {
	repo := newMemServiceRepo()
	cs := &DefaultCatalogService{Repo: repo}

	svc := validSvc()
	if err := cs.Create(svc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.ID == "" {
		t.Fatal("expected a generated id")
	}
	if _, ok := repo.services[svc.ID]; !ok {
		t.Error("service was not persisted")
	}
}

func TestCreateValidation(t *testing.T) {
	cs := &DefaultCatalogService{Repo: newMemServiceRepo()}

	cases := []struct {
		name   string
		mutate func(*models.Service)
		field  string
	}{
		{"short title", func(s *models.Service) { s.Title = "ab" }, "title"},
		{"short description", func(s *models.Service) { s.Description = "too short" }, "description"},
		{"zero price", func(s *models.Service) { s.PricePerHour = 0 }, "pricePerHour"},
		{"bad image url", func(s *models.Service) { s.ImageURL = "ftp://cdn.example.com/x.jpg" }, "imageUrl"},
		{"no features", func(s *models.Service) { s.Features = nil }, "features"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			svc := validSvc()
			c.mutate(svc)
			err := cs.Create(svc)
			var verr *svcbooking.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if _, ok := verr.Fields[c.field]; !ok {
				t.Errorf("expected a %s field error, got %v", c.field, verr.Fields)
			}
		})
	}
}

func TestCreateAllowsEmptyImageURL(t *testing.T) {
	cs := &DefaultCatalogService{Repo: newMemServiceRepo()}
	svc := validSvc()
	svc.ImageURL = ""
	if err := cs.Create(svc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestListActiveFiltersInactive(t *testing.T) {
	repo := newMemServiceRepo()
	repo.services["a"] = &models.Service{ID: "a", Active: true}
	repo.services["b"] = &models.Service{ID: "b", Active: false}
	cs := &DefaultCatalogService{Repo: repo}

	out, err := cs.ListActive()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].ID != "a" {
		t.Errorf("expected only the active service, got %v", out)
	}
}
