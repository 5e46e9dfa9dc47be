package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"carexyz/middleware"
	"carexyz/models"
	"carexyz/services/account"
	svcbooking "carexyz/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type stubCatalogService struct {
	services []models.Service
}

func (s *stubCatalogService) ListActive() ([]models.Service, error) { return s.services, nil }
func (s *stubCatalogService) Get(id string) (*models.Service, error) {
	for i := range s.services {
		if s.services[i].ID == id {
			return &s.services[i], nil
		}
	}
	return nil, nil
}
func (s *stubCatalogService) ListAll() ([]models.Service, error) { return s.services, nil }
func (s *stubCatalogService) Create(svc *models.Service) error {
	s.services = append(s.services, *svc)
	return nil
}
func (s *stubCatalogService) Update(svc *models.Service) error { return nil }
func (s *stubCatalogService) Delete(id string) error           { return nil }

type stubContentService struct{}

func (stubContentService) ListTestimonials(bool) ([]models.Testimonial, error) { return nil, nil }
func (stubContentService) CreateTestimonial(*models.Testimonial) error         { return nil }
func (stubContentService) UpdateTestimonial(*models.Testimonial) error         { return nil }
func (stubContentService) DeleteTestimonial(string) error                      { return nil }
func (stubContentService) ListSlides(bool) ([]models.SliderContent, error)     { return nil, nil }
func (stubContentService) CreateSlide(*models.SliderContent) error             { return nil }
func (stubContentService) UpdateSlide(*models.SliderContent) error             { return nil }
func (stubContentService) DeleteSlide(string) error                            { return nil }
func (stubContentService) GetAbout() (*models.AboutContent, error)             { return nil, nil }
func (stubContentService) PutAbout(*models.AboutContent) error                 { return nil }
func (stubContentService) GetFooter() (*models.FooterContent, error)           { return nil, nil }
func (stubContentService) PutFooter(*models.FooterContent) error               { return nil }

type stubAccountService struct {
	deleted []string
}

func (s *stubAccountService) SyncProfile(uid, email, fullName, photoURL string) (*models.Profile, error) {
	return &models.Profile{UID: uid, Email: email, Role: models.RoleUser, Status: "active"}, nil
}
func (s *stubAccountService) GetProfile(uid string) (*models.Profile, error) { return nil, nil }
func (s *stubAccountService) ListProfiles() ([]models.Profile, error)        { return nil, nil }
func (s *stubAccountService) UpdateUser(actor, uid string, in account.UpdateUserInput) (*models.Profile, error) {
	return &models.Profile{UID: uid, Role: models.Role(in.Role)}, nil
}
func (s *stubAccountService) DeleteUser(actor, uid string) error {
	s.deleted = append(s.deleted, uid)
	return nil
}

type stubActivityRepo struct {
	entries []models.ActivityLog
}

func (s *stubActivityRepo) Append(e *models.ActivityLog) error {
	s.entries = append(s.entries, *e)
	return nil
}
func (s *stubActivityRepo) GetRecent(eventType string, limit int64) ([]models.ActivityLog, error) {
	var out []models.ActivityLog
	for _, e := range s.entries {
		if eventType == "" || e.Type == eventType {
			out = append(out, e)
		}
	}
	return out, nil
}
func (s *stubActivityRepo) GetByRef(refID string) ([]models.ActivityLog, error) { return nil, nil }

func adminTestRouter(t *testing.T, bs svcbooking.BookingService, as account.AccountService, ar *stubActivityRepo) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()

	profiles := &stubProfileRepo{profiles: map[string]*models.Profile{
		"admin1": {UID: "admin1", Role: models.RoleAdmin, Status: "active"},
		"u1":     {UID: "u1", Role: models.RoleUser, Status: "active"},
	}}

	ah := NewAdminHandler(&stubCatalogService{}, stubContentService{}, as, bs, ar, zap.NewNop())
	grp := r.Group("/api/admin")
	grp.Use(middleware.AuthMiddleware(stubVerifier{}, profiles))
	grp.Use(middleware.RequireAdmin())
	grp.GET("/orders", ah.ListOrders)
	grp.PUT("/orders/:id/status", ah.UpdateOrderStatus)
	grp.DELETE("/users/:uid", ah.DeleteUser)
	grp.GET("/activity", ah.ListActivity)
	return r
}

func TestAdminRoutesRejectNonAdmins(t *testing.T) {
	r := adminTestRouter(t, &stubBookingService{}, &stubAccountService{}, &stubActivityRepo{})

	w := doJSON(r, http.MethodGet, "/api/admin/orders", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", w.Code)
	}

	w = doJSON(r, http.MethodGet, "/api/admin/orders", "token-u1", nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403 for a plain user, got %d", w.Code)
	}

	w = doJSON(r, http.MethodGet, "/api/admin/orders", "token-admin1", nil)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 for an admin, got %d: %s", w.Code, w.Body.String())
	}
}

func TestListOrdersRejectsUnknownStatusFilter(t *testing.T) {
	r := adminTestRouter(t, &stubBookingService{}, &stubAccountService{}, &stubActivityRepo{})

	w := doJSON(r, http.MethodGet, "/api/admin/orders?status=shipped", "token-admin1", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown status, got %d", w.Code)
	}
}

func TestUpdateOrderStatus(t *testing.T) {
	r := adminTestRouter(t, &stubBookingService{}, &stubAccountService{}, &stubActivityRepo{})

	w := doJSON(r, http.MethodPut, "/api/admin/orders/b-1/status", "token-admin1",
		map[string]string{"status": "confirmed"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var b models.Booking
	if err := json.Unmarshal(w.Body.Bytes(), &b); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if b.Status != models.StatusConfirmed {
		t.Errorf("expected confirmed, got %s", b.Status)
	}

	w = doJSON(r, http.MethodPut, "/api/admin/orders/b-1/status", "token-admin1",
		map[string]string{"status": "shipped"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown status, got %d", w.Code)
	}
}

func TestDeleteUserRoute(t *testing.T) {
	as := &stubAccountService{}
	r := adminTestRouter(t, &stubBookingService{}, as, &stubActivityRepo{})

	w := doJSON(r, http.MethodDelete, "/api/admin/users/u1", "token-admin1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(as.deleted) != 1 || as.deleted[0] != "u1" {
		t.Errorf("expected u1 to be deleted, got %v", as.deleted)
	}
}

func TestListActivityFiltersByType(t *testing.T) {
	ar := &stubActivityRepo{entries: []models.ActivityLog{
		{ID: "a", Type: models.ActivityOrderPlaced},
		{ID: "b", Type: models.ActivityUserDeleted},
	}}
	r := adminTestRouter(t, &stubBookingService{}, &stubAccountService{}, ar)

	w := doJSON(r, http.MethodGet, "/api/admin/activity?type=order_placed", "token-admin1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var entries []models.ActivityLog
	if err := json.Unmarshal(w.Body.Bytes(), &entries); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != "a" {
		t.Errorf("expected the order_placed entry only, got %v", entries)
	}
}
