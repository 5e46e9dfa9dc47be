// File: carexyz/handlers/admin.go
package handlers

import (
	"net/http"

	activityRepo "carexyz/database/repository/activity"
	"carexyz/middleware"
	"carexyz/models"
	"carexyz/services/account"
	svcbooking "carexyz/services/booking"
	"carexyz/services/catalog"
	"carexyz/services/content"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler encapsulates elevated admin-level operations.
type AdminHandler struct {
	Catalog    catalog.CatalogService
	Content    content.ContentService
	Accounts   account.AccountService
	BookingSvc svcbooking.BookingService
	Activity   activityRepo.ActivityRepository
	Logger     *zap.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(cs catalog.CatalogService, cc content.ContentService, as account.AccountService, bs svcbooking.BookingService, ar activityRepo.ActivityRepository, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		Catalog:    cs,
		Content:    cc,
		Accounts:   as,
		BookingSvc: bs,
		Activity:   ar,
		Logger:     logger,
	}
}

// --- Orders ---

// ListOrders handles GET /api/admin/orders with an optional ?status= filter.
func (ah *AdminHandler) ListOrders(c *gin.Context) {
	var status models.BookingStatus
	if raw := c.Query("status"); raw != "" {
		parsed, err := models.ParseBookingStatus(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		status = parsed
	}

	orders, err := ah.BookingSvc.GetAllBookings(status)
	if err != nil {
		ah.Logger.Error("failed to fetch orders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch orders"})
		return
	}
	if orders == nil {
		orders = []models.Booking{}
	}
	c.JSON(http.StatusOK, orders)
}

// UpdateOrderStatus handles PUT /api/admin/orders/:id/status.
func (ah *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	id := c.Param("id")
	actor, _ := middleware.CurrentUserID(c)

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	status, err := models.ParseBookingStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b, err := ah.BookingSvc.Transition(actor, id, status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// --- Services ---

// ListAllServices handles GET /api/admin/services (active and inactive).
func (ah *AdminHandler) ListAllServices(c *gin.Context) {
	services, err := ah.Catalog.ListAll()
	if err != nil {
		ah.Logger.Error("failed to fetch services", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch services"})
		return
	}
	if services == nil {
		services = []models.Service{}
	}
	c.JSON(http.StatusOK, services)
}

// CreateService handles POST /api/admin/services.
func (ah *AdminHandler) CreateService(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := ah.Catalog.Create(&svc); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// UpdateService handles PUT /api/admin/services/:id.
func (ah *AdminHandler) UpdateService(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	svc.ID = c.Param("id")
	if err := ah.Catalog.Update(&svc); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// DeleteService handles DELETE /api/admin/services/:id.
func (ah *AdminHandler) DeleteService(c *gin.Context) {
	if err := ah.Catalog.Delete(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}

// --- Users ---

// ListUsers handles GET /api/admin/users.
func (ah *AdminHandler) ListUsers(c *gin.Context) {
	users, err := ah.Accounts.ListProfiles()
	if err != nil {
		ah.Logger.Error("failed to fetch users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch users"})
		return
	}
	if users == nil {
		users = []models.Profile{}
	}
	c.JSON(http.StatusOK, users)
}

// UpdateUser handles PUT /api/admin/users/:uid (role and/or status).
func (ah *AdminHandler) UpdateUser(c *gin.Context) {
	actor, _ := middleware.CurrentUserID(c)
	uid := c.Param("uid")

	var in account.UpdateUserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	p, err := ah.Accounts.UpdateUser(actor, uid, in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// DeleteUser handles DELETE /api/admin/users/:uid.
func (ah *AdminHandler) DeleteUser(c *gin.Context) {
	actor, _ := middleware.CurrentUserID(c)
	uid := c.Param("uid")

	if err := ah.Accounts.DeleteUser(actor, uid); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

// --- Testimonials ---

// ListTestimonials handles GET /api/admin/testimonials (all, not just active).
func (ah *AdminHandler) ListTestimonials(c *gin.Context) {
	testimonials, err := ah.Content.ListTestimonials(false)
	if err != nil {
		ah.Logger.Error("failed to fetch testimonials", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch testimonials"})
		return
	}
	if testimonials == nil {
		testimonials = []models.Testimonial{}
	}
	c.JSON(http.StatusOK, testimonials)
}

// CreateTestimonial handles POST /api/admin/testimonials.
func (ah *AdminHandler) CreateTestimonial(c *gin.Context) {
	var t models.Testimonial
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := ah.Content.CreateTestimonial(&t); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// UpdateTestimonial handles PUT /api/admin/testimonials/:id.
func (ah *AdminHandler) UpdateTestimonial(c *gin.Context) {
	var t models.Testimonial
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	t.ID = c.Param("id")
	if err := ah.Content.UpdateTestimonial(&t); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// DeleteTestimonial handles DELETE /api/admin/testimonials/:id.
func (ah *AdminHandler) DeleteTestimonial(c *gin.Context) {
	if err := ah.Content.DeleteTestimonial(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Testimonial deleted"})
}

// --- Hero slides ---

// ListSlides handles GET /api/admin/slides (all, not just active).
func (ah *AdminHandler) ListSlides(c *gin.Context) {
	slides, err := ah.Content.ListSlides(false)
	if err != nil {
		ah.Logger.Error("failed to fetch slides", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch slides"})
		return
	}
	if slides == nil {
		slides = []models.SliderContent{}
	}
	c.JSON(http.StatusOK, slides)
}

// CreateSlide handles POST /api/admin/slides.
func (ah *AdminHandler) CreateSlide(c *gin.Context) {
	var s models.SliderContent
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := ah.Content.CreateSlide(&s); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, s)
}

// UpdateSlide handles PUT /api/admin/slides/:id.
func (ah *AdminHandler) UpdateSlide(c *gin.Context) {
	var s models.SliderContent
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	s.ID = c.Param("id")
	if err := ah.Content.UpdateSlide(&s); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// DeleteSlide handles DELETE /api/admin/slides/:id.
func (ah *AdminHandler) DeleteSlide(c *gin.Context) {
	if err := ah.Content.DeleteSlide(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Slide deleted"})
}

// --- About / footer singletons ---

// GetAbout handles GET /api/admin/content/about.
func (ah *AdminHandler) GetAbout(c *gin.Context) {
	about, err := ah.Content.GetAbout()
	if err != nil {
		ah.Logger.Error("failed to fetch about content", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch about content"})
		return
	}
	if about == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "about content not found"})
		return
	}
	c.JSON(http.StatusOK, about)
}

// PutAbout handles PUT /api/admin/content/about.
func (ah *AdminHandler) PutAbout(c *gin.Context) {
	var a models.AboutContent
	if err := c.ShouldBindJSON(&a); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := ah.Content.PutAbout(&a); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// GetFooter handles GET /api/admin/content/footer.
func (ah *AdminHandler) GetFooter(c *gin.Context) {
	footer, err := ah.Content.GetFooter()
	if err != nil {
		ah.Logger.Error("failed to fetch footer content", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch footer content"})
		return
	}
	if footer == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "footer content not found"})
		return
	}
	c.JSON(http.StatusOK, footer)
}

// PutFooter handles PUT /api/admin/content/footer.
func (ah *AdminHandler) PutFooter(c *gin.Context) {
	var f models.FooterContent
	if err := c.ShouldBindJSON(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := ah.Content.PutFooter(&f); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

// --- Activity log ---

// ListActivity handles GET /api/admin/activity with optional ?type= filter.
func (ah *AdminHandler) ListActivity(c *gin.Context) {
	entries, err := ah.Activity.GetRecent(c.Query("type"), 100)
	if err != nil {
		ah.Logger.Error("failed to fetch activity log", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch activity log"})
		return
	}
	if entries == nil {
		entries = []models.ActivityLog{}
	}
	c.JSON(http.StatusOK, entries)
}
