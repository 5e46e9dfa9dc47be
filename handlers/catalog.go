package handlers

import (
	"net/http"

	"carexyz/services/catalog"
	"carexyz/services/content"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves the public marketing surface: services, testimonials,
// hero slides and the about/footer documents. No credential required.
type CatalogHandler struct {
	Catalog catalog.CatalogService
	Content content.ContentService
	Logger  *zap.Logger
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(cs catalog.CatalogService, cc content.ContentService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{Catalog: cs, Content: cc, Logger: logger}
}

// ListServices handles GET /api/services (active only).
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.Catalog.ListActive()
	if err != nil {
		h.Logger.Error("failed to fetch services", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch services"})
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetService handles GET /api/services/:id.
func (h *CatalogHandler) GetService(c *gin.Context) {
	id := c.Param("id")
	svc, err := h.Catalog.Get(id)
	if err != nil {
		h.Logger.Error("failed to fetch service", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch service"})
		return
	}
	if svc == nil || !svc.Active {
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		return
	}
	c.JSON(http.StatusOK, svc)
}

// ListTestimonials handles GET /api/testimonials (active only).
func (h *CatalogHandler) ListTestimonials(c *gin.Context) {
	testimonials, err := h.Content.ListTestimonials(true)
	if err != nil {
		h.Logger.Error("failed to fetch testimonials", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch testimonials"})
		return
	}
	c.JSON(http.StatusOK, testimonials)
}

// ListSlides handles GET /api/slides (active only, ordered).
func (h *CatalogHandler) ListSlides(c *gin.Context) {
	slides, err := h.Content.ListSlides(true)
	if err != nil {
		h.Logger.Error("failed to fetch slides", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch slides"})
		return
	}
	c.JSON(http.StatusOK, slides)
}

// GetAbout handles GET /api/content/about.
func (h *CatalogHandler) GetAbout(c *gin.Context) {
	about, err := h.Content.GetAbout()
	if err != nil {
		h.Logger.Error("failed to fetch about content", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch about content"})
		return
	}
	if about == nil || !about.Visible {
		c.JSON(http.StatusNotFound, gin.H{"error": "about content not found"})
		return
	}
	c.JSON(http.StatusOK, about)
}

// GetFooter handles GET /api/content/footer.
func (h *CatalogHandler) GetFooter(c *gin.Context) {
	footer, err := h.Content.GetFooter()
	if err != nil {
		h.Logger.Error("failed to fetch footer content", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch footer content"})
		return
	}
	if footer == nil || !footer.Visible {
		c.JSON(http.StatusNotFound, gin.H{"error": "footer content not found"})
		return
	}
	c.JSON(http.StatusOK, footer)
}
