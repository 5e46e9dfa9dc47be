package routes

import (
	"net/http"
	"time"

	"carexyz/handlers"
	"carexyz/middleware"
	"carexyz/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPublicRoutes registers the unauthenticated marketing surface.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/services", hb.CatalogHandler.ListServices)
		api.GET("/services/:id", hb.CatalogHandler.GetService)
		api.GET("/testimonials", hb.CatalogHandler.ListTestimonials)
		api.GET("/slides", hb.CatalogHandler.ListSlides)
		api.GET("/content/about", hb.CatalogHandler.GetAbout)
		api.GET("/content/footer", hb.CatalogHandler.GetFooter)
	}
}

// RegisterBookingRoutes sets up the customer booking and payment endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(hb.TokenVerifier, hb.ProfileRepo))
	{
		api.POST("/create-payment-intent", hb.BookingHandler.CreatePaymentIntent)
		api.POST("/bookings", hb.BookingHandler.CreateBooking)
		api.GET("/bookings", hb.BookingHandler.ListMyBookings)
		api.PUT("/bookings", hb.BookingHandler.UpdateBooking)

		api.POST("/profile", hb.ProfileHandler.SyncProfile)
		api.GET("/profile", hb.ProfileHandler.GetMyProfile)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations. Every route is
// gated on a verified credential plus the server-trusted role.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	adminGroup.Use(middleware.AuthMiddleware(hb.TokenVerifier, hb.ProfileRepo))
	adminGroup.Use(middleware.RequireAdmin())
	{
		// Orders.
		adminGroup.GET("/orders", hb.AdminHandler.ListOrders)
		adminGroup.PUT("/orders/:id/status", hb.AdminHandler.UpdateOrderStatus)

		// Services.
		adminGroup.GET("/services", hb.AdminHandler.ListAllServices)
		adminGroup.POST("/services", hb.AdminHandler.CreateService)
		adminGroup.PUT("/services/:id", hb.AdminHandler.UpdateService)
		adminGroup.DELETE("/services/:id", hb.AdminHandler.DeleteService)

		// Users.
		adminGroup.GET("/users", hb.AdminHandler.ListUsers)
		adminGroup.PUT("/users/:uid", hb.AdminHandler.UpdateUser)
		adminGroup.DELETE("/users/:uid", hb.AdminHandler.DeleteUser)

		// Testimonials.
		adminGroup.GET("/testimonials", hb.AdminHandler.ListTestimonials)
		adminGroup.POST("/testimonials", hb.AdminHandler.CreateTestimonial)
		adminGroup.PUT("/testimonials/:id", hb.AdminHandler.UpdateTestimonial)
		adminGroup.DELETE("/testimonials/:id", hb.AdminHandler.DeleteTestimonial)

		// Hero slides.
		adminGroup.GET("/slides", hb.AdminHandler.ListSlides)
		adminGroup.POST("/slides", hb.AdminHandler.CreateSlide)
		adminGroup.PUT("/slides/:id", hb.AdminHandler.UpdateSlide)
		adminGroup.DELETE("/slides/:id", hb.AdminHandler.DeleteSlide)

		// About / footer singletons.
		adminGroup.GET("/content/about", hb.AdminHandler.GetAbout)
		adminGroup.PUT("/content/about", hb.AdminHandler.PutAbout)
		adminGroup.GET("/content/footer", hb.AdminHandler.GetFooter)
		adminGroup.PUT("/content/footer", hb.AdminHandler.PutFooter)

		// Activity log.
		adminGroup.GET("/activity", hb.AdminHandler.ListActivity)

		// Image uploads.
		adminGroup.POST("/uploads", hb.StorageHandler.UploadImage)
	}
}

// RegisterSeedRoute registers the one-shot demo data loader.
func RegisterSeedRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/seed", hb.SeedHandler.Seed)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterPublicRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterSeedRoute(r, hb)
	RegisterHealthRoute(r)
}
