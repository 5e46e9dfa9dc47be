package contentRepo

import (
	"carexyz/models"
)

// ContentRepository defines data access for marketing content: testimonials,
// hero slides and the singleton about/footer documents.
type ContentRepository interface {
	// Testimonials.
	GetTestimonials(activeOnly bool) ([]models.Testimonial, error)
	GetTestimonialByID(id string) (*models.Testimonial, error)
	CreateTestimonial(t *models.Testimonial) error
	UpdateTestimonial(t *models.Testimonial) error
	DeleteTestimonial(id string) error

	// Hero slides.
	GetSlides(activeOnly bool) ([]models.SliderContent, error)
	GetSlideByID(id string) (*models.SliderContent, error)
	CreateSlide(s *models.SliderContent) error
	UpdateSlide(s *models.SliderContent) error
	DeleteSlide(id string) error

	// Singleton documents.
	GetAbout() (*models.AboutContent, error)
	PutAbout(a *models.AboutContent) error
	GetFooter() (*models.FooterContent, error)
	PutFooter(f *models.FooterContent) error
}
