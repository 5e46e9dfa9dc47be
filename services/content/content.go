package content

import (
	"net/url"
	"strings"

	contentRepo "carexyz/database/repository/content"
	"carexyz/models"
	svcbooking "carexyz/services/booking"

	"github.com/google/uuid"
)

// ContentService owns marketing-content CRUD for the admin panel and the
// public read paths.
type ContentService interface {
	ListTestimonials(activeOnly bool) ([]models.Testimonial, error)
	CreateTestimonial(t *models.Testimonial) error
	UpdateTestimonial(t *models.Testimonial) error
	DeleteTestimonial(id string) error

	ListSlides(activeOnly bool) ([]models.SliderContent, error)
	CreateSlide(s *models.SliderContent) error
	UpdateSlide(s *models.SliderContent) error
	DeleteSlide(id string) error

	GetAbout() (*models.AboutContent, error)
	PutAbout(a *models.AboutContent) error
	GetFooter() (*models.FooterContent, error)
	PutFooter(f *models.FooterContent) error
}

// DefaultContentService is the production implementation.
type DefaultContentService struct {
	Repo contentRepo.ContentRepository
}

func (s *DefaultContentService) ListTestimonials(activeOnly bool) ([]models.Testimonial, error) {
	return s.Repo.GetTestimonials(activeOnly)
}

func (s *DefaultContentService) CreateTestimonial(t *models.Testimonial) error {
	if fields := validateTestimonial(t); fields != nil {
		return &svcbooking.ValidationError{Fields: fields}
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return s.Repo.CreateTestimonial(t)
}

func (s *DefaultContentService) UpdateTestimonial(t *models.Testimonial) error {
	if fields := validateTestimonial(t); fields != nil {
		return &svcbooking.ValidationError{Fields: fields}
	}
	return s.Repo.UpdateTestimonial(t)
}

func (s *DefaultContentService) DeleteTestimonial(id string) error {
	return s.Repo.DeleteTestimonial(id)
}

func (s *DefaultContentService) ListSlides(activeOnly bool) ([]models.SliderContent, error) {
	return s.Repo.GetSlides(activeOnly)
}

func (s *DefaultContentService) CreateSlide(slide *models.SliderContent) error {
	if fields := validateSlide(slide); fields != nil {
		return &svcbooking.ValidationError{Fields: fields}
	}
	if slide.ID == "" {
		slide.ID = uuid.New().String()
	}
	return s.Repo.CreateSlide(slide)
}

func (s *DefaultContentService) UpdateSlide(slide *models.SliderContent) error {
	if fields := validateSlide(slide); fields != nil {
		return &svcbooking.ValidationError{Fields: fields}
	}
	return s.Repo.UpdateSlide(slide)
}

func (s *DefaultContentService) DeleteSlide(id string) error {
	return s.Repo.DeleteSlide(id)
}

func (s *DefaultContentService) GetAbout() (*models.AboutContent, error) {
	return s.Repo.GetAbout()
}

func (s *DefaultContentService) PutAbout(a *models.AboutContent) error {
	fields := make(map[string]string)
	if len(strings.TrimSpace(a.Heading)) < 3 {
		fields["heading"] = "heading must be at least 3 characters"
	}
	if len(strings.TrimSpace(a.Body)) < 10 {
		fields["body"] = "body must be at least 10 characters"
	}
	if len(fields) > 0 {
		return &svcbooking.ValidationError{Fields: fields}
	}
	return s.Repo.PutAbout(a)
}

func (s *DefaultContentService) GetFooter() (*models.FooterContent, error) {
	return s.Repo.GetFooter()
}

func (s *DefaultContentService) PutFooter(f *models.FooterContent) error {
	fields := make(map[string]string)
	for _, link := range f.Links {
		if strings.TrimSpace(link.Label) == "" {
			fields["links"] = "every footer link needs a label"
			break
		}
		if !validURL(link.URL) && !strings.HasPrefix(link.URL, "/") {
			fields["links"] = "footer link URLs must be absolute http(s) or site-relative"
			break
		}
	}
	if len(fields) > 0 {
		return &svcbooking.ValidationError{Fields: fields}
	}
	return s.Repo.PutFooter(f)
}

func validateTestimonial(t *models.Testimonial) map[string]string {
	fields := make(map[string]string)
	if len(strings.TrimSpace(t.Name)) < 2 {
		fields["name"] = "name must be at least 2 characters"
	}
	if l := len(strings.TrimSpace(t.Quote)); l < 10 || l > 600 {
		fields["quote"] = "quote must be between 10 and 600 characters"
	}
	if t.Rating < 1 || t.Rating > 5 {
		fields["rating"] = "rating must be between 1 and 5"
	}
	if t.PhotoURL != "" && !validURL(t.PhotoURL) {
		fields["photoUrl"] = "photoUrl must be a valid http(s) URL"
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

func validateSlide(s *models.SliderContent) map[string]string {
	fields := make(map[string]string)
	if l := len(strings.TrimSpace(s.Title)); l < 3 || l > 120 {
		fields["title"] = "title must be between 3 and 120 characters"
	}
	if !validURL(s.ImageURL) {
		fields["imageUrl"] = "imageUrl must be a valid http(s) URL"
	}
	if s.Order < 0 {
		fields["order"] = "order must not be negative"
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

func validURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https")
}
