package seed

import (
	"fmt"

	contentRepo "carexyz/database/repository/content"
	serviceRepo "carexyz/database/repository/service"
	"carexyz/models"
	svcbooking "carexyz/services/booking"
	"carexyz/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Result summarizes what the seed run inserted and skipped.
type Result struct {
	ServicesInserted     int `json:"servicesInserted"`
	ServicesSkipped      int `json:"servicesSkipped"`
	TestimonialsInserted int `json:"testimonialsInserted"`
	TestimonialsSkipped  int `json:"testimonialsSkipped"`
	SlidesInserted       int `json:"slidesInserted"`
	SlidesSkipped        int `json:"slidesSkipped"`
	ContentUpserted      int `json:"contentUpserted"`
}

// Seeder bulk-loads demo catalog and marketing content. Documents with a
// matching id are left untouched so the endpoint is safe to call twice.
type Seeder struct {
	Services serviceRepo.ServiceRepository
	Content  contentRepo.ContentRepository
	Activity svcbooking.ActivityAppender
}

// Run loads the demo fixtures.
func (s *Seeder) Run(actor string) (*Result, error) {
	logger := utils.GetLogger()
	res := &Result{}

	for _, svc := range demoServices() {
		existing, err := s.Services.GetByID(svc.ID)
		if err != nil {
			return nil, fmt.Errorf("seed: failed to check service %s: %w", svc.ID, err)
		}
		if existing != nil {
			res.ServicesSkipped++
			continue
		}
		svcCopy := svc
		if err := s.Services.Create(&svcCopy); err != nil {
			return nil, fmt.Errorf("seed: failed to insert service %s: %w", svc.ID, err)
		}
		res.ServicesInserted++
	}

	for _, t := range demoTestimonials() {
		existing, err := s.Content.GetTestimonialByID(t.ID)
		if err != nil {
			return nil, fmt.Errorf("seed: failed to check testimonial %s: %w", t.ID, err)
		}
		if existing != nil {
			res.TestimonialsSkipped++
			continue
		}
		tCopy := t
		if err := s.Content.CreateTestimonial(&tCopy); err != nil {
			return nil, fmt.Errorf("seed: failed to insert testimonial %s: %w", t.ID, err)
		}
		res.TestimonialsInserted++
	}

	for _, slide := range demoSlides() {
		existing, err := s.Content.GetSlideByID(slide.ID)
		if err != nil {
			return nil, fmt.Errorf("seed: failed to check slide %s: %w", slide.ID, err)
		}
		if existing != nil {
			res.SlidesSkipped++
			continue
		}
		slideCopy := slide
		if err := s.Content.CreateSlide(&slideCopy); err != nil {
			return nil, fmt.Errorf("seed: failed to insert slide %s: %w", slide.ID, err)
		}
		res.SlidesInserted++
	}

	if about, err := s.Content.GetAbout(); err != nil {
		return nil, fmt.Errorf("seed: failed to check about content: %w", err)
	} else if about == nil {
		if err := s.Content.PutAbout(demoAbout()); err != nil {
			return nil, fmt.Errorf("seed: failed to insert about content: %w", err)
		}
		res.ContentUpserted++
	}

	if footer, err := s.Content.GetFooter(); err != nil {
		return nil, fmt.Errorf("seed: failed to check footer content: %w", err)
	} else if footer == nil {
		if err := s.Content.PutFooter(demoFooter()); err != nil {
			return nil, fmt.Errorf("seed: failed to insert footer content: %w", err)
		}
		res.ContentUpserted++
	}

	if s.Activity != nil {
		entry := &models.ActivityLog{
			ID:     uuid.New().String(),
			Type:   models.ActivitySeed,
			Actor:  actor,
			Detail: fmt.Sprintf("seed run: %d services, %d testimonials, %d slides inserted", res.ServicesInserted, res.TestimonialsInserted, res.SlidesInserted),
		}
		if err := s.Activity.Append(entry); err != nil {
			logger.Warn("failed to record seed activity", zap.Error(err))
		}
	}

	logger.Info("seed completed",
		zap.Int("services", res.ServicesInserted),
		zap.Int("testimonials", res.TestimonialsInserted),
		zap.Int("slides", res.SlidesInserted))
	return res, nil
}

func demoServices() []models.Service {
	return []models.Service{
		{
			ID:           "svc-elderly-care",
			Title:        "Elderly Care Companion",
			Description:  "Compassionate in-home companionship and daily-living assistance for seniors.",
			PricePerHour: 600,
			ImageURL:     "https://images.care.xyz/services/elderly-care.jpg",
			Features:     []string{"Medication reminders", "Meal preparation", "Mobility support", "Companionship"},
			Active:       true,
		},
		{
			ID:           "svc-baby-care",
			Title:        "Baby & Child Care",
			Description:  "Experienced babysitters and nannies for infants and young children.",
			PricePerHour: 500,
			ImageURL:     "https://images.care.xyz/services/baby-care.jpg",
			Features:     []string{"Certified caregivers", "Feeding and nap routines", "Activity planning"},
			Active:       true,
		},
		{
			ID:           "svc-patient-care",
			Title:        "Patient Care at Home",
			Description:  "Trained attendants for post-operative and long-term patients at home.",
			PricePerHour: 800,
			ImageURL:     "https://images.care.xyz/services/patient-care.jpg",
			Features:     []string{"Vitals monitoring", "Hygiene assistance", "Physio support", "Doctor coordination"},
			Active:       true,
		},
		{
			ID:           "svc-special-needs",
			Title:        "Special Needs Support",
			Description:  "Dedicated caregivers for children and adults with special needs.",
			PricePerHour: 700,
			ImageURL:     "https://images.care.xyz/services/special-needs.jpg",
			Features:     []string{"Individual care plans", "Behavioral support", "Family guidance"},
			Active:       true,
		},
	}
}

func demoTestimonials() []models.Testimonial {
	return []models.Testimonial{
		{
			ID:     "tst-rahima",
			Name:   "Rahima Akter",
			Quote:  "The caregiver treated my mother like her own family. Booking took two minutes.",
			Rating: 5,
			Active: true,
		},
		{
			ID:     "tst-karim",
			Name:   "Karim Chowdhury",
			Quote:  "Reliable patient care after my father's surgery. The status updates kept us informed.",
			Rating: 5,
			Active: true,
		},
		{
			ID:     "tst-nusrat",
			Name:   "Nusrat Jahan",
			Quote:  "Our nanny arrived on time every single day. Highly recommended for working parents.",
			Rating: 4,
			Active: true,
		},
	}
}

func demoSlides() []models.SliderContent {
	return []models.SliderContent{
		{
			ID:       "sld-hero-1",
			Title:    "Care for the people you love",
			Subtitle: "Verified caregivers at your doorstep, on your schedule.",
			ImageURL: "https://images.care.xyz/slides/hero-1.jpg",
			Order:    1,
			Active:   true,
		},
		{
			ID:       "sld-hero-2",
			Title:    "Book in minutes, pay securely",
			Subtitle: "Transparent hourly pricing with secure online payment.",
			ImageURL: "https://images.care.xyz/slides/hero-2.jpg",
			Order:    2,
			Active:   true,
		},
	}
}

func demoAbout() *models.AboutContent {
	return &models.AboutContent{
		Heading:    "About Care.xyz",
		Body:       "Care.xyz connects families with trusted, background-checked caregivers for elderly support, child care and in-home patient care across Bangladesh.",
		Highlights: []string{"Background-checked caregivers", "Transparent hourly pricing", "Support 7 days a week"},
		Visible:    true,
	}
}

func demoFooter() *models.FooterContent {
	return &models.FooterContent{
		Tagline: "Trusted caregiving, one booking away.",
		Links: []models.FooterLink{
			{Label: "Services", URL: "/services"},
			{Label: "About", URL: "/about"},
			{Label: "Contact", URL: "/contact"},
			{Label: "Terms", URL: "/terms"},
		},
		Copyright: "© Care.xyz. All rights reserved.",
		Visible:   true,
	}
}
