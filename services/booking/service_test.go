package booking

import (
	"errors"
	"testing"
	"time"

	"carexyz/models"
)

// fakeServiceRepo serves catalog lookups from a map.
type fakeServiceRepo struct {
	services map[string]*models.Service
}

func (f *fakeServiceRepo) GetByID(id string) (*models.Service, error) {
	return f.services[id], nil
}

func (f *fakeServiceRepo) GetAll() ([]models.Service, error) {
	out := make([]models.Service, 0, len(f.services))
	for _, s := range f.services {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeServiceRepo) GetActive() ([]models.Service, error) {
	var out []models.Service
	for _, s := range f.services {
		if s.Active {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeServiceRepo) Create(svc *models.Service) error {
	f.services[svc.ID] = svc
	return nil
}

func (f *fakeServiceRepo) Update(svc *models.Service) error {
	f.services[svc.ID] = svc
	return nil
}

func (f *fakeServiceRepo) Delete(id string) error {
	delete(f.services, id)
	return nil
}

// fakeBookingRepo is an in-memory BookingRepository.
type fakeBookingRepo struct {
	bookings  map[string]*models.Booking
	createErr error
	// raceTo, when set, flips the stored status right before a conditional
	// update, simulating a transition that landed between read and write.
	raceTo models.BookingStatus
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (f *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	return f.bookings[id], nil
}

func (f *fakeBookingRepo) GetByUser(userID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetAll(status models.BookingStatus) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if status == "" || b.Status == status {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetByPaymentIntent(pi string) (*models.Booking, error) {
	for _, b := range f.bookings {
		if b.PaymentIntentID == pi {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) Create(b *models.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.bookings[b.ID] = b
	return nil
}

func (f *fakeBookingRepo) UpdateStatusIf(id string, from, to models.BookingStatus) (bool, error) {
	b, ok := f.bookings[id]
	if !ok {
		return false, nil
	}
	if f.raceTo != "" {
		b.Status = f.raceTo
	}
	if b.Status != from {
		return false, nil
	}
	b.Status = to
	return true, nil
}

type fakeActivity struct {
	entries []*models.ActivityLog
}

func (f *fakeActivity) Append(e *models.ActivityLog) error {
	f.entries = append(f.entries, e)
	return nil
}

func newTestService(repo *fakeBookingRepo) (*DefaultBookingService, *fakeActivity) {
	act := &fakeActivity{}
	svc := &DefaultBookingService{
		Repo: repo,
		ServiceRepo: &fakeServiceRepo{services: map[string]*models.Service{
			"svc-elderly-care": {
				ID:           "svc-elderly-care",
				Title:        "Elderly Care Companion",
				PricePerHour: 600,
				Active:       true,
			},
			"svc-retired": {
				ID:           "svc-retired",
				Title:        "Retired Service",
				PricePerHour: 400,
				Active:       false,
			},
		}},
		Activity: act,
	}
	return svc, act
}

func validInput() CreateBookingInput {
	return CreateBookingInput{
		ServiceID: "svc-elderly-care",
		Date:      time.Now().AddDate(0, 0, 3).Format("2006-01-02"),
		Time:      "09:00",
		Duration:  "8 hours",
		Location:  "House 12, Road 5, Dhanmondi, Dhaka",
		TotalCost: 4800,
	}
}

func TestCreateBookingHappyPath(t *testing.T) {
	repo := newFakeBookingRepo()
	svc, act := newTestService(repo)

	b, err := svc.CreateBooking("user-1", validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Status != models.StatusPending {
		t.Errorf("expected pending status, got %s", b.Status)
	}
	if b.TotalCost != 4800 {
		t.Errorf("expected totalCost 4800, got %v", b.TotalCost)
	}
	if b.ServiceName != "Elderly Care Companion" {
		t.Errorf("expected service name snapshot, got %q", b.ServiceName)
	}
	if len(act.entries) != 1 || act.entries[0].Type != models.ActivityOrderPlaced {
		t.Error("expected an order_placed activity entry")
	}
	if _, ok := repo.bookings[b.ID]; !ok {
		t.Error("booking was not persisted")
	}
}

func TestCreateBookingRejectsTamperedTotalCost(t *testing.T) {
	repo := newFakeBookingRepo()
	svc, _ := newTestService(repo)

	in := validInput()
	in.TotalCost = 100 // 8h at 600/hr is 4800

	_, err := svc.CreateBooking("user-1", in)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := verr.Fields["totalCost"]; !ok {
		t.Errorf("expected a totalCost field error, got %v", verr.Fields)
	}
	if len(repo.bookings) != 0 {
		t.Error("no booking should be persisted on validation failure")
	}
}

func TestCreateBookingRejectsPastDate(t *testing.T) {
	repo := newFakeBookingRepo()
	svc, _ := newTestService(repo)

	in := validInput()
	in.Date = time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	_, err := svc.CreateBooking("user-1", in)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := verr.Fields["date"]; !ok {
		t.Errorf("expected a date field error, got %v", verr.Fields)
	}
}

func TestCreateBookingRejectsInactiveService(t *testing.T) {
	repo := newFakeBookingRepo()
	svc, _ := newTestService(repo)

	in := validInput()
	in.ServiceID = "svc-retired"
	in.TotalCost = 3200

	_, err := svc.CreateBooking("user-1", in)
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError for inactive service, got %v", err)
	}
}

func TestCancelOwn(t *testing.T) {
	repo := newFakeBookingRepo()
	svc, _ := newTestService(repo)
	repo.bookings["b1"] = &models.Booking{ID: "b1", UserID: "user-1", Status: models.StatusPending}

	b, err := svc.CancelOwn("user-1", "b1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Status != models.StatusCancelled {
		t.Errorf("expected cancelled, got %s", b.Status)
	}

	// A second cancel is a conflict, not a silent no-op.
	_, err = svc.CancelOwn("user-1", "b1")
	var cerr *ConflictError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConflictError on repeated cancel, got %v", err)
	}
}

func TestCancelOwnRejectsOtherOwner(t *testing.T) {
	repo := newFakeBookingRepo()
	svc, _ := newTestService(repo)
	repo.bookings["b1"] = &models.Booking{ID: "b1", UserID: "user-1", Status: models.StatusPending}

	_, err := svc.CancelOwn("user-2", "b1")
	var ferr *ForbiddenError
	if !errors.As(err, &ferr) {
		t.Fatalf("expected ForbiddenError, got %v", err)
	}
	if repo.bookings["b1"].Status != models.StatusPending {
		t.Error("booking must be untouched")
	}
}

func TestCancelOwnRejectsInProgress(t *testing.T) {
	repo := newFakeBookingRepo()
	svc, _ := newTestService(repo)
	repo.bookings["b1"] = &models.Booking{ID: "b1", UserID: "user-1", Status: models.StatusInProgress}

	_, err := svc.CancelOwn("user-1", "b1")
	var cerr *ConflictError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
}

func TestTransitionFullLifecycle(t *testing.T) {
	repo := newFakeBookingRepo()
	svc, act := newTestService(repo)
	repo.bookings["b1"] = &models.Booking{ID: "b1", UserID: "user-1", Status: models.StatusPending}

	for _, to := range []models.BookingStatus{models.StatusConfirmed, models.StatusInProgress, models.StatusCompleted} {
		b, err := svc.Transition("admin-1", "b1", to)
		if err != nil {
			t.Fatalf("transition to %s: %v", to, err)
		}
		if b.Status != to {
			t.Fatalf("expected %s, got %s", to, b.Status)
		}
	}
	if len(act.entries) != 3 {
		t.Errorf("expected 3 status-change activity entries, got %d", len(act.entries))
	}

	// Terminal bookings reject any further change.
	_, err := svc.Transition("admin-1", "b1", models.StatusPending)
	var cerr *ConflictError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConflictError on terminal booking, got %v", err)
	}
}

func TestTransitionRejectsSkippedStep(t *testing.T) {
	repo := newFakeBookingRepo()
	svc, _ := newTestService(repo)
	repo.bookings["b1"] = &models.Booking{ID: "b1", UserID: "user-1", Status: models.StatusPending}

	_, err := svc.Transition("admin-1", "b1", models.StatusCompleted)
	var cerr *ConflictError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConflictError for pending -> completed, got %v", err)
	}
}

func TestCancelOwnConflictWhenStatusChangedConcurrently(t *testing.T) {
	repo := newFakeBookingRepo()
	svc, _ := newTestService(repo)
	repo.bookings["b1"] = &models.Booking{ID: "b1", UserID: "user-1", Status: models.StatusConfirmed}
	repo.raceTo = models.StatusInProgress

	_, err := svc.CancelOwn("user-1", "b1")
	var cerr *ConflictError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConflictError when status moved under us, got %v", err)
	}
	if repo.bookings["b1"].Status != models.StatusInProgress {
		t.Errorf("the racing transition must win, got %s", repo.bookings["b1"].Status)
	}
}

func TestTransitionConflictWhenStatusChangedConcurrently(t *testing.T) {
	repo := newFakeBookingRepo()
	svc, act := newTestService(repo)
	repo.bookings["b1"] = &models.Booking{ID: "b1", UserID: "user-1", Status: models.StatusPending}
	repo.raceTo = models.StatusCancelled

	_, err := svc.Transition("admin-1", "b1", models.StatusConfirmed)
	var cerr *ConflictError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConflictError when status moved under us, got %v", err)
	}
	if repo.bookings["b1"].Status != models.StatusCancelled {
		t.Errorf("the racing cancellation must win, got %s", repo.bookings["b1"].Status)
	}
	if len(act.entries) != 0 {
		t.Error("no status-change activity may be recorded for a lost race")
	}
}

func TestTransitionMissingBooking(t *testing.T) {
	repo := newFakeBookingRepo()
	svc, _ := newTestService(repo)

	_, err := svc.Transition("admin-1", "nope", models.StatusConfirmed)
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestParseDurationHours(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"8 hours", 8, false},
		{"1 hour", 1, false},
		{"4", 4, false},
		{" 2 Hours ", 2, false},
		{"0 hours", 0, true},
		{"two hours", 0, true},
		{"-3 hours", 0, true},
		{"", 0, true},
	}
	for _, c := range cases {
		got, err := ParseDurationHours(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseDurationHours(%q): expected error", c.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDurationHours(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseDurationHours(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestValidateIntakeCollectsAllFieldErrors(t *testing.T) {
	now := time.Now()
	fields := validateIntake(CreateBookingInput{
		Date:      "not-a-date",
		Time:      "25:99",
		Duration:  "soon",
		Location:  "a",
		TotalCost: -5,
	}, now)
	for _, key := range []string{"serviceId", "date", "time", "duration", "location", "totalCost"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("expected a field error for %s, got %v", key, fields)
		}
	}
}
