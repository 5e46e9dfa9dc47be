package account

import (
	"errors"
	"testing"

	"carexyz/models"
	svcbooking "carexyz/services/booking"

	"go.mongodb.org/mongo-driver/bson"
)

type fakeProfileRepo struct {
	profiles  map[string]*models.Profile
	updateErr error
}

func newFakeProfileRepo(profiles ...*models.Profile) *fakeProfileRepo {
	m := make(map[string]*models.Profile)
	for _, p := range profiles {
		m[p.UID] = p
	}
	return &fakeProfileRepo{profiles: m}
}

func (f *fakeProfileRepo) GetByUID(uid string) (*models.Profile, error) {
	return f.profiles[uid], nil
}

func (f *fakeProfileRepo) GetAll() ([]models.Profile, error) {
	out := make([]models.Profile, 0, len(f.profiles))
	for _, p := range f.profiles {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProfileRepo) Upsert(p *models.Profile) error {
	if existing, ok := f.profiles[p.UID]; ok {
		existing.Email = p.Email
		existing.FullName = p.FullName
		existing.PhotoURL = p.PhotoURL
		return nil
	}
	cp := *p
	f.profiles[p.UID] = &cp
	return nil
}

func (f *fakeProfileRepo) UpdateFields(uid string, fields bson.M) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	p, ok := f.profiles[uid]
	if !ok {
		return nil
	}
	if role, ok := fields["role"]; ok {
		p.Role = role.(models.Role)
	}
	if status, ok := fields["status"]; ok {
		p.Status = status.(string)
	}
	return nil
}

func (f *fakeProfileRepo) Delete(uid string) error {
	delete(f.profiles, uid)
	return nil
}

type recordingActivity struct {
	entries []*models.ActivityLog
}

func (r *recordingActivity) Append(e *models.ActivityLog) error {
	r.entries = append(r.entries, e)
	return nil
}

func TestSyncProfileDefaultsToUserRole(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := &DefaultAccountService{Repo: repo}

	p, err := svc.SyncProfile("uid-1", "amina@example.com", "Amina Rahman", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Role != models.RoleUser {
		t.Errorf("expected default role user, got %s", p.Role)
	}
	if p.Status != "active" {
		t.Errorf("expected active status, got %s", p.Status)
	}
}

func TestSyncProfilePreservesPromotedRole(t *testing.T) {
	repo := newFakeProfileRepo(&models.Profile{UID: "uid-1", Email: "old@example.com", Role: models.RoleAdmin, Status: "active"})
	svc := &DefaultAccountService{Repo: repo}

	p, err := svc.SyncProfile("uid-1", "new@example.com", "Amina Rahman", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Role != models.RoleAdmin {
		t.Errorf("sign-in sync must not demote an admin, got %s", p.Role)
	}
	if p.Email != "new@example.com" {
		t.Errorf("expected refreshed email, got %s", p.Email)
	}
}

func TestUpdateUserPromoteToAdmin(t *testing.T) {
	repo := newFakeProfileRepo(
		&models.Profile{UID: "actor", Role: models.RoleAdmin, Status: "active"},
		&models.Profile{UID: "target", Role: models.RoleUser, Status: "active"},
	)
	act := &recordingActivity{}
	svc := &DefaultAccountService{Repo: repo, Activity: act}

	p, err := svc.UpdateUser("actor", "target", UpdateUserInput{Role: "admin"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Role != models.RoleAdmin {
		t.Errorf("expected admin, got %s", p.Role)
	}
	if len(act.entries) != 1 || act.entries[0].Type != models.ActivityUserUpdated {
		t.Error("expected a user_updated activity entry")
	}
}

func TestUpdateUserSuperAdminAssignmentRequiresSuperAdmin(t *testing.T) {
	repo := newFakeProfileRepo(
		&models.Profile{UID: "actor", Role: models.RoleAdmin, Status: "active"},
		&models.Profile{UID: "target", Role: models.RoleUser, Status: "active"},
	)
	svc := &DefaultAccountService{Repo: repo}

	_, err := svc.UpdateUser("actor", "target", UpdateUserInput{Role: "super_admin"})
	var ferr *svcbooking.ForbiddenError
	if !errors.As(err, &ferr) {
		t.Fatalf("expected ForbiddenError, got %v", err)
	}

	repo.profiles["actor"].Role = models.RoleSuperAdmin
	p, err := svc.UpdateUser("actor", "target", UpdateUserInput{Role: "super_admin"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Role != models.RoleSuperAdmin {
		t.Errorf("expected super_admin, got %s", p.Role)
	}
}

func TestUpdateUserRejectsUnknownRoleAndStatus(t *testing.T) {
	repo := newFakeProfileRepo(&models.Profile{UID: "target", Role: models.RoleUser, Status: "active"})
	svc := &DefaultAccountService{Repo: repo}

	_, err := svc.UpdateUser("actor", "target", UpdateUserInput{Role: "owner"})
	var verr *svcbooking.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for unknown role, got %v", err)
	}

	_, err = svc.UpdateUser("actor", "target", UpdateUserInput{Status: "banned"})
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for unknown status, got %v", err)
	}
}

func TestUpdateUserStopsWhenProfileWriteFails(t *testing.T) {
	repo := newFakeProfileRepo(&models.Profile{UID: "target", Role: models.RoleUser, Status: "active"})
	repo.updateErr = errors.New("write concern timeout")
	act := &recordingActivity{}
	svc := &DefaultAccountService{Repo: repo, Activity: act}

	_, err := svc.UpdateUser("actor", "target", UpdateUserInput{Status: "disabled"})
	if err == nil {
		t.Fatal("expected the profile write error to surface")
	}
	if repo.profiles["target"].Status != "active" {
		t.Error("profile must be unchanged when the write fails")
	}
	if len(act.entries) != 0 {
		t.Error("no activity may be recorded when the profile write fails")
	}
}

func TestDeleteUserRejectsSuperAdmin(t *testing.T) {
	repo := newFakeProfileRepo(&models.Profile{UID: "root", Role: models.RoleSuperAdmin, Status: "active"})
	svc := &DefaultAccountService{Repo: repo}

	err := svc.DeleteUser("actor", "root")
	var ferr *svcbooking.ForbiddenError
	if !errors.As(err, &ferr) {
		t.Fatalf("expected ForbiddenError, got %v", err)
	}
	if _, ok := repo.profiles["root"]; !ok {
		t.Error("super_admin profile must survive the delete attempt")
	}
}

func TestDeleteUser(t *testing.T) {
	repo := newFakeProfileRepo(&models.Profile{UID: "target", Email: "t@example.com", Role: models.RoleUser, Status: "active"})
	act := &recordingActivity{}
	svc := &DefaultAccountService{Repo: repo, Activity: act}

	if err := svc.DeleteUser("actor", "target"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := repo.profiles["target"]; ok {
		t.Error("profile should be removed")
	}
	if len(act.entries) != 1 || act.entries[0].Type != models.ActivityUserDeleted {
		t.Error("expected a user_deleted activity entry")
	}

	err := svc.DeleteUser("actor", "target")
	var nf *svcbooking.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError for missing user, got %v", err)
	}
}
