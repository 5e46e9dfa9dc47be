package account

import (
	"context"
	"fmt"
	"time"

	profileRepo "carexyz/database/repository/profile"
	"carexyz/models"
	svcbooking "carexyz/services/booking"
	"carexyz/utils"

	"firebase.google.com/go/v4/auth"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// UpdateUserInput is the admin user-management form.
type UpdateUserInput struct {
	Role   string `json:"role"`
	Status string `json:"status"`
}

// AccountService mirrors identity-provider users into the document store and
// owns the admin user-management workflow.
type AccountService interface {
	// SyncProfile upserts the caller's mirrored profile after sign-in.
	SyncProfile(uid, email, fullName, photoURL string) (*models.Profile, error)
	// GetProfile fetches a mirrored profile by uid.
	GetProfile(uid string) (*models.Profile, error)
	// ListProfiles returns all mirrored profiles for the admin table.
	ListProfiles() ([]models.Profile, error)
	// UpdateUser changes role and/or status. Disabling also disables the
	// identity-provider account. actor is the admin performing the change.
	UpdateUser(actor, uid string, in UpdateUserInput) (*models.Profile, error)
	// DeleteUser removes the profile and the identity-provider account.
	// super_admin profiles are never deletable.
	DeleteUser(actor, uid string) error
}

// DefaultAccountService is the production implementation.
type DefaultAccountService struct {
	Repo      profileRepo.ProfileRepository
	Auth      *auth.Client
	RoleCache *redis.Client
	Activity  svcbooking.ActivityAppender
}

// SyncProfile upserts the caller's mirrored profile with default role user.
func (s *DefaultAccountService) SyncProfile(uid, email, fullName, photoURL string) (*models.Profile, error) {
	p := &models.Profile{
		UID:      uid,
		Email:    email,
		FullName: fullName,
		PhotoURL: photoURL,
		Role:     models.RoleUser,
		Status:   "active",
	}
	if err := s.Repo.Upsert(p); err != nil {
		return nil, err
	}
	return s.Repo.GetByUID(uid)
}

// GetProfile fetches a mirrored profile by uid.
func (s *DefaultAccountService) GetProfile(uid string) (*models.Profile, error) {
	return s.Repo.GetByUID(uid)
}

// ListProfiles returns all mirrored profiles.
func (s *DefaultAccountService) ListProfiles() ([]models.Profile, error) {
	return s.Repo.GetAll()
}

// UpdateUser changes role and/or status on a mirrored profile.
func (s *DefaultAccountService) UpdateUser(actor, uid string, in UpdateUserInput) (*models.Profile, error) {
	logger := utils.GetLogger()

	target, err := s.Repo.GetByUID(uid)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, &svcbooking.NotFoundError{Resource: "user", ID: uid}
	}

	fields := bson.M{}

	if in.Role != "" {
		role := models.Role(in.Role)
		switch role {
		case models.RoleUser, models.RoleAdmin:
			fields["role"] = role
		case models.RoleSuperAdmin:
			// Only an existing super_admin may mint another one.
			actorProfile, err := s.Repo.GetByUID(actor)
			if err != nil {
				return nil, err
			}
			if actorProfile == nil || actorProfile.Role != models.RoleSuperAdmin {
				return nil, &svcbooking.ForbiddenError{Message: "only a super_admin may assign the super_admin role"}
			}
			fields["role"] = role
		default:
			return nil, &svcbooking.ValidationError{Fields: map[string]string{"role": "unknown role"}}
		}
	}

	if in.Status != "" {
		if in.Status != "active" && in.Status != "disabled" {
			return nil, &svcbooking.ValidationError{Fields: map[string]string{"status": "status must be active or disabled"}}
		}
		fields["status"] = in.Status
	}

	if len(fields) == 0 {
		return target, nil
	}

	// The mirrored profile is the source of truth for authorization, so it is
	// written first; the identity-provider flip follows and a failure there
	// leaves only a stricter state (profile already disabled).
	if err := s.Repo.UpdateFields(uid, fields); err != nil {
		return nil, err
	}
	s.dropCachedRole(uid)

	if in.Status != "" && s.Auth != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		update := (&auth.UserToUpdate{}).Disabled(in.Status == "disabled")
		if _, err := s.Auth.UpdateUser(ctx, uid, update); err != nil {
			// Profile already reflects the change; report the drifted auth user
			// for follow-up.
			logger.Error("failed to update identity-provider user",
				zap.String("uid", uid), zap.Error(err))
		}
	}

	if s.Activity != nil {
		entry := &models.ActivityLog{
			ID:     uuid.New().String(),
			Type:   models.ActivityUserUpdated,
			Actor:  actor,
			Detail: fmt.Sprintf("user %s updated (role=%s status=%s)", uid, in.Role, in.Status),
			RefID:  uid,
		}
		if err := s.Activity.Append(entry); err != nil {
			logger.Warn("failed to record user_updated activity", zap.Error(err))
		}
	}

	return s.Repo.GetByUID(uid)
}

// DeleteUser removes a mirrored profile and its identity-provider account.
func (s *DefaultAccountService) DeleteUser(actor, uid string) error {
	logger := utils.GetLogger()

	target, err := s.Repo.GetByUID(uid)
	if err != nil {
		return err
	}
	if target == nil {
		return &svcbooking.NotFoundError{Resource: "user", ID: uid}
	}
	if target.Role == models.RoleSuperAdmin {
		return &svcbooking.ForbiddenError{Message: "super_admin accounts cannot be deleted"}
	}

	if err := s.Repo.Delete(uid); err != nil {
		return err
	}
	s.dropCachedRole(uid)

	if s.Auth != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Auth.DeleteUser(ctx, uid); err != nil {
			// Profile is gone; report the dangling auth user for follow-up.
			logger.Error("failed to delete identity-provider user",
				zap.String("uid", uid), zap.Error(err))
		}
	}

	if s.Activity != nil {
		entry := &models.ActivityLog{
			ID:     uuid.New().String(),
			Type:   models.ActivityUserDeleted,
			Actor:  actor,
			Detail: fmt.Sprintf("user %s (%s) deleted", uid, target.Email),
			RefID:  uid,
		}
		if err := s.Activity.Append(entry); err != nil {
			logger.Warn("failed to record user_deleted activity", zap.Error(err))
		}
	}
	return nil
}

func (s *DefaultAccountService) dropCachedRole(uid string) {
	if s.RoleCache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.RoleCache.Del(ctx, utils.RoleCachePrefix+uid).Err(); err != nil {
		utils.GetLogger().Warn("failed to drop cached role", zap.String("uid", uid), zap.Error(err))
	}
}
