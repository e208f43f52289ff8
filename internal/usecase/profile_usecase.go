package usecase

import (
	"context"
	"errors"

	"go-profile-backend/internal/authz"
	"go-profile-backend/internal/domain"
	"go-profile-backend/pkg/apperror"
	"go-profile-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type profileUsecase struct {
	profileRepo       domain.EmployeeProfileRepository
	skillRepo         domain.SkillRepository
	educationRepo     domain.EducationRepository
	certificationRepo domain.CertificationRepository
	projectRepo       domain.ProjectRepository
	policy            authz.Policy
	validate          *validator.Validate
}

func NewProfileUsecase(
	profileRepo domain.EmployeeProfileRepository,
	skillRepo domain.SkillRepository,
	educationRepo domain.EducationRepository,
	certificationRepo domain.CertificationRepository,
	projectRepo domain.ProjectRepository,
	policy authz.Policy,
	validate *validator.Validate,
) domain.ProfileUsecase {
	return &profileUsecase{
		profileRepo:       profileRepo,
		skillRepo:         skillRepo,
		educationRepo:     educationRepo,
		certificationRepo: certificationRepo,
		projectRepo:       projectRepo,
		policy:            policy,
		validate:          validate,
	}
}

func (u *profileUsecase) List(ctx context.Context) ([]domain.ProfileSummary, error) {
	return u.profileRepo.Fetch(ctx)
}

func (u *profileUsecase) Get(ctx context.Context, id int64) (*domain.ProfileDetail, error) {
	profile, err := u.profileRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Profile not found")
		}
		return nil, err
	}
	return u.loadDetail(ctx, profile)
}

// Create always acts on behalf of the caller: any owner value supplied by the
// client has already been stripped by the write projection, and the new
// profile's owner is the authenticated identity.
func (u *profileUsecase) Create(ctx context.Context, callerID int64, patch domain.ProfilePatch) (*domain.ProfileDetail, error) {
	if err := u.validate.Struct(patch); err != nil {
		return nil, apperror.Validation("Validation failed", validation.FormatValidationErrors(err))
	}
	if patch.Position == nil || *patch.Position == "" {
		return nil, apperror.Validation("Validation failed", []validation.FieldError{
			{Field: "position", Message: "This field is required"},
		})
	}

	profile := &domain.EmployeeProfile{
		OwnerID:  callerID,
		Bio:      patch.Bio,
		Position: *patch.Position,
	}
	if err := u.profileRepo.Create(ctx, profile); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, apperror.Conflict("A profile already exists for this user")
		}
		return nil, err
	}

	// Reload to pick up the owner summary.
	created, err := u.profileRepo.GetByID(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	return u.loadDetail(ctx, created)
}

func (u *profileUsecase) Update(ctx context.Context, callerID, id int64, patch domain.ProfilePatch, partial bool) (*domain.ProfileDetail, error) {
	profile, err := u.profileRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Profile not found")
		}
		return nil, err
	}

	if !u.policy.Allows(callerID, profile.OwnerID, authz.CapabilityWrite) {
		return nil, apperror.Forbidden("Only the profile owner may modify it")
	}

	if err := u.validate.Struct(patch); err != nil {
		return nil, apperror.Validation("Validation failed", validation.FormatValidationErrors(err))
	}

	if partial {
		if patch.Bio != nil {
			profile.Bio = patch.Bio
		}
		if patch.Position != nil {
			profile.Position = *patch.Position
		}
	} else {
		// Full update replaces every mutable field; position is required.
		if patch.Position == nil || *patch.Position == "" {
			return nil, apperror.Validation("Validation failed", []validation.FieldError{
				{Field: "position", Message: "This field is required"},
			})
		}
		profile.Bio = patch.Bio
		profile.Position = *patch.Position
	}

	if err := u.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return u.loadDetail(ctx, profile)
}

func (u *profileUsecase) Delete(ctx context.Context, callerID, id int64) error {
	profile, err := u.profileRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Profile not found")
		}
		return err
	}

	if !u.policy.Allows(callerID, profile.OwnerID, authz.CapabilityWrite) {
		return apperror.Forbidden("Only the profile owner may delete it")
	}

	return u.profileRepo.Delete(ctx, id)
}

func (u *profileUsecase) GetMine(ctx context.Context, callerID int64) (*domain.ProfileDetail, error) {
	profile, err := u.profileRepo.GetByOwnerID(ctx, callerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("You have not created a profile yet")
		}
		return nil, err
	}
	return u.loadDetail(ctx, profile)
}

func (u *profileUsecase) ListSkills(ctx context.Context, profileID int64) ([]domain.Skill, error) {
	if _, err := u.profileRepo.GetByID(ctx, profileID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Profile not found")
		}
		return nil, err
	}
	return u.skillRepo.Fetch(ctx, &profileID)
}

func (u *profileUsecase) ListProjects(ctx context.Context, profileID int64) ([]domain.Project, error) {
	if _, err := u.profileRepo.GetByID(ctx, profileID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Profile not found")
		}
		return nil, err
	}
	return u.projectRepo.Fetch(ctx, &profileID)
}

func (u *profileUsecase) loadDetail(ctx context.Context, profile *domain.EmployeeProfile) (*domain.ProfileDetail, error) {
	skills, err := u.skillRepo.Fetch(ctx, &profile.ID)
	if err != nil {
		return nil, err
	}
	education, err := u.educationRepo.Fetch(ctx, &profile.ID)
	if err != nil {
		return nil, err
	}
	certifications, err := u.certificationRepo.Fetch(ctx, &profile.ID)
	if err != nil {
		return nil, err
	}
	projects, err := u.projectRepo.Fetch(ctx, &profile.ID)
	if err != nil {
		return nil, err
	}

	return &domain.ProfileDetail{
		ID:             profile.ID,
		Owner:          profile.Owner,
		Bio:            profile.Bio,
		Position:       profile.Position,
		JoinedAt:       profile.JoinedAt,
		Skills:         skills,
		Education:      education,
		Certifications: certifications,
		Projects:       projects,
	}, nil
}
