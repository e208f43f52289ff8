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

type skillUsecase struct {
	skillRepo   domain.SkillRepository
	profileRepo domain.EmployeeProfileRepository
	policy      authz.Policy
	validate    *validator.Validate
}

func NewSkillUsecase(
	skillRepo domain.SkillRepository,
	profileRepo domain.EmployeeProfileRepository,
	policy authz.Policy,
	validate *validator.Validate,
) domain.SkillUsecase {
	return &skillUsecase{
		skillRepo:   skillRepo,
		profileRepo: profileRepo,
		policy:      policy,
		validate:    validate,
	}
}

func (u *skillUsecase) List(ctx context.Context, profileID *int64) ([]domain.Skill, error) {
	return u.skillRepo.Fetch(ctx, profileID)
}

func (u *skillUsecase) Get(ctx context.Context, id int64) (*domain.Skill, error) {
	skill, err := u.skillRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Skill not found")
		}
		return nil, err
	}
	return skill, nil
}

// Create resolves the parent profile before persisting: the profile must exist
// and the caller must own it.
func (u *skillUsecase) Create(ctx context.Context, callerID int64, skill *domain.Skill) error {
	if err := u.validate.Struct(skill); err != nil {
		return apperror.Validation("Validation failed", validation.FormatValidationErrors(err))
	}

	profile, err := u.profileRepo.GetByID(ctx, skill.ProfileID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.Validation("Validation failed", []validation.FieldError{
				{Field: "profile", Message: "Referenced profile does not exist"},
			})
		}
		return err
	}
	if profile.OwnerID != callerID {
		return apperror.Forbidden("Only the profile owner may add skills to it")
	}

	skill.ProfileOwnerID = profile.OwnerID
	return u.skillRepo.Create(ctx, skill)
}

func (u *skillUsecase) Update(ctx context.Context, callerID, id int64, patch domain.SkillPatch, partial bool) (*domain.Skill, error) {
	skill, err := u.skillRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Skill not found")
		}
		return nil, err
	}

	if !u.policy.Allows(callerID, skill.ProfileOwnerID, authz.CapabilityWrite) {
		return nil, apperror.Forbidden("Only the profile owner may modify this skill")
	}

	if err := u.validate.Struct(patch); err != nil {
		return nil, apperror.Validation("Validation failed", validation.FormatValidationErrors(err))
	}
	if !partial && (patch.Name == nil || patch.Proficiency == nil) {
		return nil, apperror.Validation("Validation failed", []validation.FieldError{
			{Field: "name", Message: "All fields are required for a full update"},
		})
	}

	if patch.Name != nil {
		skill.Name = *patch.Name
	}
	if patch.Proficiency != nil {
		skill.Proficiency = *patch.Proficiency
	}

	if err := u.skillRepo.Update(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (u *skillUsecase) Delete(ctx context.Context, callerID, id int64) error {
	skill, err := u.skillRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Skill not found")
		}
		return err
	}

	if !u.policy.Allows(callerID, skill.ProfileOwnerID, authz.CapabilityWrite) {
		return apperror.Forbidden("Only the profile owner may delete this skill")
	}

	return u.skillRepo.Delete(ctx, id)
}

func (u *skillUsecase) ListMine(ctx context.Context, callerID int64) ([]domain.Skill, error) {
	profile, err := u.profileRepo.GetByOwnerID(ctx, callerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("You have not created a profile yet")
		}
		return nil, err
	}
	return u.skillRepo.Fetch(ctx, &profile.ID)
}
