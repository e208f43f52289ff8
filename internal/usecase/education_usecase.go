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

type educationUsecase struct {
	educationRepo domain.EducationRepository
	profileRepo   domain.EmployeeProfileRepository
	policy        authz.Policy
	validate      *validator.Validate
}

func NewEducationUsecase(
	educationRepo domain.EducationRepository,
	profileRepo domain.EmployeeProfileRepository,
	policy authz.Policy,
	validate *validator.Validate,
) domain.EducationUsecase {
	return &educationUsecase{
		educationRepo: educationRepo,
		profileRepo:   profileRepo,
		policy:        policy,
		validate:      validate,
	}
}

func (u *educationUsecase) List(ctx context.Context, profileID *int64) ([]domain.Education, error) {
	return u.educationRepo.Fetch(ctx, profileID)
}

func (u *educationUsecase) Get(ctx context.Context, id int64) (*domain.Education, error) {
	education, err := u.educationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Education record not found")
		}
		return nil, err
	}
	return education, nil
}

func (u *educationUsecase) Create(ctx context.Context, callerID int64, education *domain.Education) error {
	if err := u.validate.Struct(education); err != nil {
		return apperror.Validation("Validation failed", validation.FormatValidationErrors(err))
	}

	profile, err := u.profileRepo.GetByID(ctx, education.ProfileID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.Validation("Validation failed", []validation.FieldError{
				{Field: "profile", Message: "Referenced profile does not exist"},
			})
		}
		return err
	}
	if profile.OwnerID != callerID {
		return apperror.Forbidden("Only the profile owner may add education records to it")
	}

	education.ProfileOwnerID = profile.OwnerID
	return u.educationRepo.Create(ctx, education)
}

func (u *educationUsecase) Update(ctx context.Context, callerID, id int64, patch domain.EducationPatch, partial bool) (*domain.Education, error) {
	education, err := u.educationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Education record not found")
		}
		return nil, err
	}

	if !u.policy.Allows(callerID, education.ProfileOwnerID, authz.CapabilityWrite) {
		return nil, apperror.Forbidden("Only the profile owner may modify this education record")
	}

	if err := u.validate.Struct(patch); err != nil {
		return nil, apperror.Validation("Validation failed", validation.FormatValidationErrors(err))
	}
	if !partial && (patch.Institution == nil || patch.Degree == nil || patch.StartYear == nil) {
		return nil, apperror.Validation("Validation failed", []validation.FieldError{
			{Field: "institution", Message: "All required fields must be present for a full update"},
		})
	}

	if patch.Institution != nil {
		education.Institution = *patch.Institution
	}
	if patch.Degree != nil {
		education.Degree = *patch.Degree
	}
	if patch.StartYear != nil {
		education.StartYear = *patch.StartYear
	}
	if patch.EndYear != nil || !partial {
		education.EndYear = patch.EndYear
	}

	if err := u.educationRepo.Update(ctx, education); err != nil {
		return nil, err
	}
	return education, nil
}

func (u *educationUsecase) Delete(ctx context.Context, callerID, id int64) error {
	education, err := u.educationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Education record not found")
		}
		return err
	}

	if !u.policy.Allows(callerID, education.ProfileOwnerID, authz.CapabilityWrite) {
		return apperror.Forbidden("Only the profile owner may delete this education record")
	}

	return u.educationRepo.Delete(ctx, id)
}

func (u *educationUsecase) ListMine(ctx context.Context, callerID int64) ([]domain.Education, error) {
	profile, err := u.profileRepo.GetByOwnerID(ctx, callerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("You have not created a profile yet")
		}
		return nil, err
	}
	return u.educationRepo.Fetch(ctx, &profile.ID)
}
