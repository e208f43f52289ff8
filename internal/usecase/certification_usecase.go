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

type certificationUsecase struct {
	certificationRepo domain.CertificationRepository
	profileRepo       domain.EmployeeProfileRepository
	policy            authz.Policy
	validate          *validator.Validate
}

func NewCertificationUsecase(
	certificationRepo domain.CertificationRepository,
	profileRepo domain.EmployeeProfileRepository,
	policy authz.Policy,
	validate *validator.Validate,
) domain.CertificationUsecase {
	return &certificationUsecase{
		certificationRepo: certificationRepo,
		profileRepo:       profileRepo,
		policy:            policy,
		validate:          validate,
	}
}

func (u *certificationUsecase) List(ctx context.Context, profileID *int64) ([]domain.Certification, error) {
	return u.certificationRepo.Fetch(ctx, profileID)
}

func (u *certificationUsecase) Get(ctx context.Context, id int64) (*domain.Certification, error) {
	certification, err := u.certificationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Certification not found")
		}
		return nil, err
	}
	return certification, nil
}

func (u *certificationUsecase) Create(ctx context.Context, callerID int64, certification *domain.Certification) error {
	if err := u.validate.Struct(certification); err != nil {
		return apperror.Validation("Validation failed", validation.FormatValidationErrors(err))
	}

	profile, err := u.profileRepo.GetByID(ctx, certification.ProfileID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.Validation("Validation failed", []validation.FieldError{
				{Field: "profile", Message: "Referenced profile does not exist"},
			})
		}
		return err
	}
	if profile.OwnerID != callerID {
		return apperror.Forbidden("Only the profile owner may add certifications to it")
	}

	certification.ProfileOwnerID = profile.OwnerID
	return u.certificationRepo.Create(ctx, certification)
}

func (u *certificationUsecase) Update(ctx context.Context, callerID, id int64, patch domain.CertificationPatch, partial bool) (*domain.Certification, error) {
	certification, err := u.certificationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Certification not found")
		}
		return nil, err
	}

	if !u.policy.Allows(callerID, certification.ProfileOwnerID, authz.CapabilityWrite) {
		return nil, apperror.Forbidden("Only the profile owner may modify this certification")
	}

	if err := u.validate.Struct(patch); err != nil {
		return nil, apperror.Validation("Validation failed", validation.FormatValidationErrors(err))
	}
	if !partial && (patch.Title == nil || patch.Issuer == nil || patch.IssuedDate == nil) {
		return nil, apperror.Validation("Validation failed", []validation.FieldError{
			{Field: "title", Message: "All required fields must be present for a full update"},
		})
	}

	if patch.Title != nil {
		certification.Title = *patch.Title
	}
	if patch.Issuer != nil {
		certification.Issuer = *patch.Issuer
	}
	if patch.IssuedDate != nil {
		certification.IssuedDate = *patch.IssuedDate
	}
	if patch.ExpiryDate != nil || !partial {
		certification.ExpiryDate = patch.ExpiryDate
	}

	if err := u.certificationRepo.Update(ctx, certification); err != nil {
		return nil, err
	}
	return certification, nil
}

func (u *certificationUsecase) Delete(ctx context.Context, callerID, id int64) error {
	certification, err := u.certificationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Certification not found")
		}
		return err
	}

	if !u.policy.Allows(callerID, certification.ProfileOwnerID, authz.CapabilityWrite) {
		return apperror.Forbidden("Only the profile owner may delete this certification")
	}

	return u.certificationRepo.Delete(ctx, id)
}

func (u *certificationUsecase) ListMine(ctx context.Context, callerID int64) ([]domain.Certification, error) {
	profile, err := u.profileRepo.GetByOwnerID(ctx, callerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("You have not created a profile yet")
		}
		return nil, err
	}
	return u.certificationRepo.Fetch(ctx, &profile.ID)
}
