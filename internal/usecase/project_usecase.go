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

type projectUsecase struct {
	projectRepo domain.ProjectRepository
	profileRepo domain.EmployeeProfileRepository
	policy      authz.Policy
	validate    *validator.Validate
}

func NewProjectUsecase(
	projectRepo domain.ProjectRepository,
	profileRepo domain.EmployeeProfileRepository,
	policy authz.Policy,
	validate *validator.Validate,
) domain.ProjectUsecase {
	return &projectUsecase{
		projectRepo: projectRepo,
		profileRepo: profileRepo,
		policy:      policy,
		validate:    validate,
	}
}

func (u *projectUsecase) List(ctx context.Context, profileID *int64) ([]domain.Project, error) {
	return u.projectRepo.Fetch(ctx, profileID)
}

func (u *projectUsecase) Get(ctx context.Context, id int64) (*domain.Project, error) {
	project, err := u.projectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Project not found")
		}
		return nil, err
	}
	return project, nil
}

func (u *projectUsecase) Create(ctx context.Context, callerID int64, project *domain.Project) error {
	if err := u.validate.Struct(project); err != nil {
		return apperror.Validation("Validation failed", validation.FormatValidationErrors(err))
	}

	profile, err := u.profileRepo.GetByID(ctx, project.ProfileID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.Validation("Validation failed", []validation.FieldError{
				{Field: "profile", Message: "Referenced profile does not exist"},
			})
		}
		return err
	}
	if profile.OwnerID != callerID {
		return apperror.Forbidden("Only the profile owner may add projects to it")
	}

	if project.TechnologiesUsed == nil {
		project.TechnologiesUsed = []string{}
	}
	project.ProfileOwnerID = profile.OwnerID
	return u.projectRepo.Create(ctx, project)
}

func (u *projectUsecase) Update(ctx context.Context, callerID, id int64, patch domain.ProjectPatch, partial bool) (*domain.Project, error) {
	project, err := u.projectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Project not found")
		}
		return nil, err
	}

	if !u.policy.Allows(callerID, project.ProfileOwnerID, authz.CapabilityWrite) {
		return nil, apperror.Forbidden("Only the profile owner may modify this project")
	}

	if err := u.validate.Struct(patch); err != nil {
		return nil, apperror.Validation("Validation failed", validation.FormatValidationErrors(err))
	}
	if !partial && (patch.Title == nil || patch.Description == nil || patch.StartDate == nil) {
		return nil, apperror.Validation("Validation failed", []validation.FieldError{
			{Field: "title", Message: "All required fields must be present for a full update"},
		})
	}

	if patch.Title != nil {
		project.Title = *patch.Title
	}
	if patch.Description != nil {
		project.Description = *patch.Description
	}
	if patch.TechnologiesUsed != nil {
		project.TechnologiesUsed = patch.TechnologiesUsed
	} else if !partial {
		project.TechnologiesUsed = []string{}
	}
	if patch.StartDate != nil {
		project.StartDate = *patch.StartDate
	}
	if patch.ProjectURL != nil || !partial {
		project.ProjectURL = patch.ProjectURL
	}
	if patch.Image != nil || !partial {
		project.Image = patch.Image
	}
	if patch.EndDate != nil || !partial {
		project.EndDate = patch.EndDate
	}

	if err := u.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (u *projectUsecase) Delete(ctx context.Context, callerID, id int64) error {
	project, err := u.projectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Project not found")
		}
		return err
	}

	if !u.policy.Allows(callerID, project.ProfileOwnerID, authz.CapabilityWrite) {
		return apperror.Forbidden("Only the profile owner may delete this project")
	}

	return u.projectRepo.Delete(ctx, id)
}

func (u *projectUsecase) ListMine(ctx context.Context, callerID int64) ([]domain.Project, error) {
	profile, err := u.profileRepo.GetByOwnerID(ctx, callerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("You have not created a profile yet")
		}
		return nil, err
	}
	return u.projectRepo.Fetch(ctx, &profile.ID)
}
