package domain

import (
	"context"
	"time"
)

type Project struct {
	ID               int64      `json:"id"`
	ProfileID        int64      `json:"profile" validate:"required"`
	Title            string     `json:"title" validate:"required,max=200"`
	Description      string     `json:"description" validate:"required"`
	TechnologiesUsed []string   `json:"technologies_used"`
	ProjectURL       *string    `json:"project_url" validate:"omitempty,url"`
	// Opaque reference to out-of-band stored binary content; never interpreted.
	Image     *string    `json:"image"`
	StartDate time.Time  `json:"start_date" validate:"required"`
	EndDate   *time.Time `json:"end_date"`

	ProfileOwnerID int64 `json:"-"`
}

type ProjectPatch struct {
	Title            *string    `json:"title" validate:"omitempty,max=200"`
	Description      *string    `json:"description"`
	TechnologiesUsed []string   `json:"technologies_used"`
	ProjectURL       *string    `json:"project_url" validate:"omitempty,url"`
	Image            *string    `json:"image"`
	StartDate        *time.Time `json:"start_date"`
	EndDate          *time.Time `json:"end_date"`
}

type ProjectRepository interface {
	Fetch(ctx context.Context, profileID *int64) ([]Project, error)
	GetByID(ctx context.Context, id int64) (*Project, error)
	Create(ctx context.Context, project *Project) error
	Update(ctx context.Context, project *Project) error
	Delete(ctx context.Context, id int64) error
}

type ProjectUsecase interface {
	List(ctx context.Context, profileID *int64) ([]Project, error)
	Get(ctx context.Context, id int64) (*Project, error)
	Create(ctx context.Context, callerID int64, project *Project) error
	Update(ctx context.Context, callerID, id int64, patch ProjectPatch, partial bool) (*Project, error)
	Delete(ctx context.Context, callerID, id int64) error
	ListMine(ctx context.Context, callerID int64) ([]Project, error)
}
