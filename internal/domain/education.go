package domain

import (
	"context"
	"time"
)

type Education struct {
	ID             int64      `json:"id"`
	ProfileID      int64      `json:"profile" validate:"required"`
	Institution    string     `json:"institution" validate:"required,max=200"`
	Degree         string     `json:"degree" validate:"required,max=100"`
	StartYear      time.Time  `json:"start_year" validate:"required"`
	EndYear        *time.Time `json:"end_year"` // nil while ongoing
	ProfileOwnerID int64      `json:"-"`
}

type EducationPatch struct {
	Institution *string    `json:"institution" validate:"omitempty,max=200"`
	Degree      *string    `json:"degree" validate:"omitempty,max=100"`
	StartYear   *time.Time `json:"start_year"`
	EndYear     *time.Time `json:"end_year"`
}

type EducationRepository interface {
	Fetch(ctx context.Context, profileID *int64) ([]Education, error)
	GetByID(ctx context.Context, id int64) (*Education, error)
	Create(ctx context.Context, education *Education) error
	Update(ctx context.Context, education *Education) error
	Delete(ctx context.Context, id int64) error
}

type EducationUsecase interface {
	List(ctx context.Context, profileID *int64) ([]Education, error)
	Get(ctx context.Context, id int64) (*Education, error)
	Create(ctx context.Context, callerID int64, education *Education) error
	Update(ctx context.Context, callerID, id int64, patch EducationPatch, partial bool) (*Education, error)
	Delete(ctx context.Context, callerID, id int64) error
	ListMine(ctx context.Context, callerID int64) ([]Education, error)
}
