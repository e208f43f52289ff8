package domain

import "context"

type Skill struct {
	ID          int64  `json:"id"`
	ProfileID   int64  `json:"profile" validate:"required"`
	Name        string `json:"name" validate:"required,max=100"`
	Proficiency string `json:"proficiency" validate:"required,max=50"`
	// Resolved from the parent profile on reads; drives write authorization.
	ProfileOwnerID int64 `json:"-"`
}

// SkillPatch is the partial-update shape; nil means "not supplied".
type SkillPatch struct {
	Name        *string `json:"name" validate:"omitempty,max=100"`
	Proficiency *string `json:"proficiency" validate:"omitempty,max=50"`
}

type SkillRepository interface {
	Fetch(ctx context.Context, profileID *int64) ([]Skill, error)
	GetByID(ctx context.Context, id int64) (*Skill, error)
	Create(ctx context.Context, skill *Skill) error
	Update(ctx context.Context, skill *Skill) error
	Delete(ctx context.Context, id int64) error
}

type SkillUsecase interface {
	List(ctx context.Context, profileID *int64) ([]Skill, error)
	Get(ctx context.Context, id int64) (*Skill, error)
	Create(ctx context.Context, callerID int64, skill *Skill) error
	Update(ctx context.Context, callerID, id int64, patch SkillPatch, partial bool) (*Skill, error)
	Delete(ctx context.Context, callerID, id int64) error
	ListMine(ctx context.Context, callerID int64) ([]Skill, error)
}
