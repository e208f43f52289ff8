package domain

import (
	"context"
	"time"
)

// EmployeeProfile is the aggregate root. Every child record (skill, education,
// certification, project) inherits its write authorization from OwnerID.
type EmployeeProfile struct {
	ID       int64       `json:"id"`
	OwnerID  int64       `json:"owner_id"`
	Owner    UserSummary `json:"owner"`
	Bio      *string     `json:"bio"`
	Position string      `json:"position"`
	JoinedAt time.Time   `json:"joined_at"`
}

// ProfileSummary is the list projection: owner summary, scalar fields and child
// counts only, never nested children.
type ProfileSummary struct {
	ID            int64       `json:"id"`
	Owner         UserSummary `json:"owner"`
	Bio           *string     `json:"bio"`
	Position      string      `json:"position"`
	JoinedAt      time.Time   `json:"joined_at"`
	SkillsCount   int64       `json:"skills_count"`
	ProjectsCount int64       `json:"projects_count"`
}

// ProfileDetail is the retrieve projection: all children serialized inline.
type ProfileDetail struct {
	ID             int64           `json:"id"`
	Owner          UserSummary     `json:"owner"`
	Bio            *string         `json:"bio"`
	Position       string          `json:"position"`
	JoinedAt       time.Time       `json:"joined_at"`
	Skills         []Skill         `json:"skills"`
	Education      []Education     `json:"education"`
	Certifications []Certification `json:"certifications"`
	Projects       []Project       `json:"projects"`
}

// ProfilePatch is the write projection. Owner and joined_at are server-assigned
// and never client-writable. A nil field means "not supplied" in partial mode.
type ProfilePatch struct {
	Bio      *string `json:"bio"`
	Position *string `json:"position" validate:"omitempty,max=100"`
}

type EmployeeProfileRepository interface {
	Fetch(ctx context.Context) ([]ProfileSummary, error)
	GetByID(ctx context.Context, id int64) (*EmployeeProfile, error)
	GetByOwnerID(ctx context.Context, ownerID int64) (*EmployeeProfile, error)
	Create(ctx context.Context, profile *EmployeeProfile) error
	Update(ctx context.Context, profile *EmployeeProfile) error
	Delete(ctx context.Context, id int64) error
}

type ProfileUsecase interface {
	List(ctx context.Context) ([]ProfileSummary, error)
	Get(ctx context.Context, id int64) (*ProfileDetail, error)
	Create(ctx context.Context, callerID int64, patch ProfilePatch) (*ProfileDetail, error)
	Update(ctx context.Context, callerID, id int64, patch ProfilePatch, partial bool) (*ProfileDetail, error)
	Delete(ctx context.Context, callerID, id int64) error
	GetMine(ctx context.Context, callerID int64) (*ProfileDetail, error)
	ListSkills(ctx context.Context, profileID int64) ([]Skill, error)
	ListProjects(ctx context.Context, profileID int64) ([]Project, error)
}
