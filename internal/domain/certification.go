package domain

import (
	"context"
	"time"
)

type Certification struct {
	ID             int64      `json:"id"`
	ProfileID      int64      `json:"profile" validate:"required"`
	Title          string     `json:"title" validate:"required,max=200"`
	Issuer         string     `json:"issuer" validate:"required,max=200"`
	IssuedDate     time.Time  `json:"issued_date" validate:"required"`
	ExpiryDate     *time.Time `json:"expiry_date"`
	ProfileOwnerID int64      `json:"-"`
}

type CertificationPatch struct {
	Title      *string    `json:"title" validate:"omitempty,max=200"`
	Issuer     *string    `json:"issuer" validate:"omitempty,max=200"`
	IssuedDate *time.Time `json:"issued_date"`
	ExpiryDate *time.Time `json:"expiry_date"`
}

type CertificationRepository interface {
	Fetch(ctx context.Context, profileID *int64) ([]Certification, error)
	GetByID(ctx context.Context, id int64) (*Certification, error)
	Create(ctx context.Context, certification *Certification) error
	Update(ctx context.Context, certification *Certification) error
	Delete(ctx context.Context, id int64) error
}

type CertificationUsecase interface {
	List(ctx context.Context, profileID *int64) ([]Certification, error)
	Get(ctx context.Context, id int64) (*Certification, error)
	Create(ctx context.Context, callerID int64, certification *Certification) error
	Update(ctx context.Context, callerID, id int64, patch CertificationPatch, partial bool) (*Certification, error)
	Delete(ctx context.Context, callerID, id int64) error
	ListMine(ctx context.Context, callerID int64) ([]Certification, error)
}
