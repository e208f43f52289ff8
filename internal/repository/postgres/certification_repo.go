package postgres

import (
	"context"
	"errors"

	"go-profile-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type certificationRepo struct {
	db *pgxpool.Pool
}

func NewCertificationRepository(db *pgxpool.Pool) domain.CertificationRepository {
	return &certificationRepo{db: db}
}

func (r *certificationRepo) Fetch(ctx context.Context, profileID *int64) ([]domain.Certification, error) {
	query := `
		SELECT c.id, c.profile_id, c.title, c.issuer, c.issued_date, c.expiry_date, p.owner_id
		FROM certifications c
		JOIN employee_profiles p ON p.id = c.profile_id`
	args := []any{}
	if profileID != nil {
		query += ` WHERE c.profile_id = $1`
		args = append(args, *profileID)
	}
	query += ` ORDER BY c.id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []domain.Certification{}
	for rows.Next() {
		var c domain.Certification
		if err := rows.Scan(&c.ID, &c.ProfileID, &c.Title, &c.Issuer, &c.IssuedDate, &c.ExpiryDate, &c.ProfileOwnerID); err != nil {
			return nil, err
		}
		records = append(records, c)
	}
	return records, rows.Err()
}

func (r *certificationRepo) GetByID(ctx context.Context, id int64) (*domain.Certification, error) {
	query := `
		SELECT c.id, c.profile_id, c.title, c.issuer, c.issued_date, c.expiry_date, p.owner_id
		FROM certifications c
		JOIN employee_profiles p ON p.id = c.profile_id
		WHERE c.id = $1`

	var c domain.Certification
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.ProfileID, &c.Title, &c.Issuer, &c.IssuedDate, &c.ExpiryDate, &c.ProfileOwnerID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *certificationRepo) Create(ctx context.Context, certification *domain.Certification) error {
	query := `
		INSERT INTO certifications (profile_id, title, issuer, issued_date, expiry_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	return r.db.QueryRow(ctx, query,
		certification.ProfileID, certification.Title, certification.Issuer,
		certification.IssuedDate, certification.ExpiryDate,
	).Scan(&certification.ID)
}

func (r *certificationRepo) Update(ctx context.Context, certification *domain.Certification) error {
	query := `
		UPDATE certifications
		SET title = $1, issuer = $2, issued_date = $3, expiry_date = $4
		WHERE id = $5`

	tag, err := r.db.Exec(ctx, query,
		certification.Title, certification.Issuer,
		certification.IssuedDate, certification.ExpiryDate, certification.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *certificationRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM certifications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
