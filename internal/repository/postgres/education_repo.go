package postgres

import (
	"context"
	"errors"

	"go-profile-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type educationRepo struct {
	db *pgxpool.Pool
}

func NewEducationRepository(db *pgxpool.Pool) domain.EducationRepository {
	return &educationRepo{db: db}
}

func (r *educationRepo) Fetch(ctx context.Context, profileID *int64) ([]domain.Education, error) {
	query := `
		SELECT e.id, e.profile_id, e.institution, e.degree, e.start_year, e.end_year, p.owner_id
		FROM education e
		JOIN employee_profiles p ON p.id = e.profile_id`
	args := []any{}
	if profileID != nil {
		query += ` WHERE e.profile_id = $1`
		args = append(args, *profileID)
	}
	query += ` ORDER BY e.id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []domain.Education{}
	for rows.Next() {
		var e domain.Education
		if err := rows.Scan(&e.ID, &e.ProfileID, &e.Institution, &e.Degree, &e.StartYear, &e.EndYear, &e.ProfileOwnerID); err != nil {
			return nil, err
		}
		records = append(records, e)
	}
	return records, rows.Err()
}

func (r *educationRepo) GetByID(ctx context.Context, id int64) (*domain.Education, error) {
	query := `
		SELECT e.id, e.profile_id, e.institution, e.degree, e.start_year, e.end_year, p.owner_id
		FROM education e
		JOIN employee_profiles p ON p.id = e.profile_id
		WHERE e.id = $1`

	var e domain.Education
	err := r.db.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.ProfileID, &e.Institution, &e.Degree, &e.StartYear, &e.EndYear, &e.ProfileOwnerID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *educationRepo) Create(ctx context.Context, education *domain.Education) error {
	query := `
		INSERT INTO education (profile_id, institution, degree, start_year, end_year)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	return r.db.QueryRow(ctx, query,
		education.ProfileID, education.Institution, education.Degree,
		education.StartYear, education.EndYear,
	).Scan(&education.ID)
}

func (r *educationRepo) Update(ctx context.Context, education *domain.Education) error {
	query := `
		UPDATE education
		SET institution = $1, degree = $2, start_year = $3, end_year = $4
		WHERE id = $5`

	tag, err := r.db.Exec(ctx, query,
		education.Institution, education.Degree, education.StartYear, education.EndYear, education.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *educationRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM education WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
