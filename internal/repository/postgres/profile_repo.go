package postgres

import (
	"context"
	"errors"
	"time"

	"go-profile-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type profileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.EmployeeProfileRepository {
	return &profileRepo{db: db}
}

// Fetch returns the lightweight list projection: owner summary plus child counts,
// no nested detail.
func (r *profileRepo) Fetch(ctx context.Context) ([]domain.ProfileSummary, error) {
	query := `
		SELECT p.id, p.bio, p.position, p.joined_at,
		       u.id, u.username, u.first_name, u.last_name,
		       (SELECT count(*) FROM skills s WHERE s.profile_id = p.id),
		       (SELECT count(*) FROM projects pr WHERE pr.profile_id = p.id)
		FROM employee_profiles p
		JOIN users u ON u.id = p.owner_id
		ORDER BY p.id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := []domain.ProfileSummary{}
	for rows.Next() {
		var s domain.ProfileSummary
		if err := rows.Scan(
			&s.ID, &s.Bio, &s.Position, &s.JoinedAt,
			&s.Owner.ID, &s.Owner.Username, &s.Owner.FirstName, &s.Owner.LastName,
			&s.SkillsCount, &s.ProjectsCount,
		); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func (r *profileRepo) GetByID(ctx context.Context, id int64) (*domain.EmployeeProfile, error) {
	return r.getBy(ctx, "p.id = $1", id)
}

func (r *profileRepo) GetByOwnerID(ctx context.Context, ownerID int64) (*domain.EmployeeProfile, error) {
	return r.getBy(ctx, "p.owner_id = $1", ownerID)
}

func (r *profileRepo) getBy(ctx context.Context, cond string, arg any) (*domain.EmployeeProfile, error) {
	query := `
		SELECT p.id, p.owner_id, p.bio, p.position, p.joined_at,
		       u.id, u.username, u.first_name, u.last_name
		FROM employee_profiles p
		JOIN users u ON u.id = p.owner_id
		WHERE ` + cond

	var p domain.EmployeeProfile
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&p.ID, &p.OwnerID, &p.Bio, &p.Position, &p.JoinedAt,
		&p.Owner.ID, &p.Owner.Username, &p.Owner.FirstName, &p.Owner.LastName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *profileRepo) Create(ctx context.Context, profile *domain.EmployeeProfile) error {
	query := `
		INSERT INTO employee_profiles (owner_id, bio, position, joined_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	profile.JoinedAt = time.Now()
	err := r.db.QueryRow(ctx, query,
		profile.OwnerID, profile.Bio, profile.Position, profile.JoinedAt,
	).Scan(&profile.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrConflict
		}
		return err
	}
	return nil
}

// Update touches only the mutable fields; owner_id and joined_at never change.
func (r *profileRepo) Update(ctx context.Context, profile *domain.EmployeeProfile) error {
	query := `
		UPDATE employee_profiles
		SET bio = $1, position = $2
		WHERE id = $3`

	tag, err := r.db.Exec(ctx, query, profile.Bio, profile.Position, profile.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the profile; children go with it via ON DELETE CASCADE.
func (r *profileRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM employee_profiles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
