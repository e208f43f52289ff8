package postgres

import (
	"context"
	"errors"

	"go-profile-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type skillRepo struct {
	db *pgxpool.Pool
}

func NewSkillRepository(db *pgxpool.Pool) domain.SkillRepository {
	return &skillRepo{db: db}
}

func (r *skillRepo) Fetch(ctx context.Context, profileID *int64) ([]domain.Skill, error) {
	query := `
		SELECT s.id, s.profile_id, s.name, s.proficiency, p.owner_id
		FROM skills s
		JOIN employee_profiles p ON p.id = s.profile_id`
	args := []any{}
	if profileID != nil {
		query += ` WHERE s.profile_id = $1`
		args = append(args, *profileID)
	}
	query += ` ORDER BY s.id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	skills := []domain.Skill{}
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.ID, &s.ProfileID, &s.Name, &s.Proficiency, &s.ProfileOwnerID); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

func (r *skillRepo) GetByID(ctx context.Context, id int64) (*domain.Skill, error) {
	query := `
		SELECT s.id, s.profile_id, s.name, s.proficiency, p.owner_id
		FROM skills s
		JOIN employee_profiles p ON p.id = s.profile_id
		WHERE s.id = $1`

	var s domain.Skill
	err := r.db.QueryRow(ctx, query, id).Scan(&s.ID, &s.ProfileID, &s.Name, &s.Proficiency, &s.ProfileOwnerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *skillRepo) Create(ctx context.Context, skill *domain.Skill) error {
	query := `
		INSERT INTO skills (profile_id, name, proficiency)
		VALUES ($1, $2, $3)
		RETURNING id`

	return r.db.QueryRow(ctx, query, skill.ProfileID, skill.Name, skill.Proficiency).Scan(&skill.ID)
}

func (r *skillRepo) Update(ctx context.Context, skill *domain.Skill) error {
	query := `
		UPDATE skills
		SET name = $1, proficiency = $2
		WHERE id = $3`

	tag, err := r.db.Exec(ctx, query, skill.Name, skill.Proficiency, skill.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *skillRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
