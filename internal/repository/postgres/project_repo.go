package postgres

import (
	"context"
	"errors"

	"go-profile-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type projectRepo struct {
	db *pgxpool.Pool
}

func NewProjectRepository(db *pgxpool.Pool) domain.ProjectRepository {
	return &projectRepo{db: db}
}

func (r *projectRepo) Fetch(ctx context.Context, profileID *int64) ([]domain.Project, error) {
	query := `
		SELECT pr.id, pr.profile_id, pr.title, pr.description, pr.technologies_used,
		       pr.project_url, pr.image, pr.start_date, pr.end_date, p.owner_id
		FROM projects pr
		JOIN employee_profiles p ON p.id = pr.profile_id`
	args := []any{}
	if profileID != nil {
		query += ` WHERE pr.profile_id = $1`
		args = append(args, *profileID)
	}
	query += ` ORDER BY pr.id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(
			&p.ID, &p.ProfileID, &p.Title, &p.Description, pq.Array(&p.TechnologiesUsed),
			&p.ProjectURL, &p.Image, &p.StartDate, &p.EndDate, &p.ProfileOwnerID,
		); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *projectRepo) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	query := `
		SELECT pr.id, pr.profile_id, pr.title, pr.description, pr.technologies_used,
		       pr.project_url, pr.image, pr.start_date, pr.end_date, p.owner_id
		FROM projects pr
		JOIN employee_profiles p ON p.id = pr.profile_id
		WHERE pr.id = $1`

	var p domain.Project
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.ProfileID, &p.Title, &p.Description, pq.Array(&p.TechnologiesUsed),
		&p.ProjectURL, &p.Image, &p.StartDate, &p.EndDate, &p.ProfileOwnerID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *projectRepo) Create(ctx context.Context, project *domain.Project) error {
	query := `
		INSERT INTO projects (profile_id, title, description, technologies_used,
		                      project_url, image, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	return r.db.QueryRow(ctx, query,
		project.ProfileID, project.Title, project.Description, pq.Array(project.TechnologiesUsed),
		project.ProjectURL, project.Image, project.StartDate, project.EndDate,
	).Scan(&project.ID)
}

func (r *projectRepo) Update(ctx context.Context, project *domain.Project) error {
	query := `
		UPDATE projects
		SET title = $1, description = $2, technologies_used = $3,
		    project_url = $4, image = $5, start_date = $6, end_date = $7
		WHERE id = $8`

	tag, err := r.db.Exec(ctx, query,
		project.Title, project.Description, pq.Array(project.TechnologiesUsed),
		project.ProjectURL, project.Image, project.StartDate, project.EndDate, project.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *projectRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
