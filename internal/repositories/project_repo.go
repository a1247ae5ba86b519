package repositories

import (
	"context"
	"fmt"

	"github.com/Hereaj/portfolio-api/internal/database"
	"github.com/Hereaj/portfolio-api/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProjectRepository struct {
	pool *pgxpool.Pool
}

func NewProjectRepository(db *database.DB) *ProjectRepository {
	return &ProjectRepository{pool: db.Pool}
}

// rowScanner interface for scanning project rows (single row or rows)
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanProjectRow handles nullable columns and the legacy technologies
// representations via models.DecodeTechnologies.
func scanProjectRow(scanner rowScanner) (*models.Project, error) {
	var project models.Project
	var technologies []byte
	var link, linkText *string

	err := scanner.Scan(
		&project.ID, &project.Category, &project.Title, &project.Description,
		&technologies, &link, &linkText, &project.IsCurrentStudy,
		&project.SortOrder, &project.CreatedAt, &project.UpdatedAt,
	)
	if err != nil {
		return nil, database.MapPostgresError(err)
	}

	project.Technologies = models.DecodeTechnologies(technologies)
	if link != nil {
		project.Link = *link
	}
	if linkText != nil {
		project.LinkText = *linkText
	}

	return &project, nil
}

func scanProjectRows(rows pgx.Rows) ([]*models.Project, error) {
	defer rows.Close()

	projects := make([]*models.Project, 0)

	for rows.Next() {
		project, err := scanProjectRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return projects, nil
}

func (r *ProjectRepository) List(ctx context.Context) ([]*models.Project, error) {
	query := `
		SELECT id, category, title, description, technologies, link, link_text, is_current_study, sort_order, created_at, updated_at
		FROM projects ORDER BY sort_order
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}

	return scanProjectRows(rows)
}

func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) (int, error) {
	technologies, err := models.EncodeTechnologies(project.Technologies)
	if err != nil {
		return 0, fmt.Errorf("failed to encode technologies: %w", err)
	}

	query := `
		INSERT INTO projects (category, title, description, technologies, link, link_text, is_current_study, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id
	`

	var id int
	err = r.pool.QueryRow(ctx, query,
		project.Category, project.Title, project.Description, technologies,
		project.Link, project.LinkText, project.IsCurrentStudy, project.SortOrder,
	).Scan(&id)
	if err != nil {
		return 0, database.MapPostgresError(err)
	}

	return id, nil
}

func (r *ProjectRepository) Update(ctx context.Context, id int, project *models.Project) error {
	technologies, err := models.EncodeTechnologies(project.Technologies)
	if err != nil {
		return fmt.Errorf("failed to encode technologies: %w", err)
	}

	query := `
		UPDATE projects
		SET category = $1, title = $2, description = $3, technologies = $4, link = $5, link_text = $6, is_current_study = $7, sort_order = $8, updated_at = CURRENT_TIMESTAMP
		WHERE id = $9
	`

	result, err := r.pool.Exec(ctx, query,
		project.Category, project.Title, project.Description, technologies,
		project.Link, project.LinkText, project.IsCurrentStudy, project.SortOrder, id,
	)
	if err != nil {
		return database.MapPostgresError(err)
	}

	if result.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return database.MapPostgresError(err)
	}
	return nil
}
