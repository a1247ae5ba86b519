package repositories

import (
	"context"
	"fmt"

	"github.com/Hereaj/portfolio-api/internal/database"
	"github.com/Hereaj/portfolio-api/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SkillRepository struct {
	pool *pgxpool.Pool
}

func NewSkillRepository(db *database.DB) *SkillRepository {
	return &SkillRepository{pool: db.Pool}
}

// List returns skills grouped for display: category first, then the
// explicit sort order within it.
func (r *SkillRepository) List(ctx context.Context) ([]*models.Skill, error) {
	query := `
		SELECT id, category, name, level, sort_order, created_at
		FROM skills ORDER BY category, sort_order
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query skills: %w", err)
	}
	defer rows.Close()

	skills := make([]*models.Skill, 0)
	for rows.Next() {
		var skill models.Skill
		if err := rows.Scan(&skill.ID, &skill.Category, &skill.Name, &skill.Level, &skill.SortOrder, &skill.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, &skill)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return skills, nil
}

func (r *SkillRepository) Create(ctx context.Context, skill *models.Skill) (int, error) {
	query := `
		INSERT INTO skills (category, name, level, sort_order)
		VALUES ($1, $2, $3, $4) RETURNING id
	`

	var id int
	err := r.pool.QueryRow(ctx, query, skill.Category, skill.Name, skill.Level, skill.SortOrder).Scan(&id)
	if err != nil {
		return 0, database.MapPostgresError(err)
	}

	return id, nil
}

func (r *SkillRepository) Update(ctx context.Context, id int, skill *models.Skill) error {
	query := `
		UPDATE skills SET category = $1, name = $2, level = $3, sort_order = $4
		WHERE id = $5
	`

	result, err := r.pool.Exec(ctx, query, skill.Category, skill.Name, skill.Level, skill.SortOrder, id)
	if err != nil {
		return database.MapPostgresError(err)
	}

	if result.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}

func (r *SkillRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return database.MapPostgresError(err)
	}
	return nil
}
