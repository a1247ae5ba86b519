package repositories

import (
	"context"
	"fmt"

	"github.com/Hereaj/portfolio-api/internal/database"
	"github.com/Hereaj/portfolio-api/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EducationRepository struct {
	pool *pgxpool.Pool
}

func NewEducationRepository(db *database.DB) *EducationRepository {
	return &EducationRepository{pool: db.Pool}
}

func (r *EducationRepository) List(ctx context.Context) ([]*models.EducationEntry, error) {
	query := `
		SELECT id, date_range, title, description, sort_order, created_at, updated_at
		FROM education ORDER BY sort_order
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query education entries: %w", err)
	}
	defer rows.Close()

	entries := make([]*models.EducationEntry, 0)
	for rows.Next() {
		var entry models.EducationEntry
		if err := rows.Scan(&entry.ID, &entry.DateRange, &entry.Title, &entry.Description, &entry.SortOrder, &entry.CreatedAt, &entry.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan education entry: %w", err)
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return entries, nil
}

func (r *EducationRepository) Create(ctx context.Context, entry *models.EducationEntry) (int, error) {
	query := `
		INSERT INTO education (date_range, title, description, sort_order)
		VALUES ($1, $2, $3, $4) RETURNING id
	`

	var id int
	err := r.pool.QueryRow(ctx, query, entry.DateRange, entry.Title, entry.Description, entry.SortOrder).Scan(&id)
	if err != nil {
		return 0, database.MapPostgresError(err)
	}

	return id, nil
}

func (r *EducationRepository) Update(ctx context.Context, id int, entry *models.EducationEntry) error {
	query := `
		UPDATE education
		SET date_range = $1, title = $2, description = $3, sort_order = $4, updated_at = CURRENT_TIMESTAMP
		WHERE id = $5
	`

	result, err := r.pool.Exec(ctx, query, entry.DateRange, entry.Title, entry.Description, entry.SortOrder, id)
	if err != nil {
		return database.MapPostgresError(err)
	}

	if result.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}

func (r *EducationRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM education WHERE id = $1`, id)
	if err != nil {
		return database.MapPostgresError(err)
	}
	return nil
}
