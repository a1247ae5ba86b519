package repositories

import (
	"context"
	"fmt"

	"github.com/Hereaj/portfolio-api/internal/database"
	"github.com/Hereaj/portfolio-api/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StatRepository struct {
	pool *pgxpool.Pool
}

func NewStatRepository(db *database.DB) *StatRepository {
	return &StatRepository{pool: db.Pool}
}

func (r *StatRepository) List(ctx context.Context) ([]*models.Stat, error) {
	query := `
		SELECT id, number, label, sort_order, created_at
		FROM hero_stats ORDER BY sort_order
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query stats: %w", err)
	}
	defer rows.Close()

	stats := make([]*models.Stat, 0)
	for rows.Next() {
		var stat models.Stat
		if err := rows.Scan(&stat.ID, &stat.Number, &stat.Label, &stat.SortOrder, &stat.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan stat: %w", err)
		}
		stats = append(stats, &stat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return stats, nil
}

func (r *StatRepository) Create(ctx context.Context, stat *models.Stat) (int, error) {
	query := `
		INSERT INTO hero_stats (number, label, sort_order)
		VALUES ($1, $2, $3) RETURNING id
	`

	var id int
	err := r.pool.QueryRow(ctx, query, stat.Number, stat.Label, stat.SortOrder).Scan(&id)
	if err != nil {
		return 0, database.MapPostgresError(err)
	}

	return id, nil
}

// Update fails with ErrNotFound when no row has the given id; it never
// silently no-ops and never inserts.
func (r *StatRepository) Update(ctx context.Context, id int, stat *models.Stat) error {
	query := `
		UPDATE hero_stats SET number = $1, label = $2, sort_order = $3
		WHERE id = $4
	`

	result, err := r.pool.Exec(ctx, query, stat.Number, stat.Label, stat.SortOrder, id)
	if err != nil {
		return database.MapPostgresError(err)
	}

	if result.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}

// Delete is idempotent: removing an id that does not exist is a success.
func (r *StatRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM hero_stats WHERE id = $1`, id)
	if err != nil {
		return database.MapPostgresError(err)
	}
	return nil
}
