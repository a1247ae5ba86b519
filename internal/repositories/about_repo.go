package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Hereaj/portfolio-api/internal/database"
	"github.com/Hereaj/portfolio-api/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AboutRepository manages the singleton about_info row.
type AboutRepository struct {
	db   *database.DB
	pool *pgxpool.Pool
}

func NewAboutRepository(db *database.DB) *AboutRepository {
	return &AboutRepository{db: db, pool: db.Pool}
}

func (r *AboutRepository) Get(ctx context.Context) (*models.About, error) {
	query := `
		SELECT id, content, created_at, updated_at
		FROM about_info ORDER BY id DESC LIMIT 1
	`

	var about models.About
	err := r.pool.QueryRow(ctx, query).Scan(
		&about.ID, &about.Content, &about.CreatedAt, &about.UpdatedAt,
	)
	if err != nil {
		return nil, database.MapPostgresError(err)
	}

	return &about, nil
}

// Upsert follows the same locked read-then-write contract as
// HeroRepository.Upsert: exactly one logical row, last writer wins.
func (r *AboutRepository) Upsert(ctx context.Context, about *models.About) error {
	err := r.db.WithTransaction(ctx, func(tx pgx.Tx) error {
		var id int
		err := tx.QueryRow(ctx,
			`SELECT id FROM about_info ORDER BY id DESC LIMIT 1 FOR UPDATE`,
		).Scan(&id)

		if errors.Is(err, pgx.ErrNoRows) {
			_, err = tx.Exec(ctx,
				`INSERT INTO about_info (content) VALUES ($1)`,
				about.Content,
			)
			return err
		}
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `
			UPDATE about_info SET content = $1, updated_at = CURRENT_TIMESTAMP
			WHERE id = $2
		`, about.Content, id)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to upsert about: %w", database.MapPostgresError(err))
	}

	return nil
}
