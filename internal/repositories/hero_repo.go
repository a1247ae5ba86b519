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

// HeroRepository manages the singleton hero_info row.
type HeroRepository struct {
	db   *database.DB
	pool *pgxpool.Pool
}

func NewHeroRepository(db *database.DB) *HeroRepository {
	return &HeroRepository{db: db, pool: db.Pool}
}

// Get returns the current hero block, or ErrNotFound when the table is empty.
func (r *HeroRepository) Get(ctx context.Context) (*models.Hero, error) {
	query := `
		SELECT id, name, title, description, created_at, updated_at
		FROM hero_info ORDER BY id DESC LIMIT 1
	`

	var hero models.Hero
	err := r.pool.QueryRow(ctx, query).Scan(
		&hero.ID, &hero.Name, &hero.Title, &hero.Description,
		&hero.CreatedAt, &hero.UpdatedAt,
	)
	if err != nil {
		return nil, database.MapPostgresError(err)
	}

	return &hero, nil
}

// Upsert updates the latest hero row in place, inserting a fresh one when
// none exists. The lookup and the write share one transaction with the
// candidate row locked, so two near-simultaneous updates cannot both take
// the insert path and leave duplicate singletons; the later writer wins.
func (r *HeroRepository) Upsert(ctx context.Context, hero *models.Hero) error {
	err := r.db.WithTransaction(ctx, func(tx pgx.Tx) error {
		var id int
		err := tx.QueryRow(ctx,
			`SELECT id FROM hero_info ORDER BY id DESC LIMIT 1 FOR UPDATE`,
		).Scan(&id)

		if errors.Is(err, pgx.ErrNoRows) {
			_, err = tx.Exec(ctx,
				`INSERT INTO hero_info (name, title, description) VALUES ($1, $2, $3)`,
				hero.Name, hero.Title, hero.Description,
			)
			return err
		}
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `
			UPDATE hero_info SET name = $1, title = $2, description = $3, updated_at = CURRENT_TIMESTAMP
			WHERE id = $4
		`, hero.Name, hero.Title, hero.Description, id)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to upsert hero: %w", database.MapPostgresError(err))
	}

	return nil
}
