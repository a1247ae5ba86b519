package repositories

import (
	"context"
	"time"

	"github.com/Hereaj/portfolio-api/internal/database"
	"github.com/Hereaj/portfolio-api/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ContactRepository reads the singleton contact_info row.
type ContactRepository struct {
	pool *pgxpool.Pool
}

func NewContactRepository(db *database.DB) *ContactRepository {
	return &ContactRepository{pool: db.Pool}
}

func (r *ContactRepository) Get(ctx context.Context) (*models.Contact, error) {
	query := `
		SELECT id, email, linkedin, github, location, created_at, updated_at
		FROM contact_info ORDER BY id DESC LIMIT 1
	`

	var contact models.Contact
	var linkedin, github, location *string
	err := r.pool.QueryRow(ctx, query).Scan(
		&contact.ID, &contact.Email, &linkedin, &github, &location,
		&contact.CreatedAt, &contact.UpdatedAt,
	)
	if err != nil {
		return nil, database.MapPostgresError(err)
	}

	if linkedin != nil {
		contact.LinkedIn = *linkedin
	}
	if github != nil {
		contact.GitHub = *github
	}
	if location != nil {
		contact.Location = *location
	}

	return &contact, nil
}

// MessageRepository stores contact-form submissions.
type MessageRepository struct {
	pool *pgxpool.Pool
}

func NewMessageRepository(db *database.DB) *MessageRepository {
	return &MessageRepository{pool: db.Pool}
}

func (r *MessageRepository) Create(ctx context.Context, msg *models.ContactMessage) (*models.ContactMessage, error) {
	msg.ID = uuid.New().String()
	msg.CreatedAt = time.Now()

	query := `
		INSERT INTO contact_messages (id, name, email, subject, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query, msg.ID, msg.Name, msg.Email, msg.Subject, msg.Message, msg.CreatedAt)
	if err != nil {
		return nil, database.MapPostgresError(err)
	}

	return msg, nil
}
