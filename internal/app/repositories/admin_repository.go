package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mchellal/studia/internal/app/models"
	"github.com/mchellal/studia/internal/pkg/apperrors"
	"github.com/mchellal/studia/internal/pkg/dberrors"
)

// AdminRepository handles database operations for administrators
type AdminRepository struct {
	db *pgxpool.Pool
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{
		db: db,
	}
}

// Create inserts a new admin and returns its generated ID
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO admins (email, hashed_password, full_name)
		VALUES ($1, $2, $3)
		RETURNING id`,
		admin.Email, admin.HashedPassword, admin.FullName).Scan(&id)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		return 0, fmt.Errorf("error creating admin: %w", err)
	}

	admin.ID = id
	return id, nil
}

// GetByEmail retrieves an admin by email
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	admin := &models.Admin{}
	err := r.db.QueryRow(ctx, `
		SELECT id, email, hashed_password, full_name
		FROM admins
		WHERE email = $1`,
		email).Scan(&admin.ID, &admin.Email, &admin.HashedPassword, &admin.FullName)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, fmt.Errorf("error retrieving admin: %w", err)
	}

	return admin, nil
}

// EmailExists checks if an admin with the given email exists
func (r *AdminRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM admins WHERE email = $1)`,
		email).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking admin email: %w", err)
	}

	return exists, nil
}
