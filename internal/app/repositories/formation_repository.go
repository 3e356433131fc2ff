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

// FormationRepository handles database operations for formations
type FormationRepository struct {
	db *pgxpool.Pool
}

// NewFormationRepository creates a new formation repository
func NewFormationRepository(db *pgxpool.Pool) *FormationRepository {
	return &FormationRepository{
		db: db,
	}
}

// Create creates a new formation
func (r *FormationRepository) Create(ctx context.Context, formation *models.Formation) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO formations (title, description, department_id)
		VALUES ($1, $2, $3)
		RETURNING id`,
		formation.Title, formation.Description, formation.DepartmentID).Scan(&formation.ID)

	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrDepartmentNotFound
		}
		return fmt.Errorf("error creating formation: %w", err)
	}

	return nil
}

// GetByID retrieves a formation by ID
func (r *FormationRepository) GetByID(ctx context.Context, id int64) (*models.Formation, error) {
	formation := &models.Formation{}
	err := r.db.QueryRow(ctx, `
		SELECT id, title, description, department_id
		FROM formations
		WHERE id = $1`,
		id).Scan(&formation.ID, &formation.Title, &formation.Description, &formation.DepartmentID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFormationNotFound
		}
		return nil, fmt.Errorf("error retrieving formation: %w", err)
	}

	return formation, nil
}

// GetAll retrieves formations with skip/limit pagination
func (r *FormationRepository) GetAll(ctx context.Context, skip, limit int) ([]*models.Formation, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, description, department_id
		FROM formations
		ORDER BY id
		OFFSET $1 LIMIT $2`,
		skip, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing formations: %w", err)
	}
	defer rows.Close()

	var formations []*models.Formation
	for rows.Next() {
		formation := &models.Formation{}
		if err := rows.Scan(
			&formation.ID, &formation.Title, &formation.Description, &formation.DepartmentID,
		); err != nil {
			return nil, err
		}
		formations = append(formations, formation)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return formations, nil
}

// Update updates an existing formation
func (r *FormationRepository) Update(ctx context.Context, formation *models.Formation) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE formations
		SET title = $1, description = $2, department_id = $3
		WHERE id = $4`,
		formation.Title, formation.Description, formation.DepartmentID, formation.ID)

	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrDepartmentNotFound
		}
		return fmt.Errorf("error updating formation: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFormationNotFound
	}

	return nil
}

// Delete deletes a formation by ID. Enrollment links are removed by cascade.
func (r *FormationRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM formations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting formation: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFormationNotFound
	}

	return nil
}
