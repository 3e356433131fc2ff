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

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// Create inserts a new student and returns its generated ID.
// The unique index on email backs the duplicate check under concurrency.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO students (email, hashed_password, full_name, age, department_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		student.Email, student.HashedPassword, student.FullName, student.Age, student.DepartmentID).Scan(&id)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		return 0, fmt.Errorf("error creating student: %w", err)
	}

	student.ID = id
	return id, nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	student := &models.Student{}
	err := r.db.QueryRow(ctx, `
		SELECT id, email, hashed_password, full_name, age, department_id
		FROM students
		WHERE id = $1`,
		id).Scan(
		&student.ID, &student.Email, &student.HashedPassword,
		&student.FullName, &student.Age, &student.DepartmentID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetByEmail retrieves a student by email
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	student := &models.Student{}
	err := r.db.QueryRow(ctx, `
		SELECT id, email, hashed_password, full_name, age, department_id
		FROM students
		WHERE email = $1`,
		email).Scan(
		&student.ID, &student.Email, &student.HashedPassword,
		&student.FullName, &student.Age, &student.DepartmentID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// EmailExists checks if a student with the given email exists
func (r *StudentRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE email = $1)`,
		email).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking student email: %w", err)
	}

	return exists, nil
}

// GetAll retrieves students with skip/limit pagination
func (r *StudentRepository) GetAll(ctx context.Context, skip, limit int) ([]*models.Student, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, email, hashed_password, full_name, age, department_id
		FROM students
		ORDER BY id
		OFFSET $1 LIMIT $2`,
		skip, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student := &models.Student{}
		if err := rows.Scan(
			&student.ID, &student.Email, &student.HashedPassword,
			&student.FullName, &student.Age, &student.DepartmentID,
		); err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// Delete removes a student by ID. Enrollment links are removed by cascade.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}
