package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mchellal/studia/internal/app/models"
	"github.com/mchellal/studia/internal/pkg/apperrors"
)

// EnrollmentRepository manages the student <-> formation relation
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
	}
}

// Enroll links a student to a formation. The insert is conditional on both
// endpoints existing and is a no-op when the pair is already linked, so the
// operation stays atomic under concurrent requests.
func (r *EnrollmentRepository) Enroll(ctx context.Context, studentID, formationID int64) error {
	cmdTag, err := r.db.Exec(ctx, `
		INSERT INTO student_formations (student_id, formation_id)
		SELECT s.id, f.id
		FROM students s, formations f
		WHERE s.id = $1 AND f.id = $2
		ON CONFLICT (student_id, formation_id) DO NOTHING`,
		studentID, formationID)

	if err != nil {
		return fmt.Errorf("error enrolling student: %w", err)
	}

	if cmdTag.RowsAffected() > 0 {
		return nil
	}

	// Nothing inserted: either the pair already exists (idempotent success)
	// or one of the endpoints is missing.
	linked, err := r.IsEnrolled(ctx, studentID, formationID)
	if err != nil {
		return err
	}
	if linked {
		return nil
	}

	var studentExists bool
	if err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE id = $1)`,
		studentID).Scan(&studentExists); err != nil {
		return fmt.Errorf("error checking student existence: %w", err)
	}
	if !studentExists {
		return apperrors.ErrStudentNotFound
	}

	return apperrors.ErrFormationNotFound
}

// IsEnrolled checks whether a student is linked to a formation
func (r *EnrollmentRepository) IsEnrolled(ctx context.Context, studentID, formationID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM student_formations
			WHERE student_id = $1 AND formation_id = $2)`,
		studentID, formationID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking enrollment: %w", err)
	}

	return exists, nil
}

// ListFormationsByStudent returns the formations a student is enrolled in
func (r *EnrollmentRepository) ListFormationsByStudent(ctx context.Context, studentID int64) ([]models.Formation, error) {
	rows, err := r.db.Query(ctx, `
		SELECT f.id, f.title, f.description, f.department_id
		FROM formations f
		JOIN student_formations sf ON sf.formation_id = f.id
		WHERE sf.student_id = $1
		ORDER BY f.id`,
		studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing student formations: %w", err)
	}
	defer rows.Close()

	// Empty set rather than nil so the JSON field renders as []
	formations := make([]models.Formation, 0)
	for rows.Next() {
		var formation models.Formation
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

// ListStudentsByFormation returns the students enrolled in a formation
func (r *EnrollmentRepository) ListStudentsByFormation(ctx context.Context, formationID int64) ([]*models.Student, error) {
	rows, err := r.db.Query(ctx, `
		SELECT s.id, s.email, s.hashed_password, s.full_name, s.age, s.department_id
		FROM students s
		JOIN student_formations sf ON sf.student_id = s.id
		WHERE sf.formation_id = $1
		ORDER BY s.id`,
		formationID)
	if err != nil {
		return nil, fmt.Errorf("error listing formation students: %w", err)
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
