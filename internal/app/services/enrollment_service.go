package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mchellal/studia/internal/app/models"
	"github.com/mchellal/studia/internal/pkg/apperrors"
)

// EnrollmentService enforces the student <-> formation relationship
// invariant: both endpoints must exist and the relation is a set, so
// enrolling twice is a no-op.
type EnrollmentService struct {
	enrollments EnrollmentStore
	formations  FormationReader
	logger      zerolog.Logger
}

// NewEnrollmentService creates a new EnrollmentService
func NewEnrollmentService(enrollments EnrollmentStore, formations FormationReader, logger zerolog.Logger) *EnrollmentService {
	return &EnrollmentService{
		enrollments: enrollments,
		formations:  formations,
		logger:      logger,
	}
}

// Enroll links a student to a formation
func (s *EnrollmentService) Enroll(ctx context.Context, studentID, formationID int64) error {
	if studentID <= 0 || formationID <= 0 {
		return fmt.Errorf("%w: invalid enrollment target", apperrors.ErrValidationFailed)
	}

	if err := s.enrollments.Enroll(ctx, studentID, formationID); err != nil {
		return err
	}

	s.logger.Info().
		Int64("studentId", studentID).
		Int64("formationId", formationID).
		Msg("Student enrolled in formation")

	return nil
}

// ListStudents returns the students enrolled in a formation
func (s *EnrollmentService) ListStudents(ctx context.Context, formationID int64) ([]*models.Student, error) {
	if formationID <= 0 {
		return nil, fmt.Errorf("%w: invalid formation ID", apperrors.ErrValidationFailed)
	}

	if _, err := s.formations.GetByID(ctx, formationID); err != nil {
		return nil, err
	}

	return s.enrollments.ListStudentsByFormation(ctx, formationID)
}
