package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mchellal/studia/internal/app/models"
	"github.com/mchellal/studia/internal/app/models/dto"
	"github.com/mchellal/studia/internal/pkg/apperrors"
	"github.com/mchellal/studia/internal/pkg/auth"
)

// Default pagination bounds for listings
const (
	DefaultListLimit = 100
	MaxListLimit     = 500
)

// StudentService handles student lifecycle operations
type StudentService struct {
	students    StudentStore
	departments DepartmentReader
	enrollments EnrollmentStore
	logger      zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(students StudentStore, departments DepartmentReader, enrollments EnrollmentStore, logger zerolog.Logger) *StudentService {
	return &StudentService{
		students:    students,
		departments: departments,
		enrollments: enrollments,
		logger:      logger,
	}
}

// CreateStudent registers a new student. The password is hashed before
// anything is persisted; the plaintext is never stored.
func (s *StudentService) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	if strings.TrimSpace(req.FullName) == "" {
		return nil, fmt.Errorf("%w: full name cannot be empty", apperrors.ErrValidationFailed)
	}

	exists, err := s.students.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking if email exists: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	if req.DepartmentID != nil {
		if _, err := s.departments.GetByID(ctx, *req.DepartmentID); err != nil {
			if errors.Is(err, apperrors.ErrDepartmentNotFound) {
				return nil, apperrors.ErrDepartmentNotFound
			}
			return nil, fmt.Errorf("error checking department: %w", err)
		}
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	student := &models.Student{
		Email:          req.Email,
		HashedPassword: hashedPassword,
		FullName:       req.FullName,
		Age:            req.Age,
		DepartmentID:   req.DepartmentID,
		Formations:     []models.Formation{},
	}

	if _, err := s.students.Create(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", student.Email).Int64("studentId", student.ID).Msg("Student created")

	return s.hydrate(ctx, student)
}

// GetStudentByID retrieves a student with department and formations populated
func (s *StudentService) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}

	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.hydrate(ctx, student)
}

// GetStudents retrieves students with skip/limit pagination
func (s *StudentService) GetStudents(ctx context.Context, skip, limit int) ([]*models.Student, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	students, err := s.students.GetAll(ctx, skip, limit)
	if err != nil {
		return nil, err
	}

	for _, student := range students {
		if _, err := s.hydrate(ctx, student); err != nil {
			return nil, err
		}
	}

	return students, nil
}

// DeleteStudent removes a student and its enrollment links
func (s *StudentService) DeleteStudent(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}

	if err := s.students.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("studentId", id).Msg("Student deleted")
	return nil
}

// hydrate fills the department and formations relations of a student
func (s *StudentService) hydrate(ctx context.Context, student *models.Student) (*models.Student, error) {
	if student.DepartmentID != nil {
		department, err := s.departments.GetByID(ctx, *student.DepartmentID)
		if err != nil {
			// Department lookups are best effort here; the student record
			// itself is authoritative
			s.logger.Warn().Err(err).Int64("departmentId", *student.DepartmentID).Msg("Could not load department for student")
		} else {
			student.Department = department
		}
	}

	formations, err := s.enrollments.ListFormationsByStudent(ctx, student.ID)
	if err != nil {
		return nil, fmt.Errorf("error loading student formations: %w", err)
	}
	student.Formations = formations

	return student, nil
}
