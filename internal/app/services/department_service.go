package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/mchellal/studia/internal/app/models"
	"github.com/mchellal/studia/internal/app/models/dto"
	"github.com/mchellal/studia/internal/pkg/apperrors"
)

// DepartmentService handles department-related operations
type DepartmentService struct {
	departments DepartmentStore
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(departments DepartmentStore) *DepartmentService {
	return &DepartmentService{
		departments: departments,
	}
}

// validateDepartment validates department data before database operations
func (s *DepartmentService) validateDepartment(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	return nil
}

// CreateDepartment creates a new department
func (s *DepartmentService) CreateDepartment(ctx context.Context, req *dto.CreateDepartmentRequest) (*models.Department, error) {
	if err := s.validateDepartment(req.Name); err != nil {
		return nil, err
	}

	department := &models.Department{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.departments.Create(ctx, department); err != nil {
		return nil, err
	}

	return department, nil
}

// GetDepartmentByID retrieves a department by ID
func (s *DepartmentService) GetDepartmentByID(ctx context.Context, id int64) (*models.Department, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid department ID", apperrors.ErrValidationFailed)
	}

	return s.departments.GetByID(ctx, id)
}

// GetDepartments retrieves departments with skip/limit pagination
func (s *DepartmentService) GetDepartments(ctx context.Context, skip, limit int) ([]*models.Department, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	return s.departments.GetAll(ctx, skip, limit)
}

// UpdateDepartment updates an existing department
func (s *DepartmentService) UpdateDepartment(ctx context.Context, id int64, req *dto.UpdateDepartmentRequest) (*models.Department, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid department ID", apperrors.ErrValidationFailed)
	}
	if err := s.validateDepartment(req.Name); err != nil {
		return nil, err
	}

	department := &models.Department{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.departments.Update(ctx, department); err != nil {
		return nil, err
	}

	return department, nil
}

// DeleteDepartment deletes a department by ID
func (s *DepartmentService) DeleteDepartment(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid department ID", apperrors.ErrValidationFailed)
	}

	return s.departments.Delete(ctx, id)
}
