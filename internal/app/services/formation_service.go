package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mchellal/studia/internal/app/models"
	"github.com/mchellal/studia/internal/app/models/dto"
	"github.com/mchellal/studia/internal/pkg/apperrors"
)

// FormationService handles formation-related operations
type FormationService struct {
	formations  FormationStore
	departments DepartmentReader
}

// NewFormationService creates a new formation service instance
func NewFormationService(formations FormationStore, departments DepartmentReader) *FormationService {
	return &FormationService{
		formations:  formations,
		departments: departments,
	}
}

// validateFormation validates formation data before database operations
func (s *FormationService) validateFormation(ctx context.Context, title string, departmentID int64) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}

	if _, err := s.departments.GetByID(ctx, departmentID); err != nil {
		if errors.Is(err, apperrors.ErrDepartmentNotFound) {
			return apperrors.ErrDepartmentNotFound
		}
		return fmt.Errorf("error checking department: %w", err)
	}

	return nil
}

// CreateFormation creates a new formation
func (s *FormationService) CreateFormation(ctx context.Context, req *dto.CreateFormationRequest) (*models.Formation, error) {
	if err := s.validateFormation(ctx, req.Title, req.DepartmentID); err != nil {
		return nil, err
	}

	formation := &models.Formation{
		Title:        req.Title,
		Description:  req.Description,
		DepartmentID: req.DepartmentID,
	}

	if err := s.formations.Create(ctx, formation); err != nil {
		return nil, err
	}

	return formation, nil
}

// GetFormationByID retrieves a formation by ID
func (s *FormationService) GetFormationByID(ctx context.Context, id int64) (*models.Formation, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid formation ID", apperrors.ErrValidationFailed)
	}

	return s.formations.GetByID(ctx, id)
}

// GetFormations retrieves formations with skip/limit pagination
func (s *FormationService) GetFormations(ctx context.Context, skip, limit int) ([]*models.Formation, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	return s.formations.GetAll(ctx, skip, limit)
}

// UpdateFormation updates an existing formation
func (s *FormationService) UpdateFormation(ctx context.Context, id int64, req *dto.UpdateFormationRequest) (*models.Formation, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid formation ID", apperrors.ErrValidationFailed)
	}
	if err := s.validateFormation(ctx, req.Title, req.DepartmentID); err != nil {
		return nil, err
	}

	formation := &models.Formation{
		ID:           id,
		Title:        req.Title,
		Description:  req.Description,
		DepartmentID: req.DepartmentID,
	}

	if err := s.formations.Update(ctx, formation); err != nil {
		return nil, err
	}

	return formation, nil
}

// DeleteFormation deletes a formation by ID
func (s *FormationService) DeleteFormation(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid formation ID", apperrors.ErrValidationFailed)
	}

	return s.formations.Delete(ctx, id)
}
