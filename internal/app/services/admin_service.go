package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mchellal/studia/internal/app/models"
	"github.com/mchellal/studia/internal/app/models/dto"
	"github.com/mchellal/studia/internal/pkg/apperrors"
	"github.com/mchellal/studia/internal/pkg/auth"
)

// AdminService handles administrator lifecycle operations
type AdminService struct {
	admins AdminStore
	logger zerolog.Logger
}

// NewAdminService creates a new AdminService
func NewAdminService(admins AdminStore, logger zerolog.Logger) *AdminService {
	return &AdminService{
		admins: admins,
		logger: logger,
	}
}

// CreateAdmin registers a new administrator
func (s *AdminService) CreateAdmin(ctx context.Context, req *dto.CreateAdminRequest) (*models.Admin, error) {
	exists, err := s.admins.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking if email exists: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	admin := &models.Admin{
		Email:          req.Email,
		HashedPassword: hashedPassword,
		FullName:       req.FullName,
	}

	if _, err := s.admins.Create(ctx, admin); err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", admin.Email).Int64("adminId", admin.ID).Msg("Admin created")

	return admin, nil
}
