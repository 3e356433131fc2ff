package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mchellal/studia/internal/app/models"
	"github.com/mchellal/studia/internal/app/models/dto"
	"github.com/mchellal/studia/internal/pkg/apperrors"
	"github.com/mchellal/studia/internal/pkg/auth"
)

// AuthService authenticates principals and resolves bearer tokens back to
// live records.
type AuthService struct {
	students StudentReader
	admins   AdminReader
	tokens   *auth.TokenService
	logger   zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(students StudentReader, admins AdminReader, tokens *auth.TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		students: students,
		admins:   admins,
		tokens:   tokens,
		logger:   logger,
	}
}

// AuthenticateStudent verifies student credentials. Unknown email and wrong
// password both yield ErrInvalidCredentials so callers cannot distinguish
// the two.
func (s *AuthService) AuthenticateStudent(ctx context.Context, email, password string) (*models.Student, error) {
	student, err := s.students.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up student: %w", err)
	}

	if !auth.CheckPassword(student.HashedPassword, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return student, nil
}

// AuthenticateAdmin verifies administrator credentials
func (s *AuthService) AuthenticateAdmin(ctx context.Context, email, password string) (*models.Admin, error) {
	admin, err := s.admins.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrAdminNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up admin: %w", err)
	}

	if !auth.CheckPassword(admin.HashedPassword, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return admin, nil
}

// LoginStudent authenticates a student and issues an access token
func (s *AuthService) LoginStudent(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	student, err := s.AuthenticateStudent(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.GenerateToken(student.Email, false)
	if err != nil {
		return nil, fmt.Errorf("token generation error: %w", err)
	}

	s.logger.Info().Str("email", student.Email).Msg("Student logged in")

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}

// LoginAdmin authenticates an admin and issues an access token carrying the
// admin flag
func (s *AuthService) LoginAdmin(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	admin, err := s.AuthenticateAdmin(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.GenerateToken(admin.Email, true)
	if err != nil {
		return nil, fmt.Errorf("token generation error: %w", err)
	}

	s.logger.Info().Str("email", admin.Email).Msg("Admin logged in")

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}

// CurrentStudent resolves a bearer token to the live student record. The
// token only proves identity; attributes always come from a fresh lookup,
// so a deleted account fails resolution even with an unexpired token.
func (s *AuthService) CurrentStudent(ctx context.Context, tokenString string) (*models.Student, error) {
	claims, err := s.validateToken(tokenString)
	if err != nil {
		return nil, err
	}

	student, err := s.students.GetByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error resolving student: %w", err)
	}

	return student, nil
}

// CurrentAdmin resolves a bearer token to the live admin record
func (s *AuthService) CurrentAdmin(ctx context.Context, tokenString string) (*models.Admin, error) {
	claims, err := s.validateToken(tokenString)
	if err != nil {
		return nil, err
	}

	admin, err := s.admins.GetByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, apperrors.ErrAdminNotFound) {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, fmt.Errorf("error resolving admin: %w", err)
	}

	return admin, nil
}

// validateToken maps token codec errors onto the application error taxonomy
func (s *AuthService) validateToken(tokenString string) (*auth.Claims, error) {
	claims, err := s.tokens.ValidateToken(tokenString)
	if err != nil {
		if errors.Is(err, auth.ErrExpiredToken) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrTokenInvalid
	}
	return claims, nil
}
