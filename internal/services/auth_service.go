package services

import (
	"net/http"

	"lawlink_backend/internal/auth"
	"lawlink_backend/internal/models"
	"lawlink_backend/internal/repositories"
	"lawlink_backend/internal/services/dto"
	"lawlink_backend/pkg/apperrors"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type authService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	role := models.UserRole(req.Role)
	if role == models.UserRoleLawyer && req.ConsultationRate <= 0 {
		return nil, apperrors.NewBadRequestError("Lawyers must set a positive consultation rate")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:             req.Name,
		Email:            req.Email,
		PasswordHash:     hash,
		Role:             role,
		Phone:            req.Phone,
		ConsultationRate: req.ConsultationRate,
		OfficeAddress:    req.OfficeAddress,
	}

	err = s.userRepo.Create(user)
	switch {
	case apperrors.Is(err, repositories.ErrUserAlreadyExists):
		return nil, apperrors.New(apperrors.CodeAlreadyExists, "user", "Email is already registered", http.StatusConflict)
	case err != nil:
		return nil, apperrors.InternalError(err)
	}

	return s.buildAuthResponse(user)
}

func (s *authService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		// Same response for unknown email and wrong password.
		return nil, invalidCredentials()
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, invalidCredentials()
	}

	return s.buildAuthResponse(user)
}

func (s *authService) buildAuthResponse(user *models.User) (*dto.AuthResponse, error) {
	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		Token: token,
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}, nil
}

func invalidCredentials() *apperrors.AppError {
	return apperrors.New(apperrors.CodeInvalidCredentials, "auth", "Invalid email or password", http.StatusUnauthorized)
}
