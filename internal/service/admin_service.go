package service

import (
	"context"
	"errors"
	"time"

	"finwise/internal/dto"
	"finwise/internal/models"
	"finwise/internal/repository"
	"finwise/pkg/auth"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrAdminExists   = errors.New("admin already exists")
	ErrAdminNotFound = errors.New("admin not found")
)

type AdminService struct {
	adminRepo  *repository.AdminRepository
	userRepo   *repository.UserRepository
	jwtManager *auth.JWTManager
	logger     *zap.Logger
}

func NewAdminService(adminRepo *repository.AdminRepository, userRepo *repository.UserRepository, jwtManager *auth.JWTManager, logger *zap.Logger) *AdminService {
	return &AdminService{
		adminRepo:  adminRepo,
		userRepo:   userRepo,
		jwtManager: jwtManager,
		logger:     logger,
	}
}

func (s *AdminService) Register(ctx context.Context, req *dto.AdminRegisterRequest) (*dto.AdminAuthResponse, error) {
	existing, _ := s.adminRepo.GetByName(ctx, req.Name)
	if existing != nil {
		return nil, ErrAdminExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	admin := &models.Admin{
		ID:        uuid.New(),
		Name:      req.Name,
		Password:  hashedPassword,
		CreatedAt: time.Now(),
	}

	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}

	return s.tokenResponse(admin)
}

func (s *AdminService) Login(ctx context.Context, req *dto.AdminLoginRequest) (*dto.AdminAuthResponse, error) {
	admin, err := s.adminRepo.GetByName(ctx, req.Name)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !auth.CheckPasswordHash(req.Password, admin.Password) {
		return nil, ErrInvalidCredentials
	}

	return s.tokenResponse(admin)
}

func (s *AdminService) Profile(ctx context.Context, adminID uuid.UUID) (*dto.AdminResponse, error) {
	admin, err := s.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		return nil, ErrAdminNotFound
	}

	return &dto.AdminResponse{
		ID:   admin.ID.String(),
		Name: admin.Name,
	}, nil
}

func (s *AdminService) ListUsers(ctx context.Context) (*dto.UserListResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.UserListResponse{Users: make([]dto.UserListItem, len(users))}
	for i, user := range users {
		resp.Users[i] = dto.UserListItem{
			ID:          user.ID.String(),
			FirstName:   user.FirstName,
			LastName:    user.LastName,
			Email:       user.Email,
			Phone:       user.Phone,
			DateOfBirth: user.DateOfBirth,
			Gender:      user.Gender,
			CreatedAt:   user.CreatedAt.Format(time.RFC3339),
		}
	}
	return resp, nil
}

// DeleteUser removes a user account; the user's income and expense
// records go with it through the cascading foreign keys.
func (s *AdminService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	affected, err := s.userRepo.Delete(ctx, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	s.logger.Info("User deleted by admin", zap.String("user_id", userID.String()))
	return nil
}

func (s *AdminService) tokenResponse(admin *models.Admin) (*dto.AdminAuthResponse, error) {
	accessToken, err := s.jwtManager.GenerateToken(admin.ID.String(), "", auth.RoleAdmin)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(admin.ID.String(), auth.RoleAdmin)
	if err != nil {
		return nil, err
	}

	return &dto.AdminAuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.jwtManager.GetTokenDuration().Seconds()),
		Admin: dto.AdminResponse{
			ID:   admin.ID.String(),
			Name: admin.Name,
		},
	}, nil
}
