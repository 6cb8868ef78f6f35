package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"anoa.com/yayasanalhikmah/internal/dto"
	"anoa.com/yayasanalhikmah/internal/model"
	"anoa.com/yayasanalhikmah/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("username atau password salah")

type AuthService interface {
	// Login succeeds only for an active user whose password matches.
	// Every other outcome (unknown user, wrong password, pending or
	// inactive account, datastore error) collapses to ErrInvalidCredentials.
	Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error)
	// Register creates a pending account with an all-false permission row.
	Register(ctx context.Context, input dto.RegisterInput) (*dto.UserResponse, error)
	// Me re-resolves the token subject against the database so revoked or
	// deactivated accounts lose access without waiting for token expiry.
	Me(ctx context.Context, userID string) (*dto.UserResponse, error)
}

type authService struct {
	repo     repository.UserRepository
	notifier NotificationService
	secret   string
	tokenTTL time.Duration
}

func NewAuthService(repo repository.UserRepository, notifier NotificationService, secret string, tokenTTL time.Duration) AuthService {
	if secret == "" {
		secret = "change-me"
	}
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}

	return &authService{
		repo:     repo,
		notifier: notifier,
		secret:   secret,
		tokenTTL: tokenTTL,
	}
}

func (s *authService) Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error) {
	user, err := s.repo.FindByUsername(ctx, input.Username)
	if err != nil {
		// Fail closed: a datastore error looks identical to a bad password.
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if user.Status != model.StatusActive {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""

	return &dto.AuthResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresAt,
		User:        user,
		Permission:  user.Permission,
	}, nil
}

func (s *authService) Register(ctx context.Context, input dto.RegisterInput) (*dto.UserResponse, error) {
	if input.Role == model.RoleSuperAdmin {
		return nil, errors.New("role tidak diizinkan")
	}

	if _, err := s.repo.FindByUsername(ctx, input.Username); err == nil {
		return nil, errors.New("username sudah digunakan")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	role, err := s.repo.FindRoleByName(ctx, input.Role)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("role %s tidak ditemukan", input.Role)
		}
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	roleID := role.ID
	user := &model.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		Name:         input.Name,
		RoleID:       &roleID,
		Status:       model.StatusPending,
	}

	// All flags start false; approval flips the role bundle later.
	perm := &model.Permission{}

	if err := s.repo.Create(ctx, user, perm); err != nil {
		return nil, err
	}

	created, err := s.repo.FindByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	created.PasswordHash = ""

	if s.notifier != nil {
		s.notifier.NotifyAdmins(ctx, model.NotifNewSignup, created.ID, "user",
			fmt.Sprintf("Pendaftaran akun baru: %s (%s)", created.Name, input.Role))
	}

	return &dto.UserResponse{
		User:       created,
		Permission: created.Permission,
		Pending:    true,
	}, nil
}

func (s *authService) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if user.Status != model.StatusActive {
		return nil, ErrInvalidCredentials
	}

	user.PasswordHash = ""

	return &dto.UserResponse{
		User:       user,
		Permission: user.Permission,
		Pending:    user.Status == model.StatusPending,
	}, nil
}

func (s *authService) generateToken(user *model.User) (string, int64, error) {
	expiresAt := time.Now().Add(s.tokenTTL)

	claims := jwt.RegisteredClaims{
		Subject:   user.ID.String(),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", 0, err
	}

	return signed, expiresAt.Unix(), nil
}
