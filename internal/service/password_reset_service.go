package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"anoa.com/yayasanalhikmah/internal/dto"
	"anoa.com/yayasanalhikmah/internal/model"
	"anoa.com/yayasanalhikmah/internal/repository"
	"anoa.com/yayasanalhikmah/pkg/apperror"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidResetToken = errors.New("token reset tidak valid atau kedaluwarsa")

// PasswordResetService handles admin-mediated password resets. No password
// ever transits the request table: approval mints a one-time token (only its
// SHA-256 hash is stored) and the confirm step sets the bcrypt hash directly
// on the user row.
type PasswordResetService interface {
	Request(ctx context.Context, input dto.PasswordResetInput) (*model.PasswordResetRequest, error)
	List(ctx context.Context, status string) ([]*model.PasswordResetRequest, error)
	// Approve returns the one-time plaintext token exactly once, for the
	// admin to hand to the user out of band.
	Approve(ctx context.Context, id string, processedBy uuid.UUID) (string, error)
	Reject(ctx context.Context, id string, processedBy uuid.UUID) error
	Confirm(ctx context.Context, input dto.PasswordResetConfirmInput) error
}

type passwordResetService struct {
	repo     repository.PasswordResetRepository
	userRepo repository.UserRepository
	tokenTTL time.Duration
}

func NewPasswordResetService(repo repository.PasswordResetRepository, userRepo repository.UserRepository, tokenTTL time.Duration) PasswordResetService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}

	return &passwordResetService{
		repo:     repo,
		userRepo: userRepo,
		tokenTTL: tokenTTL,
	}
}

func (s *passwordResetService) Request(ctx context.Context, input dto.PasswordResetInput) (*model.PasswordResetRequest, error) {
	user, err := s.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	req := &model.PasswordResetRequest{
		UserID:   user.ID,
		Username: user.Username,
		Email:    input.Email,
		Status:   model.ResetPending,
	}

	if err := s.repo.Create(ctx, req); err != nil {
		return nil, err
	}

	return req, nil
}

func (s *passwordResetService) List(ctx context.Context, status string) ([]*model.PasswordResetRequest, error) {
	return s.repo.FindAll(ctx, status)
}

func (s *passwordResetService) Approve(ctx context.Context, id string, processedBy uuid.UUID) (string, error) {
	req, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}

	if req.Status != model.ResetPending {
		return "", apperror.New(409, "permintaan sudah diproses", apperror.ErrConflict)
	}

	token, tokenHash, err := generateResetToken()
	if err != nil {
		return "", err
	}

	now := time.Now()
	expires := now.Add(s.tokenTTL)

	req.Status = model.ResetApproved
	req.TokenHash = &tokenHash
	req.ExpiresAt = &expires
	req.ProcessedAt = &now
	req.ProcessedBy = &processedBy

	if err := s.repo.Update(ctx, req); err != nil {
		return "", err
	}

	return token, nil
}

func (s *passwordResetService) Reject(ctx context.Context, id string, processedBy uuid.UUID) error {
	req, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if req.Status != model.ResetPending {
		return apperror.New(409, "permintaan sudah diproses", apperror.ErrConflict)
	}

	now := time.Now()
	req.Status = model.ResetRejected
	req.ProcessedAt = &now
	req.ProcessedBy = &processedBy

	return s.repo.Update(ctx, req)
}

func (s *passwordResetService) Confirm(ctx context.Context, input dto.PasswordResetConfirmInput) error {
	tokenHash := hashResetToken(input.Token)

	req, err := s.repo.FindByTokenHash(ctx, tokenHash)
	if err != nil {
		return ErrInvalidResetToken
	}

	if req.Status != model.ResetApproved {
		return ErrInvalidResetToken
	}
	if req.ExpiresAt == nil || time.Now().After(*req.ExpiresAt) {
		return ErrInvalidResetToken
	}

	user, err := s.userRepo.FindByID(ctx, req.UserID.String())
	if err != nil {
		return ErrInvalidResetToken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = string(hashed)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	req.Status = model.ResetUsed
	req.TokenHash = nil
	return s.repo.Update(ctx, req)
}

func generateResetToken() (token, tokenHash string, err error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", "", fmt.Errorf("failed to generate reset token: %w", err)
	}

	token = hex.EncodeToString(buf)
	return token, hashResetToken(token), nil
}

func hashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
