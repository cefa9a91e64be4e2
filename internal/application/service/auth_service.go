package service

import (
	"context"
	"strings"
	"time"

	"github.com/registrarhq/registrar/internal/domain/entity"
	"github.com/registrarhq/registrar/internal/domain/enum"
	"github.com/registrarhq/registrar/internal/domain/repository"
	"github.com/registrarhq/registrar/pkg/apperror"
	"github.com/registrarhq/registrar/pkg/utils"
)

// AuthService manages admin accounts and role-based portal logins
type AuthService struct {
	adminRepo   repository.AdminRepository
	accountRepo repository.AccountRepository
}

// NewAuthService creates a new auth service
func NewAuthService(adminRepo repository.AdminRepository, accountRepo repository.AccountRepository) *AuthService {
	return &AuthService{adminRepo: adminRepo, accountRepo: accountRepo}
}

// RegisterAdminInput represents the admin registration input
type RegisterAdminInput struct {
	Username          string            `validate:"required,min=3"`
	Password          string            `validate:"required"`
	SecurityQuestions map[string]string `validate:"required,len=3"`
}

// RegisterAdmin creates an admin account. Three security questions with
// non-empty answers are required for password recovery.
func (s *AuthService) RegisterAdmin(ctx context.Context, input *RegisterAdminInput) (*entity.Admin, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if err := utils.ValidatePassword(input.Password); err != nil {
		return nil, err
	}
	for q, a := range input.SecurityQuestions {
		if strings.TrimSpace(q) == "" || strings.TrimSpace(a) == "" {
			return nil, apperror.NewInvalidError("Security questions and answers cannot be empty")
		}
	}

	existing, err := s.adminRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Username already taken")
	}

	ids, err := s.adminRepo.IDs(ctx)
	if err != nil {
		return nil, err
	}
	id, err := utils.NextSequenceID(utils.AdminIDPrefix, ids)
	if err != nil {
		return nil, err
	}
	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	admin := &entity.Admin{
		ID:                id,
		Username:          input.Username,
		PasswordHash:      hash,
		SecurityQuestions: input.SecurityQuestions,
		CreatedAt:         time.Now(),
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// HasAdmins reports whether any admin account exists yet
func (s *AuthService) HasAdmins(ctx context.Context) (bool, error) {
	count, err := s.adminRepo.Count(ctx)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// LoginAdmin authenticates an admin by username and password
func (s *AuthService) LoginAdmin(ctx context.Context, username, password string) (*entity.Admin, error) {
	admin, err := s.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if admin == nil || !utils.CheckPassword(admin.PasswordHash, password) {
		return nil, apperror.ErrInvalidCredentials
	}
	return admin, nil
}

// ChangeAdminPassword verifies the current password and stores the new one
func (s *AuthService) ChangeAdminPassword(ctx context.Context, username, oldPassword, newPassword string) error {
	admin, err := s.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if admin == nil || !utils.CheckPassword(admin.PasswordHash, oldPassword) {
		return apperror.ErrInvalidCredentials
	}
	if err := utils.ValidatePassword(newPassword); err != nil {
		return err
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	admin.PasswordHash = hash
	return s.adminRepo.Update(ctx, admin)
}

// SecurityQuestions returns an admin's recovery questions
func (s *AuthService) SecurityQuestions(ctx context.Context, username string) ([]string, error) {
	admin, err := s.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, apperror.NewNotFoundError("Admin")
	}

	questions := make([]string, 0, len(admin.SecurityQuestions))
	for q := range admin.SecurityQuestions {
		questions = append(questions, q)
	}
	return questions, nil
}

// RecoverAdminPassword resets an admin password after all three security
// questions are answered correctly. Answers are compared case-insensitively
// with surrounding whitespace ignored.
func (s *AuthService) RecoverAdminPassword(ctx context.Context, username string, answers map[string]string, newPassword string) error {
	admin, err := s.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if admin == nil {
		return apperror.NewNotFoundError("Admin")
	}

	for question, expected := range admin.SecurityQuestions {
		given, ok := answers[question]
		if !ok || !strings.EqualFold(strings.TrimSpace(given), strings.TrimSpace(expected)) {
			return apperror.NewUnauthorizedError("Security answers do not match")
		}
	}
	if err := utils.ValidatePassword(newPassword); err != nil {
		return err
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	admin.PasswordHash = hash
	return s.adminRepo.Update(ctx, admin)
}

// CreateAccount creates a portal login for an existing student, teacher, or
// parent profile ID
func (s *AuthService) CreateAccount(ctx context.Context, role enum.Role, userID, password string) (*entity.UserAccount, error) {
	if role != enum.RoleStudent && role != enum.RoleTeacher && role != enum.RoleParent {
		return nil, apperror.NewInvalidError("Role must be student, teacher, or parent")
	}
	if userID == "" {
		return nil, apperror.NewInvalidError("User ID is required")
	}
	if err := utils.ValidatePassword(password); err != nil {
		return nil, err
	}

	existing, err := s.accountRepo.Get(ctx, role, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Account already exists for this user")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	account := &entity.UserAccount{
		UserID:       userID,
		Role:         role,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// Login authenticates a portal account by role and profile ID
func (s *AuthService) Login(ctx context.Context, role enum.Role, userID, password string) (*entity.UserAccount, error) {
	account, err := s.accountRepo.Get(ctx, role, userID)
	if err != nil {
		return nil, err
	}
	if account == nil || !utils.CheckPassword(account.PasswordHash, password) {
		return nil, apperror.ErrInvalidCredentials
	}
	return account, nil
}

// ChangePassword verifies the current password and stores the new one
func (s *AuthService) ChangePassword(ctx context.Context, role enum.Role, userID, oldPassword, newPassword string) error {
	account, err := s.accountRepo.Get(ctx, role, userID)
	if err != nil {
		return err
	}
	if account == nil || !utils.CheckPassword(account.PasswordHash, oldPassword) {
		return apperror.ErrInvalidCredentials
	}
	if err := utils.ValidatePassword(newPassword); err != nil {
		return err
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	account.PasswordHash = hash
	return s.accountRepo.Update(ctx, account)
}
