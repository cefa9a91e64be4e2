package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/registrarhq/registrar/internal/domain/entity"
	"github.com/registrarhq/registrar/internal/domain/repository"
	"github.com/registrarhq/registrar/pkg/apperror"
	"github.com/registrarhq/registrar/pkg/utils"
)

// ParentService manages guardian accounts, student links, and notifications
type ParentService struct {
	parentRepo       repository.ParentRepository
	studentRepo      repository.StudentRepository
	notificationRepo repository.NotificationRepository
}

// NewParentService creates a new parent service
func NewParentService(
	parentRepo repository.ParentRepository,
	studentRepo repository.StudentRepository,
	notificationRepo repository.NotificationRepository,
) *ParentService {
	return &ParentService{
		parentRepo:       parentRepo,
		studentRepo:      studentRepo,
		notificationRepo: notificationRepo,
	}
}

// CreateParentInput represents the create parent input
type CreateParentInput struct {
	Name     string `validate:"required,min=2"`
	Email    string `validate:"required,email"`
	Phone    string `validate:"required"`
	Password string `validate:"required"`
}

// CreateParent registers a guardian account with a bcrypt-hashed password
func (s *ParentService) CreateParent(ctx context.Context, input *CreateParentInput) (*entity.Parent, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if err := utils.ValidatePassword(input.Password); err != nil {
		return nil, err
	}

	existing, err := s.parentRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Parent with this email already exists")
	}

	ids, err := s.parentRepo.IDs(ctx)
	if err != nil {
		return nil, err
	}
	id, err := utils.NextSequenceID(utils.ParentIDPrefix, ids)
	if err != nil {
		return nil, err
	}
	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	parent := &entity.Parent{
		ID:           id,
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		StudentIDs:   []string{},
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.parentRepo.Create(ctx, parent); err != nil {
		return nil, err
	}
	return parent, nil
}

// GetParent returns one parent by ID
func (s *ParentService) GetParent(ctx context.Context, id string) (*entity.Parent, error) {
	parent, err := s.parentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, apperror.NewNotFoundError("Parent")
	}
	return parent, nil
}

// ListParents returns all parents
func (s *ParentService) ListParents(ctx context.Context) ([]entity.Parent, error) {
	return s.parentRepo.List(ctx)
}

// LinkStudent links an existing student to a parent
func (s *ParentService) LinkStudent(ctx context.Context, parentID, studentID string) error {
	parent, err := s.GetParent(ctx, parentID)
	if err != nil {
		return err
	}
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return err
	}
	if student == nil {
		return apperror.NewNotFoundError("Student")
	}
	if parent.HasStudent(studentID) {
		return apperror.NewConflictError("Student already linked to this parent")
	}

	parent.StudentIDs = append(parent.StudentIDs, studentID)
	parent.UpdatedAt = time.Now()
	return s.parentRepo.Update(ctx, parent)
}

// UnlinkStudent removes a student link from a parent
func (s *ParentService) UnlinkStudent(ctx context.Context, parentID, studentID string) error {
	parent, err := s.GetParent(ctx, parentID)
	if err != nil {
		return err
	}

	for i, id := range parent.StudentIDs {
		if id == studentID {
			parent.StudentIDs = append(parent.StudentIDs[:i], parent.StudentIDs[i+1:]...)
			parent.UpdatedAt = time.Now()
			return s.parentRepo.Update(ctx, parent)
		}
	}
	return apperror.NewNotFoundError("Student link")
}

// Login authenticates a parent by email and password
func (s *ParentService) Login(ctx context.Context, email, password string) (*entity.Parent, error) {
	parent, err := s.parentRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if parent == nil || !utils.CheckPassword(parent.PasswordHash, password) {
		return nil, apperror.NewUnauthorizedError("Invalid email or password")
	}
	return parent, nil
}

// ChangePassword verifies the old password and stores the new one
func (s *ParentService) ChangePassword(ctx context.Context, parentID, oldPassword, newPassword string) error {
	parent, err := s.GetParent(ctx, parentID)
	if err != nil {
		return err
	}
	if !utils.CheckPassword(parent.PasswordHash, oldPassword) {
		return apperror.NewUnauthorizedError("Current password is incorrect")
	}
	if err := utils.ValidatePassword(newPassword); err != nil {
		return err
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	parent.PasswordHash = hash
	parent.UpdatedAt = time.Now()
	return s.parentRepo.Update(ctx, parent)
}

// Notify delivers a message to a parent's inbox
func (s *ParentService) Notify(ctx context.Context, parentID, subject, message, category string) (*entity.Notification, error) {
	if _, err := s.GetParent(ctx, parentID); err != nil {
		return nil, err
	}
	if subject == "" || message == "" {
		return nil, apperror.NewInvalidError("Subject and message are required")
	}
	if category == "" {
		category = "general"
	}

	notification := &entity.Notification{
		ID:          uuid.New().String(),
		RecipientID: parentID,
		Subject:     subject,
		Message:     message,
		Category:    category,
		CreatedAt:   time.Now(),
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return nil, err
	}
	return notification, nil
}

// NotifyGrade sends the canned grade notification for one subject
func (s *ParentService) NotifyGrade(ctx context.Context, parentID, studentName, subject string, grade float64) (*entity.Notification, error) {
	return s.Notify(ctx, parentID,
		fmt.Sprintf("Grade Update: %s", subject),
		fmt.Sprintf("%s received a grade of %.2f in %s.", studentName, grade, subject),
		"grades")
}

// NotifyAttendance sends the canned attendance alert
func (s *ParentService) NotifyAttendance(ctx context.Context, parentID, studentName, subject, date, status string) (*entity.Notification, error) {
	return s.Notify(ctx, parentID,
		"Attendance Alert",
		fmt.Sprintf("%s was marked %s in %s on %s.", studentName, status, subject, date),
		"attendance")
}

// NotifyFee sends the canned fee reminder for an invoice balance
func (s *ParentService) NotifyFee(ctx context.Context, parentID, studentName, invoiceID string, balance float64, dueDate string) (*entity.Notification, error) {
	return s.Notify(ctx, parentID,
		"Fee Reminder",
		fmt.Sprintf("Invoice %s for %s has a remaining balance of %.2f due on %s.", invoiceID, studentName, balance, dueDate),
		"fees")
}

// NotifyEvent sends the canned school event announcement
func (s *ParentService) NotifyEvent(ctx context.Context, parentID, eventName, date, details string) (*entity.Notification, error) {
	return s.Notify(ctx, parentID,
		fmt.Sprintf("School Event: %s", eventName),
		fmt.Sprintf("%s is scheduled on %s. %s", eventName, date, details),
		"event")
}

// Notifications returns a parent's inbox, optionally only unread messages
func (s *ParentService) Notifications(ctx context.Context, parentID string, unreadOnly bool) ([]entity.Notification, error) {
	notifications, err := s.notificationRepo.ListByRecipient(ctx, parentID)
	if err != nil {
		return nil, err
	}
	if !unreadOnly {
		return notifications, nil
	}

	unread := notifications[:0]
	for _, n := range notifications {
		if !n.Read {
			unread = append(unread, n)
		}
	}
	return unread, nil
}

// MarkNotificationRead marks one inbox message as read
func (s *ParentService) MarkNotificationRead(ctx context.Context, notificationID string) error {
	notification, err := s.notificationRepo.GetByID(ctx, notificationID)
	if err != nil {
		return err
	}
	if notification == nil {
		return apperror.NewNotFoundError("Notification")
	}
	if notification.Read {
		return nil
	}
	notification.Read = true
	return s.notificationRepo.Update(ctx, notification)
}
