package store

import (
	"context"

	"github.com/registrarhq/registrar/internal/domain/entity"
	"github.com/registrarhq/registrar/internal/domain/enum"
	domainRepo "github.com/registrarhq/registrar/internal/domain/repository"
)

type adminRepository struct {
	snap *Snapshot[*entity.Admin]
}

// NewAdminRepository opens the admin account snapshot under dir
func NewAdminRepository(dir string) (domainRepo.AdminRepository, error) {
	snap, err := OpenSnapshot[*entity.Admin](dir, "admins.json")
	if err != nil {
		return nil, err
	}
	return &adminRepository{snap: snap}, nil
}

func (r *adminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	return r.snap.Put(admin.Username, admin)
}

func (r *adminRepository) GetByUsername(ctx context.Context, username string) (*entity.Admin, error) {
	admin, ok := r.snap.Get(username)
	if !ok {
		return nil, nil
	}
	return admin, nil
}

func (r *adminRepository) Update(ctx context.Context, admin *entity.Admin) error {
	return r.snap.Put(admin.Username, admin)
}

func (r *adminRepository) Count(ctx context.Context) (int, error) {
	return r.snap.Len(), nil
}

func (r *adminRepository) IDs(ctx context.Context) ([]string, error) {
	ids := make([]string, 0, r.snap.Len())
	for _, admin := range r.snap.Values() {
		ids = append(ids, admin.ID)
	}
	return ids, nil
}

type accountRepository struct {
	snap *Snapshot[*entity.UserAccount]
}

// NewAccountRepository opens the portal login snapshot under dir
func NewAccountRepository(dir string) (domainRepo.AccountRepository, error) {
	snap, err := OpenSnapshot[*entity.UserAccount](dir, "accounts.json")
	if err != nil {
		return nil, err
	}
	return &accountRepository{snap: snap}, nil
}

func accountKey(role enum.Role, userID string) string {
	return string(role) + ":" + userID
}

func (r *accountRepository) Create(ctx context.Context, account *entity.UserAccount) error {
	return r.snap.Put(accountKey(account.Role, account.UserID), account)
}

func (r *accountRepository) Get(ctx context.Context, role enum.Role, userID string) (*entity.UserAccount, error) {
	account, ok := r.snap.Get(accountKey(role, userID))
	if !ok {
		return nil, nil
	}
	return account, nil
}

func (r *accountRepository) Update(ctx context.Context, account *entity.UserAccount) error {
	return r.snap.Put(accountKey(account.Role, account.UserID), account)
}

type parentRepository struct {
	snap *Snapshot[*entity.Parent]
}

// NewParentRepository opens the parent profile snapshot under dir
func NewParentRepository(dir string) (domainRepo.ParentRepository, error) {
	snap, err := OpenSnapshot[*entity.Parent](dir, "parents.json")
	if err != nil {
		return nil, err
	}
	return &parentRepository{snap: snap}, nil
}

func (r *parentRepository) Create(ctx context.Context, parent *entity.Parent) error {
	return r.snap.Put(parent.ID, parent)
}

func (r *parentRepository) GetByID(ctx context.Context, id string) (*entity.Parent, error) {
	parent, ok := r.snap.Get(id)
	if !ok {
		return nil, nil
	}
	return parent, nil
}

func (r *parentRepository) GetByEmail(ctx context.Context, email string) (*entity.Parent, error) {
	for _, parent := range r.snap.Values() {
		if parent.Email == email {
			return parent, nil
		}
	}
	return nil, nil
}

func (r *parentRepository) Update(ctx context.Context, parent *entity.Parent) error {
	return r.snap.Put(parent.ID, parent)
}

func (r *parentRepository) List(ctx context.Context) ([]entity.Parent, error) {
	parents := make([]entity.Parent, 0, r.snap.Len())
	for _, p := range r.snap.Values() {
		parents = append(parents, *p)
	}
	return parents, nil
}

func (r *parentRepository) IDs(ctx context.Context) ([]string, error) {
	return r.snap.Keys(), nil
}

type notificationRepository struct {
	snap *Snapshot[*entity.Notification]
}

// NewNotificationRepository opens the notification snapshot under dir
func NewNotificationRepository(dir string) (domainRepo.NotificationRepository, error) {
	snap, err := OpenSnapshot[*entity.Notification](dir, "notifications.json")
	if err != nil {
		return nil, err
	}
	return &notificationRepository{snap: snap}, nil
}

func (r *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	return r.snap.Put(notification.ID, notification)
}

func (r *notificationRepository) GetByID(ctx context.Context, id string) (*entity.Notification, error) {
	n, ok := r.snap.Get(id)
	if !ok {
		return nil, nil
	}
	return n, nil
}

func (r *notificationRepository) Update(ctx context.Context, notification *entity.Notification) error {
	return r.snap.Put(notification.ID, notification)
}

func (r *notificationRepository) List(ctx context.Context) ([]entity.Notification, error) {
	notifications := make([]entity.Notification, 0, r.snap.Len())
	for _, n := range r.snap.Values() {
		notifications = append(notifications, *n)
	}
	return notifications, nil
}

func (r *notificationRepository) ListByRecipient(ctx context.Context, recipientID string) ([]entity.Notification, error) {
	var notifications []entity.Notification
	for _, n := range r.snap.Values() {
		if n.RecipientID == recipientID {
			notifications = append(notifications, *n)
		}
	}
	return notifications, nil
}

type evaluationRepository struct {
	snap *Snapshot[*entity.Evaluation]
}

// NewEvaluationRepository opens the faculty evaluation snapshot under dir
func NewEvaluationRepository(dir string) (domainRepo.EvaluationRepository, error) {
	snap, err := OpenSnapshot[*entity.Evaluation](dir, "evaluations.json")
	if err != nil {
		return nil, err
	}
	return &evaluationRepository{snap: snap}, nil
}

func (r *evaluationRepository) Create(ctx context.Context, evaluation *entity.Evaluation) error {
	return r.snap.Put(evaluation.ID, evaluation)
}

func (r *evaluationRepository) ListByTeacher(ctx context.Context, teacherID string) ([]entity.Evaluation, error) {
	var evaluations []entity.Evaluation
	for _, e := range r.snap.Values() {
		if e.TeacherID == teacherID {
			evaluations = append(evaluations, *e)
		}
	}
	return evaluations, nil
}
