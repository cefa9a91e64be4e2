package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/registrarhq/registrar/internal/domain/entity"
	"github.com/registrarhq/registrar/internal/infrastructure/store"
)

type parentFixture struct {
	parents  *ParentService
	students *StudentService
}

func newParentFixture(t *testing.T) *parentFixture {
	t.Helper()
	dir := t.TempDir()

	parentRepo, err := store.NewParentRepository(dir)
	require.NoError(t, err)
	studentRepo, err := store.NewStudentRepository(dir)
	require.NoError(t, err)
	notificationRepo, err := store.NewNotificationRepository(dir)
	require.NoError(t, err)

	return &parentFixture{
		parents:  NewParentService(parentRepo, studentRepo, notificationRepo),
		students: NewStudentService(studentRepo),
	}
}

func (f *parentFixture) seedParent(t *testing.T, ctx context.Context) *entity.Parent {
	t.Helper()
	parent, err := f.parents.CreateParent(ctx, &CreateParentInput{
		Name: "Maria Cruz", Email: "maria@example.com", Phone: "0917", Password: "Sekret123!",
	})
	require.NoError(t, err)
	return parent
}

func TestCreateParent(t *testing.T) {
	f := newParentFixture(t)
	ctx := context.Background()

	parent := f.seedParent(t, ctx)
	assert.Equal(t, "0330000001", parent.ID)
	assert.NotEqual(t, "Sekret123!", parent.PasswordHash)

	_, err := f.parents.CreateParent(ctx, &CreateParentInput{
		Name: "Other", Email: "maria@example.com", Phone: "0918", Password: "Sekret123!",
	})
	assert.Error(t, err, "email must be unique")

	_, err = f.parents.CreateParent(ctx, &CreateParentInput{
		Name: "Weak", Email: "weak@example.com", Phone: "0919", Password: "weak",
	})
	assert.Error(t, err)
}

func TestLinkStudent(t *testing.T) {
	f := newParentFixture(t)
	ctx := context.Background()
	parent := f.seedParent(t, ctx)

	student, err := f.students.CreateStudent(ctx, &CreateStudentInput{Name: "Ana Cruz", Contact: "0917", Section: "BSIT-3-1"})
	require.NoError(t, err)

	assert.Error(t, f.parents.LinkStudent(ctx, parent.ID, "0229999999"), "student must exist")
	require.NoError(t, f.parents.LinkStudent(ctx, parent.ID, student.ID))
	assert.Error(t, f.parents.LinkStudent(ctx, parent.ID, student.ID), "already linked")

	require.NoError(t, f.parents.UnlinkStudent(ctx, parent.ID, student.ID))
	assert.Error(t, f.parents.UnlinkStudent(ctx, parent.ID, student.ID))
}

func TestParentLogin(t *testing.T) {
	f := newParentFixture(t)
	ctx := context.Background()
	f.seedParent(t, ctx)

	parent, err := f.parents.Login(ctx, "maria@example.com", "Sekret123!")
	require.NoError(t, err)
	assert.Equal(t, "Maria Cruz", parent.Name)

	_, err = f.parents.Login(ctx, "maria@example.com", "wrong")
	assert.Error(t, err)
	_, err = f.parents.Login(ctx, "nobody@example.com", "Sekret123!")
	assert.Error(t, err)
}

func TestNotifications(t *testing.T) {
	f := newParentFixture(t)
	ctx := context.Background()
	parent := f.seedParent(t, ctx)

	_, err := f.parents.Notify(ctx, parent.ID, "", "body", "general")
	assert.Error(t, err)

	first, err := f.parents.NotifyGrade(ctx, parent.ID, "Ana Cruz", "Math", 88.5)
	require.NoError(t, err)
	assert.Equal(t, "grades", first.Category)
	assert.Contains(t, first.Message, "88.50")

	_, err = f.parents.NotifyAttendance(ctx, parent.ID, "Ana Cruz", "Math", "2026-06-01", "absent")
	require.NoError(t, err)

	inbox, err := f.parents.Notifications(ctx, parent.ID, false)
	require.NoError(t, err)
	assert.Len(t, inbox, 2)

	require.NoError(t, f.parents.MarkNotificationRead(ctx, first.ID))

	unread, err := f.parents.Notifications(ctx, parent.ID, true)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, "attendance", unread[0].Category)
}
