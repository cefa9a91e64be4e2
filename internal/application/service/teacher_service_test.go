package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/registrarhq/registrar/internal/domain/enum"
	"github.com/registrarhq/registrar/internal/infrastructure/store"
)

func newTeacherService(t *testing.T) *TeacherService {
	t.Helper()
	repo, err := store.NewTeacherRepository(t.TempDir())
	require.NoError(t, err)
	return NewTeacherService(repo)
}

func TestCreateTeacherAssignsSequentialIDs(t *testing.T) {
	svc := newTeacherService(t)
	ctx := context.Background()

	first, err := svc.CreateTeacher(ctx, &CreateTeacherInput{Name: "Liza Moreno", Email: "liza@college.edu", Phone: "0917"})
	require.NoError(t, err)
	second, err := svc.CreateTeacher(ctx, &CreateTeacherInput{Name: "Paolo Dizon", Email: "paolo@college.edu", Phone: "0918"})
	require.NoError(t, err)

	assert.Equal(t, "0110000001", first.ID)
	assert.Equal(t, "0110000002", second.ID)
}

func TestAddScheduleDetectsConflicts(t *testing.T) {
	svc := newTeacherService(t)
	ctx := context.Background()

	teacher, err := svc.CreateTeacher(ctx, &CreateTeacherInput{Name: "Liza Moreno", Email: "liza@college.edu", Phone: "0917"})
	require.NoError(t, err)

	require.NoError(t, svc.AddSchedule(ctx, teacher.ID, &AddScheduleInput{
		Section: "BSIT-3-1", Subject: "Math", Day: "Monday", StartTime: "08:00", EndTime: "10:00", Room: "301",
	}))

	tests := []struct {
		name     string
		input    AddScheduleInput
		conflict bool
	}{
		{"overlap same section", AddScheduleInput{Section: "BSIT-3-1", Subject: "Physics", Day: "Monday", StartTime: "09:00", EndTime: "11:00"}, true},
		{"overlap other section", AddScheduleInput{Section: "BSCS-2-1", Subject: "Physics", Day: "Monday", StartTime: "09:30", EndTime: "10:30"}, true},
		{"containment", AddScheduleInput{Section: "BSCS-2-1", Subject: "Physics", Day: "Monday", StartTime: "08:30", EndTime: "09:30"}, true},
		{"back to back", AddScheduleInput{Section: "BSIT-3-1", Subject: "Physics", Day: "Monday", StartTime: "10:00", EndTime: "12:00"}, false},
		{"different day", AddScheduleInput{Section: "BSIT-3-1", Subject: "Physics", Day: "Tuesday", StartTime: "08:00", EndTime: "10:00"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.AddSchedule(ctx, teacher.ID, &tt.input)
			if tt.conflict {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAddScheduleValidation(t *testing.T) {
	svc := newTeacherService(t)
	ctx := context.Background()

	teacher, err := svc.CreateTeacher(ctx, &CreateTeacherInput{Name: "Liza Moreno", Email: "liza@college.edu", Phone: "0917"})
	require.NoError(t, err)

	tests := []struct {
		name  string
		input AddScheduleInput
	}{
		{"sunday", AddScheduleInput{Section: "BSIT-3-1", Subject: "Math", Day: "Sunday", StartTime: "08:00", EndTime: "10:00"}},
		{"bad time", AddScheduleInput{Section: "BSIT-3-1", Subject: "Math", Day: "Monday", StartTime: "8am", EndTime: "10:00"}},
		{"inverted range", AddScheduleInput{Section: "BSIT-3-1", Subject: "Math", Day: "Monday", StartTime: "10:00", EndTime: "08:00"}},
		{"bad section", AddScheduleInput{Section: "BSIT-9-1", Subject: "Math", Day: "Monday", StartTime: "08:00", EndTime: "10:00"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, svc.AddSchedule(ctx, teacher.ID, &tt.input))
		})
	}
}

func TestRemoveSchedule(t *testing.T) {
	svc := newTeacherService(t)
	ctx := context.Background()

	teacher, err := svc.CreateTeacher(ctx, &CreateTeacherInput{Name: "Liza Moreno", Email: "liza@college.edu", Phone: "0917"})
	require.NoError(t, err)
	require.NoError(t, svc.AddSchedule(ctx, teacher.ID, &AddScheduleInput{
		Section: "BSIT-3-1", Subject: "Math", Day: "Monday", StartTime: "08:00", EndTime: "10:00",
	}))

	assert.Error(t, svc.RemoveSchedule(ctx, teacher.ID, "BSIT-3-1", 5))
	require.NoError(t, svc.RemoveSchedule(ctx, teacher.ID, "BSIT-3-1", 0))

	schedules, err := svc.Schedules(ctx, teacher.ID, "BSIT-3-1")
	require.NoError(t, err)
	assert.Empty(t, schedules)
}

func TestUnassignSectionDropsSchedules(t *testing.T) {
	svc := newTeacherService(t)
	ctx := context.Background()

	teacher, err := svc.CreateTeacher(ctx, &CreateTeacherInput{Name: "Liza Moreno", Email: "liza@college.edu", Phone: "0917"})
	require.NoError(t, err)
	require.NoError(t, svc.AddSchedule(ctx, teacher.ID, &AddScheduleInput{
		Section: "BSIT-3-1", Subject: "Math", Day: "Monday", StartTime: "08:00", EndTime: "10:00",
	}))

	require.NoError(t, svc.UnassignSection(ctx, teacher.ID, "BSIT-3-1"))

	updated, err := svc.GetTeacher(ctx, teacher.ID)
	require.NoError(t, err)
	assert.Empty(t, updated.Sections)
	assert.NotContains(t, updated.Schedules, "BSIT-3-1")
}

func TestQualificationsAndSubjects(t *testing.T) {
	svc := newTeacherService(t)
	ctx := context.Background()

	teacher, err := svc.CreateTeacher(ctx, &CreateTeacherInput{Name: "Liza Moreno", Email: "liza@college.edu", Phone: "0917"})
	require.NoError(t, err)

	require.NoError(t, svc.AddQualification(ctx, teacher.ID, "MS Mathematics"))
	assert.Error(t, svc.AddQualification(ctx, teacher.ID, "MS Mathematics"))

	require.NoError(t, svc.AddSubject(ctx, teacher.ID, "Math"))
	assert.Error(t, svc.AddSubject(ctx, teacher.ID, "Math"))
}

func TestLeaveRequests(t *testing.T) {
	svc := newTeacherService(t)
	ctx := context.Background()

	teacher, err := svc.CreateTeacher(ctx, &CreateTeacherInput{Name: "Liza Moreno", Email: "liza@college.edu", Phone: "0917"})
	require.NoError(t, err)

	require.NoError(t, svc.RequestLeave(ctx, teacher.ID, "2026-09-01", "2026-09-03", "Medical"))

	requests, err := svc.LeaveRequests(ctx, teacher.ID)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, enum.LeavePending, requests[0].Status)
}
