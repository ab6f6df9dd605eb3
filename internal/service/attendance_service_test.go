package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/artneelam/studio-api/internal/dto"
	"github.com/artneelam/studio-api/internal/models"
)

func newAttendanceService(records *attendanceRepoStub, students *studentRepoStub) AttendanceService {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return NewAttendanceService(records, students, validate, zerolog.Nop())
}

func TestMarkReplacesSameDayStatus(t *testing.T) {
	records := &attendanceRepoStub{}
	students := newStudentRepoStub(models.Student{ID: "fafa0e5e-9d6f-4f3e-8f61-44628b2d7a10", Batch: models.Batches[1]})
	svc := newAttendanceService(records, students)

	_, err := svc.Mark(context.Background(), dto.AttendanceMarkRequest{
		StudentID: "fafa0e5e-9d6f-4f3e-8f61-44628b2d7a10",
		Date:      "2026-03-02",
		Status:    models.AttendanceAbsent,
	})
	require.NoError(t, err)

	record, err := svc.Mark(context.Background(), dto.AttendanceMarkRequest{
		StudentID: "fafa0e5e-9d6f-4f3e-8f61-44628b2d7a10",
		Date:      "2026-03-02",
		Status:    models.AttendancePresent,
	})
	require.NoError(t, err)
	require.Len(t, records.records, 1)
	require.Equal(t, models.AttendancePresent, records.records[0].Status)
	// Batch defaults to the student's batch when the request omits it.
	require.Equal(t, models.Batches[1], record.Batch)
}

func TestMarkUnknownStudent(t *testing.T) {
	svc := newAttendanceService(&attendanceRepoStub{}, newStudentRepoStub())

	_, err := svc.Mark(context.Background(), dto.AttendanceMarkRequest{
		StudentID: "fafa0e5e-9d6f-4f3e-8f61-44628b2d7a10",
		Date:      "2026-03-02",
		Status:    models.AttendancePresent,
	})
	require.ErrorIs(t, err, ErrStudentNotFound)
}

func TestMarkAllSkipsUnknownStudents(t *testing.T) {
	records := &attendanceRepoStub{}
	students := newStudentRepoStub(models.Student{ID: "fafa0e5e-9d6f-4f3e-8f61-44628b2d7a10", Batch: models.Batches[0]})
	svc := newAttendanceService(records, students)

	marked, err := svc.MarkAll(context.Background(), dto.AttendanceBulkRequest{
		StudentIDs: []string{"fafa0e5e-9d6f-4f3e-8f61-44628b2d7a10", "0b54c0de-3f41-4f5f-9a95-0a54f0b0aaaa"},
		Date:       "2026-03-02",
		Status:     models.AttendancePresent,
	})
	require.NoError(t, err)
	require.Len(t, marked, 1)
	require.Len(t, records.records, 1)
}
