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

func newMessageService(students *studentRepoStub, payments *paymentRepoStub, adminNumber string) MessageService {
	return newMessageServiceWithLeads(students, payments, newLeadRepoStub(), adminNumber)
}

func newMessageServiceWithLeads(students *studentRepoStub, payments *paymentRepoStub, leads *leadRepoStub, adminNumber string) MessageService {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return NewMessageService(students, payments, leads, validate, "91", adminNumber, zerolog.Nop())
}

func TestComposeFeeReminderUsesPendingTotal(t *testing.T) {
	students := newStudentRepoStub(models.Student{
		ID:       "fafa0e5e-9d6f-4f3e-8f61-44628b2d7a10",
		Name:     "Ananya",
		WhatsApp: "98765 43210",
		Batch:    models.Batches[2],
	})
	payments := &paymentRepoStub{payments: []models.Payment{
		{ID: "p1", StudentID: "fafa0e5e-9d6f-4f3e-8f61-44628b2d7a10", Amount: 4000, Date: "2026-02-10", Status: models.PaymentPending},
	}}
	svc := newMessageService(students, payments, "")

	link, err := svc.Compose(context.Background(), dto.MessageRequest{
		StudentID: "fafa0e5e-9d6f-4f3e-8f61-44628b2d7a10",
		Kind:      "fee_reminder",
	})
	require.NoError(t, err)
	require.Equal(t, "919876543210", link.Number)
	require.Contains(t, link.Link, "https://wa.me/919876543210?text=")
	require.Contains(t, link.Message, "4,000")
}

func TestComposeFallsBackToParentContact(t *testing.T) {
	students := newStudentRepoStub(models.Student{
		ID:            "fafa0e5e-9d6f-4f3e-8f61-44628b2d7a10",
		Name:          "Kabir",
		FatherContact: "9797979797",
	})
	svc := newMessageService(students, &paymentRepoStub{}, "")

	link, err := svc.Compose(context.Background(), dto.MessageRequest{
		StudentID: "fafa0e5e-9d6f-4f3e-8f61-44628b2d7a10",
		Kind:      "birthday",
	})
	require.NoError(t, err)
	require.Equal(t, "919797979797", link.Number)
}

func TestComposeWithoutAnyNumber(t *testing.T) {
	students := newStudentRepoStub(models.Student{ID: "fafa0e5e-9d6f-4f3e-8f61-44628b2d7a10", Name: "Kabir"})
	svc := newMessageService(students, &paymentRepoStub{}, "")

	_, err := svc.Compose(context.Background(), dto.MessageRequest{
		StudentID: "fafa0e5e-9d6f-4f3e-8f61-44628b2d7a10",
		Kind:      "welcome",
	})
	require.ErrorIs(t, err, ErrNoContactNumber)
}

func TestFollowUpComposesLeadLink(t *testing.T) {
	leads := newLeadRepoStub(models.Lead{
		ID:     "l1",
		Name:   "Riya",
		Phone:  "98765 43210",
		Course: models.CourseAdvanced,
		Status: models.LeadStatusContacted,
	})
	svc := newMessageServiceWithLeads(newStudentRepoStub(), &paymentRepoStub{}, leads, "")

	link, err := svc.FollowUp(context.Background(), dto.FollowUpRequest{LeadID: "l1"})
	require.NoError(t, err)
	require.Equal(t, "l1", link.LeadID)
	require.Equal(t, "919876543210", link.Number)
	require.Contains(t, link.Link, "https://wa.me/919876543210?text=")
	require.Contains(t, link.Message, "Riya")
	require.Contains(t, link.Message, models.CourseAdvanced)
	require.Contains(t, link.Message, "demo class")
}

func TestFollowUpLeadWithoutPhone(t *testing.T) {
	leads := newLeadRepoStub(models.Lead{ID: "l1", Name: "Riya", Status: models.LeadStatusNew})
	svc := newMessageServiceWithLeads(newStudentRepoStub(), &paymentRepoStub{}, leads, "")

	_, err := svc.FollowUp(context.Background(), dto.FollowUpRequest{LeadID: "l1"})
	require.ErrorIs(t, err, ErrNoContactNumber)
}

func TestFollowUpMissingLead(t *testing.T) {
	svc := newMessageServiceWithLeads(newStudentRepoStub(), &paymentRepoStub{}, newLeadRepoStub(), "")

	_, err := svc.FollowUp(context.Background(), dto.FollowUpRequest{LeadID: "missing"})
	require.ErrorIs(t, err, ErrLeadNotFound)
}

func TestBroadcastReportsUnreachableStudents(t *testing.T) {
	students := newStudentRepoStub(
		models.Student{ID: "s1", Name: "Ananya", Status: models.StudentStatusActive, WhatsApp: "9898989898"},
		models.Student{ID: "s2", Name: "Kabir", Status: models.StudentStatusActive},
		models.Student{ID: "s3", Name: "Left", Status: models.StudentStatusInactive, WhatsApp: "9111111111"},
	)
	svc := newMessageService(students, &paymentRepoStub{}, "")

	response, err := svc.Broadcast(context.Background(), dto.BroadcastRequest{
		Title:    "Exhibition",
		Body:     "Submissions close soon.",
		Audience: models.AudienceParents,
	})
	require.NoError(t, err)
	require.Len(t, response.Links, 1)
	require.Equal(t, "s1", response.Links[0].StudentID)
	require.Len(t, response.Failures, 1)
	require.Equal(t, "s2", response.Failures[0].StudentID)
}

func TestBroadcastToAdminNumber(t *testing.T) {
	svc := newMessageService(newStudentRepoStub(), &paymentRepoStub{}, "+91 90000 00001")

	response, err := svc.Broadcast(context.Background(), dto.BroadcastRequest{
		Title:    "Backup reminder",
		Audience: models.AudienceAdmin,
	})
	require.NoError(t, err)
	require.Len(t, response.Links, 1)
	require.Equal(t, "919000000001", response.Links[0].Number)
}
