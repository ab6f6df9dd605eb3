package service

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/artneelam/studio-api/internal/dto"
	"github.com/artneelam/studio-api/internal/models"
)

func TestRegisterCreatesLead(t *testing.T) {
	repo := newLeadRepoStub()
	svc := NewRegistrationService(repo, zerolog.Nop())

	lead, err := svc.Register(context.Background(), dto.RegistrationRequest{
		Name:   "  Riya Sharma  ",
		Phone:  "+91 98765-43210",
		Email:  "riya@example.com",
		Course: "Advanced",
		Notes:  "weekend batches preferred",
	})
	require.NoError(t, err)
	require.Equal(t, "Riya Sharma", lead.Name)
	require.Equal(t, "9876543210", lead.Phone)
	require.Equal(t, models.CourseAdvanced, lead.Course)
	require.Equal(t, models.LeadStatusNew, lead.Status)
	require.Equal(t, "registration", lead.Source)
}

func TestRegisterRejectsShortName(t *testing.T) {
	svc := NewRegistrationService(newLeadRepoStub(), zerolog.Nop())

	_, err := svc.Register(context.Background(), dto.RegistrationRequest{Name: "R", Phone: "9876543210"})
	require.ErrorIs(t, err, ErrInvalidRegistration)
}

func TestRegisterRejectsBadPhone(t *testing.T) {
	svc := NewRegistrationService(newLeadRepoStub(), zerolog.Nop())

	for _, phone := range []string{"", "12345", "5876543210", "98765432100"} {
		_, err := svc.Register(context.Background(), dto.RegistrationRequest{Name: "Riya", Phone: phone})
		require.ErrorIs(t, err, ErrInvalidRegistration, "phone %q", phone)
	}
}

func TestRegisterRejectsBadEmail(t *testing.T) {
	svc := NewRegistrationService(newLeadRepoStub(), zerolog.Nop())

	_, err := svc.Register(context.Background(), dto.RegistrationRequest{
		Name:  "Riya",
		Phone: "9876543210",
		Email: "not-an-email",
	})
	require.ErrorIs(t, err, ErrInvalidRegistration)
}

func TestRegisterDefaultsUnknownCourse(t *testing.T) {
	repo := newLeadRepoStub()
	svc := NewRegistrationService(repo, zerolog.Nop())

	lead, err := svc.Register(context.Background(), dto.RegistrationRequest{
		Name:   "Riya",
		Phone:  "9876543210",
		Course: "Pottery",
	})
	require.NoError(t, err)
	require.Equal(t, models.CourseBasic, lead.Course)
}

func TestRegisterTruncatesNotes(t *testing.T) {
	repo := newLeadRepoStub()
	svc := NewRegistrationService(repo, zerolog.Nop())

	lead, err := svc.Register(context.Background(), dto.RegistrationRequest{
		Name:  "Riya",
		Phone: "9876543210",
		Notes: strings.Repeat("a", 600),
	})
	require.NoError(t, err)
	require.Len(t, lead.Notes, 500)
}

func TestRegisterDuplicateWithinWindow(t *testing.T) {
	repo := newLeadRepoStub()
	repo.recent = 1
	svc := NewRegistrationService(repo, zerolog.Nop())

	_, err := svc.Register(context.Background(), dto.RegistrationRequest{Name: "Riya", Phone: "9876543210"})
	require.ErrorIs(t, err, ErrDuplicateRegistration)
	// The throttled submission must not leave a lead behind.
	require.Empty(t, repo.leads)
}
