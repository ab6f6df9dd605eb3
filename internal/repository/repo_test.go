package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/artneelam/studio-api/internal/models"
)

func setupTestDB(t *testing.T, entities ...interface{}) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(entities...))
	return db
}

func TestAttendanceUpsertKeepsOneMarkPerDay(t *testing.T) {
	db := setupTestDB(t, &models.AttendanceRecord{})
	repo := NewAttendanceRepository(db)
	ctx := context.Background()

	first := models.AttendanceRecord{StudentID: "s1", Date: "2026-02-01", Status: models.AttendanceAbsent, Batch: "Basic 1 (1:00 PM - 2:30 PM)"}
	require.NoError(t, repo.Upsert(ctx, &first))

	corrected := models.AttendanceRecord{StudentID: "s1", Date: "2026-02-01", Status: models.AttendanceLate, Batch: first.Batch}
	require.NoError(t, repo.Upsert(ctx, &corrected))

	records, err := repo.List(ctx, AttendanceFilter{StudentID: "s1"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, models.AttendanceLate, records[0].Status)

	other := models.AttendanceRecord{StudentID: "s1", Date: "2026-02-02", Status: models.AttendancePresent}
	require.NoError(t, repo.Upsert(ctx, &other))

	records, err = repo.List(ctx, AttendanceFilter{StudentID: "s1"})
	require.NoError(t, err)
	require.Len(t, records, 2)
}

func TestStudentRollNumbersAreSequential(t *testing.T) {
	db := setupTestDB(t, &models.Student{})
	repo := NewStudentRepository(db)
	ctx := context.Background()

	roll, err := repo.NextRollNumber(ctx)
	require.NoError(t, err)
	require.Equal(t, "ANA-0001", roll)

	student := models.Student{RollNumber: roll, Name: "Asha", Course: models.CourseBasic, Batch: models.Batches[0], TotalSessions: 24, Status: models.StudentStatusActive}
	require.NoError(t, repo.Create(ctx, &student))

	roll, err = repo.NextRollNumber(ctx)
	require.NoError(t, err)
	require.Equal(t, "ANA-0002", roll)
}

func TestLeadCountRecentByPhone(t *testing.T) {
	db := setupTestDB(t, &models.Lead{})
	repo := NewLeadRepository(db)
	ctx := context.Background()

	lead := models.Lead{Name: "Ravi", Phone: "9876543210", Status: models.LeadStatusNew}
	require.NoError(t, repo.Create(ctx, &lead))

	count, err := repo.CountRecentByPhone(ctx, "9876543210", time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	count, err = repo.CountRecentByPhone(ctx, "9876543210", time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.Zero(t, count)

	count, err = repo.CountRecentByPhone(ctx, "9999999999", time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestLeadUpdateStatusMissingRow(t *testing.T) {
	db := setupTestDB(t, &models.Lead{})
	repo := NewLeadRepository(db)

	err := repo.UpdateStatus(context.Background(), "missing", models.LeadStatusDemo)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestNoticeListIncludesAudienceAll(t *testing.T) {
	db := setupTestDB(t, &models.Notice{})
	repo := NewNoticeRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Notice{Title: "Holiday", Date: "2026-01-10", Audience: models.AudienceAll}))
	require.NoError(t, repo.Create(ctx, &models.Notice{Title: "PTA", Date: "2026-01-12", Audience: models.AudienceParents}))
	require.NoError(t, repo.Create(ctx, &models.Notice{Title: "Stocktake", Date: "2026-01-11", Audience: models.AudienceAdmin}))

	notices, err := repo.List(ctx, NoticeFilter{Audience: models.AudienceParents})
	require.NoError(t, err)
	require.Len(t, notices, 2)
	require.Equal(t, "PTA", notices[0].Title)
	require.Equal(t, "Holiday", notices[1].Title)
}

func TestSettingsGetCreatesDefaultRow(t *testing.T) {
	db := setupTestDB(t, &models.Settings{})
	repo := NewSettingsRepository(db)
	ctx := context.Background()

	settings, err := repo.Get(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, settings.ID)

	toggles := settings.Toggles.Data()
	require.True(t, toggles.WhatsAppAlerts)
	require.False(t, toggles.AutoFollowUp)

	again, err := repo.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, settings.ID, again.ID, "get must not create a second row")
}
