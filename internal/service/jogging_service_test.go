package service

import (
	"context"
	"testing"

	"jogging_tracker/internal/model"

	"github.com/stretchr/testify/assert"
)

func seedJog(t *testing.T, repo *fakeJoggingRepo, userID int, date string) *model.JoggingRecord {
	t.Helper()
	d, err := model.ParseDate(date)
	if err != nil {
		t.Fatalf("bad test date %q: %v", date, err)
	}
	jog := &model.JoggingRecord{UserID: userID, Date: d, Duration: 1800, Distance: 5}
	if err := repo.Create(context.Background(), jog); err != nil {
		t.Fatalf("failed to seed jog: %v", err)
	}
	return jog
}

func TestJoggingService_CreateJog(t *testing.T) {
	repo := newFakeJoggingRepo()
	svc := NewJoggingService(repo)

	date, _ := model.ParseDate("2024-01-01")
	jog, err := svc.CreateJog(context.Background(), 1, model.CreateJoggingRequest{
		Date:     date,
		Duration: 1800,
		Distance: 5,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), jog.ID)
	assert.Equal(t, 1, jog.UserID)
	assert.Equal(t, "00:30:00", jog.Duration.String())
}

func TestJoggingService_ListJogs_ScopedToOwner(t *testing.T) {
	repo := newFakeJoggingRepo()
	svc := NewJoggingService(repo)

	mine := seedJog(t, repo, 1, "2024-01-01")
	seedJog(t, repo, 2, "2024-01-02")

	jogs, err := svc.ListJogs(context.Background(), 1, model.RoleRegular, model.JoggingFilters{})

	assert.NoError(t, err)
	assert.Len(t, jogs, 1)
	assert.Equal(t, mine.ID, jogs[0].ID)
}

func TestJoggingService_ListJogs_ManagerSeesOnlyOwn(t *testing.T) {
	repo := newFakeJoggingRepo()
	svc := NewJoggingService(repo)

	seedJog(t, repo, 1, "2024-01-01")
	theirs := seedJog(t, repo, 2, "2024-01-02")

	// Managers have no special jog privilege
	jogs, err := svc.ListJogs(context.Background(), 2, model.RoleManager, model.JoggingFilters{})

	assert.NoError(t, err)
	assert.Len(t, jogs, 1)
	assert.Equal(t, theirs.ID, jogs[0].ID)
}

func TestJoggingService_ListJogs_AdminSeesAll(t *testing.T) {
	repo := newFakeJoggingRepo()
	svc := NewJoggingService(repo)

	seedJog(t, repo, 1, "2024-01-01")
	seedJog(t, repo, 2, "2024-01-02")

	jogs, err := svc.ListJogs(context.Background(), 3, model.RoleAdmin, model.JoggingFilters{})

	assert.NoError(t, err)
	assert.Len(t, jogs, 2)
}

func TestJoggingService_UpdateJog_Owner(t *testing.T) {
	repo := newFakeJoggingRepo()
	svc := NewJoggingService(repo)

	jog := seedJog(t, repo, 1, "2024-01-01")

	newDistance := 10.0
	updated, err := svc.UpdateJog(context.Background(), jog.ID, 1, model.RoleRegular, model.UpdateJoggingRequest{
		Distance: &newDistance,
	})

	assert.NoError(t, err)
	assert.Equal(t, 10.0, updated.Distance)
	assert.Equal(t, jog.Date, updated.Date) // untouched fields persist
}

func TestJoggingService_UpdateJog_NotOwner_HiddenAsNotFound(t *testing.T) {
	repo := newFakeJoggingRepo()
	svc := NewJoggingService(repo)

	jog := seedJog(t, repo, 1, "2024-01-01")

	newDistance := 10.0
	_, err := svc.UpdateJog(context.Background(), jog.ID, 2, model.RoleRegular, model.UpdateJoggingRequest{
		Distance: &newDistance,
	})

	// Someone else's record reads as absent, not forbidden
	assert.ErrorIs(t, err, ErrJogNotFound)
	assert.Equal(t, 5.0, repo.jogs[jog.ID].Distance)
}

func TestJoggingService_UpdateJog_ManagerNotOwner_Denied(t *testing.T) {
	repo := newFakeJoggingRepo()
	svc := NewJoggingService(repo)

	jog := seedJog(t, repo, 1, "2024-01-01")

	newDistance := 10.0
	_, err := svc.UpdateJog(context.Background(), jog.ID, 2, model.RoleManager, model.UpdateJoggingRequest{
		Distance: &newDistance,
	})

	assert.ErrorIs(t, err, ErrJogNotFound)
}

func TestJoggingService_UpdateJog_AdminAnyRecord(t *testing.T) {
	repo := newFakeJoggingRepo()
	svc := NewJoggingService(repo)

	jog := seedJog(t, repo, 1, "2024-01-01")

	newDistance := 10.0
	updated, err := svc.UpdateJog(context.Background(), jog.ID, 99, model.RoleAdmin, model.UpdateJoggingRequest{
		Distance: &newDistance,
	})

	assert.NoError(t, err)
	assert.Equal(t, 10.0, updated.Distance)
}

func TestJoggingService_DeleteJog_Owner(t *testing.T) {
	repo := newFakeJoggingRepo()
	svc := NewJoggingService(repo)

	jog := seedJog(t, repo, 1, "2024-01-01")

	err := svc.DeleteJog(context.Background(), jog.ID, 1, model.RoleRegular)

	assert.NoError(t, err)
	assert.Empty(t, repo.jogs)
}

func TestJoggingService_DeleteJog_NotOwner_HiddenAsNotFound(t *testing.T) {
	repo := newFakeJoggingRepo()
	svc := NewJoggingService(repo)

	jog := seedJog(t, repo, 1, "2024-01-01")

	err := svc.DeleteJog(context.Background(), jog.ID, 2, model.RoleRegular)

	assert.ErrorIs(t, err, ErrJogNotFound)
	assert.Len(t, repo.jogs, 1)
}

func TestJoggingService_DeleteJog_Missing(t *testing.T) {
	repo := newFakeJoggingRepo()
	svc := NewJoggingService(repo)

	err := svc.DeleteJog(context.Background(), 404, 1, model.RoleAdmin)

	assert.ErrorIs(t, err, ErrJogNotFound)
}

func TestJoggingService_WeeklyReport(t *testing.T) {
	repo := newFakeJoggingRepo()
	repo.report = []model.WeeklyReportRow{{Year: 2024, Week: 1, AvgDistance: 5, AvgSpeed: 10}}
	svc := NewJoggingService(repo)

	report, err := svc.WeeklyReport(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, repo.report, report)
}
