package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/trainer-marketplace/internal/db/dbtest"
	"github.com/BruksfildServices01/trainer-marketplace/internal/infra/repository"
	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
)

func TestResetSweeper(t *testing.T) {
	db := dbtest.New(t)
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, db.Create(&[]models.PasswordReset{
		{Email: "a@example.com", Token: "old", ExpiresAt: now.Add(-time.Hour)},
		{Email: "b@example.com", Token: "fresh", ExpiresAt: now.Add(time.Hour)},
	}).Error)

	s := NewResetSweeper(repository.NewUserGormRepository(db))
	s.now = func() time.Time { return now }

	n, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	var left []models.PasswordReset
	require.NoError(t, db.Find(&left).Error)
	require.Len(t, left, 1)
	assert.Equal(t, "fresh", left[0].Token)
}

func TestNewScheduler(t *testing.T) {
	s := NewResetSweeper(repository.NewUserGormRepository(dbtest.New(t)))

	sched, err := NewScheduler("0 1 * * *", time.UTC, s)
	require.NoError(t, err)
	assert.Equal(t, 1, sched.Entries())

	sched.Start()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	sched.Stop(ctx)

	_, err = NewScheduler("not a cron", time.UTC, s)
	assert.Error(t, err)
}
