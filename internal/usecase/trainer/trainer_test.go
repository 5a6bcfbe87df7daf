package trainer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/trainer-marketplace/internal/db/dbtest"
	"github.com/BruksfildServices01/trainer-marketplace/internal/httperr"
	"github.com/BruksfildServices01/trainer-marketplace/internal/infra/repository"
	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
)

type fixture struct {
	db        *gorm.DB
	trainer   *models.User
	client    *models.User
	published *models.Service
	draft     *models.Service

	profile *GetProfile
	stats   *GetStatistics
}

func setup(t *testing.T) *fixture {
	t.Helper()

	db := dbtest.New(t)
	trainers := repository.NewTrainerGormRepository(db)
	services := repository.NewServiceGormRepository(db)
	reviews := repository.NewReviewGormRepository(db)
	contracts := repository.NewContractGormRepository(db)

	trainer := dbtest.CreateUser(t, db, models.RoleTrainer, "coach@example.com")

	return &fixture{
		db:        db,
		trainer:   trainer,
		client:    dbtest.CreateUser(t, db, models.RoleClient, "client@example.com"),
		published: dbtest.CreateService(t, db, trainer.ID, dbtest.ServiceOpts{Sessions: 2, Duration: 90}),
		draft:     dbtest.CreateService(t, db, trainer.ID, dbtest.ServiceOpts{Status: "not-published"}),
		profile:   NewGetProfile(trainers, services, reviews, contracts),
		stats:     NewGetStatistics(trainers, services, reviews),
	}
}

func (f *fixture) review(t *testing.T, clientID uint, rating int) {
	t.Helper()
	require.NoError(t, f.db.Create(&models.Review{
		ClientID: clientID, TrainerID: f.trainer.ID, Rating: rating, Comment: "ok",
	}).Error)
}

func (f *fixture) views(t *testing.T, serviceID uint) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(&models.View{}).Where("service_id = ?", serviceID).Count(&n).Error)
	return n
}

func TestGetProfile_Public(t *testing.T) {
	f := setup(t)
	f.review(t, f.client.ID, 4)
	other := dbtest.CreateUser(t, f.db, models.RoleClient, "other@example.com")
	f.review(t, other.ID, 5)

	c := dbtest.CreateContract(t, f.db, f.client.ID, f.published.ID, "accepted")
	dbtest.Schedule(t, f.db, c.ID, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), "monday", "10:00")

	out, err := f.profile.Execute(context.Background(), f.trainer.ID, nil)
	require.NoError(t, err)

	assert.Equal(t, f.trainer.ID, out.Trainer.ID)
	require.Len(t, out.Services, 1)
	assert.Equal(t, f.published.ID, out.Services[0].ID)
	assert.Len(t, out.Reviews, 2)
	require.NotNil(t, out.AverageRating)
	assert.Equal(t, 4.5, *out.AverageRating)
	assert.Nil(t, out.Statistics)

	require.Len(t, out.BusySlots, 2)
	assert.Equal(t, "2025-03-03", out.BusySlots[0].Date)
	assert.Equal(t, "2025-03-10", out.BusySlots[1].Date)
	assert.Equal(t, "11:30", out.BusySlots[0].EndTime)

	assert.Equal(t, int64(1), f.views(t, f.published.ID))
	assert.Zero(t, f.views(t, f.draft.ID))
}

func TestGetProfile_Owner(t *testing.T) {
	f := setup(t)
	dbtest.CreateContract(t, f.db, f.client.ID, f.published.ID, "accepted")

	// two visits from a client
	for i := 0; i < 2; i++ {
		_, err := f.profile.Execute(context.Background(), f.trainer.ID, &Viewer{ID: f.client.ID, Role: models.RoleClient})
		require.NoError(t, err)
	}

	out, err := f.profile.Execute(context.Background(), f.trainer.ID, &Viewer{ID: f.trainer.ID, Role: models.RoleTrainer})
	require.NoError(t, err)

	assert.Len(t, out.Services, 2)
	assert.Nil(t, out.AverageRating)
	require.NotNil(t, out.Statistics)
	require.Len(t, out.Statistics.Conversions, 2)

	byID := map[uint]Conversion{}
	for _, c := range out.Statistics.Conversions {
		byID[c.ServiceID] = c
	}
	assert.Equal(t, Conversion{ServiceID: f.published.ID, Views: 2, Contracts: 1, ConversionRate: "50.00%"}, byID[f.published.ID])
	assert.Equal(t, "0.00%", byID[f.draft.ID].ConversionRate)

	// the owner's visit is not counted
	assert.Equal(t, int64(2), f.views(t, f.published.ID))
}

func TestGetProfile_NotATrainer(t *testing.T) {
	f := setup(t)

	_, err := f.profile.Execute(context.Background(), f.client.ID, nil)
	assert.True(t, httperr.IsBusiness(err, "trainer_not_found"))

	_, err = f.profile.Execute(context.Background(), 999, nil)
	assert.True(t, httperr.IsBusiness(err, "trainer_not_found"))
}

func TestGetStatistics(t *testing.T) {
	f := setup(t)
	f.review(t, f.client.ID, 3)

	_, err := f.stats.Execute(context.Background(), f.trainer.ID, Viewer{ID: f.client.ID, Role: models.RoleClient})
	assert.True(t, httperr.IsBusiness(err, "not_trainer_owner"))

	out, err := f.stats.Execute(context.Background(), f.trainer.ID, Viewer{ID: f.trainer.ID, Role: models.RoleTrainer})
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.TotalReviews)
	assert.Equal(t, map[int]int64{3: 1}, out.RatingDistribution)
	require.NotNil(t, out.AverageRating)
	assert.Equal(t, 3.0, *out.AverageRating)
	assert.Len(t, out.Conversions, 2)
}
