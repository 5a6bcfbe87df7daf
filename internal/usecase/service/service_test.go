package service

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/trainer-marketplace/internal/db/dbtest"
	domain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/service"
	"github.com/BruksfildServices01/trainer-marketplace/internal/httperr"
	"github.com/BruksfildServices01/trainer-marketplace/internal/infra/repository"
	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
	"github.com/BruksfildServices01/trainer-marketplace/internal/storage"
)

type fixture struct {
	db      *gorm.DB
	repo    *repository.ServiceGormRepository
	store   *storage.Local
	trainer *models.User
}

func setup(t *testing.T) *fixture {
	t.Helper()

	db := dbtest.New(t)
	store, err := storage.NewLocal(t.TempDir(), storage.LocalURLPrefix)
	require.NoError(t, err)

	dbtest.CreateCategory(t, db, "yoga")
	dbtest.CreateZone(t, db, "palermo")

	return &fixture{
		db:      db,
		repo:    repository.NewServiceGormRepository(db),
		store:   store,
		trainer: dbtest.CreateUser(t, db, models.RoleTrainer, "trainer@example.com"),
	}
}

func input() domain.Input {
	return domain.Input{
		Category:        "yoga",
		Description:     "Morning yoga",
		DurationMinutes: 60,
		SessionCount:    8,
		Price:           120,
		Mode:            domain.ModeInPerson,
		Zone:            "palermo",
		Address:         "Plaza 1",
		Days:            []string{"monday", "friday", "funday"},
		StartTime:       "08:00",
		EndTime:         "12:00",
	}
}

func uploads(n int) []Upload {
	out := make([]Upload, n)
	for i := range out {
		out[i] = Upload{Name: "pic.png", Body: strings.NewReader("png")}
	}
	return out
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, code), "expected %s, got %v", code, err)
}

// ======================================================
// Create
// ======================================================

func TestCreateService(t *testing.T) {
	f := setup(t)

	svc, err := NewCreateService(f.repo, f.store, nil).Execute(context.Background(), CreateServiceInput{
		TrainerID: f.trainer.ID,
		Service:   input(),
		Images:    uploads(2),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusNotPublished, svc.Status)
	assert.Equal(t, "palermo", svc.Zone.Name)
	assert.Len(t, svc.Days, 2, "unknown day names are dropped")
	require.Len(t, svc.Images, 2)
	assert.True(t, strings.HasPrefix(svc.Images[0].Path, "/uploads/service-images/"))
}

func TestCreateService_VirtualForcesZoneAndAddress(t *testing.T) {
	f := setup(t)
	in := input()
	in.Mode = domain.ModeVirtual
	in.Zone = ""
	in.Address = "ignored"

	svc, err := NewCreateService(f.repo, f.store, nil).Execute(context.Background(), CreateServiceInput{
		TrainerID: f.trainer.ID, Service: in,
	})
	require.NoError(t, err)
	assert.Equal(t, models.VirtualZoneName, svc.Zone.Name)
	assert.Equal(t, models.VirtualZoneName, svc.Address)
}

func TestCreateService_Validation(t *testing.T) {
	f := setup(t)
	uc := NewCreateService(f.repo, f.store, nil)

	cases := map[string]func(*domain.Input){
		"invalid_mode":            func(in *domain.Input) { in.Mode = "hybrid" },
		"missing_zone_or_address": func(in *domain.Input) { in.Address = "" },
		"invalid_time":            func(in *domain.Input) { in.StartTime = "8:00" },
		"invalid_time_range":      func(in *domain.Input) { in.StartTime = "12:00" },
		"invalid_days":            func(in *domain.Input) { in.Days = []string{"lunes"} },
		"invalid_service_fields":  func(in *domain.Input) { in.Price = 0 },
		"category_not_found":      func(in *domain.Input) { in.Category = "boxing" },
		"zone_not_found":          func(in *domain.Input) { in.Zone = "atlantis" },
	}

	for code, mutate := range cases {
		in := input()
		mutate(&in)
		_, err := uc.Execute(context.Background(), CreateServiceInput{TrainerID: f.trainer.ID, Service: in})
		assertCode(t, err, code)
	}

	var count int64
	f.db.Model(&models.Service{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateService_ImageCap(t *testing.T) {
	f := setup(t)

	_, err := NewCreateService(f.repo, f.store, nil).Execute(context.Background(), CreateServiceInput{
		TrainerID: f.trainer.ID, Service: input(), Images: uploads(5),
	})
	assertCode(t, err, "too_many_images")
}

func TestCreateService_FailureRemovesUploads(t *testing.T) {
	f := setup(t)
	in := input()
	in.Category = "boxing"

	_, err := NewCreateService(f.repo, f.store, nil).Execute(context.Background(), CreateServiceInput{
		TrainerID: f.trainer.ID, Service: in, Images: uploads(1),
	})
	assertCode(t, err, "category_not_found")

	entries, _ := filepathGlob(f.store.Root(), storage.DirServiceImages)
	assert.Empty(t, entries)
}

// ======================================================
// Update
// ======================================================

func TestUpdateService_ImageCap(t *testing.T) {
	f := setup(t)
	created, err := NewCreateService(f.repo, f.store, nil).Execute(context.Background(), CreateServiceInput{
		TrainerID: f.trainer.ID, Service: input(), Images: uploads(3),
	})
	require.NoError(t, err)
	uc := NewUpdateService(f.repo, f.store, nil)

	// 3 - 0 + 2 > 4
	_, err = uc.Execute(context.Background(), UpdateServiceInput{
		TrainerID: f.trainer.ID, ServiceID: created.ID, Service: input(), Images: uploads(2),
	})
	assertCode(t, err, "too_many_images")

	// unknown paths do not count as removed
	_, err = uc.Execute(context.Background(), UpdateServiceInput{
		TrainerID: f.trainer.ID, ServiceID: created.ID, Service: input(),
		RemoveImages: []string{"/uploads/service-images/nope.png"},
		Images:       uploads(2),
	})
	assertCode(t, err, "too_many_images")

	// 3 - 1 + 2 = 4
	updated, err := uc.Execute(context.Background(), UpdateServiceInput{
		TrainerID: f.trainer.ID, ServiceID: created.ID, Service: input(),
		RemoveImages: []string{created.Images[0].Path},
		Images:       uploads(2),
	})
	require.NoError(t, err)
	assert.Len(t, updated.Images, 4)
}

func TestUpdateService_Fields(t *testing.T) {
	f := setup(t)
	created, err := NewCreateService(f.repo, f.store, nil).Execute(context.Background(), CreateServiceInput{
		TrainerID: f.trainer.ID, Service: input(),
	})
	require.NoError(t, err)

	in := input()
	in.Price = 200
	in.Days = []string{"saturday"}

	updated, err := NewUpdateService(f.repo, f.store, nil).Execute(context.Background(), UpdateServiceInput{
		TrainerID: f.trainer.ID, ServiceID: created.ID, Service: in,
	})
	require.NoError(t, err)
	assert.Equal(t, 200.0, updated.Price)
	require.Len(t, updated.Days, 1)
	assert.Equal(t, "saturday", updated.Days[0].Day)
}

func TestUpdateService_OwnerOnly(t *testing.T) {
	f := setup(t)
	svc := dbtest.CreateService(t, f.db, f.trainer.ID, dbtest.ServiceOpts{})
	intruder := dbtest.CreateUser(t, f.db, models.RoleTrainer, "intruder@example.com")

	_, err := NewUpdateService(f.repo, f.store, nil).Execute(context.Background(), UpdateServiceInput{
		TrainerID: intruder.ID, ServiceID: svc.ID, Service: input(),
	})
	assertCode(t, err, "not_service_owner")
}

// ======================================================
// Status / delete
// ======================================================

func TestSetServiceStatus(t *testing.T) {
	f := setup(t)
	svc := dbtest.CreateService(t, f.db, f.trainer.ID, dbtest.ServiceOpts{Status: domain.StatusNotPublished})
	uc := NewSetServiceStatus(f.repo, nil)

	_, err := uc.Execute(context.Background(), f.trainer.ID, svc.ID, "draft")
	assertCode(t, err, "invalid_status")

	got, err := uc.Execute(context.Background(), f.trainer.ID, svc.ID, domain.StatusPublished)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPublished, got.Status)

	_, err = uc.Execute(context.Background(), f.trainer.ID, 999, domain.StatusPublished)
	assertCode(t, err, "service_not_found")
}

func TestDeleteService(t *testing.T) {
	f := setup(t)
	svc := dbtest.CreateService(t, f.db, f.trainer.ID, dbtest.ServiceOpts{})
	require.NoError(t, f.repo.RecordViews(context.Background(), svc.ID))

	require.NoError(t, NewDeleteService(f.repo, f.store, nil).Execute(context.Background(), f.trainer.ID, svc.ID))

	var services, days, views int64
	f.db.Model(&models.Service{}).Count(&services)
	f.db.Model(&models.ServiceDay{}).Count(&days)
	f.db.Model(&models.View{}).Count(&views)
	assert.Zero(t, services+days+views)
}

// ======================================================
// Search / detail
// ======================================================

func TestSearchServices(t *testing.T) {
	f := setup(t)
	other := dbtest.CreateUser(t, f.db, models.RoleTrainer, "other@example.com")
	client := dbtest.CreateUser(t, f.db, models.RoleClient, "client@example.com")

	cheap := dbtest.CreateService(t, f.db, f.trainer.ID, dbtest.ServiceOpts{Price: 50})
	pricey := dbtest.CreateService(t, f.db, other.ID, dbtest.ServiceOpts{Price: 500, Duration: 90})
	dbtest.CreateService(t, f.db, other.ID, dbtest.ServiceOpts{Status: domain.StatusUnpublished})

	require.NoError(t, f.db.Create(&models.Review{ClientID: client.ID, TrainerID: other.ID, Rating: 5}).Error)

	uc := NewSearchServices(f.repo)

	all, err := uc.Execute(context.Background(), domain.SearchFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2, "only published services")
	assert.Equal(t, pricey.ID, all[0].ID, "highest rated trainer first")
	assert.Equal(t, 5.0, all[0].TrainerAverageRating)
	assert.Equal(t, 0.0, all[1].TrainerAverageRating)

	maxPrice := 100.0
	res, err := uc.Execute(context.Background(), domain.SearchFilter{MaxPrice: &maxPrice})
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, cheap.ID, res[0].ID)

	minRating := 4.0
	res, err = uc.Execute(context.Background(), domain.SearchFilter{MinRating: &minRating})
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, pricey.ID, res[0].ID)

	maxDuration := 60
	res, err = uc.Execute(context.Background(), domain.SearchFilter{MaxDuration: &maxDuration, Limit: 5})
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, cheap.ID, res[0].ID)

	res, err = uc.Execute(context.Background(), domain.SearchFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, res, 1)
}

func TestGetServiceDetail(t *testing.T) {
	f := setup(t)
	published := dbtest.CreateService(t, f.db, f.trainer.ID, dbtest.ServiceOpts{})
	hidden := dbtest.CreateService(t, f.db, f.trainer.ID, dbtest.ServiceOpts{Status: domain.StatusNotPublished})
	uc := NewGetServiceDetail(f.repo)

	out, err := uc.Execute(context.Background(), published.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"monday", "wednesday"}, out.AvailableDays)
	assert.Equal(t, f.trainer.ID, out.Trainer.ID)
	assert.Nil(t, out.Trainer.AverageRating)

	var views int64
	f.db.Model(&models.View{}).Where("service_id = ?", published.ID).Count(&views)
	assert.Equal(t, int64(1), views)

	_, err = uc.Execute(context.Background(), hidden.ID)
	assertCode(t, err, "service_not_found")
}

func TestListTrainerServices(t *testing.T) {
	f := setup(t)
	dbtest.CreateService(t, f.db, f.trainer.ID, dbtest.ServiceOpts{})
	dbtest.CreateService(t, f.db, f.trainer.ID, dbtest.ServiceOpts{Status: domain.StatusUnpublished})
	uc := NewListTrainerServices(f.repo)

	out, err := uc.Execute(context.Background(), f.trainer.ID, f.trainer.ID)
	require.NoError(t, err)
	assert.Len(t, out, 2)

	_, err = uc.Execute(context.Background(), f.trainer.ID+1, f.trainer.ID)
	assertCode(t, err, "not_trainer_owner")
}

func filepathGlob(root, dir string) ([]string, error) {
	return filepath.Glob(filepath.Join(root, dir, "*"))
}
