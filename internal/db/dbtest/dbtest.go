// Package dbtest opens throwaway SQLite databases with the production schema
// and offers small fixture builders for tests.
package dbtest

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbpkg "github.com/BruksfildServices01/trainer-marketplace/internal/db"
	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
)

func New(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, dbpkg.Migrate(db))
	return db
}

func CreateUser(t testing.TB, db *gorm.DB, role, email string) *models.User {
	t.Helper()

	u := &models.User{
		FirstName:    "Test",
		LastName:     role,
		Email:        email,
		PasswordHash: "x",
		Role:         role,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func CreateCategory(t testing.TB, db *gorm.DB, name string) *models.Category {
	t.Helper()

	c := &models.Category{Name: name}
	require.NoError(t, db.Create(c).Error)
	return c
}

func CreateZone(t testing.TB, db *gorm.DB, name string) *models.Zone {
	t.Helper()

	z := &models.Zone{Name: name}
	require.NoError(t, db.Create(z).Error)
	return z
}

// ServiceOpts tweaks CreateService. Zero values fall back to a published
// 60 minute, 4 session, in-person service offered monday/wednesday 09:00-18:00.
type ServiceOpts struct {
	Days      []string
	StartTime string
	EndTime   string
	Status    string
	Price     float64
	Duration  int
	Sessions  int
}

func CreateService(t testing.TB, db *gorm.DB, trainerID uint, opts ServiceOpts) *models.Service {
	t.Helper()

	if len(opts.Days) == 0 {
		opts.Days = []string{"monday", "wednesday"}
	}
	if opts.StartTime == "" {
		opts.StartTime = "09:00"
	}
	if opts.EndTime == "" {
		opts.EndTime = "18:00"
	}
	if opts.Status == "" {
		opts.Status = "published"
	}
	if opts.Price == 0 {
		opts.Price = 100
	}
	if opts.Duration == 0 {
		opts.Duration = 60
	}
	if opts.Sessions == 0 {
		opts.Sessions = 4
	}

	var cat models.Category
	require.NoError(t, db.FirstOrCreate(&cat, models.Category{Name: "strength"}).Error)
	var zone models.Zone
	require.NoError(t, db.FirstOrCreate(&zone, models.Zone{Name: "centro"}).Error)

	s := &models.Service{
		TrainerID:       trainerID,
		CategoryID:      cat.ID,
		ZoneID:          zone.ID,
		Description:     "personal training",
		DurationMinutes: opts.Duration,
		SessionCount:    opts.Sessions,
		Price:           opts.Price,
		Mode:            "in-person",
		Address:         "Main St 123",
		StartTime:       opts.StartTime,
		EndTime:         opts.EndTime,
		Status:          opts.Status,
	}
	require.NoError(t, db.Create(s).Error)

	for _, d := range opts.Days {
		require.NoError(t, db.Create(&models.ServiceDay{ServiceID: s.ID, Day: d}).Error)
	}
	return s
}

func CreateContract(t testing.TB, db *gorm.DB, clientID, serviceID uint, status string) *models.Contract {
	t.Helper()

	c := &models.Contract{
		ClientID:  clientID,
		ServiceID: serviceID,
		Status:    status,
	}
	require.NoError(t, db.Create(c).Error)
	return c
}

// Schedule writes a slot directly, bypassing the booking rules.
func Schedule(t testing.TB, db *gorm.DB, contractID uint, date time.Time, weekday, start string) {
	t.Helper()

	require.NoError(t, db.Model(&models.Contract{}).
		Where("id = ?", contractID).
		Updates(map[string]any{
			"start_date": date,
			"weekday":    weekday,
			"start_time": start,
		}).Error)
}
