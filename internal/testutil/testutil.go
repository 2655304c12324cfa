// Package testutil builds throwaway catalog databases for tests.
package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"mangacatalog/internal/microservices/http-api/models"
)

// NewDB opens a migrated sqlite database in t's temp dir.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "catalog.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// Fixture holds the rows created by Seed.
type Fixture struct {
	Japan  models.Country
	Korea  models.Country
	Manga  models.Type
	Manhwa models.Type
}

// Seed inserts two countries and two types.
func Seed(t *testing.T, db *gorm.DB) Fixture {
	t.Helper()

	f := Fixture{
		Japan:  models.Country{Name: "Japon"},
		Korea:  models.Country{Name: "Corea del Sur"},
		Manga:  models.Type{Name: "Manga"},
		Manhwa: models.Type{Name: "Manhwa"},
	}
	require.NoError(t, db.Create(&f.Japan).Error)
	require.NoError(t, db.Create(&f.Korea).Error)
	require.NoError(t, db.Create(&f.Manga).Error)
	require.NoError(t, db.Create(&f.Manhwa).Error)
	return f
}

// CreateManga inserts a manga referencing country and typ.
func CreateManga(t *testing.T, db *gorm.DB, name string, country models.Country, typ models.Type) models.Manga {
	t.Helper()

	m := models.Manga{
		Name:        name,
		ReleaseDate: time.Date(1997, time.July, 22, 0, 0, 0, 0, time.UTC),
		Seasons:     2,
		IsAnimation: true,
		CountryID:   country.ID,
		TypeID:      typ.ID,
	}
	require.NoError(t, db.Omit("Country", "Type", "Users").Create(&m).Error)
	m.Country = country
	m.Type = typ
	return m
}

// AttachUser creates a user and associates it with m.
func AttachUser(t *testing.T, db *gorm.DB, m *models.Manga, name string) models.User {
	t.Helper()

	u := models.User{Name: name, Email: name + "@example.com"}
	require.NoError(t, db.Create(&u).Error)
	require.NoError(t, db.Model(m).Association("Users").Append(&u))
	return u
}
