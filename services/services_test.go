package services

import (
	"testing"

	"learnity/database"
	"learnity/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a fresh in-memory database with the same migrations and
// error translation the production connection uses.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, first, last, email string) models.User {
	t.Helper()

	user := models.User{FirstName: first, LastName: last, Email: email}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedCourse(t *testing.T, db *gorm.DB, title string, categoryID uint) models.Course {
	t.Helper()

	course := models.Course{Title: title, CategoryID: categoryID}
	require.NoError(t, db.Create(&course).Error)
	return course
}
