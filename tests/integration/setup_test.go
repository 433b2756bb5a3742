//go:build integration

package integration

import (
	"fmt"
	"log"
	"os"
	"testing"

	"github.com/omarfessi/fyyur/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getEnv("TEST_DB_HOST", "localhost"),
		getEnv("TEST_DB_PORT", "5432"),
		getEnv("TEST_DB_USER", "postgres"),
		getEnv("TEST_DB_PASSWORD", "postgres"),
		getEnv("TEST_DB_NAME", "fyyur_test"),
	)

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to test database: %v", err)
	}

	// Drop and recreate tables for clean state
	testDB.Exec("DROP TABLE IF EXISTS shows")
	testDB.Exec("DROP TABLE IF EXISTS venues")
	testDB.Exec("DROP TABLE IF EXISTS artists")

	if err := testDB.AutoMigrate(&models.Venue{}, &models.Artist{}, &models.Show{}); err != nil {
		log.Fatalf("failed to auto-migrate test database: %v", err)
	}

	code := m.Run()

	testDB.Exec("DROP TABLE IF EXISTS shows")
	testDB.Exec("DROP TABLE IF EXISTS venues")
	testDB.Exec("DROP TABLE IF EXISTS artists")

	os.Exit(code)
}

func cleanTables() {
	testDB.Exec("DELETE FROM shows")
	testDB.Exec("DELETE FROM venues")
	testDB.Exec("DELETE FROM artists")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
