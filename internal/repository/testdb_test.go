package repository

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory SQLite database with the production schema.
// The real schema pre-exists in Postgres; tests recreate it with raw DDL
// (no enum types, no serial) the same way the shared dev database defines it.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// One connection only: every :memory: connection is its own database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	for _, ddl := range []string{
		`CREATE TABLE users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username VARCHAR(50))`,
		`CREATE TABLE posts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT, content TEXT,
			user_id INTEGER,
			created_at DATETIME)`,
		`CREATE TABLE bookings (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER, post_id INTEGER,
			date VARCHAR(20), time VARCHAR(20), duration INTEGER,
			created_at DATETIME,
			active BOOLEAN)`,
		`CREATE TABLE likes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER, post_id INTEGER,
			active BOOLEAN)`,
	} {
		if err := db.Exec(ddl).Error; err != nil {
			t.Fatalf("create schema: %v", err)
		}
	}

	return db
}
