package model

import (
	"database/sql"
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jinzhu/gorm"
)

var mock sqlmock.Sqlmock

var errForced = errors.New("forced error")

// TestMain replaces the shared connection with a sqlmock-backed one
func TestMain(m *testing.M) {
	var db *sql.DB
	var err error
	db, mock, err = sqlmock.New()
	if err != nil {
		panic("failed to open sqlmock database")
	}

	DB, _ = gorm.Open("mysql", db)
	defer db.Close()

	m.Run()
}
