package repository

import (
	"context"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"webscaffold/src/model"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm over sqlmock: %v", err)
	}
	return db, mock
}

func newSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get DB from GORM: %v", err)
	}
	// A second connection would get its own empty in-memory database.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&model.FailureRecord{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestFailureRepositoryQueries(t *testing.T) {
	db, mock := newMockDB(t)
	repo := (&FailureRepository{}).WithDB(db)

	rec := &model.FailureRecord{
		Timestamp:   time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC),
		Method:      http.MethodGet,
		URL:         "/api/demo/fail",
		RequestID:   "req-1",
		StatusCode:  http.StatusNotFound,
		Message:     "Not Found",
		Operational: true,
		UserAgent:   "test-agent",
		RemoteAddr:  "203.0.113.9:4242",
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "failure_records" (`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	if err := repo.Create(context.Background(), rec); err != nil {
		t.Fatalf("expected create to succeed, got %v", err)
	}

	latestRows := sqlmock.NewRows([]string{"id", "status_code", "message"}).
		AddRow(2, 500, "boom").
		AddRow(1, 404, "Not Found")

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "failure_records" ORDER BY id DESC LIMIT $1`)).
		WithArgs(50).
		WillReturnRows(latestRows)

	if _, err := repo.FindLatest(context.Background(), 0); err != nil {
		t.Fatalf("expected FindLatest to succeed, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFailureRepositoryRoundTrip(t *testing.T) {
	repo := (&FailureRepository{}).WithDB(newSQLiteDB(t))
	ctx := context.Background()

	for i, msg := range []string{"first", "second", "third"} {
		err := repo.Create(ctx, &model.FailureRecord{
			Timestamp:  time.Now().UTC(),
			Method:     http.MethodGet,
			URL:        "/api/demo/fail",
			StatusCode: 500 + i,
			Message:    msg,
		})
		if err != nil {
			t.Fatalf("failed to create record %d: %v", i, err)
		}
	}

	records, err := repo.FindLatest(ctx, 2)
	if err != nil {
		t.Fatalf("expected FindLatest to succeed, got %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Message != "third" || records[1].Message != "second" {
		t.Fatalf("expected newest first, got %q then %q", records[0].Message, records[1].Message)
	}
}
