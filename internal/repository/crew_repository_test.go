package repository

import (
    "context"
    "testing"

    "github.com/DATA-DOG/go-sqlmock"
)

func TestExistAllDeduplicatesIDs(t *testing.T) {
    db, mock, err := sqlmock.New()
    if err != nil {
        t.Fatalf("sqlmock.New: %v", err)
    }
    defer db.Close()
    repo := NewCrewRepo(db)

    // A journey body rostering the same crew member twice must still
    // pass when that member exists: one placeholder, one matched row.
    mock.ExpectQuery(`SELECT COUNT\(\*\) FROM crews WHERE id IN \(\?\)`).
        WithArgs(2).
        WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

    ok, err := repo.ExistAll(context.Background(), []uint64{2, 2})
    if err != nil {
        t.Fatalf("ExistAll returned error: %v", err)
    }
    if !ok {
        t.Fatal("ExistAll = false for a duplicated but existing id, want true")
    }
    if err := mock.ExpectationsWereMet(); err != nil {
        t.Fatalf("unmet expectations: %v", err)
    }
}

func TestExistAllReportsMissingID(t *testing.T) {
    db, mock, err := sqlmock.New()
    if err != nil {
        t.Fatalf("sqlmock.New: %v", err)
    }
    defer db.Close()
    repo := NewCrewRepo(db)

    mock.ExpectQuery(`SELECT COUNT\(\*\) FROM crews WHERE id IN \(\?,\?\)`).
        WithArgs(2, 99).
        WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

    ok, err := repo.ExistAll(context.Background(), []uint64{2, 99})
    if err != nil {
        t.Fatalf("ExistAll returned error: %v", err)
    }
    if ok {
        t.Fatal("ExistAll = true with an unknown id, want false")
    }
}
