package records

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"

	"github.com/avasiljevs/gpavault/internal/logging"
	"github.com/avasiljevs/gpavault/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE records (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  user_id TEXT NOT NULL,
  saved_date TEXT NOT NULL,
  semester_num INTEGER NOT NULL,
  unweighted_gpa REAL NOT NULL,
  weighted_gpa REAL NOT NULL,
  pdf_link TEXT NOT NULL
);
CREATE INDEX idx_records_user_id ON records (user_id);
`)
	require.NoError(t, err)

	return db
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestAppend_AssignsID(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db, testLogger())
	ctx := context.Background()

	rec := &models.Record{
		UserID:        "alice",
		SavedDate:     "2024-01-01",
		SemesterNum:   2,
		UnweightedGPA: 3.5,
		WeightedGPA:   3.8,
		PDFLink:       "x.pdf",
	}
	require.NoError(t, r.Append(ctx, rec))
	assert.Positive(t, rec.ID)

	rec2 := &models.Record{UserID: "alice", SavedDate: "2024-01-02", SemesterNum: 1,
		UnweightedGPA: 3.0, WeightedGPA: 3.1, PDFLink: "y.pdf"}
	require.NoError(t, r.Append(ctx, rec2))
	assert.Greater(t, rec2.ID, rec.ID, "ids must be unique and increasing")
}

func TestListByUser_RoundTripAndScoping(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db, testLogger())
	ctx := context.Background()

	saved := &models.Record{
		UserID:        "alice",
		SavedDate:     "2024-01-01",
		SemesterNum:   2,
		UnweightedGPA: 3.5,
		WeightedGPA:   3.8,
		PDFLink:       "x.pdf",
	}
	require.NoError(t, r.Append(ctx, saved))
	require.NoError(t, r.Append(ctx, &models.Record{UserID: "bob", SavedDate: "2024-02-02",
		SemesterNum: 4, UnweightedGPA: 2.9, WeightedGPA: 3.0, PDFLink: "b.pdf"}))

	got, err := r.ListByUser(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, *saved, got[0])

	got, err = r.ListByUser(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListByUser_SkipsMalformedSavedDate(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db, testLogger())
	ctx := context.Background()

	_, err := db.Exec(`INSERT INTO records(user_id, saved_date, semester_num, unweighted_gpa, weighted_gpa, pdf_link) VALUES
	  ('alice', '2024-01-01', 1, 3.0, 3.2, 'a.pdf'),
	  ('alice', 'not-a-date', 2, 3.1, 3.3, 'b.pdf'),
	  ('alice', '2024-03-01', 3, 3.2, 3.4, 'c.pdf')
	`)
	require.NoError(t, err)

	got, err := r.ListByUser(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, got, 2, "malformed row is omitted, the rest are returned")
	for _, rec := range got {
		assert.NotEqual(t, "not-a-date", rec.SavedDate)
	}
}

func TestDeleteOne_ScopedAndIdempotent(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db, testLogger())
	ctx := context.Background()

	rec := &models.Record{UserID: "alice", SavedDate: "2024-01-01", SemesterNum: 1,
		UnweightedGPA: 3.0, WeightedGPA: 3.0, PDFLink: "a.pdf"}
	require.NoError(t, r.Append(ctx, rec))

	// deleting with the wrong owner must not remove the record
	require.NoError(t, r.DeleteOne(ctx, "bob", rec.ID))
	got, err := r.ListByUser(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, got, 1)

	require.NoError(t, r.DeleteOne(ctx, "alice", rec.ID))
	got, err = r.ListByUser(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, got)

	// no-op on a record that no longer exists
	require.NoError(t, r.DeleteOne(ctx, "alice", rec.ID))
	require.NoError(t, r.DeleteOne(ctx, "alice", 99999))
}

func TestDeleteAll_LeavesOtherUsersUntouched(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db, testLogger())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, r.Append(ctx, &models.Record{UserID: "alice", SavedDate: "2024-01-01",
			SemesterNum: i, UnweightedGPA: 3.0, WeightedGPA: 3.0, PDFLink: "a.pdf"}))
	}
	require.NoError(t, r.Append(ctx, &models.Record{UserID: "bob", SavedDate: "2024-01-01",
		SemesterNum: 1, UnweightedGPA: 2.0, WeightedGPA: 2.0, PDFLink: "b.pdf"}))

	require.NoError(t, r.DeleteAll(ctx, "alice"))

	got, err := r.ListByUser(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = r.ListByUser(ctx, "bob")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestDeleteAll_EmptyUserIsNoop(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db, testLogger())

	require.NoError(t, r.DeleteAll(context.Background(), "nobody"))
}
