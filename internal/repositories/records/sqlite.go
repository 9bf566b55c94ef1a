// Package records provides the SQLite-backed repository for saved GPA
// records.
package records

import (
	"context"
	"fmt"

	"github.com/avasiljevs/gpavault/internal/dbx"
	"github.com/avasiljevs/gpavault/internal/logging"
	"github.com/avasiljevs/gpavault/internal/models"
)

// SQLiteRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db  dbx.DBTX
	log logging.Logger
}

// NewSQLiteRepository returns a repository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX, log logging.Logger) *SQLiteRepository {
	return &SQLiteRepository{db: db, log: log}
}

// Append inserts the record and fills in the autoincrement id.
func (r *SQLiteRepository) Append(ctx context.Context, record *models.Record) error {
	query := `
		INSERT INTO records (user_id, saved_date, semester_num, unweighted_gpa, weighted_gpa, pdf_link)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	res, err := r.db.ExecContext(ctx, query,
		record.UserID, record.SavedDate, record.SemesterNum,
		record.UnweightedGPA, record.WeightedGPA, record.PDFLink)
	if err != nil {
		return fmt.Errorf("failed to insert record: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get record id: %w", err)
	}
	record.ID = id
	return nil
}

// ListByUser selects all records owned by userID. A row whose saved_date
// cannot be parsed is logged and dropped; the rest of the batch is returned.
func (r *SQLiteRepository) ListByUser(ctx context.Context, userID string) ([]models.Record, error) {
	query := `
		SELECT id, user_id, saved_date, semester_num, unweighted_gpa, weighted_gpa, pdf_link
		FROM records WHERE user_id = ?
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select records: %w", err)
	}
	defer rows.Close()

	var result []models.Record
	for rows.Next() {
		var item models.Record
		if err := rows.Scan(&item.ID, &item.UserID, &item.SavedDate, &item.SemesterNum,
			&item.UnweightedGPA, &item.WeightedGPA, &item.PDFLink); err != nil {
			return nil, err
		}
		if _, err := item.SavedTime(); err != nil {
			r.log.Warn(ctx, "skipping record with invalid saved date",
				"id", item.ID, "user", item.UserID, "saved_date", item.SavedDate)
			continue
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteOne removes a single record scoped to its owner. Zero rows affected
// means the record was already gone, which is fine.
func (r *SQLiteRepository) DeleteOne(ctx context.Context, userID string, id int64) error {
	query := `DELETE FROM records WHERE id = ? AND user_id = ?`

	if _, err := r.db.ExecContext(ctx, query, id, userID); err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	return nil
}

// DeleteAll removes every record owned by userID. Run it inside dbx.WithTx
// when the caller needs the delete to cover a consistent snapshot.
func (r *SQLiteRepository) DeleteAll(ctx context.Context, userID string) error {
	query := `DELETE FROM records WHERE user_id = ?`

	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to delete records: %w", err)
	}
	return nil
}
