package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/avasiljevs/gpavault/internal/dbx"
	"github.com/avasiljevs/gpavault/internal/logging"
	"github.com/avasiljevs/gpavault/internal/models"
	"github.com/avasiljevs/gpavault/internal/repositories/records"
)

// RecordInput is the caller-supplied part of a record. The owner and id are
// filled in by the service; callers never choose either.
type RecordInput struct {
	SavedDate     string
	SemesterNum   int
	UnweightedGPA float64
	WeightedGPA   float64
	PDFLink       string
}

// RecordService mediates every record operation for an active session. The
// session token scopes each call to its own user; there is no way to address
// another user's records through this service.
type RecordService struct {
	db       *sql.DB
	sessions SessionResolver
	log      logging.Logger
}

// NewRecordService constructs a RecordService bound to the shared database
// handle and a session resolver.
func NewRecordService(db *sql.DB, sessions SessionResolver, log logging.Logger) *RecordService {
	return &RecordService{db: db, sessions: sessions, log: log}
}

func (s *RecordService) repo(db dbx.DBTX) records.Repository {
	return records.NewSQLiteRepository(db, s.log)
}

// Save appends a new record for the session's user. An empty SavedDate is
// stamped with the current time, as the original save action did.
func (s *RecordService) Save(ctx context.Context, token string, input RecordInput) error {
	session, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		return err
	}

	savedDate := input.SavedDate
	if savedDate == "" {
		savedDate = time.Now().Format(time.RFC3339)
	}

	record := &models.Record{
		UserID:        session.UserID,
		SavedDate:     savedDate,
		SemesterNum:   input.SemesterNum,
		UnweightedGPA: input.UnweightedGPA,
		WeightedGPA:   input.WeightedGPA,
		PDFLink:       input.PDFLink,
	}
	if err := s.repo(s.db).Append(ctx, record); err != nil {
		return fmt.Errorf("error saving record: %w", err)
	}

	s.log.Info(ctx, "record saved", "user", session.UserID, "id", record.ID)
	return nil
}

// List returns every record owned by the session's user, unsorted. Display
// order is the caller's concern.
func (s *RecordService) List(ctx context.Context, token string) ([]models.Record, error) {
	session, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	result, err := s.repo(s.db).ListByUser(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("error listing records: %w", err)
	}
	return result, nil
}

// Delete removes a single record by id. Deleting a record that is already
// gone succeeds.
func (s *RecordService) Delete(ctx context.Context, token string, id int64) error {
	session, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		return err
	}

	if err := s.repo(s.db).DeleteOne(ctx, session.UserID, id); err != nil {
		return fmt.Errorf("error deleting record: %w", err)
	}

	s.log.Info(ctx, "record deleted", "user", session.UserID, "id", id)
	return nil
}

// DeleteAll removes every record owned by the session's user. The delete
// runs in a transaction, so every record visible when it starts is gone when
// it commits; appends racing with it land either entirely before or entirely
// after.
func (s *RecordService) DeleteAll(ctx context.Context, token string) error {
	session, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		return err
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repo(tx).DeleteAll(ctx, session.UserID)
	})
	if err != nil {
		return fmt.Errorf("error deleting records: %w", err)
	}

	s.log.Info(ctx, "all records deleted", "user", session.UserID)
	return nil
}
