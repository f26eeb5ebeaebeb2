package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/hance08/txengine/internal/model"
	sqlite "github.com/mattn/go-sqlite3"
)

func (s *Store) SaveRun(run Run) error {
	_, err := s.db.Exec(`
        INSERT INTO runs (id, input_path, started_at, finished_at, processed, applied, rejected)
        VALUES (?, ?, ?, ?, ?, ?, ?)
    `, run.ID, run.InputPath, run.StartedAt, run.FinishedAt, run.Processed, run.Applied, run.Rejected)
	if err != nil {
		var sqliteErr sqlite.Error
		if errors.As(err, &sqliteErr) && errors.Is(sqliteErr.Code, sqlite.ErrConstraint) {
			return fmt.Errorf("failed to save run '%s': %w", run.ID, ErrRunExists)
		}
		return fmt.Errorf("failed to executing SQL insertion : %w", err)
	}
	return nil
}

func (s *Store) GetRun(id string) (*Run, error) {
	row := s.db.QueryRow(`
        SELECT id, input_path, started_at, finished_at, processed, applied, rejected
        FROM runs WHERE id = ?
    `, id)

	run := &Run{}
	err := row.Scan(
		&run.ID, &run.InputPath, &run.StartedAt, &run.FinishedAt,
		&run.Processed, &run.Applied, &run.Rejected,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("run '%s': %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query run '%s' : %w", id, err)
	}

	return run, nil
}

func (s *Store) SaveSnapshot(runID string, accounts []model.AccountSnapshot) error {
	stmt, err := s.db.Prepare(`
        INSERT INTO account_snapshots (run_id, client_id, available, held, total, locked)
        VALUES (?, ?, ?, ?, ?, ?)
    `)
	if err != nil {
		return fmt.Errorf("failed to prepare SQL : %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	for _, acc := range accounts {
		_, err := stmt.Exec(runID, int64(acc.Client), int64(acc.Available), int64(acc.Held), int64(acc.Total), acc.Locked)
		if err != nil {
			return fmt.Errorf("failed to save account %d : %w", acc.Client, err)
		}
	}

	return nil
}

func (s *Store) GetSnapshot(runID string) ([]model.AccountSnapshot, error) {
	rows, err := s.db.Query(`
        SELECT run_id, client_id, available, held, total, locked
        FROM account_snapshots
        WHERE run_id = ?
        ORDER BY client_id
    `, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshot: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var accounts []model.AccountSnapshot
	for rows.Next() {
		var r SnapshotRow
		if err := rows.Scan(&r.RunID, &r.ClientID, &r.Available, &r.Held, &r.Total, &r.Locked); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot row: %w", err)
		}
		accounts = append(accounts, r.toModel())
	}

	return accounts, rows.Err()
}

func (s *Store) ArchiveRun(run Run, accounts []model.AccountSnapshot) error {
	return s.ExecTx(func(repo Repository) error {
		if err := repo.SaveRun(run); err != nil {
			return err
		}
		return repo.SaveSnapshot(run.ID, accounts)
	})
}

func (r SnapshotRow) toModel() model.AccountSnapshot {
	return model.AccountSnapshot{
		Client:    model.ClientID(r.ClientID),
		Available: model.Money(r.Available),
		Held:      model.Money(r.Held),
		Total:     model.Money(r.Total),
		Locked:    r.Locked,
	}
}
