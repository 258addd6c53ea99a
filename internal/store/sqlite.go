package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/apperrors"
	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/model"
)

// SQLiteStore persists the ledger in a SQLite database. It keeps the same
// full-state contract as the workbook store: Load returns everything in
// stored order and Save replaces everything inside one SQL transaction.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a SQLiteStore over an open, migrated database.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Load reads the full ledger in stored order.
func (s *SQLiteStore) Load(ctx context.Context) (model.Ledger, error) {
	ledger := model.Ledger{Transactions: []model.Transaction{}, Partitions: []string{}}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, date, description, kind, method, "partition", amount
		FROM ledger_transaction
		ORDER BY position ASC
	`)
	if err != nil {
		return ledger, fmt.Errorf("%w: failed to query ledger_transaction: %v", apperrors.ErrStorage, err)
	}
	defer rows.Close()

	for rows.Next() {
		var t model.Transaction
		var dateStr string
		if err := rows.Scan(&t.ID, &dateStr, &t.Description, &t.Kind, &t.Method, &t.Partition, &t.Amount); err != nil {
			return ledger, fmt.Errorf("%w: failed to scan ledger_transaction: %v", apperrors.ErrStorage, err)
		}
		t.Date, err = time.Parse(model.DateFormat, dateStr)
		if err != nil {
			return ledger, fmt.Errorf("%w: failed to parse date %q: %v", apperrors.ErrStorage, dateStr, err)
		}
		ledger.Transactions = append(ledger.Transactions, t)
	}
	if err := rows.Err(); err != nil {
		return ledger, fmt.Errorf("%w: error iterating ledger_transaction: %v", apperrors.ErrStorage, err)
	}

	names, err := s.loadRegistry(ctx)
	if err != nil {
		return ledger, err
	}
	ledger.Partitions = names

	return ledger, nil
}

func (s *SQLiteStore) loadRegistry(ctx context.Context) ([]string, error) {
	names := []string{}

	rows, err := s.db.QueryContext(ctx, `
		SELECT name
		FROM partition_registry
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query partition_registry: %v", apperrors.ErrStorage, err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("%w: failed to scan partition_registry: %v", apperrors.ErrStorage, err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error iterating partition_registry: %v", apperrors.ErrStorage, err)
	}

	return names, nil
}

// Save replaces the stored ledger with the given one. The delete and all
// inserts run in a single SQL transaction, so a failed save leaves the
// previous state intact.
func (s *SQLiteStore) Save(ctx context.Context, ledger model.Ledger) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to begin transaction: %v", apperrors.ErrStorage, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM ledger_transaction`); err != nil {
		return fmt.Errorf("%w: failed to clear ledger_transaction: %v", apperrors.ErrStorage, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM partition_registry`); err != nil {
		return fmt.Errorf("%w: failed to clear partition_registry: %v", apperrors.ErrStorage, err)
	}

	for i, t := range ledger.Transactions {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO ledger_transaction (id, date, description, kind, method, "partition", amount, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, t.ID, t.Date.Format(model.DateFormat), t.Description, t.Kind, t.Method, t.Partition, t.Amount, i)
		if err != nil {
			return fmt.Errorf("%w: failed to insert transaction %s: %v", apperrors.ErrStorage, t.ID, err)
		}
	}

	for i, name := range ledger.Partitions {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO partition_registry (name, position)
			VALUES (?, ?)
		`, name, i)
		if err != nil {
			return fmt.Errorf("%w: failed to insert partition %s: %v", apperrors.ErrStorage, name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: failed to commit: %v", apperrors.ErrStorage, err)
	}

	return nil
}
