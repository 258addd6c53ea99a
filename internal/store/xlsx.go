package store

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/apperrors"
	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/model"
)

// Sheet and column names of the historical workbook layout.
const (
	transactionSheet = "Transaksi"
	registrySheet    = "Dompet"

	colDate        = "Tanggal"
	colDescription = "Keterangan"
	colKind        = "Tipe"
	colMethod      = "Metode"
	colPartition   = "Dompet"
	colAmount      = "Jumlah"
	colID          = "ID"
)

// XLSXStore persists the ledger in an Excel workbook compatible with the
// historical single-sheet files. Transactions live on the "Transaksi" sheet
// (or the first sheet of a legacy file); the partition registry lives on a
// second "Dompet" sheet.
//
// Loading is deliberately lenient: a missing file is an empty ledger, an
// unreadable workbook yields an empty ledger with a logged warning, and an
// unparseable amount is coerced to zero with a logged warning. Legacy rows
// missing a partition are backfilled with the configured default and legacy
// rows missing an ID get a fresh UUID; the file itself is only rewritten on
// the next save.
type XLSXStore struct {
	path             string
	defaultPartition string
}

// NewXLSXStore creates an XLSXStore for the given workbook path.
func NewXLSXStore(path, defaultPartition string) *XLSXStore {
	return &XLSXStore{path: path, defaultPartition: defaultPartition}
}

// Load reads the full ledger from the workbook.
func (s *XLSXStore) Load(_ context.Context) (model.Ledger, error) {
	empty := model.Ledger{Transactions: []model.Transaction{}, Partitions: []string{}}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return empty, nil
	}

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		// Unreadable workbook: keep the application available rather than
		// hard-failing, but make the recovery visible.
		log.Printf("WARNING: ledger file %s is unreadable, starting empty: %v", s.path, err)
		return empty, nil
	}
	defer f.Close()

	transactions, err := s.readTransactions(f)
	if err != nil {
		log.Printf("WARNING: ledger file %s is malformed, starting empty: %v", s.path, err)
		return empty, nil
	}

	return model.Ledger{
		Transactions: transactions,
		Partitions:   s.readRegistry(f),
	}, nil
}

func (s *XLSXStore) readTransactions(f *excelize.File) ([]model.Transaction, error) {
	sheet := transactionSheet
	sheets := f.GetSheetList()
	if index, err := f.GetSheetIndex(sheet); err != nil || index == -1 {
		if len(sheets) == 0 {
			return []model.Transaction{}, nil
		}
		// Legacy files carry a single unnamed sheet.
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return []model.Transaction{}, nil
	}

	columns := make(map[string]int)
	for i, name := range rows[0] {
		columns[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{colDate, colDescription, colKind, colMethod, colAmount} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("missing column %s", required)
		}
	}
	if _, ok := columns[colPartition]; !ok {
		// Schema drift: pre-wallet files have no Dompet column. Backfill in
		// memory; the stored file stays untouched until the next save.
		log.Printf("ledger file %s has no %s column, backfilling %q", s.path, colPartition, s.defaultPartition)
	}

	cell := func(row []string, name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	transactions := make([]model.Transaction, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}

		date, err := time.Parse(model.DateFormat, cell(row, colDate))
		if err != nil {
			log.Printf("WARNING: ledger file %s row %d has unparseable date %q, skipping row", s.path, i+2, cell(row, colDate))
			continue
		}

		t := model.Transaction{
			ID:          cell(row, colID),
			Date:        date,
			Description: cell(row, colDescription),
			Kind:        cell(row, colKind),
			Method:      cell(row, colMethod),
			Partition:   cell(row, colPartition),
			Amount:      s.parseAmount(cell(row, colAmount), i+2),
		}
		if t.ID == "" {
			t.ID = uuid.New().String()
		}
		if t.Partition == "" {
			t.Partition = s.defaultPartition
		}

		transactions = append(transactions, t)
	}

	return transactions, nil
}

// parseAmount coerces malformed amounts to zero instead of rejecting the
// row. This mirrors the historical loader; the warning makes the silent
// normalization at least visible in the logs.
func (s *XLSXStore) parseAmount(raw string, rowNum int) int64 {
	if raw == "" {
		return 0
	}
	cleaned := strings.ReplaceAll(raw, ",", "")
	amount, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		log.Printf("WARNING: ledger file %s row %d has unparseable amount %q, coerced to 0", s.path, rowNum, raw)
		return 0
	}
	return amount
}

func (s *XLSXStore) readRegistry(f *excelize.File) []string {
	names := []string{}
	rows, err := f.GetRows(registrySheet)
	if err != nil || len(rows) < 2 {
		return names
	}
	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		if name := strings.TrimSpace(row[0]); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// Save writes the entire ledger to the workbook, replacing its previous
// contents. The workbook is written to a temporary file in the same
// directory and renamed into place, so a failed save leaves the previous
// file intact.
func (s *XLSXStore) Save(_ context.Context, ledger model.Ledger) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), transactionSheet); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}

	header := []any{colDate, colDescription, colKind, colMethod, colPartition, colAmount, colID}
	if err := f.SetSheetRow(transactionSheet, "A1", &header); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	for i, t := range ledger.Transactions {
		axis, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
		}
		row := []any{
			t.Date.Format(model.DateFormat),
			t.Description,
			t.Kind,
			t.Method,
			t.Partition,
			t.Amount,
			t.ID,
		}
		if err := f.SetSheetRow(transactionSheet, axis, &row); err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
		}
	}

	if _, err := f.NewSheet(registrySheet); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	registryHeader := []any{"Nama"}
	if err := f.SetSheetRow(registrySheet, "A1", &registryHeader); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	for i, name := range ledger.Partitions {
		axis, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
		}
		row := []any{name}
		if err := f.SetSheetRow(registrySheet, axis, &row); err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
		}
	}

	return s.writeAtomic(f)
}

func (s *XLSXStore) writeAtomic(f *excelize.File) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}

	tmp, err := os.CreateTemp(dir, ".ledger-*.xlsx")
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	tmpName := tmp.Name()

	if err := f.Write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}

	return nil
}
