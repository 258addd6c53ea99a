package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/model"
	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/store"
	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/testutil"
)

func newXLSXStore(t *testing.T) (*store.XLSXStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ledger.xlsx")
	return store.NewXLSXStore(path, "Kas Utama"), path
}

// writeLegacyFile creates a workbook the way the pre-Go tooling did: a single
// sheet, and only the given header columns.
func writeLegacyFile(t *testing.T, path string, header []any, rows [][]any) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		t.Fatalf("Failed to write header: %v", err)
	}
	for i, row := range rows {
		axis, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			t.Fatalf("Failed to compute cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, axis, &row); err != nil {
			t.Fatalf("Failed to write row: %v", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save legacy file: %v", err)
	}
}

func TestXLSXStore_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file yields an empty ledger", func(t *testing.T) {
		st, _ := newXLSXStore(t)

		ledger, err := st.Load(ctx)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}

		if len(ledger.Transactions) != 0 {
			t.Errorf("Expected no transactions, got %d", len(ledger.Transactions))
		}
		if len(ledger.Partitions) != 0 {
			t.Errorf("Expected no partitions, got %d", len(ledger.Partitions))
		}
	})

	t.Run("corrupt file yields an empty ledger, not an error", func(t *testing.T) {
		st, path := newXLSXStore(t)
		if err := os.WriteFile(path, []byte("definitely not a workbook"), 0o644); err != nil {
			t.Fatalf("Failed to write corrupt file: %v", err)
		}

		ledger, err := st.Load(ctx)
		if err != nil {
			t.Fatalf("Expected fail-soft load, got error: %v", err)
		}
		if len(ledger.Transactions) != 0 {
			t.Errorf("Expected no transactions, got %d", len(ledger.Transactions))
		}
	})

	t.Run("legacy file without partition column is backfilled", func(t *testing.T) {
		st, path := newXLSXStore(t)
		writeLegacyFile(t, path,
			[]any{"Tanggal", "Keterangan", "Tipe", "Metode", "Jumlah"},
			[][]any{{"2024-01-01", "Infaq", model.KindIncome, model.MethodCash, 100000}},
		)

		ledger, err := st.Load(ctx)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}

		if len(ledger.Transactions) != 1 {
			t.Fatalf("Expected 1 transaction, got %d", len(ledger.Transactions))
		}
		got := ledger.Transactions[0]
		if got.Partition != "Kas Utama" {
			t.Errorf("Expected backfilled partition Kas Utama, got %q", got.Partition)
		}
		if got.ID == "" {
			t.Error("Expected a backfilled ID for the legacy row")
		}
		if got.Amount != 100000 {
			t.Errorf("Expected amount 100000, got %d", got.Amount)
		}
	})

	t.Run("unparseable amount is coerced to zero", func(t *testing.T) {
		st, path := newXLSXStore(t)
		writeLegacyFile(t, path,
			[]any{"Tanggal", "Keterangan", "Tipe", "Metode", "Dompet", "Jumlah"},
			[][]any{{"2024-01-01", "Infaq", model.KindIncome, model.MethodCash, "Kas Utama", "seratus ribu"}},
		)

		ledger, err := st.Load(ctx)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}

		if len(ledger.Transactions) != 1 {
			t.Fatalf("Expected the row to survive, got %d transactions", len(ledger.Transactions))
		}
		if ledger.Transactions[0].Amount != 0 {
			t.Errorf("Expected coerced amount 0, got %d", ledger.Transactions[0].Amount)
		}
	})

	t.Run("rows with unparseable dates are skipped", func(t *testing.T) {
		st, path := newXLSXStore(t)
		writeLegacyFile(t, path,
			[]any{"Tanggal", "Keterangan", "Tipe", "Metode", "Dompet", "Jumlah"},
			[][]any{
				{"kemarin", "Infaq", model.KindIncome, model.MethodCash, "Kas Utama", 1000},
				{"2024-01-02", "Donasi", model.KindIncome, model.MethodCash, "Kas Utama", 2000},
			},
		)

		ledger, err := st.Load(ctx)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}

		if len(ledger.Transactions) != 1 {
			t.Fatalf("Expected 1 surviving transaction, got %d", len(ledger.Transactions))
		}
		if ledger.Transactions[0].Description != "Donasi" {
			t.Errorf("Expected the valid row to survive, got %q", ledger.Transactions[0].Description)
		}
	})
}

func TestXLSXStore_SaveLoadRoundtrip(t *testing.T) {
	ctx := context.Background()
	st, path := newXLSXStore(t)

	in := model.Ledger{
		Transactions: []model.Transaction{
			testutil.NewTransaction().WithDate("2024-01-01").WithDescription("Infaq").WithAmount(100000).Build(t),
			testutil.NewTransaction().WithDate("2024-01-01").WithDescription("Konsumsi").Expense().WithAmount(30000).Build(t),
		},
		Partitions: []string{"Qurban", "Ramadhan"},
	}

	if err := st.Save(ctx, in); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("Expected store file to exist: %v", err)
	}

	out, err := st.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(out.Transactions) != 2 {
		t.Fatalf("Expected 2 transactions, got %d", len(out.Transactions))
	}
	for i := range in.Transactions {
		if out.Transactions[i] != in.Transactions[i] {
			t.Errorf("Transaction %d: expected %+v, got %+v", i, in.Transactions[i], out.Transactions[i])
		}
	}
	if len(out.Partitions) != 2 || out.Partitions[0] != "Qurban" || out.Partitions[1] != "Ramadhan" {
		t.Errorf("Expected registry [Qurban Ramadhan], got %v", out.Partitions)
	}
}

func TestXLSXStore_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	st, _ := newXLSXStore(t)

	first := model.Ledger{
		Transactions: []model.Transaction{testutil.NewTransaction().Build(t)},
		Partitions:   []string{},
	}
	if err := st.Save(ctx, first); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	second := model.Ledger{
		Transactions: []model.Transaction{},
		Partitions:   []string{"Qurban"},
	}
	if err := st.Save(ctx, second); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	out, err := st.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(out.Transactions) != 0 {
		t.Errorf("Expected the save to replace the collection, got %d transactions", len(out.Transactions))
	}
	if len(out.Partitions) != 1 || out.Partitions[0] != "Qurban" {
		t.Errorf("Expected registry [Qurban], got %v", out.Partitions)
	}
}
