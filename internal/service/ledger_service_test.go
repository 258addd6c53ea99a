package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/api/request"
	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/apperrors"
	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/model"
	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/testutil"
)

func TestLedgerService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("appends and persists a transaction", func(t *testing.T) {
		st := testutil.NewMemStore()
		svc := testutil.NewTestLedgerService(t, st)

		tx, err := svc.Submit(ctx, request.CreateTransactionRequest{
			Date:        "2024-01-01",
			Description: "Infaq",
			Kind:        model.KindIncome,
			Method:      model.MethodCash,
			Partition:   "Kas Utama",
			Amount:      100000,
		})
		if err != nil {
			t.Fatalf("Submit failed: %v", err)
		}

		if tx.ID == "" {
			t.Error("Expected a generated transaction ID")
		}
		if st.Saves != 1 {
			t.Errorf("Expected 1 save, got %d", st.Saves)
		}
		if len(st.Ledger.Transactions) != 1 {
			t.Fatalf("Expected 1 persisted transaction, got %d", len(st.Ledger.Transactions))
		}
		if st.Ledger.Transactions[0].Description != "Infaq" {
			t.Errorf("Unexpected persisted transaction %+v", st.Ledger.Transactions[0])
		}
	})

	t.Run("assigns the default partition when none is given", func(t *testing.T) {
		st := testutil.NewMemStore()
		svc := testutil.NewTestLedgerService(t, st)

		tx, err := svc.Submit(ctx, request.CreateTransactionRequest{
			Date:        "2024-01-01",
			Description: "Infaq",
			Kind:        model.KindIncome,
			Method:      model.MethodCash,
			Amount:      1000,
		})
		if err != nil {
			t.Fatalf("Submit failed: %v", err)
		}

		if tx.Partition != testutil.DefaultPartition {
			t.Errorf("Expected default partition, got %q", tx.Partition)
		}
	})

	t.Run("save failure leaves the store unchanged", func(t *testing.T) {
		st := testutil.NewMemStore()
		st.FailSave = true
		svc := testutil.NewTestLedgerService(t, st)

		_, err := svc.Submit(ctx, request.CreateTransactionRequest{
			Date:        "2024-01-01",
			Description: "Infaq",
			Kind:        model.KindIncome,
			Method:      model.MethodCash,
			Amount:      1000,
		})

		if err == nil {
			t.Fatal("Expected an error")
		}
		if len(st.Ledger.Transactions) != 0 {
			t.Errorf("Expected no persisted transactions, got %d", len(st.Ledger.Transactions))
		}
	})
}

func TestLedgerService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes a transaction by identity", func(t *testing.T) {
		st := testutil.NewMemStore()
		keep := testutil.NewTransaction().WithDescription("keep").Build(t)
		drop := testutil.NewTransaction().WithDescription("drop").Build(t)
		st.Ledger.Transactions = []model.Transaction{keep, drop}
		svc := testutil.NewTestLedgerService(t, st)

		if err := svc.Delete(ctx, drop.ID); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}

		if len(st.Ledger.Transactions) != 1 {
			t.Fatalf("Expected 1 remaining transaction, got %d", len(st.Ledger.Transactions))
		}
		if st.Ledger.Transactions[0].ID != keep.ID {
			t.Errorf("Wrong transaction deleted, remaining %+v", st.Ledger.Transactions[0])
		}
	})

	t.Run("unknown identity fails without saving", func(t *testing.T) {
		st := testutil.NewMemStore()
		st.Ledger.Transactions = []model.Transaction{testutil.NewTransaction().Build(t)}
		svc := testutil.NewTestLedgerService(t, st)

		err := svc.Delete(ctx, "3f0e7e5e-0000-0000-0000-000000000000")

		if !errors.Is(err, apperrors.ErrTransactionNotFound) {
			t.Errorf("Expected ErrTransactionNotFound, got %v", err)
		}
		if st.Saves != 0 {
			t.Errorf("Expected no save, got %d", st.Saves)
		}
	})
}

func TestLedgerService_View(t *testing.T) {
	ctx := context.Background()

	t.Run("returns entries newest-first with totals", func(t *testing.T) {
		st := testutil.NewMemStore()
		st.Ledger.Transactions = []model.Transaction{
			testutil.NewTransaction().WithDate("2024-01-01").Income().WithAmount(100000).Build(t),
			testutil.NewTransaction().WithDate("2024-01-03").Expense().WithAmount(30000).Build(t),
			testutil.NewTransaction().WithDate("2024-01-02").Income().WithAmount(5000).Build(t),
		}
		svc := testutil.NewTestLedgerService(t, st)

		view, err := svc.View(ctx, "Kas Utama")
		if err != nil {
			t.Fatalf("View failed: %v", err)
		}

		if len(view.Entries) != 3 {
			t.Fatalf("Expected 3 entries, got %d", len(view.Entries))
		}
		// Newest first on screen; running balances still follow the
		// chronological computation.
		wantDates := []string{"2024-01-03", "2024-01-02", "2024-01-01"}
		wantBalances := []int64{75000, 105000, 100000}
		for i, e := range view.Entries {
			if e.Date != wantDates[i] {
				t.Errorf("Entry %d: expected date %s, got %s", i, wantDates[i], e.Date)
			}
			if e.RunningBalance != wantBalances[i] {
				t.Errorf("Entry %d: expected balance %d, got %d", i, wantBalances[i], e.RunningBalance)
			}
		}
		if view.Totals.Income != 105000 || view.Totals.Expense != 30000 || view.Totals.Balance != 75000 {
			t.Errorf("Unexpected totals %+v", view.Totals)
		}
	})

	t.Run("empty partition yields empty entries and zero totals", func(t *testing.T) {
		st := testutil.NewMemStore()
		svc := testutil.NewTestLedgerService(t, st)

		view, err := svc.View(ctx, testutil.DefaultPartition)
		if err != nil {
			t.Fatalf("View failed: %v", err)
		}

		if len(view.Entries) != 0 {
			t.Errorf("Expected no entries, got %d", len(view.Entries))
		}
		if view.Totals != (model.Totals{}) {
			t.Errorf("Expected zero totals, got %+v", view.Totals)
		}
	})

	t.Run("stale partition selection falls back to the first available", func(t *testing.T) {
		st := testutil.NewMemStore()
		st.Ledger.Transactions = []model.Transaction{
			testutil.NewTransaction().WithPartition("Dompet Acara").Build(t),
		}
		svc := testutil.NewTestLedgerService(t, st)

		view, err := svc.View(ctx, "Sudah Dihapus")
		if err != nil {
			t.Fatalf("View failed: %v", err)
		}

		if view.Partition != testutil.DefaultPartition {
			t.Errorf("Expected fallback to %q, got %q", testutil.DefaultPartition, view.Partition)
		}
	})

	t.Run("load failure is propagated", func(t *testing.T) {
		st := testutil.NewMemStore()
		st.FailLoad = true
		svc := testutil.NewTestLedgerService(t, st)

		if _, err := svc.View(ctx, ""); err == nil {
			t.Fatal("Expected an error")
		}
	})
}

func TestLedgerService_GenerateReport(t *testing.T) {
	ctx := context.Background()

	t.Run("produces a PDF and a filename", func(t *testing.T) {
		st := testutil.NewMemStore()
		st.Ledger.Transactions = []model.Transaction{
			testutil.NewTransaction().WithDate("2024-01-01").WithAmount(100000).Build(t),
		}
		svc := testutil.NewTestLedgerService(t, st)

		pdf, filename, err := svc.GenerateReport(ctx, testutil.DefaultPartition, "")
		if err != nil {
			t.Fatalf("GenerateReport failed: %v", err)
		}

		if len(pdf) == 0 || string(pdf[:5]) != "%PDF-" {
			t.Error("Expected PDF bytes")
		}
		if filename != "Laporan_Kas Utama.pdf" {
			t.Errorf("Unexpected filename %q", filename)
		}
	})

	t.Run("empty partition fails with ErrEmptyReport", func(t *testing.T) {
		st := testutil.NewMemStore()
		svc := testutil.NewTestLedgerService(t, st)

		_, _, err := svc.GenerateReport(ctx, testutil.DefaultPartition, "judul")

		if !errors.Is(err, apperrors.ErrEmptyReport) {
			t.Errorf("Expected ErrEmptyReport, got %v", err)
		}
	})
}

func TestLedgerService_Partitions(t *testing.T) {
	ctx := context.Background()

	t.Run("declared partitions become available without transactions", func(t *testing.T) {
		st := testutil.NewMemStore()
		svc := testutil.NewTestLedgerService(t, st)

		available, err := svc.AddPartition(ctx, "Qurban")
		if err != nil {
			t.Fatalf("AddPartition failed: %v", err)
		}

		want := []string{testutil.DefaultPartition, "Qurban"}
		if len(available) != 2 || available[0] != want[0] || available[1] != want[1] {
			t.Errorf("Expected %v, got %v", want, available)
		}
		if st.Saves != 1 {
			t.Errorf("Expected the registry to be persisted, saves=%d", st.Saves)
		}
	})

	t.Run("duplicate declaration is rejected", func(t *testing.T) {
		st := testutil.NewMemStore()
		svc := testutil.NewTestLedgerService(t, st)

		_, err := svc.AddPartition(ctx, testutil.DefaultPartition)

		if !errors.Is(err, apperrors.ErrDuplicatePartition) {
			t.Errorf("Expected ErrDuplicatePartition, got %v", err)
		}
	})
}

func TestLedgerService_Summary(t *testing.T) {
	ctx := context.Background()

	st := testutil.NewMemStore()
	st.Ledger.Transactions = []model.Transaction{
		testutil.NewTransaction().WithPartition("Kas Utama").Income().WithAmount(100000).Build(t),
		testutil.NewTransaction().WithPartition("Kas Utama").Expense().WithAmount(30000).Build(t),
		testutil.NewTransaction().WithPartition("Dompet Acara").Income().WithAmount(5000).Build(t),
	}
	st.Ledger.Partitions = []string{"Qurban"}
	svc := testutil.NewTestLedgerService(t, st)

	summaries, err := svc.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}

	if len(summaries) != 3 {
		t.Fatalf("Expected 3 summaries, got %d", len(summaries))
	}

	byName := make(map[string]model.PartitionSummary)
	for _, s := range summaries {
		byName[s.Partition] = s
	}

	kas := byName["Kas Utama"]
	if kas.Totals.Balance != 70000 || kas.Transactions != 2 {
		t.Errorf("Unexpected Kas Utama summary %+v", kas)
	}
	if byName["Dompet Acara"].Totals.Income != 5000 {
		t.Errorf("Unexpected Dompet Acara summary %+v", byName["Dompet Acara"])
	}
	if q := byName["Qurban"]; q.Transactions != 0 || q.Totals != (model.Totals{}) {
		t.Errorf("Expected empty Qurban summary, got %+v", q)
	}
}
