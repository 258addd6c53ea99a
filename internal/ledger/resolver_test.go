package ledger_test

import (
	"reflect"
	"testing"

	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/ledger"
	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/model"
	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/testutil"
)

func TestListPartitions(t *testing.T) {
	t.Run("prepends default when not observed", func(t *testing.T) {
		transactions := []model.Transaction{
			testutil.NewTransaction().WithPartition("Dompet Acara").Build(t),
		}

		got := ledger.ListPartitions(transactions, nil, "Kas Utama")

		want := []string{"Kas Utama", "Dompet Acara"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Expected %v, got %v", want, got)
		}
	})

	t.Run("keeps observed default in first-seen position", func(t *testing.T) {
		transactions := []model.Transaction{
			testutil.NewTransaction().WithPartition("Dompet Acara").Build(t),
			testutil.NewTransaction().WithPartition("Kas Utama").Build(t),
		}

		got := ledger.ListPartitions(transactions, nil, "Kas Utama")

		want := []string{"Dompet Acara", "Kas Utama"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Expected %v, got %v", want, got)
		}
	})

	t.Run("appends declared-but-unused partitions in declaration order", func(t *testing.T) {
		transactions := []model.Transaction{
			testutil.NewTransaction().WithPartition("Kas Utama").Build(t),
		}

		got := ledger.ListPartitions(transactions, []string{"Qurban", "Kas Utama", "Ramadhan"}, "Kas Utama")

		want := []string{"Kas Utama", "Qurban", "Ramadhan"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Expected %v, got %v", want, got)
		}
	})

	t.Run("deduplicates observed partitions in first-seen order", func(t *testing.T) {
		transactions := []model.Transaction{
			testutil.NewTransaction().WithPartition("B").Build(t),
			testutil.NewTransaction().WithPartition("A").Build(t),
			testutil.NewTransaction().WithPartition("B").Build(t),
		}

		got := ledger.ListPartitions(transactions, nil, "")

		want := []string{"B", "A"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Expected %v, got %v", want, got)
		}
	})

	t.Run("no transactions yields just the default", func(t *testing.T) {
		got := ledger.ListPartitions(nil, nil, "Kas Utama")

		want := []string{"Kas Utama"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Expected %v, got %v", want, got)
		}
	})
}

func TestResolveDefault(t *testing.T) {
	t.Run("returns requested when available", func(t *testing.T) {
		if got := ledger.ResolveDefault("B", []string{"A", "B"}); got != "B" {
			t.Errorf("Expected B, got %q", got)
		}
	})

	t.Run("falls back to first available when requested is gone", func(t *testing.T) {
		if got := ledger.ResolveDefault("C", []string{"A", "B"}); got != "A" {
			t.Errorf("Expected A, got %q", got)
		}
	})

	t.Run("returns empty for empty availability", func(t *testing.T) {
		if got := ledger.ResolveDefault("A", nil); got != "" {
			t.Errorf("Expected empty string, got %q", got)
		}
	})
}
