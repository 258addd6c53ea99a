// Package testutil provides in-memory stores and builders for tests.
package testutil

import (
	"context"
	"errors"
	"testing"

	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/model"
	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/report"
	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/service"
)

// ErrStoreBroken is returned by a MemStore whose failure toggles are set.
var ErrStoreBroken = errors.New("store broken")

// MemStore is an in-memory store.Store for service and handler tests.
// Set FailLoad or FailSave to simulate storage failures.
type MemStore struct {
	Ledger   model.Ledger
	FailLoad bool
	FailSave bool
	Saves    int
}

// NewMemStore creates an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{
		Ledger: model.Ledger{
			Transactions: []model.Transaction{},
			Partitions:   []string{},
		},
	}
}

// Load returns a copy of the in-memory ledger.
func (m *MemStore) Load(_ context.Context) (model.Ledger, error) {
	if m.FailLoad {
		return model.Ledger{}, ErrStoreBroken
	}
	out := model.Ledger{
		Transactions: append([]model.Transaction{}, m.Ledger.Transactions...),
		Partitions:   append([]string{}, m.Ledger.Partitions...),
	}
	return out, nil
}

// Save replaces the in-memory ledger.
func (m *MemStore) Save(_ context.Context, ledger model.Ledger) error {
	if m.FailSave {
		return ErrStoreBroken
	}
	m.Ledger = ledger
	m.Saves++
	return nil
}

// DefaultPartition is the partition name test services are configured with.
const DefaultPartition = "Kas Utama"

// NewTestLedgerService creates a LedgerService over the given store with the
// historical report defaults.
func NewTestLedgerService(t *testing.T, st *MemStore) *service.LedgerService {
	t.Helper()
	compiler := report.NewCompiler("Jakarta", "Yaumil Mubarrok", "Ustadzah Sofwatunnufus, S.E")
	return service.NewLedgerService(st, compiler, DefaultPartition)
}
