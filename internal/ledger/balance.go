// Package ledger contains the pure computation core: running-balance
// annotation and partition resolution. Functions here have no side effects,
// never mutate their inputs and can be called repeatedly with identical
// results.
package ledger

import (
	"sort"

	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/model"
)

// Annotate sorts the given transactions chronologically and attaches a
// running balance to each one, starting from zero.
//
// The sort is stable: transactions sharing a date keep their original
// relative order, so the balance trace is reproducible across runs. That is
// a correctness requirement, not an accident; same-date rows would otherwise
// show different intermediate balances from one invocation to the next.
//
// The input may be in any order and may be empty (returns an empty slice).
// The input slice is not modified.
func Annotate(transactions []model.Transaction) []model.BalanceEntry {
	entries := make([]model.BalanceEntry, 0, len(transactions))
	if len(transactions) == 0 {
		return entries
	}

	sorted := make([]model.Transaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	var balance int64
	for _, t := range sorted {
		balance += t.Signed()
		entries = append(entries, model.BalanceEntry{
			Transaction:    t,
			RunningBalance: balance,
		})
	}

	return entries
}

// Totals sums income and expense amounts independently of any running
// balance. For any input, Totals(t).Balance equals the last running balance
// produced by Annotate(t); report generation cross-checks the two.
func Totals(transactions []model.Transaction) model.Totals {
	var totals model.Totals
	for _, t := range transactions {
		if t.Kind == model.KindIncome {
			totals.Income += t.Amount
		} else {
			totals.Expense += t.Amount
		}
	}
	totals.Balance = totals.Income - totals.Expense
	return totals
}

// FilterPartition returns the transactions belonging to the given partition,
// preserving their original relative order.
func FilterPartition(transactions []model.Transaction, partition string) []model.Transaction {
	filtered := make([]model.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if t.Partition == partition {
			filtered = append(filtered, t)
		}
	}
	return filtered
}
