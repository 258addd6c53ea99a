// Package report compiles balance-annotated transactions into the official
// statement artifact and renders it as a PDF.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/apperrors"
	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/ledger"
	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/model"
)

// indonesianMonths maps time.Month to the month names used on the dateline.
var indonesianMonths = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// Compiler builds report artifacts. The closing-block fields are fixed per
// deployment; the historical defaults live in config.
type Compiler struct {
	city         string
	issuerName   string
	receiverName string

	now func() time.Time
}

// NewCompiler creates a Compiler with the given closing-block parameters.
func NewCompiler(city, issuerName, receiverName string) *Compiler {
	return &Compiler{
		city:         city,
		issuerName:   issuerName,
		receiverName: receiverName,
		now:          time.Now,
	}
}

// Compile turns a balance-annotated sequence into a report artifact.
//
// Rows appear in chronological order, matching the order the running
// balances were computed in. The on-screen table shows newest-first; the two
// orderings are distinct presentation contracts derived from the same
// annotated sequence.
//
// The three summary values are recomputed independently from the full set
// and cross-checked against the last running-balance cell; a mismatch means
// the annotated data is malformed and compilation fails.
//
// Returns apperrors.ErrEmptyReport when entries is empty so callers can hide
// the download affordance instead of emitting a degenerate document.
func (c *Compiler) Compile(entries []model.BalanceEntry, title, partition string) (model.Report, error) {
	if len(entries) == 0 {
		return model.Report{}, apperrors.ErrEmptyReport
	}

	transactions := make([]model.Transaction, len(entries))
	for i, e := range entries {
		transactions[i] = e.Transaction
	}
	totals := ledger.Totals(transactions)

	if last := entries[len(entries)-1].RunningBalance; last != totals.Balance {
		return model.Report{}, fmt.Errorf("%w: running %d, recomputed %d",
			apperrors.ErrBalanceMismatch, last, totals.Balance)
	}

	rows := make([]model.ReportRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, model.ReportRow{
			Date:        e.Date.Format(model.DateFormat),
			Description: e.Description,
			Kind:        e.Kind,
			Method:      e.Method,
			Amount:      humanize.Comma(e.Amount),
			Balance:     humanize.Comma(e.RunningBalance),
		})
	}

	return model.Report{
		Title:          strings.ToUpper(title),
		Partition:      partition,
		Rows:           rows,
		TotalIncome:    totals.Income,
		TotalExpense:   totals.Expense,
		ClosingBalance: totals.Balance,
		Dateline:       c.dateline(c.now()),
		IssuerName:     c.issuerName,
		ReceiverName:   c.receiverName,
	}, nil
}

// dateline formats "<City>, <d> <month> <yyyy>" with the Indonesian month name.
func (c *Compiler) dateline(t time.Time) string {
	return fmt.Sprintf("%s, %d %s %d", c.city, t.Day(), indonesianMonths[t.Month()-1], t.Year())
}
