// Package store provides the persistence boundary for the ledger. Two
// adapters implement it: an Excel workbook compatible with the historical
// record layout, and a SQLite database.
package store

import (
	"context"

	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/model"
)

// Store reads and writes the full ledger state. Every mutation cycle loads
// the complete state fresh, applies the change in memory and writes the
// complete state back; there is no incremental log. Save is all-or-nothing
// at the adapter boundary: on failure the previous on-disk state is intact.
type Store interface {
	Load(ctx context.Context) (model.Ledger, error)
	Save(ctx context.Context, ledger model.Ledger) error
}
