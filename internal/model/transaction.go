package model

import "time"

// Transaction kinds as stored in the backing file and exchanged over the API.
// The values match the historical record layout and are not translated.
const (
	KindIncome  = "Pemasukan"
	KindExpense = "Pengeluaran"
)

// Payment methods.
const (
	MethodCash     = "Cash"
	MethodTransfer = "Transfer"
)

// DateFormat is the calendar-date layout used in the backing store and the API.
const DateFormat = "2006-01-02"

// Transaction represents a single dated income or expense record.
// Transactions are immutable once created; edits are not supported,
// only append and delete-by-ID.
type Transaction struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"-"`
	Description string    `json:"description"`
	Kind        string    `json:"kind"`
	Method      string    `json:"method"`
	Partition   string    `json:"partition"`
	Amount      int64     `json:"amount"`
}

// Signed returns the transaction's contribution to a balance: positive for
// income, negative for expense. Amount itself is always non-negative; the
// sign is derived from Kind alone so it cannot drift out of sync with a
// stored signed field.
func (t Transaction) Signed() int64 {
	if t.Kind == KindIncome {
		return t.Amount
	}
	return -t.Amount
}

// BalanceEntry is a Transaction annotated with the running balance at its
// position in the chronological order of its partition. It is a derived,
// read-only view and is never persisted.
type BalanceEntry struct {
	Transaction
	RunningBalance int64
}

// Ledger is the full persisted state: the transaction log plus the declared
// partition registry (names declared by the user but possibly not yet used
// by any transaction, kept in declaration order).
type Ledger struct {
	Transactions []Transaction
	Partitions   []string
}

// Totals holds the independently computed income/expense sums for a set of
// transactions. Balance always equals Income - Expense.
type Totals struct {
	Income  int64 `json:"income"`
	Expense int64 `json:"expense"`
	Balance int64 `json:"balance"`
}

// TransactionResponse represents a balance-annotated transaction for API
// responses, with the date rendered as a YYYY-MM-DD string.
type TransactionResponse struct {
	ID             string `json:"id"`
	Date           string `json:"date"`
	Description    string `json:"description"`
	Kind           string `json:"kind"`
	Method         string `json:"method"`
	Partition      string `json:"partition"`
	Amount         int64  `json:"amount"`
	RunningBalance int64  `json:"runningBalance"`
}

// PartitionView is the response for the view operation: the resolved
// partition, its entries newest-first, and the partition totals.
type PartitionView struct {
	Partition string                `json:"partition"`
	Entries   []TransactionResponse `json:"entries"`
	Totals    Totals                `json:"totals"`
}

// PartitionSummary holds the totals for one partition in the
// all-partitions summary.
type PartitionSummary struct {
	Partition    string `json:"partition"`
	Transactions int    `json:"transactions"`
	Totals       Totals `json:"totals"`
}
