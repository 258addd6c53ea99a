package testutil

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/model"
)

// TransactionBuilder provides a fluent interface for creating test transactions.
//
// Example usage:
//
//	// Simple creation with defaults
//	tx := testutil.NewTransaction().Build(t)
//
//	// Customized transaction
//	tx := testutil.NewTransaction().
//	    WithDate("2024-01-02").
//	    Expense().
//	    WithAmount(30000).
//	    Build(t)
type TransactionBuilder struct {
	ID          string
	Date        string
	Description string
	Kind        string
	Method      string
	Partition   string
	Amount      int64
}

// NewTransaction creates a TransactionBuilder with sensible defaults.
func NewTransaction() *TransactionBuilder {
	return &TransactionBuilder{
		ID:          uuid.New().String(),
		Date:        "2024-01-01",
		Description: "Test transaction",
		Kind:        model.KindIncome,
		Method:      model.MethodCash,
		Partition:   DefaultPartition,
		Amount:      100000,
	}
}

// WithID sets a custom ID.
func (b *TransactionBuilder) WithID(id string) *TransactionBuilder {
	b.ID = id
	return b
}

// WithDate sets a custom date in YYYY-MM-DD format.
func (b *TransactionBuilder) WithDate(date string) *TransactionBuilder {
	b.Date = date
	return b
}

// WithDescription sets a custom description.
func (b *TransactionBuilder) WithDescription(description string) *TransactionBuilder {
	b.Description = description
	return b
}

// WithAmount sets a custom amount.
func (b *TransactionBuilder) WithAmount(amount int64) *TransactionBuilder {
	b.Amount = amount
	return b
}

// WithPartition sets a custom partition.
func (b *TransactionBuilder) WithPartition(partition string) *TransactionBuilder {
	b.Partition = partition
	return b
}

// WithMethod sets a custom payment method.
func (b *TransactionBuilder) WithMethod(method string) *TransactionBuilder {
	b.Method = method
	return b
}

// Income marks the transaction as income.
func (b *TransactionBuilder) Income() *TransactionBuilder {
	b.Kind = model.KindIncome
	return b
}

// Expense marks the transaction as an expense.
func (b *TransactionBuilder) Expense() *TransactionBuilder {
	b.Kind = model.KindExpense
	return b
}

// Build creates the model.Transaction.
func (b *TransactionBuilder) Build(t *testing.T) model.Transaction {
	t.Helper()

	date, err := time.Parse(model.DateFormat, b.Date)
	if err != nil {
		t.Fatalf("Failed to parse builder date %q: %v", b.Date, err)
	}

	return model.Transaction{
		ID:          b.ID,
		Date:        date,
		Description: b.Description,
		Kind:        b.Kind,
		Method:      b.Method,
		Partition:   b.Partition,
		Amount:      b.Amount,
	}
}
