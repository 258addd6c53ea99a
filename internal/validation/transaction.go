package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/api/request"
	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/model"
)

// ValidKind contains the allowed transaction kind values.
var ValidKind = map[string]bool{
	model.KindIncome: true, model.KindExpense: true,
}

// ValidMethod contains the allowed payment method values.
var ValidMethod = map[string]bool{
	model.MethodCash: true, model.MethodTransfer: true,
}

// ValidateCreateTransaction validates a transaction submission before any
// store mutation happens.
//
// Required fields:
//   - date: Must be in YYYY-MM-DD format
//   - description: Must be non-empty
//   - kind: Must be Pemasukan or Pengeluaran
//   - method: Must be Cash or Transfer
//   - amount: Must be non-negative (zero is allowed)
//
// Partition is optional; an empty partition is assigned the default one.
// Returns a validation Error with field-specific messages if validation fails.
func ValidateCreateTransaction(req request.CreateTransactionRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Date) == "" {
		errors["date"] = "date is required"
	} else if _, err := time.Parse(model.DateFormat, req.Date); err != nil {
		errors["date"] = err.Error()
	}

	if strings.TrimSpace(req.Description) == "" {
		errors["description"] = "description is required"
	}

	if strings.TrimSpace(req.Kind) == "" {
		errors["kind"] = "kind is required"
	} else if !ValidKind[req.Kind] {
		errors["kind"] = fmt.Sprintf("invalid kind: %s", req.Kind)
	}

	if strings.TrimSpace(req.Method) == "" {
		errors["method"] = "method is required"
	} else if !ValidMethod[req.Method] {
		errors["method"] = fmt.Sprintf("invalid method: %s", req.Method)
	}

	if req.Amount < 0 {
		errors["amount"] = "amount cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateCreatePartition validates a partition declaration.
func ValidateCreatePartition(req request.CreatePartitionRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
