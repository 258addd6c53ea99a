package apperrors

import "errors"

// Domain entity errors represent missing entities in the ledger.
var (
	// ErrTransactionNotFound indicates that a transaction with the given ID does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrPartitionNotFound indicates that the requested partition is not known.
	ErrPartitionNotFound = errors.New("partition not found")
)

// Business logic errors represent validation failures or constraint violations.
var (
	// ErrEmptyDescription indicates that a transaction was submitted without a description.
	ErrEmptyDescription = errors.New("description is required")

	// ErrNegativeAmount indicates that an amount field has an invalid negative value.
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInvalidKind indicates a transaction kind outside Pemasukan/Pengeluaran.
	ErrInvalidKind = errors.New("invalid transaction kind")

	// ErrInvalidMethod indicates a payment method outside Cash/Transfer.
	ErrInvalidMethod = errors.New("invalid payment method")

	// ErrInvalidDate indicates a date that does not parse as YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date")

	// ErrEmptyPartitionName indicates a partition declaration without a name.
	ErrEmptyPartitionName = errors.New("partition name is required")

	// ErrDuplicatePartition indicates that a declared partition name already exists.
	ErrDuplicatePartition = errors.New("partition already exists")
)

// Report errors.
var (
	// ErrEmptyReport indicates that report generation was requested for a
	// partition with no transactions. Callers hide the download affordance
	// rather than emit a degenerate document.
	ErrEmptyReport = errors.New("no transactions to report")

	// ErrBalanceMismatch indicates that the independently recomputed closing
	// balance disagrees with the last running-balance cell. The annotated
	// data is not well-formed if this ever surfaces.
	ErrBalanceMismatch = errors.New("closing balance does not reconcile with running balance")
)

// Storage errors represent failures at the store adapter boundary. The store
// file is never partially written, so a save failure leaves the last-good
// state on disk.
var (
	// ErrStorage indicates that the backing store could not be read or written.
	ErrStorage = errors.New("storage failure")
)

// Operation failure errors represent system-level failures reported to the
// HTTP caller. Each failure is reported once; nothing is retried.
var (
	ErrFailedToLoadLedger     = errors.New("failed to load ledger")
	ErrFailedToSaveLedger     = errors.New("failed to save ledger")
	ErrFailedToListPartitions = errors.New("failed to list partitions")
	ErrFailedToGenerateReport = errors.New("failed to generate report")
	ErrFailedToComputeSummary = errors.New("failed to compute summary")
)
