package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/api/request"
	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/apperrors"
	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/ledger"
	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/model"
	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/report"
	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/store"
)

// LedgerService implements the ledger operations exposed to the interactive
// surface. Every call runs a full load -> compute -> (optional save) cycle
// against the store, so the in-memory state can never drift from the file:
// a failed save simply leaves the previous state as the next load's input.
type LedgerService struct {
	store            store.Store
	compiler         *report.Compiler
	defaultPartition string
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(st store.Store, compiler *report.Compiler, defaultPartition string) *LedgerService {
	return &LedgerService{
		store:            st,
		compiler:         compiler,
		defaultPartition: defaultPartition,
	}
}

// Submit validates and appends a new transaction, then persists the whole
// ledger. The request is expected to have passed validation already; the
// date is re-parsed here because the service builds the model value.
func (s *LedgerService) Submit(ctx context.Context, req request.CreateTransactionRequest) (model.Transaction, error) {
	date, err := time.Parse(model.DateFormat, req.Date)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidDate, err)
	}

	led, err := s.store.Load(ctx)
	if err != nil {
		return model.Transaction{}, err
	}

	partition := req.Partition
	if partition == "" {
		partition = s.defaultPartition
	}

	t := model.Transaction{
		ID:          uuid.New().String(),
		Date:        date,
		Description: req.Description,
		Kind:        req.Kind,
		Method:      req.Method,
		Partition:   partition,
		Amount:      req.Amount,
	}

	led.Transactions = append(led.Transactions, t)
	if err := s.store.Save(ctx, led); err != nil {
		return model.Transaction{}, err
	}

	return t, nil
}

// Delete removes the transaction with the given ID and persists the whole
// ledger. Returns apperrors.ErrTransactionNotFound for an unknown ID.
func (s *LedgerService) Delete(ctx context.Context, id string) error {
	led, err := s.store.Load(ctx)
	if err != nil {
		return err
	}

	index := -1
	for i, t := range led.Transactions {
		if t.ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return apperrors.ErrTransactionNotFound
	}

	led.Transactions = append(led.Transactions[:index], led.Transactions[index+1:]...)
	return s.store.Save(ctx, led)
}

// View resolves the requested partition (falling back to the first available
// one when the request is stale) and returns its balance-annotated entries
// newest-first, together with the partition totals. An empty partition
// yields an empty entry list and all-zero totals.
func (s *LedgerService) View(ctx context.Context, requested string) (model.PartitionView, error) {
	led, err := s.store.Load(ctx)
	if err != nil {
		return model.PartitionView{}, err
	}

	available := ledger.ListPartitions(led.Transactions, led.Partitions, s.defaultPartition)
	resolved := ledger.ResolveDefault(requested, available)

	filtered := ledger.FilterPartition(led.Transactions, resolved)
	entries := ledger.Annotate(filtered)

	// Display order is newest-first; the printed report keeps the
	// chronological order the balances were computed in.
	display := make([]model.TransactionResponse, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		display = append(display, toResponse(entries[i]))
	}

	return model.PartitionView{
		Partition: resolved,
		Entries:   display,
		Totals:    ledger.Totals(filtered),
	}, nil
}

// GenerateReport compiles and renders the PDF statement for a partition.
// An empty title falls back to "Laporan Keuangan <partition>". Returns the
// PDF bytes and the download filename; apperrors.ErrEmptyReport when the
// partition has no transactions.
func (s *LedgerService) GenerateReport(ctx context.Context, requested, title string) ([]byte, string, error) {
	led, err := s.store.Load(ctx)
	if err != nil {
		return nil, "", err
	}

	available := ledger.ListPartitions(led.Transactions, led.Partitions, s.defaultPartition)
	resolved := ledger.ResolveDefault(requested, available)

	if title == "" {
		title = "Laporan Keuangan " + resolved
	}

	entries := ledger.Annotate(ledger.FilterPartition(led.Transactions, resolved))
	rep, err := s.compiler.Compile(entries, title, resolved)
	if err != nil {
		return nil, "", err
	}

	pdf, err := report.RenderPDF(rep)
	if err != nil {
		return nil, "", err
	}

	return pdf, report.Filename(resolved), nil
}

// Partitions returns the ordered set of available partition names.
func (s *LedgerService) Partitions(ctx context.Context) ([]string, error) {
	led, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return ledger.ListPartitions(led.Transactions, led.Partitions, s.defaultPartition), nil
}

// AddPartition declares a new partition in the registry. Declaring a name
// that is already available returns apperrors.ErrDuplicatePartition.
func (s *LedgerService) AddPartition(ctx context.Context, name string) ([]string, error) {
	led, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	available := ledger.ListPartitions(led.Transactions, led.Partitions, s.defaultPartition)
	for _, existing := range available {
		if existing == name {
			return nil, apperrors.ErrDuplicatePartition
		}
	}

	led.Partitions = append(led.Partitions, name)
	if err := s.store.Save(ctx, led); err != nil {
		return nil, err
	}

	return ledger.ListPartitions(led.Transactions, led.Partitions, s.defaultPartition), nil
}

// Summary computes totals for every available partition. The per-partition
// computations are pure, so they run concurrently over one loaded snapshot.
func (s *LedgerService) Summary(ctx context.Context) ([]model.PartitionSummary, error) {
	led, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	available := ledger.ListPartitions(led.Transactions, led.Partitions, s.defaultPartition)
	summaries := make([]model.PartitionSummary, len(available))

	g, _ := errgroup.WithContext(ctx)
	for i, name := range available {
		i, name := i, name
		g.Go(func() error {
			filtered := ledger.FilterPartition(led.Transactions, name)
			summaries[i] = model.PartitionSummary{
				Partition:    name,
				Transactions: len(filtered),
				Totals:       ledger.Totals(filtered),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return summaries, nil
}

func toResponse(e model.BalanceEntry) model.TransactionResponse {
	return model.TransactionResponse{
		ID:             e.ID,
		Date:           e.Date.Format(model.DateFormat),
		Description:    e.Description,
		Kind:           e.Kind,
		Method:         e.Method,
		Partition:      e.Partition,
		Amount:         e.Amount,
		RunningBalance: e.RunningBalance,
	}
}
