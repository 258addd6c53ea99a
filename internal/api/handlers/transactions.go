package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/api/request"
	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/api/response"
	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/apperrors"
	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/service"
	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/validation"
)

// TransactionHandler handles HTTP requests for transaction endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the ledgerService.
type TransactionHandler struct {
	ledgerService *service.LedgerService
}

// NewTransactionHandler creates a new TransactionHandler with the provided service dependency.
func NewTransactionHandler(ledgerService *service.LedgerService) *TransactionHandler {
	return &TransactionHandler{
		ledgerService: ledgerService,
	}
}

// View handles GET requests for the balance-annotated view of one partition.
// Entries come back newest-first, with totals for the whole partition. An
// unknown partition falls back to the first available one instead of failing.
//
// Endpoint: GET /api/transaction?partition={name}
// Response: 200 OK with PartitionView
// Error: 500 Internal Server Error if the ledger cannot be loaded
func (h *TransactionHandler) View(w http.ResponseWriter, r *http.Request) {
	partition := r.URL.Query().Get("partition")

	view, err := h.ledgerService.View(r.Context(), partition)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToLoadLedger.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, view)
}

// Submit handles POST requests to append a new transaction.
// Validation failures are rejected before any store mutation.
//
// Endpoint: POST /api/transaction
// Request Body: CreateTransactionRequest (date, description, kind, method, partition, amount)
// Response: 201 Created with Transaction
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if the ledger cannot be saved
func (h *TransactionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateTransactionRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateTransaction(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	transaction, err := h.ledgerService.Submit(r.Context(), req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToSaveLedger.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, transaction)
}

// Delete handles DELETE requests to remove a transaction by identity.
//
// Endpoint: DELETE /api/transaction/{uuid}
// Response: 204 No Content
// Error: 400 Bad Request if the ID is not a UUID (validated by middleware)
// Error: 404 Not Found if no transaction has the given ID
// Error: 500 Internal Server Error if the ledger cannot be saved
func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "uuid")

	if err := h.ledgerService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrTransactionNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrTransactionNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToSaveLedger.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
