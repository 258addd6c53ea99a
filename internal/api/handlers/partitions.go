package handlers

import (
	"errors"
	"net/http"

	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/api/request"
	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/api/response"
	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/apperrors"
	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/service"
	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/validation"
)

// PartitionHandler handles HTTP requests for partition endpoints.
type PartitionHandler struct {
	ledgerService *service.LedgerService
}

// NewPartitionHandler creates a new PartitionHandler with the provided service dependency.
func NewPartitionHandler(ledgerService *service.LedgerService) *PartitionHandler {
	return &PartitionHandler{
		ledgerService: ledgerService,
	}
}

// List handles GET requests for the ordered set of available partitions.
// The order is stable for a given ledger state: observed partitions in
// first-seen order, then declared-but-unused ones in declaration order.
//
// Endpoint: GET /api/partition
// Response: 200 OK with array of partition names
// Error: 500 Internal Server Error if the ledger cannot be loaded
func (h *PartitionHandler) List(w http.ResponseWriter, r *http.Request) {
	partitions, err := h.ledgerService.Partitions(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToListPartitions.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, partitions)
}

// Create handles POST requests to declare a new partition in the registry.
// A declared partition is available for selection before any transaction
// uses it; no placeholder transaction is written.
//
// Endpoint: POST /api/partition
// Request Body: CreatePartitionRequest (name)
// Response: 201 Created with the updated array of partition names
// Error: 400 Bad Request if validation fails
// Error: 409 Conflict if the name already exists
// Error: 500 Internal Server Error if the ledger cannot be saved
func (h *PartitionHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreatePartitionRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreatePartition(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	partitions, err := h.ledgerService.AddPartition(r.Context(), req.Name)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicatePartition) {
			response.RespondError(w, http.StatusConflict, apperrors.ErrDuplicatePartition.Error(), req.Name)
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToSaveLedger.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, partitions)
}

// Summary handles GET requests for per-partition totals across the ledger.
//
// Endpoint: GET /api/partition/summary
// Response: 200 OK with array of PartitionSummary
// Error: 500 Internal Server Error if the computation fails
func (h *PartitionHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.ledgerService.Summary(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToComputeSummary.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, summaries)
}
