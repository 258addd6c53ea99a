package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/api/response"
	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/apperrors"
	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/service"
)

// ReportHandler handles HTTP requests for the PDF statement.
type ReportHandler struct {
	ledgerService *service.LedgerService
}

// NewReportHandler creates a new ReportHandler with the provided service dependency.
func NewReportHandler(ledgerService *service.LedgerService) *ReportHandler {
	return &ReportHandler{
		ledgerService: ledgerService,
	}
}

// Generate handles GET requests for the signed PDF statement of a partition.
// The title defaults to "Laporan Keuangan <partition>" when omitted.
//
// Endpoint: GET /api/report?partition={name}&title={title}
// Response: 200 OK with application/pdf body and attachment disposition
// Error: 404 Not Found if the partition has no transactions to report
// Error: 500 Internal Server Error if the report cannot be produced
func (h *ReportHandler) Generate(w http.ResponseWriter, r *http.Request) {
	partition := r.URL.Query().Get("partition")
	title := r.URL.Query().Get("title")

	pdf, filename, err := h.ledgerService.GenerateReport(r.Context(), partition, title)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmptyReport) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrEmptyReport.Error(), partition)
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGenerateReport.Error(), err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", strconv.Quote(filename)))
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		// Too late to change the status; the client sees a short body.
		return
	}
}
