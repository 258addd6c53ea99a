package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/model"
	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/testutil"
)

func setupReportHandler(t *testing.T) (*ReportHandler, *testutil.MemStore) {
	t.Helper()
	st := testutil.NewMemStore()
	return NewReportHandler(testutil.NewTestLedgerService(t, st)), st
}

func TestReportHandler_Generate(t *testing.T) {
	t.Run("returns a PDF download", func(t *testing.T) {
		handler, st := setupReportHandler(t)
		st.Ledger.Transactions = []model.Transaction{
			testutil.NewTransaction().WithDate("2024-01-01").WithAmount(100000).Build(t),
		}

		req := httptest.NewRequest(http.MethodGet, "/api/report?partition=Kas+Utama", nil)
		w := httptest.NewRecorder()

		handler.Generate(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
			t.Errorf("Expected application/pdf, got %q", ct)
		}
		if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "Laporan_Kas Utama.pdf") {
			t.Errorf("Expected attachment disposition with filename, got %q", cd)
		}
		if body := w.Body.Bytes(); len(body) < 5 || string(body[:5]) != "%PDF-" {
			t.Error("Expected a PDF body")
		}
	})

	t.Run("returns 404 for a partition with no transactions", func(t *testing.T) {
		handler, _ := setupReportHandler(t)

		req := httptest.NewRequest(http.MethodGet, "/api/report?partition=Kas+Utama", nil)
		w := httptest.NewRecorder()

		handler.Generate(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 500 on storage error", func(t *testing.T) {
		handler, st := setupReportHandler(t)
		st.FailLoad = true

		req := httptest.NewRequest(http.MethodGet, "/api/report", nil)
		w := httptest.NewRecorder()

		handler.Generate(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("Expected 500, got %d: %s", w.Code, w.Body.String())
		}
	})
}
