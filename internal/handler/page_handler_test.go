package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamhaven/order-invoice-service/internal/domain"
	"github.com/dreamhaven/order-invoice-service/internal/web"
)

// fakeInvoiceService returns canned results and remembers the last paste
type fakeInvoiceService struct {
	results   []domain.InvoiceResult
	err       error
	lastPaste string
}

func (s *fakeInvoiceService) GenerateFromOrders(ctx context.Context, orderDetails string) ([]domain.InvoiceResult, error) {
	s.lastPaste = orderDetails
	return s.results, s.err
}

func (s *fakeInvoiceService) Shutdown() {}

func newTestRouter(svc *fakeInvoiceService, pdfDir string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewPageHandler(svc, web.NewRenderer(), pdfDir).RegisterRoutes(router)
	return router
}

func TestIndexRendersEmptyForm(t *testing.T) {
	router := newTestRouter(&fakeInvoiceService{}, t.TempDir())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), `name="order_details"`)
	assert.NotContains(t, w.Body.String(), `class="order-result"`)
}

func postForm(router *gin.Engine, orderDetails string) *httptest.ResponseRecorder {
	form := url.Values{"order_details": {orderDetails}}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)
	return w
}

func TestSubmitRendersResults(t *testing.T) {
	svc := &fakeInvoiceService{results: []domain.InvoiceResult{
		{InvoiceNumber: 2501, PDFURL: "/invoices/Invoice_2501.pdf", DeliverySummary: "Delivery 🚚 2501"},
		{InvoiceNumber: 2502, PDFURL: "/invoices/Invoice_2502.pdf", DeliverySummary: "Delivery 🚚 2502"},
	}}
	router := newTestRouter(svc, t.TempDir())

	w := postForm(router, "✅Name : John\n2 chairs")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "✅Name : John\n2 chairs", svc.lastPaste)

	page := w.Body.String()
	assert.Equal(t, 2, strings.Count(page, `class="order-result"`))
	assert.Contains(t, page, "Invoice #2501")
	assert.Contains(t, page, `id="summary-1"`)
	assert.Contains(t, page, `id="summary-2"`)
	assert.Contains(t, page, `href="/invoices/Invoice_2502.pdf"`)
}

func TestSubmitNoResults(t *testing.T) {
	router := newTestRouter(&fakeInvoiceService{}, t.TempDir())

	w := postForm(router, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), `class="order-result"`)
}

func TestSubmitPipelineFailure(t *testing.T) {
	svc := &fakeInvoiceService{err: context.DeadlineExceeded}
	router := newTestRouter(svc, t.TempDir())

	w := postForm(router, "✅Name : John")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestDownloadInvoice(t *testing.T) {
	pdfDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(pdfDir, "Invoice_2501.pdf"), []byte("%PDF-1.4 test"), 0644))
	router := newTestRouter(&fakeInvoiceService{}, pdfDir)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/invoices/Invoice_2501.pdf", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "%PDF-1.4 test", w.Body.String())
}

func TestDownloadInvoiceMissing(t *testing.T) {
	router := newTestRouter(&fakeInvoiceService{}, t.TempDir())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/invoices/Invoice_9999.pdf", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDownloadInvoiceRejectsNonPDF(t *testing.T) {
	pdfDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(pdfDir, "notes.txt"), []byte("private"), 0644))
	router := newTestRouter(&fakeInvoiceService{}, pdfDir)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/invoices/notes.txt", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
