package web

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderResultPattern = regexp.MustCompile(`class="order-result"`)

func renderToString(t *testing.T, results []Result) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, NewRenderer().RenderPage(&buf, results))
	return buf.String()
}

func TestRenderPageNoResults(t *testing.T) {
	for _, results := range [][]Result{nil, {}} {
		page := renderToString(t, results)

		assert.Contains(t, page, `name="order_details"`)
		assert.Contains(t, page, `method="POST"`)
		assert.Empty(t, orderResultPattern.FindAllString(page, -1))
		assert.NotContains(t, page, "Generated Invoices")
	}
}

func TestRenderPageBlockCountAndIdentifiers(t *testing.T) {
	for _, n := range []int{1, 2, 5} {
		results := make([]Result, n)
		for i := range results {
			results[i] = Result{
				InvoiceNumber:   fmt.Sprintf("%d", 2500+i+1),
				PDFURL:          fmt.Sprintf("/invoices/Invoice_%d.pdf", 2500+i+1),
				DeliverySummary: fmt.Sprintf("Delivery %d", i+1),
			}
		}

		page := renderToString(t, results)

		assert.Len(t, orderResultPattern.FindAllString(page, -1), n)

		// Ids summary-1..summary-n appear exactly once each, in order.
		lastIdx := -1
		for i := 1; i <= n; i++ {
			id := fmt.Sprintf(`id="summary-%d"`, i)
			assert.Equal(t, 1, strings.Count(page, id))
			idx := strings.Index(page, id)
			assert.Greater(t, idx, lastIdx)
			lastIdx = idx
		}
		assert.NotContains(t, page, fmt.Sprintf(`id="summary-%d"`, n+1))
	}
}

func TestRenderPageSingleInvoiceScenario(t *testing.T) {
	page := renderToString(t, []Result{{
		InvoiceNumber:   "INV-001",
		PDFURL:          "https://x/inv1.pdf",
		DeliverySummary: "  Line1\nLine2  ",
	}})

	assert.Contains(t, page, "Invoice #INV-001")
	assert.Contains(t, page, `href="https://x/inv1.pdf"`)
	assert.Contains(t, page, `target="_blank"`)

	// The textarea carries the summary verbatim, untrimmed; trimming is the
	// copy helper's job.
	assert.Contains(t, page, `<textarea id="summary-1" readonly>  Line1
Line2  </textarea>`)
	assert.Contains(t, page, `onclick="copySummary('summary-1')"`)
}

func TestRenderPageTwoResultsAddressOwnSummaries(t *testing.T) {
	page := renderToString(t, []Result{
		{InvoiceNumber: "2501", PDFURL: "/invoices/Invoice_2501.pdf", DeliverySummary: "first summary"},
		{InvoiceNumber: "2502", PDFURL: "/invoices/Invoice_2502.pdf", DeliverySummary: "second summary"},
	})

	first := strings.Index(page, `id="summary-1"`)
	second := strings.Index(page, `id="summary-2"`)
	require.Greater(t, first, -1)
	require.Greater(t, second, first)

	assert.Greater(t, strings.Index(page, "first summary"), first)
	assert.Less(t, strings.Index(page, "first summary"), second)
	assert.Greater(t, strings.Index(page, "second summary"), second)
}

func TestRenderPageEmptySummary(t *testing.T) {
	page := renderToString(t, []Result{{InvoiceNumber: "2501", PDFURL: "/invoices/Invoice_2501.pdf"}})

	assert.Contains(t, page, `<textarea id="summary-1" readonly></textarea>`)
}

func TestRenderPageEmptyPDFURL(t *testing.T) {
	// A blank link target still renders a link; validation is not this layer's job.
	page := renderToString(t, []Result{{InvoiceNumber: "2501", DeliverySummary: "s"}})

	assert.Len(t, orderResultPattern.FindAllString(page, -1), 1)
	assert.Contains(t, page, `href=""`)
}

func TestRenderPageEscapesSummary(t *testing.T) {
	page := renderToString(t, []Result{{
		InvoiceNumber:   "2501",
		PDFURL:          "/invoices/Invoice_2501.pdf",
		DeliverySummary: "Sofa <3 & \"loveseat\"",
	}})

	assert.NotContains(t, page, "Sofa <3")
	assert.Contains(t, page, "Sofa &lt;3 &amp; &#34;loveseat&#34;")
}

func TestRenderPageIncludesCopyScript(t *testing.T) {
	page := renderToString(t, nil)

	assert.Contains(t, page, "function copySummary(id)")
	assert.Contains(t, page, "navigator.clipboard")
	assert.Contains(t, page, "execCommand")
}
