package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newStubServer serves a canned chat completion whose message content is body
func newStubServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/chat/completions", r.URL.Path)

		var req struct {
			Model       string  `json:"model"`
			Temperature float64 `json:"temperature"`
			Messages    []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 1)
		assert.Contains(t, req.Messages[0].Content, "Return ONLY VALID JSON")
		assert.InDelta(t, 0.1, req.Temperature, 0.001)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"choices": [{"message": {"role": "assistant", "content": %s}}]}`,
			mustJSONString(t, body))
	}))
}

func mustJSONString(t *testing.T, s string) string {
	t.Helper()
	data, err := json.Marshal(s)
	require.NoError(t, err)
	return string(data)
}

func newStubClient(url string) *Client {
	return NewClient(&Config{
		APIKey:  "test-key",
		Model:   "gpt-3.5-turbo",
		Timeout: 5 * time.Second,
		BaseURL: url,
	})
}

func TestGenerateInvoice(t *testing.T) {
	server := newStubServer(t, validInvoiceJSON)
	defer server.Close()

	invoice, err := newStubClient(server.URL).GenerateInvoice(context.Background(), "2 chairs, deliver Friday", 2501)
	require.NoError(t, err)

	assert.Equal(t, 2501, invoice.InvoiceNumber)
	assert.Equal(t, "789 Elm St, Fort Worth TX 76102 469-555-0123", invoice.BillTo)
	assert.Equal(t, 1475.17, invoice.Summary.Total)
}

func TestGenerateInvoiceFencedReply(t *testing.T) {
	server := newStubServer(t, "```json\n"+validInvoiceJSON+"\n```")
	defer server.Close()

	invoice, err := newStubClient(server.URL).GenerateInvoice(context.Background(), "1 sofa", 2502)
	require.NoError(t, err)
	assert.Equal(t, 2502, invoice.InvoiceNumber)
}

func TestGenerateInvoiceUnparsableReply(t *testing.T) {
	server := newStubServer(t, "sorry, I cannot help with that")
	defer server.Close()

	_, err := newStubClient(server.URL).GenerateInvoice(context.Background(), "1 sofa", 2503)
	require.Error(t, err)

	var genErr *GeneratorError
	assert.ErrorAs(t, err, &genErr)
}

func TestGenerateInvoiceServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "rate limited"}}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := newStubClient(server.URL).GenerateInvoice(context.Background(), "1 sofa", 2504)
	require.Error(t, err)

	var genErr *GeneratorError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, "create_chat_completion", genErr.Op)
}
