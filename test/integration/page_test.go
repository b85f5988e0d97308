package integration

import (
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOrderPage exercises the running service end to end. Point API_BASE_URL
// at a deployed instance; OPENAI_API_KEY must be configured on the server for
// the POST test to produce results.
func TestOrderPage(t *testing.T) {
	baseURL := os.Getenv("API_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	client := &http.Client{
		Timeout: 10 * time.Second,
	}

	t.Run("Health", func(t *testing.T) {
		resp, err := client.Get(baseURL + "/health")
		if err != nil {
			t.Skipf("service not running at %s: %v", baseURL, err)
		}
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("IndexRendersForm", func(t *testing.T) {
		resp, err := client.Get(baseURL + "/")
		if err != nil {
			t.Skipf("service not running at %s: %v", baseURL, err)
		}
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		page := string(body)
		assert.Contains(t, page, `name="order_details"`)
		assert.Contains(t, page, "function copySummary(id)")
		assert.NotContains(t, page, `class="order-result"`)
	})

	t.Run("SubmitEmptyPaste", func(t *testing.T) {
		form := url.Values{"order_details": {"   "}}
		resp, err := client.PostForm(baseURL+"/", form)
		if err != nil {
			t.Skipf("service not running at %s: %v", baseURL, err)
		}
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		// A paste with no orders renders the form and zero result blocks.
		assert.Equal(t, 0, strings.Count(string(body), `class="order-result"`))
	})
}
