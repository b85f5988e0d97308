package generator

import (
	"context"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/dreamhaven/order-invoice-service/internal/domain"
)

// GeneratorError represents an error that occurred during invoice generation
type GeneratorError struct {
	Op  string // Operation that caused the error
	Err error  // Original error
}

// Error implements the error interface
func (e *GeneratorError) Error() string {
	if e.Err == nil {
		return "generator error: " + e.Op
	}
	return "generator error: " + e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying error
func (e *GeneratorError) Unwrap() error {
	return e.Err
}

// Config holds configuration for the invoice generator client
type Config struct {
	APIKey  string
	Model   string
	Timeout time.Duration

	// BaseURL overrides the OpenAI API endpoint, for proxies and tests
	BaseURL string
}

// DefaultConfig returns a default configuration for the generator client
func DefaultConfig() *Config {
	return &Config{
		Model:   "gpt-3.5-turbo",
		Timeout: 60 * time.Second,
	}
}

// Client turns a free-form order into a structured invoice via the OpenAI chat API
type Client struct {
	api   *openai.Client
	model string
}

// NewClient creates a new invoice generator client
func NewClient(config *Config) *Client {
	if config == nil {
		config = DefaultConfig()
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	clientConfig.HTTPClient = &http.Client{Timeout: config.Timeout}
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	return &Client{
		api:   openai.NewClientWithConfig(clientConfig),
		model: config.Model,
	}
}

const invoicePrompt = `Given order details:
%s

Return ONLY VALID JSON matching exactly this structure:

{
    "bill_to": "Customer address and contact number ONLY (no names)",
    "items": [
        {
            "description": "Actual item details clearly stated, including color",
            "unit_price": price,
            "amount": price
        },
        {
            "description": "Additional actual item details, clearly stated including color",
            "unit_price": 0.0,
            "amount": 0.0
        }
    ],
    "summary": {
        "subtotal": amount,
        "tax": amount computed at 8.25%%,
        "shipping": 69.00,
        "total": amount
    }
}`

// GenerateInvoice asks the model for a structured invoice for one order.
// The returned invoice carries the given number and the standard terms.
func (c *Client) GenerateInvoice(ctx context.Context, orderDetails string, invoiceNumber int) (*domain.Invoice, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(invoicePrompt, orderDetails),
			},
		},
		Temperature: 0.1,
	})
	if err != nil {
		return nil, &GeneratorError{
			Op:  "create_chat_completion",
			Err: err,
		}
	}

	if len(resp.Choices) == 0 {
		return nil, &GeneratorError{
			Op:  "check_response_choices",
			Err: fmt.Errorf("no choices in response"),
		}
	}

	invoice, err := parseInvoiceContent(resp.Choices[0].Message.Content, invoiceNumber)
	if err != nil {
		return nil, err
	}

	return invoice, nil
}
