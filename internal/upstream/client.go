// Package upstream fetches saved sales documents from the billing REST API.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"billdesk/internal/config"
	"billdesk/internal/document"
	"billdesk/internal/domain"
	"billdesk/internal/port"
)

var kindPaths = map[document.Kind]string{
	document.KindInvoice:         "sales-invoices",
	document.KindProforma:        "proforma-invoices",
	document.KindEstimate:        "estimates",
	document.KindDeliveryChallan: "delivery-challans",
	document.KindPaymentIn:       "payment-ins",
}

// defaultMaxBodyBytes caps a document response when the config leaves it unset.
const defaultMaxBodyBytes = 5 << 20

// Client wraps interactions with the billing API.
type Client struct {
	baseURL    string
	apiKey     string
	maxBody    int64
	httpClient *http.Client
}

// NewClient constructs a new client.
func NewClient(cfg *config.UpstreamConfig) *Client {
	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxBodyBytes
	}
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		maxBody: maxBody,
		httpClient: &http.Client{
			Timeout: cfg.Timeout(),
		},
	}
}

var _ port.DocumentSource = (*Client)(nil)

// Fetch loads one document. A 404 maps to domain.ErrDocumentNotFound and any
// other failure to domain.ErrUpstreamUnavailable.
func (c *Client) Fetch(ctx context.Context, kind document.Kind, id string) (*document.Document, error) {
	path, ok := kindPaths[kind]
	if !ok {
		return nil, domain.ErrUnknownDocumentKind
	}

	endpoint := fmt.Sprintf("%s/%s/%s", c.baseURL, path, url.PathEscape(id))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("upstream.Fetch: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream.Fetch %s/%s: %v: %w", path, id, err, domain.ErrUpstreamUnavailable)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrDocumentNotFound
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("upstream.Fetch %s/%s: status %d: %w", path, id, resp.StatusCode, domain.ErrUpstreamUnavailable)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("upstream.Fetch read: %v: %w", err, domain.ErrUpstreamUnavailable)
	}
	if int64(len(body)) > c.maxBody {
		return nil, fmt.Errorf("upstream.Fetch %s/%s: body exceeds %d bytes: %w", path, id, c.maxBody, domain.ErrInvalidDocument)
	}
	return decodeDocument(body)
}

// decodeDocument accepts the bare document or one wrapped in {"data": ...}.
func decodeDocument(body []byte) (*document.Document, error) {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("upstream.Fetch decode: %v: %w", err, domain.ErrInvalidDocument)
	}
	payload := body
	if len(envelope.Data) > 0 && !bytes.Equal(envelope.Data, []byte("null")) {
		payload = envelope.Data
	}

	var doc document.Document
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("upstream.Fetch decode: %v: %w", err, domain.ErrInvalidDocument)
	}
	return &doc, nil
}
