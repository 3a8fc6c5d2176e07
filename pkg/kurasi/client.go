package kurasi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/enums"
	pkgerrors "github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/errors"
)

const (
	defaultTimeout           = 30 * time.Second
	defaultBulkTimeout       = 120 * time.Second
	errorBodyReadLimit int64 = 1024

	authHeader = "X-Kurasi-Token"
)

var (
	errBaseURLRequired = errors.New("kurasi base URL is required")
	errTokenRequired   = errors.New("kurasi api token is required")
)

// Client wraps the Kurasi carrier REST API.
type Client struct {
	httpClient *http.Client
	bulkClient *http.Client
	baseURL    string
	apiToken   string
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBulkHTTPClient overrides the HTTP client used for bulk listing calls.
func WithBulkHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.bulkClient = client
		}
	}
}

// WithTimeouts overrides the default and bulk-listing timeouts.
func WithTimeouts(standard, bulk time.Duration) Option {
	return func(c *Client) {
		if standard > 0 {
			c.httpClient = &http.Client{Timeout: standard}
		}
		if bulk > 0 {
			c.bulkClient = &http.Client{Timeout: bulk}
		}
	}
}

// NewClient builds the carrier client for the given base URL and token.
func NewClient(baseURL, apiToken string, opts ...Option) (*Client, error) {
	trimmedURL := strings.TrimSpace(baseURL)
	if trimmedURL == "" {
		return nil, errBaseURLRequired
	}
	trimmedToken := strings.TrimSpace(apiToken)
	if trimmedToken == "" {
		return nil, errTokenRequired
	}

	client := &Client{
		baseURL:    trimmedURL,
		apiToken:   trimmedToken,
		httpClient: &http.Client{Timeout: defaultTimeout},
		bulkClient: &http.Client{Timeout: defaultBulkTimeout},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	return client, nil
}

type quotePayload struct {
	Country      string `json:"country"`
	Origin       string `json:"origin"`
	Currency     string `json:"currency"`
	ActualWeight int    `json:"actualWeight"`
	ActualLength int    `json:"actualLength,omitempty"`
	ActualWidth  int    `json:"actualWidth,omitempty"`
	ActualHeight int    `json:"actualHeight,omitempty"`
}

type carrierFailure struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"errorMessage"`
	Message      string `json:"message"`
}

// FetchQuote performs one rate-calculator call. Transport and upstream
// failures come back as a FAIL/ERROR outcome, not as an error; the error
// return means the request could not be built. No retry is performed.
func (c *Client) FetchQuote(ctx context.Context, params QuoteParams) (*QuoteOutcome, error) {
	if c == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "kurasi client not configured")
	}
	if strings.TrimSpace(params.DestinationCountry) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "destination country is required")
	}

	payload, err := json.Marshal(quotePayload{
		Country:      params.DestinationCountry,
		Origin:       params.OriginCountry,
		Currency:     params.Currency,
		ActualWeight: params.WeightGrams,
		ActualLength: params.LengthCm,
		ActualWidth:  params.WidthCm,
		ActualHeight: params.HeightCm,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "marshal quote request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.buildURL("rates/calculate"), bytes.NewReader(payload))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build quote request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(authHeader, c.apiToken)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return &QuoteOutcome{
			Status:  enums.QuoteStatusError,
			Message: fmt.Sprintf("carrier unreachable: %v", err),
		}, nil
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return failureOutcome(resp), nil
	}

	var raw RawQuote
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return &QuoteOutcome{
			Status:     enums.QuoteStatusError,
			Message:    fmt.Sprintf("decode carrier response: %v", err),
			HTTPStatus: resp.StatusCode,
		}, nil
	}

	return &QuoteOutcome{
		Status:     enums.QuoteStatusSuccess,
		HTTPStatus: resp.StatusCode,
		Raw:        &raw,
	}, nil
}

// failureOutcome maps a non-200 carrier response to an outcome, reusing the
// carrier's own status and message when the body carries them.
func failureOutcome(resp *http.Response) *QuoteOutcome {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyReadLimit))

	outcome := &QuoteOutcome{
		Status:     enums.QuoteStatusError,
		HTTPStatus: resp.StatusCode,
		Message:    fmt.Sprintf("carrier returned status %d", resp.StatusCode),
	}

	var failure carrierFailure
	if err := json.Unmarshal(body, &failure); err == nil {
		if failure.Status == string(enums.QuoteStatusFail) {
			outcome.Status = enums.QuoteStatusFail
		}
		if msg := strings.TrimSpace(failure.ErrorMessage); msg != "" {
			outcome.Message = msg
		} else if msg := strings.TrimSpace(failure.Message); msg != "" {
			outcome.Message = msg
		}
	}

	return outcome
}

type shipmentPayload struct {
	ServiceCode    string `json:"serviceCode"`
	Country        string `json:"country"`
	RecipientName  string `json:"recipientName"`
	RecipientPhone string `json:"recipientPhone"`
	Address        string `json:"address"`
	PostalCode     string `json:"postalCode,omitempty"`
	ActualWeight   int    `json:"actualWeight"`
	ActualLength   int    `json:"actualLength,omitempty"`
	ActualWidth    int    `json:"actualWidth,omitempty"`
	ActualHeight   int    `json:"actualHeight,omitempty"`
	DeclaredValue  int64  `json:"declaredValue"`
	Currency       string `json:"currency"`
	Reference      string `json:"reference,omitempty"`
}

// CreateShipment registers a shipment with the carrier.
func (c *Client) CreateShipment(ctx context.Context, params ShipmentParams) (*Shipment, error) {
	if c == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "kurasi client not configured")
	}
	if !params.ServiceCode.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid service code %q", params.ServiceCode))
	}

	payload, err := json.Marshal(shipmentPayload{
		ServiceCode:    params.ServiceCode.String(),
		Country:        params.DestinationCountry,
		RecipientName:  params.RecipientName,
		RecipientPhone: params.RecipientPhone,
		Address:        params.Address,
		PostalCode:     params.PostalCode,
		ActualWeight:   params.WeightGrams,
		ActualLength:   params.LengthCm,
		ActualWidth:    params.WidthCm,
		ActualHeight:   params.HeightCm,
		DeclaredValue:  params.DeclaredValueMinor,
		Currency:       params.Currency,
		Reference:      params.Reference,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "marshal shipment request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.buildURL("shipments"), bytes.NewReader(payload))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build shipment request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(authHeader, c.apiToken)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "execute shipment request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, upstreamError(resp, "create shipment")
	}

	var shipment Shipment
	if err := json.NewDecoder(resp.Body).Decode(&shipment); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode shipment response")
	}
	return &shipment, nil
}

// CancelShipment cancels a previously created shipment.
func (c *Client) CancelShipment(ctx context.Context, shipmentID string) error {
	if c == nil {
		return pkgerrors.New(pkgerrors.CodeDependency, "kurasi client not configured")
	}
	trimmed := strings.TrimSpace(shipmentID)
	if trimmed == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "shipment ID is required")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.buildURL("shipments/"+url.PathEscape(trimmed)), nil)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build cancel request")
	}
	httpReq.Header.Set(authHeader, c.apiToken)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "execute cancel request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return upstreamError(resp, "cancel shipment")
	}
	return nil
}

// LabelURL fetches the printable label location for a shipment.
func (c *Client) LabelURL(ctx context.Context, shipmentID string) (string, error) {
	if c == nil {
		return "", pkgerrors.New(pkgerrors.CodeDependency, "kurasi client not configured")
	}
	trimmed := strings.TrimSpace(shipmentID)
	if trimmed == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "shipment ID is required")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.buildURL("shipments/"+url.PathEscape(trimmed)+"/label"), nil)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build label request")
	}
	httpReq.Header.Set(authHeader, c.apiToken)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "execute label request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", upstreamError(resp, "fetch label")
	}

	var apiResp struct {
		LabelURL string `json:"labelUrl"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode label response")
	}
	if apiResp.LabelURL == "" {
		return "", pkgerrors.New(pkgerrors.CodeDependency, "carrier returned empty label URL")
	}
	return apiResp.LabelURL, nil
}

// ListShipments pages through the carrier's shipment listing. Bulk listings
// are slow on the carrier side, so this uses the long-timeout client.
func (c *Client) ListShipments(ctx context.Context, params ListShipmentsParams) ([]Shipment, error) {
	if c == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "kurasi client not configured")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.buildURL("shipments"), nil)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build list request")
	}
	httpReq.Header.Set(authHeader, c.apiToken)

	q := httpReq.URL.Query()
	if params.Status != "" {
		q.Set("status", params.Status)
	}
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	if params.PageSize > 0 {
		q.Set("pageSize", strconv.Itoa(params.PageSize))
	}
	httpReq.URL.RawQuery = q.Encode()

	resp, err := c.bulkClient.Do(httpReq)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "execute list request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, upstreamError(resp, "list shipments")
	}

	var apiResp struct {
		Shipments []Shipment `json:"shipments"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode list response")
	}
	return apiResp.Shipments, nil
}

func upstreamError(resp *http.Response, action string) error {
	msg, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyReadLimit))
	return pkgerrors.Wrap(pkgerrors.CodeDependency, fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg))), action+" failed")
}

func (c *Client) buildURL(path string) string {
	trimmed := strings.TrimRight(c.baseURL, "/")
	path = strings.TrimLeft(path, "/")
	return fmt.Sprintf("%s/%s", trimmed, path)
}
