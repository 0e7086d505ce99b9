package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"skillmarket/internal/client/models"
	"skillmarket/internal/common"
	"skillmarket/internal/logging"
)

// genericErrorMessage is used when a non-2xx response has no parseable
// error body.
const genericErrorMessage = "request failed"

// HTTPClient is the concrete Client over net/http. A single http.Client
// with one timeout serves every call.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
	log     logging.Logger
}

func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
		log:     log,
	}
}

func (c *HTTPClient) Register(ctx context.Context, draft models.RegistrationDraft) (Credentials, error) {
	var creds Credentials
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", "", draft, &creds); err != nil {
		return Credentials{}, err
	}
	return creds, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (Credentials, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var creds Credentials
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", "", body, &creds); err != nil {
		return Credentials{}, err
	}
	return creds, nil
}

func (c *HTTPClient) Validate(ctx context.Context, token string) (bool, error) {
	var resp struct {
		Valid bool `json:"valid"`
	}
	err := c.do(ctx, http.MethodGet, "/api/auth/validate", token, nil, &resp)
	if err != nil {
		// The server answered and said no: that is a definitive rejection,
		// not a transport failure.
		var apiErr *Error
		if errors.As(err, &apiErr) {
			return false, nil
		}
		return false, err
	}
	return resp.Valid, nil
}

func (c *HTTPClient) Providers(ctx context.Context, token string) ([]models.ProviderProfile, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/api/providers", token, nil, &raw); err != nil {
		return nil, err
	}

	var profiles []models.ProviderProfile
	if err := coerceList(raw, &profiles); err != nil {
		return nil, fmt.Errorf("failed to decode provider list: %w", err)
	}
	return profiles, nil
}

func (c *HTTPClient) CreateProvider(ctx context.Context, token string, draft models.ProfileDraft) (models.ProviderProfile, error) {
	var profile models.ProviderProfile
	if err := c.do(ctx, http.MethodPost, "/api/providers", token, draft, &profile); err != nil {
		return models.ProviderProfile{}, err
	}
	return profile, nil
}

func (c *HTTPClient) UpdateProvider(ctx context.Context, token string, id int64, profile models.ProviderProfile) (models.ProviderProfile, error) {
	var updated models.ProviderProfile
	path := fmt.Sprintf("/api/providers/%d", id)
	if err := c.do(ctx, http.MethodPut, path, token, profile, &updated); err != nil {
		return models.ProviderProfile{}, err
	}
	return updated, nil
}

func (c *HTTPClient) MatchProviders(ctx context.Context, token string) ([]models.ProviderListing, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/api/match/providers", token, nil, &raw); err != nil {
		return nil, err
	}

	var listings []models.ProviderListing
	if err := coerceList(raw, &listings); err != nil {
		return nil, fmt.Errorf("failed to decode matched providers: %w", err)
	}
	return listings, nil
}

// do performs one request/response round trip. A transport failure wraps
// common.ErrUnavailable; a non-2xx status becomes an *Error with the
// server's message or the generic fallback; on success the body is decoded
// into out when out is non-nil.
func (c *HTTPClient) do(ctx context.Context, method, path, token string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(common.AuthHeaderName, "Bearer "+token)
	}
	requestID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, requestID)

	c.log.Debug(ctx, "api request", "method", method, "path", path, "request_id", requestID)

	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Warn(ctx, "api transport failure", "method", method, "path", path, "request_id", requestID, "error", err)
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", common.ErrUnavailable, err)
	}

	c.log.Debug(ctx, "api response", "method", method, "path", path, "request_id", requestID, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{StatusCode: resp.StatusCode, Message: errorMessage(data)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// errorMessage digs the human-readable message out of an error body. The
// server uses both {"error": ...} and {"message": ...}; anything else
// falls back to a generic message.
func errorMessage(body []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return genericErrorMessage
	}
	if payload.Error != "" {
		return payload.Error
	}
	if payload.Message != "" {
		return payload.Message
	}
	return genericErrorMessage
}

// coerceList decodes raw into out when raw is a JSON array; any other JSON
// value is treated as an empty list. The dashboards render an empty
// listing for a non-list body rather than erroring out, and callers rely
// on that.
func coerceList(raw json.RawMessage, out any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil
	}
	return json.Unmarshal(trimmed, out)
}
