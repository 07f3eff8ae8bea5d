package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/daybook-app/daybook/models"
	"github.com/go-resty/resty/v2"
)

// authTokenHeader carries the bearer credential on every authenticated
// request.
const authTokenHeader = "X-Auth-Token"

// HTTPClientConfig configures the HTTP sync server adapter.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpSyncServer struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPSyncServer constructs an HTTP/REST implementation of [SyncServer].
// It normalises and validates the base URL and configures the underlying
// client with the per-request timeout; a hung connection can never wedge a
// sync operation longer than that.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid
// URL.
func NewHTTPSyncServer(cfg HTTPClientConfig) (SyncServer, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid sync server address: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout)

	return &httpSyncServer{client: cli}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [SyncServer]. It stores token (whitespace-trimmed) for
// use in the X-Auth-Token header of all subsequent authenticated requests.
func (h *httpSyncServer) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [SyncServer].
func (h *httpSyncServer) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// CreateAccount implements [SyncServer]. It POSTs the auth token to
// POST /api/v1/accounts and returns the server-generated salt.
func (h *httpSyncServer) CreateAccount(ctx context.Context) (string, error) {
	var result models.CreateAccountResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.CreateAccountRequest{AuthToken: h.Token()}).
		SetResult(&result).
		Post("/api/v1/accounts")
	if err != nil {
		return "", fmt.Errorf("create account request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return result.Salt, nil
}

// ValidateAccount implements [SyncServer]. It GETs
// /api/v1/accounts/validate and returns the account metadata, including the
// salt required for key re-derivation on a reconnecting device.
func (h *httpSyncServer) ValidateAccount(ctx context.Context) (models.ValidateAccountResponse, error) {
	var result models.ValidateAccountResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&result).
		Get("/api/v1/accounts/validate")
	if err != nil {
		return models.ValidateAccountResponse{}, fmt.Errorf("validate account request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ValidateAccountResponse{}, err
	}

	return result, nil
}

// DeleteAccount implements [SyncServer]. It DELETEs /api/v1/accounts,
// removing the account and every entry stored under it.
func (h *httpSyncServer) DeleteAccount(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Delete("/api/v1/accounts")
	if err != nil {
		return fmt.Errorf("delete account request: %w", err)
	}

	return mapHTTPError(resp)
}

// Push implements [SyncServer]. It POSTs the encrypted envelope batch to
// POST /api/v1/sync/push.
func (h *httpSyncServer) Push(ctx context.Context, entries []models.SyncEntry) (models.PushResponse, error) {
	var result models.PushResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.PushRequest{Entries: entries}).
		SetResult(&result).
		Post("/api/v1/sync/push")
	if err != nil {
		return models.PushResponse{}, fmt.Errorf("push request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PushResponse{}, err
	}

	return result, nil
}

// Pull implements [SyncServer]. It GETs one page from
// /api/v1/sync/pull?since=<seq>&limit=<n>.
func (h *httpSyncServer) Pull(ctx context.Context, since int64, limit int) (models.PullResponse, error) {
	var result models.PullResponse

	resp, err := h.authedRequest(ctx).
		SetQueryParams(map[string]string{
			"since": strconv.FormatInt(since, 10),
			"limit": strconv.Itoa(limit),
		}).
		SetResult(&result).
		Get("/api/v1/sync/pull")
	if err != nil {
		return models.PullResponse{}, fmt.Errorf("pull request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PullResponse{}, err
	}

	return result, nil
}

// FullSync implements [SyncServer]. It POSTs the full local entry set to
// POST /api/v1/sync/full and returns the server's merged superset.
func (h *httpSyncServer) FullSync(ctx context.Context, entries []models.SyncEntry) (models.FullSyncResponse, error) {
	var result models.FullSyncResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.FullSyncRequest{Entries: entries}).
		SetResult(&result).
		Post("/api/v1/sync/full")
	if err != nil {
		return models.FullSyncResponse{}, fmt.Errorf("full sync request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FullSyncResponse{}, err
	}

	return result, nil
}

func (h *httpSyncServer) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader(authTokenHeader, token)
	}
	return req
}

// mapHTTPError converts a non-2xx response into an error surfacing the
// status code and body, matching well-known statuses to sentinel errors.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrAccountNotFound
	}

	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}
