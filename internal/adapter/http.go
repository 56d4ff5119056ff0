package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/okulikov/go-gatekeeper/internal/config"
	"github.com/okulikov/go-gatekeeper/internal/logger"
	"github.com/okulikov/go-gatekeeper/internal/utils"
	"github.com/okulikov/go-gatekeeper/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	cookieName string
	token      string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// serverCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout. The session token issued by the
// server is carried in the cookie named by authCfg.SessionCookie.
//
// Returns an error if serverCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(serverCfg config.Server, authCfg config.Auth, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(serverCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(serverCfg.RequestTimeout)

	return &httpServerAdapter{
		client:     client,
		cookieName: authCfg.SessionCookie,
		logger:     logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
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

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the session cookie of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the session token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Signup implements [ServerAdapter].
func (h *httpServerAdapter) Signup(ctx context.Context, credentials models.Credentials) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		Post("/auth/signup")
	if err != nil {
		return fmt.Errorf("signup request failed: %w", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return err
	}

	h.storeSessionCookie(resp)
	return nil
}

// Login implements [ServerAdapter].
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		Post("/auth/login")
	if err != nil {
		return fmt.Errorf("login request failed: %w", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return err
	}

	h.storeSessionCookie(resp)
	return nil
}

// Logout implements [ServerAdapter]. The local token is cleared even when the
// server call fails; the session is gone from the client's point of view.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetCookie(h.sessionCookie()).
		Post("/auth/logout")

	h.token = ""

	if err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	return mapHTTPError(resp)
}

// Profile implements [ServerAdapter].
func (h *httpServerAdapter) Profile(ctx context.Context) (models.SessionPayload, error) {
	var payload models.SessionPayload
	resp, err := h.client.R().
		SetContext(ctx).
		SetCookie(h.sessionCookie()).
		SetResult(&payload).
		Get("/profile")
	if err != nil {
		return models.SessionPayload{}, fmt.Errorf("profile request failed: %w", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return models.SessionPayload{}, err
	}

	return payload, nil
}

// Admin implements [ServerAdapter].
func (h *httpServerAdapter) Admin(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetCookie(h.sessionCookie()).
		Get("/admin")
	if err != nil {
		return fmt.Errorf("admin request failed: %w", err)
	}
	return mapHTTPError(resp)
}

// storeSessionCookie captures the session token from a login or signup
// response.
func (h *httpServerAdapter) storeSessionCookie(resp *resty.Response) {
	for _, cookie := range resp.Cookies() {
		if cookie.Name == h.cookieName {
			h.SetToken(cookie.Value)
			return
		}
	}
}

// sessionCookie returns the cookie carrying the current session token.
func (h *httpServerAdapter) sessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:  h.cookieName,
		Value: h.token,
	}
}
