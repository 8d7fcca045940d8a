// Package supabase implements the booking data source client: token
// management against the auth endpoint and row fetches from the REST API.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/example/roomline/internal/config"
	"github.com/example/roomline/internal/models"
	"go.uber.org/zap"
)

// TokenProvider supplies a valid access token for the booking source. It is
// the only shared mutable collaborator in the system; implementations must be
// safe for concurrent use.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// Status describes the authentication state for the status endpoint.
type Status struct {
	Authenticated  bool   `json:"authenticated"`
	TokenValid     bool   `json:"tokenValid"`
	TokenExpiresIn string `json:"tokenExpiresIn,omitempty"`
}

// authResponse mirrors the token endpoint payload.
type authResponse struct {
	AccessToken  string `json:"access_token"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
}

// Authenticator manages the cached session token, refreshing it before
// expiry and falling back to a full login when the refresh fails.
type Authenticator struct {
	cfg        config.SupabaseConfig
	httpClient *http.Client
	logger     *zap.Logger

	mu           sync.Mutex
	accessToken  string
	refreshToken string
	expiresAt    time.Time
}

// NewAuthenticator creates an authenticator for the configured project.
func NewAuthenticator(cfg config.SupabaseConfig, logger *zap.Logger) *Authenticator {
	return &Authenticator{
		cfg:    cfg,
		logger: logger,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Token returns a cached access token, refreshing or re-authenticating as
// needed. A token with more than a minute of validity left is reused as-is.
func (a *Authenticator) Token(ctx context.Context) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.accessToken != "" && time.Until(a.expiresAt) > time.Minute {
		return a.accessToken, nil
	}

	if a.refreshToken != "" {
		err := a.requestToken(ctx, "refresh_token", map[string]string{
			"refresh_token": a.refreshToken,
		})
		if err == nil {
			a.logger.Info("token refreshed successfully")
			return a.accessToken, nil
		}
		a.logger.Warn("token refresh failed, re-authenticating", zap.Error(err))
	}

	a.logger.Info("requesting authentication token")
	err := a.requestToken(ctx, "password", map[string]string{
		"email":    a.cfg.Email,
		"password": a.cfg.Password,
	})
	if err != nil {
		return "", fmt.Errorf("authentication failed: %w", err)
	}
	return a.accessToken, nil
}

// requestToken performs one call against the token endpoint and stores the
// resulting session. Callers must hold the mutex.
func (a *Authenticator) requestToken(ctx context.Context, grantType string, payload map[string]string) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode token request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/auth/v1/token?grant_type=%s", a.cfg.URL, grantType)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", a.cfg.Key)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make token request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read token response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("token request failed (status %d): %s", resp.StatusCode, string(respBody))
	}

	var auth authResponse
	if err := json.Unmarshal(respBody, &auth); err != nil {
		return fmt.Errorf("failed to parse token response: %w", err)
	}

	a.accessToken = auth.AccessToken
	a.refreshToken = auth.RefreshToken
	a.expiresAt = time.Now().Add(time.Duration(auth.ExpiresIn) * time.Second)

	return nil
}

// Status reports the authentication state for the status endpoint.
func (a *Authenticator) Status() Status {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.accessToken == "" {
		return Status{}
	}

	valid := time.Now().Before(a.expiresAt)
	status := Status{
		Authenticated: true,
		TokenValid:    valid,
	}
	if valid {
		remaining := time.Until(a.expiresAt)
		status.TokenExpiresIn = fmt.Sprintf("%dh %dm",
			int(remaining.Hours()), int(remaining.Minutes())%60)
	}
	return status
}

// Client fetches booking rows from the REST API.
type Client struct {
	baseURL    string
	apiKey     string
	tokens     TokenProvider
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a booking source client using the given token provider.
func NewClient(cfg config.SupabaseConfig, tokens TokenProvider, logger *zap.Logger) *Client {
	return &Client{
		baseURL: cfg.URL,
		apiKey:  cfg.Key,
		tokens:  tokens,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FetchBookings returns the raw bookings for one room and day, ordered by
// start time by the server. Rows with missing fields are normalized so every
// booking carries a name and creator.
func (c *Client) FetchBookings(ctx context.Context, date, room string) ([]models.BookingInterval, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf(
		"%s/rest/v1/bookings?select=*&order=start_time.asc&date=eq.%s&room=eq.%s",
		c.baseURL, url.QueryEscape(date), url.QueryEscape(room),
	)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("booking source error (status %d): %s", resp.StatusCode, string(body))
	}

	var bookings []models.BookingInterval
	if err := json.Unmarshal(body, &bookings); err != nil {
		return nil, fmt.Errorf("failed to parse bookings: %w", err)
	}

	c.logger.Info("received bookings",
		zap.Int("count", len(bookings)),
		zap.String("date", date))

	for i := range bookings {
		normalizeBooking(&bookings[i], date, room)
	}
	return bookings, nil
}

// normalizeBooking fills fields the upstream rows sometimes omit.
func normalizeBooking(b *models.BookingInterval, date, room string) {
	if b.Name == "" {
		b.Name = "Untitled Booking"
	}
	if b.Creator == "" {
		b.Creator = "Unknown"
	}
	if b.Date == "" {
		b.Date = date
	}
	if b.StartTime == "" {
		b.StartTime = "00:00"
	}
	if b.EndTime == "" {
		b.EndTime = "23:59"
	}
	if b.Room == "" {
		b.Room = room
	}
}
