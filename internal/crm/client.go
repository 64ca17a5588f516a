// Package crm syncs decisions to Zoho CRM. Each organization connects its
// own Zoho account; records live in the Slack_Decisions custom module.
package crm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const decisionsModule = "Slack_Decisions"

// tokenStore persists refreshed access tokens so the next sync does not
// have to refresh again.
type tokenStore interface {
	UpdateTokens(orgID, accessToken, refreshToken string, expiresAt *time.Time) error
}

// Client talks to a single organization's Zoho CRM account.
type Client struct {
	orgID        string
	apiDomain    string
	accountsURL  string
	clientID     string
	clientSecret string

	accessToken  string
	refreshToken string
	tokenExpiry  *time.Time

	store      tokenStore
	httpClient *http.Client
}

// NewClient builds a per-organization client. The domain is the Zoho data
// center suffix ("com", "eu", "in").
func NewClient(orgID, domain, accessToken, refreshToken string, tokenExpiry *time.Time,
	clientID, clientSecret string, store tokenStore) *Client {
	if domain == "" {
		domain = "com"
	}
	return &Client{
		orgID:        orgID,
		apiDomain:    fmt.Sprintf("https://www.zohoapis.%s", domain),
		accountsURL:  fmt.Sprintf("https://accounts.zoho.%s", domain),
		clientID:     clientID,
		clientSecret: clientSecret,
		accessToken:  accessToken,
		refreshToken: refreshToken,
		tokenExpiry:  tokenExpiry,
		store:        store,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// getAccessToken returns a valid token, refreshing through the accounts
// endpoint when the cached one is within 5 minutes of expiry.
func (c *Client) getAccessToken(ctx context.Context) (string, error) {
	if c.accessToken != "" && c.tokenExpiry != nil {
		if time.Now().UTC().Before(c.tokenExpiry.Add(-5 * time.Minute)) {
			return c.accessToken, nil
		}
	}
	return c.refreshAccessToken(ctx)
}

func (c *Client) refreshAccessToken(ctx context.Context) (string, error) {
	if c.clientID == "" || c.clientSecret == "" {
		return "", fmt.Errorf("zoho client credentials not configured")
	}
	if c.refreshToken == "" {
		return "", fmt.Errorf("no refresh token for org %s", c.orgID)
	}

	form := url.Values{
		"refresh_token": {c.refreshToken},
		"client_id":     {c.clientID},
		"client_secret": {c.clientSecret},
		"grant_type":    {"refresh_token"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.accountsURL+"/oauth/v2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build token refresh request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token refresh request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("token refresh returned %d: %s", resp.StatusCode, string(body))
	}

	var data struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", fmt.Errorf("failed to decode token refresh response: %w", err)
	}
	if data.AccessToken == "" {
		return "", fmt.Errorf("token refresh response had no access_token")
	}

	if data.ExpiresIn == 0 {
		data.ExpiresIn = 3600
	}
	expiry := time.Now().UTC().Add(time.Duration(data.ExpiresIn) * time.Second)
	c.accessToken = data.AccessToken
	c.tokenExpiry = &expiry

	if c.store != nil {
		if err := c.store.UpdateTokens(c.orgID, c.accessToken, c.refreshToken, c.tokenExpiry); err != nil {
			return "", fmt.Errorf("failed to persist refreshed token: %w", err)
		}
	}

	return c.accessToken, nil
}

func (c *Client) makeRequest(ctx context.Context, method, endpoint string, payload any) (map[string]any, error) {
	token, err := c.getAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal crm payload: %w", err)
		}
		body = strings.NewReader(string(raw))
	}

	req, err := http.NewRequestWithContext(ctx, method,
		fmt.Sprintf("%s/crm/v6/%s", c.apiDomain, endpoint), body)
	if err != nil {
		return nil, fmt.Errorf("failed to build crm request: %w", err)
	}
	req.Header.Set("Authorization", "Zoho-oauthtoken "+token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("crm request failed: %w", err)
	}
	defer resp.Body.Close()

	// 204 means the module exists but has no records.
	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("crm api returned %d: %s", resp.StatusCode, string(raw))
	}

	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode crm response: %w", err)
	}
	return result, nil
}

// CreateDecision inserts a record into the decisions module.
func (c *Client) CreateDecision(ctx context.Context, record map[string]any) error {
	_, err := c.makeRequest(ctx, http.MethodPost, decisionsModule,
		map[string]any{"data": []map[string]any{record}})
	return err
}

// UpdateDecision overwrites an existing record by its Zoho record ID.
func (c *Client) UpdateDecision(ctx context.Context, recordID string, record map[string]any) error {
	_, err := c.makeRequest(ctx, http.MethodPut, decisionsModule+"/"+recordID,
		map[string]any{"data": []map[string]any{record}})
	return err
}

// SearchDecisionByID finds the Zoho record carrying our internal decision
// ID and returns its Zoho record ID, or "" when no record matches.
func (c *Client) SearchDecisionByID(ctx context.Context, decisionID int64) (string, error) {
	result, err := c.makeRequest(ctx, http.MethodGet,
		decisionsModule+"?fields=id,Name,Decision_Id", nil)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", nil
	}

	data, _ := result["data"].([]any)
	namePrefix := fmt.Sprintf("Decision #%d:", decisionID)
	for _, item := range data {
		record, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if id, ok := record["Decision_Id"].(float64); ok && int64(id) == decisionID {
			return fmt.Sprint(record["id"]), nil
		}
		if name, ok := record["Name"].(string); ok && strings.HasPrefix(name, namePrefix) {
			return fmt.Sprint(record["id"]), nil
		}
	}
	return "", nil
}
