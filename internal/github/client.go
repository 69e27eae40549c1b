package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const apiVersion = "2022-11-28"

// StatusError is returned for non-2xx API responses.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("github: unexpected status %d from %s", e.StatusCode, e.URL)
}

// Client is a client for the public GitHub REST API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientOptions contains options for creating a Client
type ClientOptions struct {
	BaseURL    string
	Token      string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// NewClient creates a new GitHub API client
func NewClient(opts ClientOptions) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout == 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:    opts.BaseURL,
		token:      opts.Token,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// ListUsers fetches a page of users starting after the given id.
// perPage must already be clamped to [1,100] by the caller.
func (c *Client) ListUsers(ctx context.Context, since, perPage int) ([]UserSummary, error) {
	q := url.Values{}
	q.Set("since", strconv.Itoa(since))
	q.Set("per_page", strconv.Itoa(perPage))

	var users []UserSummary
	if err := c.get(ctx, "/users?"+q.Encode(), &users); err != nil {
		return nil, err
	}

	c.logger.Debug("listed users", slog.Int("since", since), slog.Int("count", len(users)))
	return users, nil
}

// GetUser fetches the extended profile for a single login.
func (c *Client) GetUser(ctx context.Context, login string) (*UserDetail, error) {
	if login == "" {
		return nil, fmt.Errorf("login is required")
	}

	var detail UserDetail
	if err := c.get(ctx, "/users/"+url.PathEscape(login), &detail); err != nil {
		return nil, err
	}

	c.logger.Debug("fetched user detail", slog.String("login", login))
	return &detail, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	reqURL := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	req.Header.Set("User-Agent", "ghbrowse")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain so the connection can be reused
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return &StatusError{StatusCode: resp.StatusCode, URL: reqURL}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
