package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"employee-directory/internal/models"
)

// Client talks to the remote directory API. Every call is bounded by the
// configured timeout; only List retries, with linear backoff per attempt.
type Client struct {
	baseURL       string
	employeesPath string
	exportPath    string
	maxRetries    int
	backoff       time.Duration
	timeout       time.Duration
	http          *http.Client
	onStatus      func(msg string)
}

// Option tweaks client construction.
type Option func(*Client)

// WithStatusFunc registers a sink for progress messages (retry counters).
func WithStatusFunc(fn func(msg string)) Option {
	return func(c *Client) { c.onStatus = fn }
}

// WithBackoff overrides the retry backoff unit (1s by default).
func WithBackoff(d time.Duration) Option {
	return func(c *Client) { c.backoff = d }
}

func New(baseURL, employeesPath, exportPath string, timeout time.Duration, maxRetries int, opts ...Option) *Client {
	c := &Client{
		baseURL:       baseURL,
		employeesPath: employeesPath,
		exportPath:    exportPath,
		maxRetries:    maxRetries,
		backoff:       time.Second,
		timeout:       timeout,
		http:          &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) report(msg string) {
	if c.onStatus != nil {
		c.onStatus(msg)
	}
}

// List fetches the remote directory and reconciles it into local records.
// Transient failures (timeout, connectivity) are retried up to the retry
// ceiling with backoff attempt×unit; HTTP error statuses fail immediately.
func (c *Client) List(ctx context.Context) ([]models.EmployeeRecord, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			c.report(fmt.Sprintf("Connection failed, retrying (%d/%d)...", attempt, c.maxRetries))
			select {
			case <-time.After(time.Duration(attempt) * c.backoff):
			case <-ctx.Done():
				return nil, classify(ctx.Err())
			}
		}
		users, err := c.fetchEmployees(ctx)
		if err == nil {
			return Transform(users), nil
		}
		err = classify(err)
		if !transient(err) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

func (c *Client) fetchEmployees(ctx context.Context) ([]models.RemoteUser, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+c.employeesPath, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode}
	}
	var users []models.RemoteUser
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		return nil, err
	}
	return users, nil
}

// Create posts a new employee. Any 2xx is success; the response body is
// ignored — the caller assigns the local id itself. No retry.
func (c *Client) Create(ctx context.Context, in models.CreateEmployeeInput) error {
	return c.send(ctx, http.MethodPost, c.employeesPath, in)
}

// Update puts the changed fields to {employees}/{id}. Any 2xx is success.
func (c *Client) Update(ctx context.Context, id string, in models.UpdateEmployeeInput) error {
	return c.send(ctx, http.MethodPut, c.employeesPath+"/"+id, in)
}

// Delete removes the remote entry. Any 2xx is success.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodDelete, c.employeesPath+"/"+id, nil)
}

// ExportPayload is the body posted to the export endpoint.
type ExportPayload struct {
	Title       string `json:"title"`
	Body        string `json:"body"`
	UserID      int    `json:"userId"`
	Timestamp   string `json:"timestamp"`
	RecordCount int    `json:"recordCount"`
}

// ExportRemote ships the CSV text to the export endpoint. No retry.
func (c *Client) ExportRemote(ctx context.Context, payload ExportPayload) error {
	return c.send(ctx, http.MethodPost, c.exportPath, payload)
}

func (c *Client) send(ctx context.Context, method, path string, body any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return classify(err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode}
	}
	return nil
}
