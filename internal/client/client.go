// Package client is a typed REST client for the Code42-style security
// platform API. It covers only the endpoints the jules42 commands use:
// user/org directory, audit log, device inventory, alerting and
// file-content storage.
package client

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/jules-cli/jules42/internal/jerrors"
	"github.com/jules-cli/jules42/internal/logger"
	"github.com/jules-cli/jules42/pkg/version"
)

// DefaultPageSize is the record count requested per page. A response with
// fewer records marks the end of a paginated sequence.
const DefaultPageSize = 500

const defaultTimeout = 60 * time.Second

// Client is an authenticated handle to the platform API. It is safe to
// share across commands within a single invocation; no method mutates
// session state.
type Client struct {
	http *resty.Client
	log  *logger.Logger

	Users          *UsersService
	Orgs           *OrgsService
	Devices        *DevicesService
	AuditLogs      *AuditLogsService
	Alerts         *AlertsService
	DetectionLists *DetectionListsService
	SecurityData   *SecurityDataService
}

// Option configures a Client
type Option func(*Client)

// WithTimeout overrides the per-request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.SetTimeout(d)
	}
}

// WithLogger sets the logger used for request-level debug output
func WithLogger(log *logger.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// New creates an authenticated client for the given authority host.
// Requests are single-shot: no retry, no backoff.
func New(baseURL, token string, opts ...Option) *Client {
	hc := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(token).
		SetTimeout(defaultTimeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "jules42/"+version.Version)

	c := &Client{
		http: hc,
		log:  logger.New("warn", nil),
	}

	for _, opt := range opts {
		opt(c)
	}

	hc.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		c.log.Debug().
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Msg("API request")
		return nil
	})

	c.Users = &UsersService{client: c}
	c.Orgs = &OrgsService{client: c}
	c.Devices = &DevicesService{client: c}
	c.AuditLogs = &AuditLogsService{client: c}
	c.Alerts = &AlertsService{client: c}
	c.DetectionLists = &DetectionListsService{client: c}
	c.SecurityData = &SecurityDataService{client: c}

	return c
}

// apiErrorBody is the error envelope some endpoints return
type apiErrorBody struct {
	Error       string `json:"error"`
	Description string `json:"description"`
	Problem     string `json:"problem"`
}

// checkResponse converts a non-2xx response into a typed APIError. The
// response body is consulted for a service-provided message.
func checkResponse(resp *resty.Response) error {
	if !resp.IsError() {
		return nil
	}

	msg := fmt.Sprintf("%s %s returned %s", resp.Request.Method, resp.Request.URL, resp.Status())
	var body apiErrorBody
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		switch {
		case body.Description != "":
			msg = body.Description
		case body.Error != "":
			msg = body.Error
		case body.Problem != "":
			msg = body.Problem
		}
	}

	return jerrors.NewAPIError(resp.StatusCode(), msg)
}
