// Package erp implements the HTTP client for the remote ERP API that owns
// candidate records, rosters, and offer state.
package erp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/kylianerp/onboarding-portal/internal/domain/employee"
	"github.com/kylianerp/onboarding-portal/internal/ports"
)

// User-facing messages. The portal surfaces exactly one line of text per
// failed request, so every backend error shape collapses into one of these
// or into the message the service itself reported.
const (
	msgLoginFailed       = "Login failed"
	msgFetchRosterFailed = "Failed to fetch employees"
	msgAcceptOfferFailed = "Failed to accept offer"
	msgUnexpected        = "An unexpected error occurred"
)

// Client talks to the ERP API. All methods normalize failures into
// single-message errors suitable for direct display.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	fileBaseURL string
	log         *slog.Logger
}

// Options configures a Client.
type Options struct {
	// BaseURL is the API root, including the /api path segment.
	BaseURL string

	// FileBaseURL is the host prepended to host-relative document paths.
	FileBaseURL string

	// Timeout bounds each request. Ignored when HTTPClient is set.
	Timeout time.Duration

	// HTTPClient overrides the default client, mainly for tests.
	HTTPClient *http.Client

	Logger *slog.Logger
}

// NewClient creates an ERP API client.
func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		httpClient:  httpClient,
		baseURL:     strings.TrimRight(opts.BaseURL, "/"),
		fileBaseURL: strings.TrimRight(opts.FileBaseURL, "/"),
		log:         opts.Logger,
	}
}

func (c *Client) logger() *slog.Logger {
	if c.log != nil {
		return c.log
	}
	return slog.Default()
}

// userError is an error whose message is safe to show to the user.
type userError struct{ msg string }

func (e userError) Error() string { return e.msg }

func (e userError) UserFacing() bool { return true }

// UserMessage returns the display message for an error. Any error in the
// chain that declares itself user facing is shown verbatim; everything else
// maps to the generic message so raw transport or parse failures never
// reach the user.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var uf interface{ UserFacing() bool }
	if errors.As(err, &uf) && uf.UserFacing() {
		return err.Error()
	}
	return msgUnexpected
}

type loginResponse struct {
	Status    string              `json:"status"`
	Message   string              `json:"message"`
	Candidate *employee.Employee  `json:"candidate"`
	Token     string              `json:"token"`
	Errors    map[string][]string `json:"errors"`
}

// Login authenticates by email and tracking number.
func (c *Client) Login(ctx context.Context, in ports.LoginInput) (ports.LoginResult, error) {
	body := map[string]string{
		"email":           in.Email,
		"tracking_number": in.TrackingNumber,
	}

	var out loginResponse
	status, err := c.postJSON(ctx, c.baseURL+"/candidatelogin", "", body, &out)
	if err != nil {
		c.logger().Error("erp login request failed", "error", err)
		return ports.LoginResult{}, userError{msgUnexpected}
	}

	if out.Status == "error" {
		msg := joinFieldErrors(out.Errors)
		if msg == "" {
			msg = out.Message
		}
		if msg == "" {
			msg = msgLoginFailed
		}
		return ports.LoginResult{}, userError{msg}
	}

	if status < 200 || status > 299 {
		msg := out.Message
		if msg == "" {
			msg = msgLoginFailed
		}
		return ports.LoginResult{}, userError{msg}
	}

	if out.Status != "success" || out.Candidate == nil {
		msg := out.Message
		if msg == "" {
			msg = msgLoginFailed
		}
		return ports.LoginResult{}, userError{msg}
	}

	return ports.LoginResult{User: out.Candidate, Token: out.Token}, nil
}

type rosterResponse struct {
	Success   bool                `json:"success"`
	Data      []employee.Employee `json:"data"`
	Employees []employee.Employee `json:"employees"`
	Message   string              `json:"message"`
}

// FetchRoster returns the company roster visible to the given employee.
// The roster endpoint rejects requests without an id value, so callers must
// fill EmployeeID before calling.
func (c *Client) FetchRoster(ctx context.Context, q ports.RosterQuery) ([]employee.Employee, error) {
	params := url.Values{}
	params.Set("company_id", strconv.Itoa(q.CompanyID))
	params.Set("id", q.EmployeeID)
	reqURL := fmt.Sprintf("%s/fetchalleemployees/%d?%s", c.baseURL, q.CompanyID, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, userError{msgUnexpected}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger().Error("erp roster request failed", "error", err)
		return nil, userError{msgUnexpected}
	}
	defer resp.Body.Close()

	var out rosterResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&out); decodeErr != nil {
		c.logger().Error("erp roster response malformed", "error", decodeErr)
		return nil, userError{msgUnexpected}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := out.Message
		if msg == "" {
			msg = msgFetchRosterFailed
		}
		return nil, userError{msg}
	}

	// The service has shipped both envelope shapes; first non-empty wins.
	if len(out.Data) > 0 {
		return out.Data, nil
	}
	if len(out.Employees) > 0 {
		return out.Employees, nil
	}
	return []employee.Employee{}, nil
}

type acceptResponse struct {
	Employees *employee.Employee `json:"employees"`
	Message   string             `json:"message"`
}

// AcceptOffer marks the job offer accepted on the remote system.
func (c *Client) AcceptOffer(ctx context.Context, in ports.AcceptOfferInput) (*employee.Employee, error) {
	body := map[string]any{
		"tracking_number": in.TrackingNumber,
		"email":           in.Email,
		"company_id":      in.CompanyID,
	}

	var out acceptResponse
	status, err := c.postJSON(ctx, c.baseURL+"/acceptoffer", in.Token, body, &out)
	if err != nil {
		c.logger().Error("erp accept offer request failed", "error", err)
		return nil, userError{msgUnexpected}
	}

	if status < 200 || status > 299 {
		msg := out.Message
		if msg == "" {
			msg = msgAcceptOfferFailed
		}
		return nil, userError{msg}
	}

	return out.Employees, nil
}

// FileURL resolves a host-relative document path (offer letters) against
// the file host. Absolute URLs pass through unchanged.
func (c *Client) FileURL(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.fileBaseURL + path
}

// postJSON issues a POST with a JSON body and decodes the JSON response.
// The HTTP status is returned alongside so callers can apply their own
// envelope rules; a non-2xx status is not an error by itself.
func (c *Client) postJSON(ctx context.Context, reqURL, token string, body, out any) (int, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return 0, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(data))
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if decodeErr := json.NewDecoder(resp.Body).Decode(out); decodeErr != nil {
		return resp.StatusCode, fmt.Errorf("decode response: %w", decodeErr)
	}
	return resp.StatusCode, nil
}

// joinFieldErrors flattens the field-error map into one comma-joined
// string. Keys are walked in sorted order so the message is deterministic.
func joinFieldErrors(fields map[string][]string) string {
	if len(fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var msgs []string
	for _, k := range keys {
		msgs = append(msgs, fields[k]...)
	}
	return strings.Join(msgs, ", ")
}
