// Package partner talks to the home design partner API.
package partner

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/go-resty/resty/v2"

	apperrors "cutlery/internal/errors"
	"cutlery/internal/model"
)

// DesignRecord is one design as returned by the partner. Unknown fields are
// passed through to our callers untouched.
type DesignRecord map[string]interface{}

// Name returns the design name, or "" when the partner omitted it.
func (d DesignRecord) Name() string {
	name, _ := d["desainname"].(string)
	return name
}

// Client is the subset of the partner API this service uses.
type Client interface {
	RegisterUser(ctx context.Context, username, password string) error
	IssueToken(ctx context.Context, username, password string) (string, error)
	CreateDesign(ctx context.Context, token string, design model.Design) (json.RawMessage, error)
	ListDesigns(ctx context.Context, token string) ([]DesignRecord, error)
}

type client struct {
	http *resty.Client
}

// NewClient creates a partner client rooted at baseURL. Calls are not retried.
func NewClient(baseURL string, timeout time.Duration) Client {
	rc := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &client{http: rc}
}

// RegisterUser creates the mirror account on the partner side.
func (c *client) RegisterUser(ctx context.Context, username, password string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{"username": username, "password": password}).
		Post("/users")
	if err != nil {
		return unreachable(err)
	}
	return checkStatus(resp, "error registering user with the home design service")
}

// IssueToken exchanges partner credentials for the bearer token stored on the user.
func (c *client) IssueToken(ctx context.Context, username, password string) (string, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{"username": username, "password": password}).
		Post("/token")
	if err != nil {
		return "", unreachable(err)
	}
	if err := checkStatus(resp, "error obtaining token from the home design service"); err != nil {
		return "", err
	}
	var out struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(resp.Body(), &out); err != nil || out.AccessToken == "" {
		return "", &apperrors.UpstreamError{StatusCode: http.StatusBadGateway, Message: "home design service returned no token"}
	}
	return out.AccessToken, nil
}

// CreateDesign posts the design as a form and returns the partner body verbatim.
func (c *client) CreateDesign(ctx context.Context, token string, design model.Design) (json.RawMessage, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetFormData(map[string]string{
			"desainname":   design.Name,
			"deskripsi":    design.Description,
			"tanggalpesan": design.OrderDate,
			"status":       design.Status,
			"namadesainer": design.DesignerName,
			"nohp":         design.Phone,
		}).
		Post("/alldata")
	if err != nil {
		return nil, unreachable(err)
	}
	if err := checkStatus(resp, "error creating home design"); err != nil {
		return nil, err
	}
	body := resp.Body()
	if !json.Valid(body) {
		return nil, &apperrors.UpstreamError{StatusCode: http.StatusBadGateway, Message: "home design service returned malformed JSON"}
	}
	return json.RawMessage(body), nil
}

// ListDesigns returns every design the partner knows about.
func (c *client) ListDesigns(ctx context.Context, token string) ([]DesignRecord, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		Get("/desain")
	if err != nil {
		return nil, unreachable(err)
	}
	if err := checkStatus(resp, "error retrieving home design"); err != nil {
		return nil, err
	}
	var out []DesignRecord
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, &apperrors.UpstreamError{StatusCode: http.StatusBadGateway, Message: "home design service returned malformed JSON"}
	}
	return out, nil
}

func checkStatus(resp *resty.Response, msg string) error {
	if resp.StatusCode() == http.StatusOK {
		return nil
	}
	return &apperrors.UpstreamError{StatusCode: resp.StatusCode(), Message: msg}
}

// unreachable reports a transport failure as a bad gateway. The resty error
// is dropped because its text carries the request URL and query credentials.
// Cancellation of the caller's context is passed through.
func unreachable(err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	return &apperrors.UpstreamError{StatusCode: http.StatusBadGateway, Message: "home design service is unreachable"}
}
