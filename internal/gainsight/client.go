// Package gainsight is a read-only client for the customer-success
// platform's data query API.
package gainsight

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/dbsmedya/gsread/internal/logger"
	"github.com/dbsmedya/gsread/internal/query"
	"github.com/dbsmedya/gsread/internal/types"
)

const (
	queryPath     = "/v1/data/objects/query/"
	userListPath  = "/v1/users/services/list"
	accessKeyName = "accesskey"
)

// Options configures a Client.
type Options struct {
	Domain    string
	AccessKey string
	Timeout   time.Duration
	Debug     bool
	Logger    *logger.Logger
}

// Client issues single-attempt POST requests against one tenant domain.
type Client struct {
	http    *resty.Client
	timeout time.Duration
	log     *logger.Logger
}

// NewClient creates a Client. A trailing slash on the domain is ignored.
func NewClient(opts Options) *Client {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	client := resty.New()
	client.SetBaseURL(strings.TrimRight(opts.Domain, "/"))
	client.SetHeaders(map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/json",
		accessKeyName:  opts.AccessKey,
	})
	client.SetRetryCount(0)
	client.SetLogger(log.SugaredLogger)

	if opts.Debug {
		instrument(client, log)
	}

	return &Client{
		http:    client,
		timeout: opts.Timeout,
		log:     log,
	}
}

// Query runs one query against a collection and returns the decoded page.
func (c *Client) Query(ctx context.Context, collection string, q query.Query) (*types.Page, error) {
	body, err := json.Marshal(q)
	if err != nil {
		return nil, fmt.Errorf("failed to encode query: %w", err)
	}

	res, err := c.post(ctx, queryPath+url.PathEscape(collection), body)
	if err != nil {
		return nil, err
	}

	if res.StatusCode() != http.StatusOK {
		return nil, &HTTPError{
			StatusCode: res.StatusCode(),
			Snippet:    snippet(res.Body(), snippetLimit),
		}
	}

	page, err := DecodePage(res.Body())
	if err != nil {
		return nil, err
	}

	c.log.WithCollection(collection).WithOffset(q.Offset).Debugw("query returned", "records", page.Count)
	return page, nil
}

// RawResponse is an undecoded response.
type RawResponse struct {
	StatusCode int
	Body       []byte
}

// ListUsers reads one row from the user listing endpoint. It is used to check
// that the domain is reachable and the access key is accepted. The response
// is returned even when the status is an error, together with an *HTTPError.
func (c *Client) ListUsers(ctx context.Context) (*RawResponse, error) {
	body, err := json.Marshal(query.NewUserListRequest())
	if err != nil {
		return nil, fmt.Errorf("failed to encode user list request: %w", err)
	}

	res, err := c.post(ctx, userListPath, body)
	if err != nil {
		return nil, err
	}

	raw := &RawResponse{StatusCode: res.StatusCode(), Body: res.Body()}
	if res.IsError() {
		return raw, &HTTPError{
			StatusCode: res.StatusCode(),
			Snippet:    snippet(res.Body(), snippetLimit),
		}
	}
	return raw, nil
}

func (c *Client) post(ctx context.Context, path string, body []byte) (*resty.Response, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	res, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		Post(path)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	return res, nil
}
