package fflogs

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"fflogs_events/share"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

const (
	DefaultBaseURL = "https://www.fflogs.com:443/v1/"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client struct {
	apiKey  string
	baseURL string

	httpClient *http.Client
}

var _ API = (*Client)(nil)

// NewClient returns a v1 client. Empty baseURL means DefaultBaseURL, nil httpClient means http.DefaultClient.
func NewClient(apiKey string, baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

func (c *Client) Get(ctx context.Context, path string, params Params, resp interface{}) error {
	q := params.Clone()
	q["api_key"] = c.apiKey

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Values().Encode(), nil)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")

	r, err := c.httpClient.Do(req)
	if err != nil {
		if !share.IsContextClosedError(err) {
			fmt.Printf("%+v\n", errors.WithStack(err))
		}
		return share.CaptureError(errors.WithStack(err))
	}
	defer r.Body.Close()

	if r.StatusCode != http.StatusOK {
		io.Copy(io.Discard, r.Body)
		return &APIError{
			StatusCode: r.StatusCode,
			Path:       path,
		}
	}

	err = json.NewDecoder(r.Body).Decode(resp)
	if err != nil && err != io.EOF {
		if !share.IsContextClosedError(err) {
			fmt.Printf("%+v\n", errors.WithStack(err))
		}
		return share.CaptureError(errors.Wrapf(err, "decode %s", path))
	}

	return nil
}

// Test reports whether the api key is accepted by the rankings endpoint.
func (c *Client) Test(ctx context.Context) (bool, error) {
	var resp map[string]jsoniter.RawMessage

	err := c.Get(ctx, "rankings/encounter/66", nil, &resp)
	if err != nil {
		return false, err
	}

	_, ok := resp["page"]
	return ok, nil
}
