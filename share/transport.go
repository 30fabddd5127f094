package share

import (
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
)

// NewHTTPClient returns a client tuned for the log API. proxy is optional, e.g. a local
// Fiddler instance at http://127.0.0.1:50000.
func NewHTTPClient(proxy string) (*http.Client, error) {
	tr := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxConnsPerHost:       0,
		MaxIdleConns:          0,
		MaxIdleConnsPerHost:   64,
		ResponseHeaderTimeout: 10 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		IdleConnTimeout:       30 * time.Second,
		ExpectContinueTimeout: 30 * time.Second,
	}

	if proxy != "" {
		u, err := url.Parse(proxy)
		if err != nil {
			return nil, errors.Wrapf(err, "proxy %q", proxy)
		}
		tr.Proxy = http.ProxyURL(u)
	}

	return &http.Client{
		Timeout:   1 * time.Minute,
		Transport: tr,
	}, nil
}
