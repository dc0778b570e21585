package ics

import (
	"context"
	"errors"
	"strings"

	"github.com/go-resty/resty/v2"

	appLog "calfilter/internal/log"
)

// Fetcher downloads the source ICS feed. It makes exactly one request per
// call: no retries, no caching, client defaults for timeout and redirects.
type Fetcher struct {
	client *resty.Client
}

// NewFetcher creates a new ICS Fetcher. userAgent may be empty.
func NewFetcher(userAgent string) *Fetcher {
	client := resty.New().
		SetRetryCount(0).
		SetLogger(appLog.RestyLogger{}).
		SetHeader("Accept", "text/calendar")
	if userAgent != "" {
		client.SetHeader("User-Agent", userAgent)
	}
	return &Fetcher{client: client}
}

// Fetch performs a single GET against url and returns the response body on
// a 2xx status. Anything else is a *FetchError.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, &FetchError{URL: url, Err: errors.New("source URL is empty")}
	}

	appLog.Info("ics fetch start", "url", redactURL(url))

	resp, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}

	if !resp.IsSuccess() {
		return nil, &FetchError{
			URL:        url,
			StatusCode: resp.StatusCode(),
			Err:        errors.New(resp.Status()),
		}
	}

	body := resp.Body()
	appLog.Info("ics fetch success", "url", redactURL(url), "status", resp.StatusCode(), "bytes", len(body))

	return body, nil
}

// redactURL hides sensitive parts of an ICS URL for logging purposes.
//
//	https://example.com/path/to/private.ics?token=abcd
//	-> https://example.com/...(redacted)
func redactURL(u string) string {
	const redactedSuffix = "/...(redacted)"

	i := strings.Index(u, "://")
	if i == -1 {
		return "ics://...(redacted)"
	}
	i += 3

	// Host ends at the first '/', '?' or '#'.
	j := strings.IndexAny(u[i:], "/?#")
	if j == -1 {
		j = len(u) - i
	}

	host := u[i : i+j]
	if at := strings.LastIndex(host, "@"); at >= 0 {
		host = host[at+1:]
	}

	return u[:i] + host + redactedSuffix
}
