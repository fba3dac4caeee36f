package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

const (
	defaultFeedBaseURL = "https://opendata.leisurecloud.live/api/feeds/PlacesLeisure-live-slots"
	defaultUserAgent   = "squash-cli/1.0"

	// Ceiling on pages followed in one run. A feed that never reports its
	// terminal page truncates here instead of polling forever.
	defaultMaxPages = 1000
)

type Client struct {
	HTTP      *http.Client
	BaseURL   string
	UserAgent string
	MaxPages  int
}

func NewClient() *Client {
	return &Client{
		HTTP:      &http.Client{Timeout: 30 * time.Second},
		BaseURL:   defaultFeedBaseURL,
		UserAgent: defaultUserAgent,
		MaxPages:  defaultMaxPages,
	}
}

// TransportError reports a failed page fetch: network error, non-2xx
// status, or a body that does not decode as a feed page.
type TransportError struct {
	URL    string
	Status string
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("fetch %s: %s", e.URL, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// FetchAllItems walks the feed from the base URL and returns every current
// item in arrival order. The feed marks its last page by returning an empty
// items array together with a next URL equal to the URL just requested;
// a missing next URL is also treated as terminal. Any fetch failure aborts
// the walk with a *TransportError and no partial result.
func (c *Client) FetchAllItems(ctx context.Context) ([]FeedItem, error) {
	items := []FeedItem{}
	current := c.BaseURL

	maxPages := c.MaxPages
	if maxPages <= 0 {
		maxPages = defaultMaxPages
	}

	for page := 0; ; page++ {
		if page >= maxPages {
			log.Printf("warning: stopped after %d feed pages to prevent an infinite loop", page)
			return items, nil
		}

		pageData, err := c.fetchPage(ctx, current)
		if err != nil {
			return nil, err
		}
		items = append(items, pageData.Items...)

		if len(pageData.Items) == 0 && pageData.Next == current {
			break
		}
		if pageData.Next == "" {
			break
		}
		current = pageData.Next
	}

	return items, nil
}

func (c *Client) fetchPage(ctx context.Context, url string) (FeedPage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return FeedPage{}, &TransportError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return FeedPage{}, &TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return FeedPage{}, &TransportError{
			URL:    url,
			Status: resp.Status,
			Err:    fmt.Errorf("%s", strings.TrimSpace(string(body))),
		}
	}

	var page FeedPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return FeedPage{}, &TransportError{URL: url, Err: fmt.Errorf("decode page: %w", err)}
	}
	return page, nil
}
