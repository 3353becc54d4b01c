// Package feeds retrieves and parses remote RSS/Atom feeds.
package feeds

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

const maxBodyBytes = 5 * 1024 * 1024

// FetchCause classifies what went wrong during a fetch.
type FetchCause string

const (
	CauseNetwork FetchCause = "network"
	CauseHTTP    FetchCause = "http"
	CauseParse   FetchCause = "parse"
)

// FetchError is any failure that prevented a feed from yielding entries.
type FetchError struct {
	URL   string
	Cause FetchCause
	Err   error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s (%s): %v", e.URL, e.Cause, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Entry is one item of a fetched feed.
type Entry struct {
	Key         string
	Title       string
	Link        string
	RawContent  string
	PublishedAt *time.Time
}

// FetchResult carries the entries of one successful fetch. Degraded is set
// when the feed body needed sanitizing before it would parse; the entries are
// still usable.
type FetchResult struct {
	Entries  []Entry
	Degraded bool
}

// Fetcher downloads and parses feeds with a bounded timeout. It never
// retries; retry policy belongs to the poller.
type Fetcher struct {
	client *http.Client
}

func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{client: &http.Client{Timeout: timeout}}
}

// NewFetcherWithClient creates a Fetcher with a custom HTTP client (useful for testing).
func NewFetcherWithClient(client *http.Client) *Fetcher {
	return &Fetcher{client: client}
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Cause: CauseNetwork, Err: err}
	}
	req.Header.Set("User-Agent", "feedwatch/1.0")
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml;q=0.9, */*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Cause: CauseNetwork, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{URL: url, Cause: CauseHTTP, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &FetchError{URL: url, Cause: CauseNetwork, Err: fmt.Errorf("read body: %w", err)}
	}

	parser := gofeed.NewParser()
	degraded := false
	feed, err := parser.ParseString(string(body))
	if err != nil {
		// Real feeds frequently carry cosmetic XML damage. Strip illegal
		// characters and try once more before giving up.
		feed, err = parser.ParseString(sanitize(string(body)))
		if err != nil {
			return nil, &FetchError{URL: url, Cause: CauseParse, Err: err}
		}
		degraded = true
	}

	entries := make([]Entry, 0, len(feed.Items))
	for _, item := range feed.Items {
		raw := item.Content
		if raw == "" {
			raw = item.Description
		}
		entries = append(entries, Entry{
			Key:         entryKey(item),
			Title:       item.Title,
			Link:        item.Link,
			RawContent:  raw,
			PublishedAt: item.PublishedParsed,
		})
	}

	return &FetchResult{Entries: entries, Degraded: degraded}, nil
}

// entryKey returns a stable unique key for an item: the GUID when present,
// then the link, then a hash of title and content.
func entryKey(item *gofeed.Item) string {
	if item.GUID != "" {
		return item.GUID
	}
	if item.Link != "" {
		return item.Link
	}
	h := sha256.Sum256([]byte(item.Title + "|" + item.Description))
	return fmt.Sprintf("sha256:%x", h[:16])
}

// sanitize drops control characters that are illegal in XML 1.0.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\t' || r == '\n' || r == '\r' || r >= 0x20 {
			return r
		}
		return -1
	}, s)
}
