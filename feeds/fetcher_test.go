package feeds

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Weather Wire</title>
    <item>
      <guid>entry-1</guid>
      <title>Storm alert issued</title>
      <link>https://example.com/storm</link>
      <description>&lt;b&gt;Alert&lt;/b&gt; for the coast</description>
    </item>
    <item>
      <title>Sunny day ahead</title>
      <link>https://example.com/sunny</link>
      <description>calm weather</description>
    </item>
  </channel>
</rss>`

func serveBody(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetch_Success(t *testing.T) {
	srv := serveBody(t, http.StatusOK, sampleRSS)

	f := NewFetcher(5 * time.Second)
	result, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.False(t, result.Degraded)
	require.Len(t, result.Entries, 2)
	assert.Equal(t, "entry-1", result.Entries[0].Key)
	assert.Equal(t, "Storm alert issued", result.Entries[0].Title)
	assert.Contains(t, result.Entries[0].RawContent, "Alert")
}

func TestFetch_EntryKeyFallsBackToLink(t *testing.T) {
	srv := serveBody(t, http.StatusOK, sampleRSS)

	f := NewFetcher(5 * time.Second)
	result, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)

	// Second item has no GUID.
	assert.Equal(t, "https://example.com/sunny", result.Entries[1].Key)
}

func TestFetch_HTTPError(t *testing.T) {
	srv := serveBody(t, http.StatusInternalServerError, "boom")

	f := NewFetcher(5 * time.Second)
	_, err := f.Fetch(context.Background(), srv.URL)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, CauseHTTP, fetchErr.Cause)
}

func TestFetch_NetworkError(t *testing.T) {
	srv := serveBody(t, http.StatusOK, sampleRSS)
	url := srv.URL
	srv.Close()

	f := NewFetcher(1 * time.Second)
	_, err := f.Fetch(context.Background(), url)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, CauseNetwork, fetchErr.Cause)
}

func TestFetch_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	t.Cleanup(srv.Close)

	f := NewFetcher(100 * time.Millisecond)
	_, err := f.Fetch(context.Background(), srv.URL)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, CauseNetwork, fetchErr.Cause)
}

func TestFetch_DegradedParse(t *testing.T) {
	// A stray control character makes the XML illegal; the sanitized retry
	// must still recover the entries.
	srv := serveBody(t, http.StatusOK, "\x00"+sampleRSS)

	f := NewFetcher(5 * time.Second)
	result, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.True(t, result.Degraded)
	assert.Len(t, result.Entries, 2)
}

func TestFetch_UnparseableBody(t *testing.T) {
	srv := serveBody(t, http.StatusOK, "this is not a feed at all")

	f := NewFetcher(5 * time.Second)
	_, err := f.Fetch(context.Background(), srv.URL)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, CauseParse, fetchErr.Cause)
}
