// Package sources drives the periodic monitoring of all active feeds.
package sources

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/bkovac/feedwatch.api/config"
	"github.com/bkovac/feedwatch.api/content"
	"github.com/bkovac/feedwatch.api/data"
	"github.com/bkovac/feedwatch.api/feeds"
	"github.com/bkovac/feedwatch.api/matchers"
	"github.com/bkovac/feedwatch.api/metrics"
)

const maxSnippetRunes = 300

// FeedStore is the slice of the feed repo the poller needs.
type FeedStore interface {
	GetActiveFeeds() ([]data.Feed, error)
	TouchPolled(id int, at time.Time) error
}

// KeywordStore is the slice of the keyword repo the poller needs.
type KeywordStore interface {
	GetActiveKeywords() ([]data.Keyword, error)
}

// MatchStore is the slice of the match repo the poller needs.
type MatchStore interface {
	CreateMatchIfNew(match data.Match) (bool, error)
}

// Poller runs monitoring cycles: it snapshots active feeds and keywords,
// fans fetch work out over a bounded set of workers, and records matches.
// One feed failing never stops the others.
type Poller struct {
	logger   *slog.Logger
	fetcher  *feeds.Fetcher
	feeds    FeedStore
	keywords KeywordStore
	matches  MatchStore

	interval   time.Duration
	maxWorkers int
	running    atomic.Bool
}

func NewPoller(logger *slog.Logger, fetcher *feeds.Fetcher, feedStore FeedStore, keywordStore KeywordStore, matchStore MatchStore) *Poller {
	interval := time.Duration(config.Config.PollIntervalSeconds) * time.Second
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	workers := config.Config.MaxConcurrentFetches
	if workers < 1 {
		workers = 1
	}

	return &Poller{
		logger:     logger,
		fetcher:    fetcher,
		feeds:      feedStore,
		keywords:   keywordStore,
		matches:    matchStore,
		interval:   interval,
		maxWorkers: workers,
	}
}

// SetInterval overrides the configured cycle interval.
func (p *Poller) SetInterval(d time.Duration) {
	p.interval = d
}

// SetMaxWorkers overrides the configured fetch concurrency bound.
func (p *Poller) SetMaxWorkers(n int) {
	if n < 1 {
		n = 1
	}
	p.maxWorkers = n
}

// StartPolling runs cycles on the configured interval until ctx is cancelled.
func (p *Poller) StartPolling(ctx context.Context) {
	p.logger.Info("starting feed polling", "interval", p.interval.Seconds(), "max_workers", p.maxWorkers)

	if err := p.RunCycle(ctx); err != nil {
		p.logger.Error("cycle failed", "error", err)
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			p.logger.Info("stopping feed polling")
			return
		case <-ticker.C:
			if err := p.RunCycle(ctx); err != nil {
				p.logger.Error("cycle failed", "error", err)
			}
		}
	}
}

// RunCycle performs one complete pass over all active feeds. If a previous
// cycle is still in flight the call is a no-op; overlapping cycles against
// the same feed would race on the dedup writes.
//
// An error return means the cycle could not start at all (the store was
// unreachable for the feed/keyword snapshot). Per-feed failures are logged
// and counted, never returned.
func (p *Poller) RunCycle(ctx context.Context) error {
	if !p.running.CompareAndSwap(false, true) {
		metrics.CyclesSkipped.Inc()
		p.logger.Warn("previous cycle still running, skipping tick")
		return nil
	}
	defer p.running.Store(false)

	started := time.Now()
	log := p.logger.With("cycle_id", uuid.New().String())

	activeFeeds, err := p.feeds.GetActiveFeeds()
	if err != nil {
		return fmt.Errorf("load active feeds: %w", err)
	}
	activeKeywords, err := p.keywords.GetActiveKeywords()
	if err != nil {
		return fmt.Errorf("load active keywords: %w", err)
	}

	// Keywords added mid-cycle apply from the next cycle; every worker
	// matches against this snapshot.
	snapshot := make([]matchers.Keyword, 0, len(activeKeywords))
	for _, kw := range activeKeywords {
		if strings.TrimSpace(kw.Keyword) == "" {
			continue
		}
		snapshot = append(snapshot, matchers.Keyword{Value: kw.Keyword, Mode: kw.MatchMode})
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, p.maxWorkers)
	var inserted atomic.Int64
	for _, feed := range activeFeeds {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(feed data.Feed) {
			defer wg.Done()
			defer func() { <-sem }()
			inserted.Add(int64(p.processFeed(ctx, log, feed, snapshot)))
		}(feed)
	}
	wg.Wait()

	elapsed := time.Since(started)
	metrics.CyclesTotal.Inc()
	metrics.CycleDuration.Observe(elapsed.Seconds())
	log.Info("cycle complete",
		"feeds", len(activeFeeds),
		"keywords", len(snapshot),
		"new_matches", inserted.Load(),
		"elapsed_ms", elapsed.Milliseconds())

	return nil
}

// processFeed fetches one feed, matches its entries against the keyword
// snapshot, and records new matches. Returns the number of inserts. The feed
// is marked polled only after a successful fetch, and only after all of its
// matches have been recorded.
func (p *Poller) processFeed(ctx context.Context, log *slog.Logger, feed data.Feed, keywords []matchers.Keyword) int {
	result, err := p.fetcher.Fetch(ctx, feed.URL)
	if err != nil {
		cause := feeds.CauseNetwork
		var fetchErr *feeds.FetchError
		if errors.As(err, &fetchErr) {
			cause = fetchErr.Cause
		}
		metrics.FetchErrorsTotal.WithLabelValues(string(cause)).Inc()
		log.Error("fetch feed", "feed_id", feed.ID, "url", feed.URL, "cause", string(cause), "error", err)
		return 0
	}
	if result.Degraded {
		log.Warn("feed parsed with degradation", "feed_id", feed.ID, "url", feed.URL)
	}

	inserted := 0
	for _, entry := range result.Entries {
		text := content.Normalize(entry.RawContent)
		hits := matchers.FindMatches(entry.Title+" "+text, keywords)
		if len(hits) == 0 {
			continue
		}

		snippet := content.Truncate(text, maxSnippetRunes)
		language := content.LanguageTag(entry.Title + " " + snippet)
		for _, keyword := range hits {
			match := data.Match{
				PublicID:    uuid.New(),
				FeedID:      feed.ID,
				Keyword:     keyword,
				EntryKey:    entry.Key,
				Title:       entry.Title,
				Snippet:     snippet,
				Link:        entry.Link,
				Language:    language,
				PublishedAt: entry.PublishedAt,
				CreatedAt:   time.Now().UTC(),
			}
			ok, err := p.matches.CreateMatchIfNew(match)
			if err != nil {
				log.Error("store match", "feed_id", feed.ID, "entry_key", entry.Key, "keyword", keyword, "error", err)
				continue
			}
			if ok {
				inserted++
				metrics.MatchesInsertedTotal.Inc()
				log.Debug("match recorded", "feed_id", feed.ID, "keyword", keyword, "entry_key", entry.Key)
			}
		}
	}

	if err := p.feeds.TouchPolled(feed.ID, time.Now().UTC()); err != nil {
		log.Error("touch feed polled", "feed_id", feed.ID, "error", err)
	}

	return inserted
}
