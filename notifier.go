package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"github.com/bkovac/feedwatch.api/data"
	"github.com/bkovac/feedwatch.api/data/repos"
)

// MatchConsumer receives newly recorded matches. Implementations deliver
// them wherever they like (webhook, e-mail, a queue); this process only
// guarantees at-least-once handoff.
type MatchConsumer interface {
	ConsumeMatches(ctx context.Context, matches []data.Match) error
}

// Notifier is the observation point for new matches: it polls unnotified
// rows, hands them to every registered consumer, and marks them delivered.
// If any consumer fails, the batch stays unmarked and is retried on the next
// tick.
type Notifier struct {
	matchRepo *repos.MatchRepo
	consumers []MatchConsumer
	interval  time.Duration
}

func NewNotifier(matchRepo *repos.MatchRepo, consumers ...MatchConsumer) *Notifier {
	return &Notifier{
		matchRepo: matchRepo,
		consumers: consumers,
		interval:  1 * time.Minute,
	}
}

func (n *Notifier) Start(ctx context.Context) {
	if err := n.dispatch(ctx); err != nil {
		slog.Error("dispatch matches:", "error", err)
	}

	ticker := time.NewTicker(n.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := n.dispatch(ctx); err != nil {
				slog.Error("dispatch matches:", "error", err)
			}
		}
	}
}

func (n *Notifier) dispatch(ctx context.Context) error {
	unnotified, err := n.matchRepo.GetUnnotifiedMatches()
	if err != nil {
		return errors.Wrap(err, "dispatch matches: get unnotified")
	}
	if len(unnotified) == 0 {
		return nil
	}

	for _, consumer := range n.consumers {
		if err := consumer.ConsumeMatches(ctx, unnotified); err != nil {
			return errors.Wrap(err, "dispatch matches: consume")
		}
	}

	ids := make([]int64, 0, len(unnotified))
	for _, match := range unnotified {
		ids = append(ids, int64(match.ID))
	}
	if err := n.matchRepo.MarkNotified(ids, time.Now().UTC()); err != nil {
		return errors.Wrap(err, "dispatch matches: mark notified")
	}

	return nil
}

// LogConsumer is the default consumer; it only makes new matches visible in
// the logs.
type LogConsumer struct{}

func (LogConsumer) ConsumeMatches(ctx context.Context, matches []data.Match) error {
	for _, m := range matches {
		slog.Info("new match",
			"match_id", m.PublicID,
			"feed_id", m.FeedID,
			"keyword", m.Keyword,
			"title", m.Title,
			"link", m.Link)
	}
	return nil
}
