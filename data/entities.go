package data

import (
	"time"

	"github.com/google/uuid"

	"github.com/bkovac/feedwatch.api/enums"
)

type Feed struct {
	ID           int        `db:"id"`
	Name         string     `db:"name"`
	URL          string     `db:"url"`
	Active       bool       `db:"active"`
	LastPolledAt *time.Time `db:"last_polled_at"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

type Keyword struct {
	ID        int             `db:"id"`
	Keyword   string          `db:"keyword"`
	MatchMode enums.MatchMode `db:"match_mode"`
	Active    bool            `db:"active"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

// Match is one keyword hit inside one feed entry. The
// (feed_id, entry_key, keyword) triple is unique, so re-polling a feed
// can never record the same hit twice.
type Match struct {
	ID          int        `db:"id"`
	PublicID    uuid.UUID  `db:"public_id"`
	FeedID      int        `db:"feed_id"`
	Keyword     string     `db:"keyword"`
	EntryKey    string     `db:"entry_key"`
	Title       string     `db:"title"`
	Snippet     string     `db:"snippet"`
	Link        string     `db:"link"`
	Language    string     `db:"language"`
	PublishedAt *time.Time `db:"published_at"`
	NotifiedAt  *time.Time `db:"notified_at"`
	CreatedAt   time.Time  `db:"created_at"`
}
