package repos

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/bkovac/feedwatch.api/data"
)

type FeedRepo struct {
	db *sqlx.DB
}

func NewFeedRepo(db *sqlx.DB) *FeedRepo {
	return &FeedRepo{db}
}

func (r *FeedRepo) CreateFeed(feed data.Feed) (int, error) {
	query := `
		INSERT INTO feeds (name, url, active)
		VALUES (:name, :url, :active)
		RETURNING id`

	rows, err := r.db.NamedQuery(query, feed)
	if err != nil {
		return 0, data.NewStorageError("create feed", err)
	}
	defer rows.Close()

	var id int
	if rows.Next() {
		if err := rows.Scan(&id); err != nil {
			return 0, data.NewStorageError("scan created feed id", err)
		}
	}

	return id, nil
}

func (r *FeedRepo) GetFeedByID(id int) (*data.Feed, error) {
	var feed data.Feed
	query := "SELECT * FROM feeds WHERE id = $1"

	err := r.db.Get(&feed, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, data.NewStorageError("get feed by id", err)
	}

	return &feed, nil
}

func (r *FeedRepo) GetFeeds() ([]data.Feed, error) {
	var feeds []data.Feed
	query := `
		SELECT id, name, url, active, last_polled_at, created_at, updated_at
		FROM feeds
		ORDER BY created_at DESC`

	err := r.db.Select(&feeds, query)
	if err != nil {
		return nil, data.NewStorageError("get feeds", err)
	}

	return feeds, nil
}

func (r *FeedRepo) GetActiveFeeds() ([]data.Feed, error) {
	var feeds []data.Feed
	query := `
		SELECT id, name, url, active, last_polled_at, created_at, updated_at
		FROM feeds
		WHERE active = true
		ORDER BY id`

	err := r.db.Select(&feeds, query)
	if err != nil {
		return nil, data.NewStorageError("get active feeds", err)
	}

	return feeds, nil
}

func (r *FeedRepo) UpdateFeed(feed data.Feed) error {
	query := `
		UPDATE feeds
		SET name = :name, active = :active, updated_at = now()
		WHERE id = :id`

	rows, err := r.db.NamedQuery(query, feed)
	if err != nil {
		return data.NewStorageError("update feed", err)
	}
	defer rows.Close()

	return nil
}

// TouchPolled records the last successful poll time. Failed fetches must not
// call this, so the next cycle retries the feed.
func (r *FeedRepo) TouchPolled(id int, at time.Time) error {
	query := "UPDATE feeds SET last_polled_at = $1 WHERE id = $2"

	_, err := r.db.Exec(query, at, id)
	if err != nil {
		return data.NewStorageError("touch feed polled", err)
	}

	return nil
}
