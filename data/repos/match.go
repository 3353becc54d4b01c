package repos

import (
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/bkovac/feedwatch.api/data"
)

type MatchRepo struct {
	db *sqlx.DB
}

func NewMatchRepo(db *sqlx.DB) *MatchRepo {
	return &MatchRepo{db}
}

// CreateMatchIfNew inserts a match unless one already exists for the same
// (feed_id, entry_key, keyword) triple. The unique index makes this safe for
// concurrent feed workers; the reported bool says whether a row was inserted.
func (r *MatchRepo) CreateMatchIfNew(match data.Match) (bool, error) {
	query := `
		INSERT INTO matches (public_id, feed_id, keyword, entry_key, title, snippet, link, language, published_at, created_at)
		VALUES (:public_id, :feed_id, :keyword, :entry_key, :title, :snippet, :link, :language, :published_at, :created_at)
		ON CONFLICT (feed_id, entry_key, keyword) DO NOTHING
		RETURNING id`

	rows, err := r.db.NamedQuery(query, match)
	if err != nil {
		return false, data.NewStorageError("create match", err)
	}
	defer rows.Close()

	return rows.Next(), nil
}

// MatchFilter narrows GetMatches results. Zero values mean "no filter".
type MatchFilter struct {
	FeedID  int
	Keyword string
	From    *time.Time
	To      *time.Time
}

func (r *MatchRepo) GetMatches(filter MatchFilter, limit, offset int) ([]data.Match, int, error) {
	where := make([]string, 0, 4)
	args := make([]interface{}, 0, 4)

	if filter.FeedID != 0 {
		args = append(args, filter.FeedID)
		where = append(where, fmt.Sprintf("feed_id = $%d", len(args)))
	}
	if filter.Keyword != "" {
		args = append(args, filter.Keyword)
		where = append(where, fmt.Sprintf("LOWER(keyword) = LOWER($%d)", len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		where = append(where, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		where = append(where, fmt.Sprintf("created_at <= $%d", len(args)))
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	err := r.db.Get(&total, "SELECT count(*) FROM matches"+clause, args...)
	if err != nil {
		return nil, 0, data.NewStorageError("count matches", err)
	}

	query := fmt.Sprintf(`
		SELECT id, public_id, feed_id, keyword, entry_key, title, snippet, link, language, published_at, notified_at, created_at
		FROM matches%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`, clause, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var matches []data.Match
	err = r.db.Select(&matches, query, args...)
	if err != nil {
		return nil, 0, data.NewStorageError("get matches", err)
	}

	return matches, total, nil
}

func (r *MatchRepo) GetUnnotifiedMatches() ([]data.Match, error) {
	var matches []data.Match
	query := `
		SELECT id, public_id, feed_id, keyword, entry_key, title, snippet, link, language, published_at, notified_at, created_at
		FROM matches
		WHERE notified_at IS NULL
		ORDER BY created_at ASC`

	err := r.db.Select(&matches, query)
	if err != nil {
		return nil, data.NewStorageError("get unnotified matches", err)
	}

	return matches, nil
}

func (r *MatchRepo) MarkNotified(ids []int64, notifiedAt time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := sqlx.In(`UPDATE matches SET notified_at = ? WHERE id IN (?)`, notifiedAt, ids)
	if err != nil {
		return data.NewStorageError("build mark notified", err)
	}
	query = r.db.Rebind(query)

	_, err = r.db.Exec(query, args...)
	if err != nil {
		return data.NewStorageError("mark notified", err)
	}

	return nil
}
