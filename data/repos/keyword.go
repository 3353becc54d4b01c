package repos

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/bkovac/feedwatch.api/data"
)

type KeywordRepo struct {
	db *sqlx.DB
}

func NewKeywordRepo(db *sqlx.DB) *KeywordRepo {
	return &KeywordRepo{db}
}

// CreateKeyword inserts a keyword, returning the existing row's id if the
// same value (case-insensitive) is already stored. Empty values are rejected
// here regardless of what the caller validated.
func (r *KeywordRepo) CreateKeyword(keyword data.Keyword) (int, error) {
	if strings.TrimSpace(keyword.Keyword) == "" {
		return 0, data.ErrEmptyKeyword
	}

	query := `
		INSERT INTO keywords (keyword, match_mode, active)
		VALUES (:keyword, :match_mode, :active)
		ON CONFLICT (LOWER(keyword)) DO NOTHING
		RETURNING id`

	rows, err := r.db.NamedQuery(query, keyword)
	if err != nil {
		return 0, data.NewStorageError("create keyword", err)
	}
	defer rows.Close()

	var id int
	if rows.Next() {
		err = rows.Scan(&id)
		if err != nil {
			return 0, data.NewStorageError("scan returned id", err)
		}
		return id, nil
	}

	query = "SELECT id FROM keywords WHERE LOWER(keyword) = LOWER($1)"
	err = r.db.Get(&id, query, keyword.Keyword)
	if err != nil {
		return 0, data.NewStorageError("get existing keyword id", err)
	}

	return id, nil
}

func (r *KeywordRepo) GetKeywords() ([]data.Keyword, error) {
	var keywords []data.Keyword
	query := `
		SELECT id, keyword, match_mode, active, created_at, updated_at
		FROM keywords
		ORDER BY created_at DESC`

	err := r.db.Select(&keywords, query)
	if err != nil {
		return nil, data.NewStorageError("get keywords", err)
	}

	return keywords, nil
}

func (r *KeywordRepo) GetKeywordByID(id int) (*data.Keyword, error) {
	var keyword data.Keyword
	query := "SELECT * FROM keywords WHERE id = $1"

	err := r.db.Get(&keyword, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, data.NewStorageError("get keyword by id", err)
	}

	return &keyword, nil
}

// GetActiveKeywords returns the keywords the poller should match against.
// The empty-value filter backs up the CHECK constraint on the table.
func (r *KeywordRepo) GetActiveKeywords() ([]data.Keyword, error) {
	var keywords []data.Keyword
	query := `
		SELECT id, keyword, match_mode, active, created_at, updated_at
		FROM keywords
		WHERE active = true AND length(trim(keyword)) > 0
		ORDER BY id`

	err := r.db.Select(&keywords, query)
	if err != nil {
		return nil, data.NewStorageError("get active keywords", err)
	}

	return keywords, nil
}

func (r *KeywordRepo) UpdateKeyword(keyword data.Keyword) error {
	if strings.TrimSpace(keyword.Keyword) == "" {
		return data.ErrEmptyKeyword
	}

	query := `
		UPDATE keywords
		SET keyword = :keyword, match_mode = :match_mode, active = :active, updated_at = now()
		WHERE id = :id`

	rows, err := r.db.NamedQuery(query, keyword)
	if err != nil {
		return data.NewStorageError("update keyword", err)
	}
	defer rows.Close()

	return nil
}
