package models

type CreateKeywordRequest struct {
	Keyword   string `json:"keyword"`
	MatchMode string `json:"matchMode"`
}

type UpdateKeywordRequest struct {
	Keyword   string `json:"keyword"`
	MatchMode string `json:"matchMode"`
	Active    bool   `json:"active"`
}

type Keyword struct {
	ID        int    `json:"id"`
	Keyword   string `json:"keyword"`
	MatchMode string `json:"matchMode"`
	Active    bool   `json:"active"`
}

type GetKeywordsResponse struct {
	Keywords []Keyword `json:"keywords"`
}
