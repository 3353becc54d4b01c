package models

import "time"

type CreateFeedRequest struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type UpdateFeedRequest struct {
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

type Feed struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	URL          string     `json:"url"`
	Active       bool       `json:"active"`
	LastPolledAt *time.Time `json:"lastPolledAt"`
	CreatedAt    time.Time  `json:"createdAt"`
}

type GetFeedsResponse struct {
	Feeds []Feed `json:"feeds"`
}
