package newsapi

import (
	"fmt"
	"net/url"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ArticlesRequest struct {
	Query    string `json:"q,omitempty"`
	SearchIn string `json:"searchIn,omitempty"`
	Language string `json:"language,omitempty"`
	SortBy   string `json:"sortBy,omitempty"`
	PageSize int    `json:"pageSize,omitempty"`
}

type HeadlinesRequest struct {
	Query    string `json:"q,omitempty"`
	Category string `json:"category,omitempty"`
	Country  string `json:"country,omitempty"`
	PageSize int    `json:"pageSize,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// METHODS

func (r *ArticlesRequest) Values() url.Values {
	result := url.Values{}
	if r.Query != "" {
		result.Set("q", r.Query)
	}
	if r.SearchIn != "" {
		result.Set("searchIn", r.SearchIn)
	}
	if r.Language != "" {
		result.Set("language", r.Language)
	}
	if r.SortBy != "" {
		result.Set("sortBy", r.SortBy)
	}
	if r.PageSize > 0 {
		result.Set("pageSize", fmt.Sprint(r.PageSize))
	}
	return result
}

func (r *HeadlinesRequest) Values() url.Values {
	result := url.Values{}
	if r.Query != "" {
		result.Set("q", r.Query)
	}
	if r.Category != "" {
		result.Set("category", r.Category)
	}
	if r.Country != "" {
		result.Set("country", r.Country)
	}
	if r.PageSize > 0 {
		result.Set("pageSize", fmt.Sprint(r.PageSize))
	}
	return result
}
