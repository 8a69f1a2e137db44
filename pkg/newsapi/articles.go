package newsapi

import (
	"context"
	"strings"
	"time"

	// Packages
	client "github.com/mutablelogic/go-client"
	weather "github.com/mutablelogic/go-weather"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Source struct {
	Id   string `json:"id,omitempty"`
	Name string `json:"name"`
}

type Article struct {
	Source      Source    `json:"source"`
	Title       string    `json:"title"`
	Author      string    `json:"author,omitempty"`
	Description string    `json:"description,omitempty"`
	Url         string    `json:"url,omitempty"`
	ImageUrl    string    `json:"urlToImage,omitempty"`
	PublishedAt time.Time `json:"publishedAt,omitzero"`
	Content     string    `json:"content,omitempty"`
}

type respArticles struct {
	Status       string    `json:"status"`
	Code         string    `json:"code,omitempty"`
	Message      string    `json:"message,omitempty"`
	TotalResults int       `json:"totalResults"`
	Articles     []Article `json:"articles"`
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Headlines returns the top headlines
func (c *Client) Headlines(ctx context.Context, req *HeadlinesRequest) ([]Article, error) {
	return c.do(ctx, "top-headlines", req.Values())
}

// Articles returns articles matching a search
func (c *Client) Articles(ctx context.Context, req *ArticlesRequest) ([]Article, error) {
	if req.Query == "" {
		return nil, weather.ErrBadParameter.With("missing query")
	}
	return c.do(ctx, "everything", req.Values())
}

// Titles returns at most n non-empty article titles
func Titles(articles []Article, n int) []string {
	result := make([]string, 0, min(n, len(articles)))
	for _, article := range articles {
		if len(result) >= n {
			break
		}
		if title := strings.TrimSpace(article.Title); title != "" {
			result = append(result, title)
		}
	}
	return result
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (c *Client) do(ctx context.Context, path string, query map[string][]string) ([]Article, error) {
	var response respArticles

	// Request -> Response
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath(path), client.OptQuery(query)); err != nil {
		return nil, weather.Upstream(err)
	} else if response.Status != "ok" {
		return nil, weather.ErrUpstream.Withf("%s: %s", response.Code, response.Message)
	}

	// Return success
	return response.Articles, nil
}
