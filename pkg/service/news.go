package service

import (
	"context"

	// Packages
	weather "github.com/mutablelogic/go-weather"
	newsapi "github.com/mutablelogic/go-weather/pkg/newsapi"
	parser "github.com/mutablelogic/go-weather/pkg/parser"
	schema "github.com/mutablelogic/go-weather/pkg/schema"
	attribute "go.opentelemetry.io/otel/attribute"
	errgroup "golang.org/x/sync/errgroup"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// Titles taken from each of the headlines and the search
	NewsLimit = 5
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// News returns the top headlines for a country and the articles matching
// a query. The two are fetched in parallel.
func (s *Service) News(ctx context.Context, country, query string) schema.Result[schema.News] {
	if country == "" {
		country = parser.DefaultNewsCountry
	}
	if query == "" {
		query = parser.DefaultNewsQuery
	}
	return observe(ctx, s, "weather_news", func(ctx context.Context) schema.Result[schema.News] {
		if s.news == nil {
			return schema.Failure[schema.News](weather.ErrNotImplemented.With("news requires an API key"))
		}

		var headlines, articles []newsapi.Article
		wg, ctx := errgroup.WithContext(ctx)
		wg.Go(func() (err error) {
			headlines, err = s.news.Headlines(ctx, &newsapi.HeadlinesRequest{Country: country, PageSize: NewsLimit})
			return err
		})
		wg.Go(func() (err error) {
			articles, err = s.news.Articles(ctx, &newsapi.ArticlesRequest{Query: query, PageSize: NewsLimit})
			return err
		})
		if err := wg.Wait(); err != nil {
			return schema.Failure[schema.News](err)
		}

		return schema.Success(schema.News{
			Headlines: newsapi.Titles(headlines, NewsLimit),
			Articles:  newsapi.Titles(articles, NewsLimit),
		})
	}, attribute.String("country", country), attribute.String("query", query))
}
