/*
geocode implements a client for the Nominatim search API, which resolves a
free-text place name to coordinates.
https://nominatim.org/release-docs/develop/api/Search/
*/
package geocode

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	// Packages
	client "github.com/mutablelogic/go-client"
	weather "github.com/mutablelogic/go-weather"
	schema "github.com/mutablelogic/go-weather/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*client.Client
}

// place is a single search result. Coordinates are returned as strings.
type place struct {
	DisplayName string `json:"display_name"`
	Latitude    string `json:"lat"`
	Longitude   string `json:"lon"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	endPoint       = "https://nominatim.openstreetmap.org"
	userAgent      = "go-weather"
	DefaultTimeout = 10 * time.Second
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a geocoding client. The endpoint and timeout can be
// overridden with options.
func New(opts ...client.ClientOpt) (*Client, error) {
	opts = append([]client.ClientOpt{
		client.OptEndpoint(endPoint),
		client.OptHeader("User-Agent", userAgent),
		client.OptTimeout(DefaultTimeout),
	}, opts...)
	if c, err := client.New(opts...); err != nil {
		return nil, err
	} else {
		return &Client{c}, nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Lookup returns the coordinates of a city, with an optional country.
// Returns ErrNotFound when nothing matches. The returned city is the first
// component of the resolved display name.
func (c *Client) Lookup(ctx context.Context, city, country string) (*schema.Location, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, weather.ErrBadParameter.With("missing location")
	}
	query := city
	if country != "" {
		query = city + ", " + country
	}

	// Request -> Response
	var response []place
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath("search"), client.OptQuery(url.Values{
		"q":      []string{query},
		"format": []string{"json"},
		"limit":  []string{"1"},
	})); err != nil {
		return nil, weather.Upstream(err)
	} else if len(response) == 0 {
		return nil, weather.ErrNotFound.Withf("location %q", query)
	}

	// Parse coordinates
	lat, err := strconv.ParseFloat(response[0].Latitude, 64)
	if err != nil {
		return nil, weather.ErrUpstream.Withf("latitude %q", response[0].Latitude)
	}
	lon, err := strconv.ParseFloat(response[0].Longitude, 64)
	if err != nil {
		return nil, weather.ErrUpstream.Withf("longitude %q", response[0].Longitude)
	}

	// Use the first part of the display name as the city
	resolved, _, _ := strings.Cut(response[0].DisplayName, ",")
	if resolved = strings.TrimSpace(resolved); resolved == "" {
		resolved = city
	}

	return &schema.Location{
		City:      resolved,
		Country:   country,
		Latitude:  lat,
		Longitude: lon,
	}, nil
}
