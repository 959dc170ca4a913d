// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package client fetches OpenWeather documents over HTTP and projects them
// into weather records as the response body arrives.
package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/creachadair/wxstream/project"
	"github.com/klauspost/compress/gzip"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the service root used when Client.BaseURL is empty.
const DefaultBaseURL = "https://api.openweathermap.org/data/2.5"

// DefaultTimeout bounds a request when Client.Timeout is zero.
const DefaultTimeout = 8 * time.Second

// maxExcerpt bounds the length of a response body quoted in an error.
const maxExcerpt = 256

// A Client requests forecasts and current conditions from the OpenWeather
// service. A zero Client is ready for use, but the service will reject its
// requests unless APIKey is set.
type Client struct {
	APIKey  string // application key ("appid")
	BaseURL string // if empty, use DefaultBaseURL
	Units   string // "standard", "metric", or "imperial"; if empty, the service default
	Lang    string // language code for descriptions; if empty, the service default

	// Mode selects the fields recorded from a forecast document.
	Mode project.Mode

	// If not nil, use this HTTP client; otherwise use http.DefaultClient.
	HTTPClient *http.Client

	// If not nil, each request waits for permission from this limiter.
	Limiter *rate.Limiter

	// Timeout bounds the time for each request, including reading the
	// response. If zero, use DefaultTimeout; if negative, no timeout.
	Timeout time.Duration

	// If not nil, requests and projection events are logged here.
	Logger *slog.Logger
}

// HTTPError is the error reported for a response whose status is not OK.
type HTTPError struct {
	Status  int    // the HTTP status code
	Excerpt string // the beginning of the response body
}

func (e *HTTPError) Error() string {
	if e.Excerpt == "" {
		return fmt.Sprintf("status %d %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("status %d %s: %s", e.Status, http.StatusText(e.Status), e.Excerpt)
}

// Forecast fetches a combined forecast for the given coordinates and
// projects it into dst. Sections whose records are nil in dst are excluded
// from the request. If the response is incomplete or malformed, Forecast
// reports an error, and fields written before the error are retained.
func (c *Client) Forecast(ctx context.Context, lat, lon float64, dst project.Targets) (project.Result, error) {
	exclude := append([]string{"minutely", "alerts"}, dst.Exclude()...)
	q := c.query(lat, lon)
	q.Set("exclude", strings.Join(exclude, ","))
	return c.fetch(ctx, "onecall", q, project.Options{
		Variant: project.NestedForecast,
		Mode:    c.Mode,
	}, dst)
}

// Current fetches the current conditions for the given coordinates and
// projects them into the Current and Location records of dst. The series
// records of dst are not used.
func (c *Client) Current(ctx context.Context, lat, lon float64, dst project.Targets) (project.Result, error) {
	return c.fetch(ctx, "weather", c.query(lat, lon), project.Options{
		Variant: project.FlatCurrent,
	}, project.Targets{Location: dst.Location, Current: dst.Current})
}

func (c *Client) query(lat, lon float64) url.Values {
	q := url.Values{
		"lat": {strconv.FormatFloat(lat, 'f', -1, 64)},
		"lon": {strconv.FormatFloat(lon, 'f', -1, 64)},
	}
	if c.Units != "" {
		q.Set("units", c.Units)
	}
	if c.Lang != "" {
		q.Set("lang", c.Lang)
	}
	if c.APIKey != "" {
		q.Set("appid", c.APIKey)
	}
	return q
}

func (c *Client) fetch(ctx context.Context, method string, q url.Values, opts project.Options, dst project.Targets) (project.Result, error) {
	var res project.Result
	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return res, fmt.Errorf("rate limit wait canceled: %w", err)
		}
	}
	switch {
	case c.Timeout == 0:
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultTimeout)
		defer cancel()
	case c.Timeout > 0:
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		strings.TrimSuffix(base, "/")+"/"+method+"?"+q.Encode(), nil)
	if err != nil {
		return res, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", "gzip")

	log := c.logger().With("method", method)
	log.Debug("request", "lat", q.Get("lat"), "lon", q.Get("lon"), "exclude", q.Get("exclude"))

	rsp, err := c.httpClient().Do(req)
	if err != nil {
		return res, fmt.Errorf("%s request: %w", method, err)
	}
	defer rsp.Body.Close()

	var body io.Reader = rsp.Body
	if strings.EqualFold(rsp.Header.Get("Content-Encoding"), "gzip") {
		zr, err := gzip.NewReader(rsp.Body)
		if err != nil {
			return res, fmt.Errorf("%s response: %w", method, err)
		}
		defer zr.Close()
		body = zr
	}
	if rsp.StatusCode != http.StatusOK {
		excerpt, _ := io.ReadAll(io.LimitReader(body, maxExcerpt))
		return res, fmt.Errorf("%s request: %w", method, &HTTPError{
			Status:  rsp.StatusCode,
			Excerpt: strings.TrimSpace(string(excerpt)),
		})
	}

	opts.Logger = c.Logger
	res, err = project.Decode(body, opts, dst)
	log.Debug("response", "section", res.Section, "writes", res.Writes, "dropped", res.Dropped, "error", err)
	if err != nil {
		return res, fmt.Errorf("%s response: %w", method, err)
	}
	return res, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return discard
}

var discard = slog.New(slog.DiscardHandler)

// IsStatus reports whether err is an HTTPError with the given status code.
func IsStatus(err error, code int) bool {
	var herr *HTTPError
	return errors.As(err, &herr) && herr.Status == code
}
