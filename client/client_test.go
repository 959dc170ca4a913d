// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package client_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creachadair/wxstream/client"
	"github.com/creachadair/wxstream/project"
	"github.com/creachadair/wxstream/weather"
	"github.com/google/go-cmp/cmp"
	"github.com/klauspost/compress/gzip"
	"golang.org/x/time/rate"
)

const forecastDoc = `{"lat":51.5,"lon":-0.1,"timezone":"Europe/London","timezone_offset":3600,
"current":{"dt":1000,"temp":15.2,"humidity":80,"weather":[{"id":500,"main":"Rain","description":"light rain","icon":"10d"}]},
"daily":[{"dt":1000,"temp":{"min":10.0,"max":16.0}},{"dt":87400,"temp":{"min":9.5,"max":14.0}}]}`

const currentDoc = `{"coord":{"lon":-0.1,"lat":51.5},"weather":[{"id":800,"main":"Clear"}],
"main":{"temp":22.5,"humidity":55},"sys":{"country":"GB"},"name":"London"}`

// A recorder holds the URL of the last request received by a test server.
type recorder struct {
	mu  sync.Mutex
	url url.URL
}

func (r *recorder) last() url.URL {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.url
}

// testServer returns a server that records the URL of each request it
// receives and responds with the given status and body. If the request
// accepts gzip, the body is compressed.
func testServer(t *testing.T, status int, body string, rec *recorder) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.mu.Lock()
		rec.url = *r.URL
		rec.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			w.WriteHeader(status)
			io.WriteString(w, body)
			return
		}
		w.Header().Set("Content-Encoding", "gzip")
		w.WriteHeader(status)
		zw := gzip.NewWriter(w)
		io.WriteString(zw, body)
		zw.Close()
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestForecast(t *testing.T) {
	var rec recorder
	srv := testServer(t, http.StatusOK, forecastDoc, &rec)

	c := &client.Client{
		APIKey:  "sekrit",
		BaseURL: srv.URL + "/data/2.5/",
		Units:   "metric",
		Lang:    "en",
	}
	loc, cur, days := new(weather.Location), new(weather.Current), weather.NewDaily(7)
	res, err := c.Forecast(t.Context(), 51.5, -0.1, project.Targets{
		Location: loc,
		Current:  cur,
		Daily:    days,
	})
	if err != nil {
		t.Fatalf("Forecast: unexpected error: %v", err)
	}
	req := rec.last()

	if req.Path != "/data/2.5/onecall" {
		t.Errorf("Request path: got %q, want /data/2.5/onecall", req.Path)
	}
	wantQuery := url.Values{
		"lat":     {"51.5"},
		"lon":     {"-0.1"},
		"exclude": {"minutely,alerts,hourly"},
		"units":   {"metric"},
		"lang":    {"en"},
		"appid":   {"sekrit"},
	}
	if diff := cmp.Diff(wantQuery, req.Query()); diff != "" {
		t.Errorf("Request query (-want, +got):\n%s", diff)
	}

	if diff := cmp.Diff(project.Result{Section: "daily", Writes: 17}, res); diff != "" {
		t.Errorf("Result (-want, +got):\n%s", diff)
	}
	wantLoc := &weather.Location{Lat: 51.5, Lon: -0.1, Timezone: "Europe/London", TimezoneOffset: 3600}
	if diff := cmp.Diff(wantLoc, loc); diff != "" {
		t.Errorf("Location (-want, +got):\n%s", diff)
	}
	wantCur := &weather.Current{
		Dt: 1000, Temp: 15.2, Humidity: 80,
		ID: 500, Main: "Rain", Description: "light rain", Icon: "10d",
	}
	if diff := cmp.Diff(wantCur, cur); diff != "" {
		t.Errorf("Current (-want, +got):\n%s", diff)
	}
	if d := days.Used(); d.Steps != 2 || d.TempMax[1] != 14 {
		t.Errorf("Daily: got %d steps, max %v; want 2 steps, max 14", d.Steps, d.TempMax)
	}
}

func TestForecastReduced(t *testing.T) {
	var rec recorder
	srv := testServer(t, http.StatusOK, forecastDoc, &rec)

	c := &client.Client{BaseURL: srv.URL, Mode: project.Reduced}
	cur := new(weather.Current)
	res, err := c.Forecast(t.Context(), 1, 2, project.Targets{Current: cur})
	if err != nil {
		t.Fatalf("Forecast: unexpected error: %v", err)
	}
	req := rec.last()
	if got, want := req.Query().Get("exclude"), "minutely,alerts,hourly,daily"; got != want {
		t.Errorf("Exclude: got %q, want %q", got, want)
	}
	if req.Query().Has("appid") || req.Query().Has("units") {
		t.Errorf("Unexpected query parameters: %v", req.Query())
	}
	// Reduced mode does not record the icon.
	if res.Writes != 6 || cur.Icon != "" || cur.Description != "light rain" {
		t.Errorf("Got %d writes, current %+v", res.Writes, cur)
	}
}

func TestCurrent(t *testing.T) {
	var rec recorder
	srv := testServer(t, http.StatusOK, currentDoc, &rec)

	c := &client.Client{APIKey: "k", BaseURL: srv.URL}
	loc, cur := new(weather.Location), new(weather.Current)
	res, err := c.Current(t.Context(), 51.5, -0.1, project.Targets{
		Location: loc,
		Current:  cur,
		Hourly:   weather.NewHourly(1), // ignored
	})
	if err != nil {
		t.Fatalf("Current: unexpected error: %v", err)
	}
	req := rec.last()
	if req.Path != "/weather" {
		t.Errorf("Request path: got %q, want /weather", req.Path)
	}
	if req.Query().Has("exclude") {
		t.Errorf("Unexpected exclude parameter: %q", req.Query().Get("exclude"))
	}
	if res.Writes != 8 {
		t.Errorf("Result: got %d writes, want 8", res.Writes)
	}
	want := &weather.Current{ID: 800, Main: "Clear", Temp: 22.5, Humidity: 55, Country: "GB", CityName: "London"}
	if diff := cmp.Diff(want, cur); diff != "" {
		t.Errorf("Current (-want, +got):\n%s", diff)
	}
	if loc.Lat != 51.5 || loc.Lon != -0.1 {
		t.Errorf("Location: got %+v", loc)
	}
}

func TestStatusError(t *testing.T) {
	var rec recorder
	msg := `{"cod":401, "message": "Invalid API key. ` + strings.Repeat("x", 1000) + `"}`
	srv := testServer(t, http.StatusUnauthorized, msg, &rec)

	c := &client.Client{BaseURL: srv.URL}
	cur := &weather.Current{Temp: 5}
	_, err := c.Current(t.Context(), 0, 0, project.Targets{Current: cur})
	if !client.IsStatus(err, http.StatusUnauthorized) {
		t.Fatalf("Current: got error %v, want status 401", err)
	}
	var herr *client.HTTPError
	if !errors.As(err, &herr) {
		t.Fatalf("Current: error %T is not an HTTPError", err)
	}
	if !strings.HasPrefix(herr.Excerpt, `{"cod":401`) || len(herr.Excerpt) > 256 {
		t.Errorf("Excerpt: got %q (%d bytes)", herr.Excerpt, len(herr.Excerpt))
	}
	if cur.Temp != 5 {
		t.Errorf("Current was modified: temp is %v", cur.Temp)
	}
}

func TestTruncatedResponse(t *testing.T) {
	// The response ends partway through the daily forecast.
	body := forecastDoc[:strings.Index(forecastDoc, `{"dt":87400`)+8]
	hc := &http.Client{Transport: roundTripper(func(*http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     http.Header{"Content-Type": {"application/json"}},
			Body:       io.NopCloser(strings.NewReader(body)),
		}, nil
	})}

	c := &client.Client{HTTPClient: hc}
	cur, days := new(weather.Current), weather.NewDaily(4)
	res, err := c.Forecast(t.Context(), 0, 0, project.Targets{Current: cur, Daily: days})
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("Forecast: got error %v, want %v", err, io.ErrUnexpectedEOF)
	}
	if cur.Temp != 15.2 || cur.Description != "light rain" {
		t.Errorf("Current: got %+v", cur)
	}
	if days.Steps != 1 || days.TempMin[0] != 10 {
		t.Errorf("Daily: got %d steps, min %v", days.Steps, days.TempMin)
	}
	if res.Section != "daily" {
		t.Errorf("Result section: got %q, want daily", res.Section)
	}
}

func TestLimiter(t *testing.T) {
	var rec recorder
	srv := testServer(t, http.StatusOK, currentDoc, &rec)

	c := &client.Client{
		BaseURL: srv.URL,
		Limiter: rate.NewLimiter(rate.Every(time.Hour), 1),
	}
	cur := new(weather.Current)
	if _, err := c.Current(t.Context(), 0, 0, project.Targets{Current: cur}); err != nil {
		t.Fatalf("First request: unexpected error: %v", err)
	}

	ctx, cancel := context.WithTimeout(t.Context(), 50*time.Millisecond)
	defer cancel()
	if _, err := c.Current(ctx, 0, 0, project.Targets{Current: cur}); err == nil {
		t.Error("Second request: got nil error, want rate limit failure")
	}
}

func TestTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	c := &client.Client{BaseURL: srv.URL, Timeout: 50 * time.Millisecond}
	_, err := c.Current(t.Context(), 0, 0, project.Targets{Current: new(weather.Current)})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Current: got error %v, want %v", err, context.DeadlineExceeded)
	}
}

type roundTripper func(*http.Request) (*http.Response, error)

func (f roundTripper) RoundTrip(req *http.Request) (*http.Response, error) { return f(req) }
