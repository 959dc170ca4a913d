// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Program owfetch fetches a forecast or current conditions from the
// OpenWeather service, or reads a saved response from a file, and prints the
// fields it recognizes.
//
// Usage:
//
//	owfetch -lat 47.61 -lon -122.33 [-api onecall|current] [options]
//	owfetch -input saved.json [-api onecall|current] [options]
//
// The API key is read from the -key flag or from the OWM_API_KEY environment
// variable, which may be set in a .env file in the working directory.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/creachadair/wxstream/client"
	"github.com/creachadair/wxstream/project"
	"github.com/creachadair/wxstream/weather"
	"github.com/joho/godotenv"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/tailscale/hujson"
)

var (
	apiName   = flag.String("api", "onecall", `Document to fetch ("onecall" or "current")`)
	apiKey    = flag.String("key", "", "API key (default $OWM_API_KEY)")
	baseURL   = flag.String("base", client.DefaultBaseURL, "Service base URL")
	lat       = flag.Float64("lat", 0, "Latitude in degrees")
	lon       = flag.Float64("lon", 0, "Longitude in degrees")
	units     = flag.String("units", "metric", `Units ("standard", "metric", "imperial")`)
	lang      = flag.String("lang", "", "Language code for descriptions")
	reduced   = flag.Bool("reduced", false, "Record only a minimal subset of forecast fields")
	numHours  = flag.Int("hours", 24, "Capacity of the hourly forecast")
	numDays   = flag.Int("days", 7, "Capacity of the daily forecast")
	noCurrent = flag.Bool("no-current", false, "Omit current conditions")
	noHourly  = flag.Bool("no-hourly", false, "Omit the hourly forecast")
	noDaily   = flag.Bool("no-daily", false, "Omit the daily forecast")
	inputPath = flag.String("input", "", "Read a saved response from this file instead of the service")
	outFormat = flag.String("format", "text", `Output format ("text", "json", "yaml")`)
	colorMode = flag.String("color", "auto", `Colorize text output ("auto", "always", "never")`)
	debugLog  = flag.Bool("debug", false, "Log decoding events to stderr")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\nOptions:\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("owfetch: ")

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: loading .env: %v", err)
	}
	if *apiKey == "" {
		*apiKey = os.Getenv("OWM_API_KEY")
	}
	if *numHours < 0 || *numDays < 0 {
		log.Fatal("The -hours and -days capacities must not be negative")
	}

	var opts project.Options
	switch *apiName {
	case "onecall":
		opts.Variant = project.NestedForecast
	case "current", "weather":
		opts.Variant = project.FlatCurrent
	default:
		log.Fatalf("Unknown -api %q", *apiName)
	}
	if *reduced {
		opts.Mode = project.Reduced
	}
	if *debugLog {
		opts.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	rep := &report{Location: new(weather.Location)}
	if !*noCurrent {
		rep.Current = new(weather.Current)
	}
	if opts.Variant == project.NestedForecast {
		if !*noHourly && !*reduced {
			rep.Hourly = weather.NewHourly(*numHours)
		}
		if !*noDaily {
			rep.Daily = weather.NewDaily(*numDays)
		}
	}
	dst := project.Targets{
		Location: rep.Location,
		Current:  rep.Current,
		Hourly:   rep.Hourly,
		Daily:    rep.Daily,
	}

	var res project.Result
	var err error
	if *inputPath != "" {
		res, err = decodeFile(*inputPath, opts, dst)
	} else {
		if *apiKey == "" {
			log.Fatal("No API key: set -key or OWM_API_KEY")
		}
		c := &client.Client{
			APIKey:  *apiKey,
			BaseURL: *baseURL,
			Units:   *units,
			Lang:    *lang,
			Mode:    opts.Mode,
			Logger:  opts.Logger,
		}
		ctx := context.Background()
		if opts.Variant == project.FlatCurrent {
			res, err = c.Current(ctx, *lat, *lon, dst)
		} else {
			res, err = c.Forecast(ctx, *lat, *lon, dst)
		}
	}
	rep.Result = res

	out, color := outputStream(*colorMode)
	if perr := rep.write(out, *outFormat, color); perr != nil {
		log.Fatalf("Writing output: %v", perr)
	}
	if err != nil {
		log.Fatalf("Incomplete data (%d values): %v", res.Writes, err)
	}
}

// decodeFile projects the saved document at path into dst. Files whose names
// end in .hujson or .jwcc may contain comments and trailing commas.
func decodeFile(path string, opts project.Options, dst project.Targets) (project.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return project.Result{}, err
	}
	defer f.Close()

	var r io.Reader = f
	switch filepath.Ext(path) {
	case ".hujson", ".jwcc":
		data, err := io.ReadAll(f)
		if err != nil {
			return project.Result{}, err
		}
		std, err := hujson.Standardize(data)
		if err != nil {
			return project.Result{}, fmt.Errorf("standardize %q: %w", path, err)
		}
		r = bytes.NewReader(std)
	}
	return project.Decode(r, opts, dst)
}

// outputStream returns the writer for output and reports whether text output
// should be colorized.
func outputStream(mode string) (io.Writer, bool) {
	var color bool
	switch mode {
	case "always":
		color = true
	case "never":
		color = false
	default:
		color = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
	if color {
		return colorable.NewColorableStdout(), true
	}
	return os.Stdout, false
}
