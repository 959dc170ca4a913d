// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/creachadair/wxstream/project"
	"github.com/creachadair/wxstream/weather"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// A report is the output of the program. Series are trimmed to the steps
// that received data before they are written.
type report struct {
	Result   project.Result    `json:"result" yaml:"result"`
	Location *weather.Location `json:"location,omitempty" yaml:"location,omitempty"`
	Current  *weather.Current  `json:"current,omitempty" yaml:"current,omitempty"`
	Hourly   *weather.Hourly   `json:"hourly,omitempty" yaml:"hourly,omitempty"`
	Daily    *weather.Daily    `json:"daily,omitempty" yaml:"daily,omitempty"`
}

func (r *report) write(w io.Writer, format string, color bool) error {
	out := *r
	if out.Hourly != nil {
		out.Hourly = out.Hourly.Used()
	}
	if out.Daily != nil {
		out.Daily = out.Daily.Used()
	}
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()
	case "text":
		return out.writeText(w, color)
	}
	return fmt.Errorf("unknown output format %q", format)
}

const (
	ansiBold  = "\x1b[1m"
	ansiCyan  = "\x1b[36m"
	ansiReset = "\x1b[0m"
)

func (r *report) writeText(w io.Writer, color bool) error {
	head := func(s string) string {
		if color {
			return ansiBold + ansiCyan + s + ansiReset
		}
		return s
	}
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	if loc := r.Location; loc != nil {
		fmt.Fprintln(tw, head("Location"))
		fmt.Fprintf(tw, "  %.4f, %.4f\t%s\t%+ds\n", loc.Lat, loc.Lon, loc.Timezone, loc.TimezoneOffset)
	}
	if c := r.Current; c != nil {
		fmt.Fprintln(tw, head("Current"))
		if c.CityName != "" {
			fmt.Fprintf(tw, "  %s\t%s\n", c.CityName, c.Country)
		}
		fmt.Fprintf(tw, "  %s\t%.1f°\tfeels %.1f°\t%d%%\t%.0f hPa\twind %.1f @ %d°\t%s\n",
			stamp(c.Dt), c.Temp, c.FeelsLike, c.Humidity, c.Pressure, c.WindSpeed, c.WindDeg, c.Description)
	}
	if h := r.Hourly; h != nil && h.Steps > 0 {
		fmt.Fprintln(tw, head("Hourly"))
		for i := range h.Steps {
			fmt.Fprintf(tw, "  %s\t%.1f°\t%d%%\tpop %.0f%%\t%s\n",
				stamp(h.Dt[i]), h.Temp[i], h.Humidity[i], 100*h.Pop[i], h.Description[i])
		}
	}
	if d := r.Daily; d != nil && d.Steps > 0 {
		fmt.Fprintln(tw, head("Daily"))
		for i := range d.Steps {
			fmt.Fprintf(tw, "  %s\t%.1f°\t%.1f°\t%s\n",
				stamp(d.Dt[i]), d.TempMin[i], d.TempMax[i], d.Description[i])
		}
	}
	fmt.Fprintf(tw, "%d values recorded, %d dropped\n", r.Result.Writes, r.Result.Dropped)
	return tw.Flush()
}

func stamp(unix int64) string {
	if unix == 0 {
		return "-"
	}
	return time.Unix(unix, 0).UTC().Format("2006-01-02 15:04Z")
}
