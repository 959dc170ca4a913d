// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package project

import "github.com/creachadair/wxstream/weather"

// Routing tables for the two document shapes. Fields marked inReduced are
// also recorded in Reduced mode; see schemaFor.

var (
	oneCallFull    = oneCallSchema()
	oneCallReduced = oneCallFull.reduce()
	currentFull    = currentSchema()
)

// schemaFor returns the routing tables for the given variant and mode.
// Current-conditions documents are small, and always use the full table.
func schemaFor(v Variant, m Mode) schema {
	if v == FlatCurrent {
		return currentFull
	}
	if m == Reduced {
		return oneCallReduced
	}
	return oneCallFull
}

type (
	wloc  = weather.Location
	wcur  = weather.Current
	whour = weather.Hourly
	wday  = weather.Daily
)

var (
	toInt   = Scalar.Int
	toInt64 = Scalar.Int64
	toFloat = Scalar.Float64
)

// oneCallSchema returns the routing tables for a combined forecast document:
//
//	{"lat": ..., "lon": ..., "timezone": ..., "timezone_offset": ...,
//	 "current": {...},
//	 "hourly": [{...}, ...],
//	 "daily": [{..., "temp": {...}, "feels_like": {...}}, ...]}
func oneCallSchema() schema {
	return schema{
		"": {
			keys: map[string]field{
				"lat":             loc(toFloat, func(l *wloc) *float64 { return &l.Lat }).inReduced(),
				"lon":             loc(toFloat, func(l *wloc) *float64 { return &l.Lon }).inReduced(),
				"timezone":        loc(text(weather.MaxTimezone), func(l *wloc) *string { return &l.Timezone }),
				"timezone_offset": loc(toInt, func(l *wloc) *int { return &l.TimezoneOffset }),
			},
		},

		"current": {
			name: "current",
			keys: map[string]field{
				"dt":          cur(toInt64, func(c *wcur) *int64 { return &c.Dt }).inReduced(),
				"sunrise":     cur(toInt64, func(c *wcur) *int64 { return &c.Sunrise }).inReduced(),
				"sunset":      cur(toInt64, func(c *wcur) *int64 { return &c.Sunset }).inReduced(),
				"temp":        cur(toFloat, func(c *wcur) *float64 { return &c.Temp }).inReduced(),
				"feels_like":  cur(toFloat, func(c *wcur) *float64 { return &c.FeelsLike }),
				"pressure":    cur(toFloat, func(c *wcur) *float64 { return &c.Pressure }).inReduced(),
				"humidity":    cur(toInt, func(c *wcur) *int { return &c.Humidity }).inReduced(),
				"dew_point":   cur(toFloat, func(c *wcur) *float64 { return &c.DewPoint }),
				"uvi":         cur(toFloat, func(c *wcur) *float64 { return &c.UVI }),
				"clouds":      cur(toInt, func(c *wcur) *int { return &c.Clouds }).inReduced(),
				"visibility":  cur(toInt, func(c *wcur) *int { return &c.Visibility }),
				"wind_speed":  cur(toFloat, func(c *wcur) *float64 { return &c.WindSpeed }).inReduced(),
				"wind_gust":   cur(toFloat, func(c *wcur) *float64 { return &c.WindGust }),
				"wind_deg":    cur(toInt, func(c *wcur) *int { return &c.WindDeg }).inReduced(),
				"rain":        cur(toFloat, func(c *wcur) *float64 { return &c.Rain }),
				"snow":        cur(toFloat, func(c *wcur) *float64 { return &c.Snow }),
				"id":          cur(toInt, func(c *wcur) *int { return &c.ID }).inReduced(),
				"main":        cur(text(weather.MaxMain), func(c *wcur) *string { return &c.Main }).inReduced(),
				"description": cur(text(weather.MaxDescription), func(c *wcur) *string { return &c.Description }).inReduced(),
				"icon":        cur(text(weather.MaxIcon), func(c *wcur) *string { return &c.Icon }),
			},
			sets: map[string]map[string]field{
				"rain": {"1h": cur(toFloat, func(c *wcur) *float64 { return &c.Rain })},
				"snow": {"1h": cur(toFloat, func(c *wcur) *float64 { return &c.Snow })},
			},
		},

		// The hourly series is not recorded in Reduced mode.
		"hourly": {
			name: "hourly",
			keys: map[string]field{
				"dt":          hour(toInt64, func(h *whour) []int64 { return h.Dt }),
				"temp":        hour(toFloat, func(h *whour) []float64 { return h.Temp }),
				"feels_like":  hour(toFloat, func(h *whour) []float64 { return h.FeelsLike }),
				"pressure":    hour(toFloat, func(h *whour) []float64 { return h.Pressure }),
				"humidity":    hour(toInt, func(h *whour) []int { return h.Humidity }),
				"dew_point":   hour(toFloat, func(h *whour) []float64 { return h.DewPoint }),
				"clouds":      hour(toInt, func(h *whour) []int { return h.Clouds }),
				"wind_speed":  hour(toFloat, func(h *whour) []float64 { return h.WindSpeed }),
				"wind_gust":   hour(toFloat, func(h *whour) []float64 { return h.WindGust }),
				"wind_deg":    hour(toInt, func(h *whour) []int { return h.WindDeg }),
				"rain":        hour(toFloat, func(h *whour) []float64 { return h.Rain }),
				"snow":        hour(toFloat, func(h *whour) []float64 { return h.Snow }),
				"pop":         hour(toFloat, func(h *whour) []float64 { return h.Pop }),
				"id":          hour(toInt, func(h *whour) []int { return h.ID }),
				"main":        hour(text(weather.MaxMain), func(h *whour) []string { return h.Main }),
				"description": hour(text(weather.MaxDescription), func(h *whour) []string { return h.Description }),
				"icon":        hour(text(weather.MaxIcon), func(h *whour) []string { return h.Icon }),
			},
			sets: map[string]map[string]field{
				"rain": {"1h": hour(toFloat, func(h *whour) []float64 { return h.Rain })},
				"snow": {"1h": hour(toFloat, func(h *whour) []float64 { return h.Snow })},
			},
		},

		"daily": {
			name: "daily",
			keys: map[string]field{
				"dt":          day(toInt64, func(d *wday) []int64 { return d.Dt }).inReduced(),
				"sunrise":     day(toInt64, func(d *wday) []int64 { return d.Sunrise }),
				"sunset":      day(toInt64, func(d *wday) []int64 { return d.Sunset }),
				"pressure":    day(toFloat, func(d *wday) []float64 { return d.Pressure }),
				"humidity":    day(toInt, func(d *wday) []int { return d.Humidity }),
				"dew_point":   day(toFloat, func(d *wday) []float64 { return d.DewPoint }),
				"uvi":         day(toFloat, func(d *wday) []float64 { return d.UVI }),
				"clouds":      day(toInt, func(d *wday) []int { return d.Clouds }),
				"wind_speed":  day(toFloat, func(d *wday) []float64 { return d.WindSpeed }),
				"wind_gust":   day(toFloat, func(d *wday) []float64 { return d.WindGust }),
				"wind_deg":    day(toInt, func(d *wday) []int { return d.WindDeg }),
				"rain":        day(toFloat, func(d *wday) []float64 { return d.Rain }),
				"snow":        day(toFloat, func(d *wday) []float64 { return d.Snow }),
				"pop":         day(toFloat, func(d *wday) []float64 { return d.Pop }),
				"id":          day(toInt, func(d *wday) []int { return d.ID }).inReduced(),
				"main":        day(text(weather.MaxMain), func(d *wday) []string { return d.Main }),
				"description": day(text(weather.MaxDescription), func(d *wday) []string { return d.Description }),
				"icon":        day(text(weather.MaxIcon), func(d *wday) []string { return d.Icon }),
			},
			sets: map[string]map[string]field{
				"temp": {
					"morn":  day(toFloat, func(d *wday) []float64 { return d.TempMorn }),
					"day":   day(toFloat, func(d *wday) []float64 { return d.TempDay }),
					"eve":   day(toFloat, func(d *wday) []float64 { return d.TempEve }),
					"night": day(toFloat, func(d *wday) []float64 { return d.TempNight }),
					"min":   day(toFloat, func(d *wday) []float64 { return d.TempMin }).inReduced(),
					"max":   day(toFloat, func(d *wday) []float64 { return d.TempMax }).inReduced(),
				},
				"feels_like": {
					"morn":  day(toFloat, func(d *wday) []float64 { return d.FeelsLikeMorn }),
					"day":   day(toFloat, func(d *wday) []float64 { return d.FeelsLikeDay }),
					"eve":   day(toFloat, func(d *wday) []float64 { return d.FeelsLikeEve }),
					"night": day(toFloat, func(d *wday) []float64 { return d.FeelsLikeNight }),
				},
			},
		},
	}
}

// currentSchema returns the routing tables for a current-conditions
// document, whose sections are the objects at the top level:
//
//	{"coord": {...}, "weather": [{...}], "main": {...}, "wind": {...},
//	 "clouds": {...}, "rain": {...}, "sys": {...}, "dt": ..., ...}
//
// Only one element of "weather" is kept; if there are several, the last one
// wins.
func currentSchema() schema {
	return schema{
		"": {
			keys: map[string]field{
				"visibility": cur(toInt, func(c *wcur) *int { return &c.Visibility }),
				"dt":         cur(toInt64, func(c *wcur) *int64 { return &c.Dt }),
				"timezone":   loc(toInt, func(l *wloc) *int { return &l.TimezoneOffset }),
				"id":         cur(toInt64, func(c *wcur) *int64 { return &c.CityID }),
				"name":       cur(text(weather.MaxName), func(c *wcur) *string { return &c.CityName }),
			},
		},
		"coord": {
			name: "coord",
			keys: map[string]field{
				"lat": loc(toFloat, func(l *wloc) *float64 { return &l.Lat }),
				"lon": loc(toFloat, func(l *wloc) *float64 { return &l.Lon }),
			},
		},
		"weather": {
			name: "weather",
			keys: map[string]field{
				"id":          cur(toInt, func(c *wcur) *int { return &c.ID }),
				"main":        cur(text(weather.MaxMain), func(c *wcur) *string { return &c.Main }),
				"description": cur(text(weather.MaxDescription), func(c *wcur) *string { return &c.Description }),
				"icon":        cur(text(weather.MaxIcon), func(c *wcur) *string { return &c.Icon }),
			},
		},
		"main": {
			name: "main",
			keys: map[string]field{
				"temp":       cur(toFloat, func(c *wcur) *float64 { return &c.Temp }),
				"feels_like": cur(toFloat, func(c *wcur) *float64 { return &c.FeelsLike }),
				"pressure":   cur(toFloat, func(c *wcur) *float64 { return &c.Pressure }),
				"humidity":   cur(toInt, func(c *wcur) *int { return &c.Humidity }),
				"temp_min":   cur(toFloat, func(c *wcur) *float64 { return &c.TempMin }),
				"temp_max":   cur(toFloat, func(c *wcur) *float64 { return &c.TempMax }),
				"sea_level":  cur(toInt, func(c *wcur) *int { return &c.SeaLevel }),
				"grnd_level": cur(toInt, func(c *wcur) *int { return &c.GrndLevel }),
			},
		},
		"wind": {
			name: "wind",
			keys: map[string]field{
				"speed":     cur(toFloat, func(c *wcur) *float64 { return &c.WindSpeed }),
				"deg":       cur(toInt, func(c *wcur) *int { return &c.WindDeg }),
				"wind_gust": cur(toFloat, func(c *wcur) *float64 { return &c.WindGust }),
				"gust":      cur(toFloat, func(c *wcur) *float64 { return &c.WindGust }),
			},
		},
		"clouds": {
			name: "clouds",
			keys: map[string]field{
				"clouds": cur(toInt, func(c *wcur) *int { return &c.Clouds }),
				"all":    cur(toInt, func(c *wcur) *int { return &c.Clouds }),
			},
		},
		"rain": {
			name: "rain",
			keys: map[string]field{
				"1h": cur(toFloat, func(c *wcur) *float64 { return &c.Rain }),
				"3h": cur(toFloat, func(c *wcur) *float64 { return &c.Rain3h }),
			},
		},
		"snow": {
			name: "snow",
			keys: map[string]field{
				"1h": cur(toFloat, func(c *wcur) *float64 { return &c.Snow }),
				"3h": cur(toFloat, func(c *wcur) *float64 { return &c.Snow3h }),
			},
		},
		"sys": {
			name: "sys",
			keys: map[string]field{
				"sunrise": cur(toInt64, func(c *wcur) *int64 { return &c.Sunrise }),
				"sunset":  cur(toInt64, func(c *wcur) *int64 { return &c.Sunset }),
				"country": cur(text(weather.MaxCountry), func(c *wcur) *string { return &c.Country }),
			},
		},
	}
}
