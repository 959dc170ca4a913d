// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package weather defines the records populated from OpenWeather documents.
//
// Records are allocated once by the caller and filled in place. The series
// records, Hourly and Daily, hold parallel columns with a fixed capacity
// chosen at construction; data for positions beyond the capacity is
// discarded, never appended.
package weather

// Limits on the length in bytes of text fields. Longer values are truncated
// at a UTF-8 boundary.
const (
	MaxMain        = 32 // condition group, e.g. "Clouds"
	MaxDescription = 64 // condition text, e.g. "broken clouds"
	MaxIcon        = 8  // icon code, e.g. "04d"
	MaxCountry     = 8  // country code, e.g. "GB"
	MaxName        = 64 // city name
	MaxTimezone    = 64 // IANA zone name
)

// Location holds the position and time zone of a report.
type Location struct {
	Lat            float64 `json:"lat" yaml:"lat"`
	Lon            float64 `json:"lon" yaml:"lon"`
	Timezone       string  `json:"timezone,omitempty" yaml:"timezone,omitempty"`
	TimezoneOffset int     `json:"timezone_offset" yaml:"timezone_offset"` // seconds east of UTC
}

// Reset zeroes all fields of l.
func (l *Location) Reset() { *l = Location{} }

// Current holds current conditions. Times are Unix seconds UTC.
//
// Some fields are only reported by one of the two document shapes: the
// city, country, and min/max/sea-level fields come from current-weather
// documents only; UVI and dew point come from forecast documents only.
type Current struct {
	Dt         int64   `json:"dt" yaml:"dt"`
	Sunrise    int64   `json:"sunrise" yaml:"sunrise"`
	Sunset     int64   `json:"sunset" yaml:"sunset"`
	Temp       float64 `json:"temp" yaml:"temp"`
	FeelsLike  float64 `json:"feels_like" yaml:"feels_like"`
	TempMin    float64 `json:"temp_min" yaml:"temp_min"`
	TempMax    float64 `json:"temp_max" yaml:"temp_max"`
	Pressure   float64 `json:"pressure" yaml:"pressure"` // hPa
	SeaLevel   int     `json:"sea_level" yaml:"sea_level"`
	GrndLevel  int     `json:"grnd_level" yaml:"grnd_level"`
	Humidity   int     `json:"humidity" yaml:"humidity"` // percent
	DewPoint   float64 `json:"dew_point" yaml:"dew_point"`
	UVI        float64 `json:"uvi" yaml:"uvi"`
	Clouds     int     `json:"clouds" yaml:"clouds"` // percent
	Visibility int     `json:"visibility" yaml:"visibility"`
	WindSpeed  float64 `json:"wind_speed" yaml:"wind_speed"`
	WindGust   float64 `json:"wind_gust" yaml:"wind_gust"`
	WindDeg    int     `json:"wind_deg" yaml:"wind_deg"`
	Rain       float64 `json:"rain" yaml:"rain"` // last hour
	Rain3h     float64 `json:"rain_3h" yaml:"rain_3h"`
	Snow       float64 `json:"snow" yaml:"snow"` // last hour
	Snow3h     float64 `json:"snow_3h" yaml:"snow_3h"`

	ID          int    `json:"id" yaml:"id"` // condition code
	Main        string `json:"main" yaml:"main"`
	Description string `json:"description" yaml:"description"`
	Icon        string `json:"icon" yaml:"icon"`

	Country  string `json:"country,omitempty" yaml:"country,omitempty"`
	CityID   int64  `json:"city_id,omitempty" yaml:"city_id,omitempty"`
	CityName string `json:"city_name,omitempty" yaml:"city_name,omitempty"`
}

// Reset zeroes all fields of c.
func (c *Current) Reset() { *c = Current{} }
