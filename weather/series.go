// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package weather

// Hourly holds an hourly forecast as parallel columns, one position per
// forecast hour. All columns have the same length, the capacity of the
// record.
type Hourly struct {
	// Steps is the number of leading positions that have received data.
	Steps int `json:"steps" yaml:"steps"`

	Dt        []int64   `json:"dt" yaml:"dt"`
	Temp      []float64 `json:"temp" yaml:"temp"`
	FeelsLike []float64 `json:"feels_like" yaml:"feels_like"`
	Pressure  []float64 `json:"pressure" yaml:"pressure"`
	Humidity  []int     `json:"humidity" yaml:"humidity"`
	DewPoint  []float64 `json:"dew_point" yaml:"dew_point"`
	Clouds    []int     `json:"clouds" yaml:"clouds"`
	WindSpeed []float64 `json:"wind_speed" yaml:"wind_speed"`
	WindGust  []float64 `json:"wind_gust" yaml:"wind_gust"`
	WindDeg   []int     `json:"wind_deg" yaml:"wind_deg"`
	Rain      []float64 `json:"rain" yaml:"rain"`
	Snow      []float64 `json:"snow" yaml:"snow"`
	Pop       []float64 `json:"pop" yaml:"pop"` // probability of precipitation, 0..1

	ID          []int    `json:"id" yaml:"id"`
	Main        []string `json:"main" yaml:"main"`
	Description []string `json:"description" yaml:"description"`
	Icon        []string `json:"icon" yaml:"icon"`
}

// NewHourly constructs an Hourly record with capacity for n hours.
// It panics if n < 0.
func NewHourly(n int) *Hourly {
	if n < 0 {
		panic("weather: negative hourly capacity")
	}
	return &Hourly{
		Dt:          make([]int64, n),
		Temp:        make([]float64, n),
		FeelsLike:   make([]float64, n),
		Pressure:    make([]float64, n),
		Humidity:    make([]int, n),
		DewPoint:    make([]float64, n),
		Clouds:      make([]int, n),
		WindSpeed:   make([]float64, n),
		WindGust:    make([]float64, n),
		WindDeg:     make([]int, n),
		Rain:        make([]float64, n),
		Snow:        make([]float64, n),
		Pop:         make([]float64, n),
		ID:          make([]int, n),
		Main:        make([]string, n),
		Description: make([]string, n),
		Icon:        make([]string, n),
	}
}

// Cap reports the capacity of h.
func (h *Hourly) Cap() int { return len(h.Dt) }

// Reset zeroes all positions of h without changing its capacity.
func (h *Hourly) Reset() {
	h.Steps = 0
	clear(h.Dt)
	clear(h.Temp)
	clear(h.FeelsLike)
	clear(h.Pressure)
	clear(h.Humidity)
	clear(h.DewPoint)
	clear(h.Clouds)
	clear(h.WindSpeed)
	clear(h.WindGust)
	clear(h.WindDeg)
	clear(h.Rain)
	clear(h.Snow)
	clear(h.Pop)
	clear(h.ID)
	clear(h.Main)
	clear(h.Description)
	clear(h.Icon)
}

// Used returns a view of h whose columns are limited to the populated steps.
// The view shares storage with h.
func (h *Hourly) Used() *Hourly {
	n := min(h.Steps, h.Cap())
	return &Hourly{
		Steps:       n,
		Dt:          h.Dt[:n:n],
		Temp:        h.Temp[:n:n],
		FeelsLike:   h.FeelsLike[:n:n],
		Pressure:    h.Pressure[:n:n],
		Humidity:    h.Humidity[:n:n],
		DewPoint:    h.DewPoint[:n:n],
		Clouds:      h.Clouds[:n:n],
		WindSpeed:   h.WindSpeed[:n:n],
		WindGust:    h.WindGust[:n:n],
		WindDeg:     h.WindDeg[:n:n],
		Rain:        h.Rain[:n:n],
		Snow:        h.Snow[:n:n],
		Pop:         h.Pop[:n:n],
		ID:          h.ID[:n:n],
		Main:        h.Main[:n:n],
		Description: h.Description[:n:n],
		Icon:        h.Icon[:n:n],
	}
}

// Daily holds a daily forecast as parallel columns, one position per day.
// All columns have the same length, the capacity of the record.
type Daily struct {
	// Steps is the number of leading positions that have received data.
	Steps int `json:"steps" yaml:"steps"`

	Dt        []int64   `json:"dt" yaml:"dt"`
	Sunrise   []int64   `json:"sunrise" yaml:"sunrise"`
	Sunset    []int64   `json:"sunset" yaml:"sunset"`
	Pressure  []float64 `json:"pressure" yaml:"pressure"`
	Humidity  []int     `json:"humidity" yaml:"humidity"`
	DewPoint  []float64 `json:"dew_point" yaml:"dew_point"`
	UVI       []float64 `json:"uvi" yaml:"uvi"`
	Clouds    []int     `json:"clouds" yaml:"clouds"`
	WindSpeed []float64 `json:"wind_speed" yaml:"wind_speed"`
	WindGust  []float64 `json:"wind_gust" yaml:"wind_gust"`
	WindDeg   []int     `json:"wind_deg" yaml:"wind_deg"`
	Rain      []float64 `json:"rain" yaml:"rain"`
	Snow      []float64 `json:"snow" yaml:"snow"`
	Pop       []float64 `json:"pop" yaml:"pop"`

	TempMorn  []float64 `json:"temp_morn" yaml:"temp_morn"`
	TempDay   []float64 `json:"temp_day" yaml:"temp_day"`
	TempEve   []float64 `json:"temp_eve" yaml:"temp_eve"`
	TempNight []float64 `json:"temp_night" yaml:"temp_night"`
	TempMin   []float64 `json:"temp_min" yaml:"temp_min"`
	TempMax   []float64 `json:"temp_max" yaml:"temp_max"`

	FeelsLikeMorn  []float64 `json:"feels_like_morn" yaml:"feels_like_morn"`
	FeelsLikeDay   []float64 `json:"feels_like_day" yaml:"feels_like_day"`
	FeelsLikeEve   []float64 `json:"feels_like_eve" yaml:"feels_like_eve"`
	FeelsLikeNight []float64 `json:"feels_like_night" yaml:"feels_like_night"`

	ID          []int    `json:"id" yaml:"id"`
	Main        []string `json:"main" yaml:"main"`
	Description []string `json:"description" yaml:"description"`
	Icon        []string `json:"icon" yaml:"icon"`
}

// NewDaily constructs a Daily record with capacity for n days.
// It panics if n < 0.
func NewDaily(n int) *Daily {
	if n < 0 {
		panic("weather: negative daily capacity")
	}
	return &Daily{
		Dt:             make([]int64, n),
		Sunrise:        make([]int64, n),
		Sunset:         make([]int64, n),
		Pressure:       make([]float64, n),
		Humidity:       make([]int, n),
		DewPoint:       make([]float64, n),
		UVI:            make([]float64, n),
		Clouds:         make([]int, n),
		WindSpeed:      make([]float64, n),
		WindGust:       make([]float64, n),
		WindDeg:        make([]int, n),
		Rain:           make([]float64, n),
		Snow:           make([]float64, n),
		Pop:            make([]float64, n),
		TempMorn:       make([]float64, n),
		TempDay:        make([]float64, n),
		TempEve:        make([]float64, n),
		TempNight:      make([]float64, n),
		TempMin:        make([]float64, n),
		TempMax:        make([]float64, n),
		FeelsLikeMorn:  make([]float64, n),
		FeelsLikeDay:   make([]float64, n),
		FeelsLikeEve:   make([]float64, n),
		FeelsLikeNight: make([]float64, n),
		ID:             make([]int, n),
		Main:           make([]string, n),
		Description:    make([]string, n),
		Icon:           make([]string, n),
	}
}

// Cap reports the capacity of d.
func (d *Daily) Cap() int { return len(d.Dt) }

// Reset zeroes all positions of d without changing its capacity.
func (d *Daily) Reset() {
	d.Steps = 0
	clear(d.Dt)
	clear(d.Sunrise)
	clear(d.Sunset)
	clear(d.Pressure)
	clear(d.Humidity)
	clear(d.DewPoint)
	clear(d.UVI)
	clear(d.Clouds)
	clear(d.WindSpeed)
	clear(d.WindGust)
	clear(d.WindDeg)
	clear(d.Rain)
	clear(d.Snow)
	clear(d.Pop)
	clear(d.TempMorn)
	clear(d.TempDay)
	clear(d.TempEve)
	clear(d.TempNight)
	clear(d.TempMin)
	clear(d.TempMax)
	clear(d.FeelsLikeMorn)
	clear(d.FeelsLikeDay)
	clear(d.FeelsLikeEve)
	clear(d.FeelsLikeNight)
	clear(d.ID)
	clear(d.Main)
	clear(d.Description)
	clear(d.Icon)
}

// Used returns a view of d whose columns are limited to the populated steps.
// The view shares storage with d.
func (d *Daily) Used() *Daily {
	n := min(d.Steps, d.Cap())
	return &Daily{
		Steps:          n,
		Dt:             d.Dt[:n:n],
		Sunrise:        d.Sunrise[:n:n],
		Sunset:         d.Sunset[:n:n],
		Pressure:       d.Pressure[:n:n],
		Humidity:       d.Humidity[:n:n],
		DewPoint:       d.DewPoint[:n:n],
		UVI:            d.UVI[:n:n],
		Clouds:         d.Clouds[:n:n],
		WindSpeed:      d.WindSpeed[:n:n],
		WindGust:       d.WindGust[:n:n],
		WindDeg:        d.WindDeg[:n:n],
		Rain:           d.Rain[:n:n],
		Snow:           d.Snow[:n:n],
		Pop:            d.Pop[:n:n],
		TempMorn:       d.TempMorn[:n:n],
		TempDay:        d.TempDay[:n:n],
		TempEve:        d.TempEve[:n:n],
		TempNight:      d.TempNight[:n:n],
		TempMin:        d.TempMin[:n:n],
		TempMax:        d.TempMax[:n:n],
		FeelsLikeMorn:  d.FeelsLikeMorn[:n:n],
		FeelsLikeDay:   d.FeelsLikeDay[:n:n],
		FeelsLikeEve:   d.FeelsLikeEve[:n:n],
		FeelsLikeNight: d.FeelsLikeNight[:n:n],
		ID:             d.ID[:n:n],
		Main:           d.Main[:n:n],
		Description:    d.Description[:n:n],
		Icon:           d.Icon[:n:n],
	}
}
