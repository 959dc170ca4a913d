// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package weather_test

import (
	"reflect"
	"testing"

	"github.com/creachadair/mds/mtest"
	"github.com/creachadair/wxstream/weather"
	"github.com/google/go-cmp/cmp"
)

// checkColumns verifies that every slice field of the struct pointed to by v
// has length n.
func checkColumns(t *testing.T, v any, n int) {
	t.Helper()
	rv := reflect.ValueOf(v).Elem()
	for i := range rv.NumField() {
		f := rv.Field(i)
		if f.Kind() != reflect.Slice {
			continue
		}
		if f.Len() != n {
			t.Errorf("%T.%s: len = %d, want %d", v, rv.Type().Field(i).Name, f.Len(), n)
		}
	}
}

func TestHourly(t *testing.T) {
	h := weather.NewHourly(4)
	if got := h.Cap(); got != 4 {
		t.Errorf("Cap: got %d, want 4", got)
	}
	checkColumns(t, h, 4)

	h.Steps = 2
	h.Dt[0], h.Dt[1] = 100, 200
	h.Temp[1] = 21.5
	h.Description[0] = "clear sky"

	u := h.Used()
	checkColumns(t, u, 2)
	if diff := cmp.Diff([]int64{100, 200}, u.Dt); diff != "" {
		t.Errorf("Used Dt (-want, +got):\n%s", diff)
	}
	u.Temp[0] = -1
	if h.Temp[0] != -1 {
		t.Error("Used view does not share storage")
	}

	// An inconsistent step count does not exceed the capacity.
	h.Steps = 10
	checkColumns(t, h.Used(), 4)

	h.Reset()
	if diff := cmp.Diff(weather.NewHourly(4), h); diff != "" {
		t.Errorf("After Reset (-want, +got):\n%s", diff)
	}

	empty := weather.NewHourly(0)
	checkColumns(t, empty, 0)
	checkColumns(t, empty.Used(), 0)

	mtest.MustPanic(t, func() { weather.NewHourly(-1) })
}

func TestDaily(t *testing.T) {
	d := weather.NewDaily(3)
	if got := d.Cap(); got != 3 {
		t.Errorf("Cap: got %d, want 3", got)
	}
	checkColumns(t, d, 3)

	d.Steps = 1
	d.TempMin[0], d.TempMax[0] = 3.5, 12
	d.Icon[2] = "01d"

	u := d.Used()
	checkColumns(t, u, 1)
	if u.TempMin[0] != 3.5 || u.TempMax[0] != 12 {
		t.Errorf("Used: got min/max %v/%v, want 3.5/12", u.TempMin[0], u.TempMax[0])
	}

	d.Reset()
	if diff := cmp.Diff(weather.NewDaily(3), d); diff != "" {
		t.Errorf("After Reset (-want, +got):\n%s", diff)
	}

	mtest.MustPanic(t, func() { weather.NewDaily(-2) })
}

func TestCurrentReset(t *testing.T) {
	c := &weather.Current{Dt: 1, Temp: 20, Main: "Rain", CityName: "Bergen"}
	c.Reset()
	if diff := cmp.Diff(weather.Current{}, *c); diff != "" {
		t.Errorf("After Reset (-want, +got):\n%s", diff)
	}
}
