// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package project_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/creachadair/wxstream/project"
	gojson "github.com/goccy/go-json"
)

// oneCallTree is the subset of a forecast document decoded by the
// tree-building decoders for comparison.
type oneCallTree struct {
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Current struct {
		Dt   int64   `json:"dt"`
		Temp float64 `json:"temp"`
	} `json:"current"`
	Hourly []struct {
		Dt   int64   `json:"dt"`
		Temp float64 `json:"temp"`
	} `json:"hourly"`
	Daily []struct {
		Dt   int64 `json:"dt"`
		Temp struct {
			Min float64 `json:"min"`
			Max float64 `json:"max"`
		} `json:"temp"`
	} `json:"daily"`
}

func BenchmarkProject(b *testing.B) {
	b.Run("Decode", func(b *testing.B) {
		r := newRecords(48, 8)
		b.SetBytes(int64(len(oneCallJSON)))
		for b.Loop() {
			if _, err := project.Decode(bytes.NewReader(oneCallJSON), project.Options{}, r.targets()); err != nil {
				b.Fatalf("Decode: %v", err)
			}
		}
	})

	b.Run("encoding/json", func(b *testing.B) {
		b.SetBytes(int64(len(oneCallJSON)))
		for b.Loop() {
			var v oneCallTree
			if err := json.Unmarshal(oneCallJSON, &v); err != nil {
				b.Fatalf("Unmarshal: %v", err)
			}
		}
	})

	b.Run("go-json", func(b *testing.B) {
		b.SetBytes(int64(len(oneCallJSON)))
		for b.Loop() {
			var v oneCallTree
			if err := gojson.Unmarshal(oneCallJSON, &v); err != nil {
				b.Fatalf("Unmarshal: %v", err)
			}
		}
	})
}
