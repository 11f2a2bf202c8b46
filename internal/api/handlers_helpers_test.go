// Stationdata - Climate Station Metadata Service
// Copyright 2026 Meteonet
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/meteonet/stationdata

package api

import (
	"net/http/httptest"
	"reflect"
	"testing"
	"time"
)

func TestGetIntParam(t *testing.T) {
	tests := []struct {
		query string
		want  int
	}{
		{"limit=50", 50},
		{"limit=0", 0},
		{"limit=", 10},
		{"", 10},
		{"limit=abc", 10},
	}
	for _, tt := range tests {
		r := httptest.NewRequest("GET", "/stations?"+tt.query, nil)
		if got := getIntParam(r, "limit", 10); got != tt.want {
			t.Errorf("query %q: got %d, want %d", tt.query, got, tt.want)
		}
	}
}

func TestGetBoolParam(t *testing.T) {
	tests := []struct {
		query        string
		defaultValue bool
		want         bool
	}{
		{"compact=true", false, true},
		{"compact=false", true, false},
		{"compact=1", false, true},
		{"compact=0", true, false},
		{"", true, true},
		{"", false, false},
		{"compact=yes", false, false},
	}
	for _, tt := range tests {
		r := httptest.NewRequest("GET", "/stations?"+tt.query, nil)
		if got := getBoolParam(r, "compact", tt.defaultValue); got != tt.want {
			t.Errorf("query %q default %v: got %v, want %v", tt.query, tt.defaultValue, got, tt.want)
		}
	}
}

func TestGetStringParamPtr(t *testing.T) {
	r := httptest.NewRequest("GET", "/stations", nil)
	if got := getStringParamPtr(r, "provinces"); got != nil {
		t.Errorf("absent parameter: got %q, want nil", *got)
	}

	r = httptest.NewRequest("GET", "/stations?provinces=", nil)
	if got := getStringParamPtr(r, "provinces"); got == nil || *got != "" {
		t.Errorf("empty parameter: got %v, want empty string", got)
	}

	r = httptest.NewRequest("GET", "/stations?provinces=BC", nil)
	if got := getStringParamPtr(r, "provinces"); got == nil || *got != "BC" {
		t.Errorf("got %v, want BC", got)
	}
}

func TestParseCommaSeparatedInts(t *testing.T) {
	tests := []struct {
		in      string
		want    []int
		wantErr bool
	}{
		{"", nil, false},
		{"5", []int{5}, false},
		{"5,6,7", []int{5, 6, 7}, false},
		{" 5 , 6 ", []int{5, 6}, false},
		{"5,,6", []int{5, 6}, false},
		{",", nil, false},
		{" , ", nil, false},
		{",,,", nil, false},
		{"5,x", nil, true},
	}
	for _, tt := range tests {
		got, err := parseCommaSeparatedInts(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseCommaSeparatedInts(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseCommaSeparatedInts(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseDateParam(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Time
		wantNil bool
		wantErr bool
	}{
		{in: "", wantNil: true},
		{in: "2020-01-15", want: time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC)},
		{in: "2020-01-15T06:30:00", want: time.Date(2020, 1, 15, 6, 30, 0, 0, time.UTC)},
		{in: "2020-01-15T06:30:00Z", want: time.Date(2020, 1, 15, 6, 30, 0, 0, time.UTC)},
		{in: "January 15 2020", wantErr: true},
		{in: "2020-13-01", wantErr: true},
	}
	for _, tt := range tests {
		got, err := parseDateParam(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseDateParam(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if tt.wantErr {
			continue
		}
		if tt.wantNil {
			if got != nil {
				t.Errorf("parseDateParam(%q) = %v, want nil", tt.in, got)
			}
			continue
		}
		if got == nil || !got.Equal(tt.want) {
			t.Errorf("parseDateParam(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
