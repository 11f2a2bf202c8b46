// Stationdata - Climate Station Metadata Service
// Copyright 2026 Meteonet
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/meteonet/stationdata

package api

import (
	"reflect"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/meteonet/stationdata/internal/models"
)

func strPtr(s string) *string        { return &s }
func floatPtr(f float64) *float64    { return &f }
func timePtr(t time.Time) *time.Time { return &t }

func jsonKeys(t *testing.T, v interface{}) map[string]interface{} {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return m
}

func TestHistoryRepCompactIsSubsetOfFull(t *testing.T) {
	h := models.HistoryWithStats{
		History: models.History{
			ID:          10,
			StationName: strPtr("Somewhere Upper"),
			Lon:         floatPtr(-123.5),
			Lat:         floatPtr(49.2),
			Elevation:   floatPtr(330),
			Province:    strPtr("BC"),
			Freq:        strPtr("daily"),
			Sdate:       timePtr(time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)),
			TZOffset:    strPtr("-08:00:00"),
			Country:     strPtr("Canada"),
		},
		Stats: &models.ObsStats{
			MinObsTime: timePtr(time.Date(1990, 2, 1, 0, 0, 0, 0, time.UTC)),
			MaxObsTime: timePtr(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)),
		},
	}

	compact := jsonKeys(t, historyRep(h, []int64{1, 2}, true, false))
	full := jsonKeys(t, historyRep(h, []int64{1, 2}, false, false))

	for key := range compact {
		if _, ok := full[key]; !ok {
			t.Errorf("compact key %q missing from full representation", key)
		}
	}
	for _, key := range []string{"sdate", "edate", "tz_offset", "country"} {
		if _, ok := compact[key]; ok {
			t.Errorf("compact representation must not contain %q", key)
		}
		if _, ok := full[key]; !ok {
			t.Errorf("full representation missing %q", key)
		}
	}
}

func TestHistoryRepNilStats(t *testing.T) {
	h := models.HistoryWithStats{History: models.History{ID: 7}}

	rep := jsonKeys(t, historyRep(h, nil, true, false))

	if rep["min_obs_time"] != nil {
		t.Errorf("min_obs_time = %v, want null", rep["min_obs_time"])
	}
	if rep["max_obs_time"] != nil {
		t.Errorf("max_obs_time = %v, want null", rep["max_obs_time"])
	}
	ids, ok := rep["variable_ids"].([]interface{})
	if !ok || len(ids) != 0 {
		t.Errorf("variable_ids = %v, want empty array", rep["variable_ids"])
	}
}

func TestHistoryRepURIOnlyWhenRequested(t *testing.T) {
	h := models.HistoryWithStats{History: models.History{ID: 33}}

	withURI := jsonKeys(t, historyRep(h, nil, true, true))
	withoutURI := jsonKeys(t, historyRep(h, nil, true, false))

	if got := withURI["uri"]; got != "/histories/33" {
		t.Errorf("uri = %v, want /histories/33", got)
	}
	if _, ok := withoutURI["uri"]; ok {
		t.Error("collection item should not contain uri")
	}
}

func TestStationRepCollapsedHistories(t *testing.T) {
	s := models.StationWithHistoryIDs{
		Station:    models.Station{ID: 5, NetworkID: 2},
		HistoryIDs: []int64{10, 11},
	}

	rep := jsonKeys(t, stationRep(s, nil, nil, true, false))

	histories, ok := rep["histories"].([]interface{})
	if !ok {
		t.Fatalf("histories = %T, want array", rep["histories"])
	}
	if len(histories) != 2 {
		t.Fatalf("got %d history refs, want 2", len(histories))
	}
	first, ok := histories[0].(map[string]interface{})
	if !ok {
		t.Fatalf("history ref = %T, want object", histories[0])
	}
	if len(first) != 1 || first["id"] != float64(10) {
		t.Errorf("history ref = %v, want {id: 10}", first)
	}
}

func TestStationRepExpandedHistories(t *testing.T) {
	s := models.StationWithHistoryIDs{Station: models.Station{ID: 5, NetworkID: 2}}
	histories := []models.HistoryWithStats{
		{History: models.History{ID: 10, StationID: 5}},
	}
	varsByHistory := map[int][]int64{10: {3, 4}}

	rep := jsonKeys(t, stationRep(s, histories, varsByHistory, true, true))

	nested, ok := rep["histories"].([]interface{})
	if !ok || len(nested) != 1 {
		t.Fatalf("histories = %v, want one nested rep", rep["histories"])
	}
	hist := nested[0].(map[string]interface{})
	if hist["id"] != float64(10) {
		t.Errorf("nested history id = %v, want 10", hist["id"])
	}
	ids, ok := hist["variable_ids"].([]interface{})
	if !ok || len(ids) != 2 {
		t.Errorf("variable_ids = %v, want [3 4]", hist["variable_ids"])
	}
	if _, ok := hist["uri"]; ok {
		t.Error("nested history should not contain uri")
	}
}

func TestStationRepCompactOmitsObsBounds(t *testing.T) {
	s := models.StationWithHistoryIDs{
		Station: models.Station{
			ID:         5,
			NetworkID:  2,
			MinObsTime: timePtr(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)),
		},
	}

	compact := jsonKeys(t, stationRep(s, nil, nil, true, false))
	full := jsonKeys(t, stationRep(s, nil, nil, false, false))

	if _, ok := compact["min_obs_time"]; ok {
		t.Error("compact station must not contain min_obs_time")
	}
	if _, ok := full["min_obs_time"]; !ok {
		t.Error("full station missing min_obs_time")
	}
	if full["network_uri"] != "/networks/2" {
		t.Errorf("network_uri = %v, want /networks/2", full["network_uri"])
	}
}

func TestIsExpanded(t *testing.T) {
	tests := []struct {
		item   string
		expand string
		want   bool
	}{
		{"histories", "histories", true},
		{"histories", "histories,variables", true},
		{"histories", "*", true},
		{"histories", "", false},
		{"histories", "variables", false},
		{"histories", "histor", false},
	}
	for _, tt := range tests {
		if got := isExpanded(tt.item, tt.expand); got != tt.want {
			t.Errorf("isExpanded(%q, %q) = %v, want %v", tt.item, tt.expand, got, tt.want)
		}
	}
}

func TestVariableTags(t *testing.T) {
	tests := []struct {
		displayName string
		want        []string
	}{
		{"Temperature Climatology (Max.)", []string{"climatology"}},
		{"Precipitation Climatology", []string{"climatology"}},
		{"CLIMATOLOGICAL mean", []string{"climatology"}},
		{"Air Temperature", []string{"observation"}},
		{"", []string{"observation"}},
	}
	for _, tt := range tests {
		if got := variableTags(tt.displayName); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("variableTags(%q) = %v, want %v", tt.displayName, got, tt.want)
		}
	}
}

func TestNetworkRep(t *testing.T) {
	n := models.NetworkWithStationCount{
		Network: models.Network{
			ID:      3,
			Name:    strPtr("EC"),
			Publish: true,
		},
		StationCount: 41,
	}

	rep := networkRep(n)

	if rep.URI != "/networks/3" {
		t.Errorf("uri = %q, want /networks/3", rep.URI)
	}
	if rep.StationCount != 41 {
		t.Errorf("station_count = %d, want 41", rep.StationCount)
	}
}
