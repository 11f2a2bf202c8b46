// Stationdata - Climate Station Metadata Service
// Copyright 2026 Meteonet
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/meteonet/stationdata

package validation

import (
	"strings"
	"testing"
)

type sampleRequest struct {
	Variable string `validate:"required,oneof=tmax tmin precip"`
	Year     int    `validate:"min=1800,max=2100"`
	Month    int    `validate:"min=1,max=12"`
	Date     string `validate:"omitempty,datetime=2006-01-02"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		req         sampleRequest
		wantErr     bool
		wantMessage string
	}{
		{
			name:    "valid",
			req:     sampleRequest{Variable: "tmax", Year: 2000, Month: 1},
			wantErr: false,
		},
		{
			name:        "missing variable",
			req:         sampleRequest{Year: 2000, Month: 1},
			wantErr:     true,
			wantMessage: "variable is required",
		},
		{
			name:        "bad variable",
			req:         sampleRequest{Variable: "snow", Year: 2000, Month: 1},
			wantErr:     true,
			wantMessage: "variable must be one of",
		},
		{
			name:        "month out of range",
			req:         sampleRequest{Variable: "tmin", Year: 2000, Month: 13},
			wantErr:     true,
			wantMessage: "month must be at most 12",
		},
		{
			name:        "bad date format",
			req:         sampleRequest{Variable: "tmin", Year: 2000, Month: 2, Date: "01/02/2000"},
			wantErr:     true,
			wantMessage: "date must be a date in format",
		},
		{
			name:    "valid with date",
			req:     sampleRequest{Variable: "precip", Year: 2000, Month: 2, Date: "2000-01-31"},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateStruct() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !strings.Contains(err.Error(), tt.wantMessage) {
				t.Errorf("error message %q does not contain %q", err.Error(), tt.wantMessage)
			}
		})
	}
}

func TestValidateStructMultipleFailures(t *testing.T) {
	req := sampleRequest{Variable: "snow", Year: 1000, Month: 0}
	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if len(err.Fields()) != 3 {
		t.Errorf("expected 3 field errors, got %d: %v", len(err.Fields()), err)
	}
}
