package layout

import "testing"

func TestNoiseFilter_Defaults(t *testing.T) {
	f, err := NewNoiseFilter()
	if err != nil {
		t.Fatalf("NewNoiseFilter() error: %v", err)
	}

	tests := []struct {
		line string
		want bool
	}{
		{"Page 3", true},
		{"Page 3 of 12", true},
		{"  - 4 -  ", true},
		{"(Continued)", true},
		{"Continued on next page", true},
		{"CONFIDENTIAL", true},
		{"Printed on 01/02/2024 by system", true},
		{"Copyright 2024 Acme", true},
		{"Form LR-1 © 2024 Acme Corp", true},
		{"Form LR-1 Copyright 2024 Acme Corp", true},
		{"2024 Acme Corp. All rights reserved.", true},
		{"ALL RIGHTS  RESERVED", true},
		{"Copyrighted Materials Schedule", false},
		{"Schedule of Locations", false},
		{"Loss History", false},
	}
	for _, tt := range tests {
		if got := f.IsNoise(tt.line); got != tt.want {
			t.Errorf("IsNoise(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestNoiseFilter_ExtraPatterns(t *testing.T) {
	f, err := NewNoiseFilter(`(?i)^acme insurance`)
	if err != nil {
		t.Fatalf("NewNoiseFilter() error: %v", err)
	}
	if !f.IsNoise("ACME Insurance Group") {
		t.Error("Expected extra pattern to match")
	}
}

func TestNoiseFilter_InvalidPattern(t *testing.T) {
	if _, err := NewNoiseFilter(`(`); err == nil {
		t.Error("Expected error for invalid pattern")
	}
}

func TestNoiseFilter_Nil(t *testing.T) {
	var f *NoiseFilter
	if f.IsNoise("Page 1") {
		t.Error("Expected nil filter to match nothing")
	}
}
