package core

import (
	"errors"
	"testing"
)

func TestSizeDimensions(t *testing.T) {
	tests := []struct {
		size  Size
		dims  string
		label string
	}{
		{SizeSquare, "1024x1024", "Square (1024x1024)"},
		{SizePortrait, "1024x1792", "Portrait (1024x1792)"},
		{SizeLandscape, "1792x1024", "Landscape (1792x1024)"},
	}

	for _, tt := range tests {
		if !tt.size.IsValid() {
			t.Errorf("Size(%q).IsValid() = false, want true", tt.size)
		}
		if got := tt.size.Dimensions(); got != tt.dims {
			t.Errorf("Size(%q).Dimensions() = %q, want %q", tt.size, got, tt.dims)
		}
		if got := tt.size.Label(); got != tt.label {
			t.Errorf("Size(%q).Label() = %q, want %q", tt.size, got, tt.label)
		}
	}
}

func TestUnknownSizePassesThrough(t *testing.T) {
	s := Size("512x512")
	if s.IsValid() {
		t.Error("IsValid() = true, want false")
	}
	if got := s.Dimensions(); got != "512x512" {
		t.Errorf("Dimensions() = %q, want %q", got, "512x512")
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		want    Size
		wantErr bool
	}{
		{"square", SizeSquare, false},
		{" Portrait ", SizePortrait, false},
		{"1792x1024", SizeLandscape, false},
		{"tiny", "", true},
	}

	for _, tt := range tests {
		got, err := ParseSize(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidOption) {
				t.Errorf("ParseSize(%q) error = %v, want ErrInvalidOption", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseSize(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseSize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseQuality(t *testing.T) {
	if got, err := ParseQuality("HD"); err != nil || got != QualityHD {
		t.Errorf("ParseQuality(HD) = %q, %v, want %q", got, err, QualityHD)
	}
	if got, err := ParseQuality("standard"); err != nil || got != QualityStandard {
		t.Errorf("ParseQuality(standard) = %q, %v, want %q", got, err, QualityStandard)
	}

	_, err := ParseQuality("ultra")
	f, ok := AsFailure(err)
	if !ok || f.Kind != FailureValidation {
		t.Errorf("ParseQuality(ultra) error = %v, want validation failure", err)
	}
}

func TestStylesNaturalFirst(t *testing.T) {
	got := Styles()
	if len(got) != 10 {
		t.Fatalf("len(Styles()) = %d, want 10", len(got))
	}
	if got[0] != StyleNatural {
		t.Errorf("Styles()[0] = %q, want %q", got[0], StyleNatural)
	}

	// Mutating the copy must not affect the package list.
	got[0] = "Broken"
	if Styles()[0] != StyleNatural {
		t.Error("Styles() returned shared slice")
	}
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		in      string
		want    Style
		wantErr bool
	}{
		{"", StyleNatural, false},
		{"anime", StyleAnime, false},
		{"oil painting", StyleOilPainting, false},
		{"Cyberpunk", StyleCyberpunk, false},
		{"baroque", "", true},
	}

	for _, tt := range tests {
		got, err := ParseStyle(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseStyle(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseStyle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStyleIsNatural(t *testing.T) {
	if !Style("").IsNatural() {
		t.Error(`Style("").IsNatural() = false, want true`)
	}
	if !StyleNatural.IsNatural() {
		t.Error("StyleNatural.IsNatural() = false, want true")
	}
	if StyleWatercolor.IsNatural() {
		t.Error("StyleWatercolor.IsNatural() = true, want false")
	}
}
