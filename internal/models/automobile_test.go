package models

import (
	"math"
	"testing"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		price float64
		want  string
	}{
		{25000.0, "25000.0"},
		{0, "0.0"},
		{24999.99, "24999.99"},
		{1234567.5, "1234567.5"},
		{-3, "-3.0"},
		{0.00001, "1e-05"},
		{1e16, "1e+16"},
		{math.Inf(1), "inf"},
		{math.NaN(), "nan"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatPrice(tt.price); got != tt.want {
				t.Errorf("FormatPrice(%v) = %q, want %q", tt.price, got, tt.want)
			}
		})
	}
}

func TestFormatPriceRoundTrips(t *testing.T) {
	for _, p := range []float64{25000.0, 0.1, 1.0 / 3.0, 99999.95, 1e-7, 3.5e20} {
		got, err := ParsePrice(FormatPrice(p))
		if err != nil {
			t.Fatalf("ParsePrice(FormatPrice(%v)) failed: %v", p, err)
		}
		if got != p {
			t.Errorf("round trip of %v gave %v", p, got)
		}
	}
}

func TestAutomobileString(t *testing.T) {
	a := Automobile{Make: "Toyota", Model: "Corolla", Year: 2020, Price: 25000.0, FuelType: "Petrol", Mileage: 40000}

	want := "Toyota Corolla (2020) - 25000.0 TRY - Petrol - 40000 km"
	if got := a.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestSameFieldsIgnoresID(t *testing.T) {
	a := Automobile{ID: "a", Make: "Fiat", Model: "Egea", Year: 2019, Price: 1, FuelType: "Diesel", Mileage: 2}
	b := a
	b.ID = "b"
	if !a.SameFields(b) {
		t.Error("records differing only by ID should compare equal")
	}

	b.Mileage = 3
	if a.SameFields(b) {
		t.Error("records with different mileage should not compare equal")
	}
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"2020", 2020, false},
		{" 40000 ", 40000, false},
		{"+5", 5, false},
		{"-1", -1, false},
		{"40_000", 40000, false},
		{"1_000_000", 1000000, false},
		{"_40", 0, true},
		{"40_", 0, true},
		{"4__0", 0, true},
		{"", 0, true},
		{"20.5", 0, true},
		{"abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseInt(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseInt(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseInt(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{"25000", 25000, false},
		{"25000.0", 25000, false},
		{" 19999.5\t", 19999.5, false},
		{"1e3", 1000, false},
		{"25_000.5", 25000.5, false},
		{"1_0e1_0", 10e10, false},
		{"25_.5", 0, true},
		{"", 0, true},
		{"cheap", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePrice(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePrice(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParsePrice(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
