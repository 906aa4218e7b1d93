package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Automobile represents a single vehicle record.
type Automobile struct {
	// ID is a session-scoped identifier (UUID format), assigned when the
	// record enters the inventory. It is not written to the data file.
	ID string

	// Make is the manufacturer (e.g., "Toyota").
	Make string

	// Model is the model name (e.g., "Corolla").
	Model string

	// Year is the model year.
	Year int

	// Price is the asking price in TRY.
	Price float64

	// FuelType is conventionally Petrol, Diesel or Electric. Not enforced.
	FuelType string

	// Mileage is the odometer reading in kilometers.
	Mileage int
}

// String renders the record as "Make Model (Year) - Price TRY - FuelType - Mileage km".
func (a Automobile) String() string {
	return fmt.Sprintf("%s %s (%d) - %s TRY - %s - %d km",
		a.Make, a.Model, a.Year, FormatPrice(a.Price), a.FuelType, a.Mileage)
}

// SameFields reports whether two records hold the same data, ignoring ID.
func (a Automobile) SameFields(b Automobile) bool {
	return a.Make == b.Make &&
		a.Model == b.Model &&
		a.Year == b.Year &&
		a.Price == b.Price &&
		a.FuelType == b.FuelType &&
		a.Mileage == b.Mileage
}

// FormatPrice prints p in its shortest round-trippable form. Integral values
// keep a ".0" suffix; magnitudes below 1e-4 or at least 1e16 use exponent form.
func FormatPrice(p float64) string {
	switch {
	case math.IsNaN(p):
		return "nan"
	case math.IsInf(p, 1):
		return "inf"
	case math.IsInf(p, -1):
		return "-inf"
	}

	if abs := math.Abs(p); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(p, 'e', -1, 64)
	}

	s := strconv.FormatFloat(p, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// ParseInt parses a whole number, ignoring surrounding whitespace. Single
// underscores between digits are accepted as separators ("40_000").
func ParseInt(s string) (int, error) {
	n, err := strconv.Atoi(stripDigitSeparators(strings.TrimSpace(s)))
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q: %w", s, err)
	}
	return n, nil
}

// ParsePrice parses a floating-point amount, ignoring surrounding whitespace.
// Digit separators are accepted as in ParseInt.
func ParsePrice(s string) (float64, error) {
	p, err := strconv.ParseFloat(stripDigitSeparators(strings.TrimSpace(s)), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q: %w", s, err)
	}
	return p, nil
}

// stripDigitSeparators removes underscores that sit between two digits. If any
// underscore is misplaced, s is returned unchanged so parsing rejects it.
func stripDigitSeparators(s string) string {
	if !strings.Contains(s, "_") {
		return s
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			continue
		}
		if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
			return s
		}
	}
	return strings.ReplaceAll(s, "_", "")
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}
