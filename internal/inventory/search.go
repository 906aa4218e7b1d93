package inventory

import (
	"strings"

	"github.com/mmynk/autogallery/internal/models"
)

// Filter reports whether a record matches a search criterion.
type Filter func(models.Automobile) bool

// ByMake matches records whose Make equals name, ignoring case.
func ByMake(name string) Filter {
	return func(a models.Automobile) bool {
		return strings.EqualFold(a.Make, name)
	}
}

// ByModel matches records whose Model equals name, ignoring case.
func ByModel(name string) Filter {
	return func(a models.Automobile) bool {
		return strings.EqualFold(a.Model, name)
	}
}

// ByFuelType matches records whose FuelType equals fuel, ignoring case.
func ByFuelType(fuel string) Filter {
	return func(a models.Automobile) bool {
		return strings.EqualFold(a.FuelType, fuel)
	}
}

// ByYearRange matches from <= Year <= to.
func ByYearRange(from, to int) Filter {
	return func(a models.Automobile) bool {
		return from <= a.Year && a.Year <= to
	}
}

// ByPriceRange matches lo <= Price <= hi.
func ByPriceRange(lo, hi float64) Filter {
	return func(a models.Automobile) bool {
		return lo <= a.Price && a.Price <= hi
	}
}

// Search returns the records matching f, in inventory order.
func (inv *Inventory) Search(f Filter) []models.Automobile {
	var results []models.Automobile
	for _, a := range inv.records {
		if f(a) {
			results = append(results, a)
		}
	}
	return results
}
