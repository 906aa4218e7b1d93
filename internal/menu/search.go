package menu

import (
	"context"

	"github.com/mmynk/autogallery/internal/inventory"
)

const searchOptions = "Search by: 1. Make  2. Model  3. Year Range  4. Price Range  5. Fuel Type"

// Search criteria, as numbered in the search prompt.
const (
	searchByMake = iota + 1
	searchByModel
	searchByYear
	searchByPrice
	searchByFuelType
)

// search asks for a criterion and its arguments and prints matching records
// in inventory order. Malformed numbers abort before anything is printed.
func (s *Session) search(ctx context.Context) (outcome, error) {
	s.println(searchOptions)

	choice, err := s.readInt("Enter your choice: ")
	if err != nil {
		return s.rejectInput(err, "Error: Please try again.")
	}

	var filter inventory.Filter
	switch choice {
	case searchByMake:
		name, err := s.readText("Enter Make to search: ")
		if err != nil {
			return "", err
		}
		filter = inventory.ByMake(name)
	case searchByModel:
		name, err := s.readText("Enter Model to search: ")
		if err != nil {
			return "", err
		}
		filter = inventory.ByModel(name)
	case searchByYear:
		from, err := s.readInt("Enter start year: ")
		if err != nil {
			return s.rejectInput(err, "Error: Please try again.")
		}
		to, err := s.readInt("Enter end year: ")
		if err != nil {
			return s.rejectInput(err, "Error: Please try again.")
		}
		filter = inventory.ByYearRange(from, to)
	case searchByPrice:
		lo, err := s.readPrice("Enter minimum price: ")
		if err != nil {
			return s.rejectInput(err, "Error: Please try again.")
		}
		hi, err := s.readPrice("Enter maximum price: ")
		if err != nil {
			return s.rejectInput(err, "Error: Please try again.")
		}
		filter = inventory.ByPriceRange(lo, hi)
	case searchByFuelType:
		fuel, err := s.readText("Enter Fuel Type to search: ")
		if err != nil {
			return "", err
		}
		filter = inventory.ByFuelType(fuel)
	default:
		s.println("Error: Invalid choice.")
		return outcomeInvalidChoice, nil
	}

	results := s.inv.Search(filter)
	if len(results) == 0 {
		s.println("There is no matching automobiles found.")
		return outcomeNoMatch, nil
	}

	s.println("\nSearch Results:")
	s.println(listRule)
	for _, a := range results {
		s.println(a.String())
	}
	s.logger.Debug("Search completed", "criterion", choice, "matches", len(results))
	return outcomeOK, nil
}
