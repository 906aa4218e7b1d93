package menu

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mmynk/autogallery/internal/inventory"
	"github.com/mmynk/autogallery/internal/models"
)

const listRule = "****************"

// add prompts for every field and appends the new record. The first answer
// that fails to parse aborts the operation before anything is stored.
func (s *Session) add(ctx context.Context) (outcome, error) {
	var (
		a   models.Automobile
		err error
	)

	if a.Make, err = s.readText("Enter Make: "); err != nil {
		return "", err
	}
	if a.Model, err = s.readText("Enter Model: "); err != nil {
		return "", err
	}
	if a.Year, err = s.readInt("Enter Year: "); err != nil {
		return s.rejectInput(err, "Error: Invalid input.")
	}
	if a.Price, err = s.readPrice("Enter Price (TRY): "); err != nil {
		return s.rejectInput(err, "Error: Invalid input.")
	}
	if a.FuelType, err = s.readText("Enter Fuel Type (Petrol/Diesel/Electric): "); err != nil {
		return "", err
	}
	if a.Mileage, err = s.readInt("Enter Mileage (km): "); err != nil {
		return s.rejectInput(err, "Error: Invalid input.")
	}

	added := s.inv.Add(a)
	s.println("Automobile added successfully!")
	s.logger.Debug("Automobile added", "id", added.ID, "make", added.Make, "model", added.Model)
	return outcomeOK, nil
}

// list prints every record with its 1-based position.
func (s *Session) list(ctx context.Context) (outcome, error) {
	if s.inv.Len() == 0 {
		s.println("No automobiles in the system.")
		return outcomeEmpty, nil
	}

	s.println("\nAutomobile List:")
	s.println(listRule)
	for i, a := range s.inv.Records() {
		s.printf("%d. %s\n", i+1, a)
	}
	return outcomeOK, nil
}

// update lets the user edit one record. Blank answers keep the current value.
// Answers are staged on a copy that replaces the stored record only once every
// field has parsed, so a bad answer leaves the record unchanged.
func (s *Session) update(ctx context.Context) (outcome, error) {
	if _, err := s.list(ctx); err != nil {
		return "", err
	}

	pos, err := s.readInt("Enter the number of the automobile to update: ")
	if err != nil {
		return s.rejectInput(err, "Error: Invalid input.")
	}
	current, err := s.inv.Get(pos)
	if errors.Is(err, inventory.ErrInvalidSelection) {
		s.println("Error: Invalid selection.")
		s.logger.Debug("Rejected selection", "error", err)
		return outcomeInvalidSelection, nil
	}
	if err != nil {
		return "", err
	}

	s.println("Leave fields blank to keep current values. (for leave blank please click on Enter)")

	next := current
	if next.Make, err = s.readTextDefault("Make", current.Make); err != nil {
		return "", err
	}
	if next.Model, err = s.readTextDefault("Model", current.Model); err != nil {
		return "", err
	}
	if next.Year, err = s.readIntDefault("Year", current.Year); err != nil {
		return s.rejectInput(err, "Error: Invalid input.")
	}
	if next.Price, err = s.readPriceDefault("Price", current.Price); err != nil {
		return s.rejectInput(err, "Error: Invalid input.")
	}
	if next.FuelType, err = s.readTextDefault("Fuel Type", current.FuelType); err != nil {
		return "", err
	}
	if next.Mileage, err = s.readIntDefault("Mileage", current.Mileage); err != nil {
		return s.rejectInput(err, "Error: Invalid input.")
	}

	if err := s.inv.Replace(pos, next); err != nil {
		return "", err
	}
	s.println("Automobile updated successfully!")
	s.logger.Debug("Automobile updated", "id", current.ID, "position", pos)
	return outcomeOK, nil
}

// remove deletes one record chosen by position.
func (s *Session) remove(ctx context.Context) (outcome, error) {
	if _, err := s.list(ctx); err != nil {
		return "", err
	}

	pos, err := s.readInt("Enter the number of the automobile to remove: ")
	if err != nil {
		return s.rejectInput(err, "Error: Invalid input.")
	}
	removed, err := s.inv.Remove(pos)
	if errors.Is(err, inventory.ErrInvalidSelection) {
		s.println("Error: Invalid selection.")
		s.logger.Debug("Rejected selection", "error", err)
		return outcomeInvalidSelection, nil
	}
	if err != nil {
		return "", err
	}

	s.printf("Removed automobile: %s %s\n", removed.Make, removed.Model)
	s.logger.Debug("Automobile removed", "id", removed.ID, "position", pos)
	return outcomeOK, nil
}

// readTextDefault trims the answer like add does; a blank answer keeps current.
func (s *Session) readTextDefault(field, current string) (string, error) {
	answer, err := s.prompt(fmt.Sprintf("Enter %s (%s): ", field, current))
	if err != nil {
		return "", err
	}
	if answer = strings.TrimSpace(answer); answer == "" {
		return current, nil
	}
	return answer, nil
}

func (s *Session) readIntDefault(field string, current int) (int, error) {
	answer, err := s.prompt(fmt.Sprintf("Enter %s (%d): ", field, current))
	if err != nil {
		return 0, err
	}
	if strings.TrimSpace(answer) == "" {
		return current, nil
	}
	n, err := models.ParseInt(answer)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errInvalidInput, err)
	}
	return n, nil
}

func (s *Session) readPriceDefault(field string, current float64) (float64, error) {
	answer, err := s.prompt(fmt.Sprintf("Enter %s (%s): ", field, models.FormatPrice(current)))
	if err != nil {
		return 0, err
	}
	if strings.TrimSpace(answer) == "" {
		return current, nil
	}
	p, err := models.ParsePrice(answer)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errInvalidInput, err)
	}
	return p, nil
}
