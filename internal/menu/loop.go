package menu

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"time"

	"github.com/mmynk/autogallery/internal/storage"
)

// outcome classifies how an operation ended, for logs and metrics.
type outcome string

const (
	outcomeOK               outcome = "ok"
	outcomeEmpty            outcome = "empty"
	outcomeNoMatch          outcome = "no_match"
	outcomeInvalidInput     outcome = "invalid_input"
	outcomeInvalidSelection outcome = "invalid_selection"
	outcomeInvalidChoice    outcome = "invalid_choice"
	outcomeSaveFailed       outcome = "save_failed"
)

const mainMenu = "\nAutomobile Gallery Management\n" +
	"1. Add Automobile\n" +
	"2. Update Automobile\n" +
	"3. Remove Automobile\n" +
	"4. List Automobiles\n" +
	"5. Search Automobiles\n" +
	"6. Exit\n"

// Main menu choices.
const (
	choiceAdd = iota + 1
	choiceUpdate
	choiceRemove
	choiceList
	choiceSearch
	choiceExit
)

type operation func(ctx context.Context) (outcome, error)

// Run shows the main menu until the user exits or input runs out. Choosing
// Exit saves the inventory; running out of input ends the session without
// saving. Only input read failures and context cancellation are returned.
func (s *Session) Run(ctx context.Context) error {
	s.logger.Info("Session started", "records", s.inv.Len())

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.printf("%s", mainMenu)
		choice, err := s.readInt("Enter your choice: ")
		if errors.Is(err, errInvalidInput) {
			s.println("Error: Please enter a valid number.")
			continue
		}
		if err != nil {
			return s.endOfInput(err)
		}

		var (
			name string
			op   operation
		)
		switch choice {
		case choiceAdd:
			name, op = "add", s.add
		case choiceUpdate:
			name, op = "update", s.update
		case choiceRemove:
			name, op = "remove", s.remove
		case choiceList:
			name, op = "list", s.list
		case choiceSearch:
			name, op = "search", s.search
		case choiceExit:
			if err := s.dispatch(ctx, "save", s.save); err != nil {
				return err
			}
			s.println("Changes saved.\n")
			s.println("Exiting...Have a good day! ")
			s.logger.Info("Session ended", "records", s.inv.Len())
			return nil
		default:
			s.println("Error: Please select from the menu.")
			continue
		}

		if err := s.dispatch(ctx, name, op); err != nil {
			return s.endOfInput(err)
		}
	}
}

// dispatch runs op and logs its name, outcome and duration.
func (s *Session) dispatch(ctx context.Context, name string, op operation) error {
	start := time.Now()

	result, err := op(ctx)

	duration := time.Since(start).Milliseconds()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			s.logger.Error("Operation failed", "operation", name, "error", err, "duration_ms", duration)
		}
		return err
	}

	s.metrics.ObserveOperation(name, string(result))
	s.metrics.SetRecords(s.inv.Len())
	s.logger.Info("Operation completed",
		"operation", name,
		"outcome", result,
		"records", s.inv.Len(),
		"duration_ms", duration,
	)
	return nil
}

// endOfInput treats exhausted input as a normal end of session.
func (s *Session) endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		s.println("")
		s.logger.Info("Input closed, ending session without saving", "records", s.inv.Len())
		return nil
	}
	return err
}

// save persists the inventory. Failures are reported to the user and
// absorbed so the session can still end normally.
func (s *Session) save(ctx context.Context) (outcome, error) {
	err := s.store.Save(ctx, s.inv.Records())
	switch {
	case err == nil:
		s.println("Data saved successfully!")
		s.logger.Info("Records saved", "location", s.store.Location(), "records", s.inv.Len())
		return outcomeOK, nil
	case errors.Is(err, storage.ErrNothingToSave):
		s.println("There is no data to save.")
		return outcomeEmpty, nil
	case errors.Is(err, fs.ErrNotExist):
		s.println("Error: File not found.")
	default:
		s.printf("Error while saving data: %v\n", err)
	}
	s.logger.Error("Failed to save records", "location", s.store.Location(), "error", err)
	return outcomeSaveFailed, nil
}
