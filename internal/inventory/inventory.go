// Package inventory holds the in-memory, ordered sequence of automobile
// records for one session.
//
// Records are addressed by 1-based position. Positions are not stable:
// removing a record shifts every later record down by one, so a position
// shown to the user is only valid until the next removal.
package inventory

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mmynk/autogallery/internal/models"
)

// ErrInvalidSelection is returned when a position is outside [1, Len()].
var ErrInvalidSelection = errors.New("invalid selection")

// Inventory is an ordered collection of automobiles. It is not safe for
// concurrent use; a session owns exactly one.
type Inventory struct {
	records []models.Automobile
}

// New creates an inventory holding a copy of records, in order.
// Records without an ID are assigned one.
func New(records []models.Automobile) *Inventory {
	inv := &Inventory{records: make([]models.Automobile, 0, len(records))}
	for _, a := range records {
		inv.Add(a)
	}
	return inv
}

// Len returns the number of records.
func (inv *Inventory) Len() int {
	return len(inv.records)
}

// Records returns a copy of all records in order.
func (inv *Inventory) Records() []models.Automobile {
	out := make([]models.Automobile, len(inv.records))
	copy(out, inv.records)
	return out
}

// Add appends a record and returns it with its ID populated.
func (inv *Inventory) Add(a models.Automobile) models.Automobile {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	inv.records = append(inv.records, a)
	return a
}

// Get returns the record at the 1-based position pos.
func (inv *Inventory) Get(pos int) (models.Automobile, error) {
	if err := inv.checkPosition(pos); err != nil {
		return models.Automobile{}, err
	}
	return inv.records[pos-1], nil
}

// Replace overwrites the record at pos with a. The stored ID is kept.
func (inv *Inventory) Replace(pos int, a models.Automobile) error {
	if err := inv.checkPosition(pos); err != nil {
		return err
	}
	a.ID = inv.records[pos-1].ID
	inv.records[pos-1] = a
	return nil
}

// Remove deletes the record at pos and returns it.
func (inv *Inventory) Remove(pos int) (models.Automobile, error) {
	if err := inv.checkPosition(pos); err != nil {
		return models.Automobile{}, err
	}
	removed := inv.records[pos-1]
	inv.records = append(inv.records[:pos-1], inv.records[pos:]...)
	return removed, nil
}

func (inv *Inventory) checkPosition(pos int) error {
	if pos < 1 || pos > len(inv.records) {
		return fmt.Errorf("%w: position %d not in [1, %d]", ErrInvalidSelection, pos, len(inv.records))
	}
	return nil
}
