package inventory

import (
	"errors"
	"testing"

	"github.com/mmynk/autogallery/internal/models"
)

func sampleRecords() []models.Automobile {
	return []models.Automobile{
		{Make: "Toyota", Model: "Corolla", Year: 2020, Price: 25000.0, FuelType: "Petrol", Mileage: 40000},
		{Make: "Renault", Model: "Clio", Year: 2017, Price: 14500.5, FuelType: "Diesel", Mileage: 98000},
		{Make: "Tesla", Model: "Model 3", Year: 2022, Price: 52000.0, FuelType: "Electric", Mileage: 12000},
		{Make: "toyota", Model: "Yaris", Year: 2018, Price: 17000.0, FuelType: "petrol", Mileage: 61000},
	}
}

func TestNewCopiesAndAssignsIDs(t *testing.T) {
	records := sampleRecords()
	inv := New(records)

	if inv.Len() != len(records) {
		t.Fatalf("Len() = %d, want %d", inv.Len(), len(records))
	}
	seen := make(map[string]bool)
	for i, a := range inv.Records() {
		if a.ID == "" {
			t.Errorf("record %d has no ID", i+1)
		}
		if seen[a.ID] {
			t.Errorf("duplicate ID %s", a.ID)
		}
		seen[a.ID] = true
		if !a.SameFields(records[i]) {
			t.Errorf("record %d = %+v, want %+v", i+1, a, records[i])
		}
	}

	records[0].Make = "Changed"
	if got, _ := inv.Get(1); got.Make != "Toyota" {
		t.Error("inventory must not alias the caller's slice")
	}
}

func TestAdd(t *testing.T) {
	inv := New(nil)

	added := inv.Add(models.Automobile{Make: "Fiat", Model: "Egea", Year: 2021, Price: 30000, FuelType: "Diesel", Mileage: 5})
	if added.ID == "" {
		t.Error("Expected ID to be generated")
	}
	if inv.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", inv.Len())
	}

	kept := inv.Add(models.Automobile{ID: "fixed", Make: "Opel"})
	if kept.ID != "fixed" {
		t.Errorf("ID = %q, want existing ID kept", kept.ID)
	}

	last, err := inv.Get(2)
	if err != nil {
		t.Fatalf("Get(2) failed: %v", err)
	}
	if last.Make != "Opel" {
		t.Errorf("Add must append: last Make = %q", last.Make)
	}
}

func TestRecordsReturnsCopy(t *testing.T) {
	inv := New(sampleRecords())

	out := inv.Records()
	out[0].Make = "Mutated"

	if got, _ := inv.Get(1); got.Make != "Toyota" {
		t.Errorf("Records() must return a copy, inventory saw %q", got.Make)
	}
}

func TestGetOutOfRange(t *testing.T) {
	inv := New(sampleRecords())

	for _, pos := range []int{-1, 0, 5, 100} {
		if _, err := inv.Get(pos); !errors.Is(err, ErrInvalidSelection) {
			t.Errorf("Get(%d) error = %v, want ErrInvalidSelection", pos, err)
		}
	}
}

func TestReplace(t *testing.T) {
	inv := New(sampleRecords())
	before, _ := inv.Get(2)

	updated := before
	updated.ID = "ignored"
	updated.Price = 13999.0
	if err := inv.Replace(2, updated); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	after, _ := inv.Get(2)
	if after.Price != 13999.0 {
		t.Errorf("Price = %v, want 13999.0", after.Price)
	}
	if after.ID != before.ID {
		t.Errorf("ID changed from %s to %s", before.ID, after.ID)
	}

	if err := inv.Replace(0, updated); !errors.Is(err, ErrInvalidSelection) {
		t.Errorf("Replace(0) error = %v, want ErrInvalidSelection", err)
	}
}

func TestRemove(t *testing.T) {
	for pos := 1; pos <= len(sampleRecords()); pos++ {
		t.Run("valid position", func(t *testing.T) {
			inv := New(sampleRecords())
			all := inv.Records()

			removed, err := inv.Remove(pos)
			if err != nil {
				t.Fatalf("Remove(%d) failed: %v", pos, err)
			}
			if removed.ID != all[pos-1].ID {
				t.Errorf("Remove(%d) removed %s, want %s", pos, removed.Make, all[pos-1].Make)
			}
			if inv.Len() != len(all)-1 {
				t.Fatalf("Len() = %d, want %d", inv.Len(), len(all)-1)
			}

			want := append(append([]models.Automobile{}, all[:pos-1]...), all[pos:]...)
			for i, a := range inv.Records() {
				if a.ID != want[i].ID {
					t.Errorf("position %d holds %s, want %s", i+1, a.Make, want[i].Make)
				}
			}
		})
	}

	t.Run("invalid positions leave inventory unchanged", func(t *testing.T) {
		inv := New(sampleRecords())
		before := inv.Records()

		for _, pos := range []int{0, -3, len(before) + 1} {
			if _, err := inv.Remove(pos); !errors.Is(err, ErrInvalidSelection) {
				t.Errorf("Remove(%d) error = %v, want ErrInvalidSelection", pos, err)
			}
		}

		after := inv.Records()
		if len(after) != len(before) {
			t.Fatalf("Len() = %d, want %d", len(after), len(before))
		}
		for i := range before {
			if after[i] != before[i] {
				t.Errorf("record %d changed: %+v", i+1, after[i])
			}
		}
	})

	t.Run("empty inventory", func(t *testing.T) {
		inv := New(nil)
		if _, err := inv.Remove(1); !errors.Is(err, ErrInvalidSelection) {
			t.Errorf("Remove(1) on empty inventory error = %v", err)
		}
	})
}
