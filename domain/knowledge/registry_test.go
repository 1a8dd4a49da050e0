package knowledge

import (
	"testing"

	"cropsense/domain/agronomy"
)

func TestRegistry_LookupCaseInsensitive(t *testing.T) {
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	for _, id := range []string{"rice", "Rice", "RICE", "  rice  "} {
		record, ok := registry.Lookup(id)
		if !ok {
			t.Errorf("Lookup(%q) missed, expected rice record", id)
			continue
		}
		if record.ID != "rice" {
			t.Errorf("Lookup(%q) returned %s", id, record.ID)
		}
	}
}

func TestRegistry_LookupMiss(t *testing.T) {
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	// Exact normalized match only: no fuzzy or plural matching.
	for _, id := range []string{"dragonfruit", "rices", "ric", ""} {
		if _, ok := registry.Lookup(id); ok {
			t.Errorf("Lookup(%q) unexpectedly matched", id)
		}
	}
}

func TestRegistry_TableInvariants(t *testing.T) {
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	if registry.Len() != 22 {
		t.Errorf("Expected 22 crops, got %d", registry.Len())
	}

	known := make(map[agronomy.Parameter]bool, len(agronomy.FeatureOrder))
	for _, p := range agronomy.FeatureOrder {
		known[p] = true
	}

	for _, record := range registry.All() {
		if record.Name == "" || record.Description == "" {
			t.Errorf("Crop %s missing display metadata", record.ID)
		}
		if len(record.Tips) == 0 {
			t.Errorf("Crop %s has no cultivation tips", record.ID)
		}
		for param, rng := range record.Ideal {
			if !known[param] {
				t.Errorf("Crop %s defines unknown parameter %s", record.ID, param)
			}
			if rng.Min > rng.Max {
				t.Errorf("Crop %s has inverted %s range [%v, %v]", record.ID, param, rng.Min, rng.Max)
			}
		}
	}
}

func TestNewRegistry_RejectsInvertedRange(t *testing.T) {
	bad := []agronomy.CropRecord{
		{
			ID:   "broken",
			Name: "Broken",
			Ideal: agronomy.IdealConditions{
				agronomy.PH: {Min: 8.0, Max: 6.0},
			},
		},
	}

	if _, err := newRegistry(bad); err == nil {
		t.Fatal("Expected error for inverted range")
	}
}

func TestNewRegistry_RejectsDuplicateIDs(t *testing.T) {
	dup := []agronomy.CropRecord{
		{ID: "rice", Name: "Rice"},
		{ID: "Rice", Name: "Rice again"},
	}

	if _, err := newRegistry(dup); err == nil {
		t.Fatal("Expected error for duplicate identifiers")
	}
}
