package knowledge

import (
	"fmt"
	"sort"
	"strings"

	"cropsense/domain/agronomy"
)

// Registry is the immutable crop knowledge base. It is built once at
// process start and never mutated afterwards, so concurrent reads need no
// synchronization.
type Registry struct {
	crops map[string]agronomy.CropRecord
	ids   []string
}

// NewRegistry builds the registry from the static crop table and verifies
// its invariants.
func NewRegistry() (*Registry, error) {
	return newRegistry(cropTable)
}

func newRegistry(records []agronomy.CropRecord) (*Registry, error) {
	crops := make(map[string]agronomy.CropRecord, len(records))
	ids := make([]string, 0, len(records))

	for _, record := range records {
		id := normalizeID(record.ID)
		if id == "" {
			return nil, fmt.Errorf("crop record with empty identifier: %q", record.Name)
		}
		if _, exists := crops[id]; exists {
			return nil, fmt.Errorf("duplicate crop identifier: %s", id)
		}
		for param, rng := range record.Ideal {
			if rng.Min > rng.Max {
				return nil, fmt.Errorf("crop %s: inverted %s range [%v, %v]", id, param, rng.Min, rng.Max)
			}
		}
		record.ID = id
		crops[id] = record
		ids = append(ids, id)
	}

	sort.Strings(ids)
	return &Registry{crops: crops, ids: ids}, nil
}

// Lookup finds a crop by identifier. Matching is case-insensitive and
// exact: no partial or fuzzy matching. A miss is not an error; callers
// degrade gracefully.
func (r *Registry) Lookup(cropID string) (agronomy.CropRecord, bool) {
	record, ok := r.crops[normalizeID(cropID)]
	return record, ok
}

// IDs returns the sorted crop identifiers.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.ids))
	copy(out, r.ids)
	return out
}

// All returns every crop record sorted by identifier.
func (r *Registry) All() []agronomy.CropRecord {
	out := make([]agronomy.CropRecord, 0, len(r.ids))
	for _, id := range r.ids {
		out = append(out, r.crops[id])
	}
	return out
}

// Len returns the number of crops in the registry.
func (r *Registry) Len() int {
	return len(r.crops)
}

func normalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
