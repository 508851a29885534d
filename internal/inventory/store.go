// Package inventory implements the gadget store: an in-memory record set with
// an append-only change history and an encrypted export/import of full state.
package inventory

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/atinyakov/GadgetKeeper/internal/models"
	"github.com/google/uuid"
)

// Store owns a mapping of gadget ids to records, the change history, and the
// version stamp. One mutex guards the whole mapping+history pair, so every
// operation is atomic from the caller's perspective. All returned records are
// independent copies; mutation only happens through Add/Update/Delete.
type Store struct {
	mu      sync.Mutex
	gadgets map[string]models.Gadget
	order   []string // insertion order of live ids
	history []models.HistoryEntry
	version int
	now     func() time.Time
}

// New creates an empty store at version 1.
func New() *Store {
	return &Store{
		gadgets: make(map[string]models.Gadget),
		version: 1,
		now:     time.Now,
	}
}

// Add validates and stores a new gadget, records an ADD history entry, and
// returns the stored record.
func (s *Store) Add(name, brand string, price float64) (models.Gadget, error) {
	name = strings.TrimSpace(name)
	brand = strings.TrimSpace(brand)
	if err := validateFields(name, brand, price); err != nil {
		return models.Gadget{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	g := models.Gadget{
		ID:      uuid.NewString(),
		Name:    name,
		Brand:   brand,
		Price:   price,
		AddedAt: now,
	}
	s.gadgets[g.ID] = g
	s.order = append(s.order, g.ID)
	s.record(models.ActionAdd, g, now)
	return g, nil
}

// Get returns a copy of the gadget with the given id, if present.
func (s *Store) Get(id string) (models.Gadget, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.gadgets[id]
	return g, ok
}

// Update applies the provided fields to an existing gadget and records an
// UPDATE history entry with the post-mutation state. Fields left nil keep
// their prior values. Every provided field is validated before anything is
// assigned, so a rejected update leaves the record untouched. Returns
// ErrNotFound if the id is absent.
func (s *Store) Update(id string, upd GadgetUpdate) (models.Gadget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.gadgets[id]
	if !ok {
		return models.Gadget{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		return models.Gadget{}, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if upd.Brand != nil && strings.TrimSpace(*upd.Brand) == "" {
		return models.Gadget{}, fmt.Errorf("%w: brand is required", ErrValidation)
	}
	if upd.Price != nil {
		if err := validatePrice(*upd.Price); err != nil {
			return models.Gadget{}, err
		}
	}

	if upd.Name != nil {
		g.Name = strings.TrimSpace(*upd.Name)
	}
	if upd.Brand != nil {
		g.Brand = strings.TrimSpace(*upd.Brand)
	}
	if upd.Price != nil {
		g.Price = *upd.Price
	}

	s.gadgets[id] = g
	s.record(models.ActionUpdate, g, s.now().UTC())
	return g, nil
}

// Delete removes the gadget with the given id and records a DELETE history
// entry carrying the pre-removal state. Returns false if the id is absent.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.gadgets[id]
	if !ok {
		return false
	}
	s.record(models.ActionDelete, g, s.now().UTC())
	delete(s.gadgets, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// List returns copies of all current gadgets, most recently added first.
// Equal timestamps keep insertion order (stable sort over a deterministic
// base sequence).
func (s *Store) List() []models.Gadget {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.liveGadgets()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AddedAt.After(out[j].AddedAt)
	})
	return out
}

// Find returns copies of gadgets whose name or brand contains the query,
// case-insensitively, in the store's natural (insertion) order.
func (s *Store) Find(query string) []models.Gadget {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]models.Gadget, 0)
	for _, id := range s.order {
		g := s.gadgets[id]
		if strings.Contains(strings.ToLower(g.Name), q) ||
			strings.Contains(strings.ToLower(g.Brand), q) {
			out = append(out, g)
		}
	}
	return out
}

// TotalValue returns the sum of prices over all current gadgets.
func (s *Store) TotalValue() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, g := range s.gadgets {
		total += g.Price
	}
	return total
}

// History returns copies of all recorded entries, newest first. Entries with
// equal timestamps keep their recorded order.
func (s *Store) History() []models.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.HistoryEntry, len(s.history))
	copy(out, s.history)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

// Version returns the store's version stamp.
func (s *Store) Version() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// liveGadgets copies all current records in insertion order. Callers must
// hold s.mu.
func (s *Store) liveGadgets() []models.Gadget {
	out := make([]models.Gadget, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.gadgets[id])
	}
	return out
}

// record appends a history entry with a snapshot copy. Callers must hold s.mu.
func (s *Store) record(action models.Action, g models.Gadget, at time.Time) {
	s.history = append(s.history, models.HistoryEntry{
		Action:    action,
		Gadget:    g,
		Timestamp: at,
	})
}

func validateFields(name, brand string, price float64) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if brand == "" {
		return fmt.Errorf("%w: brand is required", ErrValidation)
	}
	return validatePrice(price)
}

// validatePrice rejects negative and non-finite values. NaN compares false
// against every bound, so it needs an explicit check; a stored NaN or Inf
// would also make the export payload unencodable.
func validatePrice(price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return fmt.Errorf("%w: price must be a finite number", ErrValidation)
	}
	if price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	return nil
}
