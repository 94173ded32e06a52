package usecase

import (
	"strings"
	"sync"
	"time"

	"github.com/brickmate/leadbook/internal/entity"
)

type leadState int

const (
	stateActive leadState = iota
	stateArchived
)

type leadEntry struct {
	property *entity.Property
	state    leadState
}

// LeadBook owns every lead of one user. A single map keyed by id carries the
// Active/Archived tag, so a lead can never sit in both collections at once;
// the per-state order slices only record presentation order (newest first).
//
// Missing ids and wrong-state commands are silent no-ops: delete, restore and
// purge favor idempotency over strictness.
type LeadBook struct {
	mu            sync.Mutex
	entries       map[string]*leadEntry
	activeOrder   []string
	archivedOrder []string
}

func NewLeadBook() *LeadBook {
	return &LeadBook{entries: make(map[string]*leadEntry)}
}

// Create inserts a lead into the active collection. The id must be fresh;
// an already-known id is rejected as a no-op to keep ids unique across both
// collections.
func (b *LeadBook) Create(p *entity.Property) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.entries[p.ID]; exists {
		return false
	}

	b.entries[p.ID] = &leadEntry{property: p, state: stateActive}
	b.activeOrder = prepend(b.activeOrder, p.ID)
	return true
}

// Delete moves a lead from Active to Archived. Repeated deletes of the same
// id leave exactly one archived copy.
func (b *LeadBook) Delete(id string) (*entity.Property, bool) {
	return b.move(id, stateActive, stateArchived)
}

// Restore moves a lead from Archived back to Active.
func (b *LeadBook) Restore(id string) (*entity.Property, bool) {
	return b.move(id, stateArchived, stateActive)
}

// Purge permanently removes an archived lead. An active id is untouched.
func (b *LeadBook) Purge(id string) (*entity.Property, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	entry, ok := b.entries[id]
	if !ok || entry.state != stateArchived {
		return nil, false
	}

	delete(b.entries, id)
	b.archivedOrder = remove(b.archivedOrder, id)
	return entry.property, true
}

// Edit replaces the full record in place, whatever collection it lives in.
// Identity and ownership never change on edit.
func (b *LeadBook) Edit(id string, updated entity.Property) (*entity.Property, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	entry, ok := b.entries[id]
	if !ok {
		return nil, false
	}

	updated.ID = entry.property.ID
	updated.UserID = entry.property.UserID
	*entry.property = updated
	p := *entry.property
	return &p, true
}

func (b *LeadBook) SetOfferStatus(id string, status entity.OfferStatus) (*entity.Property, bool) {
	return b.mutate(id, func(p *entity.Property) { p.OfferStatus = status })
}

func (b *LeadBook) SetContacted(id string, contacted bool) (*entity.Property, bool) {
	return b.mutate(id, func(p *entity.Property) { p.Contacted = contacted })
}

func (b *LeadBook) SetCreatedAt(id string, createdAt time.Time) (*entity.Property, bool) {
	return b.mutate(id, func(p *entity.Property) { p.CreatedAt = createdAt })
}

func (b *LeadBook) SetNotes(id string, notes string) (*entity.Property, bool) {
	return b.mutate(id, func(p *entity.Property) { p.Notes = NormalizeNotes(notes) })
}

// Seed fills an empty book from the store. Both slices are expected newest
// first, so insertion happens in reverse to preserve that order.
func (b *LeadBook) Seed(active, archived []entity.Property) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := len(active) - 1; i >= 0; i-- {
		p := active[i]
		if _, exists := b.entries[p.ID]; exists {
			continue
		}
		b.entries[p.ID] = &leadEntry{property: &p, state: stateActive}
		b.activeOrder = prepend(b.activeOrder, p.ID)
	}
	for i := len(archived) - 1; i >= 0; i-- {
		p := archived[i]
		if _, exists := b.entries[p.ID]; exists {
			continue
		}
		b.entries[p.ID] = &leadEntry{property: &p, state: stateArchived}
		b.archivedOrder = prepend(b.archivedOrder, p.ID)
	}
}

// IsArchived reports the collection a lead currently lives in.
func (b *LeadBook) IsArchived(id string) (archived, ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	entry, ok := b.entries[id]
	if !ok {
		return false, false
	}
	return entry.state == stateArchived, true
}

// Find returns a copy of the lead regardless of state.
func (b *LeadBook) Find(id string) (*entity.Property, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	entry, ok := b.entries[id]
	if !ok {
		return nil, false
	}
	p := *entry.property
	return &p, true
}

// Active returns the active leads, newest first.
func (b *LeadBook) Active() []entity.Property {
	return b.list(stateActive)
}

// Archived returns the soft-deleted leads, newest first.
func (b *LeadBook) Archived() []entity.Property {
	return b.list(stateArchived)
}

// HasActiveAddress reports whether an active lead already uses this address.
// Comparison is case-insensitive; the import de-dup rule relies on it.
func (b *LeadBook) HasActiveAddress(address string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	needle := foldAddress(address)
	for _, id := range b.activeOrder {
		if foldAddress(b.entries[id].property.Address) == needle {
			return true
		}
	}
	return false
}

func (b *LeadBook) move(id string, from, to leadState) (*entity.Property, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	entry, ok := b.entries[id]
	if !ok || entry.state != from {
		return nil, false
	}

	entry.state = to
	if to == stateArchived {
		b.activeOrder = remove(b.activeOrder, id)
		b.archivedOrder = prepend(remove(b.archivedOrder, id), id)
	} else {
		b.archivedOrder = remove(b.archivedOrder, id)
		b.activeOrder = prepend(remove(b.activeOrder, id), id)
	}

	p := *entry.property
	return &p, true
}

func (b *LeadBook) mutate(id string, fn func(*entity.Property)) (*entity.Property, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	entry, ok := b.entries[id]
	if !ok {
		return nil, false
	}

	fn(entry.property)
	p := *entry.property
	return &p, true
}

func (b *LeadBook) list(state leadState) []entity.Property {
	b.mu.Lock()
	defer b.mu.Unlock()

	order := b.activeOrder
	if state == stateArchived {
		order = b.archivedOrder
	}

	out := make([]entity.Property, 0, len(order))
	for _, id := range order {
		out = append(out, *b.entries[id].property)
	}
	return out
}

func foldAddress(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func prepend(ids []string, id string) []string {
	return append([]string{id}, ids...)
}

func remove(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i:i], ids[i+1:]...)
		}
	}
	return ids
}
