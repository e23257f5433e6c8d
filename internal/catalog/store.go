package catalog

import "strings"

// Store is the ordered in-memory catalog. Order is display order: most
// recently added or promoted records come first. Uniqueness by ID is an
// invariant every mutation preserves; incoming duplicates are dropped and
// the existing record wins.
//
// Store is not safe for concurrent mutation. All writes happen on the
// single UI event loop; concurrent enrichment results are collected first
// and applied as identifier-keyed writes afterwards.
type Store struct {
	phones []Phone
}

// NewStore creates a store holding the given records. Duplicated IDs in the
// input keep the first occurrence.
func NewStore(phones []Phone) *Store {
	s := &Store{}
	s.Append(phones)
	return s
}

// All returns the current catalog in display order. The returned slice is a
// copy; mutating it does not affect the store.
func (s *Store) All() []Phone {
	out := make([]Phone, len(s.phones))
	copy(out, s.phones)
	return out
}

// Len returns the number of records.
func (s *Store) Len() int { return len(s.phones) }

func (s *Store) index(id string) int {
	for i, p := range s.phones {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Get returns the record with the given ID.
func (s *Store) Get(id string) (Phone, bool) {
	if i := s.index(id); i >= 0 {
		return s.phones[i], true
	}
	return Phone{}, false
}

// Merge deduplicates the incoming records against the catalog by ID and
// prepends the survivors, newest first.
func (s *Store) Merge(phones []Phone) int {
	fresh := s.dedupe(phones)
	if len(fresh) == 0 {
		return 0
	}
	s.phones = append(fresh, s.phones...)
	return len(fresh)
}

// Append deduplicates the incoming records and adds the survivors at the
// tail. Used for open-ended "load more" growth where the new records should
// extend the current page rather than displace it.
func (s *Store) Append(phones []Phone) int {
	fresh := s.dedupe(phones)
	s.phones = append(s.phones, fresh...)
	return len(fresh)
}

// dedupe drops incoming records whose ID already exists in the catalog or
// earlier in the same batch.
func (s *Store) dedupe(phones []Phone) []Phone {
	seen := make(map[string]struct{}, len(s.phones))
	for _, p := range s.phones {
		seen[p.ID] = struct{}{}
	}
	var fresh []Phone
	for _, p := range phones {
		if _, dup := seen[p.ID]; dup {
			continue
		}
		seen[p.ID] = struct{}{}
		fresh = append(fresh, p)
	}
	return fresh
}

// Replace swaps the record currently stored under id with the given phone,
// keeping its position. Keyed by the targeted identifier so late-arriving
// concurrent results cannot clobber anything but their own slot; a missing
// id (record never existed or was never merged) is a no-op.
func (s *Store) Replace(id string, phone Phone) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.phones[i] = phone
	return true
}

// PromoteToFront moves the record with the given ID to display-order head.
func (s *Store) PromoteToFront(id string) {
	i := s.index(id)
	if i <= 0 {
		return
	}
	p := s.phones[i]
	s.phones = append(s.phones[:i], s.phones[i+1:]...)
	s.phones = append([]Phone{p}, s.phones...)
}

// FindByName returns the first record whose name contains q, case
// insensitively. Short queries can false-positive across models ("Pro");
// that looseness is intentional and matches the search contract.
func (s *Store) FindByName(q string) (Phone, bool) {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return Phone{}, false
	}
	for _, p := range s.phones {
		if strings.Contains(strings.ToLower(p.Name), q) {
			return p, true
		}
	}
	return Phone{}, false
}

// Names returns all record names in display order.
func (s *Store) Names() []string {
	names := make([]string, len(s.phones))
	for i, p := range s.phones {
		names[i] = p.Name
	}
	return names
}

// CountMatching returns how many records match the brand substring filter.
func (s *Store) CountMatching(brand string) int {
	n := 0
	needle := strings.ToLower(brand)
	for _, p := range s.phones {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			n++
		}
	}
	return n
}

// AnyOther returns some record with an ID different from id, used to seed a
// rival when a comparison starts from a single phone.
func (s *Store) AnyOther(id string) (Phone, bool) {
	for _, p := range s.phones {
		if p.ID != id {
			return p, true
		}
	}
	return Phone{}, false
}
