package catalog

import "errors"

// Selection caps.
const (
	BrowseSelectionCap  = 3
	CompareSelectionCap = 4
)

// ErrSelectionFull is returned by Toggle when adding would exceed the cap.
// Callers surface it as an inline capacity notice; selection state does not
// change.
var ErrSelectionFull = errors.New("selection is at capacity")

// ErrLastRemaining is returned when removal would empty a comparison.
var ErrLastRemaining = errors.New("cannot remove the last phone")

// Selection is an ordered set of phones chosen for comparison. Membership
// is by identifier equality.
type Selection struct {
	cap    int
	phones []Phone
}

// NewSelection creates an empty selection with the given cap.
func NewSelection(capacity int) *Selection {
	return &Selection{cap: capacity}
}

// NewCompareList creates a compare-screen selection pre-populated with the
// given phones, truncated to the compare cap and deduplicated by ID.
func NewCompareList(phones []Phone) *Selection {
	s := NewSelection(CompareSelectionCap)
	for _, p := range phones {
		if len(s.phones) == s.cap {
			break
		}
		if !s.Contains(p.ID) {
			s.phones = append(s.phones, p)
		}
	}
	return s
}

// Phones returns the selection in insertion order.
func (s *Selection) Phones() []Phone {
	out := make([]Phone, len(s.phones))
	copy(out, s.phones)
	return out
}

// Len returns the selection size.
func (s *Selection) Len() int { return len(s.phones) }

// Cap returns the configured maximum size.
func (s *Selection) Cap() int { return s.cap }

// Contains reports membership by ID.
func (s *Selection) Contains(id string) bool {
	for _, p := range s.phones {
		if p.ID == id {
			return true
		}
	}
	return false
}

// Toggle removes the phone when present, otherwise adds it. Adding at
// capacity returns ErrSelectionFull with no state change, so toggling twice
// always restores the original membership unless a cap rejection intervened.
func (s *Selection) Toggle(p Phone) error {
	for i, cur := range s.phones {
		if cur.ID == p.ID {
			s.phones = append(s.phones[:i], s.phones[i+1:]...)
			return nil
		}
	}
	if len(s.phones) >= s.cap {
		return ErrSelectionFull
	}
	s.phones = append(s.phones, p)
	return nil
}

// Add appends the phone if absent and under cap.
func (s *Selection) Add(p Phone) error {
	if s.Contains(p.ID) {
		return nil
	}
	if len(s.phones) >= s.cap {
		return ErrSelectionFull
	}
	s.phones = append(s.phones, p)
	return nil
}

// Remove drops the phone with the given ID, refusing to empty the
// selection: the compare screen always keeps at least one record.
func (s *Selection) Remove(id string) error {
	if len(s.phones) <= 1 {
		return ErrLastRemaining
	}
	for i, p := range s.phones {
		if p.ID == id {
			s.phones = append(s.phones[:i], s.phones[i+1:]...)
			return nil
		}
	}
	return nil
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.phones = nil
}
