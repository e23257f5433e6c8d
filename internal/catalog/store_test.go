package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStore_MergeDeduplicates(t *testing.T) {
	s := NewStore([]Phone{
		pricedPhone("a", "Alpha", 10000),
		pricedPhone("b", "Beta", 20000),
	})

	existing := pricedPhone("a", "Alpha", 10000)
	incoming := pricedPhone("a", "Alpha (remote copy)", 99999)

	added := s.Merge([]Phone{incoming, pricedPhone("c", "Gamma", 30000)})
	if added != 1 {
		t.Fatalf("expected 1 merged record, got %d", added)
	}

	// Collision drops the incoming duplicate; the pre-existing record wins.
	got, ok := s.Get("a")
	if !ok {
		t.Fatal("record a vanished")
	}
	if diff := cmp.Diff(existing, got); diff != "" {
		t.Errorf("existing record was clobbered (-want +got):\n%s", diff)
	}

	// New records are prepended.
	if s.All()[0].ID != "c" {
		t.Errorf("expected merged record at front, got %s", s.All()[0].ID)
	}
	assertUniqueIDs(t, s)
}

func TestStore_MergeBatchInternalDuplicates(t *testing.T) {
	s := NewStore(nil)
	s.Merge([]Phone{
		pricedPhone("x", "X", 1),
		pricedPhone("x", "X again", 2),
	})
	if s.Len() != 1 {
		t.Fatalf("expected 1 record after in-batch dedupe, got %d", s.Len())
	}
	assertUniqueIDs(t, s)
}

func TestStore_AppendKeepsPageOrder(t *testing.T) {
	s := NewStore([]Phone{pricedPhone("a", "Alpha", 1)})
	s.Append([]Phone{pricedPhone("b", "Beta", 2), pricedPhone("a", "dup", 3)})

	all := s.All()
	if len(all) != 2 || all[0].ID != "a" || all[1].ID != "b" {
		t.Errorf("expected [a b], got %v", s.Names())
	}
}

func TestStore_ReplaceIsIdentifierKeyed(t *testing.T) {
	s := NewStore([]Phone{
		pricedPhone("a", "Alpha", 1),
		pricedPhone("b", "Beta", 2),
	})

	// The refreshed record may carry a different ID than the slot it
	// targeted; the write stays keyed to the slot.
	ok := s.Replace("b", pricedPhone("beta-2024", "Beta (2024)", 5))
	if !ok {
		t.Fatal("replace reported miss for existing id")
	}
	if s.All()[1].ID != "beta-2024" {
		t.Errorf("replace did not land in slot 1: %v", s.Names())
	}

	// A late result for a record that is gone must not resurrect it.
	if s.Replace("ghost", pricedPhone("ghost", "Ghost", 9)) {
		t.Error("replace of absent id should be a no-op")
	}
	if _, found := s.Get("ghost"); found {
		t.Error("absent id was resurrected")
	}
}

func TestStore_PromoteToFront(t *testing.T) {
	s := NewStore([]Phone{
		pricedPhone("a", "Alpha", 1),
		pricedPhone("b", "Beta", 2),
		pricedPhone("c", "Gamma", 3),
	})
	s.PromoteToFront("c")
	if s.All()[0].ID != "c" {
		t.Errorf("expected c at front, got %s", s.All()[0].ID)
	}
	if s.Len() != 3 {
		t.Errorf("promotion changed length to %d", s.Len())
	}
	s.PromoteToFront("missing") // no-op
	if s.Len() != 3 {
		t.Errorf("promoting a missing id changed length to %d", s.Len())
	}
}

func TestStore_FindByName(t *testing.T) {
	s := NewStore(SeedPhones())

	p, ok := s.FindByName("pixel 8")
	if !ok || p.ID != "pixel8pro" {
		t.Errorf("expected pixel8pro, got %q found=%v", p.ID, ok)
	}

	// Substring matching is deliberately loose: "pro" hits the first
	// record whose name contains it, whatever the model.
	if _, ok := s.FindByName("pro"); !ok {
		t.Error("loose substring query should match something")
	}

	if _, ok := s.FindByName("   "); ok {
		t.Error("blank query must not match")
	}
	if _, ok := s.FindByName("fairphone"); ok {
		t.Error("unknown name must not match")
	}
}

func TestStore_AnyOther(t *testing.T) {
	s := NewStore([]Phone{pricedPhone("a", "Alpha", 1), pricedPhone("b", "Beta", 2)})
	rival, ok := s.AnyOther("a")
	if !ok || rival.ID == "a" {
		t.Errorf("expected a distinct rival, got %q found=%v", rival.ID, ok)
	}
	if _, ok := NewStore([]Phone{pricedPhone("a", "Alpha", 1)}).AnyOther("a"); ok {
		t.Error("single-record catalog has no rival")
	}
}

func assertUniqueIDs(t *testing.T, s *Store) {
	t.Helper()
	seen := map[string]bool{}
	for _, p := range s.All() {
		if seen[p.ID] {
			t.Errorf("duplicate ID in store: %s", p.ID)
		}
		seen[p.ID] = true
	}
}
