package catalog

import "testing"

func pricedPhone(id, name string, price int) Phone {
	return Phone{ID: id, Name: name, Price: price, Specs: detailedSpecs("-", "-", "-", "-", "-", "-", "-", "-", "-")}
}

func TestFilter_PriceCeiling(t *testing.T) {
	cat := []Phone{
		pricedPhone("a", "Alpha One", 129999),
		pricedPhone("b", "Beta Two", 64999),
		pricedPhone("c", "Gamma Three", 19999),
	}

	got := Filter(cat, 100000, "")
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	// Order preserved: the excluded record drops out, the rest keep rank.
	if got[0].ID != "b" || got[1].ID != "c" {
		t.Errorf("expected [b c], got [%s %s]", got[0].ID, got[1].ID)
	}
	for _, p := range got {
		if p.Price > 100000 {
			t.Errorf("record %s exceeds ceiling: %d", p.ID, p.Price)
		}
	}
}

func TestFilter_BrandSubstringCaseInsensitive(t *testing.T) {
	cat := []Phone{
		pricedPhone("s24", "Samsung Galaxy S24 Ultra", 129999),
		pricedPhone("ip15", "Apple iPhone 15", 79999),
		pricedPhone("a55", "samsung galaxy a55", 39999),
	}

	got := Filter(cat, 200000, "SAMSUNG")
	if len(got) != 2 {
		t.Fatalf("expected 2 samsung records, got %d", len(got))
	}
	for _, p := range got {
		if p.ID == "ip15" {
			t.Error("iPhone matched samsung filter")
		}
	}
}

func TestFilter_EmptyAndNoMatch(t *testing.T) {
	if got := Filter(nil, 100000, ""); len(got) != 0 {
		t.Errorf("empty catalog should filter to empty, got %d", len(got))
	}
	cat := []Phone{pricedPhone("a", "Alpha", 50000)}
	if got := Filter(cat, 100, ""); len(got) != 0 {
		t.Errorf("unmatchable ceiling should filter to empty, got %d", len(got))
	}
	if got := Filter(cat, 100000, "nokia"); len(got) != 0 {
		t.Errorf("unmatchable brand should filter to empty, got %d", len(got))
	}
}

func TestFilter_Idempotent(t *testing.T) {
	cat := SeedPhones()
	once := Filter(cat, 30000, "redmi")
	twice := Filter(once, 30000, "redmi")
	if len(once) != len(twice) {
		t.Fatalf("idempotence broken: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Errorf("idempotence broken at %d: %s vs %s", i, once[i].ID, twice[i].ID)
		}
	}
}

func TestVisible_Pagination(t *testing.T) {
	cat := make([]Phone, 0, 30)
	for i := 0; i < 30; i++ {
		cat = append(cat, pricedPhone(string(rune('a'+i)), "Phone", 10000))
	}

	tests := []struct {
		name  string
		pages int
		want  int
	}{
		{"one page", 1, PageSize},
		{"two pages", 2, 2 * PageSize},
		{"past the end", 5, 30},
		{"zero clamps to one", 0, PageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Visible(cat, 100000, "", tt.pages); len(got) != tt.want {
				t.Errorf("expected %d visible, got %d", tt.want, len(got))
			}
		})
	}
}

func TestSeedPhones_UniqueIDsAndCanonicalSections(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range SeedPhones() {
		if seen[p.ID] {
			t.Errorf("duplicate seed ID %s", p.ID)
		}
		seen[p.ID] = true
		if len(p.Specs) != len(SectionOrder) {
			t.Errorf("%s: expected %d sections, got %d", p.ID, len(SectionOrder), len(p.Specs))
		}
		for _, key := range SectionOrder {
			sec, ok := p.Specs[key]
			if !ok {
				t.Errorf("%s: missing section %s", p.ID, key)
				continue
			}
			if sec.Title == "" {
				t.Errorf("%s: section %s has no title", p.ID, key)
			}
		}
	}
}
